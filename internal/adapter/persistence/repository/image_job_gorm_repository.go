package repository

import (
	"context"
	"time"

	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"

	"gorm.io/gorm"
)

type ImageJobGormRepository struct {
	db *gorm.DB
}

func NewImageJobGormRepository(db *gorm.DB) *ImageJobGormRepository {
	return &ImageJobGormRepository{db: db}
}

func (r *ImageJobGormRepository) Create(ctx context.Context, job entities.ImageProcessingJob) (entities.ImageProcessingJob, error) {
	if err := r.db.WithContext(ctx).Create(&job).Error; err != nil {
		return entities.ImageProcessingJob{}, err
	}
	return job, nil
}

func (r *ImageJobGormRepository) MarkCompleted(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&entities.ImageProcessingJob{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       entities.JobStatusCompleted,
			"completed_at": time.Now().UTC(),
		}).Error
}

func (r *ImageJobGormRepository) MarkFailed(ctx context.Context, id string, message string) error {
	return r.db.WithContext(ctx).
		Model(&entities.ImageProcessingJob{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        entities.JobStatusFailed,
			"error_message": message,
			"completed_at":  time.Now().UTC(),
		}).Error
}
