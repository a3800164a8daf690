package repository

import (
	"context"

	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"

	"gorm.io/gorm"
)

type EnvironmentGormRepository struct {
	db *gorm.DB
}

func NewEnvironmentGormRepository(db *gorm.DB) *EnvironmentGormRepository {
	return &EnvironmentGormRepository{db: db}
}

func (r *EnvironmentGormRepository) GetByID(ctx context.Context, id string) (entities.Environment, error) {
	var env entities.Environment
	err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&env).Error
	return env, err
}
