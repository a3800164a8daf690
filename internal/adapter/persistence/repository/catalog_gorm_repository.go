package repository

import (
	"context"

	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"

	"gorm.io/gorm"
)

// CatalogGormRepository is the read-only catalog lookup the order engine
// snapshots from. It never mutates catalog rows.

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) GetItemByID(ctx context.Context, id string) (entities.Item, error) {
	var item entities.Item
	err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&item).Error
	return item, err
}

func (r *CatalogGormRepository) GetChoiceByID(ctx context.Context, id string) (entities.Choice, error) {
	var choice entities.Choice
	err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&choice).Error
	return choice, err
}

func (r *CatalogGormRepository) GetGarnishItemByID(ctx context.Context, id string) (entities.GarnishItem, error) {
	var garnish entities.GarnishItem
	err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&garnish).Error
	return garnish, err
}
