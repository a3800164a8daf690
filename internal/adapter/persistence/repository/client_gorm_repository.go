package repository

import (
	"context"

	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"

	"gorm.io/gorm"
)

// ClientGormRepository implements IClientRepository over MySQL.
//
// Lookups use Find with a limit of one so a missing row comes back as a
// zero-ID value instead of gorm.ErrRecordNotFound, matching the repository
// contract.

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	var client entities.Client
	err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&client).Error
	return client, err
}

func (r *ClientGormRepository) GetAddressByID(ctx context.Context, id string) (entities.ClientAddress, error) {
	var address entities.ClientAddress
	err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&address).Error
	return address, err
}
