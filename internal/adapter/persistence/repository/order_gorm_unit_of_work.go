package repository

import (
	"context"

	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"
	"github.com/KelwinHenrique/garfai-be/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// OrderGormUnitOfWork runs the composer's multi-table writes inside one
// database transaction; an error from fn rolls everything back.

type OrderGormUnitOfWork struct {
	db *gorm.DB
}

func NewOrderGormUnitOfWork(db *gorm.DB) *OrderGormUnitOfWork {
	return &OrderGormUnitOfWork{db: db}
}

func (u *OrderGormUnitOfWork) Do(ctx context.Context, fn func(tx interfaces.IOrderTx) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&orderGormTx{db: tx})
	})
}

type orderGormTx struct {
	db *gorm.DB
}

var _ interfaces.IOrderTx = (*orderGormTx)(nil)

func (t *orderGormTx) CreateOrderItem(ctx context.Context, item entities.OrderItem) (entities.OrderItem, error) {
	if err := t.db.WithContext(ctx).Create(&item).Error; err != nil {
		return entities.OrderItem{}, err
	}
	return item, nil
}

func (t *orderGormTx) CreateOrderChoice(ctx context.Context, choice entities.OrderChoice) (entities.OrderChoice, error) {
	if err := t.db.WithContext(ctx).Create(&choice).Error; err != nil {
		return entities.OrderChoice{}, err
	}
	return choice, nil
}

func (t *orderGormTx) CreateOrderGarnishItem(ctx context.Context, garnish entities.OrderGarnishItem) (entities.OrderGarnishItem, error) {
	if err := t.db.WithContext(ctx).Create(&garnish).Error; err != nil {
		return entities.OrderGarnishItem{}, err
	}
	return garnish, nil
}

// AddOrderAmounts bumps subtotal and total with a SQL-level increment, so the
// read-modify-write race between concurrent additions on the same order is
// resolved by the database rather than application code.
func (t *orderGormTx) AddOrderAmounts(ctx context.Context, orderID string, delta int) error {
	return t.db.WithContext(ctx).
		Model(&entities.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"subtotal_amount": gorm.Expr("subtotal_amount + ?", delta),
			"total_amount":    gorm.Expr("total_amount + ?", delta),
		}).Error
}

func (t *orderGormTx) GetChoiceByID(ctx context.Context, id string) (entities.Choice, error) {
	var choice entities.Choice
	err := t.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&choice).Error
	return choice, err
}

func (t *orderGormTx) GetGarnishItemByID(ctx context.Context, id string) (entities.GarnishItem, error) {
	var garnish entities.GarnishItem
	err := t.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&garnish).Error
	return garnish, err
}
