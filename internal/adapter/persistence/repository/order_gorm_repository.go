package repository

import (
	"context"

	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"

	"gorm.io/gorm"
)

// OrderGormRepository implements IOrderRepository over MySQL.

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, order entities.Order) (entities.Order, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (r *OrderGormRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	var order entities.Order
	err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&order).Error
	return order, err
}

func (r *OrderGormRepository) GetByFlowAndClient(ctx context.Context, flowID, clientID string) (entities.Order, error) {
	var order entities.Order
	err := r.db.WithContext(ctx).
		Where("whatsapp_flows_id = ? AND client_id = ?", flowID, clientID).
		Limit(1).
		Find(&order).Error
	return order, err
}

func (r *OrderGormRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Order, error) {
	var orders []entities.Order
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

func (r *OrderGormRepository) ListByStatus(ctx context.Context, environmentID string, status entities.OrderStatus) ([]entities.Order, error) {
	var orders []entities.Order
	err := r.db.WithContext(ctx).
		Where("environment_id = ? AND status = ?", environmentID, status).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// UpdateStatus applies the state machine's single-row update: the status, the
// status-specific timestamp column, and the cancellation reason when present.
func (r *OrderGormRepository) UpdateStatus(ctx context.Context, id string, update entities.OrderStatusUpdate) (entities.Order, error) {
	changes := map[string]any{
		"status": update.Status,
	}
	if col := update.Status.TimestampColumn(); col != "" {
		changes[col] = update.StampedAt
	}
	if update.CancellationReason != nil {
		changes["cancellation_reason"] = *update.CancellationReason
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Where("id = ?", id).
		Updates(changes).Error; err != nil {
		return entities.Order{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *OrderGormRepository) GetItemsByOrderID(ctx context.Context, orderID string) ([]entities.OrderItem, error) {
	var items []entities.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("display_order asc, created_at asc").
		Find(&items).Error
	return items, err
}

func (r *OrderGormRepository) GetChoicesByOrderItemID(ctx context.Context, orderItemID string) ([]entities.OrderChoice, error) {
	var choices []entities.OrderChoice
	err := r.db.WithContext(ctx).
		Where("order_item_id = ?", orderItemID).
		Order("display_order asc").
		Find(&choices).Error
	return choices, err
}

func (r *OrderGormRepository) GetGarnishByOrderChoiceID(ctx context.Context, orderChoiceID string) ([]entities.OrderGarnishItem, error) {
	var garnish []entities.OrderGarnishItem
	err := r.db.WithContext(ctx).
		Where("order_choice_id = ?", orderChoiceID).
		Order("display_order asc").
		Find(&garnish).Error
	return garnish, err
}
