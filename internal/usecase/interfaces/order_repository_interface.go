package interfaces

import (
	"context"

	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"
)

// IOrderRepository abstracts persistence for the order aggregate root.
// A zero-ID result means not found.

type IOrderRepository interface {
	Create(ctx context.Context, order entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByFlowAndClient(ctx context.Context, flowID, clientID string) (entities.Order, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Order, error)
	ListByStatus(ctx context.Context, environmentID string, status entities.OrderStatus) ([]entities.Order, error)

	// UpdateStatus applies the lifecycle state machine's single-row update:
	// status, the per-status timestamp column, and the cancellation reason.
	UpdateStatus(ctx context.Context, id string, update entities.OrderStatusUpdate) (entities.Order, error)

	GetItemsByOrderID(ctx context.Context, orderID string) ([]entities.OrderItem, error)
	GetChoicesByOrderItemID(ctx context.Context, orderItemID string) ([]entities.OrderChoice, error)
	GetGarnishByOrderChoiceID(ctx context.Context, orderChoiceID string) ([]entities.OrderGarnishItem, error)
}
