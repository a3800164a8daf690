package interfaces

import (
	"context"

	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"
)

// IOrderUnitOfWork scopes all multi-table order writes into one atomic unit.
// If fn returns an error every write performed through the IOrderTx is rolled
// back; partial line items are never visible to readers.

type IOrderUnitOfWork interface {
	Do(ctx context.Context, fn func(tx IOrderTx) error) error
}

// IOrderTx is the write (and in-transaction read) surface available inside a
// unit of work.

type IOrderTx interface {
	CreateOrderItem(ctx context.Context, item entities.OrderItem) (entities.OrderItem, error)
	CreateOrderChoice(ctx context.Context, choice entities.OrderChoice) (entities.OrderChoice, error)
	CreateOrderGarnishItem(ctx context.Context, garnish entities.OrderGarnishItem) (entities.OrderGarnishItem, error)

	// AddOrderAmounts increments the order's subtotal and total by delta with a
	// SQL-level expression, so concurrent additions to the same order cannot
	// lose updates.
	AddOrderAmounts(ctx context.Context, orderID string, delta int) error

	GetChoiceByID(ctx context.Context, id string) (entities.Choice, error)
	GetGarnishItemByID(ctx context.Context, id string) (entities.GarnishItem, error)
}
