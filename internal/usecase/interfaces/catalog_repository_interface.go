package interfaces

import (
	"context"

	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"
)

// ICatalogRepository is the read-only catalog lookup used by the line-item
// composer. Consumers copy the returned values onto order lines once and never
// re-read them, so historical orders stay stable under later catalog edits.
// A zero-ID result means not found.

type ICatalogRepository interface {
	GetItemByID(ctx context.Context, id string) (entities.Item, error)
	GetChoiceByID(ctx context.Context, id string) (entities.Choice, error)
	GetGarnishItemByID(ctx context.Context, id string) (entities.GarnishItem, error)
}
