package interfaces

import (
	"context"

	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"
)

// IClientRepository abstracts read access to buyers and their addresses.
// A zero-ID result means not found.

type IClientRepository interface {
	GetByID(ctx context.Context, id string) (entities.Client, error)
	GetAddressByID(ctx context.Context, id string) (entities.ClientAddress, error)
}
