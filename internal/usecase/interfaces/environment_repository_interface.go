package interfaces

import (
	"context"

	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"
)

// IEnvironmentRepository abstracts read access to seller tenants.

type IEnvironmentRepository interface {
	GetByID(ctx context.Context, id string) (entities.Environment, error)
}
