package interfaces

import (
	"context"

	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"
)

// IImageJobRepository tracks the per-image jobs recorded while the import
// pipeline downloads and converts item logos.

type IImageJobRepository interface {
	Create(ctx context.Context, job entities.ImageProcessingJob) (entities.ImageProcessingJob, error)
	MarkCompleted(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, message string) error
}
