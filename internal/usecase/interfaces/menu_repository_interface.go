package interfaces

import (
	"context"

	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"
)

// IMenuRepository abstracts persistence for the imported catalog hierarchy.
//
// The import pipeline creates rows in cascading order (category before item
// before choice before garnish) and flips the menu status/activation at the
// end; the activation swap must leave at most one active menu per environment.

type IMenuRepository interface {
	Create(ctx context.Context, menu entities.Menu) (entities.Menu, error)
	GetByID(ctx context.Context, id string) (entities.Menu, error)
	GetActiveByEnvironmentID(ctx context.Context, environmentID string) (entities.Menu, error)
	ListByEnvironmentID(ctx context.Context, environmentID string) ([]entities.Menu, error)

	UpdateStatus(ctx context.Context, id string, status entities.MenuImportStatus) error
	SetRawCatalogData(ctx context.Context, id string, raw []byte) error
	Activate(ctx context.Context, id string) error
	DeactivateAllByEnvironmentID(ctx context.Context, environmentID string) error

	CreateCategory(ctx context.Context, category entities.MenuCategory) (entities.MenuCategory, error)
	CreateItem(ctx context.Context, item entities.Item) (entities.Item, error)
	SetItemLogoBase64(ctx context.Context, itemID, logoBase64 string) error
	CreateProductInfo(ctx context.Context, info entities.ProductInfo) (entities.ProductInfo, error)
	CreateSellingOption(ctx context.Context, option entities.SellingOption) (entities.SellingOption, error)
	CreateChoice(ctx context.Context, choice entities.Choice) (entities.Choice, error)
	CreateGarnishItem(ctx context.Context, garnish entities.GarnishItem) (entities.GarnishItem, error)
}
