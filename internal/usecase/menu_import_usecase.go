package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"
	"github.com/KelwinHenrique/garfai-be/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMenuNotFound = errors.New("menu not found")
	ErrEmptyCatalog = errors.New("remote catalog is empty or invalid")
)

// IMenuUseCase exposes the catalog import pipeline and menu reads.

type IMenuUseCase interface {
	ImportMenu(ctx context.Context, environmentID, merchantID string) (entities.Menu, error)
	GetMenuByID(ctx context.Context, id string) (entities.Menu, error)
	GetActiveMenuByEnvironment(ctx context.Context, environmentID string) (entities.Menu, error)
	ListMenusByEnvironment(ctx context.Context, environmentID string) ([]entities.Menu, error)
	GetItemByID(ctx context.Context, id string) (entities.Item, error)
}

type MenuUseCase struct {
	menus        interfaces.IMenuRepository
	catalog      interfaces.ICatalogRepository
	environments interfaces.IEnvironmentRepository
	imageJobs    interfaces.IImageJobRepository
	client       interfaces.ICatalogClient
}

var _ IMenuUseCase = (*MenuUseCase)(nil)

func NewMenuUseCase(
	menus interfaces.IMenuRepository,
	catalog interfaces.ICatalogRepository,
	environments interfaces.IEnvironmentRepository,
	imageJobs interfaces.IImageJobRepository,
	client interfaces.ICatalogClient,
) *MenuUseCase {
	return &MenuUseCase{
		menus:        menus,
		catalog:      catalog,
		environments: environments,
		imageJobs:    imageJobs,
		client:       client,
	}
}

// ImportMenu pulls the external catalog document for merchantID and
// materializes it into the normalized hierarchy, cascading category -> item ->
// productInfo/sellingOption -> choice -> garnish. The Menu record moves
// SCHEDULED -> PROCESSING -> COMPLETED, and only after COMPLETED the
// previously active menus for the environment are swapped out. Any fetch,
// parse, or materialization error marks the menu FAILED and leaves the
// previously active menu untouched.
func (u *MenuUseCase) ImportMenu(ctx context.Context, environmentID, merchantID string) (entities.Menu, error) {
	env, err := u.environments.GetByID(ctx, environmentID)
	if err != nil {
		return entities.Menu{}, err
	}
	if env.ID == "" {
		return entities.Menu{}, ErrEnvironmentNotFound
	}

	now := time.Now().UTC()
	menu, err := u.menus.Create(ctx, entities.Menu{
		ID:                 uuid.NewString(),
		EnvironmentID:      environmentID,
		ExternalMerchantID: merchantID,
		Name:               fmt.Sprintf("Imported catalog - %s", now.Format(time.RFC3339)),
		ImportedAt:         &now,
		MenuStatus:         entities.MenuStatusScheduled,
	})
	if err != nil {
		return entities.Menu{}, err
	}
	log.Printf("[menu][usecase] import start menu_id=%s merchant_id=%s", menu.ID, merchantID)

	if err := u.menus.UpdateStatus(ctx, menu.ID, entities.MenuStatusProcessing); err != nil {
		return entities.Menu{}, err
	}

	catalog, err := u.client.FetchCatalog(ctx, merchantID)
	if err != nil {
		log.Printf("[menu][usecase] import fetch failed menu_id=%s err=%v", menu.ID, err)
		return entities.Menu{}, u.failImport(ctx, menu.ID, err)
	}
	if len(catalog.Categories) == 0 {
		return entities.Menu{}, u.failImport(ctx, menu.ID, ErrEmptyCatalog)
	}

	if err := u.menus.SetRawCatalogData(ctx, menu.ID, catalog.Raw); err != nil {
		return entities.Menu{}, u.failImport(ctx, menu.ID, err)
	}

	if err := u.materializeCatalog(ctx, menu.ID, environmentID, catalog); err != nil {
		log.Printf("[menu][usecase] import materialize failed menu_id=%s err=%v", menu.ID, err)
		return entities.Menu{}, u.failImport(ctx, menu.ID, err)
	}

	if err := u.menus.UpdateStatus(ctx, menu.ID, entities.MenuStatusCompleted); err != nil {
		return entities.Menu{}, err
	}

	// Activation swap: single active menu per environment.
	if err := u.menus.DeactivateAllByEnvironmentID(ctx, environmentID); err != nil {
		return entities.Menu{}, err
	}
	if err := u.menus.Activate(ctx, menu.ID); err != nil {
		return entities.Menu{}, err
	}

	log.Printf("[menu][usecase] import completed menu_id=%s", menu.ID)
	return u.menus.GetByID(ctx, menu.ID)
}

func (u *MenuUseCase) failImport(ctx context.Context, menuID string, cause error) error {
	if err := u.menus.UpdateStatus(ctx, menuID, entities.MenuStatusFailed); err != nil {
		log.Printf("[menu][usecase] failed to mark menu FAILED menu_id=%s err=%v", menuID, err)
	}
	return cause
}

func (u *MenuUseCase) materializeCatalog(ctx context.Context, menuID, environmentID string, catalog interfaces.RemoteCatalog) error {
	for catIdx, remoteCategory := range catalog.Categories {
		category, err := u.menus.CreateCategory(ctx, entities.MenuCategory{
			ID:            uuid.NewString(),
			EnvironmentID: environmentID,
			MenuID:        menuID,
			ExternalCode:  remoteCategory.Code,
			Name:          remoteCategory.Name,
			DisplayOrder:  catIdx,
			IsActive:      true,
			CategoryType:  entities.MenuCategoryTypeMainItems,
		})
		if err != nil {
			return err
		}

		for itemIdx, remoteItem := range remoteCategory.Items {
			if err := u.materializeItem(ctx, environmentID, category.ID, remoteItem, itemIdx); err != nil {
				return err
			}
		}
	}
	return nil
}

func (u *MenuUseCase) materializeItem(ctx context.Context, environmentID, categoryID string, remote interfaces.RemoteItem, displayOrder int) error {
	portion, dietary, dish := mapProductTags(remote.ProductTags)

	item := entities.Item{
		ID:                  uuid.NewString(),
		EnvironmentID:       environmentID,
		MenuCategoryID:      categoryID,
		ExternalItemID:      remote.ID,
		ExternalItemCode:    remote.Code,
		Description:         remote.Description,
		Details:             remote.Details,
		LogoURL:             remote.LogoURL,
		NeedChoices:         remote.NeedChoices,
		UnitPrice:           centsFromPrice(remote.UnitPrice),
		PromotionTags:       remote.Tags,
		PortionSizeTag:      portion,
		DietaryRestrictions: dietary,
		DishClassifications: dish,
		DisplayOrder:        displayOrder,
		IsActive:            true,
	}
	if remote.UnitMinPrice != nil {
		v := centsFromPrice(*remote.UnitMinPrice)
		item.UnitMinPrice = &v
	}
	if remote.UnitOriginalPrice != nil {
		v := centsFromPrice(*remote.UnitOriginalPrice)
		item.UnitOriginalPrice = &v
	} else {
		v := centsFromPrice(remote.UnitPrice)
		item.UnitOriginalPrice = &v
	}

	created, err := u.menus.CreateItem(ctx, item)
	if err != nil {
		return err
	}

	if remote.LogoURL != nil && *remote.LogoURL != "" {
		// Best effort: a failed download leaves LogoBase64 null and the
		// failure recorded on the image job.
		if b64 := u.fetchItemImage(ctx, created.ID, *remote.LogoURL); b64 != "" {
			if err := u.menus.SetItemLogoBase64(ctx, created.ID, b64); err != nil {
				return err
			}
		}
	}

	if remote.ProductInfo != nil {
		pi := remote.ProductInfo
		if _, err := u.menus.CreateProductInfo(ctx, entities.ProductInfo{
			ID:                    uuid.NewString(),
			EnvironmentID:         environmentID,
			ItemID:                created.ID,
			ExternalProductInfoID: pi.ID,
			Packaging:             pi.Packaging,
			Sequence:              pi.Sequence,
			Quantity:              pi.Quantity,
			Unit:                  pi.Unit,
			EAN:                   pi.EAN,
		}); err != nil {
			return err
		}
	}

	if remote.SellingOption != nil {
		so := remote.SellingOption
		if _, err := u.menus.CreateSellingOption(ctx, entities.SellingOption{
			ID:             uuid.NewString(),
			EnvironmentID:  environmentID,
			ItemID:         created.ID,
			Minimum:        so.Minimum,
			Incremental:    so.Incremental,
			AverageUnit:    so.AverageUnit,
			AvailableUnits: so.AvailableUnits,
		}); err != nil {
			return err
		}
	}

	for choiceIdx, remoteChoice := range remote.Choices {
		choice, err := u.menus.CreateChoice(ctx, entities.Choice{
			ID:                 uuid.NewString(),
			EnvironmentID:      environmentID,
			ItemID:             created.ID,
			ExternalChoiceCode: remoteChoice.Code,
			Name:               remoteChoice.Name,
			Min:                remoteChoice.Min,
			Max:                remoteChoice.Max,
			DisplayOrder:       choiceIdx,
			IsActive:           true,
		})
		if err != nil {
			return err
		}

		for garnishIdx, remoteGarnish := range remoteChoice.GarnishItems {
			garnish := entities.GarnishItem{
				ID:                      uuid.NewString(),
				EnvironmentID:           environmentID,
				ChoiceID:                choice.ID,
				ExternalGarnishItemID:   remoteGarnish.ID,
				ExternalGarnishItemCode: remoteGarnish.Code,
				Description:             remoteGarnish.Description,
				Details:                 remoteGarnish.Details,
				LogoURL:                 remoteGarnish.LogoURL,
				UnitPrice:               centsFromPrice(remoteGarnish.UnitPrice),
				DisplayOrder:            garnishIdx,
				IsActive:                true,
			}
			if remoteGarnish.LogoURL != nil && *remoteGarnish.LogoURL != "" {
				if b64, err := u.client.FetchImageBase64(ctx, *remoteGarnish.LogoURL); err == nil && b64 != "" {
					garnish.LogoBase64 = &b64
				}
			}
			if garnish.ExternalGarnishItemCode == "" {
				garnish.ExternalGarnishItemCode = remoteGarnish.ID
			}
			if _, err := u.menus.CreateGarnishItem(ctx, garnish); err != nil {
				return err
			}
		}
	}
	return nil
}

// fetchItemImage downloads an item logo under an ImageProcessingJob record.
// Download failures are recorded on the job and do not abort the import.
func (u *MenuUseCase) fetchItemImage(ctx context.Context, itemID, logoURL string) string {
	job, err := u.imageJobs.Create(ctx, entities.ImageProcessingJob{
		ID:        uuid.NewString(),
		ItemID:    itemID,
		Status:    entities.JobStatusProcessing,
		ImageURL:  logoURL,
		StartedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[menu][usecase] image job create failed item_id=%s err=%v", itemID, err)
		return ""
	}

	b64, err := u.client.FetchImageBase64(ctx, logoURL)
	if err != nil || b64 == "" {
		msg := "image download failed"
		if err != nil {
			msg = err.Error()
		}
		if markErr := u.imageJobs.MarkFailed(ctx, job.ID, msg); markErr != nil {
			log.Printf("[menu][usecase] image job mark-failed error job_id=%s err=%v", job.ID, markErr)
		}
		return ""
	}

	if err := u.imageJobs.MarkCompleted(ctx, job.ID); err != nil {
		log.Printf("[menu][usecase] image job mark-completed error job_id=%s err=%v", job.ID, err)
	}
	return b64
}

func (u *MenuUseCase) GetMenuByID(ctx context.Context, id string) (entities.Menu, error) {
	menu, err := u.menus.GetByID(ctx, id)
	if err != nil {
		return entities.Menu{}, err
	}
	if menu.ID == "" {
		return entities.Menu{}, ErrMenuNotFound
	}
	return menu, nil
}

func (u *MenuUseCase) GetActiveMenuByEnvironment(ctx context.Context, environmentID string) (entities.Menu, error) {
	menu, err := u.menus.GetActiveByEnvironmentID(ctx, environmentID)
	if err != nil {
		return entities.Menu{}, err
	}
	if menu.ID == "" {
		return entities.Menu{}, ErrMenuNotFound
	}
	return menu, nil
}

func (u *MenuUseCase) ListMenusByEnvironment(ctx context.Context, environmentID string) ([]entities.Menu, error) {
	return u.menus.ListByEnvironmentID(ctx, environmentID)
}

func (u *MenuUseCase) GetItemByID(ctx context.Context, id string) (entities.Item, error) {
	item, err := u.catalog.GetItemByID(ctx, id)
	if err != nil {
		return entities.Item{}, err
	}
	if item.ID == "" {
		return entities.Item{}, ErrItemNotFound
	}
	return item, nil
}

// centsFromPrice converts a decimal currency amount from the remote document
// into integer minor units.
func centsFromPrice(price float64) int {
	return int(math.Round(price * 100))
}

// mapProductTags translates the remote tag groups into the typed portion,
// dietary and dish classification fields.
func mapProductTags(tags []interfaces.RemoteProductTag) (entities.PortionSize, []string, []string) {
	portion := entities.PortionSizeNotApplicable
	var dietary []string
	var dish []string

	for _, group := range tags {
		switch group.Group {
		case "DIETARY_RESTRICTIONS":
			for _, tag := range group.Tags {
				switch entities.DietaryRestriction(tag) {
				case entities.DietaryRestrictionGlutenFree, entities.DietaryRestrictionLacFree,
					entities.DietaryRestrictionOrganic, entities.DietaryRestrictionSugarFree,
					entities.DietaryRestrictionVegan, entities.DietaryRestrictionVegetarian:
					dietary = append(dietary, tag)
				}
			}
		case "DISH_CLASSIFICATION":
			for _, tag := range group.Tags {
				switch entities.DishClassification(tag) {
				case entities.DishClassificationAlcoholicDrink, entities.DishClassificationFrosty:
					dish = append(dish, tag)
				}
			}
		case "PORTION_SIZE":
			for _, tag := range group.Tags {
				switch entities.PortionSize(tag) {
				case entities.PortionSizeServes1, entities.PortionSizeServes2,
					entities.PortionSizeServes3, entities.PortionSizeServes4:
					portion = entities.PortionSize(tag)
				}
			}
		}
	}
	return portion, dietary, dish
}
