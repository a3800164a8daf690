package usecase

import (
	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"

	"github.com/google/uuid"
)

// Snapshot materializers: pure mappings from catalog rows to order-line rows,
// invoked exactly once per line creation. The engine never re-reads catalog
// state for an existing line, so the copied values freeze the price and
// description the buyer saw.

func materializeOrderItem(order entities.Order, item entities.Item, quantity int, notes *string, displayOrder int) entities.OrderItem {
	itemID := item.ID
	return entities.OrderItem{
		ID:            uuid.NewString(),
		EnvironmentID: order.EnvironmentID,
		OrderID:       order.ID,
		ItemID:        &itemID,

		DescriptionAtPurchase:         item.Description,
		DetailsAtPurchase:             item.Details,
		LogoURLAtPurchase:             item.LogoURL,
		LogoBase64AtPurchase:          item.LogoBase64,
		UnitPriceAtPurchase:           item.UnitPrice,
		UnitMinPriceAtPurchase:        item.UnitMinPrice,
		UnitOriginalPriceAtPurchase:   item.UnitOriginalPrice,
		PromotionTagsAtPurchase:       item.PromotionTags,
		PortionSizeTagAtPurchase:      item.PortionSizeTag,
		DietaryRestrictionsAtPurchase: item.DietaryRestrictions,
		DishClassificationsAtPurchase: item.DishClassifications,

		Quantity:               quantity,
		SinglePriceForItemLine: item.UnitPrice,
		TotalPriceForItemLine:  item.UnitPrice * quantity,

		Notes:        notes,
		DisplayOrder: displayOrder,
	}
}

func materializeOrderChoice(order entities.Order, orderItemID string, choice entities.Choice, displayOrder int) entities.OrderChoice {
	choiceID := choice.ID
	return entities.OrderChoice{
		ID:            uuid.NewString(),
		EnvironmentID: order.EnvironmentID,
		OrderItemID:   orderItemID,
		ChoiceID:      &choiceID,

		NameAtPurchase: choice.Name,
		MinAtPurchase:  choice.Min,
		MaxAtPurchase:  choice.Max,

		DisplayOrder: displayOrder,
	}
}

func materializeOrderGarnishItem(order entities.Order, orderChoiceID string, garnish entities.GarnishItem, quantity, displayOrder int) entities.OrderGarnishItem {
	garnishID := garnish.ID
	return entities.OrderGarnishItem{
		ID:            uuid.NewString(),
		EnvironmentID: order.EnvironmentID,
		OrderChoiceID: orderChoiceID,
		GarnishItemID: &garnishID,

		DescriptionAtPurchase: garnish.Description,
		DetailsAtPurchase:     garnish.Details,
		LogoURLAtPurchase:     garnish.LogoURL,
		LogoBase64AtPurchase:  garnish.LogoBase64,
		UnitPriceAtPurchase:   garnish.UnitPrice,

		Quantity:                     quantity,
		TotalPriceForGarnishItemLine: garnish.UnitPrice * quantity,

		DisplayOrder: displayOrder,
	}
}
