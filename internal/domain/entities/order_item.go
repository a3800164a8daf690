package entities

import (
	"time"

	"gorm.io/datatypes"
)

// OrderItem is one catalog item instance inside an order.
//
// All *AtPurchase fields are a snapshot of the catalog item taken when the
// line was composed; later catalog edits never touch them. Prices are cents.
type OrderItem struct {
	ID            string  `gorm:"type:char(36);primaryKey" json:"id"`
	EnvironmentID *string `gorm:"type:char(36);index" json:"environmentId"`
	OrderID       string  `gorm:"type:char(36);not null;index" json:"orderId"`

	// Back-reference to the catalog item, nulled if the catalog row is deleted.
	ItemID *string `gorm:"type:char(36)" json:"itemId"`

	DescriptionAtPurchase         string                      `gorm:"type:text" json:"descriptionAtPurchase"`
	DetailsAtPurchase             *string                     `gorm:"type:text" json:"detailsAtPurchase"`
	LogoURLAtPurchase             *string                     `gorm:"type:text" json:"logoUrlAtPurchase"`
	LogoBase64AtPurchase          *string                     `gorm:"type:longtext" json:"logoBase64AtPurchase"`
	UnitPriceAtPurchase           int                         `gorm:"not null" json:"unitPriceAtPurchase"`
	UnitMinPriceAtPurchase        *int                        `json:"unitMinPriceAtPurchase"`
	UnitOriginalPriceAtPurchase   *int                        `json:"unitOriginalPriceAtPurchase"`
	PromotionTagsAtPurchase       datatypes.JSONSlice[string] `json:"promotionTagsAtPurchase"`
	PortionSizeTagAtPurchase      PortionSize                 `gorm:"type:varchar(20);not null;default:NOT_APPLICABLE" json:"portionSizeTagAtPurchase"`
	DietaryRestrictionsAtPurchase datatypes.JSONSlice[string] `json:"dietaryRestrictionsAtPurchase"`
	DishClassificationsAtPurchase datatypes.JSONSlice[string] `json:"dishClassificationsAtPurchase"`

	Quantity int `gorm:"not null;default:1" json:"quantity"`

	// Base unit price for the line, without garnish add-ons.
	SinglePriceForItemLine int `gorm:"not null;default:0" json:"singlePriceForItemLine"`
	// Recomputed whenever the quantity or the choice/garnish set changes.
	TotalPriceForItemLine int `gorm:"not null;default:0" json:"totalPriceForItemLine"`

	Notes        *string `gorm:"type:text" json:"notes"`
	DisplayOrder int     `gorm:"not null;default:0" json:"displayOrder"`

	Choices []OrderChoice `gorm:"foreignKey:OrderItemID;constraint:OnDelete:CASCADE" json:"choices,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderChoice is the snapshot of one selected choice group for an order item
// (e.g. "Escolha o Refrigerante"). Min/max carry the catalog cardinality that
// was in force when the line was composed.
type OrderChoice struct {
	ID            string  `gorm:"type:char(36);primaryKey" json:"id"`
	EnvironmentID *string `gorm:"type:char(36);index" json:"environmentId"`
	OrderItemID   string  `gorm:"type:char(36);not null;index" json:"orderItemId"`

	ChoiceID *string `gorm:"type:char(36)" json:"choiceId"`

	NameAtPurchase string `gorm:"type:varchar(255)" json:"nameAtPurchase"`
	MinAtPurchase  int    `json:"minAtPurchase"`
	MaxAtPurchase  int    `json:"maxAtPurchase"`

	DisplayOrder int `gorm:"not null;default:0" json:"displayOrder"`

	GarnishItems []OrderGarnishItem `gorm:"foreignKey:OrderChoiceID;constraint:OnDelete:CASCADE" json:"garnishItems,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderGarnishItem is one selected add-on under an order choice.
type OrderGarnishItem struct {
	ID            string  `gorm:"type:char(36);primaryKey" json:"id"`
	EnvironmentID *string `gorm:"type:char(36);index" json:"environmentId"`
	OrderChoiceID string  `gorm:"type:char(36);not null;index" json:"orderChoiceId"`

	GarnishItemID *string `gorm:"type:char(36)" json:"garnishItemId"`

	DescriptionAtPurchase string  `gorm:"type:text" json:"descriptionAtPurchase"`
	DetailsAtPurchase     *string `gorm:"type:text" json:"detailsAtPurchase"`
	LogoURLAtPurchase     *string `gorm:"type:text" json:"logoUrlAtPurchase"`
	LogoBase64AtPurchase  *string `gorm:"type:longtext" json:"logoBase64AtPurchase"`
	UnitPriceAtPurchase   int     `gorm:"not null" json:"unitPriceAtPurchase"`

	Quantity int `gorm:"not null;default:1" json:"quantity"`
	// UnitPriceAtPurchase * Quantity.
	TotalPriceForGarnishItemLine int `gorm:"not null;default:0" json:"totalPriceForGarnishItemLine"`

	DisplayOrder int `gorm:"not null;default:0" json:"displayOrder"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
