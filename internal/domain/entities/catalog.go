package entities

import (
	"time"

	"gorm.io/datatypes"
)

// MenuImportStatus tracks the catalog import pipeline for one Menu record.
type MenuImportStatus string

const (
	MenuStatusNotImported MenuImportStatus = "NOT_IMPORTED"
	MenuStatusScheduled   MenuImportStatus = "SCHEDULED"
	MenuStatusProcessing  MenuImportStatus = "PROCESSING"
	MenuStatusCompleted   MenuImportStatus = "COMPLETED"
	MenuStatusFailed      MenuImportStatus = "FAILED"
)

type MenuCategoryType string

const (
	MenuCategoryTypeMainItems MenuCategoryType = "MAIN_ITEMS"
	MenuCategoryTypePizza     MenuCategoryType = "PIZZA"
)

type PortionSize string

const (
	PortionSizeServes1       PortionSize = "SERVES_1"
	PortionSizeServes2       PortionSize = "SERVES_2"
	PortionSizeServes3       PortionSize = "SERVES_3"
	PortionSizeServes4       PortionSize = "SERVES_4"
	PortionSizeNotApplicable PortionSize = "NOT_APPLICABLE"
)

type DietaryRestriction string

const (
	DietaryRestrictionGlutenFree DietaryRestriction = "GLUTEN_FREE"
	DietaryRestrictionLacFree    DietaryRestriction = "LAC_FREE"
	DietaryRestrictionOrganic    DietaryRestriction = "ORGANIC"
	DietaryRestrictionSugarFree  DietaryRestriction = "SUGAR_FREE"
	DietaryRestrictionVegan      DietaryRestriction = "VEGAN"
	DietaryRestrictionVegetarian DietaryRestriction = "VEGETARIAN"
)

type DishClassification string

const (
	DishClassificationAlcoholicDrink DishClassification = "ALCOHOLIC_DRINK"
	DishClassificationFrosty         DishClassification = "FROSTY"
)

// Menu is one imported catalog snapshot for an environment. At most one menu
// per environment is active at a time; the import pipeline swaps activation
// only after a successful import.
type Menu struct {
	ID            string `gorm:"type:char(36);primaryKey" json:"id"`
	EnvironmentID string `gorm:"type:char(36);not null;index" json:"environmentId"`

	ExternalMerchantID string         `gorm:"type:varchar(100)" json:"externalMerchantId"`
	RawCatalogData     datatypes.JSON `json:"rawCatalogData,omitempty"`

	IsActive   bool             `gorm:"not null;default:false" json:"isActive"`
	Name       string           `gorm:"type:varchar(255)" json:"name"`
	ImportedAt *time.Time       `json:"importedAt"`
	MenuStatus MenuImportStatus `gorm:"type:varchar(20);not null;default:NOT_IMPORTED" json:"menuStatus"`

	Categories []MenuCategory `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE" json:"categories,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type MenuCategory struct {
	ID            string `gorm:"type:char(36);primaryKey" json:"id"`
	EnvironmentID string `gorm:"type:char(36);not null;index" json:"environmentId"`
	MenuID        string `gorm:"type:char(36);not null;index" json:"menuId"`

	ExternalCode string           `gorm:"type:varchar(100)" json:"externalCode"`
	Name         string           `gorm:"type:varchar(255);not null" json:"name"`
	DisplayOrder int              `gorm:"not null;default:0" json:"displayOrder"`
	IsActive     bool             `gorm:"not null;default:true" json:"isActive"`
	CategoryType MenuCategoryType `gorm:"type:varchar(20);not null;default:MAIN_ITEMS" json:"categoryType"`

	Items []Item `gorm:"foreignKey:MenuCategoryID;constraint:OnDelete:CASCADE" json:"items,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Item is a sellable catalog entry. Read-only for the order engine: the
// composer copies its fields onto order lines and never writes back.
type Item struct {
	ID             string `gorm:"type:char(36);primaryKey" json:"id"`
	EnvironmentID  string `gorm:"type:char(36);not null;index" json:"environmentId"`
	MenuCategoryID string `gorm:"type:char(36);not null;index" json:"menuCategoryId"`

	ExternalItemID   string `gorm:"type:varchar(100)" json:"externalItemId"`
	ExternalItemCode string `gorm:"type:varchar(100)" json:"externalItemCode"`

	Description string  `gorm:"type:text;not null" json:"description"`
	Details     *string `gorm:"type:text" json:"details"`
	LogoURL     *string `gorm:"type:text" json:"logoUrl"`
	LogoBase64  *string `gorm:"type:longtext" json:"logoBase64"`

	NeedChoices bool `gorm:"not null;default:false" json:"needChoices"`

	UnitPrice         int  `gorm:"not null" json:"unitPrice"`
	UnitMinPrice      *int `json:"unitMinPrice"`
	UnitOriginalPrice *int `json:"unitOriginalPrice"`

	PromotionTags       datatypes.JSONSlice[string] `json:"promotionTags"`
	PortionSizeTag      PortionSize                 `gorm:"type:varchar(20);not null;default:NOT_APPLICABLE" json:"portionSizeTag"`
	DietaryRestrictions datatypes.JSONSlice[string] `json:"dietaryRestrictions"`
	DishClassifications datatypes.JSONSlice[string] `json:"dishClassifications"`

	DisplayOrder int  `gorm:"not null;default:0" json:"displayOrder"`
	IsActive     bool `gorm:"not null;default:true" json:"isActive"`

	ProductInfo   *ProductInfo   `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"productInfo,omitempty"`
	SellingOption *SellingOption `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"sellingOption,omitempty"`
	Choices       []Choice       `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"choices,omitempty"`

	// Historical order lines outlive the catalog row; deleting it only nulls
	// their back-reference.
	OrderItems []OrderItem `gorm:"foreignKey:ItemID;constraint:OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductInfo carries packaging/EAN data for grocery-style items.
type ProductInfo struct {
	ID            string `gorm:"type:char(36);primaryKey" json:"id"`
	EnvironmentID string `gorm:"type:char(36);not null;index" json:"environmentId"`
	ItemID        string `gorm:"type:char(36);not null;uniqueIndex" json:"itemId"`

	ExternalProductInfoID string  `gorm:"type:varchar(100)" json:"externalProductInfoId"`
	Packaging             *string `gorm:"type:varchar(100)" json:"packaging"`
	Sequence              *int    `json:"sequence"`
	Quantity              float64 `json:"quantity"`
	Unit                  *string `gorm:"type:varchar(20)" json:"unit"`
	EAN                   *string `gorm:"type:varchar(20)" json:"ean"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SellingOption describes how an item may be sold (weight, increments).
type SellingOption struct {
	ID            string `gorm:"type:char(36);primaryKey" json:"id"`
	EnvironmentID string `gorm:"type:char(36);not null;index" json:"environmentId"`
	ItemID        string `gorm:"type:char(36);not null;uniqueIndex" json:"itemId"`

	Minimum        *float64                    `json:"minimum"`
	Incremental    *float64                    `json:"incremental"`
	AverageUnit    *string                     `gorm:"type:varchar(20)" json:"averageUnit"`
	AvailableUnits datatypes.JSONSlice[string] `json:"availableUnits"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Choice is a named group of selectable garnish options with a required
// selection-count range.
type Choice struct {
	ID            string `gorm:"type:char(36);primaryKey" json:"id"`
	EnvironmentID string `gorm:"type:char(36);not null;index" json:"environmentId"`
	ItemID        string `gorm:"type:char(36);not null;index" json:"itemId"`

	ExternalChoiceCode string `gorm:"type:varchar(100)" json:"externalChoiceCode"`
	Name               string `gorm:"type:varchar(255);not null" json:"name"`
	Min                int    `gorm:"not null" json:"min"`
	Max                int    `gorm:"not null" json:"max"`

	DisplayOrder int  `gorm:"not null;default:0" json:"displayOrder"`
	IsActive     bool `gorm:"not null;default:true" json:"isActive"`

	GarnishItems []GarnishItem `gorm:"foreignKey:ChoiceID;constraint:OnDelete:CASCADE" json:"garnishItems,omitempty"`
	OrderChoices []OrderChoice `gorm:"foreignKey:ChoiceID;constraint:OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GarnishItem is an add-on selectable within a choice group.
type GarnishItem struct {
	ID            string `gorm:"type:char(36);primaryKey" json:"id"`
	EnvironmentID string `gorm:"type:char(36);not null;index" json:"environmentId"`
	ChoiceID      string `gorm:"type:char(36);not null;index" json:"choiceId"`

	ExternalGarnishItemID   string `gorm:"type:varchar(100)" json:"externalGarnishItemId"`
	ExternalGarnishItemCode string `gorm:"type:varchar(100)" json:"externalGarnishItemCode"`

	Description string  `gorm:"type:text;not null" json:"description"`
	Details     *string `gorm:"type:text" json:"details"`
	LogoURL     *string `gorm:"type:text" json:"logoUrl"`
	LogoBase64  *string `gorm:"type:longtext" json:"logoBase64"`
	UnitPrice   int     `gorm:"not null" json:"unitPrice"`

	DisplayOrder int  `gorm:"not null;default:0" json:"displayOrder"`
	IsActive     bool `gorm:"not null;default:true" json:"isActive"`

	OrderGarnishItems []OrderGarnishItem `gorm:"foreignKey:GarnishItemID;constraint:OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
