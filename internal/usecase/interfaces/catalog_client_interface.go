package interfaces

import (
	"context"
	"encoding/json"
)

// RemoteGarnishItem is one add-on option in the external catalog document.
// Prices in the remote document are decimal currency units.
type RemoteGarnishItem struct {
	ID          string  `json:"id"`
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Details     *string `json:"details"`
	LogoURL     *string `json:"logoUrl"`
	UnitPrice   float64 `json:"unitPrice"`
}

type RemoteChoice struct {
	Code         string              `json:"code"`
	Name         string              `json:"name"`
	Min          int                 `json:"min"`
	Max          int                 `json:"max"`
	GarnishItems []RemoteGarnishItem `json:"garnishItens"`
}

type RemoteProductTag struct {
	Group string   `json:"group"`
	Tags  []string `json:"tags"`
}

type RemoteProductInfo struct {
	ID        string  `json:"id"`
	Packaging *string `json:"packaging"`
	Sequence  *int    `json:"sequence"`
	Quantity  float64 `json:"quantity"`
	Unit      *string `json:"unit"`
	EAN       *string `json:"ean"`
}

type RemoteSellingOption struct {
	Minimum        *float64 `json:"minimum"`
	Incremental    *float64 `json:"incremental"`
	AverageUnit    *string  `json:"averageUnit"`
	AvailableUnits []string `json:"availableUnits"`
}

type RemoteItem struct {
	ID                string               `json:"id"`
	Code              string               `json:"code"`
	Description       string               `json:"description"`
	Details           *string              `json:"details"`
	LogoURL           *string              `json:"logoUrl"`
	NeedChoices       bool                 `json:"needChoices"`
	UnitPrice         float64              `json:"unitPrice"`
	UnitMinPrice      *float64             `json:"unitMinPrice"`
	UnitOriginalPrice *float64             `json:"unitOriginalPrice"`
	ProductTags       []RemoteProductTag   `json:"productTags"`
	ProductInfo       *RemoteProductInfo   `json:"productInfo"`
	SellingOption     *RemoteSellingOption `json:"sellingOption"`
	Choices           []RemoteChoice       `json:"choices"`
	Tags              []string             `json:"tags"`
}

type RemoteCategory struct {
	Code  string       `json:"code"`
	Name  string       `json:"name"`
	Items []RemoteItem `json:"itens"`
}

// RemoteCatalog is the denormalized menu document fetched from the external
// marketplace. Raw keeps the original body for storage on the Menu record.
type RemoteCatalog struct {
	Categories []RemoteCategory
	Raw        json.RawMessage
}

// ICatalogClient abstracts the external marketplace the import pipeline pulls
// catalogs and images from.

type ICatalogClient interface {
	FetchCatalog(ctx context.Context, merchantID string) (RemoteCatalog, error)
	// FetchImageBase64 downloads an image (absolute or marketplace-relative
	// URL) and returns it base64-encoded, or "" when logoURL is empty.
	FetchImageBase64(ctx context.Context, logoURL string) (string, error)
}
