package catalog

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/KelwinHenrique/garfai-be/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

const (
	defaultCatalogBaseURL = "https://marketplace.ifood.com.br/v1"
	defaultImageBaseURL   = "https://static.ifood-static.com.br/image/upload/t_low/pratos/"
)

// MarketplaceClient fetches the denormalized catalog document and item images
// from the external marketplace over HTTP.

type MarketplaceClient struct {
	http        *resty.Client
	catalogBase string
	imageBase   string
}

var _ interfaces.ICatalogClient = (*MarketplaceClient)(nil)

func NewMarketplaceClient() *MarketplaceClient {
	return &MarketplaceClient{
		http:        resty.New().SetTimeout(30 * time.Second),
		catalogBase: getenvDefault("CATALOG_API_BASE_URL", defaultCatalogBaseURL),
		imageBase:   getenvDefault("CATALOG_IMAGE_BASE_URL", defaultImageBaseURL),
	}
}

// catalogEnvelope mirrors the remote response: {code, message, data: {menu: [...]}}.
type catalogEnvelope struct {
	Code    string  `json:"code"`
	Message *string `json:"message"`
	Data    struct {
		Menu []interfaces.RemoteCategory `json:"menu"`
	} `json:"data"`
}

func (c *MarketplaceClient) FetchCatalog(ctx context.Context, merchantID string) (interfaces.RemoteCatalog, error) {
	url := fmt.Sprintf("%s/merchants/%s/catalog", c.catalogBase, merchantID)

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(url)
	if err != nil {
		return interfaces.RemoteCatalog{}, err
	}
	if resp.StatusCode() != 200 {
		return interfaces.RemoteCatalog{}, fmt.Errorf("catalog fetch for merchant %s failed with status %d: %s", merchantID, resp.StatusCode(), string(resp.Body()))
	}

	var envelope catalogEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return interfaces.RemoteCatalog{}, fmt.Errorf("failed to parse catalog response: %w", err)
	}

	return interfaces.RemoteCatalog{
		Categories: envelope.Data.Menu,
		Raw:        json.RawMessage(resp.Body()),
	}, nil
}

// FetchImageBase64 downloads an image and returns the raw base64 encoding of
// its bytes. Relative paths are resolved against the marketplace image CDN.
func (c *MarketplaceClient) FetchImageBase64(ctx context.Context, logoURL string) (string, error) {
	if logoURL == "" {
		return "", nil
	}

	fullURL := logoURL
	if !strings.HasPrefix(logoURL, "http") {
		fullURL = c.imageBase + logoURL
	}

	resp, err := c.http.R().SetContext(ctx).Get(fullURL)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("image fetch failed with status %d for %s", resp.StatusCode(), fullURL)
	}

	return base64.StdEncoding.EncodeToString(resp.Body()), nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
