package response

import (
	"testing"
	"time"

	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"

	"gorm.io/datatypes"
)

func TestFromMenu(t *testing.T) {
	now := time.Now().UTC()
	m := entities.Menu{
		ID:                 "m-1",
		EnvironmentID:      "env-1",
		ExternalMerchantID: "merchant-42",
		Name:               "Imported catalog - 2026-01-01T00:00:00Z",
		IsActive:           true,
		MenuStatus:         entities.MenuStatusCompleted,
		ImportedAt:         &now,
		CreatedAt:          now,
		RawCatalogData:     datatypes.JSON(`{"huge":"document"}`),
		Categories:         []entities.MenuCategory{{ID: "cat-1"}},
	}

	res := FromMenu(m)
	if res.ID != "m-1" || res.EnvironmentID != "env-1" || res.ExternalMerchantID != "merchant-42" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if !res.IsActive || res.MenuStatus != "COMPLETED" {
		t.Fatalf("unexpected status fields: %+v", res)
	}
	if res.ImportedAt == nil || !res.ImportedAt.Equal(now) || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromMenuList(t *testing.T) {
	out := FromMenuList([]entities.Menu{{ID: "m-1"}, {ID: "m-2"}})
	if len(out) != 2 || out[0].ID != "m-1" || out[1].ID != "m-2" {
		t.Fatalf("unexpected list: %+v", out)
	}

	if got := FromMenuList(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}
