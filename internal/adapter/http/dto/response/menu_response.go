package response

import (
	"time"

	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"
)

// MenuSummaryResponse is the list/import view of a menu: status and
// activation without the raw catalog document or the category tree.
type MenuSummaryResponse struct {
	ID                 string     `json:"id"`
	EnvironmentID      string     `json:"environmentId"`
	ExternalMerchantID string     `json:"externalMerchantId"`
	Name               string     `json:"name"`
	IsActive           bool       `json:"isActive"`
	MenuStatus         string     `json:"menuStatus"`
	ImportedAt         *time.Time `json:"importedAt"`
	CreatedAt          time.Time  `json:"createdAt"`
}

func FromMenu(m entities.Menu) MenuSummaryResponse {
	return MenuSummaryResponse{
		ID:                 m.ID,
		EnvironmentID:      m.EnvironmentID,
		ExternalMerchantID: m.ExternalMerchantID,
		Name:               m.Name,
		IsActive:           m.IsActive,
		MenuStatus:         string(m.MenuStatus),
		ImportedAt:         m.ImportedAt,
		CreatedAt:          m.CreatedAt,
	}
}

func FromMenuList(menus []entities.Menu) []MenuSummaryResponse {
	out := make([]MenuSummaryResponse, 0, len(menus))
	for _, m := range menus {
		out = append(out, FromMenu(m))
	}
	return out
}
