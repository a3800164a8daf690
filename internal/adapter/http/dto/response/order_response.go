package response

import (
	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"
	"github.com/KelwinHenrique/garfai-be/internal/usecase"
)

// Order entities are wire-shaped (cents, camelCase json tags), so the order
// responses wrap them instead of re-mapping every field.

type AddOrderItemResponse struct {
	OrderItem entities.OrderItem `json:"orderItem"`
	Message   string             `json:"message"`
}

func FromAddOrderItemResult(r usecase.AddOrderItemResult) AddOrderItemResponse {
	return AddOrderItemResponse{OrderItem: r.OrderItem, Message: r.Message}
}

type OrderStatusResponse struct {
	Order   entities.Order `json:"order"`
	Message string         `json:"message"`
}

func FromOrderStatusResult(r usecase.OrderStatusResult) OrderStatusResponse {
	return OrderStatusResponse{Order: r.Order, Message: r.Message}
}

// ClientSummary is the buyer identity exposed on the merchant view.
type ClientSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Sender string `json:"sender"`
}

type OrderDetailsResponse struct {
	Order  entities.Order `json:"order"`
	Client ClientSummary  `json:"client"`
}

func FromOrderDetails(d usecase.OrderDetails) OrderDetailsResponse {
	return OrderDetailsResponse{
		Order: d.Order,
		Client: ClientSummary{
			ID:     d.Client.ID,
			Name:   d.Client.Name,
			Sender: d.Client.Sender,
		},
	}
}
