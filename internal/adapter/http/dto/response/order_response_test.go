package response

import (
	"testing"

	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"
	"github.com/KelwinHenrique/garfai-be/internal/usecase"
)

func TestFromAddOrderItemResult(t *testing.T) {
	res := FromAddOrderItemResult(usecase.AddOrderItemResult{
		OrderItem: entities.OrderItem{ID: "oi-1", Quantity: 2, TotalPriceForItemLine: 3000},
		Message:   "Item added to order successfully",
	})
	if res.OrderItem.ID != "oi-1" || res.OrderItem.TotalPriceForItemLine != 3000 {
		t.Fatalf("unexpected order item: %+v", res.OrderItem)
	}
	if res.Message != "Item added to order successfully" {
		t.Fatalf("unexpected message: %q", res.Message)
	}
}

func TestFromOrderStatusResult(t *testing.T) {
	res := FromOrderStatusResult(usecase.OrderStatusResult{
		Order:   entities.Order{ID: "o-1", Status: entities.OrderStatusInPreparation},
		Message: "Order status updated successfully",
	})
	if res.Order.ID != "o-1" || res.Order.Status != entities.OrderStatusInPreparation {
		t.Fatalf("unexpected order: %+v", res.Order)
	}
}

func TestFromOrderDetails(t *testing.T) {
	res := FromOrderDetails(usecase.OrderDetails{
		Order: entities.Order{ID: "o-1", SubtotalAmount: 3000, TotalAmount: 3500},
		Client: entities.Client{
			ID:     "c-1",
			Name:   "Maria",
			Sender: "5511999999999",
		},
	})
	if res.Order.ID != "o-1" || res.Order.TotalAmount != 3500 {
		t.Fatalf("unexpected order: %+v", res.Order)
	}
	if res.Client.ID != "c-1" || res.Client.Name != "Maria" || res.Client.Sender != "5511999999999" {
		t.Fatalf("unexpected client summary: %+v", res.Client)
	}
}
