package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KelwinHenrique/garfai-be/internal/adapter/http/handlers/mocks"
	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"
	"github.com/KelwinHenrique/garfai-be/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const (
	clientID  = "3f2c8f0a-1111-4a5b-9c3d-000000000001"
	orderID   = "3f2c8f0a-2222-4a5b-9c3d-000000000002"
	itemID    = "3f2c8f0a-3333-4a5b-9c3d-000000000003"
	flowID    = "3f2c8f0a-4444-4a5b-9c3d-000000000004"
	envID     = "3f2c8f0a-5555-4a5b-9c3d-000000000005"
	addressID = "3f2c8f0a-6666-4a5b-9c3d-000000000006"
)

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	createBody := `{"whatsappFlowsId":"` + flowID + `","environmentId":"` + envID + `","clientAddressId":"` + addressID + `"}`

	t.Run("missing client header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(createBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("clientId", clientID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("client not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), clientID, gomock.Any()).Return(entities.Order{}, usecase.ErrClientNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(createBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("clientId", clientID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), clientID, usecase.CreateOrderInput{
			WhatsappFlowsID: flowID,
			EnvironmentID:   envID,
			ClientAddressID: addressID,
		}).Return(entities.Order{ID: orderID, Status: entities.OrderStatusCart}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(createBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("clientId", clientID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var got entities.Order
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got.ID != orderID || got.Status != entities.OrderStatusCart {
			t.Fatalf("unexpected body: %+v", got)
		}
	})
}

func TestOrderHandler_AddOrderItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	body := `{"itemId":"` + itemID + `","quantity":2}`

	t.Run("ownership maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:orderId/items", h.AddOrderItem)

		uc.EXPECT().AddOrderItem(gomock.Any(), orderID, clientID, gomock.Any()).Return(usecase.AddOrderItemResult{}, usecase.ErrOrderOwnership)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/"+orderID+"/items", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("clientId", clientID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("terminal order maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:orderId/items", h.AddOrderItem)

		uc.EXPECT().AddOrderItem(gomock.Any(), orderID, clientID, gomock.Any()).Return(usecase.AddOrderItemResult{}, usecase.ErrOrderNotModifiable)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/"+orderID+"/items", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("clientId", clientID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("zero quantity rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:orderId/items", h.AddOrderItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/"+orderID+"/items", bytes.NewBufferString(`{"itemId":"`+itemID+`","quantity":0}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("clientId", clientID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success forwards choice pairs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:orderId/items", h.AddOrderItem)

		choiceID := "3f2c8f0a-7777-4a5b-9c3d-000000000007"
		optionID := "3f2c8f0a-8888-4a5b-9c3d-000000000008"
		uc.EXPECT().AddOrderItem(gomock.Any(), orderID, clientID, usecase.AddOrderItemInput{
			ItemID:   itemID,
			Quantity: 2,
			Choices:  []usecase.ChoiceSelection{{ChoiceID: choiceID, OptionID: optionID}},
		}).Return(usecase.AddOrderItemResult{
			OrderItem: entities.OrderItem{ID: "oi-1", TotalPriceForItemLine: 3000},
			Message:   "Item added to order successfully",
		}, nil)

		payload := `{"itemId":"` + itemID + `","quantity":2,"choices":[{"choiceId":"` + choiceID + `","optionId":"` + optionID + `"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/"+orderID+"/items", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("clientId", clientID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("illegal transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PUT("/v1/orders/:orderId/status", h.UpdateOrderStatus)

		uc.EXPECT().UpdateOrderStatus(gomock.Any(), orderID, clientID, entities.OrderStatusCompleted, "").Return(usecase.OrderStatusResult{}, usecase.ErrIllegalStatusTransition)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/"+orderID+"/status", bytes.NewBufferString(`{"status":"COMPLETED"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("clientId", clientID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("cancellation passes reason through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PUT("/v1/orders/:orderId/status", h.UpdateOrderStatus)

		uc.EXPECT().UpdateOrderStatus(gomock.Any(), orderID, clientID, entities.OrderStatusCanceledByUser, "too slow").Return(usecase.OrderStatusResult{
			Order:   entities.Order{ID: orderID, Status: entities.OrderStatusCanceledByUser},
			Message: "Order status updated successfully",
		}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/"+orderID+"/status", bytes.NewBufferString(`{"status":"CANCELED_BY_USER","cancellationReason":"too slow"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("clientId", clientID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Reads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get by id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:orderId", h.GetOrderByID)

		uc.EXPECT().GetOrderByID(gomock.Any(), orderID, clientID).Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/"+orderID, nil)
		req.Header.Set("clientId", clientID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get by flow success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/flows/:flowId", h.GetOrderByFlow)

		uc.EXPECT().GetOrderByFlowAndClient(gomock.Any(), flowID, clientID).Return(entities.Order{ID: orderID}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/flows/"+flowID, nil)
		req.Header.Set("clientId", clientID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("merchant view needs no client header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:orderId/merchant", h.GetOrderMerchantView)

		uc.EXPECT().GetOrderDetails(gomock.Any(), orderID).Return(usecase.OrderDetails{
			Order:  entities.Order{ID: orderID},
			Client: entities.Client{ID: clientID, Name: "Maria"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/"+orderID+"/merchant", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list by status requires environment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/status/:status", h.ListOrdersByStatus)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/status/IN_PREPARATION", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("list by status success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/status/:status", h.ListOrdersByStatus)

		uc.EXPECT().ListOrdersByStatus(gomock.Any(), envID, entities.OrderStatusInPreparation).Return([]entities.Order{{ID: orderID}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/status/IN_PREPARATION?environmentId="+envID, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
