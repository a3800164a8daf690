package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/KelwinHenrique/garfai-be/internal/adapter/http/dto/request"
	response "github.com/KelwinHenrique/garfai-be/internal/adapter/http/dto/response"
	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"
	"github.com/KelwinHenrique/garfai-be/internal/usecase"
	"github.com/KelwinHenrique/garfai-be/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errMissingClientID     = pkg.NewDomainErrorSimple("MISSING_CLIENT_ID", "clientId header is required", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for the order-composition engine.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder opens a new CART order for the calling client.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	clientID, ok := requireClientID(c)
	if !ok {
		return
	}

	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), clientID, payload.ToInput())
	if err != nil {
		log.Printf("[order][handler] create failed client_id=%s err=%v", clientID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, order)
}

// AddOrderItem adds one composed line (item + choices + garnish) to the cart.
func (h *OrderHandler) AddOrderItem(c *gin.Context) {
	clientID, ok := requireClientID(c)
	if !ok {
		return
	}
	orderID := c.Param("orderId")

	var payload request.AddOrderItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.AddOrderItem(c.Request.Context(), orderID, clientID, payload.ToInput())
	if err != nil {
		log.Printf("[order][handler] add-item failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAddOrderItemResult(result))
}

// UpdateOrderStatus moves the order through its lifecycle.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	clientID, ok := requireClientID(c)
	if !ok {
		return
	}
	orderID := c.Param("orderId")

	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.UpdateOrderStatus(c.Request.Context(), orderID, clientID, entities.OrderStatus(payload.Status), payload.ResolveCancellationReason())
	if err != nil {
		log.Printf("[order][handler] status update failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderStatusResult(result))
}

func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	clientID, ok := requireClientID(c)
	if !ok {
		return
	}

	order, err := h.usecase.GetOrderByID(c.Request.Context(), c.Param("orderId"), clientID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetOrderMerchantView returns the full aggregate including buyer identity.
func (h *OrderHandler) GetOrderMerchantView(c *gin.Context) {
	details, err := h.usecase.GetOrderDetails(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderDetails(details))
}

// GetOrderByFlow resolves the order for one conversational checkout session.
func (h *OrderHandler) GetOrderByFlow(c *gin.Context) {
	clientID, ok := requireClientID(c)
	if !ok {
		return
	}

	order, err := h.usecase.GetOrderByFlowAndClient(c.Request.Context(), c.Param("flowId"), clientID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ListClientOrders(c *gin.Context) {
	clientID, ok := requireClientID(c)
	if !ok {
		return
	}

	orders, err := h.usecase.ListOrdersByClient(c.Request.Context(), clientID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) ListOrdersByStatus(c *gin.Context) {
	environmentID := c.Query("environmentId")
	if environmentID == "" {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	orders, err := h.usecase.ListOrdersByStatus(c.Request.Context(), environmentID, entities.OrderStatus(c.Param("status")))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func requireClientID(c *gin.Context) (string, bool) {
	clientID := c.GetHeader("clientId")
	if clientID == "" {
		c.JSON(errMissingClientID.HTTPStatus, errMissingClientID.ToHTTPError())
		return "", false
	}
	return clientID, true
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuantity), errors.Is(err, usecase.ErrInvalidOrderStatus), errors.Is(err, usecase.ErrChoiceCardinality):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderOwnership), errors.Is(err, usecase.ErrClientAddressOwnership):
		return pkg.NewDomainErrorSimple("OWNERSHIP_MISMATCH", "Resource does not belong to calling client", http.StatusForbidden)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientAddressNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_ADDRESS_NOT_FOUND", "Client address not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEnvironmentNotFound):
		return pkg.NewDomainErrorSimple("ENVIRONMENT_NOT_FOUND", "Environment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChoiceNotFound):
		return pkg.NewDomainErrorSimple("CHOICE_NOT_FOUND", "Choice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGarnishItemNotFound):
		return pkg.NewDomainErrorSimple("GARNISH_ITEM_NOT_FOUND", "Garnish item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotModifiable), errors.Is(err, usecase.ErrIllegalStatusTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_ORDER_TRANSITION", "Order status does not allow this operation", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
