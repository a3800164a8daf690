package routes

import (
	"github.com/KelwinHenrique/garfai-be/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		// Endpoints compatíveis com IOrderUseCase.
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListClientOrders)
		orders.GET("/flows/:flowId", orderHandler.GetOrderByFlow)
		orders.GET("/status/:status", orderHandler.ListOrdersByStatus)
		orders.GET("/:orderId", orderHandler.GetOrderByID)
		orders.GET("/:orderId/merchant", orderHandler.GetOrderMerchantView)
		orders.POST("/:orderId/items", orderHandler.AddOrderItem)
		orders.PUT("/:orderId/status", orderHandler.UpdateOrderStatus)
	}
}
