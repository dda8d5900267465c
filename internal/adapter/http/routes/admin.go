package routes

import (
	"checkout-service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/orders"
	PathProducts = "/products"
	PathSettings = "/settings"
)

func addAdminRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, productHandler *handlers.ProductHandler, settingsHandler *handlers.SettingsHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
		orders.POST("/:id/refresh-status", orderHandler.RefreshOrderStatus)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
		orders.DELETE("", orderHandler.DeleteOrdersByPaymentMethod)
	}

	products := rg.Group(PathProducts)
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.POST("", productHandler.CreateProduct)
		products.PUT("/:id", productHandler.UpdateProduct)
		products.DELETE("/:id", productHandler.DeleteProduct)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("", settingsHandler.GetPaymentSettings)
		settings.PUT("", settingsHandler.UpdatePaymentSettings)
		settings.GET("/pixels", settingsHandler.GetPixelSettings)
		settings.PUT("/pixels", settingsHandler.UpdatePixelSettings)
	}
}
