package routes

import (
	"checkout-service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
	PathAddress  = "/address"
)

func addStorefrontRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, addressHandler *handlers.AddressHandler, productHandler *handlers.ProductHandler) {
	rg.POST(PathCheckout, checkoutHandler.Checkout)
	rg.GET(PathAddress+"/:cep", addressHandler.GetAddress)

	// Storefront product reads; writes live under the admin routes.
	rg.GET(PathProducts+"/slug/:slug", productHandler.GetProductBySlug)
}
