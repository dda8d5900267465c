package routes

import (
	"log"

	_ "checkout-service/docs" // swag-generated documentation
	"checkout-service/internal/adapter/http/handlers"
	"checkout-service/internal/adapter/persistence/repository"
	"checkout-service/internal/config"
	"checkout-service/internal/infrastructure/database"
	"checkout-service/internal/infrastructure/payments"
	"checkout-service/internal/infrastructure/postal"
	"checkout-service/internal/usecase"
	"checkout-service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run starts the server. Configuration is loaded once here and handed down
// explicitly; nothing below this point reads the environment.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB(cfg)

	orderRepo := repository.NewOrderDynamoRepository(ddb)
	productRepo := repository.NewProductDynamoRepository(ddb)
	settingsRepo := repository.NewSettingsDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	offlineGateway := payments.NewOfflineGateway()

	postalClient := postal.NewViaCEPClient(cfg.ViaCEPBaseURL)

	checkoutUseCase := usecase.NewCheckoutUseCase(orderRepo, productRepo, settingsRepo, paymentGateway, offlineGateway)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, paymentGateway)
	productUseCase := usecase.NewProductUseCase(productRepo)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)
	addressUseCase := usecase.NewAddressUseCase(postalClient)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)
	addressHandler := handlers.NewAddressHandler(addressUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, checkoutHandler, addressHandler, productHandler)
	addAdminRoutes(v1, orderHandler, productHandler, settingsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
