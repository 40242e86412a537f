package routes

import (
	"log"
	"strconv"

	_ "storeledger/docs" // swagger registration
	"storeledger/internal/adapter/http/handlers"
	"storeledger/internal/adapter/persistence/repository"
	"storeledger/internal/config"
	"storeledger/internal/infrastructure/database"
	"storeledger/internal/infrastructure/metrics"
	"storeledger/internal/usecase"
	"storeledger/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run wires the service and starts the HTTP server.
func Run() {
	cfg := config.MustLoad()

	router := gin.Default()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	registerRoutes(router, cfg, metrics.NewLedgerMetrics(prometheus.DefaultRegisterer))

	if err := router.Run(":" + strconv.Itoa(cfg.HTTPServer.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func registerRoutes(router *gin.Engine, cfg *config.AppConfig, m *metrics.LedgerMetrics) {
	storeRepo, paymentRepo := buildRepositories(cfg)

	configUseCase := usecase.NewConfigUseCase()
	storeUseCase := usecase.NewStoreUseCase(storeRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, storeRepo, configUseCase, m, cfg.Payout.Window)

	configHandler := handlers.NewFeeConfigHandler(configUseCase)
	storeHandler := handlers.NewStoreHandler(storeUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLedgerRoutes(v1, configHandler, storeHandler, paymentHandler)
}

func buildRepositories(cfg *config.AppConfig) (interfaces.IStoreRepository, interfaces.IPaymentRepository) {
	switch cfg.Storage.Driver {
	case "dynamodb":
		ddb := database.ConnectDynamoDB()
		log.Printf("[routes] storage driver: dynamodb")
		return repository.NewStoreDynamoRepository(ddb), repository.NewPaymentDynamoRepository(ddb)
	default:
		log.Printf("[routes] storage driver: memory")
		return repository.NewStoreMemoryRepository(), repository.NewPaymentMemoryRepository()
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
