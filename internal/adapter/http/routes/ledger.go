package routes

import (
	"storeledger/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathConfig = "/config"
	PathStores = "/stores"
)

func addLedgerRoutes(rg *gin.RouterGroup, configHandler *handlers.FeeConfigHandler, storeHandler *handlers.StoreHandler, paymentHandler *handlers.PaymentHandler) {
	cfg := rg.Group(PathConfig)
	{
		cfg.GET("", configHandler.GetConfig)
		cfg.POST("", configHandler.SaveConfig)
	}

	stores := rg.Group(PathStores)
	{
		stores.POST("", storeHandler.CreateStore)
		stores.GET("", storeHandler.ListStores)
		stores.GET("/:store_id", storeHandler.GetStore)

		stores.POST("/:store_id/payments", paymentHandler.CreatePayment)
		stores.GET("/:store_id/payments", paymentHandler.ListPayments)

		stores.POST("/:store_id/payments/processed", paymentHandler.MarkProcessed)
		stores.POST("/:store_id/payments/rejected", paymentHandler.MarkRejected)
		stores.POST("/:store_id/payments/completed", paymentHandler.MarkCompleted)
		stores.GET("/:store_id/payments/:payment_id", paymentHandler.GetPayment)

		stores.POST("/:store_id/payout", paymentHandler.RequestPayout)
	}
}
