package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/studypass-backend/internal/http/handlers"
)

type RouterConfig struct {
	HealthHandler       *handlers.HealthHandler
	SubscriptionHandler *handlers.SubscriptionHandler

	AllowOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/subscriptions/boleto", cfg.SubscriptionHandler.CreateBoletoSubscription)
		api.POST("/subscriptions/paypal", cfg.SubscriptionHandler.CreatePayPalSubscription)
		api.POST("/subscriptions/credit-card", cfg.SubscriptionHandler.CreateCreditCardSubscription)
	}

	return router
}
