package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/studypass-backend/internal/server"
)

func wireRouter(cfg Config, handlerset Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		HealthHandler:       handlerset.Health,
		SubscriptionHandler: handlerset.Subscription,
		AllowOrigins:        cfg.AllowOrigins,
	})
}
