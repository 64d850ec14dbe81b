package app

import (
	"github.com/yungbote/studypass-backend/internal/http/handlers"
	"github.com/yungbote/studypass-backend/internal/platform/logger"
)

type Handlers struct {
	Health       *handlers.HealthHandler
	Subscription *handlers.SubscriptionHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:       handlers.NewHealthHandler(),
		Subscription: handlers.NewSubscriptionHandler(serviceset.Subscription),
	}
}
