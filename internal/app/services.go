package app

import (
	"fmt"

	"github.com/yungbote/studypass-backend/internal/platform/logger"
	"github.com/yungbote/studypass-backend/internal/platform/sendgrid"
	"github.com/yungbote/studypass-backend/internal/services"
)

type Services struct {
	Email        services.EmailService
	Subscription services.SubscriptionService
}

func wireServices(log *logger.Logger, cfg Config, reposet Repos) (Services, error) {
	log.Info("Wiring services...")

	sendgridCfg := sendgrid.ConfigFromEnv()
	if sendgridCfg.DefaultFromName == "" {
		sendgridCfg.DefaultFromName = cfg.SendgridFromName
	}
	if sendgridCfg.DefaultFromEmail == "" {
		sendgridCfg.DefaultFromEmail = cfg.SendgridFromEmail
	}
	sendgridClient, err := sendgrid.New(log, sendgridCfg)
	if err != nil {
		return Services{}, fmt.Errorf("init sendgrid: %w", err)
	}

	emailService := services.NewEmailService(log, sendgridClient)
	subscriptionService := services.NewSubscriptionService(log, reposet.Student, emailService)

	return Services{
		Email:        emailService,
		Subscription: subscriptionService,
	}, nil
}
