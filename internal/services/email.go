package services

import (
	"context"
	"fmt"

	"github.com/yungbote/studypass-backend/internal/platform/logger"
	"github.com/yungbote/studypass-backend/internal/platform/sendgrid"
)

// EmailService sends transactional mail. Fire-and-forget from the
// handler's perspective; delivery guarantees belong to the provider.
type EmailService interface {
	Send(ctx context.Context, toName, toAddress, subject, body string) error
}

type emailService struct {
	log    *logger.Logger
	client sendgrid.Client
}

func NewEmailService(log *logger.Logger, client sendgrid.Client) EmailService {
	serviceLog := log.With("service", "EmailService")
	return &emailService{log: serviceLog, client: client}
}

func (es *emailService) Send(ctx context.Context, toName, toAddress, subject, body string) error {
	result, err := es.client.Send(ctx, sendgrid.SendEmailRequest{
		To:      []sendgrid.EmailAddress{{Email: toAddress, Name: toName}},
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	es.log.Debug("Email sent", "status", result.StatusCode, "message_id", result.MessageID)
	return nil
}
