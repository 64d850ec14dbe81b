package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yungbote/studypass-backend/internal/commands"
	"github.com/yungbote/studypass-backend/internal/domain"
	"github.com/yungbote/studypass-backend/internal/notifications"
	"github.com/yungbote/studypass-backend/internal/platform/logger"
	"github.com/yungbote/studypass-backend/internal/repos"
)

const (
	successMessage = "Assinatura realizada com sucesso"
	failureMessage = "Não foi possível realizar sua assinatura"

	welcomeSubject = "Bem vindo ao StudyPass"
	welcomeBody    = "Sua assinatura foi criada"
)

// SubscriptionService orchestrates one subscription creation per call:
// command pre-check, repository uniqueness checks, domain construction,
// notification aggregation, then all-or-nothing persistence plus
// welcome mail. Business failures come back inside the Result; the
// error return carries infrastructure faults only.
type SubscriptionService interface {
	CreateBoletoSubscription(ctx context.Context, cmd *commands.CreateBoletoSubscription) (commands.Result, error)
	CreatePayPalSubscription(ctx context.Context, cmd *commands.CreatePayPalSubscription) (commands.Result, error)
	CreateCreditCardSubscription(ctx context.Context, cmd *commands.CreateCreditCardSubscription) (commands.Result, error)
}

type subscriptionService struct {
	log          *logger.Logger
	studentRepo  repos.StudentRepo
	emailService EmailService
	now          func() time.Time
}

func NewSubscriptionService(log *logger.Logger, studentRepo repos.StudentRepo, emailService EmailService) SubscriptionService {
	serviceLog := log.With("service", "SubscriptionService")
	return &subscriptionService{
		log:          serviceLog,
		studentRepo:  studentRepo,
		emailService: emailService,
		now:          time.Now,
	}
}

func (ss *subscriptionService) CreateBoletoSubscription(ctx context.Context, cmd *commands.CreateBoletoSubscription) (commands.Result, error) {
	cmd.Validate()
	if !cmd.IsValid() {
		return commands.FailureResult(failureMessage, cmd.Notifications()), nil
	}

	collected, err := ss.checkUniqueness(ctx, cmd.Document, cmd.Email)
	if err != nil {
		return commands.Result{}, err
	}

	payerDocument := domain.NewDocument(cmd.PayerDocument, domain.DocumentType(cmd.PayerDocumentType))
	billingAddress := ss.billingAddress(cmd.SubscriptionFields)
	billingEmail := domain.NewEmail(cmd.Email)
	payment := domain.NewBoletoPayment(cmd.BarCode, cmd.BoletoNumber,
		cmd.PaidDate, cmd.ExpireDate, cmd.Total, cmd.TotalPaid,
		payerDocument, cmd.Payer, billingAddress, billingEmail)

	return ss.finish(ctx, cmd.SubscriptionFields, payment, collected)
}

func (ss *subscriptionService) CreatePayPalSubscription(ctx context.Context, cmd *commands.CreatePayPalSubscription) (commands.Result, error) {
	cmd.Validate()
	if !cmd.IsValid() {
		return commands.FailureResult(failureMessage, cmd.Notifications()), nil
	}

	collected, err := ss.checkUniqueness(ctx, cmd.Document, cmd.Email)
	if err != nil {
		return commands.Result{}, err
	}

	payerDocument := domain.NewDocument(cmd.PayerDocument, domain.DocumentType(cmd.PayerDocumentType))
	billingAddress := ss.billingAddress(cmd.SubscriptionFields)
	billingEmail := domain.NewEmail(cmd.Email)
	payment := domain.NewPayPalPayment(cmd.TransactionCode,
		cmd.PaidDate, cmd.ExpireDate, cmd.Total, cmd.TotalPaid,
		payerDocument, cmd.Payer, billingAddress, billingEmail)

	return ss.finish(ctx, cmd.SubscriptionFields, payment, collected)
}

func (ss *subscriptionService) CreateCreditCardSubscription(ctx context.Context, cmd *commands.CreateCreditCardSubscription) (commands.Result, error) {
	cmd.Validate()
	if !cmd.IsValid() {
		return commands.FailureResult(failureMessage, cmd.Notifications()), nil
	}

	collected, err := ss.checkUniqueness(ctx, cmd.Document, cmd.Email)
	if err != nil {
		return commands.Result{}, err
	}

	payerDocument := domain.NewDocument(cmd.PayerDocument, domain.DocumentType(cmd.PayerDocumentType))
	billingAddress := ss.billingAddress(cmd.SubscriptionFields)
	billingEmail := domain.NewEmail(cmd.Email)
	payment := domain.NewCreditCardPayment(cmd.CardHolderName, cmd.CardNumber, cmd.LastTransactionNumber,
		cmd.PaidDate, cmd.ExpireDate, cmd.Total, cmd.TotalPaid,
		payerDocument, cmd.Payer, billingAddress, billingEmail)

	return ss.finish(ctx, cmd.SubscriptionFields, payment, collected)
}

// checkUniqueness records conflicts without short-circuiting, so later
// construction failures are still discoverable in the same pass.
func (ss *subscriptionService) checkUniqueness(ctx context.Context, document, email string) (*notifications.Collector, error) {
	collected := notifications.NewCollector()

	documentExists, err := ss.studentRepo.DocumentExists(ctx, nil, document)
	if err != nil {
		return nil, fmt.Errorf("check document exists: %w", err)
	}
	collected.AddWhen(documentExists, "Document", "Este CPF já está em uso")

	emailExists, err := ss.studentRepo.EmailExists(ctx, nil, email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	collected.AddWhen(emailExists, "Email", "Este Email já está em uso")

	return collected, nil
}

func (ss *subscriptionService) billingAddress(f commands.SubscriptionFields) domain.Address {
	return domain.NewAddress(f.Street, f.Number, f.Neighborhood, f.City, f.State, f.Country, f.ZipCode)
}

// finish builds the student aggregate around the payment, aggregates
// every collector, and either persists+notifies or rejects with all
// accumulated reasons at once.
func (ss *subscriptionService) finish(ctx context.Context, f commands.SubscriptionFields, payment domain.Payment, collected *notifications.Collector) (commands.Result, error) {
	name := domain.NewName(f.FirstName, f.LastName)
	document := domain.NewDocument(f.Document, domain.DocumentCPF)
	email := domain.NewEmail(f.Email)
	address := ss.billingAddress(f)

	student := domain.NewStudent(name, document, email)
	subscription := domain.NewSubscription(ss.now().AddDate(0, 1, 0))
	subscription.AddPayment(payment)
	student.AddSubscription(subscription)

	collected.Merge(name, document, email, address, student, subscription, payment)

	if !collected.IsValid() {
		return commands.FailureResult(failureMessage, collected.Notifications()), nil
	}

	if err := ss.studentRepo.CreateSubscription(ctx, nil, student); err != nil {
		ss.log.Error("Failed to persist student aggregate", "student_id", student.ID, "error", err)
		return commands.Result{}, fmt.Errorf("create subscription: %w", err)
	}

	// Persistence is not rolled back when the welcome mail fails; the
	// fault still surfaces to the caller.
	if err := ss.emailService.Send(ctx, student.Name.String(), student.Email.Address, welcomeSubject, welcomeBody); err != nil {
		ss.log.Error("Failed to send welcome email", "student_id", student.ID, "error", err)
		return commands.Result{}, fmt.Errorf("send welcome email: %w", err)
	}

	ss.log.Info("Subscription created", "student_id", student.ID, "kind", payment.Kind)
	return commands.SuccessResult(successMessage), nil
}
