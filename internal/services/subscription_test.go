package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/studypass-backend/internal/commands"
	"github.com/yungbote/studypass-backend/internal/domain"
	"github.com/yungbote/studypass-backend/internal/notifications"
	"github.com/yungbote/studypass-backend/internal/platform/logger"
)

type fakeStudentRepo struct {
	documentTaken bool
	emailTaken    bool
	existsErr     error
	createErr     error

	createCalls int
	created     *domain.Student

	documentQueried string
	emailQueried    string
}

func (f *fakeStudentRepo) DocumentExists(ctx context.Context, tx *gorm.DB, document string) (bool, error) {
	f.documentQueried = document
	return f.documentTaken, f.existsErr
}

func (f *fakeStudentRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	f.emailQueried = email
	return f.emailTaken, f.existsErr
}

func (f *fakeStudentRepo) CreateSubscription(ctx context.Context, tx *gorm.DB, student *domain.Student) error {
	f.createCalls++
	f.created = student
	return f.createErr
}

type fakeEmailService struct {
	sendCalls int
	toName    string
	toAddress string
	subject   string
	body      string
	sendErr   error
}

func (f *fakeEmailService) Send(ctx context.Context, toName, toAddress, subject, body string) error {
	f.sendCalls++
	f.toName = toName
	f.toAddress = toAddress
	f.subject = subject
	f.body = body
	return f.sendErr
}

func newTestService(repo *fakeStudentRepo, mailer *fakeEmailService) *subscriptionService {
	return &subscriptionService{
		log:          logger.NewNop(),
		studentRepo:  repo,
		emailService: mailer,
		now:          time.Now,
	}
}

func validBoletoCommand() *commands.CreateBoletoSubscription {
	return &commands.CreateBoletoSubscription{
		SubscriptionFields: validSubscriptionFields(),
		BarCode:            "123",
		BoletoNumber:       "456",
	}
}

func validSubscriptionFields() commands.SubscriptionFields {
	return commands.SubscriptionFields{
		FirstName:         "Ana",
		LastName:          "Silva",
		Document:          "35111234567",
		Email:             "ana.silva@example.com",
		Street:            "Rua das Flores",
		Number:            "100",
		Neighborhood:      "Centro",
		City:              "São Paulo",
		State:             "SP",
		Country:           "Brasil",
		ZipCode:           "01000-000",
		Payer:             "Ana Silva",
		PayerDocument:     "35111234567",
		PayerDocumentType: "CPF",
		Total:             100,
		TotalPaid:         100,
		PaidDate:          time.Now(),
		ExpireDate:        time.Now().AddDate(0, 1, 0),
	}
}

func countKey(items []notifications.Notification, key string) int {
	n := 0
	for _, item := range items {
		if item.Key == key {
			n++
		}
	}
	return n
}

func TestCreateBoletoSubscriptionHappyPath(t *testing.T) {
	repo := &fakeStudentRepo{}
	mailer := &fakeEmailService{}
	service := newTestService(repo, mailer)

	result, err := service.CreateBoletoSubscription(context.Background(), validBoletoCommand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("Success=false, notifications=%v", result.Notifications)
	}
	if result.Message != "Assinatura realizada com sucesso" {
		t.Fatalf("Message=%q", result.Message)
	}
	if repo.createCalls != 1 {
		t.Fatalf("CreateSubscription calls=%d, want 1", repo.createCalls)
	}
	if mailer.sendCalls != 1 {
		t.Fatalf("Send calls=%d, want 1", mailer.sendCalls)
	}
	if mailer.toName != "Ana Silva" || mailer.toAddress != "ana.silva@example.com" {
		t.Fatalf("welcome mail recipient=%q <%s>", mailer.toName, mailer.toAddress)
	}
	if mailer.subject != "Bem vindo ao StudyPass" || mailer.body != "Sua assinatura foi criada" {
		t.Fatalf("welcome mail content: subject=%q body=%q", mailer.subject, mailer.body)
	}

	if repo.created == nil || len(repo.created.Subscriptions) != 1 {
		t.Fatalf("persisted aggregate incomplete: %+v", repo.created)
	}
	if len(repo.created.Subscriptions[0].Payments) != 1 {
		t.Fatalf("persisted subscription has %d payments, want 1", len(repo.created.Subscriptions[0].Payments))
	}
	if repo.created.Subscriptions[0].Payments[0].Kind != domain.PaymentBoleto {
		t.Fatalf("persisted payment kind=%q", repo.created.Subscriptions[0].Payments[0].Kind)
	}
}

func TestCreateBoletoSubscriptionEmptyFirstNameRejectsAll(t *testing.T) {
	repo := &fakeStudentRepo{}
	mailer := &fakeEmailService{}
	service := newTestService(repo, mailer)

	cmd := validBoletoCommand()
	cmd.FirstName = ""

	result, err := service.CreateBoletoSubscription(context.Background(), cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Fatalf("Success=true for invalid command")
	}
	if result.Message != "Não foi possível realizar sua assinatura" {
		t.Fatalf("Message=%q", result.Message)
	}
	if countKey(result.Notifications, "Name.FirstName") == 0 {
		t.Fatalf("missing Name.FirstName entry: %v", result.Notifications)
	}
	if repo.createCalls != 0 {
		t.Fatalf("persistence invoked for invalid command")
	}
	if mailer.sendCalls != 0 {
		t.Fatalf("email invoked for invalid command")
	}
	// Command pre-check failed, so the repository is never touched.
	if repo.documentQueried != "" || repo.emailQueried != "" {
		t.Fatalf("repository queried despite failed pre-check")
	}
}

func TestCreatePayPalSubscriptionDocumentConflict(t *testing.T) {
	repo := &fakeStudentRepo{documentTaken: true}
	mailer := &fakeEmailService{}
	service := newTestService(repo, mailer)

	cmd := &commands.CreatePayPalSubscription{
		SubscriptionFields: validSubscriptionFields(),
		TransactionCode:    "TX-001",
	}

	result, err := service.CreatePayPalSubscription(context.Background(), cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Fatalf("Success=true despite document conflict")
	}
	if got := countKey(result.Notifications, "Document"); got != 1 {
		t.Fatalf("Document conflict entries=%d, want exactly 1: %v", got, result.Notifications)
	}
	if repo.createCalls != 0 || mailer.sendCalls != 0 {
		t.Fatalf("side effects invoked despite conflict: create=%d send=%d", repo.createCalls, mailer.sendCalls)
	}
}

func TestUniquenessConflictsBothRecorded(t *testing.T) {
	repo := &fakeStudentRepo{documentTaken: true, emailTaken: true}
	mailer := &fakeEmailService{}
	service := newTestService(repo, mailer)

	cmd := validBoletoCommand()
	cmd.BarCode = "" // construction-time failure must still be discoverable

	result, err := service.CreateBoletoSubscription(context.Background(), cmd)
	if err == nil && result.Success {
		t.Fatalf("Success=true despite conflicts")
	}
	// The empty bar code fails the command pre-check; re-run without it
	// to see all three failure classes in one pass.
	cmd2 := validBoletoCommand()
	repo2 := &fakeStudentRepo{documentTaken: true, emailTaken: true}
	service2 := newTestService(repo2, mailer)
	result2, err := service2.CreateBoletoSubscription(context.Background(), cmd2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if countKey(result2.Notifications, "Document") != 1 || countKey(result2.Notifications, "Email") != 1 {
		t.Fatalf("both conflicts not recorded: %v", result2.Notifications)
	}
	if repo2.createCalls != 0 {
		t.Fatalf("persistence invoked despite conflicts")
	}
}

func TestEmailUniquenessQueriedByEmailValue(t *testing.T) {
	repo := &fakeStudentRepo{}
	mailer := &fakeEmailService{}
	service := newTestService(repo, mailer)

	if _, err := service.CreateBoletoSubscription(context.Background(), validBoletoCommand()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.documentQueried != "35111234567" {
		t.Fatalf("document queried with %q", repo.documentQueried)
	}
	if repo.emailQueried != "ana.silva@example.com" {
		t.Fatalf("email uniqueness queried with %q, want the email value", repo.emailQueried)
	}
}

func TestCreateCreditCardSubscriptionHappyPath(t *testing.T) {
	repo := &fakeStudentRepo{}
	mailer := &fakeEmailService{}
	service := newTestService(repo, mailer)

	cmd := &commands.CreateCreditCardSubscription{
		SubscriptionFields:    validSubscriptionFields(),
		CardHolderName:        "Ana Silva",
		CardNumber:            "4111111111111111",
		LastTransactionNumber: "TX-999",
	}

	result, err := service.CreateCreditCardSubscription(context.Background(), cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("Success=false, notifications=%v", result.Notifications)
	}
	if repo.created.Subscriptions[0].Payments[0].Kind != domain.PaymentCreditCard {
		t.Fatalf("persisted payment kind=%q", repo.created.Subscriptions[0].Payments[0].Kind)
	}
}

func TestPayPalCommandPreCheckRunsUniformly(t *testing.T) {
	repo := &fakeStudentRepo{}
	mailer := &fakeEmailService{}
	service := newTestService(repo, mailer)

	cmd := &commands.CreatePayPalSubscription{} // everything missing

	result, err := service.CreatePayPalSubscription(context.Background(), cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Fatalf("Success=true for empty command")
	}
	if repo.documentQueried != "" {
		t.Fatalf("repository queried despite failed pre-check")
	}
	if countKey(result.Notifications, "Payment.TransactionCode") == 0 {
		t.Fatalf("missing transaction code entry: %v", result.Notifications)
	}
}

func TestRepositoryFaultPropagates(t *testing.T) {
	repo := &fakeStudentRepo{existsErr: errors.New("connection refused")}
	mailer := &fakeEmailService{}
	service := newTestService(repo, mailer)

	_, err := service.CreateBoletoSubscription(context.Background(), validBoletoCommand())
	if err == nil {
		t.Fatalf("infrastructure fault swallowed")
	}
	if mailer.sendCalls != 0 {
		t.Fatalf("email sent despite repository fault")
	}
}

func TestEmailFaultAfterPersistenceIsNotRolledBack(t *testing.T) {
	repo := &fakeStudentRepo{}
	mailer := &fakeEmailService{sendErr: errors.New("smtp down")}
	service := newTestService(repo, mailer)

	_, err := service.CreateBoletoSubscription(context.Background(), validBoletoCommand())
	if err == nil {
		t.Fatalf("email fault swallowed")
	}
	if repo.createCalls != 1 {
		t.Fatalf("persistence calls=%d, want 1 (not rolled back)", repo.createCalls)
	}
}

func TestSubscriptionExpiresOneMonthAfterCreation(t *testing.T) {
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	makeService := func(now time.Time, repo *fakeStudentRepo) *subscriptionService {
		return &subscriptionService{
			log:          logger.NewNop(),
			studentRepo:  repo,
			emailService: &fakeEmailService{},
			now:          func() time.Time { return now },
		}
	}

	repo1 := &fakeStudentRepo{}
	if _, err := makeService(base, repo1).CreateBoletoSubscription(context.Background(), validBoletoCommand()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo2 := &fakeStudentRepo{}
	if _, err := makeService(base.Add(time.Second), repo2).CreateBoletoSubscription(context.Background(), validBoletoCommand()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := repo1.created.Subscriptions[0].ExpireDate
	second := repo2.created.Subscriptions[0].ExpireDate

	if !first.Equal(base.AddDate(0, 1, 0)) {
		t.Fatalf("first expiry=%v, want %v", first, base.AddDate(0, 1, 0))
	}
	if got := second.Sub(first); got != time.Second {
		t.Fatalf("expiry offset=%v, want 1s", got)
	}
}
