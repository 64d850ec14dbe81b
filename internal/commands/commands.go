package commands

import (
	"strings"
	"time"

	"github.com/yungbote/studypass-backend/internal/domain"
	"github.com/yungbote/studypass-backend/internal/notifications"
)

// SubscriptionFields carries the raw primitives shared by every
// subscription-creation variant: student identity, billing address,
// payer and amount fields. Validation here is a pre-check over the raw
// input; the domain objects re-validate at construction.
type SubscriptionFields struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Document  string `json:"document"`
	Email     string `json:"email"`

	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	ZipCode      string `json:"zip_code"`

	Payer             string `json:"payer"`
	PayerDocument     string `json:"payer_document"`
	PayerDocumentType string `json:"payer_document_type"`

	Total     float64   `json:"total"`
	TotalPaid float64   `json:"total_paid"`
	PaidDate  time.Time `json:"paid_date"`

	ExpireDate time.Time `json:"expire_date"`
}

func (f *SubscriptionFields) validate(c *notifications.Collector) {
	c.AddWhen(strings.TrimSpace(f.FirstName) == "", "Name.FirstName", "Nome é obrigatório")
	c.AddWhen(strings.TrimSpace(f.LastName) == "", "Name.LastName", "Sobrenome é obrigatório")
	c.AddWhen(len(digitsOnly(f.Document)) != 11, "Document", "CPF inválido")
	c.AddWhen(strings.TrimSpace(f.Email) == "" || !strings.Contains(f.Email, "@"), "Email", "E-mail inválido")
	c.AddWhen(strings.TrimSpace(f.Street) == "", "Address.Street", "Rua é obrigatória")
	c.AddWhen(strings.TrimSpace(f.Number) == "", "Address.Number", "Número é obrigatório")
	c.AddWhen(strings.TrimSpace(f.Neighborhood) == "", "Address.Neighborhood", "Bairro é obrigatório")
	c.AddWhen(strings.TrimSpace(f.City) == "", "Address.City", "Cidade é obrigatória")
	c.AddWhen(strings.TrimSpace(f.State) == "", "Address.State", "Estado é obrigatório")
	c.AddWhen(strings.TrimSpace(f.Country) == "", "Address.Country", "País é obrigatório")
	c.AddWhen(strings.TrimSpace(f.ZipCode) == "", "Address.ZipCode", "CEP é obrigatório")
	c.AddWhen(strings.TrimSpace(f.Payer) == "", "Payment.Payer", "Nome do pagador é obrigatório")
	c.AddWhen(strings.TrimSpace(f.PayerDocument) == "", "Payment.PayerDocument", "Documento do pagador é obrigatório")
	c.AddWhen(!domain.DocumentType(f.PayerDocumentType).IsValid(), "Payment.PayerDocumentType", "Tipo de documento inválido")
	c.AddWhen(f.Total <= 0, "Payment.Total", "Total deve ser maior que zero")
	c.AddWhen(f.TotalPaid <= 0, "Payment.TotalPaid", "Valor pago deve ser maior que zero")
}

// CreateBoletoSubscription creates a subscription paid via bank slip.
type CreateBoletoSubscription struct {
	SubscriptionFields
	BarCode      string `json:"bar_code"`
	BoletoNumber string `json:"boleto_number"`

	notes *notifications.Collector
}

// Validate runs the pre-check over the raw fields. Calling it again
// re-evaluates from scratch; the outcome depends only on the input.
func (c *CreateBoletoSubscription) Validate() {
	collected := notifications.NewCollector()
	c.SubscriptionFields.validate(collected)
	collected.AddWhen(strings.TrimSpace(c.BarCode) == "", "Payment.BarCode", "Código de barras é obrigatório")
	collected.AddWhen(strings.TrimSpace(c.BoletoNumber) == "", "Payment.BoletoNumber", "Número do boleto é obrigatório")
	c.notes = collected
}

func (c *CreateBoletoSubscription) Notifications() []notifications.Notification {
	if c.notes == nil {
		return nil
	}
	return c.notes.Notifications()
}

func (c *CreateBoletoSubscription) IsValid() bool {
	return c.notes == nil || c.notes.IsValid()
}

// CreatePayPalSubscription creates a subscription paid via PayPal.
type CreatePayPalSubscription struct {
	SubscriptionFields
	TransactionCode string `json:"transaction_code"`

	notes *notifications.Collector
}

func (c *CreatePayPalSubscription) Validate() {
	collected := notifications.NewCollector()
	c.SubscriptionFields.validate(collected)
	collected.AddWhen(strings.TrimSpace(c.TransactionCode) == "", "Payment.TransactionCode", "Código da transação é obrigatório")
	c.notes = collected
}

func (c *CreatePayPalSubscription) Notifications() []notifications.Notification {
	if c.notes == nil {
		return nil
	}
	return c.notes.Notifications()
}

func (c *CreatePayPalSubscription) IsValid() bool {
	return c.notes == nil || c.notes.IsValid()
}

// CreateCreditCardSubscription creates a subscription paid via credit
// card.
type CreateCreditCardSubscription struct {
	SubscriptionFields
	CardHolderName        string `json:"card_holder_name"`
	CardNumber            string `json:"card_number"`
	LastTransactionNumber string `json:"last_transaction_number"`

	notes *notifications.Collector
}

func (c *CreateCreditCardSubscription) Validate() {
	collected := notifications.NewCollector()
	c.SubscriptionFields.validate(collected)
	collected.AddWhen(strings.TrimSpace(c.CardHolderName) == "", "Payment.CardHolderName", "Nome do titular é obrigatório")
	collected.AddWhen(strings.TrimSpace(c.CardNumber) == "", "Payment.CardNumber", "Número do cartão é obrigatório")
	collected.AddWhen(strings.TrimSpace(c.LastTransactionNumber) == "", "Payment.LastTransactionNumber", "Número da transação é obrigatório")
	c.notes = collected
}

func (c *CreateCreditCardSubscription) Notifications() []notifications.Notification {
	if c.notes == nil {
		return nil
	}
	return c.notes.Notifications()
}

func (c *CreateCreditCardSubscription) IsValid() bool {
	return c.notes == nil || c.notes.IsValid()
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
