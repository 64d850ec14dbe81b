package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/studypass-backend/internal/notifications"
)

type PaymentKind string

const (
	PaymentBoleto     PaymentKind = "boleto"
	PaymentPayPal     PaymentKind = "paypal"
	PaymentCreditCard PaymentKind = "credit_card"
)

// Payment is the closed set of payment instruments accepted for a
// subscription. The Kind tag selects which instrument-specific columns
// are meaningful; there is no open subclassing. The payer Document,
// Address and Email are owned copies, never shared with the Student.
type Payment struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	SubscriptionID uuid.UUID   `gorm:"type:uuid;column:subscription_id;index" json:"subscription_id"`
	Kind           PaymentKind `gorm:"column:kind;not null" json:"kind"`

	PaidDate   time.Time `gorm:"column:paid_date;not null" json:"paid_date"`
	ExpireDate time.Time `gorm:"column:expire_date;not null" json:"expire_date"`
	Total      float64   `gorm:"column:total;not null" json:"total"`
	TotalPaid  float64   `gorm:"column:total_paid;not null" json:"total_paid"`

	Payer          string   `gorm:"column:payer;not null" json:"payer"`
	PayerDocument  Document `gorm:"embedded;embeddedPrefix:payer_" json:"payer_document"`
	BillingAddress Address  `gorm:"embedded;embeddedPrefix:billing_" json:"billing_address"`
	BillingEmail   Email    `gorm:"embedded;embeddedPrefix:billing_" json:"billing_email"`

	// Boleto
	BarCode      string `gorm:"column:bar_code" json:"bar_code,omitempty"`
	BoletoNumber string `gorm:"column:boleto_number" json:"boleto_number,omitempty"`
	// PayPal
	TransactionCode string `gorm:"column:transaction_code" json:"transaction_code,omitempty"`
	// Credit card
	CardHolderName        string `gorm:"column:card_holder_name" json:"card_holder_name,omitempty"`
	CardNumber            string `gorm:"column:card_number" json:"card_number,omitempty"`
	LastTransactionNumber string `gorm:"column:last_transaction_number" json:"last_transaction_number,omitempty"`

	notes *notifications.Collector `gorm:"-" json:"-"`
}

func (Payment) TableName() string {
	return "payment"
}

func newPayment(kind PaymentKind, paidDate, expireDate time.Time, total, totalPaid float64,
	payerDocument Document, payer string, address Address, email Email) Payment {

	c := notifications.NewCollector()
	c.AddWhen(total <= 0, "Payment.Total", "Total deve ser maior que zero")
	c.AddWhen(totalPaid <= 0, "Payment.TotalPaid", "Valor pago deve ser maior que zero")
	c.AddWhen(strings.TrimSpace(payer) == "", "Payment.Payer", "Nome do pagador é obrigatório")

	// A malformed payer document/address/email must be visible as a
	// payment-level failure too.
	c.Merge(payerDocument, address, email)

	return Payment{
		ID:             uuid.New(),
		Kind:           kind,
		PaidDate:       paidDate,
		ExpireDate:     expireDate,
		Total:          total,
		TotalPaid:      totalPaid,
		Payer:          payer,
		PayerDocument:  payerDocument,
		BillingAddress: address,
		BillingEmail:   email,
		notes:          c,
	}
}

func NewBoletoPayment(barCode, boletoNumber string, paidDate, expireDate time.Time,
	total, totalPaid float64, payerDocument Document, payer string, address Address, email Email) Payment {

	p := newPayment(PaymentBoleto, paidDate, expireDate, total, totalPaid, payerDocument, payer, address, email)
	p.BarCode = barCode
	p.BoletoNumber = boletoNumber
	p.notes.AddWhen(strings.TrimSpace(barCode) == "", "Payment.BarCode", "Código de barras é obrigatório")
	p.notes.AddWhen(strings.TrimSpace(boletoNumber) == "", "Payment.BoletoNumber", "Número do boleto é obrigatório")
	return p
}

func NewPayPalPayment(transactionCode string, paidDate, expireDate time.Time,
	total, totalPaid float64, payerDocument Document, payer string, address Address, email Email) Payment {

	p := newPayment(PaymentPayPal, paidDate, expireDate, total, totalPaid, payerDocument, payer, address, email)
	p.TransactionCode = transactionCode
	p.notes.AddWhen(strings.TrimSpace(transactionCode) == "", "Payment.TransactionCode", "Código da transação é obrigatório")
	return p
}

func NewCreditCardPayment(cardHolderName, cardNumber, lastTransactionNumber string, paidDate, expireDate time.Time,
	total, totalPaid float64, payerDocument Document, payer string, address Address, email Email) Payment {

	p := newPayment(PaymentCreditCard, paidDate, expireDate, total, totalPaid, payerDocument, payer, address, email)
	p.CardHolderName = cardHolderName
	p.CardNumber = cardNumber
	p.LastTransactionNumber = lastTransactionNumber
	p.notes.AddWhen(strings.TrimSpace(cardHolderName) == "", "Payment.CardHolderName", "Nome do titular é obrigatório")
	p.notes.AddWhen(strings.TrimSpace(cardNumber) == "", "Payment.CardNumber", "Número do cartão é obrigatório")
	p.notes.AddWhen(strings.TrimSpace(lastTransactionNumber) == "", "Payment.LastTransactionNumber", "Número da transação é obrigatório")
	return p
}

func (p Payment) Notifications() []notifications.Notification {
	if p.notes == nil {
		return nil
	}
	return p.notes.Notifications()
}

func (p Payment) IsValid() bool {
	return p.notes == nil || p.notes.IsValid()
}
