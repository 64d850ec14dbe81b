package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/studypass-backend/internal/notifications"
)

// Subscription is one paid access period for a student. It is created
// active with an expiration set by the caller and owns its payments
// (append-only; one payment per creation call today, many supported).
type Subscription struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID  uuid.UUID `gorm:"type:uuid;column:student_id;index" json:"student_id"`
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"created_at"`
	LastUpdate time.Time `gorm:"column:last_update;not null" json:"last_update"`
	ExpireDate time.Time `gorm:"column:expire_date;not null" json:"expire_date"`
	Active     bool      `gorm:"column:active;not null" json:"active"`

	Payments []Payment `gorm:"foreignKey:SubscriptionID" json:"payments"`

	notes *notifications.Collector `gorm:"-" json:"-"`
}

func (Subscription) TableName() string {
	return "subscription"
}

func NewSubscription(expireDate time.Time) *Subscription {
	now := time.Now()
	return &Subscription{
		ID:         uuid.New(),
		CreatedAt:  now,
		LastUpdate: now,
		ExpireDate: expireDate,
		Active:     true,
		notes:      notifications.NewCollector(),
	}
}

// AddPayment appends the payment. It does not validate it; the
// payment's own collector is aggregated by the handler.
func (s *Subscription) AddPayment(payment Payment) {
	payment.SubscriptionID = s.ID
	s.Payments = append(s.Payments, payment)
	s.LastUpdate = time.Now()
}

func (s *Subscription) Notifications() []notifications.Notification {
	if s.notes == nil {
		return nil
	}
	return s.notes.Notifications()
}

func (s *Subscription) IsValid() bool {
	return s.notes == nil || s.notes.IsValid()
}
