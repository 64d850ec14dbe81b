package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/studypass-backend/internal/notifications"
)

// Student is the aggregate root persisted as one unit together with
// its subscriptions and their payments. Construction absorbs the
// collectors of the three value objects it owns.
type Student struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      Name      `gorm:"embedded" json:"name"`
	Document  Document  `gorm:"embedded" json:"document"`
	Email     Email     `gorm:"embedded" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`

	Subscriptions []*Subscription `gorm:"foreignKey:StudentID" json:"subscriptions"`

	notes *notifications.Collector `gorm:"-" json:"-"`
}

func (Student) TableName() string {
	return "student"
}

func NewStudent(name Name, document Document, email Email) *Student {
	c := notifications.NewCollector()
	c.Merge(name, document, email)

	return &Student{
		ID:        uuid.New(),
		Name:      name,
		Document:  document,
		Email:     email,
		CreatedAt: time.Now(),
		notes:     c,
	}
}

// AddSubscription appends to the subscription list. It does not
// validate the subscription.
func (s *Student) AddSubscription(subscription *Subscription) {
	if subscription == nil {
		return
	}
	subscription.StudentID = s.ID
	s.Subscriptions = append(s.Subscriptions, subscription)
}

func (s *Student) Notifications() []notifications.Notification {
	if s.notes == nil {
		return nil
	}
	return s.notes.Notifications()
}

func (s *Student) IsValid() bool {
	return s.notes == nil || s.notes.IsValid()
}
