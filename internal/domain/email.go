package domain

import (
	"regexp"
	"strings"

	"github.com/yungbote/studypass-backend/internal/notifications"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email is a validated email address.
type Email struct {
	Address string `gorm:"column:email_address;not null" json:"address"`

	notes *notifications.Collector `gorm:"-" json:"-"`
}

func NewEmail(address string) Email {
	trimmed := strings.TrimSpace(address)

	c := notifications.NewCollector()
	c.AddWhen(trimmed == "", "Email", "E-mail é obrigatório")
	c.AddWhen(trimmed != "" && !emailPattern.MatchString(trimmed), "Email", "E-mail inválido")

	return Email{Address: address, notes: c}
}

func (e Email) Equal(other Email) bool {
	return e.Address == other.Address
}

func (e Email) Notifications() []notifications.Notification {
	if e.notes == nil {
		return nil
	}
	return e.notes.Notifications()
}

func (e Email) IsValid() bool {
	return e.notes == nil || e.notes.IsValid()
}
