package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/yungbote/studypass-backend/internal/notifications"
)

// Name is the student's full name. Construction never fails; rule
// violations land in the owned collector.
type Name struct {
	FirstName string `gorm:"column:first_name;not null" json:"first_name"`
	LastName  string `gorm:"column:last_name;not null" json:"last_name"`

	notes *notifications.Collector `gorm:"-" json:"-"`
}

func NewName(firstName, lastName string) Name {
	c := notifications.NewCollector()
	c.AddWhen(strings.TrimSpace(firstName) == "", "Name.FirstName", "Nome é obrigatório")
	c.AddWhen(strings.TrimSpace(firstName) != "" && utf8.RuneCountInString(strings.TrimSpace(firstName)) < 3,
		"Name.FirstName", "Nome deve conter pelo menos 3 caracteres")
	c.AddWhen(strings.TrimSpace(lastName) == "", "Name.LastName", "Sobrenome é obrigatório")

	return Name{FirstName: firstName, LastName: lastName, notes: c}
}

func (n Name) String() string {
	return strings.TrimSpace(n.FirstName + " " + n.LastName)
}

func (n Name) Equal(other Name) bool {
	return n.FirstName == other.FirstName && n.LastName == other.LastName
}

func (n Name) Notifications() []notifications.Notification {
	if n.notes == nil {
		return nil
	}
	return n.notes.Notifications()
}

func (n Name) IsValid() bool {
	return n.notes == nil || n.notes.IsValid()
}
