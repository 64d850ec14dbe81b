package domain

import (
	"strings"

	"github.com/yungbote/studypass-backend/internal/notifications"
)

type DocumentType string

const (
	DocumentCPF  DocumentType = "CPF"
	DocumentCNPJ DocumentType = "CNPJ"
)

func (dt DocumentType) IsValid() bool {
	return dt == DocumentCPF || dt == DocumentCNPJ
}

// Document is a brazilian taxpayer document (CPF or CNPJ).
type Document struct {
	Number string       `gorm:"column:document_number;not null" json:"number"`
	Type   DocumentType `gorm:"column:document_type;not null" json:"type"`

	notes *notifications.Collector `gorm:"-" json:"-"`
}

func NewDocument(number string, docType DocumentType) Document {
	digits := digitsOnly(number)

	c := notifications.NewCollector()
	c.AddWhen(strings.TrimSpace(number) == "", "Document.Number", "Documento é obrigatório")
	c.AddWhen(!docType.IsValid(), "Document.Type", "Tipo de documento inválido")
	c.AddWhen(docType == DocumentCPF && strings.TrimSpace(number) != "" && len(digits) != 11,
		"Document.Number", "CPF inválido")
	c.AddWhen(docType == DocumentCNPJ && strings.TrimSpace(number) != "" && len(digits) != 14,
		"Document.Number", "CNPJ inválido")

	return Document{Number: number, Type: docType, notes: c}
}

func (d Document) Equal(other Document) bool {
	return d.Number == other.Number && d.Type == other.Type
}

func (d Document) Notifications() []notifications.Notification {
	if d.notes == nil {
		return nil
	}
	return d.notes.Notifications()
}

func (d Document) IsValid() bool {
	return d.notes == nil || d.notes.IsValid()
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
