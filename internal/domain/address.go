package domain

import (
	"strings"

	"github.com/yungbote/studypass-backend/internal/notifications"
)

// Address is a billing address. Every field is required; all failures
// are collected in one pass.
type Address struct {
	Street       string `gorm:"column:street;not null" json:"street"`
	Number       string `gorm:"column:number;not null" json:"number"`
	Neighborhood string `gorm:"column:neighborhood;not null" json:"neighborhood"`
	City         string `gorm:"column:city;not null" json:"city"`
	State        string `gorm:"column:state;not null" json:"state"`
	Country      string `gorm:"column:country;not null" json:"country"`
	ZipCode      string `gorm:"column:zip_code;not null" json:"zip_code"`

	notes *notifications.Collector `gorm:"-" json:"-"`
}

func NewAddress(street, number, neighborhood, city, state, country, zipCode string) Address {
	c := notifications.NewCollector()
	c.AddWhen(strings.TrimSpace(street) == "", "Address.Street", "Rua é obrigatória")
	c.AddWhen(strings.TrimSpace(number) == "", "Address.Number", "Número é obrigatório")
	c.AddWhen(strings.TrimSpace(neighborhood) == "", "Address.Neighborhood", "Bairro é obrigatório")
	c.AddWhen(strings.TrimSpace(city) == "", "Address.City", "Cidade é obrigatória")
	c.AddWhen(strings.TrimSpace(state) == "", "Address.State", "Estado é obrigatório")
	c.AddWhen(strings.TrimSpace(country) == "", "Address.Country", "País é obrigatório")
	c.AddWhen(strings.TrimSpace(zipCode) == "", "Address.ZipCode", "CEP é obrigatório")

	return Address{
		Street:       street,
		Number:       number,
		Neighborhood: neighborhood,
		City:         city,
		State:        state,
		Country:      country,
		ZipCode:      zipCode,
		notes:        c,
	}
}

func (a Address) Equal(other Address) bool {
	return a.Street == other.Street &&
		a.Number == other.Number &&
		a.Neighborhood == other.Neighborhood &&
		a.City == other.City &&
		a.State == other.State &&
		a.Country == other.Country &&
		a.ZipCode == other.ZipCode
}

func (a Address) Notifications() []notifications.Notification {
	if a.notes == nil {
		return nil
	}
	return a.notes.Notifications()
}

func (a Address) IsValid() bool {
	return a.notes == nil || a.notes.IsValid()
}
