package models

import (
	"strings"

	"gorm.io/gorm"
)

// Property represents a rental property.
type Property struct {
	DefaultModel
	Name    string
	Address string
	Note    string
}

func (p *Property) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Address = strings.TrimSpace(p.Address)
	p.Note = strings.TrimSpace(p.Note)

	return nil
}
