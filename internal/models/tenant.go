package models

import (
	"strings"

	"gorm.io/gorm"
)

// Tenant represents a person renting a property.
type Tenant struct {
	DefaultModel
	Name  string
	Email string
	Note  string
}

func (t *Tenant) BeforeSave(_ *gorm.DB) error {
	t.Name = strings.TrimSpace(t.Name)
	t.Email = strings.TrimSpace(t.Email)
	t.Note = strings.TrimSpace(t.Note)

	return nil
}
