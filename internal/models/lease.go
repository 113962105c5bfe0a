package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Lease ties a tenant to a property with a recurring rent obligation.
// The ledger reads leases, it never mutates them.
type Lease struct {
	DefaultModel
	Tenant       Tenant   `json:"-"`
	TenantID     uuid.UUID
	Property     Property `json:"-"`
	PropertyID   uuid.UUID
	RentAmount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	RentCadence  string          // weekly, bi-weekly or monthly
	FirstDueDate types.Date      // Due date of the first rent period
	Active       bool
	Note         string
}

var ErrLeaseRentNotPositive = errors.New("lease rent amounts must be larger than zero")

func (l *Lease) BeforeCreate(tx *gorm.DB) error {
	_ = l.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Lease)
	return l.checkIntegrity(tx, *toSave)
}

func (l *Lease) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(Lease)

	if tx.Statement.Changed("TenantID") || tx.Statement.Changed("PropertyID") {
		err := l.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies that the tenant and property being referenced exist.
func (l *Lease) checkIntegrity(tx *gorm.DB, toSave Lease) error {
	err := tx.First(&Tenant{}, toSave.TenantID).Error
	if err != nil {
		return err
	}

	return tx.First(&Property{}, toSave.PropertyID).Error
}

func (l *Lease) BeforeSave(_ *gorm.DB) error {
	l.RentCadence = strings.TrimSpace(strings.ToLower(l.RentCadence))
	l.Note = strings.TrimSpace(l.Note)

	return nil
}

func (l *Lease) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(l.RentAmount) {
		return ErrLeaseRentNotPositive
	}

	return nil
}
