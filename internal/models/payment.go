package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is a single money receipt from a tenant. The ledger sets DatePaid
// and Note when it allocates the payment, the amount is never mutated.
type Payment struct {
	DefaultModel
	Tenant         Tenant `json:"-"`
	TenantID       uuid.UUID
	Amount         decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DatePaid       types.Date
	PayerReference string // Free-text reference from the payer, e.g. the memo of a bank transfer
	Note           string // Machine-readable allocation summary once the payment is allocated
}

var ErrPaymentAmountNotPositive = errors.New("payment amounts must be larger than zero")

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	_ = p.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Payment)
	return p.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies that the tenant being referenced exists.
func (p *Payment) checkIntegrity(tx *gorm.DB, toSave Payment) error {
	return tx.First(&Tenant{}, toSave.TenantID).Error
}

func (p *Payment) BeforeSave(_ *gorm.DB) error {
	p.PayerReference = strings.TrimSpace(p.PayerReference)

	return nil
}

func (p *Payment) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(p.Amount) {
		return ErrPaymentAmountNotPositive
	}

	return nil
}
