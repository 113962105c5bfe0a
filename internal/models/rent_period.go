package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PeriodStatus is the settlement state of a rent period.
type PeriodStatus string

const (
	PeriodStatusUnpaid  PeriodStatus = "unpaid"
	PeriodStatusPartial PeriodStatus = "partial"
	PeriodStatusPaid    PeriodStatus = "paid"
)

// RentPeriod is one billing cycle of a lease. Periods are an immutable audit
// trail: they are never deleted, only their settlement fields advance.
type RentPeriod struct {
	DefaultModel
	Tenant          Tenant `json:"-"`
	TenantID        uuid.UUID
	Property        Property `json:"-"`
	PropertyID      uuid.UUID
	Lease           Lease     `json:"-"`
	LeaseID         uuid.UUID `gorm:"uniqueIndex:rent_period_lease_due"`
	PeriodDueDate   types.Date `gorm:"uniqueIndex:rent_period_lease_due"`
	RentAmount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Fixed at creation, not recomputed if the lease rent changes
	RentCadence     string
	Status          PeriodStatus    `gorm:"default:unpaid"`
	AmountPaid      decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Monotonically non-decreasing
	LateFeeApplied  decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Monotonically non-decreasing
	LateFeeWaived   bool
	DueDateOverride *types.Date
	Note            string
}

var (
	ErrPeriodDueDateNotUnique = errors.New("a rent period for this lease and due date already exists")
	ErrPeriodOverpaid         = errors.New("the amount paid on a rent period cannot exceed its rent amount")
)

// EffectiveDueDate returns the due date the ledger uses for lateness: the
// override when one is set, the regular period due date otherwise.
func (p RentPeriod) EffectiveDueDate() types.Date {
	if p.DueDateOverride != nil {
		return *p.DueDateOverride
	}

	return p.PeriodDueDate
}

// RentOutstanding returns the rent still owed on the period.
func (p RentPeriod) RentOutstanding() decimal.Decimal {
	return p.RentAmount.Sub(p.AmountPaid)
}

func (p *RentPeriod) BeforeCreate(tx *gorm.DB) error {
	_ = p.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*RentPeriod)
	return p.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies that the lease being referenced exists.
func (p *RentPeriod) checkIntegrity(tx *gorm.DB, toSave RentPeriod) error {
	return tx.First(&Lease{}, toSave.LeaseID).Error
}

func (p *RentPeriod) BeforeSave(_ *gorm.DB) error {
	p.RentCadence = strings.TrimSpace(strings.ToLower(p.RentCadence))
	p.Note = strings.TrimSpace(p.Note)

	if p.Status == "" {
		p.Status = PeriodStatusUnpaid
	}

	return nil
}

func (p *RentPeriod) AfterSave(_ *gorm.DB) error {
	if p.AmountPaid.GreaterThan(p.RentAmount) {
		return ErrPeriodOverpaid
	}

	return nil
}
