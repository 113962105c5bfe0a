package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentAllocation records how much of a payment settled a rent period.
// Allocations are immutable and created exactly once per payment and period;
// the existence of any allocation row for a payment is the witness that the
// payment has been allocated.
type PaymentAllocation struct {
	DefaultModel
	Payment         Payment   `json:"-"`
	PaymentID       uuid.UUID `gorm:"uniqueIndex:payment_allocation_payment_period"`
	RentPeriod      RentPeriod `json:"-"`
	RentPeriodID    uuid.UUID  `gorm:"uniqueIndex:payment_allocation_payment_period"`
	AmountToLateFee decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	AmountToRent    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

var ErrAllocationNotUnique = errors.New("this payment has already been allocated to this rent period")
