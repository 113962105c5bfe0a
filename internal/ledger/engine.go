package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/models"
	"github.com/rentledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultMaxGeneratedPeriods bounds how many future periods a single
// allocation run may synthesize when a payment overshoots all known
// obligations. The cap guards against unbounded prepayment abuse and against
// runaway generation from a misconfigured cadence; overshooting money beyond
// the cap is returned to the caller as remainder instead.
const DefaultMaxGeneratedPeriods = 12

// Engine allocates payments across the outstanding rent periods of a tenant.
//
// The store handle is injected so that tests can run the engine against
// their own database. All writes of one allocation run share a single
// transaction: either the full run commits or nothing does.
type Engine struct {
	db *gorm.DB

	// GraceDays is the inclusive grace window after a due date.
	GraceDays int

	// MaxGeneratedPeriods caps future-period synthesis per allocation run.
	MaxGeneratedPeriods int

	// Today returns the current date. Overridable for tests.
	Today func() types.Date
}

// New returns an Engine with the default policy settings.
func New(db *gorm.DB) *Engine {
	return &Engine{
		db:                  db,
		GraceDays:           DefaultGraceDays,
		MaxGeneratedPeriods: DefaultMaxGeneratedPeriods,
		Today:               types.Today,
	}
}

// AppliedPeriod is the settlement of a single rent period by a payment.
type AppliedPeriod struct {
	PeriodID      uuid.UUID
	PeriodDueDate types.Date
	ToLateFee     decimal.Decimal
	ToRent        decimal.Decimal
	Status        models.PeriodStatus
}

// Result is the outcome of one allocation run.
//
// The sum of ToLateFee and ToRent over all applied periods plus the
// remainder equals the payment amount exactly.
type Result struct {
	Applied   []AppliedPeriod
	Remainder decimal.Decimal

	// Replayed is true when the payment had already been allocated and the
	// prior result was reconstructed from its allocation records.
	Replayed bool
}

// allocationSummary is the denormalized audit note written onto the payment.
// The PaymentAllocation records are the authoritative trail.
type allocationSummary struct {
	Allocations  int             `json:"allocations"`
	TotalApplied decimal.Decimal `json:"totalApplied"`
	Remainder    decimal.Decimal `json:"remainder"`
	AllocatedAt  time.Time       `json:"allocatedAt"`
}

// AllocatePayment distributes a payment across the tenant's outstanding rent
// periods, oldest due date first. Within a late period the late fee is
// settled before rent; lateness is evaluated as of the payment date. Money left over after all known periods are settled
// spills into newly generated future periods, bounded by
// MaxGeneratedPeriods; any remainder beyond that is returned to the caller.
//
// The operation is idempotent per payment: if allocation records already
// exist, the prior result is returned and nothing is written.
func (e *Engine) AllocatePayment(tenantID, paymentID uuid.UUID, amount decimal.Decimal, datePaid types.Date) (Result, error) {
	if !amount.IsPositive() || !amount.Equal(amount.Round(2)) {
		return Result{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	var result Result
	err := e.db.Transaction(func(tx *gorm.DB) error {
		// Idempotency check: any existing allocation row means the payment
		// has been fully allocated before.
		replayed, err := e.replay(tx, paymentID, &result)
		if err != nil || replayed {
			return err
		}

		var payment models.Payment
		if err := tx.First(&payment, paymentID).Error; err != nil {
			return err
		}

		if payment.TenantID != tenantID {
			return ErrPaymentTenantMismatch
		}

		var periods []models.RentPeriod
		err = tx.
			Where("tenant_id = ? AND status IN ?", tenantID, []models.PeriodStatus{models.PeriodStatusUnpaid, models.PeriodStatusPartial}).
			Order("period_due_date ASC").
			Find(&periods).Error
		if err != nil {
			return err
		}

		// Lateness is evaluated as of the payment date so that allocating
		// a payment late does not charge fees the tenant did not owe when
		// the money arrived.
		asOf := datePaid
		if asOf.IsZero() {
			asOf = e.Today()
		}

		remaining := amount
		var allocations []models.PaymentAllocation

		for i := range periods {
			if remaining.IsZero() {
				break
			}

			applied, allocation, err := e.settle(tx, &periods[i], paymentID, &remaining, asOf)
			if err != nil {
				return err
			}

			if applied != nil {
				result.Applied = append(result.Applied, *applied)
				allocations = append(allocations, allocation)
			}
		}

		// Spill into future periods when money is left after all known
		// obligations.
		if remaining.IsPositive() {
			generated, generatedAllocations, err := e.spill(tx, tenantID, paymentID, &remaining)
			if err != nil {
				return err
			}

			result.Applied = append(result.Applied, generated...)
			allocations = append(allocations, generatedAllocations...)
		}

		if len(allocations) > 0 {
			if err := tx.Create(&allocations).Error; err != nil {
				return err
			}
		}

		result.Remainder = remaining
		return e.finalize(tx, &payment, datePaid, result, amount)
	})
	if err != nil {
		return Result{}, e.classify(err)
	}

	return result, nil
}

// replay reconstructs the result of a prior allocation run for the payment.
// It reports whether allocation records existed.
func (e *Engine) replay(tx *gorm.DB, paymentID uuid.UUID, result *Result) (bool, error) {
	var allocations []models.PaymentAllocation
	err := tx.
		Joins("JOIN rent_periods ON rent_periods.id = payment_allocations.rent_period_id").
		Where("payment_allocations.payment_id = ?", paymentID).
		Order("rent_periods.period_due_date ASC").
		Find(&allocations).Error
	if err != nil {
		return false, err
	}

	if len(allocations) == 0 {
		return false, nil
	}

	for _, allocation := range allocations {
		var period models.RentPeriod
		if err := tx.First(&period, allocation.RentPeriodID).Error; err != nil {
			return false, err
		}

		result.Applied = append(result.Applied, AppliedPeriod{
			PeriodID:      period.ID,
			PeriodDueDate: period.PeriodDueDate,
			ToLateFee:     allocation.AmountToLateFee,
			ToRent:        allocation.AmountToRent,
			Status:        period.Status,
		})
	}

	result.Remainder = decimal.Zero
	result.Replayed = true
	return true, nil
}

// settle applies as much of the remaining amount as the period can absorb,
// late fee first. It returns nil when the period was already fully settled.
func (e *Engine) settle(tx *gorm.DB, period *models.RentPeriod, paymentID uuid.UUID, remaining *decimal.Decimal, asOf types.Date) (*AppliedPeriod, models.PaymentAllocation, error) {
	var feeOwed decimal.Decimal
	late := !period.LateFeeWaived && IsPeriodLate(period.EffectiveDueDate(), e.GraceDays, asOf)
	if late {
		feeOwed = LateFeeAmount(period.RentCadence).Sub(period.LateFeeApplied)
		if feeOwed.IsNegative() {
			feeOwed = decimal.Zero
		}
	}

	// Guard against stale reads: a period listed as outstanding can already
	// be settled in full.
	if !period.RentOutstanding().Add(feeOwed).IsPositive() {
		return nil, models.PaymentAllocation{}, nil
	}

	// Late fees are settled before rent within a period
	toFee := decimal.Min(*remaining, feeOwed)
	*remaining = remaining.Sub(toFee)
	period.LateFeeApplied = period.LateFeeApplied.Add(toFee)

	toRent := decimal.Min(*remaining, period.RentOutstanding())
	*remaining = remaining.Sub(toRent)
	period.AmountPaid = period.AmountPaid.Add(toRent)

	if toFee.IsZero() && toRent.IsZero() {
		return nil, models.PaymentAllocation{}, nil
	}

	period.Status = periodStatus(*period)
	err := tx.Model(period).
		Select("AmountPaid", "LateFeeApplied", "Status").
		Updates(models.RentPeriod{
			AmountPaid:     period.AmountPaid,
			LateFeeApplied: period.LateFeeApplied,
			Status:         period.Status,
		}).Error
	if err != nil {
		return nil, models.PaymentAllocation{}, err
	}

	applied := AppliedPeriod{
		PeriodID:      period.ID,
		PeriodDueDate: period.PeriodDueDate,
		ToLateFee:     toFee,
		ToRent:        toRent,
		Status:        period.Status,
	}

	allocation := models.PaymentAllocation{
		PaymentID:       paymentID,
		RentPeriodID:    period.ID,
		AmountToLateFee: toFee,
		AmountToRent:    toRent,
	}

	return &applied, allocation, nil
}

// spill synthesizes future periods for the tenant's lease and allocates the
// running remainder into them, newest due date forward. Freshly created
// periods never carry a late fee.
func (e *Engine) spill(tx *gorm.DB, tenantID, paymentID uuid.UUID, remaining *decimal.Decimal) ([]AppliedPeriod, []models.PaymentAllocation, error) {
	lease, nextDue, err := e.spillStart(tx, tenantID)
	if err != nil {
		// A tenant without any lease has nothing to bill against; the
		// remainder goes back to the caller.
		if errors.Is(err, models.ErrResourceNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	var applied []AppliedPeriod
	var allocations []models.PaymentAllocation

	for i := 0; i < e.MaxGeneratedPeriods && remaining.IsPositive(); i++ {
		if i > 0 || !nextDue.first {
			due, err := AddCadenceInterval(nextDue.date, lease.RentCadence)
			if err != nil {
				return nil, nil, err
			}
			nextDue.date = due
		}

		toRent := decimal.Min(*remaining, lease.RentAmount)
		*remaining = remaining.Sub(toRent)

		period := models.RentPeriod{
			TenantID:      tenantID,
			PropertyID:    lease.PropertyID,
			LeaseID:       lease.ID,
			PeriodDueDate: nextDue.date,
			RentAmount:    lease.RentAmount,
			RentCadence:   lease.RentCadence,
			AmountPaid:    toRent,
		}
		period.Status = periodStatus(period)

		if err := tx.Create(&period).Error; err != nil {
			return nil, nil, err
		}

		applied = append(applied, AppliedPeriod{
			PeriodID:      period.ID,
			PeriodDueDate: period.PeriodDueDate,
			ToLateFee:     decimal.Zero,
			ToRent:        toRent,
			Status:        period.Status,
		})

		allocations = append(allocations, models.PaymentAllocation{
			PaymentID:       paymentID,
			RentPeriodID:    period.ID,
			AmountToLateFee: decimal.Zero,
			AmountToRent:    toRent,
		})
	}

	return applied, allocations, nil
}

// spillAnchor is the starting point for future-period synthesis.
type spillAnchor struct {
	date types.Date

	// first is true when the date is itself the first due date to bill,
	// rather than a due date to advance from.
	first bool
}

// spillStart determines the lease to bill against and the due date to start
// from. When the tenant already has periods, generation advances from the
// most recent one; otherwise it starts at the lease's first due date.
func (e *Engine) spillStart(tx *gorm.DB, tenantID uuid.UUID) (models.Lease, spillAnchor, error) {
	var last models.RentPeriod
	err := tx.
		Where("tenant_id = ?", tenantID).
		Order("period_due_date DESC").
		First(&last).Error

	if err == nil {
		var lease models.Lease
		if err := tx.First(&lease, last.LeaseID).Error; err != nil {
			return models.Lease{}, spillAnchor{}, err
		}

		return lease, spillAnchor{date: last.PeriodDueDate}, nil
	}

	if !errors.Is(err, models.ErrResourceNotFound) {
		return models.Lease{}, spillAnchor{}, err
	}

	// No periods yet: bill from the active lease's first due date
	var lease models.Lease
	err = tx.
		Where(&models.Lease{TenantID: tenantID, Active: true}).
		Order("created_at DESC").
		First(&lease).Error
	if err != nil {
		return models.Lease{}, spillAnchor{}, err
	}

	return lease, spillAnchor{date: lease.FirstDueDate, first: true}, nil
}

// finalize stamps the payment with its date and the allocation summary.
func (e *Engine) finalize(tx *gorm.DB, payment *models.Payment, datePaid types.Date, result Result, amount decimal.Decimal) error {
	summary := allocationSummary{
		Allocations:  len(result.Applied),
		TotalApplied: amount.Sub(result.Remainder),
		Remainder:    result.Remainder,
		AllocatedAt:  time.Now().In(time.UTC),
	}

	note, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	return tx.Model(payment).
		Select("DatePaid", "Note").
		Updates(models.Payment{DatePaid: datePaid, Note: string(note)}).Error
}

// periodStatus recomputes the settlement status of a period from its
// amounts: paid exactly when the rent is covered in full.
func periodStatus(period models.RentPeriod) models.PeriodStatus {
	switch {
	case period.AmountPaid.Equal(period.RentAmount):
		return models.PeriodStatusPaid
	case period.AmountPaid.IsPositive():
		return models.PeriodStatusPartial
	default:
		return models.PeriodStatusUnpaid
	}
}

// classify maps store-level failures onto the ledger error taxonomy. Errors
// the ledger raised itself pass through unchanged.
func (e *Engine) classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrUnsupportedCadence),
		errors.Is(err, ErrPaymentTenantMismatch),
		errors.Is(err, ErrInvalidPeriodCount),
		errors.Is(err, models.ErrResourceNotFound):
		return err
	case errors.Is(err, models.ErrAllocationNotUnique):
		return fmt.Errorf("%w: %s", ErrConcurrentModification, err)
	default:
		return fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}
}
