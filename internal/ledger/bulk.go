package ledger

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/models"
	"github.com/rentledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GeneratePeriods creates the next count rent periods for a lease. When the
// lease already has periods, generation continues from the most recent due
// date; otherwise it starts at the lease's first due date. All periods are
// created in one transaction.
func (e *Engine) GeneratePeriods(leaseID uuid.UUID, count int) ([]models.RentPeriod, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPeriodCount, count)
	}

	var periods []models.RentPeriod
	err := e.db.Transaction(func(tx *gorm.DB) error {
		var lease models.Lease
		if err := tx.First(&lease, leaseID).Error; err != nil {
			return err
		}

		cadence, err := ParseCadence(lease.RentCadence)
		if err != nil {
			return err
		}

		due := lease.FirstDueDate
		var last models.RentPeriod
		err = tx.
			Where("lease_id = ?", leaseID).
			Order("period_due_date DESC").
			First(&last).Error
		if err == nil {
			due = cadence.AddTo(last.PeriodDueDate)
		} else if !errors.Is(err, models.ErrResourceNotFound) {
			return err
		}

		for i := 0; i < count; i++ {
			period := models.RentPeriod{
				TenantID:      lease.TenantID,
				PropertyID:    lease.PropertyID,
				LeaseID:       lease.ID,
				PeriodDueDate: due,
				RentAmount:    lease.RentAmount,
				RentCadence:   lease.RentCadence,
				Status:        models.PeriodStatusUnpaid,
			}

			if err := tx.Create(&period).Error; err != nil {
				return err
			}

			periods = append(periods, period)
			due = cadence.AddTo(due)
		}

		return nil
	})
	if err != nil {
		return nil, e.classify(err)
	}

	return periods, nil
}

// LateFeeAssessment is the late-fee liability of one rent period.
type LateFeeAssessment struct {
	PeriodID       uuid.UUID
	TenantID       uuid.UUID
	LeaseID        uuid.UUID
	PeriodDueDate  types.Date
	DaysLate       int
	FeeAmount      decimal.Decimal
	FeeOutstanding decimal.Decimal
}

// PortfolioAssessment is the late-fee liability across the portfolio as of
// a date.
type PortfolioAssessment struct {
	AsOf           types.Date
	Periods        []LateFeeAssessment
	FeeOutstanding decimal.Decimal
}

// AssessLateFees sweeps all outstanding rent periods and reports their
// late-fee liability as of the given date. The sweep uses the same grace
// window and fee arithmetic as payment allocation, so single-payment
// settlement and portfolio assessment always agree. It writes nothing: fee
// fields on periods only advance when a payment is allocated.
func (e *Engine) AssessLateFees(asOf types.Date) (PortfolioAssessment, error) {
	assessment := PortfolioAssessment{
		AsOf:           asOf,
		FeeOutstanding: decimal.Zero,
	}

	var periods []models.RentPeriod
	err := e.db.
		Where("status IN ?", []models.PeriodStatus{models.PeriodStatusUnpaid, models.PeriodStatusPartial}).
		Where("late_fee_waived = ?", false).
		Order("period_due_date ASC").
		Find(&periods).Error
	if err != nil {
		return PortfolioAssessment{}, e.classify(err)
	}

	for _, period := range periods {
		due := period.EffectiveDueDate()
		if !IsPeriodLate(due, e.GraceDays, asOf) {
			continue
		}

		fee := LateFeeAmount(period.RentCadence)
		outstanding := fee.Sub(period.LateFeeApplied)
		if outstanding.IsNegative() {
			outstanding = decimal.Zero
		}

		assessment.Periods = append(assessment.Periods, LateFeeAssessment{
			PeriodID:       period.ID,
			TenantID:       period.TenantID,
			LeaseID:        period.LeaseID,
			PeriodDueDate:  period.PeriodDueDate,
			DaysLate:       DaysLate(due, e.GraceDays, asOf),
			FeeAmount:      fee,
			FeeOutstanding: outstanding,
		})

		assessment.FeeOutstanding = assessment.FeeOutstanding.Add(outstanding)
	}

	return assessment, nil
}
