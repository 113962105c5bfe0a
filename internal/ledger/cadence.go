// Package ledger implements the rent ledger core: cadence date arithmetic,
// late-fee policy and the FIFO payment allocation engine.
package ledger

import (
	"fmt"
	"strings"

	"github.com/rentledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Cadence is the billing rhythm of a lease.
type Cadence string

const (
	CadenceWeekly   Cadence = "weekly"
	CadenceBiWeekly Cadence = "bi-weekly"
	CadenceMonthly  Cadence = "monthly"
)

// DefaultGraceDays is the number of days after the due date during which a
// period is not considered late. The window is inclusive: a payment on the
// last grace day is on time.
const DefaultGraceDays = 5

// Late fees per cadence. Fixed policy amounts, not derived from rent.
var (
	lateFeeWeekly   = decimal.New(10, 0)
	lateFeeBiWeekly = decimal.New(20, 0)
	lateFeeMonthly  = decimal.New(45, 0)
)

// ParseCadence parses a cadence tag. Matching is case-insensitive and
// "biweekly" is accepted as an alias for "bi-weekly".
func ParseCadence(tag string) (Cadence, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "weekly":
		return CadenceWeekly, nil
	case "bi-weekly", "biweekly":
		return CadenceBiWeekly, nil
	case "monthly":
		return CadenceMonthly, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedCadence, tag)
}

// AddTo advances a date by one cadence interval. Monthly intervals preserve
// the day of the month and clamp to the last day of shorter months, so
// Jan 31 + 1 month is Feb 28 (Feb 29 in leap years).
func (c Cadence) AddTo(d types.Date) types.Date {
	switch c {
	case CadenceWeekly:
		return d.AddDays(7)
	case CadenceBiWeekly:
		return d.AddDays(14)
	default:
		return d.AddMonths(1)
	}
}

// LateFee returns the late-fee amount for the cadence.
func (c Cadence) LateFee() decimal.Decimal {
	switch c {
	case CadenceWeekly:
		return lateFeeWeekly
	case CadenceBiWeekly:
		return lateFeeBiWeekly
	default:
		return lateFeeMonthly
	}
}

// AddCadenceInterval advances a date by one interval of the given cadence
// tag. Unknown tags are an error.
func AddCadenceInterval(d types.Date, tag string) (types.Date, error) {
	cadence, err := ParseCadence(tag)
	if err != nil {
		return types.Date{}, err
	}

	return cadence.AddTo(d), nil
}

// LateFeeAmount returns the late-fee amount for a cadence tag. Unknown tags
// fall back to the monthly fee instead of failing so that a malformed cadence
// on a single period cannot block fee assessment for the whole portfolio.
func LateFeeAmount(tag string) decimal.Decimal {
	cadence, err := ParseCadence(tag)
	if err != nil {
		return lateFeeMonthly
	}

	return cadence.LateFee()
}

// IsPeriodLate reports whether a period with the given due date is late on
// the day "today". The grace window is inclusive of its last day.
func IsPeriodLate(dueDate types.Date, graceDays int, today types.Date) bool {
	return today.After(dueDate.AddDays(graceDays))
}

// DaysLate returns the number of whole days a period is past its grace
// window, and 0 while the grace window is still open.
func DaysLate(dueDate types.Date, graceDays int, today types.Date) int {
	days := today.DaysSince(dueDate.AddDays(graceDays))
	if days < 0 {
		return 0
	}

	return days
}
