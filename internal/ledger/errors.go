package ledger

import (
	"errors"
)

var (
	// ErrInvalidAmount is returned for non-positive or sub-cent payment
	// amounts. The store is never touched in this case.
	ErrInvalidAmount = errors.New("payment amounts must be positive and have at most two decimal places")

	// ErrUnsupportedCadence is returned when a lease or rent period carries a
	// cadence tag outside the supported set. This is a data integrity problem
	// in the stored records, not a user input error.
	ErrUnsupportedCadence = errors.New("unsupported rent cadence")

	// ErrStoreUnavailable is returned when the period store cannot be
	// reached. The allocation run performs no partial writes, so retrying is
	// safe.
	ErrStoreUnavailable = errors.New("the rent period store is unavailable")

	// ErrConcurrentModification is returned when another allocation run for
	// the same payment raced this one. The other run's result is
	// authoritative; retrying returns it via the idempotency check.
	ErrConcurrentModification = errors.New("the payment was modified concurrently")

	// ErrPaymentTenantMismatch is returned when the payment referenced in an
	// allocation request belongs to a different tenant.
	ErrPaymentTenantMismatch = errors.New("the payment does not belong to this tenant")

	// ErrInvalidPeriodCount is returned when a bulk generation request asks
	// for a non-positive number of periods.
	ErrInvalidPeriodCount = errors.New("the number of periods to generate must be larger than zero")
)
