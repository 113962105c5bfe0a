package v1

import (
	"errors"
	"net/http"

	"github.com/rentledger/backend/internal/ledger"
	"github.com/rentledger/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, ledger.ErrStoreUnavailable) {
		return http.StatusServiceUnavailable
	}

	if errors.Is(err, ledger.ErrConcurrentModification) {
		return http.StatusConflict
	}

	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errPeriodStatusInvalid = errors.New("the specified period status is invalid")
	errTenantNotResolved   = errors.New("no tenant is set on the payment and no match rule matches the payer reference")
)
