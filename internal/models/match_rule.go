package models

import (
	"github.com/google/uuid"
)

// MatchRule maps payer references on incoming payments to a tenant.
// Rules are applied in priority order, the first matching glob wins.
type MatchRule struct {
	DefaultModel
	TenantID uuid.UUID
	Priority uint
	Match    string
}
