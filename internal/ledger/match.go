package ledger

import (
	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/models"
	"github.com/ryanuber/go-glob"
)

// MatchTenant maps a payer reference to a tenant using the given match
// rules. Since rules are passed in priority order, the first match wins.
// It returns uuid.Nil when no rule matches.
func MatchTenant(payerReference string, rules []models.MatchRule) uuid.UUID {
	for _, rule := range rules {
		if glob.Glob(rule.Match, payerReference) {
			return rule.TenantID
		}
	}

	return uuid.Nil
}

// ResolveTenant loads all match rules and maps a payer reference to a
// tenant. It returns uuid.Nil when no rule matches.
func (e *Engine) ResolveTenant(payerReference string) (uuid.UUID, error) {
	var rules []models.MatchRule
	err := e.db.Order("priority ASC").Find(&rules).Error
	if err != nil {
		return uuid.Nil, e.classify(err)
	}

	return MatchTenant(payerReference, rules), nil
}
