package ledger_test

import (
	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/ledger"
	"github.com/rentledger/backend/internal/models"
)

func (suite *TestSuiteStandard) TestMatchTenant() {
	first := uuid.New()
	second := uuid.New()

	rules := []models.MatchRule{
		{Priority: 1, Match: "*RENT FEB*", TenantID: first},
		{Priority: 2, Match: "*RENT*", TenantID: second},
	}

	tests := []struct {
		reference string
		want      uuid.UUID
	}{
		{"ACME BANK/J DOE RENT FEB", first},
		{"ACME BANK/J DOE RENT MAR", second},
		{"ACME BANK/REFUND", uuid.Nil},
		{"", uuid.Nil},
	}

	for _, tt := range tests {
		suite.Assert().Equal(tt.want, ledger.MatchTenant(tt.reference, rules), "reference %q", tt.reference)
	}
}

func (suite *TestSuiteStandard) TestMatchTenantFirstMatchWins() {
	first := uuid.New()
	second := uuid.New()

	// Both globs match, the first rule in the slice wins
	rules := []models.MatchRule{
		{Priority: 1, Match: "*DOE*", TenantID: first},
		{Priority: 2, Match: "*DOE*", TenantID: second},
	}

	suite.Assert().Equal(first, ledger.MatchTenant("J DOE", rules))
}

func (suite *TestSuiteStandard) TestResolveTenant() {
	tenant := suite.createTestTenant(models.Tenant{Name: "Jordan Doe"})
	other := suite.createTestTenant(models.Tenant{Name: "Riley Roe"})

	// Rules are evaluated in priority order regardless of creation order
	suite.createTestMatchRule(models.MatchRule{Priority: 2, Match: "*", TenantID: other.ID})
	suite.createTestMatchRule(models.MatchRule{Priority: 1, Match: "*DOE*", TenantID: tenant.ID})

	resolved, err := ledger.New(models.DB).ResolveTenant("ACME BANK/J DOE RENT")
	suite.Require().Nil(err)
	suite.Assert().Equal(tenant.ID, resolved)

	resolved, err = ledger.New(models.DB).ResolveTenant("something else")
	suite.Require().Nil(err)
	suite.Assert().Equal(other.ID, resolved)
}

func (suite *TestSuiteStandard) TestResolveTenantNoRules() {
	resolved, err := ledger.New(models.DB).ResolveTenant("ACME BANK/J DOE RENT")
	suite.Require().Nil(err)
	suite.Assert().Equal(uuid.Nil, resolved)
}

func (suite *TestSuiteStandard) TestResolveTenantStoreUnavailable() {
	suite.CloseDB()

	_, err := ledger.New(models.DB).ResolveTenant("ACME BANK")
	suite.Assert().ErrorIs(err, ledger.ErrStoreUnavailable)
}
