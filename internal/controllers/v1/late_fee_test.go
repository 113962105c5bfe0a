package v1_test

import (
	"net/http"

	v1 "github.com/rentledger/backend/internal/controllers/v1"
	"github.com/rentledger/backend/internal/models"
	"github.com/rentledger/backend/internal/types"
	"github.com/rentledger/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAssessLateFeesEndpoint() {
	_, lease := suite.allocationFixture(2)

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/late-fees/assessment", v1.AssessmentRequest{
		AsOf: types.NewDate(2024, 1, 20),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AssessmentResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// Only the January period is past its grace window
	suite.Require().Len(response.Data.Periods, 1)
	suite.Assert().Equal(lease.ID, response.Data.Periods[0].LeaseID)
	suite.Assert().True(types.NewDate(2024, 1, 1).Equal(response.Data.Periods[0].PeriodDueDate))
	suite.Assert().Equal(19, response.Data.Periods[0].DaysLate)
	suite.Assert().True(decimal.New(45, 0).Equal(response.Data.Periods[0].FeeAmount))
	suite.Assert().True(decimal.New(45, 0).Equal(response.Data.Periods[0].FeeOutstanding))
	suite.Assert().True(decimal.New(45, 0).Equal(response.Data.FeeOutstanding))
}

func (suite *TestSuiteStandard) TestAssessLateFeesEndpointBothLate() {
	suite.allocationFixture(2)

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/late-fees/assessment", v1.AssessmentRequest{
		AsOf: types.NewDate(2024, 2, 10),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AssessmentResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data.Periods, 2)
	suite.Assert().True(decimal.New(90, 0).Equal(response.Data.FeeOutstanding))
}

func (suite *TestSuiteStandard) TestAssessLateFeesEndpointEmptyBody() {
	suite.allocationFixture(1)

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/late-fees/assessment", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AssessmentResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// Without a date, the assessment runs as of today
	suite.Assert().True(types.Today().Equal(response.Data.AsOf))
}

func (suite *TestSuiteStandard) TestAssessLateFeesEndpointSkipsWaived() {
	tenant, lease := suite.allocationFixture(0)

	suite.createTestRentPeriod(models.RentPeriod{
		TenantID:      tenant.ID,
		PropertyID:    lease.PropertyID,
		LeaseID:       lease.ID,
		PeriodDueDate: types.NewDate(2024, 1, 1),
		RentAmount:    lease.RentAmount,
		RentCadence:   lease.RentCadence,
		LateFeeWaived: true,
	})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/late-fees/assessment", v1.AssessmentRequest{
		AsOf: types.NewDate(2024, 2, 10),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AssessmentResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data.Periods, 0)
	suite.Assert().True(response.Data.FeeOutstanding.IsZero())
}

func (suite *TestSuiteStandard) TestAssessLateFeesEndpointStoreUnavailable() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/late-fees/assessment", v1.AssessmentRequest{
		AsOf: types.NewDate(2024, 2, 10),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusServiceUnavailable)
}
