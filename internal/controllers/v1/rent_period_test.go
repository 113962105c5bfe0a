package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/rentledger/backend/internal/controllers/v1"
	"github.com/rentledger/backend/internal/models"
	"github.com/rentledger/backend/internal/types"
	"github.com/rentledger/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetRentPeriods() {
	_, lease := suite.allocationFixture(3)

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/periods", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RentPeriodListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// Ordered by due date
	suite.Require().Len(response.Data, 3)
	suite.Assert().True(types.NewDate(2024, 1, 1).Equal(response.Data[0].PeriodDueDate))
	suite.Assert().True(types.NewDate(2024, 3, 1).Equal(response.Data[2].PeriodDueDate))

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/periods?lease=%s&fromDate=2024-02-01", lease.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 2)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/periods?untilDate=2024-01-31", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 1)
}

func (suite *TestSuiteStandard) TestGetRentPeriodsStatusFilter() {
	suite.allocationFixture(2)

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/periods?status=unpaid", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RentPeriodListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 2)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/periods?status=paid", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 0)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/periods?status=settled", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateRentPeriodPolicyFields() {
	tenant, lease := suite.allocationFixture(1)
	_ = tenant

	var period models.RentPeriod
	suite.Require().Nil(models.DB.Where("lease_id = ?", lease.ID).First(&period).Error)

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/periods/%s", period.ID), map[string]any{
		"lateFeeWaived":   true,
		"dueDateOverride": "2024-02-15",
		"note":            "Deferred by two weeks",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var reloaded models.RentPeriod
	suite.Require().Nil(models.DB.First(&reloaded, period.ID).Error)
	suite.Assert().True(reloaded.LateFeeWaived)
	suite.Require().NotNil(reloaded.DueDateOverride)
	suite.Assert().True(types.NewDate(2024, 2, 15).Equal(*reloaded.DueDateOverride))
	suite.Assert().Equal("Deferred by two weeks", reloaded.Note)
}

func (suite *TestSuiteStandard) TestUpdateRentPeriodCannotTouchSettlement() {
	_, lease := suite.allocationFixture(1)

	var period models.RentPeriod
	suite.Require().Nil(models.DB.Where("lease_id = ?", lease.ID).First(&period).Error)

	// Settlement fields in the body are ignored, they only advance through
	// payment allocation
	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/periods/%s", period.ID), map[string]any{
		"note":       "manual settlement attempt",
		"amountPaid": "400",
		"status":     "paid",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var reloaded models.RentPeriod
	suite.Require().Nil(models.DB.First(&reloaded, period.ID).Error)
	suite.Assert().True(reloaded.AmountPaid.IsZero())
	suite.Assert().Equal(models.PeriodStatusUnpaid, reloaded.Status)
}

func (suite *TestSuiteStandard) TestRentPeriodHasNoDelete() {
	_, lease := suite.allocationFixture(1)

	var period models.RentPeriod
	suite.Require().Nil(models.DB.Where("lease_id = ?", lease.ID).First(&period).Error)

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/periods/%s", period.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusMethodNotAllowed)
}

func (suite *TestSuiteStandard) TestGetRentPeriodStoreUnavailable() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/periods", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	var response v1.RentPeriodListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(models.ErrGeneral.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestRentPeriodResponseFields() {
	_, lease := suite.allocationFixture(1)

	payment := suite.createTestPayment(models.Payment{
		TenantID: lease.TenantID,
		Amount:   decimal.New(100, 0),
		DatePaid: types.NewDate(2024, 2, 10),
	})

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/payments/%s/allocate", payment.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var period models.RentPeriod
	suite.Require().Nil(models.DB.Where("lease_id = ?", lease.ID).First(&period).Error)

	getRecorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/periods/%s", period.ID), "")
	test.AssertHTTPStatus(suite.T(), &getRecorder, http.StatusOK)

	var response v1.RentPeriodResponse
	test.DecodeResponse(suite.T(), &getRecorder, &response)

	// Late payment: 45 to the fee, the rest to rent
	suite.Assert().True(decimal.New(45, 0).Equal(response.Data.LateFeeApplied))
	suite.Assert().True(decimal.New(55, 0).Equal(response.Data.AmountPaid))
	suite.Assert().Equal(models.PeriodStatusPartial, response.Data.Status)
	suite.Assert().Contains(response.Data.Links.Lease, fmt.Sprintf("/v1/leases/%s", lease.ID))
}
