package v1_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	v1 "github.com/rentledger/backend/internal/controllers/v1"
	"github.com/rentledger/backend/internal/models"
	"github.com/rentledger/backend/internal/types"
	"github.com/rentledger/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateLease() {
	tenant := suite.createTestTenant(models.Tenant{})
	property := suite.createTestProperty(models.Property{})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/leases", v1.LeaseEditable{
		TenantID:     tenant.ID,
		PropertyID:   property.ID,
		RentAmount:   decimal.New(500, 0),
		RentCadence:  "monthly",
		FirstDueDate: types.NewDate(2024, 1, 1),
		Active:       true,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.LeaseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("monthly", response.Data.RentCadence)
	suite.Assert().Contains(response.Data.Links.Self, "/v1/leases/")
}

func (suite *TestSuiteStandard) TestCreateLeaseInvalidCadence() {
	tenant := suite.createTestTenant(models.Tenant{})
	property := suite.createTestProperty(models.Property{})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/leases", v1.LeaseEditable{
		TenantID:     tenant.ID,
		PropertyID:   property.ID,
		RentAmount:   decimal.New(500, 0),
		RentCadence:  "quarterly",
		FirstDueDate: types.NewDate(2024, 1, 1),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateLeaseUnknownTenant() {
	property := suite.createTestProperty(models.Property{})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/leases", v1.LeaseEditable{
		TenantID:     uuid.New(),
		PropertyID:   property.ID,
		RentAmount:   decimal.New(500, 0),
		RentCadence:  "monthly",
		FirstDueDate: types.NewDate(2024, 1, 1),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetLeases() {
	tenant := suite.createTestTenant(models.Tenant{})
	property := suite.createTestProperty(models.Property{})

	for i := 0; i < 3; i++ {
		suite.createTestLease(models.Lease{
			TenantID:     tenant.ID,
			PropertyID:   property.ID,
			RentAmount:   decimal.New(500, 0),
			RentCadence:  "monthly",
			FirstDueDate: types.NewDate(2024, time.Month(1+i), 1),
			Active:       i == 0,
		})
	}

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/leases", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.LeaseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 3)
	suite.Assert().Equal(int64(3), response.Pagination.Total)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/leases?tenant=%s&active=true", tenant.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 1)
}

func (suite *TestSuiteStandard) TestGetLeaseNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/leases/828cf405-d886-4d9f-9f7a-152shouldfail", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/leases/4e8c02a2-b6a6-4ee2-9fcc-0a7f0a0a6206", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGeneratePeriodsEndpoint() {
	tenant := suite.createTestTenant(models.Tenant{})
	property := suite.createTestProperty(models.Property{})
	lease := suite.createTestLease(models.Lease{
		TenantID:     tenant.ID,
		PropertyID:   property.ID,
		RentAmount:   decimal.New(500, 0),
		RentCadence:  "monthly",
		FirstDueDate: types.NewDate(2024, 1, 1),
		Active:       true,
	})

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/leases/%s/periods", lease.ID), v1.GeneratePeriodsRequest{Count: 2})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.GeneratePeriodsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().True(types.NewDate(2024, 1, 1).Equal(response.Data[0].PeriodDueDate))
	suite.Assert().True(types.NewDate(2024, 2, 1).Equal(response.Data[1].PeriodDueDate))
}

func (suite *TestSuiteStandard) TestGeneratePeriodsEndpointInvalidCount() {
	tenant := suite.createTestTenant(models.Tenant{})
	property := suite.createTestProperty(models.Property{})
	lease := suite.createTestLease(models.Lease{
		TenantID:     tenant.ID,
		PropertyID:   property.ID,
		RentAmount:   decimal.New(500, 0),
		RentCadence:  "monthly",
		FirstDueDate: types.NewDate(2024, 1, 1),
	})

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/leases/%s/periods", lease.ID), v1.GeneratePeriodsRequest{Count: 0})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
