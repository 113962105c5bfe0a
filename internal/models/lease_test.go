package models_test

import (
	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/models"
	"github.com/rentledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestLeaseCreate() {
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

	suite.Assert().NotEqual(uuid.Nil, lease.ID)
}

func (suite *TestSuiteStandard) TestLeaseCadenceNormalized() {
	tenant := suite.createTestTenant(models.Tenant{})
	property := suite.createTestProperty(models.Property{})

	lease := suite.createTestLease(models.Lease{
		TenantID:     tenant.ID,
		PropertyID:   property.ID,
		RentAmount:   decimal.New(500, 0),
		RentCadence:  " Monthly ",
		FirstDueDate: types.NewDate(2024, 1, 1),
	})

	suite.Assert().Equal("monthly", lease.RentCadence)
}

func (suite *TestSuiteStandard) TestLeaseTenantMustExist() {
	property := suite.createTestProperty(models.Property{})

	err := models.DB.Create(&models.Lease{
		TenantID:     uuid.New(),
		PropertyID:   property.ID,
		RentAmount:   decimal.New(500, 0),
		RentCadence:  "monthly",
		FirstDueDate: types.NewDate(2024, 1, 1),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestLeasePropertyMustExist() {
	tenant := suite.createTestTenant(models.Tenant{})

	err := models.DB.Create(&models.Lease{
		TenantID:     tenant.ID,
		PropertyID:   uuid.New(),
		RentAmount:   decimal.New(500, 0),
		RentCadence:  "monthly",
		FirstDueDate: types.NewDate(2024, 1, 1),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestLeaseRentMustBePositive() {
	tenant := suite.createTestTenant(models.Tenant{})
	property := suite.createTestProperty(models.Property{})

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.New(-500, 0)} {
		err := models.DB.Create(&models.Lease{
			TenantID:     tenant.ID,
			PropertyID:   property.ID,
			RentAmount:   amount,
			RentCadence:  "monthly",
			FirstDueDate: types.NewDate(2024, 1, 1),
		}).Error

		suite.Assert().ErrorIs(err, models.ErrLeaseRentNotPositive, "amount %s should be rejected", amount)
	}
}
