package ledger_test

import (
	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/ledger"
	"github.com/rentledger/backend/internal/models"
	"github.com/rentledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// engineAt returns an engine whose current date is fixed to the given date.
func engineAt(today types.Date) *ledger.Engine {
	e := ledger.New(models.DB)
	e.Today = func() types.Date { return today }

	return e
}

// standardLedger is the environment most engine tests run against: one
// tenant renting one property for 500 a month, first due date 2024-01-01.
type standardLedger struct {
	tenant   models.Tenant
	property models.Property
	lease    models.Lease
}

func (suite *TestSuiteStandard) createStandardLedger() standardLedger {
	tenant := suite.createTestTenant(models.Tenant{Name: "Jordan Doe"})
	property := suite.createTestProperty(models.Property{Name: "Maple Street 12"})
	lease := suite.createTestLease(models.Lease{
		TenantID:     tenant.ID,
		PropertyID:   property.ID,
		RentAmount:   decimal.New(500, 0),
		RentCadence:  "monthly",
		FirstDueDate: types.NewDate(2024, 1, 1),
		Active:       true,
	})

	return standardLedger{tenant: tenant, property: property, lease: lease}
}

func (suite *TestSuiteStandard) createPeriodDue(env standardLedger, due types.Date) models.RentPeriod {
	return suite.createTestRentPeriod(models.RentPeriod{
		TenantID:      env.tenant.ID,
		PropertyID:    env.property.ID,
		LeaseID:       env.lease.ID,
		PeriodDueDate: due,
		RentAmount:    env.lease.RentAmount,
		RentCadence:   env.lease.RentCadence,
	})
}

// sumApplied returns the total money the result distributed.
func sumApplied(result ledger.Result) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range result.Applied {
		sum = sum.Add(p.ToLateFee).Add(p.ToRent)
	}

	return sum
}

func (suite *TestSuiteStandard) TestAllocatePaymentFIFO() {
	env := suite.createStandardLedger()
	jan := suite.createPeriodDue(env, types.NewDate(2024, 1, 1))
	feb := suite.createPeriodDue(env, types.NewDate(2024, 2, 1))
	suite.createPeriodDue(env, types.NewDate(2024, 3, 1))

	payment := suite.createTestPayment(models.Payment{TenantID: env.tenant.ID, Amount: decimal.New(700, 0)})

	result, err := engineAt(types.NewDate(2024, 1, 3)).AllocatePayment(env.tenant.ID, payment.ID, payment.Amount, types.NewDate(2024, 1, 3))
	suite.Require().Nil(err)

	// Oldest period is settled in full, the next one partially, the third
	// is untouched
	suite.Require().Len(result.Applied, 2)
	suite.Assert().Equal(jan.ID, result.Applied[0].PeriodID)
	suite.Assert().True(decimal.New(500, 0).Equal(result.Applied[0].ToRent))
	suite.Assert().Equal(models.PeriodStatusPaid, result.Applied[0].Status)

	suite.Assert().Equal(feb.ID, result.Applied[1].PeriodID)
	suite.Assert().True(decimal.New(200, 0).Equal(result.Applied[1].ToRent))
	suite.Assert().Equal(models.PeriodStatusPartial, result.Applied[1].Status)

	suite.Assert().True(result.Remainder.IsZero())
	suite.Assert().True(payment.Amount.Equal(sumApplied(result)))

	// The settlement is persisted
	var reloaded models.RentPeriod
	suite.Require().Nil(models.DB.First(&reloaded, feb.ID).Error)
	suite.Assert().True(decimal.New(200, 0).Equal(reloaded.AmountPaid))
	suite.Assert().Equal(models.PeriodStatusPartial, reloaded.Status)
}

func (suite *TestSuiteStandard) TestAllocatePaymentLateFeeBeforeRent() {
	env := suite.createStandardLedger()
	period := suite.createPeriodDue(env, types.NewDate(2024, 1, 1))

	payment := suite.createTestPayment(models.Payment{TenantID: env.tenant.ID, Amount: decimal.New(100, 0)})

	// 2024-02-10 is well past the grace window of the January period
	result, err := engineAt(types.NewDate(2024, 2, 10)).AllocatePayment(env.tenant.ID, payment.ID, payment.Amount, types.NewDate(2024, 2, 10))
	suite.Require().Nil(err)

	suite.Require().Len(result.Applied, 1)
	suite.Assert().True(decimal.New(45, 0).Equal(result.Applied[0].ToLateFee), "fee is %s", result.Applied[0].ToLateFee)
	suite.Assert().True(decimal.New(55, 0).Equal(result.Applied[0].ToRent), "rent is %s", result.Applied[0].ToRent)

	var reloaded models.RentPeriod
	suite.Require().Nil(models.DB.First(&reloaded, period.ID).Error)
	suite.Assert().True(decimal.New(45, 0).Equal(reloaded.LateFeeApplied))
	suite.Assert().True(decimal.New(55, 0).Equal(reloaded.AmountPaid))
	suite.Assert().Equal(models.PeriodStatusPartial, reloaded.Status)
}

func (suite *TestSuiteStandard) TestAllocatePaymentWaivedFee() {
	env := suite.createStandardLedger()
	period := suite.createTestRentPeriod(models.RentPeriod{
		TenantID:      env.tenant.ID,
		PropertyID:    env.property.ID,
		LeaseID:       env.lease.ID,
		PeriodDueDate: types.NewDate(2024, 1, 1),
		RentAmount:    env.lease.RentAmount,
		RentCadence:   env.lease.RentCadence,
		LateFeeWaived: true,
	})

	payment := suite.createTestPayment(models.Payment{TenantID: env.tenant.ID, Amount: decimal.New(100, 0)})

	result, err := engineAt(types.NewDate(2024, 2, 10)).AllocatePayment(env.tenant.ID, payment.ID, payment.Amount, types.NewDate(2024, 2, 10))
	suite.Require().Nil(err)

	// The whole payment goes to rent, no fee is charged
	suite.Require().Len(result.Applied, 1)
	suite.Assert().True(result.Applied[0].ToLateFee.IsZero())
	suite.Assert().True(decimal.New(100, 0).Equal(result.Applied[0].ToRent))

	var reloaded models.RentPeriod
	suite.Require().Nil(models.DB.First(&reloaded, period.ID).Error)
	suite.Assert().True(reloaded.LateFeeApplied.IsZero())
}

func (suite *TestSuiteStandard) TestAllocatePaymentDueDateOverride() {
	env := suite.createStandardLedger()
	override := types.NewDate(2024, 2, 15)
	suite.createTestRentPeriod(models.RentPeriod{
		TenantID:        env.tenant.ID,
		PropertyID:      env.property.ID,
		LeaseID:         env.lease.ID,
		PeriodDueDate:   types.NewDate(2024, 1, 1),
		RentAmount:      env.lease.RentAmount,
		RentCadence:     env.lease.RentCadence,
		DueDateOverride: &override,
	})

	payment := suite.createTestPayment(models.Payment{TenantID: env.tenant.ID, Amount: decimal.New(100, 0)})

	// Lateness is evaluated against the override, so no fee is due yet
	result, err := engineAt(types.NewDate(2024, 2, 10)).AllocatePayment(env.tenant.ID, payment.ID, payment.Amount, types.NewDate(2024, 2, 10))
	suite.Require().Nil(err)

	suite.Require().Len(result.Applied, 1)
	suite.Assert().True(result.Applied[0].ToLateFee.IsZero())
	suite.Assert().True(decimal.New(100, 0).Equal(result.Applied[0].ToRent))
}

func (suite *TestSuiteStandard) TestAllocatePaymentIdempotent() {
	env := suite.createStandardLedger()
	suite.createPeriodDue(env, types.NewDate(2024, 1, 1))

	payment := suite.createTestPayment(models.Payment{TenantID: env.tenant.ID, Amount: decimal.New(300, 0)})

	engine := engineAt(types.NewDate(2024, 1, 3))
	first, err := engine.AllocatePayment(env.tenant.ID, payment.ID, payment.Amount, types.NewDate(2024, 1, 3))
	suite.Require().Nil(err)
	suite.Assert().False(first.Replayed)

	second, err := engine.AllocatePayment(env.tenant.ID, payment.ID, payment.Amount, types.NewDate(2024, 1, 3))
	suite.Require().Nil(err)
	suite.Assert().True(second.Replayed)

	// The replay reports the recorded settlements and changes nothing
	suite.Require().Len(second.Applied, len(first.Applied))
	suite.Assert().Equal(first.Applied[0].PeriodID, second.Applied[0].PeriodID)
	suite.Assert().True(first.Applied[0].ToRent.Equal(second.Applied[0].ToRent))
	suite.Assert().True(second.Remainder.IsZero())

	var reloaded models.RentPeriod
	suite.Require().Nil(models.DB.First(&reloaded, first.Applied[0].PeriodID).Error)
	suite.Assert().True(decimal.New(300, 0).Equal(reloaded.AmountPaid), "amount paid is %s after replay", reloaded.AmountPaid)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.PaymentAllocation{}).Where("payment_id = ?", payment.ID).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestAllocatePaymentOverflow() {
	env := suite.createStandardLedger()
	suite.createPeriodDue(env, types.NewDate(2024, 1, 1))

	payment := suite.createTestPayment(models.Payment{TenantID: env.tenant.ID, Amount: decimal.New(1200, 0)})

	result, err := engineAt(types.NewDate(2024, 1, 2)).AllocatePayment(env.tenant.ID, payment.ID, payment.Amount, types.NewDate(2024, 1, 2))
	suite.Require().Nil(err)

	// 500 settles January, the rest spills into exactly two generated
	// periods: February in full, March partially
	suite.Require().Len(result.Applied, 3)
	suite.Assert().True(types.NewDate(2024, 2, 1).Equal(result.Applied[1].PeriodDueDate))
	suite.Assert().True(decimal.New(500, 0).Equal(result.Applied[1].ToRent))
	suite.Assert().Equal(models.PeriodStatusPaid, result.Applied[1].Status)

	suite.Assert().True(types.NewDate(2024, 3, 1).Equal(result.Applied[2].PeriodDueDate))
	suite.Assert().True(decimal.New(200, 0).Equal(result.Applied[2].ToRent))
	suite.Assert().Equal(models.PeriodStatusPartial, result.Applied[2].Status)

	suite.Assert().True(result.Remainder.IsZero())
	suite.Assert().True(payment.Amount.Equal(sumApplied(result)))

	var count int64
	suite.Require().Nil(models.DB.Model(&models.RentPeriod{}).Where("lease_id = ?", env.lease.ID).Count(&count).Error)
	suite.Assert().Equal(int64(3), count)
}

func (suite *TestSuiteStandard) TestAllocatePaymentGenerationCap() {
	env := suite.createStandardLedger()

	// No periods exist, so everything spills. 6500 would need 13 periods
	// of 500, one more than the cap allows.
	payment := suite.createTestPayment(models.Payment{TenantID: env.tenant.ID, Amount: decimal.New(6500, 0)})

	result, err := engineAt(types.NewDate(2023, 12, 1)).AllocatePayment(env.tenant.ID, payment.ID, payment.Amount, types.NewDate(2023, 12, 1))
	suite.Require().Nil(err)

	suite.Require().Len(result.Applied, ledger.DefaultMaxGeneratedPeriods)

	// Generation starts at the lease's first due date
	suite.Assert().True(types.NewDate(2024, 1, 1).Equal(result.Applied[0].PeriodDueDate))
	suite.Assert().True(types.NewDate(2024, 12, 1).Equal(result.Applied[11].PeriodDueDate))

	// The 500 beyond the cap is returned, not billed
	suite.Assert().True(decimal.New(500, 0).Equal(result.Remainder), "remainder is %s", result.Remainder)
	suite.Assert().True(payment.Amount.Equal(sumApplied(result).Add(result.Remainder)))
}

func (suite *TestSuiteStandard) TestAllocatePaymentNoLease() {
	tenant := suite.createTestTenant(models.Tenant{Name: "No Lease"})
	payment := suite.createTestPayment(models.Payment{TenantID: tenant.ID, Amount: decimal.New(250, 0)})

	result, err := engineAt(types.NewDate(2024, 1, 1)).AllocatePayment(tenant.ID, payment.ID, payment.Amount, types.NewDate(2024, 1, 1))
	suite.Require().Nil(err)

	// Nothing to bill against, the full amount comes back
	suite.Assert().Len(result.Applied, 0)
	suite.Assert().True(payment.Amount.Equal(result.Remainder))
}

func (suite *TestSuiteStandard) TestAllocatePaymentConservation() {
	env := suite.createStandardLedger()
	suite.createPeriodDue(env, types.NewDate(2024, 1, 1))
	suite.createPeriodDue(env, types.NewDate(2024, 2, 1))

	// Both periods are late: each owes 500 rent + 45 fee
	payment := suite.createTestPayment(models.Payment{TenantID: env.tenant.ID, Amount: decimal.NewFromFloat(817.37)})

	result, err := engineAt(types.NewDate(2024, 3, 20)).AllocatePayment(env.tenant.ID, payment.ID, payment.Amount, types.NewDate(2024, 3, 20))
	suite.Require().Nil(err)

	// Exact conservation, no rounding drift
	suite.Assert().True(payment.Amount.Equal(sumApplied(result).Add(result.Remainder)))

	// January is settled in full including its fee, February gets the rest
	suite.Require().Len(result.Applied, 2)
	suite.Assert().True(decimal.New(45, 0).Equal(result.Applied[0].ToLateFee))
	suite.Assert().True(decimal.New(500, 0).Equal(result.Applied[0].ToRent))
	suite.Assert().True(decimal.New(45, 0).Equal(result.Applied[1].ToLateFee))
	suite.Assert().True(decimal.NewFromFloat(227.37).Equal(result.Applied[1].ToRent))
}

func (suite *TestSuiteStandard) TestAllocatePaymentInvalidAmount() {
	env := suite.createStandardLedger()
	payment := suite.createTestPayment(models.Payment{TenantID: env.tenant.ID, Amount: decimal.New(100, 0)})

	engine := engineAt(types.NewDate(2024, 1, 1))

	for _, amount := range []decimal.Decimal{
		decimal.Zero,
		decimal.New(-100, 0),
		decimal.NewFromFloat(10.001),
	} {
		_, err := engine.AllocatePayment(env.tenant.ID, payment.ID, amount, types.NewDate(2024, 1, 1))
		suite.Assert().ErrorIs(err, ledger.ErrInvalidAmount, "amount %s should be rejected", amount)
	}
}

func (suite *TestSuiteStandard) TestAllocatePaymentTenantMismatch() {
	env := suite.createStandardLedger()
	other := suite.createTestTenant(models.Tenant{Name: "Somebody Else"})

	payment := suite.createTestPayment(models.Payment{TenantID: env.tenant.ID, Amount: decimal.New(100, 0)})

	_, err := engineAt(types.NewDate(2024, 1, 1)).AllocatePayment(other.ID, payment.ID, payment.Amount, types.NewDate(2024, 1, 1))
	suite.Assert().ErrorIs(err, ledger.ErrPaymentTenantMismatch)
}

func (suite *TestSuiteStandard) TestAllocatePaymentNotFound() {
	env := suite.createStandardLedger()

	_, err := engineAt(types.NewDate(2024, 1, 1)).AllocatePayment(env.tenant.ID, uuid.New(), decimal.New(100, 0), types.NewDate(2024, 1, 1))
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestAllocatePaymentStoreUnavailable() {
	env := suite.createStandardLedger()
	payment := suite.createTestPayment(models.Payment{TenantID: env.tenant.ID, Amount: decimal.New(100, 0)})

	suite.CloseDB()

	_, err := engineAt(types.NewDate(2024, 1, 1)).AllocatePayment(env.tenant.ID, payment.ID, payment.Amount, types.NewDate(2024, 1, 1))
	suite.Assert().ErrorIs(err, ledger.ErrStoreUnavailable)
}

func (suite *TestSuiteStandard) TestAllocatePaymentFinalizesNote() {
	env := suite.createStandardLedger()
	suite.createPeriodDue(env, types.NewDate(2024, 1, 1))

	payment := suite.createTestPayment(models.Payment{TenantID: env.tenant.ID, Amount: decimal.New(500, 0)})

	_, err := engineAt(types.NewDate(2024, 1, 3)).AllocatePayment(env.tenant.ID, payment.ID, payment.Amount, types.NewDate(2024, 1, 3))
	suite.Require().Nil(err)

	var reloaded models.Payment
	suite.Require().Nil(models.DB.First(&reloaded, payment.ID).Error)
	suite.Assert().True(types.NewDate(2024, 1, 3).Equal(reloaded.DatePaid))
	suite.Assert().Contains(reloaded.Note, `"allocations":1`)
}
