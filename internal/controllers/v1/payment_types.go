package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/ledger"
	"github.com/rentledger/backend/internal/models"
	"github.com/rentledger/backend/internal/types"
	ez_uuid "github.com/rentledger/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// PaymentEditable represents all user configurable parameters
type PaymentEditable struct {
	TenantID       uuid.UUID       `json:"tenantId" example:"d8d64076-f74a-4628-a9a7-40a4c4c424a5"`      // ID of the tenant. May be empty when a payer reference matches a match rule
	Amount         decimal.Decimal `json:"amount" example:"700" minimum:"0.01" multipleOf:"0.01"`        // The amount received
	DatePaid       types.Date      `json:"datePaid" example:"2024-02-03"`                                // Date the money was received
	PayerReference string          `json:"payerReference" example:"ACME BANK/J DOE RENT FEB" default:""` // Free-text reference from the payer
}

func (editable PaymentEditable) model() models.Payment {
	return models.Payment{
		TenantID:       editable.TenantID,
		Amount:         editable.Amount,
		DatePaid:       editable.DatePaid,
		PayerReference: editable.PayerReference,
	}
}

type PaymentLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/payments/d430d7c3-d14c-4712-9336-ee56965a6673"`             // The payment itself
	Allocations string `json:"allocations" example:"https://example.com/api/v1/payments/d430d7c3-d14c-4712-9336-ee56965a6673/allocations"` // The allocations of this payment
}

type Payment struct {
	models.DefaultModel
	PaymentEditable
	Note  string       `json:"note" example:"{\"allocations\":2,\"totalApplied\":\"700\",\"remainder\":\"0\"}"` // Allocation summary, set when the payment is allocated
	Links PaymentLinks `json:"links"`
}

func newPayment(c *gin.Context, model models.Payment) Payment {
	url := c.GetString(string(models.DBContextURL))

	return Payment{
		DefaultModel: model.DefaultModel,
		PaymentEditable: PaymentEditable{
			TenantID:       model.TenantID,
			Amount:         model.Amount,
			DatePaid:       model.DatePaid,
			PayerReference: model.PayerReference,
		},
		Note: model.Note,
		Links: PaymentLinks{
			Self:        fmt.Sprintf("%s/v1/payments/%s", url, model.ID),
			Allocations: fmt.Sprintf("%s/v1/payments/%s/allocations", url, model.ID),
		},
	}
}

type PaymentListResponse struct {
	Data       []Payment   `json:"data"`                                                          // List of payments
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PaymentResponse struct {
	Data  *Payment `json:"data"`                                                          // Data for the payment
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PaymentQueryFilter struct {
	TenantID ez_uuid.UUID `form:"tenant"`                     // By ID of the tenant
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first payment returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of payments to return. Defaults to 50.
}

func (f PaymentQueryFilter) model() models.Payment {
	return models.Payment{
		TenantID: f.TenantID.UUID,
	}
}

// AllocateRequest is the body for payment allocation. All fields are
// optional: the date defaults to today.
type AllocateRequest struct {
	DatePaid types.Date `json:"datePaid" example:"2024-02-03"` // Date the money was received. Defaults to today
}

// AppliedPeriod is the settlement of one rent period by the payment.
type AppliedPeriod struct {
	PeriodID      uuid.UUID           `json:"periodId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`
	PeriodDueDate types.Date          `json:"periodDueDate" example:"2024-01-01"`
	ToLateFee     decimal.Decimal     `json:"toLateFee" example:"45"`
	ToRent        decimal.Decimal     `json:"toRent" example:"455"`
	Status        models.PeriodStatus `json:"status" example:"partial" enums:"unpaid,partial,paid"`
}

// Allocation is the result of allocating a payment.
type Allocation struct {
	Applied   []AppliedPeriod `json:"applied"`                     // Per-period settlements, oldest due date first
	Remainder decimal.Decimal `json:"remainder" example:"0"`       // Money beyond any period the policy would create
	Replayed  bool            `json:"replayed" example:"false"`    // True when the payment had already been allocated
}

func newAllocation(result ledger.Result) Allocation {
	applied := make([]AppliedPeriod, 0, len(result.Applied))
	for _, p := range result.Applied {
		applied = append(applied, AppliedPeriod{
			PeriodID:      p.PeriodID,
			PeriodDueDate: p.PeriodDueDate,
			ToLateFee:     p.ToLateFee,
			ToRent:        p.ToRent,
			Status:        p.Status,
		})
	}

	return Allocation{
		Applied:   applied,
		Remainder: result.Remainder,
		Replayed:  result.Replayed,
	}
}

type AllocationResponse struct {
	Data  *Allocation `json:"data"`                                                   // The allocation result
	Error *string     `json:"error" example:"payment amounts must be positive and have at most two decimal places"` // The error, if any occurred
}

// PaymentAllocation is one persisted allocation record of a payment.
type PaymentAllocation struct {
	models.DefaultModel
	PaymentID       uuid.UUID       `json:"paymentId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`
	RentPeriodID    uuid.UUID       `json:"rentPeriodId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`
	AmountToLateFee decimal.Decimal `json:"amountToLateFee" example:"45"`
	AmountToRent    decimal.Decimal `json:"amountToRent" example:"455"`
}

func newPaymentAllocation(model models.PaymentAllocation) PaymentAllocation {
	return PaymentAllocation{
		DefaultModel:    model.DefaultModel,
		PaymentID:       model.PaymentID,
		RentPeriodID:    model.RentPeriodID,
		AmountToLateFee: model.AmountToLateFee,
		AmountToRent:    model.AmountToRent,
	}
}

type PaymentAllocationListResponse struct {
	Data  []PaymentAllocation `json:"data"`                                                          // List of allocation records
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
