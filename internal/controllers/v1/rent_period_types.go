package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/models"
	"github.com/rentledger/backend/internal/types"
	ez_uuid "github.com/rentledger/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// RentPeriodEditable represents the parameters a user can change on a rent
// period. The settlement fields only advance through payment allocation.
type RentPeriodEditable struct {
	LateFeeWaived   bool        `json:"lateFeeWaived" example:"true" default:"false"`       // Is the late fee waived for this period?
	DueDateOverride *types.Date `json:"dueDateOverride" example:"2024-02-15"`               // Due date used for lateness instead of the period due date
	Note            string      `json:"note" example:"Deferred by two weeks" default:""`    // Notes about the period
}

type RentPeriodLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/periods/d430d7c3-d14c-4712-9336-ee56965a6673"`  // The rent period itself
	Lease string `json:"lease" example:"https://example.com/api/v1/leases/3b1ea324-d438-4419-882a-2fc91d71772f"`  // The lease the period belongs to
}

type RentPeriod struct {
	models.DefaultModel
	TenantID       uuid.UUID        `json:"tenantId" example:"d8d64076-f74a-4628-a9a7-40a4c4c424a5"`
	PropertyID     uuid.UUID        `json:"propertyId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	LeaseID        uuid.UUID        `json:"leaseId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`
	PeriodDueDate  types.Date       `json:"periodDueDate" example:"2024-01-01"`
	RentAmount     decimal.Decimal  `json:"rentAmount" example:"500"`
	RentCadence    string           `json:"rentCadence" example:"monthly"`
	Status         models.PeriodStatus `json:"status" example:"partial" enums:"unpaid,partial,paid"`
	AmountPaid     decimal.Decimal  `json:"amountPaid" example:"55"`
	LateFeeApplied decimal.Decimal  `json:"lateFeeApplied" example:"45"`
	RentPeriodEditable
	Links RentPeriodLinks `json:"links"`
}

func newRentPeriod(c *gin.Context, model models.RentPeriod) RentPeriod {
	url := c.GetString(string(models.DBContextURL))

	return RentPeriod{
		DefaultModel:   model.DefaultModel,
		TenantID:       model.TenantID,
		PropertyID:     model.PropertyID,
		LeaseID:        model.LeaseID,
		PeriodDueDate:  model.PeriodDueDate,
		RentAmount:     model.RentAmount,
		RentCadence:    model.RentCadence,
		Status:         model.Status,
		AmountPaid:     model.AmountPaid,
		LateFeeApplied: model.LateFeeApplied,
		RentPeriodEditable: RentPeriodEditable{
			LateFeeWaived:   model.LateFeeWaived,
			DueDateOverride: model.DueDateOverride,
			Note:            model.Note,
		},
		Links: RentPeriodLinks{
			Self:  fmt.Sprintf("%s/v1/periods/%s", url, model.ID),
			Lease: fmt.Sprintf("%s/v1/leases/%s", url, model.LeaseID),
		},
	}
}

type RentPeriodListResponse struct {
	Data       []RentPeriod `json:"data"`                                                          // List of rent periods
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type RentPeriodResponse struct {
	Data  *RentPeriod `json:"data"`                                                          // Data for the rent period
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type RentPeriodQueryFilter struct {
	TenantID ez_uuid.UUID `form:"tenant"`                       // By ID of the tenant
	LeaseID  ez_uuid.UUID `form:"lease"`                        // By ID of the lease
	Status   string       `form:"status" filterField:"false"`   // By settlement status
	FromDate types.Date   `form:"fromDate" filterField:"false"` // Periods due at and after this date
	UntilDate types.Date  `form:"untilDate" filterField:"false"` // Periods due before and at this date
	Offset   uint         `form:"offset" filterField:"false"`   // The offset of the first period returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`    // Maximum number of periods to return. Defaults to 50.
}

func (f RentPeriodQueryFilter) model() models.RentPeriod {
	return models.RentPeriod{
		TenantID: f.TenantID.UUID,
		LeaseID:  f.LeaseID.UUID,
	}
}
