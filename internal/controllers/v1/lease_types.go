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

// LeaseEditable represents all user configurable parameters
type LeaseEditable struct {
	TenantID     uuid.UUID       `json:"tenantId" example:"d8d64076-f74a-4628-a9a7-40a4c4c424a5"`                 // ID of the tenant
	PropertyID   uuid.UUID       `json:"propertyId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`               // ID of the property
	RentAmount   decimal.Decimal `json:"rentAmount" example:"500" minimum:"0.01" multipleOf:"0.01"`               // Recurring rent per period
	RentCadence  string          `json:"rentCadence" example:"monthly" enums:"weekly,bi-weekly,monthly"`          // Billing rhythm of the lease
	FirstDueDate types.Date      `json:"firstDueDate" example:"2024-01-01"`                                       // Due date of the first rent period
	Active       bool            `json:"active" example:"true" default:"false"`                                   // Is the lease active?
	Note         string          `json:"note" example:"Two year term, renews in December" default:""`             // Notes about the lease
}

func (editable LeaseEditable) model() models.Lease {
	return models.Lease{
		TenantID:     editable.TenantID,
		PropertyID:   editable.PropertyID,
		RentAmount:   editable.RentAmount,
		RentCadence:  editable.RentCadence,
		FirstDueDate: editable.FirstDueDate,
		Active:       editable.Active,
		Note:         editable.Note,
	}
}

type LeaseLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/leases/3b1ea324-d438-4419-882a-2fc91d71772f"`               // The lease itself
	Periods string `json:"periods" example:"https://example.com/api/v1/periods?lease=3b1ea324-d438-4419-882a-2fc91d71772f"`     // Rent periods of this lease
}

type Lease struct {
	models.DefaultModel
	LeaseEditable
	Links LeaseLinks `json:"links"`
}

func newLease(c *gin.Context, model models.Lease) Lease {
	url := c.GetString(string(models.DBContextURL))

	return Lease{
		DefaultModel: model.DefaultModel,
		LeaseEditable: LeaseEditable{
			TenantID:     model.TenantID,
			PropertyID:   model.PropertyID,
			RentAmount:   model.RentAmount,
			RentCadence:  model.RentCadence,
			FirstDueDate: model.FirstDueDate,
			Active:       model.Active,
			Note:         model.Note,
		},
		Links: LeaseLinks{
			Self:    fmt.Sprintf("%s/v1/leases/%s", url, model.ID),
			Periods: fmt.Sprintf("%s/v1/periods?lease=%s", url, model.ID),
		},
	}
}

type LeaseListResponse struct {
	Data       []Lease     `json:"data"`                                                          // List of leases
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type LeaseResponse struct {
	Data  *Lease  `json:"data"`                                                          // Data for the lease
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type LeaseQueryFilter struct {
	TenantID   ez_uuid.UUID `form:"tenant"`                     // By ID of the tenant
	PropertyID ez_uuid.UUID `form:"property"`                   // By ID of the property
	Active     bool         `form:"active"`                     // Is the lease active?
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first lease returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of leases to return. Defaults to 50.
}

func (f LeaseQueryFilter) model() models.Lease {
	return models.Lease{
		TenantID:   f.TenantID.UUID,
		PropertyID: f.PropertyID.UUID,
		Active:     f.Active,
	}
}

// GeneratePeriodsRequest is the body for bulk period generation on a lease.
type GeneratePeriodsRequest struct {
	Count int `json:"count" example:"12" minimum:"1"` // Number of periods to generate
}

type GeneratePeriodsResponse struct {
	Data  []RentPeriod `json:"data"`                                                               // The generated rent periods
	Error *string      `json:"error" example:"the number of periods to generate must be larger than zero"` // The error, if any occurred
}
