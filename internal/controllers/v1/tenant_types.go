package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rentledger/backend/internal/models"
)

// TenantEditable represents all user configurable parameters
type TenantEditable struct {
	Name  string `json:"name" example:"Jordan Doe" default:""`          // Name of the tenant
	Email string `json:"email" example:"jordan@example.com" default:""` // Email address
	Note  string `json:"note" example:"Prefers email contact" default:""`
}

func (editable TenantEditable) model() models.Tenant {
	return models.Tenant{
		Name:  editable.Name,
		Email: editable.Email,
		Note:  editable.Note,
	}
}

type TenantLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/tenants/d8d64076-f74a-4628-a9a7-40a4c4c424a5"`                  // The tenant itself
	Leases   string `json:"leases" example:"https://example.com/api/v1/leases?tenant=d8d64076-f74a-4628-a9a7-40a4c4c424a5"`          // Leases of this tenant
	Payments string `json:"payments" example:"https://example.com/api/v1/payments?tenant=d8d64076-f74a-4628-a9a7-40a4c4c424a5"`      // Payments of this tenant
	Periods  string `json:"periods" example:"https://example.com/api/v1/periods?tenant=d8d64076-f74a-4628-a9a7-40a4c4c424a5"`        // Rent periods of this tenant
}

type Tenant struct {
	models.DefaultModel
	TenantEditable
	Links TenantLinks `json:"links"`
}

func newTenant(c *gin.Context, model models.Tenant) Tenant {
	url := c.GetString(string(models.DBContextURL))

	return Tenant{
		DefaultModel: model.DefaultModel,
		TenantEditable: TenantEditable{
			Name:  model.Name,
			Email: model.Email,
			Note:  model.Note,
		},
		Links: TenantLinks{
			Self:     fmt.Sprintf("%s/v1/tenants/%s", url, model.ID),
			Leases:   fmt.Sprintf("%s/v1/leases?tenant=%s", url, model.ID),
			Payments: fmt.Sprintf("%s/v1/payments?tenant=%s", url, model.ID),
			Periods:  fmt.Sprintf("%s/v1/periods?tenant=%s", url, model.ID),
		},
	}
}

type TenantListResponse struct {
	Data       []Tenant    `json:"data"`                                                          // List of tenants
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type TenantResponse struct {
	Data  *Tenant `json:"data"`                                                          // Data for the tenant
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TenantQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name, fuzzy
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first tenant returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of tenants to return. Defaults to 50.
}
