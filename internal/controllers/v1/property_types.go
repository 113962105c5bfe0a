package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rentledger/backend/internal/models"
)

// PropertyEditable represents all user configurable parameters
type PropertyEditable struct {
	Name    string `json:"name" example:"Maple Street 12" default:""`             // Name of the property
	Address string `json:"address" example:"12 Maple St, Springfield" default:""` // Postal address
	Note    string `json:"note" example:"Two bedroom unit" default:""`
}

func (editable PropertyEditable) model() models.Property {
	return models.Property{
		Name:    editable.Name,
		Address: editable.Address,
		Note:    editable.Note,
	}
}

type PropertyLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/properties/52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`       // The property itself
	Leases string `json:"leases" example:"https://example.com/api/v1/leases?property=52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Leases of this property
}

type Property struct {
	models.DefaultModel
	PropertyEditable
	Links PropertyLinks `json:"links"`
}

func newProperty(c *gin.Context, model models.Property) Property {
	url := c.GetString(string(models.DBContextURL))

	return Property{
		DefaultModel: model.DefaultModel,
		PropertyEditable: PropertyEditable{
			Name:    model.Name,
			Address: model.Address,
			Note:    model.Note,
		},
		Links: PropertyLinks{
			Self:   fmt.Sprintf("%s/v1/properties/%s", url, model.ID),
			Leases: fmt.Sprintf("%s/v1/leases?property=%s", url, model.ID),
		},
	}
}

type PropertyListResponse struct {
	Data       []Property  `json:"data"`                                                          // List of properties
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PropertyResponse struct {
	Data  *Property `json:"data"`                                                          // Data for the property
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PropertyQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name, fuzzy
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first property returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of properties to return. Defaults to 50.
}
