package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentledger/backend/internal/httputil"
	"github.com/rentledger/backend/internal/ledger"
	"github.com/rentledger/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterLeaseRoutes registers the routes for leases with
// the RouterGroup that is passed.
func RegisterLeaseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsLeaseList)
		r.GET("", GetLeases)
		r.POST("", CreateLease)
	}

	// Lease with ID
	{
		r.OPTIONS("/:id", OptionsLeaseDetail)
		r.GET("/:id", GetLease)
		r.POST("/:id/periods", GeneratePeriods)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Leases
// @Success		204
// @Router			/v1/leases [options]
func OptionsLeaseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Leases
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/leases/{id} [options]
func OptionsLeaseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Lease{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPost(c)
}

// @Summary		Create lease
// @Description	Creates a new lease
// @Tags			Leases
// @Produce		json
// @Success		201		{object}	LeaseResponse
// @Failure		400		{object}	LeaseResponse
// @Failure		404		{object}	LeaseResponse
// @Failure		500		{object}	LeaseResponse
// @Param			lease	body		LeaseEditable	true	"Lease"
// @Router			/v1/leases [post]
func CreateLease(c *gin.Context) {
	var editable LeaseEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LeaseResponse{
			Error: &e,
		})
		return
	}

	// Reject cadence tags outside the closed set before anything is stored
	if _, err := ledger.ParseCadence(editable.RentCadence); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, LeaseResponse{
			Error: &e,
		})
		return
	}

	lease := editable.model()
	err = models.DB.Create(&lease).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LeaseResponse{
			Error: &e,
		})
		return
	}

	data := newLease(c, lease)
	c.JSON(http.StatusCreated, LeaseResponse{Data: &data})
}

// @Summary		Get leases
// @Description	Returns a list of leases
// @Tags			Leases
// @Produce		json
// @Success		200	{object}	LeaseListResponse
// @Failure		400	{object}	LeaseListResponse
// @Failure		500	{object}	LeaseListResponse
// @Router			/v1/leases [get]
// @Param			tenant		query	string	false	"Filter by tenant ID"
// @Param			property	query	string	false	"Filter by property ID"
// @Param			active		query	bool	false	"Is the lease active?"
// @Param			offset		query	uint	false	"The offset of the first lease returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of leases to return. Defaults to 50."
func GetLeases(c *gin.Context) {
	var filter LeaseQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, LeaseListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("leases.created_at ASC").
		Where(filter.model(), queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 leases and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var leases []models.Lease
	err := q.Find(&leases).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LeaseListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LeaseListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Lease, 0)
	for _, lease := range leases {
		data = append(data, newLease(c, lease))
	}

	c.JSON(http.StatusOK, LeaseListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get lease
// @Description	Returns a specific lease
// @Tags			Leases
// @Produce		json
// @Success		200	{object}	LeaseResponse
// @Failure		400	{object}	LeaseResponse
// @Failure		404	{object}	LeaseResponse
// @Failure		500	{object}	LeaseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/leases/{id} [get]
func GetLease(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LeaseResponse{
			Error: &e,
		})
		return
	}

	var lease models.Lease
	err = models.DB.First(&lease, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LeaseResponse{
			Error: &e,
		})
		return
	}

	data := newLease(c, lease)
	c.JSON(http.StatusOK, LeaseResponse{Data: &data})
}

// @Summary		Generate rent periods
// @Description	Generates the next billing periods for a lease. Generation continues from the most recent period, or starts at the lease's first due date.
// @Tags			Leases
// @Produce		json
// @Success		201		{object}	GeneratePeriodsResponse
// @Failure		400		{object}	GeneratePeriodsResponse
// @Failure		404		{object}	GeneratePeriodsResponse
// @Failure		500		{object}	GeneratePeriodsResponse
// @Failure		503		{object}	GeneratePeriodsResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			request	body		GeneratePeriodsRequest	true	"Generation request"
// @Router			/v1/leases/{id}/periods [post]
func GeneratePeriods(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GeneratePeriodsResponse{
			Error: &e,
		})
		return
	}

	var request GeneratePeriodsRequest
	err = httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GeneratePeriodsResponse{
			Error: &e,
		})
		return
	}

	periods, err := ledger.New(models.DB).GeneratePeriods(uri.ID.UUID, request.Count)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GeneratePeriodsResponse{
			Error: &e,
		})
		return
	}

	data := make([]RentPeriod, 0, len(periods))
	for _, period := range periods {
		data = append(data, newRentPeriod(c, period))
	}

	c.JSON(http.StatusCreated, GeneratePeriodsResponse{Data: data})
}
