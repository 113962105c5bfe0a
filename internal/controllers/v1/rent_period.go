package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rentledger/backend/internal/httputil"
	"github.com/rentledger/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterRentPeriodRoutes registers the routes for rent periods with
// the RouterGroup that is passed.
func RegisterRentPeriodRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRentPeriodList)
		r.GET("", GetRentPeriods)
	}

	// Rent period with ID
	{
		r.OPTIONS("/:id", OptionsRentPeriodDetail)
		r.GET("/:id", GetRentPeriod)
		r.PATCH("/:id", UpdateRentPeriod)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RentPeriods
// @Success		204
// @Router			/v1/periods [options]
func OptionsRentPeriodList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RentPeriods
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/periods/{id} [options]
func OptionsRentPeriodDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.RentPeriod{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		Get rent periods
// @Description	Returns a list of rent periods, ordered by due date
// @Tags			RentPeriods
// @Produce		json
// @Success		200	{object}	RentPeriodListResponse
// @Failure		400	{object}	RentPeriodListResponse
// @Failure		500	{object}	RentPeriodListResponse
// @Router			/v1/periods [get]
// @Param			tenant		query	string	false	"Filter by tenant ID"
// @Param			lease		query	string	false	"Filter by lease ID"
// @Param			status		query	string	false	"Filter by settlement status"
// @Param			fromDate	query	string	false	"Periods due at and after this date"
// @Param			untilDate	query	string	false	"Periods due before and at this date"
// @Param			offset		query	uint	false	"The offset of the first period returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of periods to return. Defaults to 50."
func GetRentPeriods(c *gin.Context) {
	var filter RentPeriodQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, RentPeriodListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("rent_periods.period_due_date ASC").
		Where(filter.model(), queryFields...)

	if filter.Status != "" {
		if !slices.Contains([]models.PeriodStatus{models.PeriodStatusUnpaid, models.PeriodStatusPartial, models.PeriodStatusPaid}, models.PeriodStatus(filter.Status)) {
			s := errPeriodStatusInvalid.Error()
			c.JSON(http.StatusBadRequest, RentPeriodListResponse{
				Error: &s,
			})
			return
		}

		q = q.Where("rent_periods.status = ?", filter.Status)
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("rent_periods.period_due_date >= date(?)", time.Time(filter.FromDate))
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("rent_periods.period_due_date <= date(?)", time.Time(filter.UntilDate))
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 periods and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var periods []models.RentPeriod
	err := q.Find(&periods).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RentPeriodListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RentPeriodListResponse{
			Error: &e,
		})
		return
	}

	data := make([]RentPeriod, 0)
	for _, period := range periods {
		data = append(data, newRentPeriod(c, period))
	}

	c.JSON(http.StatusOK, RentPeriodListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get rent period
// @Description	Returns a specific rent period
// @Tags			RentPeriods
// @Produce		json
// @Success		200	{object}	RentPeriodResponse
// @Failure		400	{object}	RentPeriodResponse
// @Failure		404	{object}	RentPeriodResponse
// @Failure		500	{object}	RentPeriodResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/periods/{id} [get]
func GetRentPeriod(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RentPeriodResponse{
			Error: &e,
		})
		return
	}

	var period models.RentPeriod
	err = models.DB.First(&period, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RentPeriodResponse{
			Error: &e,
		})
		return
	}

	data := newRentPeriod(c, period)
	c.JSON(http.StatusOK, RentPeriodResponse{Data: &data})
}

// @Summary		Update rent period
// @Description	Updates the policy fields of a rent period: fee waiver, due date override and note. Settlement fields only advance through payment allocation.
// @Tags			RentPeriods
// @Accept			json
// @Produce		json
// @Success		200		{object}	RentPeriodResponse
// @Failure		400		{object}	RentPeriodResponse
// @Failure		404		{object}	RentPeriodResponse
// @Failure		500		{object}	RentPeriodResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			period	body		RentPeriodEditable	true	"Rent period"
// @Router			/v1/periods/{id} [patch]
func UpdateRentPeriod(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RentPeriodResponse{
			Error: &e,
		})
		return
	}

	var period models.RentPeriod
	err = models.DB.First(&period, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RentPeriodResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, RentPeriodEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RentPeriodResponse{
			Error: &e,
		})
		return
	}

	var update RentPeriodEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RentPeriodResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&period).Select("", updateFields...).Updates(models.RentPeriod{
		LateFeeWaived:   update.LateFeeWaived,
		DueDateOverride: update.DueDateOverride,
		Note:            update.Note,
	}).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RentPeriodResponse{
			Error: &e,
		})
		return
	}

	data := newRentPeriod(c, period)
	c.JSON(http.StatusOK, RentPeriodResponse{Data: &data})
}
