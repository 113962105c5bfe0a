package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentledger/backend/internal/httputil"
	"github.com/rentledger/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterTenantRoutes registers the routes for tenants with
// the RouterGroup that is passed.
func RegisterTenantRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTenantList)
		r.GET("", GetTenants)
		r.POST("", CreateTenant)
	}

	// Tenant with ID
	{
		r.OPTIONS("/:id", OptionsTenantDetail)
		r.GET("/:id", GetTenant)
		r.PATCH("/:id", UpdateTenant)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Tenants
// @Success		204
// @Router			/v1/tenants [options]
func OptionsTenantList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Tenants
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tenants/{id} [options]
func OptionsTenantDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Tenant{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		Create tenant
// @Description	Creates a new tenant
// @Tags			Tenants
// @Produce		json
// @Success		201		{object}	TenantResponse
// @Failure		400		{object}	TenantResponse
// @Failure		500		{object}	TenantResponse
// @Param			tenant	body		TenantEditable	true	"Tenant"
// @Router			/v1/tenants [post]
func CreateTenant(c *gin.Context) {
	var editable TenantEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &e,
		})
		return
	}

	tenant := editable.model()
	err = models.DB.Create(&tenant).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &e,
		})
		return
	}

	data := newTenant(c, tenant)
	c.JSON(http.StatusCreated, TenantResponse{Data: &data})
}

// @Summary		Get tenants
// @Description	Returns a list of tenants
// @Tags			Tenants
// @Produce		json
// @Success		200	{object}	TenantListResponse
// @Failure		400	{object}	TenantListResponse
// @Failure		500	{object}	TenantListResponse
// @Router			/v1/tenants [get]
// @Param			name	query	string	false	"Filter by name, fuzzy"
// @Param			offset	query	uint	false	"The offset of the first tenant returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of tenants to return. Defaults to 50."
func GetTenants(c *gin.Context) {
	var filter TenantQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TenantListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("tenants.name ASC")

	if filter.Name != "" {
		q = q.Where("tenants.name LIKE ?", "%"+filter.Name+"%")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 tenants and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var tenants []models.Tenant
	err := q.Find(&tenants).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TenantListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TenantListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Tenant, 0)
	for _, tenant := range tenants {
		data = append(data, newTenant(c, tenant))
	}

	c.JSON(http.StatusOK, TenantListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get tenant
// @Description	Returns a specific tenant
// @Tags			Tenants
// @Produce		json
// @Success		200	{object}	TenantResponse
// @Failure		400	{object}	TenantResponse
// @Failure		404	{object}	TenantResponse
// @Failure		500	{object}	TenantResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tenants/{id} [get]
func GetTenant(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &e,
		})
		return
	}

	var tenant models.Tenant
	err = models.DB.First(&tenant, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &e,
		})
		return
	}

	data := newTenant(c, tenant)
	c.JSON(http.StatusOK, TenantResponse{Data: &data})
}

// @Summary		Update tenant
// @Description	Updates an existing tenant. Only values to be updated need to be specified.
// @Tags			Tenants
// @Accept			json
// @Produce		json
// @Success		200		{object}	TenantResponse
// @Failure		400		{object}	TenantResponse
// @Failure		404		{object}	TenantResponse
// @Failure		500		{object}	TenantResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			tenant	body		TenantEditable	true	"Tenant"
// @Router			/v1/tenants/{id} [patch]
func UpdateTenant(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &e,
		})
		return
	}

	var tenant models.Tenant
	err = models.DB.First(&tenant, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TenantEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &e,
		})
		return
	}

	var update TenantEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&tenant).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &e,
		})
		return
	}

	data := newTenant(c, tenant)
	c.JSON(http.StatusOK, TenantResponse{Data: &data})
}
