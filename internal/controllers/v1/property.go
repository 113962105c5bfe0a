package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentledger/backend/internal/httputil"
	"github.com/rentledger/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterPropertyRoutes registers the routes for properties with
// the RouterGroup that is passed.
func RegisterPropertyRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPropertyList)
		r.GET("", GetProperties)
		r.POST("", CreateProperty)
	}

	// Property with ID
	{
		r.OPTIONS("/:id", OptionsPropertyDetail)
		r.GET("/:id", GetProperty)
		r.PATCH("/:id", UpdateProperty)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Properties
// @Success		204
// @Router			/v1/properties [options]
func OptionsPropertyList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Properties
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/properties/{id} [options]
func OptionsPropertyDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Property{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		Create property
// @Description	Creates a new property
// @Tags			Properties
// @Produce		json
// @Success		201			{object}	PropertyResponse
// @Failure		400			{object}	PropertyResponse
// @Failure		500			{object}	PropertyResponse
// @Param			property	body		PropertyEditable	true	"Property"
// @Router			/v1/properties [post]
func CreateProperty(c *gin.Context) {
	var editable PropertyEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyResponse{
			Error: &e,
		})
		return
	}

	property := editable.model()
	err = models.DB.Create(&property).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyResponse{
			Error: &e,
		})
		return
	}

	data := newProperty(c, property)
	c.JSON(http.StatusCreated, PropertyResponse{Data: &data})
}

// @Summary		Get properties
// @Description	Returns a list of properties
// @Tags			Properties
// @Produce		json
// @Success		200	{object}	PropertyListResponse
// @Failure		400	{object}	PropertyListResponse
// @Failure		500	{object}	PropertyListResponse
// @Router			/v1/properties [get]
// @Param			name	query	string	false	"Filter by name, fuzzy"
// @Param			offset	query	uint	false	"The offset of the first property returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of properties to return. Defaults to 50."
func GetProperties(c *gin.Context) {
	var filter PropertyQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PropertyListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("properties.name ASC")

	if filter.Name != "" {
		q = q.Where("properties.name LIKE ?", "%"+filter.Name+"%")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 properties and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var properties []models.Property
	err := q.Find(&properties).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Property, 0)
	for _, property := range properties {
		data = append(data, newProperty(c, property))
	}

	c.JSON(http.StatusOK, PropertyListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get property
// @Description	Returns a specific property
// @Tags			Properties
// @Produce		json
// @Success		200	{object}	PropertyResponse
// @Failure		400	{object}	PropertyResponse
// @Failure		404	{object}	PropertyResponse
// @Failure		500	{object}	PropertyResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/properties/{id} [get]
func GetProperty(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyResponse{
			Error: &e,
		})
		return
	}

	var property models.Property
	err = models.DB.First(&property, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyResponse{
			Error: &e,
		})
		return
	}

	data := newProperty(c, property)
	c.JSON(http.StatusOK, PropertyResponse{Data: &data})
}

// @Summary		Update property
// @Description	Updates an existing property. Only values to be updated need to be specified.
// @Tags			Properties
// @Accept			json
// @Produce		json
// @Success		200			{object}	PropertyResponse
// @Failure		400			{object}	PropertyResponse
// @Failure		404			{object}	PropertyResponse
// @Failure		500			{object}	PropertyResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			property	body		PropertyEditable	true	"Property"
// @Router			/v1/properties/{id} [patch]
func UpdateProperty(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyResponse{
			Error: &e,
		})
		return
	}

	var property models.Property
	err = models.DB.First(&property, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PropertyEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyResponse{
			Error: &e,
		})
		return
	}

	var update PropertyEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&property).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyResponse{
			Error: &e,
		})
		return
	}

	data := newProperty(c, property)
	c.JSON(http.StatusOK, PropertyResponse{Data: &data})
}
