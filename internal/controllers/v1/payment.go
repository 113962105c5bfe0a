package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/httputil"
	"github.com/rentledger/backend/internal/ledger"
	"github.com/rentledger/backend/internal/models"
	"github.com/rentledger/backend/internal/types"
	"golang.org/x/exp/slices"
)

// RegisterPaymentRoutes registers the routes for payments with
// the RouterGroup that is passed.
func RegisterPaymentRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPaymentList)
		r.GET("", GetPayments)
		r.POST("", CreatePayment)
	}

	// Payment with ID
	{
		r.OPTIONS("/:id", OptionsPaymentDetail)
		r.GET("/:id", GetPayment)
		r.POST("/:id/allocate", AllocatePayment)
		r.GET("/:id/allocations", GetPaymentAllocations)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payments
// @Success		204
// @Router			/v1/payments [options]
func OptionsPaymentList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/payments/{id} [options]
func OptionsPaymentDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Payment{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPost(c)
}

// @Summary		Create payment
// @Description	Creates a new payment. When no tenant ID is set, the payer reference is matched against the match rules to resolve the tenant.
// @Tags			Payments
// @Produce		json
// @Success		201		{object}	PaymentResponse
// @Failure		400		{object}	PaymentResponse
// @Failure		404		{object}	PaymentResponse
// @Failure		500		{object}	PaymentResponse
// @Param			payment	body		PaymentEditable	true	"Payment"
// @Router			/v1/payments [post]
func CreatePayment(c *gin.Context) {
	var editable PaymentEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	// Resolve the tenant from the payer reference when none is set
	if editable.TenantID == uuid.Nil {
		editable.TenantID, err = ledger.New(models.DB).ResolveTenant(editable.PayerReference)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), PaymentResponse{
				Error: &e,
			})
			return
		}

		if editable.TenantID == uuid.Nil {
			e := errTenantNotResolved.Error()
			c.JSON(http.StatusBadRequest, PaymentResponse{
				Error: &e,
			})
			return
		}
	}

	payment := editable.model()
	err = models.DB.Create(&payment).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	data := newPayment(c, payment)
	c.JSON(http.StatusCreated, PaymentResponse{Data: &data})
}

// @Summary		Get payments
// @Description	Returns a list of payments
// @Tags			Payments
// @Produce		json
// @Success		200	{object}	PaymentListResponse
// @Failure		400	{object}	PaymentListResponse
// @Failure		500	{object}	PaymentListResponse
// @Router			/v1/payments [get]
// @Param			tenant	query	string	false	"Filter by tenant ID"
// @Param			offset	query	uint	false	"The offset of the first payment returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of payments to return. Defaults to 50."
func GetPayments(c *gin.Context) {
	var filter PaymentQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PaymentListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("payments.date_paid DESC").
		Where(filter.model(), queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 payments and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var payments []models.Payment
	err := q.Find(&payments).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Payment, 0)
	for _, payment := range payments {
		data = append(data, newPayment(c, payment))
	}

	c.JSON(http.StatusOK, PaymentListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get payment
// @Description	Returns a specific payment
// @Tags			Payments
// @Produce		json
// @Success		200	{object}	PaymentResponse
// @Failure		400	{object}	PaymentResponse
// @Failure		404	{object}	PaymentResponse
// @Failure		500	{object}	PaymentResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/payments/{id} [get]
func GetPayment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	var payment models.Payment
	err = models.DB.First(&payment, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	data := newPayment(c, payment)
	c.JSON(http.StatusOK, PaymentResponse{Data: &data})
}

// @Summary		Allocate payment
// @Description	Distributes the payment across the tenant's outstanding rent periods, oldest first. Within a late period the late fee is settled before rent. Allocating the same payment again returns the recorded result without changing anything.
// @Tags			Payments
// @Accept			json
// @Produce		json
// @Success		201		{object}	AllocationResponse
// @Failure		400		{object}	AllocationResponse
// @Failure		404		{object}	AllocationResponse
// @Failure		409		{object}	AllocationResponse
// @Failure		500		{object}	AllocationResponse
// @Failure		503		{object}	AllocationResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			request	body		AllocateRequest	false	"Allocation request"
// @Router			/v1/payments/{id}/allocate [post]
func AllocatePayment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	var payment models.Payment
	err = models.DB.First(&payment, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	// The body is optional
	var request AllocateRequest
	err = httputil.BindData(c, &request)
	if err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	datePaid := request.DatePaid
	if datePaid.IsZero() {
		datePaid = payment.DatePaid
	}
	if datePaid.IsZero() {
		datePaid = types.Today()
	}

	result, err := ledger.New(models.DB).AllocatePayment(payment.TenantID, payment.ID, payment.Amount, datePaid)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	data := newAllocation(result)

	// A replayed allocation did not create anything
	code := http.StatusCreated
	if result.Replayed {
		code = http.StatusOK
	}

	c.JSON(code, AllocationResponse{Data: &data})
}

// @Summary		Get payment allocations
// @Description	Returns the allocation records of a payment, oldest period first
// @Tags			Payments
// @Produce		json
// @Success		200	{object}	PaymentAllocationListResponse
// @Failure		400	{object}	PaymentAllocationListResponse
// @Failure		404	{object}	PaymentAllocationListResponse
// @Failure		500	{object}	PaymentAllocationListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/payments/{id}/allocations [get]
func GetPaymentAllocations(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentAllocationListResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.First(&models.Payment{}, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentAllocationListResponse{
			Error: &e,
		})
		return
	}

	var allocations []models.PaymentAllocation
	err = models.DB.
		Joins("JOIN rent_periods ON rent_periods.id = payment_allocations.rent_period_id").
		Where("payment_allocations.payment_id = ?", uri.ID.UUID).
		Order("rent_periods.period_due_date ASC").
		Find(&allocations).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentAllocationListResponse{
			Error: &e,
		})
		return
	}

	data := make([]PaymentAllocation, 0)
	for _, allocation := range allocations {
		data = append(data, newPaymentAllocation(allocation))
	}

	c.JSON(http.StatusOK, PaymentAllocationListResponse{Data: data})
}
