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
	"github.com/shopspring/decimal"
)

// RegisterLateFeeRoutes registers the routes for late fee assessment with
// the RouterGroup that is passed.
func RegisterLateFeeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/assessment", OptionsLateFeeAssessment)
	r.POST("/assessment", AssessLateFees)
}

// AssessmentRequest is the body for a late-fee assessment. The date
// defaults to today.
type AssessmentRequest struct {
	AsOf types.Date `json:"asOf" example:"2024-02-10"` // Date the lateness is evaluated against. Defaults to today
}

// PeriodAssessment is the late-fee liability of one rent period.
type PeriodAssessment struct {
	PeriodID       uuid.UUID       `json:"periodId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`
	TenantID       uuid.UUID       `json:"tenantId" example:"d8d64076-f74a-4628-a9a7-40a4c4c424a5"`
	LeaseID        uuid.UUID       `json:"leaseId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`
	PeriodDueDate  types.Date      `json:"periodDueDate" example:"2024-01-01"`
	DaysLate       int             `json:"daysLate" example:"35"`
	FeeAmount      decimal.Decimal `json:"feeAmount" example:"45"`      // The full late fee for the period's cadence
	FeeOutstanding decimal.Decimal `json:"feeOutstanding" example:"45"` // The part of the fee not yet settled by payments
}

// Assessment is the late-fee liability across all outstanding periods.
type Assessment struct {
	AsOf           types.Date         `json:"asOf" example:"2024-02-10"`
	Periods        []PeriodAssessment `json:"periods"`
	FeeOutstanding decimal.Decimal    `json:"feeOutstanding" example:"90"` // Sum of the outstanding fees of all periods
}

type AssessmentResponse struct {
	Data  *Assessment `json:"data"`                                       // The assessment
	Error *string     `json:"error" example:"the database is unreachable"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			LateFees
// @Success		204
// @Router			/v1/late-fees/assessment [options]
func OptionsLateFeeAssessment(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Assess late fees
// @Description	Reports the late-fee liability of all outstanding rent periods as of a date. The assessment is read-only: fee fields on periods only advance when a payment is allocated.
// @Tags			LateFees
// @Accept			json
// @Produce		json
// @Success		200		{object}	AssessmentResponse
// @Failure		400		{object}	AssessmentResponse
// @Failure		500		{object}	AssessmentResponse
// @Failure		503		{object}	AssessmentResponse
// @Param			request	body		AssessmentRequest	false	"Assessment request"
// @Router			/v1/late-fees/assessment [post]
func AssessLateFees(c *gin.Context) {
	// The body is optional
	var request AssessmentRequest
	err := httputil.BindData(c, &request)
	if err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		e := err.Error()
		c.JSON(status(err), AssessmentResponse{
			Error: &e,
		})
		return
	}

	asOf := request.AsOf
	if asOf.IsZero() {
		asOf = types.Today()
	}

	assessment, err := ledger.New(models.DB).AssessLateFees(asOf)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AssessmentResponse{
			Error: &e,
		})
		return
	}

	periods := make([]PeriodAssessment, 0, len(assessment.Periods))
	for _, period := range assessment.Periods {
		periods = append(periods, PeriodAssessment{
			PeriodID:       period.PeriodID,
			TenantID:       period.TenantID,
			LeaseID:        period.LeaseID,
			PeriodDueDate:  period.PeriodDueDate,
			DaysLate:       period.DaysLate,
			FeeAmount:      period.FeeAmount,
			FeeOutstanding: period.FeeOutstanding,
		})
	}

	data := Assessment{
		AsOf:           assessment.AsOf,
		Periods:        periods,
		FeeOutstanding: assessment.FeeOutstanding,
	}

	c.JSON(http.StatusOK, AssessmentResponse{Data: &data})
}
