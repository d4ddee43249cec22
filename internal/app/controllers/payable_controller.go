package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revams/api/internal/app/requests"
	"github.com/revams/api/internal/app/services"
	"github.com/revams/api/internal/middleware"
)

// PayableController handles fees, fines and receipts
type PayableController struct {
	payableService services.PayableService
	fineService    services.FineService
	publicURL      string
}

// NewPayableController creates a new PayableController
func NewPayableController(payableService services.PayableService, fineService services.FineService, publicURL string) *PayableController {
	return &PayableController{payableService: payableService, fineService: fineService, publicURL: publicURL}
}

// GetFineSummary reports a student's attendance fine for an event
// @Summary Get a student's fine summary for an event
// @Description Missed slots are the event's slots without a matching record; only TIME_IN and TIME_OUT slots carry fines
// @Tags fines
// @Produce json
// @Param id path int true "Student ID"
// @Param eventId path int true "Event ID"
// @Success 200 {object} map[string]interface{} "fines"
// @Failure 404 {object} dto.ErrorResponse "Student or event not found"
// @Router /students/{id}/events/{eventId}/fines [get]
func (c *PayableController) GetFineSummary(ctx *gin.Context) {
	var req requests.FineRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	summary, err := c.fineService.Summary(ctx, req.StudentID(), req.EventID())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"fines": summary})
}

// AssessFine turns the fine summary into a FINE payable
// @Summary Assess a student's fine for an event
// @Tags fines
// @Produce json
// @Param id path int true "Student ID"
// @Param eventId path int true "Event ID"
// @Success 201 {object} map[string]interface{} "payable and message"
// @Failure 400 {object} dto.ErrorResponse "Nothing to assess"
// @Failure 404 {object} dto.ErrorResponse "Student or event not found"
// @Failure 409 {object} dto.ErrorResponse "Fine already assessed"
// @Router /students/{id}/events/{eventId}/fines [post]
func (c *PayableController) AssessFine(ctx *gin.Context) {
	var req requests.FineRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	payable, err := c.fineService.Assess(ctx, req.StudentID(), req.EventID())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	setLocation(ctx, c.publicURL, "payables", payable.ID)
	ctx.JSON(http.StatusCreated, gin.H{"payable": payable, "message": "Fine assessed successfully"})
}

// ListStudentPayables lists what a student owes
// @Summary List a student's payables
// @Tags payables
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} map[string]interface{} "payables"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/payables [get]
func (c *PayableController) ListStudentPayables(ctx *gin.Context) {
	var req requests.ResourceRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	payables, err := c.payableService.ListStudentPayables(ctx, req.ID())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"payables": payables})
}

// GetPayable retrieves a payable with its settlement
// @Summary Get a payable
// @Tags payables
// @Produce json
// @Param id path int true "Payable ID"
// @Success 200 {object} map[string]interface{} "payable"
// @Failure 404 {object} dto.ErrorResponse "Payable not found"
// @Router /payables/{id} [get]
func (c *PayableController) GetPayable(ctx *gin.Context) {
	var req requests.ResourceRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	payable, err := c.payableService.GetPayable(ctx, req.ID())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"payable": payable})
}

// CreatePayable charges a fee or fine to a student
// @Summary Create a payable
// @Tags payables
// @Accept json
// @Produce json
// @Param request body object true "student_id, kind, description, amount and optional event_id"
// @Success 201 {object} map[string]interface{} "payable and message"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown student or event"
// @Failure 409 {object} dto.ErrorResponse "Fine already assessed"
// @Router /payables [post]
func (c *PayableController) CreatePayable(ctx *gin.Context) {
	var req requests.CreatePayableRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	payable, err := c.payableService.CreatePayable(ctx, req.Payable())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	setLocation(ctx, c.publicURL, "payables", payable.ID)
	ctx.JSON(http.StatusCreated, gin.H{"payable": payable, "message": "Payable created successfully"})
}

// AddReceipt records a payment against a payable
// @Summary Record a receipt
// @Tags payables
// @Accept json
// @Produce json
// @Param id path int true "Payable ID"
// @Param request body object true "receipt_number and amount"
// @Success 201 {object} map[string]interface{} "receipt, payable and message"
// @Failure 400 {object} dto.ErrorResponse "Amount exceeds the remaining balance"
// @Failure 404 {object} dto.ErrorResponse "Payable not found"
// @Failure 409 {object} dto.ErrorResponse "Receipt number already exists"
// @Router /payables/{id}/receipts [post]
func (c *PayableController) AddReceipt(ctx *gin.Context) {
	var req requests.CreateReceiptRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	receipt := req.Receipt()
	payable, err := c.payableService.AddReceipt(ctx, receipt)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	setLocation(ctx, c.publicURL, "payables", payable.ID)
	ctx.JSON(http.StatusCreated, gin.H{"receipt": receipt, "payable": payable, "message": "Receipt recorded successfully"})
}
