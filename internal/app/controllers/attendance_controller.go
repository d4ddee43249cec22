package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revams/api/internal/app/requests"
	"github.com/revams/api/internal/app/services"
	"github.com/revams/api/internal/middleware"
)

// AttendanceController handles attendance slots and records
type AttendanceController struct {
	attendanceService services.AttendanceService
	publicURL         string
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService, publicURL string) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService, publicURL: publicURL}
}

// ListEventSlots lists the slots of an event
// @Summary List an event's attendance slots
// @Description Slots are ordered by trigger time
// @Tags attendance
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]interface{} "attendance_slots"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id}/attendance-slots [get]
func (c *AttendanceController) ListEventSlots(ctx *gin.Context) {
	var req requests.ResourceRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	slots, err := c.attendanceService.ListSlots(ctx, req.ID())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"attendance_slots": slots})
}

// CreateSlot adds a slot to an event
// @Summary Create an attendance slot
// @Tags attendance
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body object true "type, trigger_time and optional fine_amount"
// @Success 201 {object} map[string]interface{} "attendance_slot and message"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 409 {object} dto.ErrorResponse "Slot with the same trigger time and type exists"
// @Router /events/{id}/attendance-slots [post]
func (c *AttendanceController) CreateSlot(ctx *gin.Context) {
	var req requests.CreateSlotRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	slot, err := c.attendanceService.CreateSlot(ctx, req.Slot())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	setLocation(ctx, c.publicURL, "attendance-slots", slot.ID)
	ctx.JSON(http.StatusCreated, gin.H{"attendance_slot": slot, "message": "Attendance slot created successfully"})
}

// GetSlot retrieves a slot by ID
// @Summary Get an attendance slot
// @Tags attendance
// @Produce json
// @Param id path int true "Slot ID"
// @Success 200 {object} map[string]interface{} "attendance_slot"
// @Failure 404 {object} dto.ErrorResponse "Attendance slot not found"
// @Router /attendance-slots/{id} [get]
func (c *AttendanceController) GetSlot(ctx *gin.Context) {
	var req requests.ResourceRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	slot, err := c.attendanceService.GetSlot(ctx, req.ID())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"attendance_slot": slot})
}

// UpdateSlot partially updates a slot
// @Summary Update an attendance slot
// @Tags attendance
// @Accept json
// @Produce json
// @Param id path int true "Slot ID"
// @Param request body object true "Fields to change"
// @Success 200 {object} map[string]interface{} "attendance_slot and message"
// @Failure 404 {object} dto.ErrorResponse "Attendance slot not found"
// @Failure 409 {object} dto.ErrorResponse "Slot with the same trigger time and type exists"
// @Router /attendance-slots/{id} [patch]
func (c *AttendanceController) UpdateSlot(ctx *gin.Context) {
	var req requests.UpdateSlotRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	slot, err := c.attendanceService.UpdateSlot(ctx, req.ID(), req.Changes())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"attendance_slot": slot, "message": "Attendance slot updated successfully"})
}

// DeleteSlot deletes a slot without records
// @Summary Delete an attendance slot
// @Tags attendance
// @Produce json
// @Param id path int true "Slot ID"
// @Success 200 {object} map[string]interface{} "message"
// @Failure 404 {object} dto.ErrorResponse "Attendance slot not found"
// @Failure 409 {object} dto.ErrorResponse "Attendance slot has records"
// @Router /attendance-slots/{id} [delete]
func (c *AttendanceController) DeleteSlot(ctx *gin.Context) {
	var req requests.ResourceRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.attendanceService.DeleteSlot(ctx, req.ID()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Attendance slot deleted successfully"})
}

// ListSlotRecords pages through the records of a slot
// @Summary List a slot's attendance records
// @Tags attendance
// @Produce json
// @Param id path int true "Slot ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} map[string]interface{} "attendance_records and pagination"
// @Failure 404 {object} dto.ErrorResponse "Attendance slot not found"
// @Router /attendance-slots/{id}/records [get]
func (c *AttendanceController) ListSlotRecords(ctx *gin.Context) {
	var req requests.SlotRecordsRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	records, pagination, err := c.attendanceService.ListSlotRecords(ctx, req.SlotID(), req.Page(), req.Limit())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"attendance_records": records, "pagination": pagination})
}

// CreateRecord records a student's attendance at a slot
// @Summary Create an attendance record
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body object true "student_id and attendance_slot_id"
// @Success 201 {object} map[string]interface{} "attendance_record and message"
// @Failure 400 {object} dto.ErrorResponse "Unknown student or slot"
// @Failure 409 {object} dto.ErrorResponse "Already recorded"
// @Router /attendance-records [post]
func (c *AttendanceController) CreateRecord(ctx *gin.Context) {
	var req requests.CreateRecordRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	record, err := c.attendanceService.CreateRecord(ctx, req.Record())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	setLocation(ctx, c.publicURL, "attendance-records", record.ID)
	ctx.JSON(http.StatusCreated, gin.H{"attendance_record": record, "message": "Attendance recorded successfully"})
}

// GetRecord retrieves an attendance record
// @Summary Get an attendance record
// @Tags attendance
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} map[string]interface{} "attendance_record"
// @Failure 404 {object} dto.ErrorResponse "Attendance record not found"
// @Router /attendance-records/{id} [get]
func (c *AttendanceController) GetRecord(ctx *gin.Context) {
	var req requests.ResourceRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	record, err := c.attendanceService.GetRecord(ctx, req.ID())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"attendance_record": record})
}

// DeleteRecord deletes an attendance record
// @Summary Delete an attendance record
// @Tags attendance
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} map[string]interface{} "message"
// @Failure 404 {object} dto.ErrorResponse "Attendance record not found"
// @Router /attendance-records/{id} [delete]
func (c *AttendanceController) DeleteRecord(ctx *gin.Context) {
	var req requests.ResourceRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.attendanceService.DeleteRecord(ctx, req.ID()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Attendance record deleted successfully"})
}
