package requests

import (
	"github.com/revams/api/internal/app/models"
	"github.com/revams/api/internal/pkg/helpers"
)

// CreateSlotRequest backs POST /api/events/:id/attendance-slots.
type CreateSlotRequest struct {
	Base
	input struct {
		EventID     int64    `json:"-" uri:"id" validate:"required,min=1"`
		Type        string   `json:"type" validate:"required,oneof=TIME_IN TIME_OUT OPTIONAL"`
		TriggerTime string   `json:"trigger_time" validate:"required,timeofday"`
		FineAmount  *float64 `json:"fine_amount" validate:"omitempty,gte=0,lte=100000"`
	}
}

func (r *CreateSlotRequest) Rules() any { return &r.input }

func (r *CreateSlotRequest) EventID() int64 {
	r.mustBeValidated()
	return r.input.EventID
}

// FineAmount defaults to zero when omitted.
func (r *CreateSlotRequest) FineAmount() float64 {
	r.mustBeValidated()
	if r.input.FineAmount == nil {
		return 0
	}
	return models.RoundMoney(*r.input.FineAmount)
}

// Slot returns the new slot with its trigger time normalized to HH:MM:SS.
func (r *CreateSlotRequest) Slot() *models.AttendanceSlot {
	r.mustBeValidated()
	triggerTime, _ := helpers.NormalizeTimeOfDay(r.input.TriggerTime)
	return &models.AttendanceSlot{
		EventID:     r.input.EventID,
		FineAmount:  r.FineAmount(),
		TriggerTime: triggerTime,
		Type:        models.SlotType(r.input.Type),
	}
}

// UpdateSlotRequest backs PATCH /api/attendance-slots/:id.
type UpdateSlotRequest struct {
	Base
	input struct {
		ID          int64    `json:"-" uri:"id" validate:"required,min=1"`
		Type        *string  `json:"type" validate:"omitempty,oneof=TIME_IN TIME_OUT OPTIONAL"`
		TriggerTime *string  `json:"trigger_time" validate:"omitempty,timeofday"`
		FineAmount  *float64 `json:"fine_amount" validate:"omitempty,gte=0,lte=100000"`
	}
}

func (r *UpdateSlotRequest) Rules() any { return &r.input }

func (r *UpdateSlotRequest) ID() int64 {
	r.mustBeValidated()
	return r.input.ID
}

func (r *UpdateSlotRequest) Changes() models.SlotChanges {
	r.mustBeValidated()
	var changes models.SlotChanges
	if r.input.Type != nil {
		t := models.SlotType(*r.input.Type)
		changes.Type = &t
	}
	if r.input.TriggerTime != nil {
		tt, _ := helpers.NormalizeTimeOfDay(*r.input.TriggerTime)
		changes.TriggerTime = &tt
	}
	if r.input.FineAmount != nil {
		amount := models.RoundMoney(*r.input.FineAmount)
		changes.FineAmount = &amount
	}
	return changes
}

// SlotRecordsRequest backs GET /api/attendance-slots/:id/records.
type SlotRecordsRequest struct {
	QueryBase
	input struct {
		PageQuery
		SlotID int64 `uri:"id" validate:"required,min=1"`
	}
}

func (r *SlotRecordsRequest) Rules() any { return &r.input }

func (r *SlotRecordsRequest) SlotID() int64 {
	r.mustBeValidated()
	return r.input.SlotID
}

func (r *SlotRecordsRequest) Page() int {
	r.mustBeValidated()
	return r.input.Page
}

func (r *SlotRecordsRequest) Limit() int {
	r.mustBeValidated()
	return r.input.Limit
}

// CreateRecordRequest backs POST /api/attendance-records.
type CreateRecordRequest struct {
	Base
	input struct {
		StudentID        int64 `json:"student_id" validate:"required,min=1"`
		AttendanceSlotID int64 `json:"attendance_slot_id" validate:"required,min=1"`
	}
}

func (r *CreateRecordRequest) Rules() any { return &r.input }

func (r *CreateRecordRequest) Record() *models.AttendanceRecord {
	r.mustBeValidated()
	return &models.AttendanceRecord{
		AttendanceSlotID: r.input.AttendanceSlotID,
		StudentID:        r.input.StudentID,
	}
}
