package models

import "time"

// SlotType is the kind of checkpoint an attendance slot represents.
type SlotType string

const (
	SlotTimeIn   SlotType = "TIME_IN"
	SlotTimeOut  SlotType = "TIME_OUT"
	SlotOptional SlotType = "OPTIONAL"
)

// CarriesFine reports whether missing a slot of this type is fined.
func (t SlotType) CarriesFine() bool {
	return t == SlotTimeIn || t == SlotTimeOut
}

// AttendanceSlot is a scheduled time-in/time-out checkpoint of an event.
type AttendanceSlot struct {
	CreatedAt   time.Time `json:"created_at"`
	EventID     int64     `json:"event_id"`
	FineAmount  float64   `json:"fine_amount"`
	ID          int64     `json:"id"`
	TriggerTime string    `json:"trigger_time"` // HH:MM:SS
	Type        SlotType  `json:"type"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SlotChanges holds the columns a partial slot update touches.
type SlotChanges struct {
	Type        *SlotType
	TriggerTime *string
	FineAmount  *float64
}

// AttendanceRecord proves a student satisfied a slot.
type AttendanceRecord struct {
	AttendanceSlotID int64     `json:"attendance_slot_id"`
	ID               int64     `json:"id"`
	RecordedAt       time.Time `json:"recorded_at"`
	StudentID        int64     `json:"student_id"`
}

// FineSummary partitions an event's slots by whether a student attended them.
type FineSummary struct {
	AttendedSlots []AttendanceSlot `json:"attended_slots"`
	EventID       int64            `json:"event_id"`
	MissedSlots   []AttendanceSlot `json:"missed_slots"`
	StudentID     int64            `json:"student_id"`
	TotalAmount   float64          `json:"total_amount"`
}
