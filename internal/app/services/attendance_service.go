package services

import (
	"context"
	"fmt"

	"github.com/revams/api/internal/app/models"
	"github.com/revams/api/internal/app/models/dto"
	"github.com/revams/api/internal/pkg/apperrors"
	"github.com/revams/api/internal/pkg/helpers"
)

// AttendanceService defines the interface for attendance slot and record
// operations
type AttendanceService interface {
	ListSlots(ctx context.Context, eventID int64) ([]models.AttendanceSlot, error)
	GetSlot(ctx context.Context, id int64) (*models.AttendanceSlot, error)
	CreateSlot(ctx context.Context, slot *models.AttendanceSlot) (*models.AttendanceSlot, error)
	UpdateSlot(ctx context.Context, id int64, changes models.SlotChanges) (*models.AttendanceSlot, error)
	DeleteSlot(ctx context.Context, id int64) error
	ListSlotRecords(ctx context.Context, slotID int64, page, limit int) ([]models.AttendanceRecord, dto.Pagination, error)
	CreateRecord(ctx context.Context, record *models.AttendanceRecord) (*models.AttendanceRecord, error)
	GetRecord(ctx context.Context, id int64) (*models.AttendanceRecord, error)
	DeleteRecord(ctx context.Context, id int64) error
}

type attendanceServiceImpl struct {
	events   EventStore
	students StudentStore
	slots    SlotStore
	records  RecordStore
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(events EventStore, students StudentStore, slots SlotStore, records RecordStore) AttendanceService {
	return &attendanceServiceImpl{events: events, students: students, slots: slots, records: records}
}

func (s *attendanceServiceImpl) requireEvent(ctx context.Context, eventID int64) error {
	exists, err := s.events.Exists(ctx, eventID)
	if err != nil {
		return fmt.Errorf("error checking event: %w", err)
	}
	if !exists {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// ListSlots returns an event's slots ordered by trigger time
func (s *attendanceServiceImpl) ListSlots(ctx context.Context, eventID int64) ([]models.AttendanceSlot, error) {
	if err := s.requireEvent(ctx, eventID); err != nil {
		return nil, err
	}
	return s.slots.ListByEvent(ctx, eventID)
}

func (s *attendanceServiceImpl) GetSlot(ctx context.Context, id int64) (*models.AttendanceSlot, error) {
	return s.slots.GetByID(ctx, id)
}

// CreateSlot adds a slot to an event. An event holds at most one slot per
// (trigger time, type) pair.
func (s *attendanceServiceImpl) CreateSlot(ctx context.Context, slot *models.AttendanceSlot) (*models.AttendanceSlot, error) {
	if err := s.requireEvent(ctx, slot.EventID); err != nil {
		return nil, err
	}

	taken, err := s.slots.PairTaken(ctx, slot.EventID, slot.TriggerTime, slot.Type, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking slot uniqueness: %w", err)
	}
	if taken {
		return nil, apperrors.ErrDuplicateSlot
	}

	if err := s.slots.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

// UpdateSlot applies a partial update. When the trigger time or type changes
// the resulting pair must still be unique within the event.
func (s *attendanceServiceImpl) UpdateSlot(ctx context.Context, id int64, changes models.SlotChanges) (*models.AttendanceSlot, error) {
	current, err := s.slots.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	triggerTime, slotType := current.TriggerTime, current.Type
	if changes.TriggerTime != nil {
		triggerTime = *changes.TriggerTime
	}
	if changes.Type != nil {
		slotType = *changes.Type
	}

	if triggerTime != current.TriggerTime || slotType != current.Type {
		taken, err := s.slots.PairTaken(ctx, current.EventID, triggerTime, slotType, id)
		if err != nil {
			return nil, fmt.Errorf("error checking slot uniqueness: %w", err)
		}
		if taken {
			return nil, apperrors.ErrDuplicateSlot
		}
	}

	if err := s.slots.Update(ctx, id, changes); err != nil {
		return nil, err
	}
	return s.slots.GetByID(ctx, id)
}

// DeleteSlot deletes a slot nobody has attended yet
func (s *attendanceServiceImpl) DeleteSlot(ctx context.Context, id int64) error {
	exists, err := s.slots.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking slot: %w", err)
	}
	if !exists {
		return apperrors.ErrSlotNotFound
	}

	hasRecords, err := s.slots.HasRecords(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking slot records: %w", err)
	}
	if hasRecords {
		return apperrors.ErrSlotHasRecords
	}

	return s.slots.Delete(ctx, id)
}

func (s *attendanceServiceImpl) ListSlotRecords(ctx context.Context, slotID int64, page, limit int) ([]models.AttendanceRecord, dto.Pagination, error) {
	exists, err := s.slots.Exists(ctx, slotID)
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("error checking slot: %w", err)
	}
	if !exists {
		return nil, dto.Pagination{}, apperrors.ErrSlotNotFound
	}

	records, total, err := s.records.ListBySlot(ctx, slotID, page, limit)
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("error listing slot records: %w", err)
	}
	return records, helpers.NewPagination(total, page, limit), nil
}

// CreateRecord marks a student as present at a slot. Both must exist and the
// student may be recorded only once per slot.
func (s *attendanceServiceImpl) CreateRecord(ctx context.Context, record *models.AttendanceRecord) (*models.AttendanceRecord, error) {
	ok, err := s.students.Exists(ctx, record.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student: %w", err)
	}
	if !ok {
		return nil, apperrors.NewBadRequestError("Student not found")
	}

	ok, err = s.slots.Exists(ctx, record.AttendanceSlotID)
	if err != nil {
		return nil, fmt.Errorf("error checking slot: %w", err)
	}
	if !ok {
		return nil, apperrors.NewBadRequestError("Attendance slot not found")
	}

	dup, err := s.records.Exists(ctx, record.AttendanceSlotID, record.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error checking attendance record: %w", err)
	}
	if dup {
		return nil, apperrors.ErrDuplicateRecord
	}

	if err := s.records.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *attendanceServiceImpl) GetRecord(ctx context.Context, id int64) (*models.AttendanceRecord, error) {
	return s.records.GetByID(ctx, id)
}

func (s *attendanceServiceImpl) DeleteRecord(ctx context.Context, id int64) error {
	return s.records.Delete(ctx, id)
}
