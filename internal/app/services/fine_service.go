package services

import (
	"context"
	"fmt"

	"github.com/revams/api/internal/app/models"
	"github.com/revams/api/internal/pkg/apperrors"
)

// FineService computes and assesses attendance fines
type FineService interface {
	Summary(ctx context.Context, studentID, eventID int64) (*models.FineSummary, error)
	Assess(ctx context.Context, studentID, eventID int64) (*models.Payable, error)
}

type fineServiceImpl struct {
	students StudentStore
	events   EventStore
	slots    SlotStore
	records  RecordStore
	payables PayableStore
}

// NewFineService creates a new FineService
func NewFineService(students StudentStore, events EventStore, slots SlotStore, records RecordStore, payables PayableStore) FineService {
	return &fineServiceImpl{
		students: students,
		events:   events,
		slots:    slots,
		records:  records,
		payables: payables,
	}
}

// ComputeFineSummary splits slots into attended and missed by slot id and sums
// the fines of the missed slots whose type carries one.
func ComputeFineSummary(studentID, eventID int64, slots []models.AttendanceSlot, attendedIDs []int64) *models.FineSummary {
	attended := make(map[int64]struct{}, len(attendedIDs))
	for _, id := range attendedIDs {
		attended[id] = struct{}{}
	}

	summary := &models.FineSummary{
		AttendedSlots: []models.AttendanceSlot{},
		EventID:       eventID,
		MissedSlots:   []models.AttendanceSlot{},
		StudentID:     studentID,
	}
	for _, slot := range slots {
		if _, ok := attended[slot.ID]; ok {
			summary.AttendedSlots = append(summary.AttendedSlots, slot)
			continue
		}
		summary.MissedSlots = append(summary.MissedSlots, slot)
		if slot.Type.CarriesFine() {
			summary.TotalAmount += slot.FineAmount
		}
	}
	summary.TotalAmount = models.RoundMoney(summary.TotalAmount)
	return summary
}

func (s *fineServiceImpl) summarize(ctx context.Context, studentID int64, event *models.Event) (*models.FineSummary, error) {
	slots, err := s.slots.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing event slots: %w", err)
	}
	attended, err := s.records.AttendedSlotIDs(ctx, studentID, event.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing attended slots: %w", err)
	}
	return ComputeFineSummary(studentID, event.ID, slots, attended), nil
}

func (s *fineServiceImpl) load(ctx context.Context, studentID, eventID int64) (*models.Event, error) {
	exists, err := s.students.Exists(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}
	return s.events.GetByID(ctx, eventID)
}

// Summary reports which of an event's slots a student attended and the fine
// owed for the rest.
func (s *fineServiceImpl) Summary(ctx context.Context, studentID, eventID int64) (*models.FineSummary, error) {
	event, err := s.load(ctx, studentID, eventID)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, studentID, event)
}

// Assess records the fine summary as a FINE payable. An event is assessed at
// most once per student.
func (s *fineServiceImpl) Assess(ctx context.Context, studentID, eventID int64) (*models.Payable, error) {
	event, err := s.load(ctx, studentID, eventID)
	if err != nil {
		return nil, err
	}

	assessed, err := s.payables.FineAssessed(ctx, studentID, eventID)
	if err != nil {
		return nil, fmt.Errorf("error checking assessed fine: %w", err)
	}
	if assessed {
		return nil, apperrors.ErrFineAlreadyAssessed
	}

	summary, err := s.summarize(ctx, studentID, event)
	if err != nil {
		return nil, err
	}
	if summary.TotalAmount <= 0 {
		return nil, apperrors.ErrNothingToAssess
	}

	payable := &models.Payable{
		Amount:      summary.TotalAmount,
		Description: "Attendance fine: " + event.Name,
		EventID:     &event.ID,
		Kind:        models.PayableFine,
		StudentID:   studentID,
	}
	if err := s.payables.Create(ctx, payable); err != nil {
		return nil, err
	}
	return payable, nil
}
