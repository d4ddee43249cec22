package services

import (
	"context"
	"fmt"

	"github.com/revams/api/internal/app/models"
	"github.com/revams/api/internal/pkg/apperrors"
)

// PayableService defines the interface for fee, fine and receipt operations
type PayableService interface {
	ListStudentPayables(ctx context.Context, studentID int64) ([]models.Payable, error)
	GetPayable(ctx context.Context, id int64) (*models.Payable, error)
	CreatePayable(ctx context.Context, payable *models.Payable) (*models.Payable, error)
	AddReceipt(ctx context.Context, receipt *models.Receipt) (*models.Payable, error)
}

type payableServiceImpl struct {
	payables PayableStore
	students StudentStore
	events   EventStore
}

// NewPayableService creates a new PayableService
func NewPayableService(payables PayableStore, students StudentStore, events EventStore) PayableService {
	return &payableServiceImpl{payables: payables, students: students, events: events}
}

func (s *payableServiceImpl) ListStudentPayables(ctx context.Context, studentID int64) ([]models.Payable, error) {
	exists, err := s.students.Exists(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	payables, err := s.payables.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing payables: %w", err)
	}
	return payables, nil
}

func (s *payableServiceImpl) GetPayable(ctx context.Context, id int64) (*models.Payable, error) {
	return s.payables.GetByID(ctx, id)
}

// CreatePayable charges a fee or fine to a student
func (s *payableServiceImpl) CreatePayable(ctx context.Context, payable *models.Payable) (*models.Payable, error) {
	ok, err := s.students.Exists(ctx, payable.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student: %w", err)
	}
	if !ok {
		return nil, apperrors.NewBadRequestError("Student not found")
	}

	if payable.EventID != nil {
		ok, err = s.events.Exists(ctx, *payable.EventID)
		if err != nil {
			return nil, fmt.Errorf("error checking event: %w", err)
		}
		if !ok {
			return nil, apperrors.NewBadRequestError("Event not found")
		}
	}

	if err := s.payables.Create(ctx, payable); err != nil {
		return nil, err
	}
	return payable, nil
}

// AddReceipt records a payment and returns the payable as settled after it
func (s *payableServiceImpl) AddReceipt(ctx context.Context, receipt *models.Receipt) (*models.Payable, error) {
	return s.payables.AddReceipt(ctx, receipt)
}
