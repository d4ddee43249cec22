package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/revams/api/internal/app/models"
	"github.com/revams/api/internal/pkg/apperrors"
)

func TestCreatePayable(t *testing.T) {
	eventID := int64(7)

	t.Run("missing student is a bad request", func(t *testing.T) {
		payables, students, events := new(MockPayableStore), new(MockStudentStore), new(MockEventStore)
		svc := NewPayableService(payables, students, events)
		ctx := context.Background()
		students.On("Exists", ctx, int64(5)).Return(false, nil)

		_, err := svc.CreatePayable(ctx, &models.Payable{StudentID: 5, Amount: 100})

		assert.Equal(t, 400, apperrors.StatusCode(err))
		assert.Equal(t, "Student not found", apperrors.Message(err))
		payables.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing event is a bad request", func(t *testing.T) {
		payables, students, events := new(MockPayableStore), new(MockStudentStore), new(MockEventStore)
		svc := NewPayableService(payables, students, events)
		ctx := context.Background()
		students.On("Exists", ctx, int64(5)).Return(true, nil)
		events.On("Exists", ctx, eventID).Return(false, nil)

		_, err := svc.CreatePayable(ctx, &models.Payable{StudentID: 5, EventID: &eventID, Amount: 100})

		assert.Equal(t, 400, apperrors.StatusCode(err))
		assert.Equal(t, "Event not found", apperrors.Message(err))
	})

	t.Run("created without event", func(t *testing.T) {
		payables, students, events := new(MockPayableStore), new(MockStudentStore), new(MockEventStore)
		svc := NewPayableService(payables, students, events)
		ctx := context.Background()
		p := &models.Payable{StudentID: 5, Amount: 100}
		students.On("Exists", ctx, int64(5)).Return(true, nil)
		payables.On("Create", ctx, p).Return(nil)

		got, err := svc.CreatePayable(ctx, p)

		require.NoError(t, err)
		assert.Same(t, p, got)
		events.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	})
}

func TestListStudentPayables_UnknownStudent(t *testing.T) {
	payables, students := new(MockPayableStore), new(MockStudentStore)
	svc := NewPayableService(payables, students, new(MockEventStore))
	ctx := context.Background()
	students.On("Exists", ctx, int64(5)).Return(false, nil)

	_, err := svc.ListStudentPayables(ctx, 5)

	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	payables.AssertNotCalled(t, "ListByStudent", mock.Anything, mock.Anything)
}

func TestAddReceipt_PassesStoreErrorsThrough(t *testing.T) {
	payables := new(MockPayableStore)
	svc := NewPayableService(payables, new(MockStudentStore), new(MockEventStore))
	ctx := context.Background()
	receipt := &models.Receipt{PayableID: 2, Amount: 500, ReceiptNumber: "OR-1"}
	payables.On("AddReceipt", ctx, receipt).Return(nil, apperrors.ErrReceiptExceedsBalance)

	_, err := svc.AddReceipt(ctx, receipt)

	assert.ErrorIs(t, err, apperrors.ErrReceiptExceedsBalance)
	assert.Equal(t, 400, apperrors.StatusCode(err))
}
