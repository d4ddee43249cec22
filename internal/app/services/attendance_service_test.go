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

type attendanceMocks struct {
	events   *MockEventStore
	students *MockStudentStore
	slots    *MockSlotStore
	records  *MockRecordStore
}

func newAttendanceService() (AttendanceService, attendanceMocks) {
	m := attendanceMocks{
		events:   new(MockEventStore),
		students: new(MockStudentStore),
		slots:    new(MockSlotStore),
		records:  new(MockRecordStore),
	}
	return NewAttendanceService(m.events, m.students, m.slots, m.records), m
}

func slot(id int64, triggerTime string, t models.SlotType, fine float64) models.AttendanceSlot {
	return models.AttendanceSlot{ID: id, EventID: 7, TriggerTime: triggerTime, Type: t, FineAmount: fine}
}

func TestUpdateSlot_DuplicatePairConflicts(t *testing.T) {
	svc, m := newAttendanceService()
	ctx := context.Background()

	current := slot(3, "08:00:00", models.SlotTimeIn, 50)
	m.slots.On("GetByID", ctx, int64(3)).Return(&current, nil)
	m.slots.On("PairTaken", ctx, int64(7), "17:00:00", models.SlotTimeIn, int64(3)).Return(true, nil)

	newTime := "17:00:00"
	_, err := svc.UpdateSlot(ctx, 3, models.SlotChanges{TriggerTime: &newTime})

	assert.ErrorIs(t, err, apperrors.ErrDuplicateSlot)
	assert.Equal(t, 409, apperrors.StatusCode(err))
	m.slots.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateSlot_UnchangedPairSkipsUniquenessCheck(t *testing.T) {
	svc, m := newAttendanceService()
	ctx := context.Background()

	current := slot(3, "08:00:00", models.SlotTimeIn, 50)
	updated := slot(3, "08:00:00", models.SlotTimeIn, 75)
	fine := 75.0
	changes := models.SlotChanges{FineAmount: &fine}

	m.slots.On("GetByID", ctx, int64(3)).Return(&current, nil).Once()
	m.slots.On("Update", ctx, int64(3), changes).Return(nil)
	m.slots.On("GetByID", ctx, int64(3)).Return(&updated, nil).Once()

	got, err := svc.UpdateSlot(ctx, 3, changes)

	require.NoError(t, err)
	assert.Equal(t, 75.0, got.FineAmount)
	m.slots.AssertNotCalled(t, "PairTaken", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateSlot_NotFound(t *testing.T) {
	svc, m := newAttendanceService()
	ctx := context.Background()
	m.slots.On("GetByID", ctx, int64(9)).Return(nil, apperrors.ErrSlotNotFound)

	_, err := svc.UpdateSlot(ctx, 9, models.SlotChanges{})

	assert.Equal(t, 404, apperrors.StatusCode(err))
}

func TestDeleteSlot(t *testing.T) {
	t.Run("with records conflicts", func(t *testing.T) {
		svc, m := newAttendanceService()
		ctx := context.Background()
		m.slots.On("Exists", ctx, int64(3)).Return(true, nil)
		m.slots.On("HasRecords", ctx, int64(3)).Return(true, nil)

		err := svc.DeleteSlot(ctx, 3)

		assert.ErrorIs(t, err, apperrors.ErrSlotHasRecords)
		assert.Equal(t, 409, apperrors.StatusCode(err))
		m.slots.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("without records deletes", func(t *testing.T) {
		svc, m := newAttendanceService()
		ctx := context.Background()
		m.slots.On("Exists", ctx, int64(3)).Return(true, nil)
		m.slots.On("HasRecords", ctx, int64(3)).Return(false, nil)
		m.slots.On("Delete", ctx, int64(3)).Return(nil)

		require.NoError(t, svc.DeleteSlot(ctx, 3))
		m.slots.AssertExpectations(t)
	})

	t.Run("missing slot", func(t *testing.T) {
		svc, m := newAttendanceService()
		ctx := context.Background()
		m.slots.On("Exists", ctx, int64(3)).Return(false, nil)

		assert.ErrorIs(t, svc.DeleteSlot(ctx, 3), apperrors.ErrSlotNotFound)
	})
}

func TestCreateSlot(t *testing.T) {
	t.Run("unknown event", func(t *testing.T) {
		svc, m := newAttendanceService()
		ctx := context.Background()
		m.events.On("Exists", ctx, int64(7)).Return(false, nil)

		s := slot(0, "08:00:00", models.SlotTimeIn, 0)
		_, err := svc.CreateSlot(ctx, &s)

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})

	t.Run("duplicate pair", func(t *testing.T) {
		svc, m := newAttendanceService()
		ctx := context.Background()
		m.events.On("Exists", ctx, int64(7)).Return(true, nil)
		m.slots.On("PairTaken", ctx, int64(7), "08:00:00", models.SlotTimeIn, int64(0)).Return(true, nil)

		s := slot(0, "08:00:00", models.SlotTimeIn, 0)
		_, err := svc.CreateSlot(ctx, &s)

		assert.ErrorIs(t, err, apperrors.ErrDuplicateSlot)
	})

	t.Run("created", func(t *testing.T) {
		svc, m := newAttendanceService()
		ctx := context.Background()
		s := slot(0, "08:00:00", models.SlotTimeIn, 0)
		m.events.On("Exists", ctx, int64(7)).Return(true, nil)
		m.slots.On("PairTaken", ctx, int64(7), "08:00:00", models.SlotTimeIn, int64(0)).Return(false, nil)
		m.slots.On("Create", ctx, &s).Run(func(args mock.Arguments) {
			args.Get(1).(*models.AttendanceSlot).ID = 11
		}).Return(nil)

		got, err := svc.CreateSlot(ctx, &s)

		require.NoError(t, err)
		assert.EqualValues(t, 11, got.ID)
	})
}

func TestCreateRecord(t *testing.T) {
	rec := func() *models.AttendanceRecord {
		return &models.AttendanceRecord{AttendanceSlotID: 3, StudentID: 5}
	}

	t.Run("missing student is a bad request", func(t *testing.T) {
		svc, m := newAttendanceService()
		ctx := context.Background()
		m.students.On("Exists", ctx, int64(5)).Return(false, nil)

		_, err := svc.CreateRecord(ctx, rec())

		assert.Equal(t, 400, apperrors.StatusCode(err))
		assert.Equal(t, "Student not found", apperrors.Message(err))
	})

	t.Run("missing slot is a bad request", func(t *testing.T) {
		svc, m := newAttendanceService()
		ctx := context.Background()
		m.students.On("Exists", ctx, int64(5)).Return(true, nil)
		m.slots.On("Exists", ctx, int64(3)).Return(false, nil)

		_, err := svc.CreateRecord(ctx, rec())

		assert.Equal(t, 400, apperrors.StatusCode(err))
	})

	t.Run("duplicate conflicts", func(t *testing.T) {
		svc, m := newAttendanceService()
		ctx := context.Background()
		m.students.On("Exists", ctx, int64(5)).Return(true, nil)
		m.slots.On("Exists", ctx, int64(3)).Return(true, nil)
		m.records.On("Exists", ctx, int64(3), int64(5)).Return(true, nil)

		_, err := svc.CreateRecord(ctx, rec())

		assert.ErrorIs(t, err, apperrors.ErrDuplicateRecord)
	})
}

func TestListSlotRecords_Pagination(t *testing.T) {
	svc, m := newAttendanceService()
	ctx := context.Background()

	page := make([]models.AttendanceRecord, 10)
	m.slots.On("Exists", ctx, int64(3)).Return(true, nil)
	m.records.On("ListBySlot", ctx, int64(3), 2, 10).Return(page, int64(25), nil)

	records, pagination, err := svc.ListSlotRecords(ctx, 3, 2, 10)

	require.NoError(t, err)
	assert.Len(t, records, 10)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.True(t, pagination.HasNextPage)
	assert.True(t, pagination.HasPrevPage)
}
