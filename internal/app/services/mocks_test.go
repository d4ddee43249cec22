package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/revams/api/internal/app/models"
	"github.com/revams/api/internal/app/models/dto"
	"github.com/revams/api/internal/app/repositories"
)

type MockStudentStore struct {
	mock.Mock
}

func (m *MockStudentStore) List(ctx context.Context, filter repositories.StudentFilter) ([]models.Student, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Student), args.Get(1).(int64), args.Error(2)
}

func (m *MockStudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentStore) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStudentStore) StudentNumberTaken(ctx context.Context, number string, excludeID int64) (bool, error) {
	args := m.Called(ctx, number, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStudentStore) Create(ctx context.Context, s *models.Student) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockStudentStore) Update(ctx context.Context, id int64, changes models.StudentChanges) error {
	return m.Called(ctx, id, changes).Error(0)
}

func (m *MockStudentStore) HasReferences(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStudentStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) List(ctx context.Context, params dto.ListParams) ([]models.Event, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Event), args.Get(1).(int64), args.Error(2)
}

func (m *MockEventStore) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventStore) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockEventStore) Create(ctx context.Context, e *models.Event) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEventStore) Update(ctx context.Context, id int64, changes models.EventChanges) error {
	return m.Called(ctx, id, changes).Error(0)
}

func (m *MockEventStore) HasSlots(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockEventStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockSlotStore struct {
	mock.Mock
}

func (m *MockSlotStore) ListByEvent(ctx context.Context, eventID int64) ([]models.AttendanceSlot, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AttendanceSlot), args.Error(1)
}

func (m *MockSlotStore) GetByID(ctx context.Context, id int64) (*models.AttendanceSlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AttendanceSlot), args.Error(1)
}

func (m *MockSlotStore) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSlotStore) PairTaken(ctx context.Context, eventID int64, triggerTime string, slotType models.SlotType, excludeID int64) (bool, error) {
	args := m.Called(ctx, eventID, triggerTime, slotType, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSlotStore) Create(ctx context.Context, slot *models.AttendanceSlot) error {
	return m.Called(ctx, slot).Error(0)
}

func (m *MockSlotStore) Update(ctx context.Context, id int64, changes models.SlotChanges) error {
	return m.Called(ctx, id, changes).Error(0)
}

func (m *MockSlotStore) HasRecords(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSlotStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockRecordStore struct {
	mock.Mock
}

func (m *MockRecordStore) Create(ctx context.Context, rec *models.AttendanceRecord) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *MockRecordStore) GetByID(ctx context.Context, id int64) (*models.AttendanceRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AttendanceRecord), args.Error(1)
}

func (m *MockRecordStore) Exists(ctx context.Context, slotID, studentID int64) (bool, error) {
	args := m.Called(ctx, slotID, studentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecordStore) ListBySlot(ctx context.Context, slotID int64, page, limit int) ([]models.AttendanceRecord, int64, error) {
	args := m.Called(ctx, slotID, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.AttendanceRecord), args.Get(1).(int64), args.Error(2)
}

func (m *MockRecordStore) AttendedSlotIDs(ctx context.Context, studentID, eventID int64) ([]int64, error) {
	args := m.Called(ctx, studentID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockRecordStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockPayableStore struct {
	mock.Mock
}

func (m *MockPayableStore) ListByStudent(ctx context.Context, studentID int64) ([]models.Payable, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payable), args.Error(1)
}

func (m *MockPayableStore) GetByID(ctx context.Context, id int64) (*models.Payable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payable), args.Error(1)
}

func (m *MockPayableStore) FineAssessed(ctx context.Context, studentID, eventID int64) (bool, error) {
	args := m.Called(ctx, studentID, eventID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPayableStore) Create(ctx context.Context, p *models.Payable) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPayableStore) AddReceipt(ctx context.Context, receipt *models.Receipt) (*models.Payable, error) {
	args := m.Called(ctx, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payable), args.Error(1)
}

type MockReferenceStore struct {
	mock.Mock
}

func (m *MockReferenceStore) ListDegrees(ctx context.Context) ([]models.Degree, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Degree), args.Error(1)
}

func (m *MockReferenceStore) ListPrograms(ctx context.Context) ([]models.Program, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Program), args.Error(1)
}

func (m *MockReferenceStore) ListMajors(ctx context.Context, programID *int64) ([]models.Major, error) {
	args := m.Called(ctx, programID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Major), args.Error(1)
}

func (m *MockReferenceStore) ListYearLevels(ctx context.Context) ([]models.YearLevel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.YearLevel), args.Error(1)
}

func (m *MockReferenceStore) ProgramExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockReferenceStore) YearLevelExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockReferenceStore) MajorBelongsTo(ctx context.Context, id, programID int64) (bool, error) {
	args := m.Called(ctx, id, programID)
	return args.Bool(0), args.Error(1)
}

type MockOrganizationStore struct {
	mock.Mock
}

func (m *MockOrganizationStore) List(ctx context.Context) ([]models.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Organization), args.Error(1)
}

func (m *MockOrganizationStore) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
