package services

import (
	"context"

	"github.com/revams/api/internal/app/models"
	"github.com/revams/api/internal/app/models/dto"
	"github.com/revams/api/internal/app/repositories"
)

// The store interfaces below are the slices of the repositories each service
// needs. *repositories.XRepository satisfies them.

type StudentStore interface {
	List(ctx context.Context, filter repositories.StudentFilter) ([]models.Student, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Exists(ctx context.Context, id int64) (bool, error)
	StudentNumberTaken(ctx context.Context, number string, excludeID int64) (bool, error)
	Create(ctx context.Context, s *models.Student) error
	Update(ctx context.Context, id int64, changes models.StudentChanges) error
	HasReferences(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type EventStore interface {
	List(ctx context.Context, params dto.ListParams) ([]models.Event, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, e *models.Event) error
	Update(ctx context.Context, id int64, changes models.EventChanges) error
	HasSlots(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type SlotStore interface {
	ListByEvent(ctx context.Context, eventID int64) ([]models.AttendanceSlot, error)
	GetByID(ctx context.Context, id int64) (*models.AttendanceSlot, error)
	Exists(ctx context.Context, id int64) (bool, error)
	PairTaken(ctx context.Context, eventID int64, triggerTime string, slotType models.SlotType, excludeID int64) (bool, error)
	Create(ctx context.Context, slot *models.AttendanceSlot) error
	Update(ctx context.Context, id int64, changes models.SlotChanges) error
	HasRecords(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type RecordStore interface {
	Create(ctx context.Context, rec *models.AttendanceRecord) error
	GetByID(ctx context.Context, id int64) (*models.AttendanceRecord, error)
	Exists(ctx context.Context, slotID, studentID int64) (bool, error)
	ListBySlot(ctx context.Context, slotID int64, page, limit int) ([]models.AttendanceRecord, int64, error)
	AttendedSlotIDs(ctx context.Context, studentID, eventID int64) ([]int64, error)
	Delete(ctx context.Context, id int64) error
}

type PayableStore interface {
	ListByStudent(ctx context.Context, studentID int64) ([]models.Payable, error)
	GetByID(ctx context.Context, id int64) (*models.Payable, error)
	FineAssessed(ctx context.Context, studentID, eventID int64) (bool, error)
	Create(ctx context.Context, p *models.Payable) error
	AddReceipt(ctx context.Context, receipt *models.Receipt) (*models.Payable, error)
}

type ReferenceStore interface {
	ListDegrees(ctx context.Context) ([]models.Degree, error)
	ListPrograms(ctx context.Context) ([]models.Program, error)
	ListMajors(ctx context.Context, programID *int64) ([]models.Major, error)
	ListYearLevels(ctx context.Context) ([]models.YearLevel, error)
	ProgramExists(ctx context.Context, id int64) (bool, error)
	YearLevelExists(ctx context.Context, id int64) (bool, error)
	MajorBelongsTo(ctx context.Context, id, programID int64) (bool, error)
}

type OrganizationStore interface {
	List(ctx context.Context) ([]models.Organization, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type OrgChartStore interface {
	Get(ctx context.Context, organizationID int64) (*models.OrgChart, error)
	Update(ctx context.Context, organizationID int64, mutate repositories.ChartMutation) (*models.OrgChart, error)
}
