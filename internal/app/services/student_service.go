package services

import (
	"context"
	"fmt"

	"github.com/revams/api/internal/app/models"
	"github.com/revams/api/internal/app/models/dto"
	"github.com/revams/api/internal/app/repositories"
	"github.com/revams/api/internal/pkg/apperrors"
	"github.com/revams/api/internal/pkg/helpers"
)

// StudentService defines the interface for student operations
type StudentService interface {
	ListStudents(ctx context.Context, filter repositories.StudentFilter) ([]models.Student, dto.Pagination, error)
	GetStudent(ctx context.Context, id int64) (*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, changes models.StudentChanges) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	students   StudentStore
	references ReferenceStore
}

// NewStudentService creates a new StudentService
func NewStudentService(students StudentStore, references ReferenceStore) StudentService {
	return &studentServiceImpl{students: students, references: references}
}

// ListStudents returns one page of students with its pagination envelope
func (s *studentServiceImpl) ListStudents(ctx context.Context, filter repositories.StudentFilter) ([]models.Student, dto.Pagination, error) {
	students, total, err := s.students.List(ctx, filter)
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("error listing students: %w", err)
	}
	return students, helpers.NewPagination(total, filter.Page, filter.Limit), nil
}

// GetStudent retrieves a student by ID
func (s *studentServiceImpl) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// checkClassification verifies that the program, year level and major a
// student points at exist and fit together.
func (s *studentServiceImpl) checkClassification(ctx context.Context, programID, yearLevelID int64, majorID *int64) error {
	ok, err := s.references.ProgramExists(ctx, programID)
	if err != nil {
		return fmt.Errorf("error checking program: %w", err)
	}
	if !ok {
		return apperrors.NewBadRequestError("Program not found")
	}

	ok, err = s.references.YearLevelExists(ctx, yearLevelID)
	if err != nil {
		return fmt.Errorf("error checking year level: %w", err)
	}
	if !ok {
		return apperrors.NewBadRequestError("Year level not found")
	}

	if majorID != nil {
		ok, err = s.references.MajorBelongsTo(ctx, *majorID, programID)
		if err != nil {
			return fmt.Errorf("error checking major: %w", err)
		}
		if !ok {
			return apperrors.NewBadRequestError("Major not found for the selected program")
		}
	}
	return nil
}

// CreateStudent creates a new student
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	if err := s.checkClassification(ctx, student.ProgramID, student.YearLevelID, student.MajorID); err != nil {
		return nil, err
	}

	taken, err := s.students.StudentNumberTaken(ctx, student.StudentNumber, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking student number: %w", err)
	}
	if taken {
		return nil, apperrors.ErrStudentNumberExists
	}

	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}
	return s.students.GetByID(ctx, student.ID)
}

// UpdateStudent applies a partial update
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, changes models.StudentChanges) (*models.Student, error) {
	current, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if changes.ProgramID != nil || changes.YearLevelID != nil || changes.MajorID != nil {
		programID, yearLevelID, majorID := current.ProgramID, current.YearLevelID, current.MajorID
		if changes.ProgramID != nil {
			programID = *changes.ProgramID
		}
		if changes.YearLevelID != nil {
			yearLevelID = *changes.YearLevelID
		}
		if changes.MajorID != nil {
			majorID = changes.MajorID
		}
		if err := s.checkClassification(ctx, programID, yearLevelID, majorID); err != nil {
			return nil, err
		}
	}

	if changes.StudentNumber != nil && *changes.StudentNumber != current.StudentNumber {
		taken, err := s.students.StudentNumberTaken(ctx, *changes.StudentNumber, id)
		if err != nil {
			return nil, fmt.Errorf("error checking student number: %w", err)
		}
		if taken {
			return nil, apperrors.ErrStudentNumberExists
		}
	}

	if err := s.students.Update(ctx, id, changes); err != nil {
		return nil, err
	}
	return s.students.GetByID(ctx, id)
}

// DeleteStudent deletes a student that nothing references
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	exists, err := s.students.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking student: %w", err)
	}
	if !exists {
		return apperrors.ErrStudentNotFound
	}

	referenced, err := s.students.HasReferences(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking student references: %w", err)
	}
	if referenced {
		return apperrors.ErrStudentHasReferences
	}

	return s.students.Delete(ctx, id)
}
