package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/revams/api/internal/app/models"
	"github.com/revams/api/internal/app/models/dto"
	"github.com/revams/api/internal/app/repositories"
	"github.com/revams/api/internal/pkg/apperrors"
)

func newStudentService() (StudentService, *MockStudentStore, *MockReferenceStore) {
	students, refs := new(MockStudentStore), new(MockReferenceStore)
	return NewStudentService(students, refs), students, refs
}

func TestListStudents_SecondPage(t *testing.T) {
	svc, students, _ := newStudentService()
	ctx := context.Background()
	filter := repositories.StudentFilter{ListParams: dto.ListParams{Page: 2, Limit: 10}}
	students.On("List", ctx, filter).Return(make([]models.Student, 10), int64(25), nil)

	list, pagination, err := svc.ListStudents(ctx, filter)

	require.NoError(t, err)
	assert.Len(t, list, 10)
	assert.Equal(t, dto.Pagination{
		HasNextPage: true,
		HasPrevPage: true,
		Limit:       10,
		Page:        2,
		Total:       25,
		TotalPages:  3,
	}, pagination)
}

func TestCreateStudent(t *testing.T) {
	newStudent := func() *models.Student {
		return &models.Student{StudentNumber: "2021-00123", FirstName: "Ana", LastName: "Cruz", ProgramID: 1, YearLevelID: 2}
	}

	t.Run("unknown program", func(t *testing.T) {
		svc, _, refs := newStudentService()
		ctx := context.Background()
		refs.On("ProgramExists", ctx, int64(1)).Return(false, nil)

		_, err := svc.CreateStudent(ctx, newStudent())

		assert.Equal(t, 400, apperrors.StatusCode(err))
		assert.Equal(t, "Program not found", apperrors.Message(err))
	})

	t.Run("major outside program", func(t *testing.T) {
		svc, _, refs := newStudentService()
		ctx := context.Background()
		refs.On("ProgramExists", ctx, int64(1)).Return(true, nil)
		refs.On("YearLevelExists", ctx, int64(2)).Return(true, nil)
		refs.On("MajorBelongsTo", ctx, int64(9), int64(1)).Return(false, nil)

		s := newStudent()
		major := int64(9)
		s.MajorID = &major
		_, err := svc.CreateStudent(ctx, s)

		assert.Equal(t, "Major not found for the selected program", apperrors.Message(err))
	})

	t.Run("duplicate number", func(t *testing.T) {
		svc, students, refs := newStudentService()
		ctx := context.Background()
		refs.On("ProgramExists", ctx, int64(1)).Return(true, nil)
		refs.On("YearLevelExists", ctx, int64(2)).Return(true, nil)
		students.On("StudentNumberTaken", ctx, "2021-00123", int64(0)).Return(true, nil)

		_, err := svc.CreateStudent(ctx, newStudent())

		assert.ErrorIs(t, err, apperrors.ErrStudentNumberExists)
		students.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("created and reloaded", func(t *testing.T) {
		svc, students, refs := newStudentService()
		ctx := context.Background()
		refs.On("ProgramExists", ctx, int64(1)).Return(true, nil)
		refs.On("YearLevelExists", ctx, int64(2)).Return(true, nil)
		students.On("StudentNumberTaken", ctx, "2021-00123", int64(0)).Return(false, nil)
		students.On("Create", ctx, mock.AnythingOfType("*models.Student")).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Student).ID = 42
		}).Return(nil)
		students.On("GetByID", ctx, int64(42)).Return(&models.Student{ID: 42, ProgramName: "BSIT"}, nil)

		got, err := svc.CreateStudent(ctx, newStudent())

		require.NoError(t, err)
		assert.Equal(t, "BSIT", got.ProgramName)
	})
}

func TestUpdateStudent_NumberCheckExcludesSelf(t *testing.T) {
	svc, students, _ := newStudentService()
	ctx := context.Background()
	current := &models.Student{ID: 4, StudentNumber: "2021-00001"}
	number := "2021-00002"
	changes := models.StudentChanges{StudentNumber: &number}

	students.On("GetByID", ctx, int64(4)).Return(current, nil)
	students.On("StudentNumberTaken", ctx, number, int64(4)).Return(true, nil)

	_, err := svc.UpdateStudent(ctx, 4, changes)

	assert.ErrorIs(t, err, apperrors.ErrStudentNumberExists)
}

func TestDeleteStudent(t *testing.T) {
	t.Run("referenced", func(t *testing.T) {
		svc, students, _ := newStudentService()
		ctx := context.Background()
		students.On("Exists", ctx, int64(4)).Return(true, nil)
		students.On("HasReferences", ctx, int64(4)).Return(true, nil)

		assert.ErrorIs(t, svc.DeleteStudent(ctx, 4), apperrors.ErrStudentHasReferences)
	})

	t.Run("missing", func(t *testing.T) {
		svc, students, _ := newStudentService()
		ctx := context.Background()
		students.On("Exists", ctx, int64(4)).Return(false, nil)

		assert.ErrorIs(t, svc.DeleteStudent(ctx, 4), apperrors.ErrStudentNotFound)
	})
}
