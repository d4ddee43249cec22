package requests

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/revams/api/internal/app/models"
	"github.com/revams/api/internal/app/models/dto"
)

// ResourceRequest addresses one row by its :id path parameter.
type ResourceRequest struct {
	Base
	input struct {
		ID int64 `uri:"id" validate:"required,min=1"`
	}
}

func (r *ResourceRequest) Rules() any { return &r.input }

// Body-less routes have nothing to bind from JSON.
func (r *ResourceRequest) Source() Source { return SourceQuery }

func (r *ResourceRequest) ID() int64 {
	r.mustBeValidated()
	return r.input.ID
}

type listStudentsInput struct {
	PageQuery
	Search      string `form:"search" validate:"max=100"`
	Sort        string `form:"sort,default=last_name" validate:"oneof=last_name first_name student_number created_at"`
	Order       string `form:"order,default=asc" validate:"oneof=asc desc"`
	ProgramID   *int64 `form:"program_id" validate:"omitempty,min=1"`
	YearLevelID *int64 `form:"year_level_id" validate:"omitempty,min=1"`
}

// ListStudentsRequest backs GET /api/students.
type ListStudentsRequest struct {
	QueryBase
	input listStudentsInput
}

func (r *ListStudentsRequest) Rules() any { return &r.input }

func (r *ListStudentsRequest) Prepare(*gin.Context) error {
	r.input.Search = strings.TrimSpace(r.input.Search)
	return nil
}

func (r *ListStudentsRequest) Page() int {
	r.mustBeValidated()
	return r.input.Page
}

func (r *ListStudentsRequest) Limit() int {
	r.mustBeValidated()
	return r.input.Limit
}

func (r *ListStudentsRequest) Search() string {
	r.mustBeValidated()
	return r.input.Search
}

func (r *ListStudentsRequest) ProgramID() *int64 {
	r.mustBeValidated()
	return r.input.ProgramID
}

func (r *ListStudentsRequest) YearLevelID() *int64 {
	r.mustBeValidated()
	return r.input.YearLevelID
}

// ListParams bundles the paging and ordering options.
func (r *ListStudentsRequest) ListParams() dto.ListParams {
	r.mustBeValidated()
	return dto.ListParams{
		Page:   r.input.Page,
		Limit:  r.input.Limit,
		Search: r.input.Search,
		Sort:   r.input.Sort,
		Order:  r.input.Order,
	}
}

// CreateStudentRequest backs POST /api/students.
type CreateStudentRequest struct {
	Base
	input struct {
		StudentNumber string  `json:"student_number" validate:"required,studentnumber"`
		FirstName     string  `json:"first_name" validate:"required,min=1,max=100"`
		MiddleName    *string `json:"middle_name" validate:"omitempty,max=100"`
		LastName      string  `json:"last_name" validate:"required,min=1,max=100"`
		Email         *string `json:"email" validate:"omitempty,email,max=255"`
		ProgramID     int64   `json:"program_id" validate:"required,min=1"`
		MajorID       *int64  `json:"major_id" validate:"omitempty,min=1"`
		YearLevelID   int64   `json:"year_level_id" validate:"required,min=1"`
	}
}

func (r *CreateStudentRequest) Rules() any { return &r.input }

func (r *CreateStudentRequest) Prepare(*gin.Context) error {
	r.input.StudentNumber = strings.TrimSpace(r.input.StudentNumber)
	r.input.FirstName = strings.TrimSpace(r.input.FirstName)
	r.input.LastName = strings.TrimSpace(r.input.LastName)
	return nil
}

func (r *CreateStudentRequest) StudentNumber() string {
	r.mustBeValidated()
	return r.input.StudentNumber
}

func (r *CreateStudentRequest) FirstName() string {
	r.mustBeValidated()
	return r.input.FirstName
}

func (r *CreateStudentRequest) LastName() string {
	r.mustBeValidated()
	return r.input.LastName
}

// Student returns the validated input as a new, unsaved student.
func (r *CreateStudentRequest) Student() *models.Student {
	r.mustBeValidated()
	in := r.input
	return &models.Student{
		Email:         in.Email,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		MajorID:       in.MajorID,
		MiddleName:    in.MiddleName,
		ProgramID:     in.ProgramID,
		StudentNumber: in.StudentNumber,
		YearLevelID:   in.YearLevelID,
	}
}

// UpdateStudentRequest backs PATCH /api/students/:id. Absent fields stay
// untouched; present ones follow the create rules.
type UpdateStudentRequest struct {
	Base
	input struct {
		ID            int64   `json:"-" uri:"id" validate:"required,min=1"`
		StudentNumber *string `json:"student_number" validate:"omitempty,studentnumber"`
		FirstName     *string `json:"first_name" validate:"omitempty,min=1,max=100"`
		MiddleName    *string `json:"middle_name" validate:"omitempty,max=100"`
		LastName      *string `json:"last_name" validate:"omitempty,min=1,max=100"`
		Email         *string `json:"email" validate:"omitempty,email,max=255"`
		ProgramID     *int64  `json:"program_id" validate:"omitempty,min=1"`
		MajorID       *int64  `json:"major_id" validate:"omitempty,min=1"`
		YearLevelID   *int64  `json:"year_level_id" validate:"omitempty,min=1"`
	}
}

func (r *UpdateStudentRequest) Rules() any { return &r.input }

func (r *UpdateStudentRequest) Prepare(*gin.Context) error {
	trimSet(r.input.StudentNumber, r.input.FirstName, r.input.LastName)
	return nil
}

func (r *UpdateStudentRequest) ID() int64 {
	r.mustBeValidated()
	return r.input.ID
}

func (r *UpdateStudentRequest) Changes() models.StudentChanges {
	r.mustBeValidated()
	in := r.input
	return models.StudentChanges{
		StudentNumber: in.StudentNumber,
		FirstName:     in.FirstName,
		MiddleName:    in.MiddleName,
		LastName:      in.LastName,
		Email:         in.Email,
		ProgramID:     in.ProgramID,
		MajorID:       in.MajorID,
		YearLevelID:   in.YearLevelID,
	}
}

// FineRequest addresses one student's attendance at one event.
type FineRequest struct {
	QueryBase
	input struct {
		StudentID int64 `uri:"id" validate:"required,min=1"`
		EventID   int64 `uri:"eventId" validate:"required,min=1"`
	}
}

func (r *FineRequest) Rules() any { return &r.input }

func (r *FineRequest) StudentID() int64 {
	r.mustBeValidated()
	return r.input.StudentID
}

func (r *FineRequest) EventID() int64 {
	r.mustBeValidated()
	return r.input.EventID
}
