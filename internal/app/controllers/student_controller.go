package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revams/api/internal/app/repositories"
	"github.com/revams/api/internal/app/requests"
	"github.com/revams/api/internal/app/services"
	"github.com/revams/api/internal/middleware"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
	publicURL      string
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, publicURL string) *StudentController {
	return &StudentController{studentService: studentService, publicURL: publicURL}
}

// ListStudents returns a page of students
// @Summary List students
// @Description Lists students with search, sorting, filtering and pagination
// @Tags students
// @Produce json
// @Param page query int false "Page number" default(1) minimum(1)
// @Param limit query int false "Page size" default(10) minimum(1) maximum(100)
// @Param search query string false "Matches student number, first or last name"
// @Param sort query string false "Sort column" Enums(last_name, first_name, student_number, created_at) default(last_name)
// @Param order query string false "Sort order" Enums(asc, desc) default(asc)
// @Param program_id query int false "Filter by program"
// @Param year_level_id query int false "Filter by year level"
// @Success 200 {object} map[string]interface{} "students and pagination"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	var req requests.ListStudentsRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filter := repositories.StudentFilter{
		ListParams:  req.ListParams(),
		ProgramID:   req.ProgramID(),
		YearLevelID: req.YearLevelID(),
	}
	students, pagination, err := c.studentService.ListStudents(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"students": students, "pagination": pagination})
}

// GetStudent retrieves a student by ID
// @Summary Get a student
// @Tags students
// @Produce json
// @Param id path int true "Student ID" minimum(1)
// @Success 200 {object} map[string]interface{} "student"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	var req requests.ResourceRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.GetStudent(ctx, req.ID())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"student": student})
}

// CreateStudent creates a student
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Param request body object true "Student fields"
// @Success 201 {object} map[string]interface{} "student and message"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown program, major or year level"
// @Failure 409 {object} dto.ErrorResponse "Student number already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req requests.CreateStudentRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.CreateStudent(ctx, req.Student())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	setLocation(ctx, c.publicURL, "students", student.ID)
	ctx.JSON(http.StatusCreated, gin.H{"student": student, "message": "Student created successfully"})
}

// UpdateStudent partially updates a student
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID" minimum(1)
// @Param request body object true "Fields to change"
// @Success 200 {object} map[string]interface{} "student and message"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Student number already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [patch]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req requests.UpdateStudentRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, req.ID(), req.Changes())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"student": student, "message": "Student updated successfully"})
}

// DeleteStudent deletes a student
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param id path int true "Student ID" minimum(1)
// @Success 200 {object} map[string]interface{} "message"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Student has attendance records or payables"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	var req requests.ResourceRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.studentService.DeleteStudent(ctx, req.ID()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Student deleted successfully"})
}
