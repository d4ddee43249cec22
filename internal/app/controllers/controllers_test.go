package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/revams/api/internal/app/models"
	"github.com/revams/api/internal/app/models/dto"
	"github.com/revams/api/internal/app/repositories"
	"github.com/revams/api/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockStudentService struct {
	mock.Mock
}

func (m *MockStudentService) ListStudents(ctx context.Context, filter repositories.StudentFilter) ([]models.Student, dto.Pagination, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, dto.Pagination{}, args.Error(2)
	}
	return args.Get(0).([]models.Student), args.Get(1).(dto.Pagination), args.Error(2)
}

func (m *MockStudentService) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentService) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	args := m.Called(ctx, student)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentService) UpdateStudent(ctx context.Context, id int64, changes models.StudentChanges) (*models.Student, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentService) DeleteStudent(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockAttendanceService struct {
	mock.Mock
}

func (m *MockAttendanceService) ListSlots(ctx context.Context, eventID int64) ([]models.AttendanceSlot, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AttendanceSlot), args.Error(1)
}

func (m *MockAttendanceService) GetSlot(ctx context.Context, id int64) (*models.AttendanceSlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AttendanceSlot), args.Error(1)
}

func (m *MockAttendanceService) CreateSlot(ctx context.Context, slot *models.AttendanceSlot) (*models.AttendanceSlot, error) {
	args := m.Called(ctx, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AttendanceSlot), args.Error(1)
}

func (m *MockAttendanceService) UpdateSlot(ctx context.Context, id int64, changes models.SlotChanges) (*models.AttendanceSlot, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AttendanceSlot), args.Error(1)
}

func (m *MockAttendanceService) DeleteSlot(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAttendanceService) ListSlotRecords(ctx context.Context, slotID int64, page, limit int) ([]models.AttendanceRecord, dto.Pagination, error) {
	args := m.Called(ctx, slotID, page, limit)
	if args.Get(0) == nil {
		return nil, dto.Pagination{}, args.Error(2)
	}
	return args.Get(0).([]models.AttendanceRecord), args.Get(1).(dto.Pagination), args.Error(2)
}

func (m *MockAttendanceService) CreateRecord(ctx context.Context, record *models.AttendanceRecord) (*models.AttendanceRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceService) GetRecord(ctx context.Context, id int64) (*models.AttendanceRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceService) DeleteRecord(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func perform(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := decode(t, w)
	detail, ok := body["error"].(map[string]any)
	require.True(t, ok, "missing error envelope: %s", w.Body.String())
	assert.EqualValues(t, w.Code, detail["code"])
	return detail["message"].(string)
}

func studentRouter(svc *MockStudentService) *gin.Engine {
	ctrl := NewStudentController(svc, "")
	r := gin.New()
	r.GET("/api/students", ctrl.ListStudents)
	r.POST("/api/students", ctrl.CreateStudent)
	r.GET("/api/students/:id", ctrl.GetStudent)
	r.PATCH("/api/students/:id", ctrl.UpdateStudent)
	r.DELETE("/api/students/:id", ctrl.DeleteStudent)
	return r
}

func TestCreateStudent_MissingFieldNamesIt(t *testing.T) {
	svc := new(MockStudentService)
	w := perform(studentRouter(svc), http.MethodPost, "/api/students",
		`{"student_number":"2021-00123","last_name":"Cruz","program_id":1,"year_level_id":1}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorMessage(t, w), "first_name")
	svc.AssertNotCalled(t, "CreateStudent", mock.Anything, mock.Anything)
}

func TestCreateStudent_InvalidBody(t *testing.T) {
	w := perform(studentRouter(new(MockStudentService)), http.MethodPost, "/api/students", `{"student_number":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", errorMessage(t, w))
}

func TestCreateStudent_CreatedWithLocation(t *testing.T) {
	svc := new(MockStudentService)
	svc.On("CreateStudent", mock.Anything, mock.MatchedBy(func(s *models.Student) bool {
		return s.StudentNumber == "2021-00123" && s.FirstName == "Ana"
	})).Return(&models.Student{ID: 42, StudentNumber: "2021-00123", FirstName: "Ana", LastName: "Cruz"}, nil)

	w := perform(studentRouter(svc), http.MethodPost, "/api/students",
		`{"student_number":"2021-00123","first_name":" Ana ","last_name":"Cruz","program_id":1,"year_level_id":1}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "http://example.com/api/students/42", w.Header().Get("Location"))

	body := decode(t, w)
	assert.Equal(t, "Student created successfully", body["message"])
	student := body["student"].(map[string]any)
	assert.EqualValues(t, 42, student["id"])
}

func TestCreateStudent_DuplicateNumber(t *testing.T) {
	svc := new(MockStudentService)
	svc.On("CreateStudent", mock.Anything, mock.Anything).Return(nil, apperrors.ErrStudentNumberExists)

	w := perform(studentRouter(svc), http.MethodPost, "/api/students",
		`{"student_number":"2021-00123","first_name":"Ana","last_name":"Cruz","program_id":1,"year_level_id":1}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListStudents_Pagination(t *testing.T) {
	svc := new(MockStudentService)
	pagination := dto.Pagination{Page: 2, Limit: 10, Total: 25, TotalPages: 3, HasNextPage: true, HasPrevPage: true}
	svc.On("ListStudents", mock.Anything, mock.MatchedBy(func(f repositories.StudentFilter) bool {
		return f.Page == 2 && f.Limit == 10 && f.Sort == "last_name" && f.Order == "asc"
	})).Return(make([]models.Student, 10), pagination, nil)

	w := perform(studentRouter(svc), http.MethodGet, "/api/students?page=2&limit=10", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body["students"], 10)
	p := body["pagination"].(map[string]any)
	assert.EqualValues(t, 3, p["totalPages"])
	assert.Equal(t, true, p["hasNextPage"])
	assert.Equal(t, true, p["hasPrevPage"])
}

func TestListStudents_RejectsUnknownSort(t *testing.T) {
	w := perform(studentRouter(new(MockStudentService)), http.MethodGet, "/api/students?sort=password", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorMessage(t, w), "sort")
}

func TestGetStudent(t *testing.T) {
	svc := new(MockStudentService)
	svc.On("GetStudent", mock.Anything, int64(7)).Return(nil, apperrors.ErrStudentNotFound)
	r := studentRouter(svc)

	w := perform(r, http.MethodGet, "/api/students/7", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Student not found", errorMessage(t, w))

	w = perform(r, http.MethodGet, "/api/students/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStudent_RepeatableReads(t *testing.T) {
	svc := new(MockStudentService)
	svc.On("GetStudent", mock.Anything, int64(7)).Return(&models.Student{ID: 7, FirstName: "Ana"}, nil)
	r := studentRouter(svc)

	first := perform(r, http.MethodGet, "/api/students/7", "")
	second := perform(r, http.MethodGet, "/api/students/7", "")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func attendanceRouter(svc *MockAttendanceService) *gin.Engine {
	ctrl := NewAttendanceController(svc, "https://revams.example.edu")
	r := gin.New()
	r.POST("/api/events/:id/attendance-slots", ctrl.CreateSlot)
	r.PATCH("/api/attendance-slots/:id", ctrl.UpdateSlot)
	r.DELETE("/api/attendance-slots/:id", ctrl.DeleteSlot)
	r.GET("/api/attendance-slots/:id/records", ctrl.ListSlotRecords)
	return r
}

func TestCreateSlot_NormalizesAndLocates(t *testing.T) {
	svc := new(MockAttendanceService)
	svc.On("CreateSlot", mock.Anything, mock.MatchedBy(func(s *models.AttendanceSlot) bool {
		return s.EventID == 3 && s.TriggerTime == "08:00:00" && s.Type == models.SlotTimeIn && s.FineAmount == 0
	})).Return(&models.AttendanceSlot{ID: 11, EventID: 3, TriggerTime: "08:00:00", Type: models.SlotTimeIn}, nil)

	w := perform(attendanceRouter(svc), http.MethodPost, "/api/events/3/attendance-slots",
		`{"type":"TIME_IN","trigger_time":"08:00"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "https://revams.example.edu/api/attendance-slots/11", w.Header().Get("Location"))
}

func TestUpdateSlot_DuplicateIsConflict(t *testing.T) {
	svc := new(MockAttendanceService)
	svc.On("UpdateSlot", mock.Anything, int64(5), mock.Anything).Return(nil, apperrors.ErrDuplicateSlot)

	w := perform(attendanceRouter(svc), http.MethodPatch, "/api/attendance-slots/5", `{"trigger_time":"17:00"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteSlot(t *testing.T) {
	svc := new(MockAttendanceService)
	svc.On("DeleteSlot", mock.Anything, int64(5)).Return(apperrors.ErrSlotHasRecords)
	svc.On("DeleteSlot", mock.Anything, int64(6)).Return(nil)
	r := attendanceRouter(svc)

	w := perform(r, http.MethodDelete, "/api/attendance-slots/5", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = perform(r, http.MethodDelete, "/api/attendance-slots/6", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Attendance slot deleted successfully", decode(t, w)["message"])
}

func TestListSlotRecords_LimitBounds(t *testing.T) {
	w := perform(attendanceRouter(new(MockAttendanceService)), http.MethodGet, "/api/attendance-slots/5/records?limit=500", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorMessage(t, w), "limit")
}
