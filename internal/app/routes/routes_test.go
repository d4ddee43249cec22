package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revams/api/internal/app/controllers"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRouter(router, Controllers{
		Student:    &controllers.StudentController{},
		Event:      &controllers.EventController{},
		Attendance: &controllers.AttendanceController{},
		Payable:    &controllers.PayableController{},
		Reference:  &controllers.ReferenceController{},
		OrgChart:   &controllers.OrgChartController{},
	})
	return router
}

func TestSetupRouter_RegistersAPIRoutes(t *testing.T) {
	router := newTestRouter()

	registered := make(map[string]bool)
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	expected := []string{
		http.MethodGet + " /api/students",
		http.MethodPost + " /api/students",
		http.MethodPatch + " /api/students/:id",
		http.MethodDelete + " /api/students/:id",
		http.MethodGet + " /api/students/:id/events/:eventId/fines",
		http.MethodPost + " /api/students/:id/events/:eventId/fines",
		http.MethodGet + " /api/events/:id/attendance-slots",
		http.MethodPost + " /api/events/:id/attendance-slots",
		http.MethodPatch + " /api/attendance-slots/:id",
		http.MethodDelete + " /api/attendance-slots/:id",
		http.MethodGet + " /api/attendance-slots/:id/records",
		http.MethodPost + " /api/attendance-records",
		http.MethodPost + " /api/payables/:id/receipts",
		http.MethodGet + " /api/year-levels",
		http.MethodPost + " /api/organizations/:id/org-chart/edges",
		http.MethodPut + " /api/organizations/:id/org-chart/publish",
		http.MethodGet + " /api/public/organizations/:id/org-chart",
		http.MethodGet + " /swagger/*any",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
}

var pathParam = regexp.MustCompile(`:(\w+)`)

func TestSwaggerDocumentsEveryAPIRoute(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		BasePath string                                `json:"basePath"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "/api", doc.BasePath)

	documented := 0
	for _, r := range router.Routes() {
		if !strings.HasPrefix(r.Path, "/api/") {
			continue
		}
		path := pathParam.ReplaceAllString(strings.TrimPrefix(r.Path, "/api"), "{${1}}")
		_, ok := doc.Paths[path][strings.ToLower(r.Method)]
		assert.True(t, ok, "%s %s is not documented", r.Method, path)
		documented++
	}
	assert.Equal(t, 38, documented)
}
