package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/college/academics/internal/app/controllers"
	"github.com/college/academics/internal/app/services"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRouter(router, controllers.NewControllers(&services.Services{}, okPinger{}))
	SetupSwagger(router)
	return router
}

func TestSetupRouterRegistersEndpoints(t *testing.T) {
	registered := map[string]bool{}
	for _, r := range newTestRouter().Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	want := []string{
		"POST /semester",
		"GET /semester",
		"GET /semesters",
		"PUT /semester/:semesterId",
		"DELETE /semester/:semesterId",
		"POST /semester/:semesterId/courses",
		"GET /semester/:semesterId/courses",
		"GET /courses",
		"GET /course/:courseCode",
		"PUT /course/:courseCode",
		"DELETE /course/:courseCode",
		"POST /batch",
		"GET /batches",
		"GET /batch/:batchId",
		"PUT /batch/:batchId",
		"DELETE /batch/:batchId",
		"POST /users",
		"GET /users",
		"GET /users/:userId",
		"PUT /users/:userId",
		"DELETE /users/:userId",
		"POST /students",
		"GET /students",
		"GET /students/:rollnumber",
		"PUT /students/:rollnumber",
		"DELETE /students/:rollnumber",
		"POST /staff-courses",
		"GET /staff/:staffId/courses",
		"GET /course/:courseCode/staff",
		"DELETE /staff-courses/:staffCourseId",
		"POST /course/:courseCode/outcomes",
		"GET /course/:courseCode/outcomes",
		"PUT /outcomes/:coId",
		"DELETE /outcomes/:coId",
		"POST /outcomes/:coId/tools",
		"GET /outcomes/:coId/tools",
		"PUT /tools/:toolId",
		"DELETE /tools/:toolId",
		"POST /tools/:toolId/marks",
		"GET /tools/:toolId/marks",
		"PUT /marks/:studentToolId",
		"POST /timetable",
		"GET /timetable",
		"PUT /timetable/:timetableId",
		"DELETE /timetable/:timetableId",
		"POST /attendance/day",
		"POST /attendance/day/bulk",
		"GET /attendance/day",
		"PUT /attendance/day/:dayAttendanceId",
		"POST /attendance/period",
		"GET /attendance/period",
		"PUT /attendance/period/:periodAttendanceId",
		"GET /health",
		"GET /swagger/*any",
	}
	for _, route := range want {
		assert.True(t, registered[route], "missing route %s", route)
	}
}

func TestHealthRoute(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","database":"up"}`, w.Body.String())
}

func TestInvalidPathIDIsRejectedBeforeTheService(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/batch/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
