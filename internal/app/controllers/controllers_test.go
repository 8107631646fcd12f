package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/college/academics/internal/app/models"
	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubSemesters struct {
	created   *dto.CreateSemesterRequest
	query     dto.SemesterQuery
	deletedID int64
	rows      []*models.Semester
	err       error
}

func (s *stubSemesters) CreateSemester(_ context.Context, req *dto.CreateSemesterRequest) (int64, error) {
	s.created = req
	return 12, s.err
}

func (s *stubSemesters) GetSemesters(_ context.Context, q dto.SemesterQuery) ([]*models.Semester, error) {
	s.query = q
	return s.rows, s.err
}

func (s *stubSemesters) GetAllSemesters(context.Context) ([]*models.Semester, error) {
	return s.rows, s.err
}

func (s *stubSemesters) UpdateSemester(_ context.Context, id int64, _ *dto.UpdateSemesterRequest) (*models.Semester, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Semester{SemesterID: id, SemesterNumber: 4}, nil
}

func (s *stubSemesters) DeleteSemester(_ context.Context, id int64) error {
	s.deletedID = id
	return s.err
}

type stubCourses struct {
	created     *dto.CreateCourseRequest
	deletedBy   string
	semesterArg int64
}

func (s *stubCourses) CreateCourse(_ context.Context, req *dto.CreateCourseRequest) (string, error) {
	s.created = req
	return req.CourseCode, nil
}

func (s *stubCourses) GetCoursesBySemester(_ context.Context, semesterID int64) ([]*models.Course, error) {
	s.semesterArg = semesterID
	return []*models.Course{}, nil
}

func (s *stubCourses) GetAllCourses(context.Context) ([]*models.Course, error) {
	return []*models.Course{{CourseCode: "CS301"}}, nil
}

func (s *stubCourses) GetCourse(_ context.Context, code string) (*models.Course, error) {
	return nil, apperrors.NewNotFoundErrorf("Course with code %s not found", code)
}

func (s *stubCourses) UpdateCourse(_ context.Context, code string, _ *dto.UpdateCourseRequest) (*models.Course, error) {
	return &models.Course{CourseCode: code}, nil
}

func (s *stubCourses) DeleteCourse(_ context.Context, _ string, updatedBy string) error {
	s.deletedBy = updatedBy
	return nil
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func serve(method, path, body string, register func(r *gin.Engine)) *httptest.ResponseRecorder {
	r := gin.New()
	register(r)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCreateSemester(t *testing.T) {
	svc := &stubSemesters{}
	c := NewSemesterController(svc)
	body := `{"batchId":1,"degree":"BTech","branch":"CSE","semesterNumber":3,"startDate":"2024-01-10","endDate":"2024-05-20","createdBy":"admin","updatedBy":"admin"}`

	w := serve(http.MethodPost, "/semester", body, func(r *gin.Engine) { r.POST("/semester", c.CreateSemester) })

	require.Equal(t, http.StatusCreated, w.Code)
	got := decode(t, w)
	assert.Equal(t, "success", got["status"])
	assert.Equal(t, "Semester added successfully", got["message"])
	assert.EqualValues(t, 12, got["semesterId"])
	assert.Equal(t, 3, svc.created.SemesterNumber)
}

func TestCreateSemesterErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
		code   string
	}{
		{"malformed body", `{"batchId":`, nil, http.StatusBadRequest, "VAL_001"},
		{"missing fields", `{}`, apperrors.NewValidationError("All fields are required", "batchId"), http.StatusBadRequest, "VAL_001"},
		{"unknown batch", `{}`, apperrors.NewNotFoundError("Batch with ID 7 not found"), http.StatusNotFound, "RES_001"},
		{"duplicate", `{}`, apperrors.NewConflictError("Semester already exists for this batch, degree, and branch"), http.StatusBadRequest, "RES_004"},
		{"database", `{}`, apperrors.NewDatabaseError(errors.New("connection refused")), http.StatusInternalServerError, "SRV_002"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewSemesterController(&stubSemesters{err: tt.err})
			w := serve(http.MethodPost, "/semester", tt.body, func(r *gin.Engine) { r.POST("/semester", c.CreateSemester) })

			assert.Equal(t, tt.status, w.Code)
			got := decode(t, w)
			assert.Equal(t, "failure", got["status"])
			assert.Equal(t, tt.code, got["code"])
		})
	}
}

func TestGetSemestersReturnsBareArray(t *testing.T) {
	svc := &stubSemesters{rows: []*models.Semester{{SemesterID: 1, StartDate: "2024-01-10"}}}
	c := NewSemesterController(svc)

	w := serve(http.MethodGet, "/semester?batch=2024&degree=BTech&branch=CSE&semesterNumber=3", "",
		func(r *gin.Engine) { r.GET("/semester", c.GetSemesters) })

	require.Equal(t, http.StatusOK, w.Code)
	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-01-10", rows[0]["startDate"])
	assert.Equal(t, dto.SemesterQuery{Batch: "2024", Degree: "BTech", Branch: "CSE", SemesterNumber: "3"}, svc.query)
}

func TestGetAllSemestersEnvelope(t *testing.T) {
	c := NewSemesterController(&stubSemesters{rows: []*models.Semester{{SemesterID: 1}}})
	w := serve(http.MethodGet, "/semesters", "", func(r *gin.Engine) { r.GET("/semesters", c.GetAllSemesters) })

	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	assert.Equal(t, "success", got["message"])
	assert.Len(t, got["data"], 1)
}

func TestUpdateAndDeleteSemester(t *testing.T) {
	svc := &stubSemesters{}
	c := NewSemesterController(svc)
	register := func(r *gin.Engine) {
		r.PUT("/semester/:semesterId", c.UpdateSemester)
		r.DELETE("/semester/:semesterId", c.DeleteSemester)
	}

	w := serve(http.MethodPut, "/semester/5", `{}`, register)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	assert.Equal(t, "Semester updated successfully", got["message"])
	assert.EqualValues(t, 5, got["data"].(map[string]interface{})["semesterId"])

	w = serve(http.MethodDelete, "/semester/5", "", register)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Semester with id 5 deleted successfully", decode(t, w)["message"])
	assert.EqualValues(t, 5, svc.deletedID)

	w = serve(http.MethodDelete, "/semester/abc", "", register)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []interface{}{"semesterId"}, decode(t, w)["fields"])
}

func TestCourseRoutesUsePathValues(t *testing.T) {
	svc := &stubCourses{}
	c := NewCourseController(svc)
	register := func(r *gin.Engine) {
		r.POST("/semester/:semesterId/courses", c.CreateCourse)
		r.GET("/semester/:semesterId/courses", c.GetCoursesBySemester)
		r.GET("/course/:courseCode", c.GetCourse)
		r.DELETE("/course/:courseCode", c.DeleteCourse)
	}

	w := serve(http.MethodPost, "/semester/4/courses", `{"courseCode":"CS301","semesterId":99,"batchId":1}`, register)
	require.Equal(t, http.StatusCreated, w.Code)
	got := decode(t, w)
	assert.Equal(t, "Course added successfully", got["message"])
	assert.Equal(t, "CS301", got["courseId"])
	assert.EqualValues(t, 4, svc.created.SemesterID)

	w = serve(http.MethodGet, "/semester/4/courses", "", register)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{}, decode(t, w)["data"])
	assert.EqualValues(t, 4, svc.semesterArg)

	w = serve(http.MethodGet, "/semester/x/courses", "", register)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(http.MethodGet, "/course/CS999", "", register)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Course with code CS999 not found", decode(t, w)["message"])

	w = serve(http.MethodDelete, "/course/CS301?updatedBy=hod", "", register)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hod", svc.deletedBy)
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		db     string
	}{
		{"up", nil, http.StatusOK, "up"},
		{"down", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable, "down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewHealthController(stubPinger{err: tt.err})
			w := serve(http.MethodGet, "/health", "", func(r *gin.Engine) { r.GET("/health", c.Health) })

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.db, decode(t, w)["database"])
		})
	}
}
