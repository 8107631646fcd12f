package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/college/academics/internal/app/models"
	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/pkg/apperrors"
	"github.com/college/academics/internal/pkg/validation"
)

func intPtr(v int) *int { return &v }

func courseRequest(semesterID, batchID int64) *dto.CreateCourseRequest {
	return &dto.CreateCourseRequest{
		CourseCode:     "CS301",
		SemesterID:     semesterID,
		BatchID:        batchID,
		CourseName:     "Operating Systems",
		CourseType:     "THEORY",
		CourseCategory: "CORE",
		MinMark:        intPtr(40),
		MaxMark:        intPtr(100),
	}
}

type courseFixture struct {
	db         *memDB
	svc        CourseService
	batchID    int64
	semesterID int64
}

func newCourseFixture() courseFixture {
	db := newMemDB()
	batchID := db.addBatch("BTech", "CSE", "2024")
	return courseFixture{
		db:         db,
		svc:        newTestServices(db).CourseService,
		batchID:    batchID,
		semesterID: db.addSemester(batchID, 3),
	}
}

func TestCreateCourseAppliesDefaults(t *testing.T) {
	f := newCourseFixture()

	code, err := f.svc.CreateCourse(context.Background(), courseRequest(f.semesterID, f.batchID))
	require.NoError(t, err)
	assert.Equal(t, "CS301", code)

	stored := f.db.courses["CS301"]
	require.NotNil(t, stored)
	assert.Equal(t, models.ActiveYes, stored.IsActive)
	assert.Equal(t, dto.DefaultActor, *stored.CreatedBy)
	assert.Equal(t, dto.DefaultActor, *stored.UpdatedBy)
	assert.Equal(t, f.semesterID, stored.SemesterID)
	assert.Equal(t, 40, stored.MinMark)
}

func TestCreateCourseKeepsExplicitFlags(t *testing.T) {
	f := newCourseFixture()
	req := courseRequest(f.semesterID, f.batchID)
	req.IsActive = "NO"
	req.CreatedBy = "hod"
	req.MinMark = intPtr(1)

	_, err := f.svc.CreateCourse(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.ActiveNo, f.db.courses["CS301"].IsActive)
	assert.Equal(t, "hod", *f.db.courses["CS301"].CreatedBy)
	assert.Equal(t, 1, f.db.courses["CS301"].MinMark)
}

func TestCreateCourseRequiresEveryField(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*dto.CreateCourseRequest)
	}{
		{"courseCode", func(r *dto.CreateCourseRequest) { r.CourseCode = "  " }},
		{"semesterId", func(r *dto.CreateCourseRequest) { r.SemesterID = 0 }},
		{"batchId", func(r *dto.CreateCourseRequest) { r.BatchID = 0 }},
		{"courseName", func(r *dto.CreateCourseRequest) { r.CourseName = "" }},
		{"courseType", func(r *dto.CreateCourseRequest) { r.CourseType = "" }},
		{"courseCategory", func(r *dto.CreateCourseRequest) { r.CourseCategory = "" }},
		{"minMark", func(r *dto.CreateCourseRequest) { r.MinMark = nil }},
		{"maxMark", func(r *dto.CreateCourseRequest) { r.MaxMark = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			f := newCourseFixture()
			req := courseRequest(f.semesterID, f.batchID)
			tt.mutate(req)

			_, err := f.svc.CreateCourse(context.Background(), req)
			require.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Contains(t, apperrors.Fields(err), tt.field)
			assert.Zero(t, f.db.count("Course"))
		})
	}
}

func TestCreateCourseRuleViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.CreateCourseRequest)
		msg    string
	}{
		{"unknown type", func(r *dto.CreateCourseRequest) { r.CourseType = "LAB" }, "courseType must be one of: INTEGRAL PRACTICAL THEORY"},
		{"negative mark", func(r *dto.CreateCourseRequest) { r.MinMark = intPtr(-1) }, "minMark must be at least 1"},
		{"zero min mark", func(r *dto.CreateCourseRequest) { r.MinMark = intPtr(0) }, "minMark must be at least 1"},
		{"zero max mark", func(r *dto.CreateCourseRequest) { r.MaxMark = intPtr(0) }, "maxMark must be at least 1"},
		{"min above max", func(r *dto.CreateCourseRequest) { r.MinMark = intPtr(60); r.MaxMark = intPtr(50) }, "minMark must not exceed maxMark"},
		{"bad active flag", func(r *dto.CreateCourseRequest) { r.IsActive = "Y" }, "isActive must be YES or NO"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCourseFixture()
			req := courseRequest(f.semesterID, f.batchID)
			tt.mutate(req)

			_, err := f.svc.CreateCourse(context.Background(), req)
			require.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Equal(t, tt.msg, err.Error())
			assert.Zero(t, f.db.count("Course"))
		})
	}
}

func TestCreateCourseParents(t *testing.T) {
	f := newCourseFixture()
	ctx := context.Background()

	_, err := f.svc.CreateCourse(ctx, courseRequest(f.semesterID+50, f.batchID))
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "Semester with ID")

	_, err = f.svc.CreateCourse(ctx, courseRequest(f.semesterID, f.batchID+50))
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "Batch with ID")

	other := f.db.addBatch("BTech", "ECE", "2024")
	_, err = f.svc.CreateCourse(ctx, courseRequest(f.semesterID, other))
	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, []string{"batchId"}, apperrors.Fields(err))

	assert.Zero(t, f.db.count("Course"))
}

func TestCreateCourseDuplicateCode(t *testing.T) {
	f := newCourseFixture()
	ctx := context.Background()

	_, err := f.svc.CreateCourse(ctx, courseRequest(f.semesterID, f.batchID))
	require.NoError(t, err)

	_, err = f.svc.CreateCourse(ctx, courseRequest(f.semesterID, f.batchID))
	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "Course with code CS301 already exists", err.Error())
	assert.Equal(t, 1, f.db.count("Course"))
}

func TestCourseListings(t *testing.T) {
	f := newCourseFixture()
	ctx := context.Background()
	other := f.db.addSemester(f.batchID, 4)
	f.db.addCourse("CS302", f.semesterID, f.batchID, 100)
	f.db.addCourse("CS401", other, f.batchID, 100)
	f.db.addCourse("CS301", f.semesterID, f.batchID, 100)

	bySemester, err := f.svc.GetCoursesBySemester(ctx, f.semesterID)
	require.NoError(t, err)
	require.Len(t, bySemester, 2)
	assert.Equal(t, "CS301", bySemester[0].CourseCode)
	assert.Equal(t, "CS302", bySemester[1].CourseCode)

	unknown, err := f.svc.GetCoursesBySemester(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, unknown)

	_, err = f.svc.GetCoursesBySemester(ctx, 0)
	require.ErrorIs(t, err, apperrors.ErrValidation)

	all, err := f.svc.GetAllCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdateAndDeleteCourse(t *testing.T) {
	f := newCourseFixture()
	ctx := context.Background()
	f.db.addCourse("CS301", f.semesterID, f.batchID, 100)

	req := &dto.UpdateCourseRequest{
		SemesterID:     f.semesterID,
		BatchID:        f.batchID,
		CourseName:     "Advanced Operating Systems",
		CourseType:     "INTEGRAL",
		CourseCategory: "PEC",
		MinMark:        intPtr(50),
		MaxMark:        intPtr(150),
		IsActive:       "YES",
	}
	updated, err := f.svc.UpdateCourse(ctx, "CS301", req)
	require.NoError(t, err)
	assert.Equal(t, "Advanced Operating Systems", updated.CourseName)
	assert.Equal(t, models.CourseTypeIntegral, updated.CourseType)
	assert.Equal(t, 150, updated.MaxMark)
	assert.Equal(t, dto.DefaultActor, *updated.UpdatedBy)

	zeroMin := *req
	zeroMin.MinMark = intPtr(0)
	_, err = f.svc.UpdateCourse(ctx, "CS301", &zeroMin)
	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, []string{"minMark"}, apperrors.Fields(err))
	assert.Equal(t, 50, f.db.courses["CS301"].MinMark)

	_, err = f.svc.UpdateCourse(ctx, "CS999", req)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, f.svc.DeleteCourse(ctx, "CS301", "hod"))
	course, err := f.svc.GetCourse(ctx, "CS301")
	require.NoError(t, err)
	assert.Equal(t, models.ActiveNo, course.IsActive)
	assert.Equal(t, "hod", *course.UpdatedBy)

	err = f.svc.DeleteCourse(ctx, "CS999", "")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateCourseMissingMarksMessage(t *testing.T) {
	f := newCourseFixture()
	req := courseRequest(f.semesterID, f.batchID)
	req.MinMark, req.MaxMark = nil, nil

	_, err := f.svc.CreateCourse(context.Background(), req)
	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, validation.MissingFieldsMessage, err.Error())
}
