package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/college/academics/internal/app/models"
	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/pkg/apperrors"
)

func TestAssignCourse(t *testing.T) {
	db := newMemDB()
	svc := newTestServices(db).StaffCourseService
	ctx := context.Background()
	batchID := db.addBatch("BTech", "CSE", "2024")
	db.addCourse("CS301", db.addSemester(batchID, 3), batchID, 100)
	staffID := db.addUser("staff@college.edu", models.RoleStaff)
	adminID := db.addUser("admin@college.edu", models.RoleAdmin)

	id, err := svc.AssignCourse(ctx, &dto.CreateStaffCourseRequest{StaffID: staffID, CourseCode: "CS301"})
	require.NoError(t, err)

	_, err = svc.AssignCourse(ctx, &dto.CreateStaffCourseRequest{StaffID: staffID, CourseCode: "CS301"})
	require.ErrorIs(t, err, apperrors.ErrConflict)

	_, err = svc.AssignCourse(ctx, &dto.CreateStaffCourseRequest{StaffID: adminID, CourseCode: "CS301"})
	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, []string{"staffId"}, apperrors.Fields(err))

	_, err = svc.AssignCourse(ctx, &dto.CreateStaffCourseRequest{StaffID: 999, CourseCode: "CS301"})
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.AssignCourse(ctx, &dto.CreateStaffCourseRequest{StaffID: staffID, CourseCode: "CS999"})
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	byStaff, err := svc.GetCoursesByStaff(ctx, staffID)
	require.NoError(t, err)
	require.Len(t, byStaff, 1)
	assert.Equal(t, id, byStaff[0].StaffCourseID)

	byCourse, err := svc.GetStaffByCourse(ctx, "CS301")
	require.NoError(t, err)
	require.Len(t, byCourse, 1)
	assert.Equal(t, staffID, byCourse[0].StaffID)

	require.NoError(t, svc.DeleteAssignment(ctx, id, ""))
	assert.Equal(t, models.ActiveNo, db.staffCourses[id].IsActive)
	require.ErrorIs(t, svc.DeleteAssignment(ctx, id+100, ""), apperrors.ErrNotFound)
}
