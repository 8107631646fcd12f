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

func slotRequest(staffID int64, day string, period int) *dto.CreateTimetableRequest {
	return &dto.CreateTimetableRequest{
		StaffID:      staffID,
		CourseCode:   "CS301",
		Degree:       "BTech",
		Branch:       "CSE",
		Batch:        "2024",
		DayOfWeek:    day,
		PeriodNumber: period,
	}
}

func TestTimetableSlots(t *testing.T) {
	db := newMemDB()
	svc := newTestServices(db).TimetableService
	ctx := context.Background()
	batchID := db.addBatch("BTech", "CSE", "2024")
	db.addCourse("CS301", db.addSemester(batchID, 3), batchID, 100)
	staffID := db.addUser("staff@college.edu", models.RoleStaff)
	adminID := db.addUser("admin@college.edu", models.RoleAdmin)

	mon, err := svc.CreateSlot(ctx, slotRequest(staffID, "MON", 2))
	require.NoError(t, err)
	_, err = svc.CreateSlot(ctx, slotRequest(staffID, "WED", 1))
	require.NoError(t, err)

	_, err = svc.CreateSlot(ctx, slotRequest(staffID, "MON", 2))
	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, slotExistsMsg, err.Error())

	_, err = svc.CreateSlot(ctx, slotRequest(adminID, "TUE", 1))
	require.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.CreateSlot(ctx, slotRequest(staffID, "SUN", 1))
	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, []string{"dayOfWeek"}, apperrors.Fields(err))

	_, err = svc.CreateSlot(ctx, slotRequest(staffID, "TUE", 9))
	require.ErrorIs(t, err, apperrors.ErrValidation)

	assert.Equal(t, 2, db.count("Timetable"))

	byStaff, err := svc.GetTimetable(ctx, dto.TimetableQuery{StaffID: staffID})
	require.NoError(t, err)
	assert.Len(t, byStaff, 2)

	byClass, err := svc.GetTimetable(ctx, dto.TimetableQuery{Degree: "BTech", Branch: "CSE", Batch: "2024"})
	require.NoError(t, err)
	assert.Len(t, byClass, 2)

	_, err = svc.GetTimetable(ctx, dto.TimetableQuery{Degree: "BTech"})
	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.ElementsMatch(t, []string{"branch", "batch"}, apperrors.Fields(err))

	update := &dto.UpdateTimetableRequest{
		StaffID: staffID, CourseCode: "CS301", Degree: "BTech", Branch: "CSE", Batch: "2024",
		DayOfWeek: "WED", PeriodNumber: 1, IsActive: "YES",
	}
	_, err = svc.UpdateSlot(ctx, mon, update)
	require.ErrorIs(t, err, apperrors.ErrConflict)

	update.DayOfWeek = "FRI"
	moved, err := svc.UpdateSlot(ctx, mon, update)
	require.NoError(t, err)
	assert.Equal(t, models.Friday, moved.DayOfWeek)

	_, err = svc.UpdateSlot(ctx, 999, update)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, svc.DeleteSlot(ctx, mon, ""))
	assert.Equal(t, models.ActiveNo, db.slots[mon].IsActive)
	require.ErrorIs(t, svc.DeleteSlot(ctx, 999, ""), apperrors.ErrNotFound)
}
