package services

import (
	"context"
	"fmt"

	"github.com/college/academics/internal/app/models"
	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/pkg/apperrors"
	"github.com/college/academics/internal/pkg/validation"
)

// DayAttendanceStore is the DayAttendance persistence the service needs
type DayAttendanceStore interface {
	Create(ctx context.Context, a *models.DayAttendance) (int64, error)
	CreateMany(ctx context.Context, records []*models.DayAttendance) ([]int64, error)
	MarkExists(ctx context.Context, rollnumber, date string) (bool, error)
	List(ctx context.Context, date, degree, branch, batch string) ([]*models.DayAttendance, error)
	UpdateStatus(ctx context.Context, id int64, status models.AttendanceStatus, updatedBy string) (*models.DayAttendance, error)
}

// PeriodAttendanceStore is the PeriodAttendance persistence the service needs
type PeriodAttendanceStore interface {
	Create(ctx context.Context, a *models.PeriodAttendance) (int64, error)
	MarkExists(ctx context.Context, rollnumber, courseCode, date string, periodNumber int) (bool, error)
	List(ctx context.Context, courseCode, date string) ([]*models.PeriodAttendance, error)
	UpdateStatus(ctx context.Context, id int64, status models.AttendanceStatus, updatedBy string) (*models.PeriodAttendance, error)
}

// AttendanceService defines the interface for day and period attendance
type AttendanceService interface {
	MarkDay(ctx context.Context, req *dto.CreateDayAttendanceRequest) (int64, error)
	MarkDayBulk(ctx context.Context, req *dto.BulkDayAttendanceRequest) ([]int64, error)
	GetDayAttendance(ctx context.Context, query dto.DayAttendanceQuery) ([]*models.DayAttendance, error)
	UpdateDay(ctx context.Context, id int64, req *dto.UpdateAttendanceRequest) (*models.DayAttendance, error)
	MarkPeriod(ctx context.Context, req *dto.CreatePeriodAttendanceRequest) (int64, error)
	GetPeriodAttendance(ctx context.Context, query dto.PeriodAttendanceQuery) ([]*models.PeriodAttendance, error)
	UpdatePeriod(ctx context.Context, id int64, req *dto.UpdateAttendanceRequest) (*models.PeriodAttendance, error)
}

type attendanceServiceImpl struct {
	days     DayAttendanceStore
	periods  PeriodAttendanceStore
	students studentLookup
	users    userLookup
	courses  courseLookup
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(days DayAttendanceStore, periods PeriodAttendanceStore, students studentLookup,
	users userLookup, courses courseLookup) AttendanceService {
	return &attendanceServiceImpl{
		days:     days,
		periods:  periods,
		students: students,
		users:    users,
		courses:  courses,
	}
}

func dayMarkExistsMsg(rollnumber, date string) string {
	return fmt.Sprintf("Attendance already marked for %s on %s", rollnumber, date)
}

const periodMarkExistsMsg = "Attendance already marked for this student, course, date, and period"

func (s *attendanceServiceImpl) requireStudent(ctx context.Context, rollnumber string) error {
	found, err := s.students.Exists(ctx, rollnumber)
	return requireParent(found, err, "Student with roll number %s not found", rollnumber)
}

// dayRecord validates one request and converts it to a row with a normalized date.
func (s *attendanceServiceImpl) dayRecord(ctx context.Context, req *dto.CreateDayAttendanceRequest) (*models.DayAttendance, error) {
	date, err := validation.NormalizeDate("attendanceDate", req.AttendanceDate)
	if err != nil {
		return nil, err
	}
	if err := s.requireStudent(ctx, req.Rollnumber); err != nil {
		return nil, err
	}

	found, err := s.days.MarkExists(ctx, req.Rollnumber, date)
	if err := conflictIf(found, err, dayMarkExistsMsg(req.Rollnumber, date)); err != nil {
		return nil, err
	}

	by := actor(req.CreatedBy)
	return &models.DayAttendance{
		Rollnumber:     req.Rollnumber,
		Degree:         req.Degree,
		Branch:         req.Branch,
		Batch:          req.Batch,
		SemesterNumber: req.SemesterNumber,
		AttendanceDate: date,
		Status:         models.AttendanceStatus(req.Status),
		Audit:          models.Audit{CreatedBy: by, UpdatedBy: by},
	}, nil
}

// MarkDay records a student's whole-day attendance
func (s *attendanceServiceImpl) MarkDay(ctx context.Context, req *dto.CreateDayAttendanceRequest) (int64, error) {
	if err := validation.Validate(req); err != nil {
		return 0, err
	}
	record, err := s.dayRecord(ctx, req)
	if err != nil {
		return 0, err
	}

	id, err := s.days.Create(ctx, record)
	if err != nil {
		return 0, writeError(err, "DayAttendance", dayMarkExistsMsg(record.Rollnumber, record.AttendanceDate))
	}
	return id, nil
}

// MarkDayBulk records a list of whole-day marks atomically
func (s *attendanceServiceImpl) MarkDayBulk(ctx context.Context, req *dto.BulkDayAttendanceRequest) ([]int64, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(req.Records))
	records := make([]*models.DayAttendance, 0, len(req.Records))
	for i := range req.Records {
		record, err := s.dayRecord(ctx, &req.Records[i])
		if err != nil {
			return nil, err
		}
		key := record.Rollnumber + "|" + record.AttendanceDate
		if seen[key] {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("records contain %s on %s more than once", record.Rollnumber, record.AttendanceDate), "records")
		}
		seen[key] = true
		records = append(records, record)
	}

	ids, err := s.days.CreateMany(ctx, records)
	if err != nil {
		return nil, writeError(err, "DayAttendance", "Attendance already marked for one of the students")
	}
	return ids, nil
}

// GetDayAttendance lists the whole-day marks of a class on a date
func (s *attendanceServiceImpl) GetDayAttendance(ctx context.Context, query dto.DayAttendanceQuery) ([]*models.DayAttendance, error) {
	if err := validation.Required(map[string]interface{}{
		"date":   query.Date,
		"degree": query.Degree,
		"branch": query.Branch,
		"batch":  query.Batch,
	}); err != nil {
		return nil, err
	}
	date, err := validation.NormalizeDate("date", query.Date)
	if err != nil {
		return nil, err
	}

	items, err := s.days.List(ctx, date, query.Degree, query.Branch, query.Batch)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return items, nil
}

// UpdateDay changes a whole-day mark
func (s *attendanceServiceImpl) UpdateDay(ctx context.Context, id int64, req *dto.UpdateAttendanceRequest) (*models.DayAttendance, error) {
	if err := requireID("dayAttendanceId", id); err != nil {
		return nil, err
	}
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	updated, err := s.days.UpdateStatus(ctx, id, models.AttendanceStatus(req.Status), *actor(req.UpdatedBy))
	if err != nil {
		return nil, lookupError(err, "Day attendance with ID %d not found", id)
	}
	return updated, nil
}

// resolveDay derives the teaching day from the date and checks a supplied one
// agrees with it.
func resolveDay(date, supplied string) (models.DayOfWeek, error) {
	t, _ := validation.ParseDate(date)
	day, ok := models.DayOfWeekFromTime(t)
	if !ok {
		return "", apperrors.NewValidationError("attendanceDate falls on a Sunday", "attendanceDate")
	}
	if supplied != "" && models.DayOfWeek(supplied) != day {
		return "", apperrors.NewValidationError(
			fmt.Sprintf("dayOfWeek %s does not match attendanceDate (%s)", supplied, day), "dayOfWeek")
	}
	return day, nil
}

// MarkPeriod records a student's attendance for one period of a course
func (s *attendanceServiceImpl) MarkPeriod(ctx context.Context, req *dto.CreatePeriodAttendanceRequest) (int64, error) {
	if err := validation.Validate(req); err != nil {
		return 0, err
	}
	date, err := validation.NormalizeDate("attendanceDate", req.AttendanceDate)
	if err != nil {
		return 0, err
	}
	day, err := resolveDay(date, req.DayOfWeek)
	if err != nil {
		return 0, err
	}

	if err := s.requireStudent(ctx, req.Rollnumber); err != nil {
		return 0, err
	}
	if _, err := s.users.GetByID(ctx, req.StaffID); err != nil {
		return 0, lookupError(err, "Staff user with ID %d not found", req.StaffID)
	}
	found, err := s.courses.Exists(ctx, req.CourseCode)
	if err := requireParent(found, err, "Course with code %s not found", req.CourseCode); err != nil {
		return 0, err
	}

	found, err = s.periods.MarkExists(ctx, req.Rollnumber, req.CourseCode, date, req.PeriodNumber)
	if err := conflictIf(found, err, periodMarkExistsMsg); err != nil {
		return 0, err
	}

	by := actor(req.CreatedBy)
	id, err := s.periods.Create(ctx, &models.PeriodAttendance{
		Rollnumber:     req.Rollnumber,
		StaffID:        req.StaffID,
		CourseCode:     req.CourseCode,
		Degree:         req.Degree,
		Branch:         req.Branch,
		Batch:          req.Batch,
		SemesterNumber: req.SemesterNumber,
		DayOfWeek:      day,
		PeriodNumber:   req.PeriodNumber,
		AttendanceDate: date,
		Status:         models.AttendanceStatus(req.Status),
		Audit:          models.Audit{CreatedBy: by, UpdatedBy: by},
	})
	if err != nil {
		return 0, writeError(err, "PeriodAttendance", periodMarkExistsMsg)
	}
	return id, nil
}

// GetPeriodAttendance lists the period marks of a course on a date
func (s *attendanceServiceImpl) GetPeriodAttendance(ctx context.Context, query dto.PeriodAttendanceQuery) ([]*models.PeriodAttendance, error) {
	if err := validation.Required(map[string]interface{}{
		"courseCode": query.CourseCode,
		"date":       query.Date,
	}); err != nil {
		return nil, err
	}
	date, err := validation.NormalizeDate("date", query.Date)
	if err != nil {
		return nil, err
	}

	items, err := s.periods.List(ctx, query.CourseCode, date)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return items, nil
}

// UpdatePeriod changes a period mark
func (s *attendanceServiceImpl) UpdatePeriod(ctx context.Context, id int64, req *dto.UpdateAttendanceRequest) (*models.PeriodAttendance, error) {
	if err := requireID("periodAttendanceId", id); err != nil {
		return nil, err
	}
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	updated, err := s.periods.UpdateStatus(ctx, id, models.AttendanceStatus(req.Status), *actor(req.UpdatedBy))
	if err != nil {
		return nil, lookupError(err, "Period attendance with ID %d not found", id)
	}
	return updated, nil
}
