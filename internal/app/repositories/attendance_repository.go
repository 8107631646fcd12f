package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/college/academics/internal/app/models"
	database "github.com/college/academics/internal/db"
	"github.com/college/academics/internal/pkg/logger"
)

var dayAttendanceColumns = columns(
	"dayAttendanceId", "rollnumber", "degree", "branch", "batch", "semesterNumber",
	dateColumn("attendanceDate"), "status",
)

var periodAttendanceColumns = columns(
	"periodAttendanceId", "rollnumber", "staffId", "courseCode", "degree", "branch", "batch",
	"semesterNumber", "dayOfWeek", "periodNumber", dateColumn("attendanceDate"), "status",
)

// DayAttendanceRepository handles DayAttendance database operations
type DayAttendanceRepository struct {
	baseRepository
}

// NewDayAttendanceRepository creates a new DayAttendanceRepository
func NewDayAttendanceRepository(db *pgxpool.Pool) *DayAttendanceRepository {
	return &DayAttendanceRepository{baseRepository: newBaseRepository(db)}
}

func (r *DayAttendanceRepository) insert(a *models.DayAttendance) squirrel.InsertBuilder {
	return r.sb.Insert("DayAttendance").
		Columns("rollnumber", "degree", "branch", "batch", "semesterNumber", "attendanceDate",
			"status", "createdBy", "updatedBy").
		Values(a.Rollnumber, a.Degree, a.Branch, a.Batch, a.SemesterNumber, a.AttendanceDate,
			string(a.Status), a.CreatedBy, a.UpdatedBy)
}

// Create records one whole-day mark and returns its id
func (r *DayAttendanceRepository) Create(ctx context.Context, a *models.DayAttendance) (int64, error) {
	id, err := r.insertReturningID(ctx, r.db, r.insert(a), "dayAttendanceId")
	if err != nil {
		logger.Error().Err(err).Str("rollnumber", a.Rollnumber).Str("date", a.AttendanceDate).Msg("Error creating day attendance")
		return 0, fmt.Errorf("error creating day attendance: %w", err)
	}
	return id, nil
}

// CreateMany records a whole class in one transaction; any failure leaves
// no rows behind.
func (r *DayAttendanceRepository) CreateMany(ctx context.Context, records []*models.DayAttendance) ([]int64, error) {
	ids := make([]int64, 0, len(records))
	err := database.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, a := range records {
			id, err := r.insertReturningID(ctx, tx, r.insert(a), "dayAttendanceId")
			if err != nil {
				return fmt.Errorf("error creating day attendance for %s: %w", a.Rollnumber, err)
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Int("records", len(records)).Msg("Error creating day attendance batch")
		return nil, err
	}
	return ids, nil
}

// MarkExists checks the (rollnumber, attendanceDate) natural key
func (r *DayAttendanceRepository) MarkExists(ctx context.Context, rollnumber, date string) (bool, error) {
	return r.exists(ctx, "DayAttendance", squirrel.Eq{"rollnumber": rollnumber, "attendanceDate": date})
}

// List retrieves the marks of one class on one date
func (r *DayAttendanceRepository) List(ctx context.Context, date, degree, branch, batch string) ([]*models.DayAttendance, error) {
	items, err := collectRows[models.DayAttendance](ctx, r.db, r.sb.Select(dayAttendanceColumns...).
		From("DayAttendance").
		Where(squirrel.Eq{"attendanceDate": date, "degree": degree, "branch": branch, "batch": batch}).
		OrderBy("rollnumber"))
	if err != nil {
		logger.Error().Err(err).Str("date", date).Msg("Error querying day attendance")
		return nil, fmt.Errorf("error querying day attendance: %w", err)
	}
	return items, nil
}

// UpdateStatus changes a mark and returns the stored row
func (r *DayAttendanceRepository) UpdateStatus(ctx context.Context, id int64, status models.AttendanceStatus, updatedBy string) (*models.DayAttendance, error) {
	updated, err := updateReturning[models.DayAttendance](ctx, r.db, r.sb.Update("DayAttendance").
		Set("status", string(status)).
		Set("updatedBy", updatedBy).
		Where(squirrel.Eq{"dayAttendanceId": id}), dayAttendanceColumns)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("dayAttendanceID", id).Msg("Error updating day attendance")
		return nil, fmt.Errorf("error updating day attendance: %w", err)
	}
	return updated, nil
}

// PeriodAttendanceRepository handles PeriodAttendance database operations
type PeriodAttendanceRepository struct {
	baseRepository
}

// NewPeriodAttendanceRepository creates a new PeriodAttendanceRepository
func NewPeriodAttendanceRepository(db *pgxpool.Pool) *PeriodAttendanceRepository {
	return &PeriodAttendanceRepository{baseRepository: newBaseRepository(db)}
}

// Create records one period mark and returns its id
func (r *PeriodAttendanceRepository) Create(ctx context.Context, a *models.PeriodAttendance) (int64, error) {
	id, err := r.insertReturningID(ctx, r.db, r.sb.Insert("PeriodAttendance").
		Columns("rollnumber", "staffId", "courseCode", "degree", "branch", "batch", "semesterNumber",
			"dayOfWeek", "periodNumber", "attendanceDate", "status", "createdBy", "updatedBy").
		Values(a.Rollnumber, a.StaffID, a.CourseCode, a.Degree, a.Branch, a.Batch, a.SemesterNumber,
			string(a.DayOfWeek), a.PeriodNumber, a.AttendanceDate, string(a.Status), a.CreatedBy, a.UpdatedBy),
		"periodAttendanceId")
	if err != nil {
		logger.Error().Err(err).Str("rollnumber", a.Rollnumber).Str("courseCode", a.CourseCode).Msg("Error creating period attendance")
		return 0, fmt.Errorf("error creating period attendance: %w", err)
	}
	return id, nil
}

// MarkExists checks the (rollnumber, courseCode, attendanceDate, periodNumber) natural key
func (r *PeriodAttendanceRepository) MarkExists(ctx context.Context, rollnumber, courseCode, date string, periodNumber int) (bool, error) {
	return r.exists(ctx, "PeriodAttendance", squirrel.Eq{
		"rollnumber":     rollnumber,
		"courseCode":     courseCode,
		"attendanceDate": date,
		"periodNumber":   periodNumber,
	})
}

// List retrieves the marks of one course on one date
func (r *PeriodAttendanceRepository) List(ctx context.Context, courseCode, date string) ([]*models.PeriodAttendance, error) {
	items, err := collectRows[models.PeriodAttendance](ctx, r.db, r.sb.Select(periodAttendanceColumns...).
		From("PeriodAttendance").
		Where(squirrel.Eq{"courseCode": courseCode, "attendanceDate": date}).
		OrderBy("periodNumber", "rollnumber"))
	if err != nil {
		logger.Error().Err(err).Str("courseCode", courseCode).Str("date", date).Msg("Error querying period attendance")
		return nil, fmt.Errorf("error querying period attendance: %w", err)
	}
	return items, nil
}

// UpdateStatus changes a mark and returns the stored row
func (r *PeriodAttendanceRepository) UpdateStatus(ctx context.Context, id int64, status models.AttendanceStatus, updatedBy string) (*models.PeriodAttendance, error) {
	updated, err := updateReturning[models.PeriodAttendance](ctx, r.db, r.sb.Update("PeriodAttendance").
		Set("status", string(status)).
		Set("updatedBy", updatedBy).
		Where(squirrel.Eq{"periodAttendanceId": id}), periodAttendanceColumns)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("periodAttendanceID", id).Msg("Error updating period attendance")
		return nil, fmt.Errorf("error updating period attendance: %w", err)
	}
	return updated, nil
}
