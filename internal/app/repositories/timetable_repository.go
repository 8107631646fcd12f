package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/college/academics/internal/app/models"
	"github.com/college/academics/internal/pkg/logger"
)

var timetableColumns = columns(
	"timetableId", "staffId", "courseCode", "degree", "branch", "batch", "dayOfWeek", "periodNumber", "isActive",
)

// TimetableRepository handles Timetable database operations
type TimetableRepository struct {
	baseRepository
}

// NewTimetableRepository creates a new TimetableRepository
func NewTimetableRepository(db *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{baseRepository: newBaseRepository(db)}
}

// Create inserts a slot and returns its id
func (r *TimetableRepository) Create(ctx context.Context, slot *models.Timetable) (int64, error) {
	id, err := r.insertReturningID(ctx, r.db, r.sb.Insert("Timetable").
		Columns("staffId", "courseCode", "degree", "branch", "batch", "dayOfWeek", "periodNumber",
			"isActive", "createdBy", "updatedBy").
		Values(slot.StaffID, slot.CourseCode, slot.Degree, slot.Branch, slot.Batch, string(slot.DayOfWeek),
			slot.PeriodNumber, string(slot.IsActive), slot.CreatedBy, slot.UpdatedBy),
		"timetableId")
	if err != nil {
		logger.Error().Err(err).Int64("staffID", slot.StaffID).Str("courseCode", slot.CourseCode).Msg("Error creating timetable slot")
		return 0, fmt.Errorf("error creating timetable slot: %w", err)
	}
	return id, nil
}

// GetByID retrieves a slot by id
func (r *TimetableRepository) GetByID(ctx context.Context, id int64) (*models.Timetable, error) {
	return collectOne[models.Timetable](ctx, r.db, r.sb.Select(timetableColumns...).
		From("Timetable").
		Where(squirrel.Eq{"timetableId": id}))
}

// SlotExists checks the full slot natural key
func (r *TimetableRepository) SlotExists(ctx context.Context, slot *models.Timetable) (bool, error) {
	return r.exists(ctx, "Timetable", squirrel.Eq{
		"staffId":      slot.StaffID,
		"courseCode":   slot.CourseCode,
		"degree":       slot.Degree,
		"branch":       slot.Branch,
		"batch":        slot.Batch,
		"dayOfWeek":    string(slot.DayOfWeek),
		"periodNumber": slot.PeriodNumber,
	})
}

// ListByStaff retrieves a staff member's weekly slots
func (r *TimetableRepository) ListByStaff(ctx context.Context, staffID int64) ([]*models.Timetable, error) {
	return r.list(ctx, squirrel.Eq{"staffId": staffID})
}

// ListByClass retrieves the weekly slots of one degree/branch/batch
func (r *TimetableRepository) ListByClass(ctx context.Context, degree, branch, batch string) ([]*models.Timetable, error) {
	return r.list(ctx, squirrel.Eq{"degree": degree, "branch": branch, "batch": batch})
}

func (r *TimetableRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*models.Timetable, error) {
	items, err := collectRows[models.Timetable](ctx, r.db, r.sb.Select(timetableColumns...).
		From("Timetable").
		Where(where).
		OrderBy(
			"CASE dayOfWeek WHEN 'MON' THEN 1 WHEN 'TUE' THEN 2 WHEN 'WED' THEN 3 WHEN 'THU' THEN 4 WHEN 'FRI' THEN 5 ELSE 6 END",
			"periodNumber",
		))
	if err != nil {
		logger.Error().Err(err).Msg("Error querying timetable")
		return nil, fmt.Errorf("error querying timetable: %w", err)
	}
	return items, nil
}

// Update rewrites a slot and returns the stored row
func (r *TimetableRepository) Update(ctx context.Context, slot *models.Timetable) (*models.Timetable, error) {
	updated, err := updateReturning[models.Timetable](ctx, r.db, r.sb.Update("Timetable").
		SetMap(map[string]interface{}{
			"staffId":      slot.StaffID,
			"courseCode":   slot.CourseCode,
			"degree":       slot.Degree,
			"branch":       slot.Branch,
			"batch":        slot.Batch,
			"dayOfWeek":    string(slot.DayOfWeek),
			"periodNumber": slot.PeriodNumber,
			"isActive":     string(slot.IsActive),
			"updatedBy":    slot.UpdatedBy,
		}).
		Where(squirrel.Eq{"timetableId": slot.TimetableID}), timetableColumns)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("timetableID", slot.TimetableID).Msg("Error updating timetable slot")
		return nil, fmt.Errorf("error updating timetable slot: %w", err)
	}
	return updated, nil
}

// SoftDelete deactivates a slot
func (r *TimetableRepository) SoftDelete(ctx context.Context, id int64, updatedBy string) error {
	return r.softDelete(ctx, "Timetable", squirrel.Eq{"timetableId": id}, updatedBy)
}
