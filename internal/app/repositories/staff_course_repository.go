package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/college/academics/internal/app/models"
	"github.com/college/academics/internal/pkg/logger"
)

var staffCourseColumns = columns("staffCourseId", "staffId", "courseCode", "isActive")

// StaffCourseRepository handles StaffCourse database operations
type StaffCourseRepository struct {
	baseRepository
}

// NewStaffCourseRepository creates a new StaffCourseRepository
func NewStaffCourseRepository(db *pgxpool.Pool) *StaffCourseRepository {
	return &StaffCourseRepository{baseRepository: newBaseRepository(db)}
}

// Create assigns a staff member to a course and returns the assignment id
func (r *StaffCourseRepository) Create(ctx context.Context, sc *models.StaffCourse) (int64, error) {
	id, err := r.insertReturningID(ctx, r.db, r.sb.Insert("StaffCourse").
		Columns("staffId", "courseCode", "isActive", "createdBy", "updatedBy").
		Values(sc.StaffID, sc.CourseCode, string(sc.IsActive), sc.CreatedBy, sc.UpdatedBy),
		"staffCourseId")
	if err != nil {
		logger.Error().Err(err).Int64("staffID", sc.StaffID).Str("courseCode", sc.CourseCode).Msg("Error creating staff course")
		return 0, fmt.Errorf("error creating staff course: %w", err)
	}
	return id, nil
}

// AssignmentExists checks the (staffId, courseCode) natural key
func (r *StaffCourseRepository) AssignmentExists(ctx context.Context, staffID int64, courseCode string) (bool, error) {
	return r.exists(ctx, "StaffCourse", squirrel.Eq{"staffId": staffID, "courseCode": courseCode})
}

// ListByStaff retrieves the courses assigned to a staff member
func (r *StaffCourseRepository) ListByStaff(ctx context.Context, staffID int64) ([]*models.StaffCourse, error) {
	return r.list(ctx, squirrel.Eq{"staffId": staffID})
}

// ListByCourse retrieves the staff assigned to a course
func (r *StaffCourseRepository) ListByCourse(ctx context.Context, courseCode string) ([]*models.StaffCourse, error) {
	return r.list(ctx, squirrel.Eq{"courseCode": courseCode})
}

func (r *StaffCourseRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*models.StaffCourse, error) {
	items, err := collectRows[models.StaffCourse](ctx, r.db, r.sb.Select(staffCourseColumns...).
		From("StaffCourse").
		Where(where).
		OrderBy("staffCourseId"))
	if err != nil {
		logger.Error().Err(err).Msg("Error querying staff courses")
		return nil, fmt.Errorf("error querying staff courses: %w", err)
	}
	return items, nil
}

// SoftDelete deactivates an assignment
func (r *StaffCourseRepository) SoftDelete(ctx context.Context, id int64, updatedBy string) error {
	return r.softDelete(ctx, "StaffCourse", squirrel.Eq{"staffCourseId": id}, updatedBy)
}
