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

var courseColumns = columns(
	"courseCode", "semesterId", "batchId", "courseName", "courseType",
	"courseCategory", "minMark", "maxMark", "isActive",
)

// CourseRepository handles Course database operations. Courses are keyed by
// their code.
type CourseRepository struct {
	baseRepository
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{baseRepository: newBaseRepository(db)}
}

func courseInsert(sb squirrel.StatementBuilderType, course *models.Course) squirrel.InsertBuilder {
	return sb.Insert("Course").
		Columns("courseCode", "semesterId", "batchId", "courseName", "courseType", "courseCategory",
			"minMark", "maxMark", "isActive", "createdBy", "updatedBy").
		Values(course.CourseCode, course.SemesterID, course.BatchID, course.CourseName,
			string(course.CourseType), string(course.CourseCategory), course.MinMark, course.MaxMark,
			string(course.IsActive), course.CreatedBy, course.UpdatedBy)
}

func courseUpdate(sb squirrel.StatementBuilderType, course *models.Course) squirrel.UpdateBuilder {
	return sb.Update("Course").
		SetMap(map[string]interface{}{
			"semesterId":     course.SemesterID,
			"batchId":        course.BatchID,
			"courseName":     course.CourseName,
			"courseType":     string(course.CourseType),
			"courseCategory": string(course.CourseCategory),
			"minMark":        course.MinMark,
			"maxMark":        course.MaxMark,
			"isActive":       string(course.IsActive),
			"updatedBy":      course.UpdatedBy,
		}).
		Where(squirrel.Eq{"courseCode": course.CourseCode})
}

// Create inserts a course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	sql, args, err := courseInsert(r.sb, course).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("courseCode", course.CourseCode).Msg("Error creating course")
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetByCode retrieves a course by its code
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	return collectOne[models.Course](ctx, r.db, r.sb.Select(courseColumns...).
		From("Course").
		Where(squirrel.Eq{"courseCode": code}))
}

// GetAll retrieves every course
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	return r.list(ctx, nil)
}

// GetBySemester retrieves the courses of one semester
func (r *CourseRepository) GetBySemester(ctx context.Context, semesterID int64) ([]*models.Course, error) {
	return r.list(ctx, squirrel.Eq{"semesterId": semesterID})
}

func (r *CourseRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*models.Course, error) {
	query := r.sb.Select(courseColumns...).From("Course").OrderBy("courseCode")
	if where != nil {
		query = query.Where(where)
	}

	courses, err := collectRows[models.Course](ctx, r.db, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying courses")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	return courses, nil
}

// Exists checks that a course code is present
func (r *CourseRepository) Exists(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, "Course", squirrel.Eq{"courseCode": code})
}

// Update rewrites a course and returns the stored row
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) (*models.Course, error) {
	updated, err := updateReturning[models.Course](ctx, r.db, courseUpdate(r.sb, course), courseColumns)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("courseCode", course.CourseCode).Msg("Error updating course")
		return nil, fmt.Errorf("error updating course: %w", err)
	}
	return updated, nil
}

// SoftDelete deactivates a course
func (r *CourseRepository) SoftDelete(ctx context.Context, code, updatedBy string) error {
	return r.softDelete(ctx, "Course", squirrel.Eq{"courseCode": code}, updatedBy)
}
