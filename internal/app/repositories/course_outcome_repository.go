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

var courseOutcomeColumns = columns("coId", "courseCode", "coNumber", "weightage", "isActive")

// CourseOutcomeRepository handles CourseOutcome database operations
type CourseOutcomeRepository struct {
	baseRepository
}

// NewCourseOutcomeRepository creates a new CourseOutcomeRepository
func NewCourseOutcomeRepository(db *pgxpool.Pool) *CourseOutcomeRepository {
	return &CourseOutcomeRepository{baseRepository: newBaseRepository(db)}
}

// Create inserts an outcome and returns its id
func (r *CourseOutcomeRepository) Create(ctx context.Context, co *models.CourseOutcome) (int64, error) {
	id, err := r.insertReturningID(ctx, r.db, r.sb.Insert("CourseOutcome").
		Columns("courseCode", "coNumber", "weightage", "isActive", "createdBy", "updatedBy").
		Values(co.CourseCode, co.CONumber, co.Weightage, string(co.IsActive), co.CreatedBy, co.UpdatedBy),
		"coId")
	if err != nil {
		logger.Error().Err(err).Str("courseCode", co.CourseCode).Msg("Error creating course outcome")
		return 0, fmt.Errorf("error creating course outcome: %w", err)
	}
	return id, nil
}

// GetByID retrieves an outcome by id
func (r *CourseOutcomeRepository) GetByID(ctx context.Context, id int64) (*models.CourseOutcome, error) {
	return collectOne[models.CourseOutcome](ctx, r.db, r.sb.Select(courseOutcomeColumns...).
		From("CourseOutcome").
		Where(squirrel.Eq{"coId": id}))
}

// NumberExists checks the (courseCode, coNumber) natural key
func (r *CourseOutcomeRepository) NumberExists(ctx context.Context, courseCode, coNumber string) (bool, error) {
	return r.exists(ctx, "CourseOutcome", squirrel.Eq{"courseCode": courseCode, "coNumber": coNumber})
}

// ListByCourse retrieves the outcomes of a course
func (r *CourseOutcomeRepository) ListByCourse(ctx context.Context, courseCode string) ([]*models.CourseOutcome, error) {
	items, err := collectRows[models.CourseOutcome](ctx, r.db, r.sb.Select(courseOutcomeColumns...).
		From("CourseOutcome").
		Where(squirrel.Eq{"courseCode": courseCode}).
		OrderBy("coNumber"))
	if err != nil {
		logger.Error().Err(err).Str("courseCode", courseCode).Msg("Error querying course outcomes")
		return nil, fmt.Errorf("error querying course outcomes: %w", err)
	}
	return items, nil
}

// Update rewrites an outcome and returns the stored row
func (r *CourseOutcomeRepository) Update(ctx context.Context, co *models.CourseOutcome) (*models.CourseOutcome, error) {
	updated, err := updateReturning[models.CourseOutcome](ctx, r.db, r.sb.Update("CourseOutcome").
		SetMap(map[string]interface{}{
			"coNumber":  co.CONumber,
			"weightage": co.Weightage,
			"isActive":  string(co.IsActive),
			"updatedBy": co.UpdatedBy,
		}).
		Where(squirrel.Eq{"coId": co.COID}), courseOutcomeColumns)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("coID", co.COID).Msg("Error updating course outcome")
		return nil, fmt.Errorf("error updating course outcome: %w", err)
	}
	return updated, nil
}

// SoftDelete deactivates an outcome
func (r *CourseOutcomeRepository) SoftDelete(ctx context.Context, id int64, updatedBy string) error {
	return r.softDelete(ctx, "CourseOutcome", squirrel.Eq{"coId": id}, updatedBy)
}
