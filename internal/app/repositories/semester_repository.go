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

var semesterColumns = columns(
	"semesterId", "batchId", "degree", "branch", "semesterNumber",
	dateColumn("startDate"), dateColumn("endDate"), "isActive",
)

// SemesterRepository handles Semester database operations
type SemesterRepository struct {
	baseRepository
}

// NewSemesterRepository creates a new SemesterRepository
func NewSemesterRepository(db *pgxpool.Pool) *SemesterRepository {
	return &SemesterRepository{baseRepository: newBaseRepository(db)}
}

// Create inserts a semester and returns its id. Dates are YYYY-MM-DD strings.
func (r *SemesterRepository) Create(ctx context.Context, semester *models.Semester) (int64, error) {
	id, err := r.insertReturningID(ctx, r.db, semesterInsert(r.sb, semester), "semesterId")
	if err != nil {
		logger.Error().Err(err).Int64("batchID", semester.BatchID).Msg("Error creating semester")
		return 0, fmt.Errorf("error creating semester: %w", err)
	}
	return id, nil
}

func semesterInsert(sb squirrel.StatementBuilderType, semester *models.Semester) squirrel.InsertBuilder {
	return sb.Insert("Semester").
		Columns("batchId", "degree", "branch", "semesterNumber", "startDate", "endDate", "createdBy", "updatedBy").
		Values(semester.BatchID, semester.Degree, semester.Branch, semester.SemesterNumber,
			semester.StartDate, semester.EndDate, semester.CreatedBy, semester.UpdatedBy)
}

func semesterUpdate(sb squirrel.StatementBuilderType, semester *models.Semester) squirrel.UpdateBuilder {
	return sb.Update("Semester").
		SetMap(map[string]interface{}{
			"batchId":        semester.BatchID,
			"degree":         semester.Degree,
			"branch":         semester.Branch,
			"semesterNumber": semester.SemesterNumber,
			"startDate":      semester.StartDate,
			"endDate":        semester.EndDate,
			"isActive":       string(semester.IsActive),
			"updatedBy":      semester.UpdatedBy,
		}).
		Where(squirrel.Eq{"semesterId": semester.SemesterID})
}

// semestersByBatchYearQuery matches semesters of every batch starting in year.
// Degree and branch are taken from the semester row, not the batch.
func semestersByBatchYearQuery(sb squirrel.StatementBuilderType, year, degree, branch string, semesterNumber int) squirrel.SelectBuilder {
	return sb.Select(semesterColumns...).
		From("Semester").
		Where(squirrel.Expr("batchId IN (SELECT batchId FROM Batch WHERE batch = ?)", year)).
		Where(squirrel.Eq{
			"degree":         degree,
			"branch":         branch,
			"semesterNumber": semesterNumber,
		}).
		OrderBy("semesterId")
}

// FindByBatchYear returns the semesters of the batches starting in year.
func (r *SemesterRepository) FindByBatchYear(ctx context.Context, year, degree, branch string, semesterNumber int) ([]*models.Semester, error) {
	semesters, err := collectRows[models.Semester](ctx, r.db, semestersByBatchYearQuery(r.sb, year, degree, branch, semesterNumber))
	if err != nil {
		logger.Error().Err(err).Str("batch", year).Msg("Error querying semesters by batch year")
		return nil, fmt.Errorf("error querying semester: %w", err)
	}
	return semesters, nil
}

// Find returns the semesters matching the natural key.
func (r *SemesterRepository) Find(ctx context.Context, batchID int64, degree, branch string, semesterNumber int) ([]*models.Semester, error) {
	semesters, err := collectRows[models.Semester](ctx, r.db, r.sb.Select(semesterColumns...).
		From("Semester").
		Where(squirrel.Eq{
			"batchId":        batchID,
			"degree":         degree,
			"branch":         branch,
			"semesterNumber": semesterNumber,
		}))
	if err != nil {
		logger.Error().Err(err).Int64("batchID", batchID).Msg("Error querying semester")
		return nil, fmt.Errorf("error querying semester: %w", err)
	}
	return semesters, nil
}

// GetAll retrieves every semester
func (r *SemesterRepository) GetAll(ctx context.Context) ([]*models.Semester, error) {
	semesters, err := collectRows[models.Semester](ctx, r.db, r.sb.Select(semesterColumns...).
		From("Semester").
		OrderBy("semesterId"))
	if err != nil {
		logger.Error().Err(err).Msg("Error querying semesters")
		return nil, fmt.Errorf("error querying semesters: %w", err)
	}
	return semesters, nil
}

// GetByID retrieves a semester by id
func (r *SemesterRepository) GetByID(ctx context.Context, id int64) (*models.Semester, error) {
	return collectOne[models.Semester](ctx, r.db, r.sb.Select(semesterColumns...).
		From("Semester").
		Where(squirrel.Eq{"semesterId": id}))
}

// Update rewrites a semester, stamping updatedDate, and returns the stored row
func (r *SemesterRepository) Update(ctx context.Context, semester *models.Semester) (*models.Semester, error) {
	updated, err := updateReturning[models.Semester](ctx, r.db, semesterUpdate(r.sb, semester), semesterColumns)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("semesterID", semester.SemesterID).Msg("Error updating semester")
		return nil, fmt.Errorf("error updating semester: %w", err)
	}
	return updated, nil
}

// Delete removes a semester row. Referencing courses make the database
// reject it (ON DELETE RESTRICT).
func (r *SemesterRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("Semester").
		Where(squirrel.Eq{"semesterId": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete semester query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("semesterID", id).Msg("Error deleting semester")
		return fmt.Errorf("error deleting semester: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Exists checks that a semester id is present
func (r *SemesterRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "Semester", squirrel.Eq{"semesterId": id})
}
