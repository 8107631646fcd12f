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

var studentColumns = columns(
	"rollnumber", "name", "courseCode", "degree", "branch", "batch", "semesterNumber", "isActive",
)

// StudentFilter narrows a student listing; zero values are ignored.
type StudentFilter struct {
	Degree         string
	Branch         string
	Batch          string
	SemesterNumber int
}

// StudentRepository handles Student database operations
type StudentRepository struct {
	baseRepository
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{baseRepository: newBaseRepository(db)}
}

// Create inserts a student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("Student").
		Columns("rollnumber", "name", "courseCode", "degree", "branch", "batch", "semesterNumber",
			"isActive", "createdBy", "updatedBy").
		Values(student.Rollnumber, student.Name, student.CourseCode, student.Degree, student.Branch,
			student.Batch, student.SemesterNumber, string(student.IsActive), student.CreatedBy, student.UpdatedBy).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("rollnumber", student.Rollnumber).Msg("Error creating student")
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetByRollnumber retrieves a student
func (r *StudentRepository) GetByRollnumber(ctx context.Context, rollnumber string) (*models.Student, error) {
	return collectOne[models.Student](ctx, r.db, r.sb.Select(studentColumns...).
		From("Student").
		Where(squirrel.Eq{"rollnumber": rollnumber}))
}

// Exists checks that a roll number is present
func (r *StudentRepository) Exists(ctx context.Context, rollnumber string) (bool, error) {
	return r.exists(ctx, "Student", squirrel.Eq{"rollnumber": rollnumber})
}

// List retrieves students matching filter
func (r *StudentRepository) List(ctx context.Context, filter StudentFilter) ([]*models.Student, error) {
	where := squirrel.Eq{}
	if filter.Degree != "" {
		where["degree"] = filter.Degree
	}
	if filter.Branch != "" {
		where["branch"] = filter.Branch
	}
	if filter.Batch != "" {
		where["batch"] = filter.Batch
	}
	if filter.SemesterNumber != 0 {
		where["semesterNumber"] = filter.SemesterNumber
	}

	students, err := collectRows[models.Student](ctx, r.db, r.sb.Select(studentColumns...).
		From("Student").
		Where(where).
		OrderBy("rollnumber"))
	if err != nil {
		logger.Error().Err(err).Msg("Error querying students")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	return students, nil
}

// Update rewrites a student and returns the stored row
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) (*models.Student, error) {
	updated, err := updateReturning[models.Student](ctx, r.db, r.sb.Update("Student").
		SetMap(map[string]interface{}{
			"name":           student.Name,
			"courseCode":     student.CourseCode,
			"degree":         student.Degree,
			"branch":         student.Branch,
			"batch":          student.Batch,
			"semesterNumber": student.SemesterNumber,
			"isActive":       string(student.IsActive),
			"updatedBy":      student.UpdatedBy,
		}).
		Where(squirrel.Eq{"rollnumber": student.Rollnumber}), studentColumns)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("rollnumber", student.Rollnumber).Msg("Error updating student")
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	return updated, nil
}

// SoftDelete deactivates a student
func (r *StudentRepository) SoftDelete(ctx context.Context, rollnumber, updatedBy string) error {
	return r.softDelete(ctx, "Student", squirrel.Eq{"rollnumber": rollnumber}, updatedBy)
}
