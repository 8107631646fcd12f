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

var studentCOToolColumns = columns("studentToolId", "rollnumber", "toolId", "marksObtained", "isActive")

// StudentCOToolRepository handles StudentCOTool (marks) database operations
type StudentCOToolRepository struct {
	baseRepository
}

// NewStudentCOToolRepository creates a new StudentCOToolRepository
func NewStudentCOToolRepository(db *pgxpool.Pool) *StudentCOToolRepository {
	return &StudentCOToolRepository{baseRepository: newBaseRepository(db)}
}

// Create records a mark and returns its id
func (r *StudentCOToolRepository) Create(ctx context.Context, mark *models.StudentCOTool) (int64, error) {
	id, err := r.insertReturningID(ctx, r.db, r.sb.Insert("StudentCOTool").
		Columns("rollnumber", "toolId", "marksObtained", "isActive", "createdBy", "updatedBy").
		Values(mark.Rollnumber, mark.ToolID, mark.MarksObtained, string(mark.IsActive), mark.CreatedBy, mark.UpdatedBy),
		"studentToolId")
	if err != nil {
		logger.Error().Err(err).Str("rollnumber", mark.Rollnumber).Int64("toolID", mark.ToolID).Msg("Error creating student mark")
		return 0, fmt.Errorf("error creating student mark: %w", err)
	}
	return id, nil
}

// GetByID retrieves a mark by id
func (r *StudentCOToolRepository) GetByID(ctx context.Context, id int64) (*models.StudentCOTool, error) {
	return collectOne[models.StudentCOTool](ctx, r.db, r.sb.Select(studentCOToolColumns...).
		From("StudentCOTool").
		Where(squirrel.Eq{"studentToolId": id}))
}

// MarkExists checks the (rollnumber, toolId) natural key
func (r *StudentCOToolRepository) MarkExists(ctx context.Context, rollnumber string, toolID int64) (bool, error) {
	return r.exists(ctx, "StudentCOTool", squirrel.Eq{"rollnumber": rollnumber, "toolId": toolID})
}

// ListByTool retrieves every mark recorded against a tool
func (r *StudentCOToolRepository) ListByTool(ctx context.Context, toolID int64) ([]*models.StudentCOTool, error) {
	items, err := collectRows[models.StudentCOTool](ctx, r.db, r.sb.Select(studentCOToolColumns...).
		From("StudentCOTool").
		Where(squirrel.Eq{"toolId": toolID}).
		OrderBy("rollnumber"))
	if err != nil {
		logger.Error().Err(err).Int64("toolID", toolID).Msg("Error querying student marks")
		return nil, fmt.Errorf("error querying student marks: %w", err)
	}
	return items, nil
}

// Update rewrites a mark and returns the stored row
func (r *StudentCOToolRepository) Update(ctx context.Context, mark *models.StudentCOTool) (*models.StudentCOTool, error) {
	updated, err := updateReturning[models.StudentCOTool](ctx, r.db, r.sb.Update("StudentCOTool").
		SetMap(map[string]interface{}{
			"marksObtained": mark.MarksObtained,
			"isActive":      string(mark.IsActive),
			"updatedBy":     mark.UpdatedBy,
		}).
		Where(squirrel.Eq{"studentToolId": mark.StudentToolID}), studentCOToolColumns)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("studentToolID", mark.StudentToolID).Msg("Error updating student mark")
		return nil, fmt.Errorf("error updating student mark: %w", err)
	}
	return updated, nil
}
