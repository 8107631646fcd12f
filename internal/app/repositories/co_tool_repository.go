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

var coToolColumns = columns("toolId", "coId", "toolName", "weightage", "isActive")

// COToolRepository handles COTool database operations
type COToolRepository struct {
	baseRepository
}

// NewCOToolRepository creates a new COToolRepository
func NewCOToolRepository(db *pgxpool.Pool) *COToolRepository {
	return &COToolRepository{baseRepository: newBaseRepository(db)}
}

// Create inserts a tool and returns its id
func (r *COToolRepository) Create(ctx context.Context, tool *models.COTool) (int64, error) {
	id, err := r.insertReturningID(ctx, r.db, r.sb.Insert("COTool").
		Columns("coId", "toolName", "weightage", "isActive", "createdBy", "updatedBy").
		Values(tool.COID, tool.ToolName, tool.Weightage, string(tool.IsActive), tool.CreatedBy, tool.UpdatedBy),
		"toolId")
	if err != nil {
		logger.Error().Err(err).Int64("coID", tool.COID).Msg("Error creating CO tool")
		return 0, fmt.Errorf("error creating CO tool: %w", err)
	}
	return id, nil
}

// GetByID retrieves a tool by id
func (r *COToolRepository) GetByID(ctx context.Context, id int64) (*models.COTool, error) {
	return collectOne[models.COTool](ctx, r.db, r.sb.Select(coToolColumns...).
		From("COTool").
		Where(squirrel.Eq{"toolId": id}))
}

// ListByOutcome retrieves the tools measuring an outcome
func (r *COToolRepository) ListByOutcome(ctx context.Context, coID int64) ([]*models.COTool, error) {
	items, err := collectRows[models.COTool](ctx, r.db, r.sb.Select(coToolColumns...).
		From("COTool").
		Where(squirrel.Eq{"coId": coID}).
		OrderBy("toolId"))
	if err != nil {
		logger.Error().Err(err).Int64("coID", coID).Msg("Error querying CO tools")
		return nil, fmt.Errorf("error querying CO tools: %w", err)
	}
	return items, nil
}

// Update rewrites a tool and returns the stored row
func (r *COToolRepository) Update(ctx context.Context, tool *models.COTool) (*models.COTool, error) {
	updated, err := updateReturning[models.COTool](ctx, r.db, r.sb.Update("COTool").
		SetMap(map[string]interface{}{
			"toolName":  tool.ToolName,
			"weightage": tool.Weightage,
			"isActive":  string(tool.IsActive),
			"updatedBy": tool.UpdatedBy,
		}).
		Where(squirrel.Eq{"toolId": tool.ToolID}), coToolColumns)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("toolID", tool.ToolID).Msg("Error updating CO tool")
		return nil, fmt.Errorf("error updating CO tool: %w", err)
	}
	return updated, nil
}

// SoftDelete deactivates a tool
func (r *COToolRepository) SoftDelete(ctx context.Context, id int64, updatedBy string) error {
	return r.softDelete(ctx, "COTool", squirrel.Eq{"toolId": id}, updatedBy)
}
