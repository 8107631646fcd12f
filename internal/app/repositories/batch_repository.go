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

var batchColumns = columns("batchId", "degree", "branch", "batch", "batchYears", "isActive")

// BatchRepository handles Batch database operations
type BatchRepository struct {
	baseRepository
}

// NewBatchRepository creates a new BatchRepository
func NewBatchRepository(db *pgxpool.Pool) *BatchRepository {
	return &BatchRepository{baseRepository: newBaseRepository(db)}
}

func batchInsert(sb squirrel.StatementBuilderType, batch *models.Batch) squirrel.InsertBuilder {
	return sb.Insert("Batch").
		Columns("degree", "branch", "batch", "batchYears", "isActive", "createdBy", "updatedBy").
		Values(batch.Degree, batch.Branch, batch.Batch, batch.BatchYears, string(batch.IsActive), batch.CreatedBy, batch.UpdatedBy)
}

func batchUpdate(sb squirrel.StatementBuilderType, batch *models.Batch) squirrel.UpdateBuilder {
	return sb.Update("Batch").
		SetMap(map[string]interface{}{
			"degree":     batch.Degree,
			"branch":     batch.Branch,
			"batch":      batch.Batch,
			"batchYears": batch.BatchYears,
			"isActive":   string(batch.IsActive),
			"updatedBy":  batch.UpdatedBy,
		}).
		Where(squirrel.Eq{"batchId": batch.BatchID})
}

// Create inserts a batch and returns its id
func (r *BatchRepository) Create(ctx context.Context, batch *models.Batch) (int64, error) {
	id, err := r.insertReturningID(ctx, r.db, batchInsert(r.sb, batch), "batchId")
	if err != nil {
		logger.Error().Err(err).Str("batch", batch.Batch).Msg("Error creating batch")
		return 0, fmt.Errorf("error creating batch: %w", err)
	}
	return id, nil
}

// GetByID retrieves a batch by id
func (r *BatchRepository) GetByID(ctx context.Context, id int64) (*models.Batch, error) {
	return collectOne[models.Batch](ctx, r.db, r.sb.Select(batchColumns...).
		From("Batch").
		Where(squirrel.Eq{"batchId": id}))
}

// FindByKey resolves a batch by its natural key.
func (r *BatchRepository) FindByKey(ctx context.Context, degree, branch, batch string) (*models.Batch, error) {
	return collectOne[models.Batch](ctx, r.db, r.sb.Select(batchColumns...).
		From("Batch").
		Where(squirrel.Eq{"degree": degree, "branch": branch, "batch": batch}))
}

// GetAll retrieves every batch
func (r *BatchRepository) GetAll(ctx context.Context) ([]*models.Batch, error) {
	batches, err := collectRows[models.Batch](ctx, r.db, r.sb.Select(batchColumns...).
		From("Batch").
		OrderBy("batch DESC", "degree", "branch"))
	if err != nil {
		logger.Error().Err(err).Msg("Error querying batches")
		return nil, fmt.Errorf("error querying batches: %w", err)
	}
	return batches, nil
}

// Exists checks that a batch id is present
func (r *BatchRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "Batch", squirrel.Eq{"batchId": id})
}

// ExistsYear checks that some batch starts in year
func (r *BatchRepository) ExistsYear(ctx context.Context, year string) (bool, error) {
	return r.exists(ctx, "Batch", squirrel.Eq{"batch": year})
}

// Update rewrites a batch and returns the stored row
func (r *BatchRepository) Update(ctx context.Context, batch *models.Batch) (*models.Batch, error) {
	updated, err := updateReturning[models.Batch](ctx, r.db, batchUpdate(r.sb, batch), batchColumns)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("batchID", batch.BatchID).Msg("Error updating batch")
		return nil, fmt.Errorf("error updating batch: %w", err)
	}
	return updated, nil
}

// SoftDelete deactivates a batch
func (r *BatchRepository) SoftDelete(ctx context.Context, id int64, updatedBy string) error {
	return r.softDelete(ctx, "Batch", squirrel.Eq{"batchId": id}, updatedBy)
}
