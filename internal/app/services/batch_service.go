package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/college/academics/internal/app/models"
	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/pkg/apperrors"
	"github.com/college/academics/internal/pkg/validation"
)

// BatchStore is the Batch persistence the service needs
type BatchStore interface {
	batchLookup
	Create(ctx context.Context, batch *models.Batch) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Batch, error)
	GetAll(ctx context.Context) ([]*models.Batch, error)
	Update(ctx context.Context, batch *models.Batch) (*models.Batch, error)
	SoftDelete(ctx context.Context, id int64, updatedBy string) error
}

// batchLookup resolves batches by id or natural key.
type batchLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
	FindByKey(ctx context.Context, degree, branch, batch string) (*models.Batch, error)
}

// BatchService defines the interface for batch-related operations
type BatchService interface {
	CreateBatch(ctx context.Context, req *dto.CreateBatchRequest) (int64, error)
	GetAllBatches(ctx context.Context) ([]*models.Batch, error)
	GetBatchByID(ctx context.Context, id int64) (*models.Batch, error)
	UpdateBatch(ctx context.Context, id int64, req *dto.UpdateBatchRequest) (*models.Batch, error)
	DeleteBatch(ctx context.Context, id int64, updatedBy string) error
}

type batchServiceImpl struct {
	batches BatchStore
}

// NewBatchService creates a new batch service instance
func NewBatchService(batches BatchStore) BatchService {
	return &batchServiceImpl{batches: batches}
}

const batchExistsMsg = "Batch already exists for this degree, branch, and year"

// validateBatchYears checks that batchYears is "<start>-<end>" starting at batch.
func validateBatchYears(batch, batchYears string) error {
	if !validation.CompiledPatterns.BatchYear.MatchString(batch) {
		return apperrors.NewValidationError("batch must be a 4-digit year", "batch")
	}
	if !validation.CompiledPatterns.BatchYears.MatchString(batchYears) || !strings.HasPrefix(batchYears, batch+"-") {
		return apperrors.NewValidationError(fmt.Sprintf("batchYears must look like %s-YYYY", batch), "batchYears")
	}
	if batchYears[5:] <= batch {
		return apperrors.NewValidationError("batchYears must end after it starts", "batchYears")
	}
	return nil
}

// CreateBatch creates a new batch
func (s *batchServiceImpl) CreateBatch(ctx context.Context, req *dto.CreateBatchRequest) (int64, error) {
	if err := validation.Validate(req); err != nil {
		return 0, err
	}
	if err := validateBatchYears(req.Batch, req.BatchYears); err != nil {
		return 0, err
	}

	_, err := s.batches.FindByKey(ctx, req.Degree, req.Branch, req.Batch)
	switch {
	case err == nil:
		return 0, apperrors.NewConflictError(batchExistsMsg)
	case !isNotFound(err):
		return 0, apperrors.NewDatabaseError(err)
	}

	by := actor(req.CreatedBy)
	id, err := s.batches.Create(ctx, &models.Batch{
		Degree:     req.Degree,
		Branch:     req.Branch,
		Batch:      req.Batch,
		BatchYears: req.BatchYears,
		IsActive:   models.ActiveYes,
		Audit:      models.Audit{CreatedBy: by, UpdatedBy: by},
	})
	if err != nil {
		return 0, writeError(err, "Batch", batchExistsMsg)
	}
	return id, nil
}

// GetAllBatches retrieves all batches
func (s *batchServiceImpl) GetAllBatches(ctx context.Context) ([]*models.Batch, error) {
	batches, err := s.batches.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return batches, nil
}

// GetBatchByID retrieves a batch by ID
func (s *batchServiceImpl) GetBatchByID(ctx context.Context, id int64) (*models.Batch, error) {
	if err := requireID("batchId", id); err != nil {
		return nil, err
	}
	batch, err := s.batches.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "Batch with ID %d not found", id)
	}
	return batch, nil
}

// UpdateBatch updates an existing batch
func (s *batchServiceImpl) UpdateBatch(ctx context.Context, id int64, req *dto.UpdateBatchRequest) (*models.Batch, error) {
	if err := requireID("batchId", id); err != nil {
		return nil, err
	}
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	if err := validateBatchYears(req.Batch, req.BatchYears); err != nil {
		return nil, err
	}

	updated, err := s.batches.Update(ctx, &models.Batch{
		BatchID:    id,
		Degree:     req.Degree,
		Branch:     req.Branch,
		Batch:      req.Batch,
		BatchYears: req.BatchYears,
		IsActive:   models.ActiveFlag(req.IsActive),
		Audit:      models.Audit{UpdatedBy: actor(req.UpdatedBy)},
	})
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewNotFoundErrorf("Batch with ID %d not found", id)
		}
		return nil, writeError(err, "Batch", batchExistsMsg)
	}
	return updated, nil
}

// DeleteBatch deactivates a batch
func (s *batchServiceImpl) DeleteBatch(ctx context.Context, id int64, updatedBy string) error {
	if err := requireID("batchId", id); err != nil {
		return err
	}
	if err := s.batches.SoftDelete(ctx, id, *actor(updatedBy)); err != nil {
		return lookupError(err, "Batch with ID %d not found", id)
	}
	return nil
}
