package services

import (
	"context"

	"github.com/college/academics/internal/app/models"
	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/pkg/apperrors"
	"github.com/college/academics/internal/pkg/validation"
)

// COToolStore is the COTool persistence the service needs
type COToolStore interface {
	toolLookup
	Create(ctx context.Context, tool *models.COTool) (int64, error)
	ListByOutcome(ctx context.Context, coID int64) ([]*models.COTool, error)
	Update(ctx context.Context, tool *models.COTool) (*models.COTool, error)
	SoftDelete(ctx context.Context, id int64, updatedBy string) error
}

// toolLookup loads an assessment tool by id.
type toolLookup interface {
	GetByID(ctx context.Context, id int64) (*models.COTool, error)
}

// COToolService defines the interface for assessment tool operations
type COToolService interface {
	CreateTool(ctx context.Context, req *dto.CreateCOToolRequest) (int64, error)
	GetToolsByOutcome(ctx context.Context, coID int64) ([]*models.COTool, error)
	UpdateTool(ctx context.Context, id int64, req *dto.UpdateCOToolRequest) (*models.COTool, error)
	DeleteTool(ctx context.Context, id int64, updatedBy string) error
}

type coToolServiceImpl struct {
	tools    COToolStore
	outcomes outcomeLookup
}

// NewCOToolService creates a new CO tool service instance
func NewCOToolService(tools COToolStore, outcomes outcomeLookup) COToolService {
	return &coToolServiceImpl{
		tools:    tools,
		outcomes: outcomes,
	}
}

func (s *coToolServiceImpl) requireOutcome(ctx context.Context, coID int64) error {
	if _, err := s.outcomes.GetByID(ctx, coID); err != nil {
		return lookupError(err, "Course outcome with ID %d not found", coID)
	}
	return nil
}

// CreateTool adds an assessment tool to an outcome
func (s *coToolServiceImpl) CreateTool(ctx context.Context, req *dto.CreateCOToolRequest) (int64, error) {
	if err := requireID("coId", req.COID); err != nil {
		return 0, err
	}
	if err := validation.Validate(req); err != nil {
		return 0, err
	}
	if err := s.requireOutcome(ctx, req.COID); err != nil {
		return 0, err
	}

	by := actor(req.CreatedBy)
	id, err := s.tools.Create(ctx, &models.COTool{
		COID:      req.COID,
		ToolName:  req.ToolName,
		Weightage: *req.Weightage,
		IsActive:  models.ActiveYes,
		Audit:     models.Audit{CreatedBy: by, UpdatedBy: by},
	})
	if err != nil {
		return 0, writeError(err, "COTool", "CO tool already exists")
	}
	return id, nil
}

// GetToolsByOutcome lists the tools of an outcome
func (s *coToolServiceImpl) GetToolsByOutcome(ctx context.Context, coID int64) ([]*models.COTool, error) {
	if err := requireID("coId", coID); err != nil {
		return nil, err
	}
	if err := s.requireOutcome(ctx, coID); err != nil {
		return nil, err
	}
	items, err := s.tools.ListByOutcome(ctx, coID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return items, nil
}

// UpdateTool rewrites a tool and returns the stored row
func (s *coToolServiceImpl) UpdateTool(ctx context.Context, id int64, req *dto.UpdateCOToolRequest) (*models.COTool, error) {
	if err := requireID("toolId", id); err != nil {
		return nil, err
	}
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	updated, err := s.tools.Update(ctx, &models.COTool{
		ToolID:    id,
		ToolName:  req.ToolName,
		Weightage: *req.Weightage,
		IsActive:  models.ActiveFlag(req.IsActive),
		Audit:     models.Audit{UpdatedBy: actor(req.UpdatedBy)},
	})
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewNotFoundErrorf("CO tool with ID %d not found", id)
		}
		return nil, writeError(err, "COTool", "CO tool already exists")
	}
	return updated, nil
}

// DeleteTool deactivates a tool
func (s *coToolServiceImpl) DeleteTool(ctx context.Context, id int64, updatedBy string) error {
	if err := requireID("toolId", id); err != nil {
		return err
	}
	if err := s.tools.SoftDelete(ctx, id, *actor(updatedBy)); err != nil {
		return lookupError(err, "CO tool with ID %d not found", id)
	}
	return nil
}
