package services

import (
	"context"
	"fmt"

	"github.com/college/academics/internal/app/models"
	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/pkg/apperrors"
	"github.com/college/academics/internal/pkg/validation"
)

// CourseOutcomeStore is the CourseOutcome persistence the service needs
type CourseOutcomeStore interface {
	outcomeLookup
	Create(ctx context.Context, co *models.CourseOutcome) (int64, error)
	NumberExists(ctx context.Context, courseCode, coNumber string) (bool, error)
	ListByCourse(ctx context.Context, courseCode string) ([]*models.CourseOutcome, error)
	Update(ctx context.Context, co *models.CourseOutcome) (*models.CourseOutcome, error)
	SoftDelete(ctx context.Context, id int64, updatedBy string) error
}

// outcomeLookup loads a course outcome by id.
type outcomeLookup interface {
	GetByID(ctx context.Context, id int64) (*models.CourseOutcome, error)
}

// CourseOutcomeService defines the interface for course outcome operations
type CourseOutcomeService interface {
	CreateOutcome(ctx context.Context, req *dto.CreateCourseOutcomeRequest) (int64, error)
	GetOutcomesByCourse(ctx context.Context, courseCode string) ([]*models.CourseOutcome, error)
	UpdateOutcome(ctx context.Context, id int64, req *dto.UpdateCourseOutcomeRequest) (*models.CourseOutcome, error)
	DeleteOutcome(ctx context.Context, id int64, updatedBy string) error
}

type courseOutcomeServiceImpl struct {
	outcomes CourseOutcomeStore
	courses  courseLookup
}

// NewCourseOutcomeService creates a new course outcome service instance
func NewCourseOutcomeService(outcomes CourseOutcomeStore, courses courseLookup) CourseOutcomeService {
	return &courseOutcomeServiceImpl{
		outcomes: outcomes,
		courses:  courses,
	}
}

func outcomeExistsMsg(courseCode, coNumber string) string {
	return fmt.Sprintf("Course outcome %s already exists for course %s", coNumber, courseCode)
}

// CreateOutcome attaches a weighted outcome to a course
func (s *courseOutcomeServiceImpl) CreateOutcome(ctx context.Context, req *dto.CreateCourseOutcomeRequest) (int64, error) {
	if err := validation.Validate(req); err != nil {
		return 0, err
	}

	found, err := s.courses.Exists(ctx, req.CourseCode)
	if err := requireParent(found, err, "Course with code %s not found", req.CourseCode); err != nil {
		return 0, err
	}

	msg := outcomeExistsMsg(req.CourseCode, req.CONumber)
	found, err = s.outcomes.NumberExists(ctx, req.CourseCode, req.CONumber)
	if err := conflictIf(found, err, msg); err != nil {
		return 0, err
	}

	by := actor(req.CreatedBy)
	id, err := s.outcomes.Create(ctx, &models.CourseOutcome{
		CourseCode: req.CourseCode,
		CONumber:   req.CONumber,
		Weightage:  *req.Weightage,
		IsActive:   models.ActiveYes,
		Audit:      models.Audit{CreatedBy: by, UpdatedBy: by},
	})
	if err != nil {
		return 0, writeError(err, "CourseOutcome", msg)
	}
	return id, nil
}

// GetOutcomesByCourse lists a course's outcomes
func (s *courseOutcomeServiceImpl) GetOutcomesByCourse(ctx context.Context, courseCode string) ([]*models.CourseOutcome, error) {
	found, err := s.courses.Exists(ctx, courseCode)
	if err := requireParent(found, err, "Course with code %s not found", courseCode); err != nil {
		return nil, err
	}
	items, err := s.outcomes.ListByCourse(ctx, courseCode)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return items, nil
}

// UpdateOutcome rewrites an outcome and returns the stored row
func (s *courseOutcomeServiceImpl) UpdateOutcome(ctx context.Context, id int64, req *dto.UpdateCourseOutcomeRequest) (*models.CourseOutcome, error) {
	if err := requireID("coId", id); err != nil {
		return nil, err
	}
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	updated, err := s.outcomes.Update(ctx, &models.CourseOutcome{
		COID:      id,
		CONumber:  req.CONumber,
		Weightage: *req.Weightage,
		IsActive:  models.ActiveFlag(req.IsActive),
		Audit:     models.Audit{UpdatedBy: actor(req.UpdatedBy)},
	})
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewNotFoundErrorf("Course outcome with ID %d not found", id)
		}
		return nil, writeError(err, "CourseOutcome", fmt.Sprintf("Course outcome %s already exists for this course", req.CONumber))
	}
	return updated, nil
}

// DeleteOutcome deactivates an outcome
func (s *courseOutcomeServiceImpl) DeleteOutcome(ctx context.Context, id int64, updatedBy string) error {
	if err := requireID("coId", id); err != nil {
		return err
	}
	if err := s.outcomes.SoftDelete(ctx, id, *actor(updatedBy)); err != nil {
		return lookupError(err, "Course outcome with ID %d not found", id)
	}
	return nil
}
