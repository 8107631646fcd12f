package services

import (
	"context"
	"strconv"

	"github.com/college/academics/internal/app/models"
	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/pkg/apperrors"
	"github.com/college/academics/internal/pkg/dberrors"
	"github.com/college/academics/internal/pkg/validation"
)

// SemesterStore is the Semester persistence the service needs
type SemesterStore interface {
	Create(ctx context.Context, semester *models.Semester) (int64, error)
	Find(ctx context.Context, batchID int64, degree, branch string, semesterNumber int) ([]*models.Semester, error)
	FindByBatchYear(ctx context.Context, year, degree, branch string, semesterNumber int) ([]*models.Semester, error)
	GetAll(ctx context.Context) ([]*models.Semester, error)
	GetByID(ctx context.Context, id int64) (*models.Semester, error)
	Update(ctx context.Context, semester *models.Semester) (*models.Semester, error)
	Delete(ctx context.Context, id int64) error
}

// SemesterService defines the interface for semester-related operations
type SemesterService interface {
	CreateSemester(ctx context.Context, req *dto.CreateSemesterRequest) (int64, error)
	GetSemesters(ctx context.Context, query dto.SemesterQuery) ([]*models.Semester, error)
	GetAllSemesters(ctx context.Context) ([]*models.Semester, error)
	UpdateSemester(ctx context.Context, id int64, req *dto.UpdateSemesterRequest) (*models.Semester, error)
	DeleteSemester(ctx context.Context, id int64) error
}

// semesterBatchLookup adds the start-year check used by GET /semester.
type semesterBatchLookup interface {
	batchLookup
	ExistsYear(ctx context.Context, year string) (bool, error)
}

type semesterServiceImpl struct {
	semesters SemesterStore
	batches   semesterBatchLookup
}

// NewSemesterService creates a new semester service instance
func NewSemesterService(semesters SemesterStore, batches semesterBatchLookup) SemesterService {
	return &semesterServiceImpl{
		semesters: semesters,
		batches:   batches,
	}
}

const semesterExistsMsg = "Semester already exists for this batch, degree, and branch"

// normalizeTerm returns both dates as YYYY-MM-DD and checks their order.
func normalizeTerm(startDate, endDate string) (string, string, error) {
	start, err := validation.NormalizeDate("startDate", startDate)
	if err != nil {
		return "", "", err
	}
	end, err := validation.NormalizeDate("endDate", endDate)
	if err != nil {
		return "", "", err
	}
	if start > end {
		return "", "", apperrors.NewValidationError("startDate must not be after endDate", "startDate", "endDate")
	}
	return start, end, nil
}

// CreateSemester creates a semester after checking its batch and natural key
func (s *semesterServiceImpl) CreateSemester(ctx context.Context, req *dto.CreateSemesterRequest) (int64, error) {
	if err := validation.Validate(req); err != nil {
		return 0, err
	}
	start, end, err := normalizeTerm(req.StartDate, req.EndDate)
	if err != nil {
		return 0, err
	}

	found, err := s.batches.Exists(ctx, req.BatchID)
	if err := requireParent(found, err, "Batch with ID %d not found", req.BatchID); err != nil {
		return 0, err
	}

	existing, err := s.semesters.Find(ctx, req.BatchID, req.Degree, req.Branch, req.SemesterNumber)
	if err != nil {
		return 0, apperrors.NewDatabaseError(err)
	}
	if len(existing) > 0 {
		return 0, apperrors.NewConflictError(semesterExistsMsg)
	}

	id, err := s.semesters.Create(ctx, &models.Semester{
		BatchID:        req.BatchID,
		Degree:         req.Degree,
		Branch:         req.Branch,
		SemesterNumber: req.SemesterNumber,
		StartDate:      start,
		EndDate:        end,
		IsActive:       models.ActiveYes,
		Audit:          models.Audit{CreatedBy: &req.CreatedBy, UpdatedBy: &req.UpdatedBy},
	})
	if err != nil {
		return 0, writeError(err, "Semester", semesterExistsMsg)
	}
	return id, nil
}

// GetSemesters returns the semesters of the batches starting in the queried
// year. Degree and branch filter the semester rows; only an unknown year is
// a 404.
func (s *semesterServiceImpl) GetSemesters(ctx context.Context, query dto.SemesterQuery) ([]*models.Semester, error) {
	if err := validation.Required(map[string]interface{}{
		"batch":          query.Batch,
		"degree":         query.Degree,
		"branch":         query.Branch,
		"semesterNumber": query.SemesterNumber,
	}); err != nil {
		return nil, err
	}
	semesterNumber, err := strconv.Atoi(query.SemesterNumber)
	if err != nil || !validation.InRange(semesterNumber, validation.MinSemesterNumber, validation.MaxSemesterNumber) {
		return nil, apperrors.NewValidationError("semesterNumber must be a number between 1 and 8", "semesterNumber")
	}

	found, err := s.batches.ExistsYear(ctx, query.Batch)
	if err := requireParent(found, err, "Batch %s not found", query.Batch); err != nil {
		return nil, err
	}

	semesters, err := s.semesters.FindByBatchYear(ctx, query.Batch, query.Degree, query.Branch, semesterNumber)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return semesters, nil
}

// GetAllSemesters retrieves all semesters
func (s *semesterServiceImpl) GetAllSemesters(ctx context.Context) ([]*models.Semester, error) {
	semesters, err := s.semesters.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return semesters, nil
}

// UpdateSemester rewrites a semester and returns the stored row
func (s *semesterServiceImpl) UpdateSemester(ctx context.Context, id int64, req *dto.UpdateSemesterRequest) (*models.Semester, error) {
	if err := requireID("semesterId", id); err != nil {
		return nil, err
	}
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	start, end, err := normalizeTerm(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	found, err := s.batches.Exists(ctx, req.BatchID)
	if err := requireParent(found, err, "Batch with ID %d not found", req.BatchID); err != nil {
		return nil, err
	}

	updated, err := s.semesters.Update(ctx, &models.Semester{
		SemesterID:     id,
		BatchID:        req.BatchID,
		Degree:         req.Degree,
		Branch:         req.Branch,
		SemesterNumber: req.SemesterNumber,
		StartDate:      start,
		EndDate:        end,
		IsActive:       models.ActiveFlag(req.IsActive),
		Audit:          models.Audit{UpdatedBy: &req.UpdatedBy},
	})
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewNotFoundError("Semester not found")
		}
		return nil, writeError(err, "Semester", semesterExistsMsg)
	}
	return updated, nil
}

// DeleteSemester removes a semester. It is the only hard delete; the database
// refuses it while courses still reference the semester.
func (s *semesterServiceImpl) DeleteSemester(ctx context.Context, id int64) error {
	if err := requireID("semesterId", id); err != nil {
		return err
	}
	if err := s.semesters.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return apperrors.NewNotFoundError("Semester not found")
		}
		return dberrors.TranslateDelete(err)
	}
	return nil
}
