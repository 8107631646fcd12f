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

// CourseStore is the Course persistence the service needs
type CourseStore interface {
	courseLookup
	Create(ctx context.Context, course *models.Course) error
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetBySemester(ctx context.Context, semesterID int64) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) (*models.Course, error)
	SoftDelete(ctx context.Context, code, updatedBy string) error
}

// semesterLookup loads a semester to check which batch it belongs to.
type semesterLookup interface {
	GetByID(ctx context.Context, id int64) (*models.Semester, error)
}

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (string, error)
	GetCoursesBySemester(ctx context.Context, semesterID int64) ([]*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	GetCourse(ctx context.Context, code string) (*models.Course, error)
	UpdateCourse(ctx context.Context, code string, req *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, code, updatedBy string) error
}

type courseServiceImpl struct {
	courses   CourseStore
	semesters semesterLookup
	batches   batchLookup
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore, semesters semesterLookup, batches batchLookup) CourseService {
	return &courseServiceImpl{
		courses:   courses,
		semesters: semesters,
		batches:   batches,
	}
}

func courseExistsMsg(code string) string {
	return fmt.Sprintf("Course with code %s already exists", code)
}

func checkMarkRange(minMark, maxMark int) error {
	if minMark > maxMark {
		return apperrors.NewValidationError("minMark must not exceed maxMark", "minMark", "maxMark")
	}
	return nil
}

// checkPlacement verifies the semester and batch exist and belong together.
func (s *courseServiceImpl) checkPlacement(ctx context.Context, semesterID, batchID int64) error {
	semester, err := s.semesters.GetByID(ctx, semesterID)
	if err != nil {
		return lookupError(err, "Semester with ID %d not found", semesterID)
	}

	found, err := s.batches.Exists(ctx, batchID)
	if err := requireParent(found, err, "Batch with ID %d not found", batchID); err != nil {
		return err
	}

	if semester.BatchID != batchID {
		return apperrors.NewValidationError(
			fmt.Sprintf("Semester %d does not belong to batch %d", semesterID, batchID), "batchId")
	}
	return nil
}

// CreateCourse adds a course to the semester named by the path
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (string, error) {
	if err := requireID("semesterId", req.SemesterID); err != nil {
		return "", err
	}
	req.CourseCode = strings.TrimSpace(req.CourseCode)
	if err := validation.Validate(req); err != nil {
		return "", err
	}
	if err := checkMarkRange(*req.MinMark, *req.MaxMark); err != nil {
		return "", err
	}
	if err := s.checkPlacement(ctx, req.SemesterID, req.BatchID); err != nil {
		return "", err
	}

	found, err := s.courses.Exists(ctx, req.CourseCode)
	if err := conflictIf(found, err, courseExistsMsg(req.CourseCode)); err != nil {
		return "", err
	}

	by := actor(req.CreatedBy)
	err = s.courses.Create(ctx, &models.Course{
		CourseCode:     req.CourseCode,
		SemesterID:     req.SemesterID,
		BatchID:        req.BatchID,
		CourseName:     req.CourseName,
		CourseType:     models.CourseType(req.CourseType),
		CourseCategory: models.CourseCategory(req.CourseCategory),
		MinMark:        *req.MinMark,
		MaxMark:        *req.MaxMark,
		IsActive:       activeFlag(req.IsActive),
		Audit:          models.Audit{CreatedBy: by, UpdatedBy: by},
	})
	if err != nil {
		return "", writeError(err, "Course", courseExistsMsg(req.CourseCode))
	}
	return req.CourseCode, nil
}

// GetCoursesBySemester retrieves the courses of one semester
func (s *courseServiceImpl) GetCoursesBySemester(ctx context.Context, semesterID int64) ([]*models.Course, error) {
	if err := requireID("semesterId", semesterID); err != nil {
		return nil, err
	}
	courses, err := s.courses.GetBySemester(ctx, semesterID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return courses, nil
}

// GetAllCourses retrieves all courses
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return courses, nil
}

// GetCourse retrieves a course by code
func (s *courseServiceImpl) GetCourse(ctx context.Context, code string) (*models.Course, error) {
	course, err := s.courses.GetByCode(ctx, code)
	if err != nil {
		return nil, lookupError(err, "Course with code %s not found", code)
	}
	return course, nil
}

// UpdateCourse rewrites a course and returns the stored row
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, code string, req *dto.UpdateCourseRequest) (*models.Course, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	if err := checkMarkRange(*req.MinMark, *req.MaxMark); err != nil {
		return nil, err
	}
	if err := s.checkPlacement(ctx, req.SemesterID, req.BatchID); err != nil {
		return nil, err
	}

	updated, err := s.courses.Update(ctx, &models.Course{
		CourseCode:     code,
		SemesterID:     req.SemesterID,
		BatchID:        req.BatchID,
		CourseName:     req.CourseName,
		CourseType:     models.CourseType(req.CourseType),
		CourseCategory: models.CourseCategory(req.CourseCategory),
		MinMark:        *req.MinMark,
		MaxMark:        *req.MaxMark,
		IsActive:       models.ActiveFlag(req.IsActive),
		Audit:          models.Audit{UpdatedBy: actor(req.UpdatedBy)},
	})
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewNotFoundErrorf("Course with code %s not found", code)
		}
		return nil, writeError(err, "Course", courseExistsMsg(code))
	}
	return updated, nil
}

// DeleteCourse deactivates a course
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, code, updatedBy string) error {
	if err := s.courses.SoftDelete(ctx, code, *actor(updatedBy)); err != nil {
		return lookupError(err, "Course with code %s not found", code)
	}
	return nil
}
