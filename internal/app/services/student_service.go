package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/college/academics/internal/app/models"
	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/app/repositories"
	"github.com/college/academics/internal/pkg/apperrors"
	"github.com/college/academics/internal/pkg/validation"
)

// StudentStore is the Student persistence the service needs
type StudentStore interface {
	studentLookup
	Create(ctx context.Context, student *models.Student) error
	GetByRollnumber(ctx context.Context, rollnumber string) (*models.Student, error)
	List(ctx context.Context, filter repositories.StudentFilter) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) (*models.Student, error)
	SoftDelete(ctx context.Context, rollnumber, updatedBy string) error
}

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (string, error)
	GetStudents(ctx context.Context, query dto.StudentQuery) ([]*models.Student, error)
	GetStudent(ctx context.Context, rollnumber string) (*models.Student, error)
	UpdateStudent(ctx context.Context, rollnumber string, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, rollnumber, updatedBy string) error
}

type studentServiceImpl struct {
	students StudentStore
	courses  courseLookup
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore, courses courseLookup) StudentService {
	return &studentServiceImpl{
		students: students,
		courses:  courses,
	}
}

func studentExistsMsg(rollnumber string) string {
	return fmt.Sprintf("Student with roll number %s already exists", rollnumber)
}

// CreateStudent enrols a student against an existing course
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (string, error) {
	req.Rollnumber = strings.TrimSpace(req.Rollnumber)
	if err := validation.Validate(req); err != nil {
		return "", err
	}

	found, err := s.courses.Exists(ctx, req.CourseCode)
	if err := requireParent(found, err, "Course with code %s not found", req.CourseCode); err != nil {
		return "", err
	}

	found, err = s.students.Exists(ctx, req.Rollnumber)
	if err := conflictIf(found, err, studentExistsMsg(req.Rollnumber)); err != nil {
		return "", err
	}

	by := actor(req.CreatedBy)
	err = s.students.Create(ctx, &models.Student{
		Rollnumber:     req.Rollnumber,
		Name:           req.Name,
		CourseCode:     req.CourseCode,
		Degree:         req.Degree,
		Branch:         req.Branch,
		Batch:          req.Batch,
		SemesterNumber: req.SemesterNumber,
		IsActive:       models.ActiveYes,
		Audit:          models.Audit{CreatedBy: by, UpdatedBy: by},
	})
	if err != nil {
		return "", writeError(err, "Student", studentExistsMsg(req.Rollnumber))
	}
	return req.Rollnumber, nil
}

// GetStudents lists students matching the optional filters
func (s *studentServiceImpl) GetStudents(ctx context.Context, query dto.StudentQuery) ([]*models.Student, error) {
	if err := validation.Validate(query); err != nil {
		return nil, err
	}
	students, err := s.students.List(ctx, repositories.StudentFilter{
		Degree:         query.Degree,
		Branch:         query.Branch,
		Batch:          query.Batch,
		SemesterNumber: query.SemesterNumber,
	})
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return students, nil
}

// GetStudent retrieves a student by roll number
func (s *studentServiceImpl) GetStudent(ctx context.Context, rollnumber string) (*models.Student, error) {
	student, err := s.students.GetByRollnumber(ctx, rollnumber)
	if err != nil {
		return nil, lookupError(err, "Student with roll number %s not found", rollnumber)
	}
	return student, nil
}

// UpdateStudent rewrites a student and returns the stored row
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, rollnumber string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	found, err := s.courses.Exists(ctx, req.CourseCode)
	if err := requireParent(found, err, "Course with code %s not found", req.CourseCode); err != nil {
		return nil, err
	}

	updated, err := s.students.Update(ctx, &models.Student{
		Rollnumber:     rollnumber,
		Name:           req.Name,
		CourseCode:     req.CourseCode,
		Degree:         req.Degree,
		Branch:         req.Branch,
		Batch:          req.Batch,
		SemesterNumber: req.SemesterNumber,
		IsActive:       models.ActiveFlag(req.IsActive),
		Audit:          models.Audit{UpdatedBy: actor(req.UpdatedBy)},
	})
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewNotFoundErrorf("Student with roll number %s not found", rollnumber)
		}
		return nil, writeError(err, "Student", studentExistsMsg(rollnumber))
	}
	return updated, nil
}

// DeleteStudent deactivates a student
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, rollnumber, updatedBy string) error {
	if err := s.students.SoftDelete(ctx, rollnumber, *actor(updatedBy)); err != nil {
		return lookupError(err, "Student with roll number %s not found", rollnumber)
	}
	return nil
}
