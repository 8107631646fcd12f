package services

import (
	"context"

	"github.com/college/academics/internal/app/models"
	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/pkg/apperrors"
	"github.com/college/academics/internal/pkg/validation"
)

// StaffCourseStore is the StaffCourse persistence the service needs
type StaffCourseStore interface {
	Create(ctx context.Context, sc *models.StaffCourse) (int64, error)
	AssignmentExists(ctx context.Context, staffID int64, courseCode string) (bool, error)
	ListByStaff(ctx context.Context, staffID int64) ([]*models.StaffCourse, error)
	ListByCourse(ctx context.Context, courseCode string) ([]*models.StaffCourse, error)
	SoftDelete(ctx context.Context, id int64, updatedBy string) error
}

// StaffCourseService defines the interface for staff assignment operations
type StaffCourseService interface {
	AssignCourse(ctx context.Context, req *dto.CreateStaffCourseRequest) (int64, error)
	GetCoursesByStaff(ctx context.Context, staffID int64) ([]*models.StaffCourse, error)
	GetStaffByCourse(ctx context.Context, courseCode string) ([]*models.StaffCourse, error)
	DeleteAssignment(ctx context.Context, id int64, updatedBy string) error
}

type staffCourseServiceImpl struct {
	assignments StaffCourseStore
	users       userLookup
	courses     courseLookup
}

// NewStaffCourseService creates a new staff course service instance
func NewStaffCourseService(assignments StaffCourseStore, users userLookup, courses courseLookup) StaffCourseService {
	return &staffCourseServiceImpl{
		assignments: assignments,
		users:       users,
		courses:     courses,
	}
}

const staffCourseExistsMsg = "Staff member is already assigned to this course"

// AssignCourse assigns a STAFF user to a course
func (s *staffCourseServiceImpl) AssignCourse(ctx context.Context, req *dto.CreateStaffCourseRequest) (int64, error) {
	if err := validation.Validate(req); err != nil {
		return 0, err
	}
	if err := requireStaff(ctx, s.users, req.StaffID); err != nil {
		return 0, err
	}

	found, err := s.courses.Exists(ctx, req.CourseCode)
	if err := requireParent(found, err, "Course with code %s not found", req.CourseCode); err != nil {
		return 0, err
	}

	found, err = s.assignments.AssignmentExists(ctx, req.StaffID, req.CourseCode)
	if err := conflictIf(found, err, staffCourseExistsMsg); err != nil {
		return 0, err
	}

	by := actor(req.CreatedBy)
	id, err := s.assignments.Create(ctx, &models.StaffCourse{
		StaffID:    req.StaffID,
		CourseCode: req.CourseCode,
		IsActive:   models.ActiveYes,
		Audit:      models.Audit{CreatedBy: by, UpdatedBy: by},
	})
	if err != nil {
		return 0, writeError(err, "StaffCourse", staffCourseExistsMsg)
	}
	return id, nil
}

// GetCoursesByStaff lists a staff member's course assignments
func (s *staffCourseServiceImpl) GetCoursesByStaff(ctx context.Context, staffID int64) ([]*models.StaffCourse, error) {
	if err := requireID("staffId", staffID); err != nil {
		return nil, err
	}
	items, err := s.assignments.ListByStaff(ctx, staffID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return items, nil
}

// GetStaffByCourse lists the staff assigned to a course
func (s *staffCourseServiceImpl) GetStaffByCourse(ctx context.Context, courseCode string) ([]*models.StaffCourse, error) {
	items, err := s.assignments.ListByCourse(ctx, courseCode)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return items, nil
}

// DeleteAssignment deactivates an assignment
func (s *staffCourseServiceImpl) DeleteAssignment(ctx context.Context, id int64, updatedBy string) error {
	if err := requireID("staffCourseId", id); err != nil {
		return err
	}
	if err := s.assignments.SoftDelete(ctx, id, *actor(updatedBy)); err != nil {
		return lookupError(err, "Staff course assignment with ID %d not found", id)
	}
	return nil
}
