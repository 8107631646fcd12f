package services

import (
	"context"
	"fmt"

	"github.com/college/academics/internal/app/models"
	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/pkg/apperrors"
	"github.com/college/academics/internal/pkg/validation"
)

// StudentMarkStore is the StudentCOTool persistence the service needs
type StudentMarkStore interface {
	Create(ctx context.Context, mark *models.StudentCOTool) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.StudentCOTool, error)
	MarkExists(ctx context.Context, rollnumber string, toolID int64) (bool, error)
	ListByTool(ctx context.Context, toolID int64) ([]*models.StudentCOTool, error)
	Update(ctx context.Context, mark *models.StudentCOTool) (*models.StudentCOTool, error)
}

// StudentMarkService defines the interface for per-tool student marks
type StudentMarkService interface {
	RecordMark(ctx context.Context, req *dto.CreateStudentMarkRequest) (int64, error)
	GetMarksByTool(ctx context.Context, toolID int64) ([]*models.StudentCOTool, error)
	UpdateMark(ctx context.Context, id int64, req *dto.UpdateStudentMarkRequest) (*models.StudentCOTool, error)
}

type studentMarkServiceImpl struct {
	marks    StudentMarkStore
	students studentLookup
	tools    toolLookup
	outcomes outcomeLookup
	courses  courseLookup
}

// NewStudentMarkService creates a new student mark service instance
func NewStudentMarkService(marks StudentMarkStore, students studentLookup, tools toolLookup,
	outcomes outcomeLookup, courses courseLookup) StudentMarkService {
	return &studentMarkServiceImpl{
		marks:    marks,
		students: students,
		tools:    tools,
		outcomes: outcomes,
		courses:  courses,
	}
}

const markExistsMsg = "Mark already recorded for this student and tool"

// checkMarkCeiling follows tool -> outcome -> course and rejects marks above
// the course's maxMark.
func (s *studentMarkServiceImpl) checkMarkCeiling(ctx context.Context, toolID int64, marks int) error {
	tool, err := s.tools.GetByID(ctx, toolID)
	if err != nil {
		return lookupError(err, "CO tool with ID %d not found", toolID)
	}
	outcome, err := s.outcomes.GetByID(ctx, tool.COID)
	if err != nil {
		return lookupError(err, "Course outcome with ID %d not found", tool.COID)
	}
	course, err := s.courses.GetByCode(ctx, outcome.CourseCode)
	if err != nil {
		return lookupError(err, "Course with code %s not found", outcome.CourseCode)
	}
	if marks > course.MaxMark {
		return apperrors.NewValidationError(
			fmt.Sprintf("marksObtained must not exceed %d", course.MaxMark), "marksObtained")
	}
	return nil
}

// RecordMark stores a student's mark on a tool
func (s *studentMarkServiceImpl) RecordMark(ctx context.Context, req *dto.CreateStudentMarkRequest) (int64, error) {
	if err := requireID("toolId", req.ToolID); err != nil {
		return 0, err
	}
	if err := validation.Validate(req); err != nil {
		return 0, err
	}

	found, err := s.students.Exists(ctx, req.Rollnumber)
	if err := requireParent(found, err, "Student with roll number %s not found", req.Rollnumber); err != nil {
		return 0, err
	}
	if err := s.checkMarkCeiling(ctx, req.ToolID, *req.MarksObtained); err != nil {
		return 0, err
	}

	found, err = s.marks.MarkExists(ctx, req.Rollnumber, req.ToolID)
	if err := conflictIf(found, err, markExistsMsg); err != nil {
		return 0, err
	}

	by := actor(req.CreatedBy)
	id, err := s.marks.Create(ctx, &models.StudentCOTool{
		Rollnumber:    req.Rollnumber,
		ToolID:        req.ToolID,
		MarksObtained: *req.MarksObtained,
		IsActive:      models.ActiveYes,
		Audit:         models.Audit{CreatedBy: by, UpdatedBy: by},
	})
	if err != nil {
		return 0, writeError(err, "StudentCOTool", markExistsMsg)
	}
	return id, nil
}

// GetMarksByTool lists the marks recorded on a tool
func (s *studentMarkServiceImpl) GetMarksByTool(ctx context.Context, toolID int64) ([]*models.StudentCOTool, error) {
	if err := requireID("toolId", toolID); err != nil {
		return nil, err
	}
	items, err := s.marks.ListByTool(ctx, toolID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return items, nil
}

// UpdateMark changes a recorded mark
func (s *studentMarkServiceImpl) UpdateMark(ctx context.Context, id int64, req *dto.UpdateStudentMarkRequest) (*models.StudentCOTool, error) {
	if err := requireID("studentToolId", id); err != nil {
		return nil, err
	}
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	current, err := s.marks.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "Student mark with ID %d not found", id)
	}
	if err := s.checkMarkCeiling(ctx, current.ToolID, *req.MarksObtained); err != nil {
		return nil, err
	}

	updated, err := s.marks.Update(ctx, &models.StudentCOTool{
		StudentToolID: id,
		MarksObtained: *req.MarksObtained,
		IsActive:      models.ActiveFlag(req.IsActive),
		Audit:         models.Audit{UpdatedBy: actor(req.UpdatedBy)},
	})
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewNotFoundErrorf("Student mark with ID %d not found", id)
		}
		return nil, writeError(err, "StudentCOTool", markExistsMsg)
	}
	return updated, nil
}
