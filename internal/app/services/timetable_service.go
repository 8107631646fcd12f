package services

import (
	"context"

	"github.com/college/academics/internal/app/models"
	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/pkg/apperrors"
	"github.com/college/academics/internal/pkg/validation"
)

// TimetableStore is the Timetable persistence the service needs
type TimetableStore interface {
	Create(ctx context.Context, slot *models.Timetable) (int64, error)
	SlotExists(ctx context.Context, slot *models.Timetable) (bool, error)
	ListByStaff(ctx context.Context, staffID int64) ([]*models.Timetable, error)
	ListByClass(ctx context.Context, degree, branch, batch string) ([]*models.Timetable, error)
	Update(ctx context.Context, slot *models.Timetable) (*models.Timetable, error)
	SoftDelete(ctx context.Context, id int64, updatedBy string) error
}

// TimetableService defines the interface for weekly schedule operations
type TimetableService interface {
	CreateSlot(ctx context.Context, req *dto.CreateTimetableRequest) (int64, error)
	GetTimetable(ctx context.Context, query dto.TimetableQuery) ([]*models.Timetable, error)
	UpdateSlot(ctx context.Context, id int64, req *dto.UpdateTimetableRequest) (*models.Timetable, error)
	DeleteSlot(ctx context.Context, id int64, updatedBy string) error
}

type timetableServiceImpl struct {
	slots   TimetableStore
	users   userLookup
	courses courseLookup
}

// NewTimetableService creates a new timetable service instance
func NewTimetableService(slots TimetableStore, users userLookup, courses courseLookup) TimetableService {
	return &timetableServiceImpl{
		slots:   slots,
		users:   users,
		courses: courses,
	}
}

const slotExistsMsg = "Timetable slot already exists"

func (s *timetableServiceImpl) checkParents(ctx context.Context, staffID int64, courseCode string) error {
	if err := requireStaff(ctx, s.users, staffID); err != nil {
		return err
	}
	found, err := s.courses.Exists(ctx, courseCode)
	return requireParent(found, err, "Course with code %s not found", courseCode)
}

// CreateSlot schedules a staff member's course in a weekly period
func (s *timetableServiceImpl) CreateSlot(ctx context.Context, req *dto.CreateTimetableRequest) (int64, error) {
	if err := validation.Validate(req); err != nil {
		return 0, err
	}
	if err := s.checkParents(ctx, req.StaffID, req.CourseCode); err != nil {
		return 0, err
	}

	by := actor(req.CreatedBy)
	slot := &models.Timetable{
		StaffID:      req.StaffID,
		CourseCode:   req.CourseCode,
		Degree:       req.Degree,
		Branch:       req.Branch,
		Batch:        req.Batch,
		DayOfWeek:    models.DayOfWeek(req.DayOfWeek),
		PeriodNumber: req.PeriodNumber,
		IsActive:     models.ActiveYes,
		Audit:        models.Audit{CreatedBy: by, UpdatedBy: by},
	}

	found, err := s.slots.SlotExists(ctx, slot)
	if err := conflictIf(found, err, slotExistsMsg); err != nil {
		return 0, err
	}

	id, err := s.slots.Create(ctx, slot)
	if err != nil {
		return 0, writeError(err, "Timetable", slotExistsMsg)
	}
	return id, nil
}

// GetTimetable returns a staff member's slots when staffId is given,
// otherwise the slots of the degree/branch/batch class.
func (s *timetableServiceImpl) GetTimetable(ctx context.Context, query dto.TimetableQuery) ([]*models.Timetable, error) {
	var (
		items []*models.Timetable
		err   error
	)
	if query.StaffID > 0 {
		items, err = s.slots.ListByStaff(ctx, query.StaffID)
	} else {
		if err := validation.Required(map[string]interface{}{
			"degree": query.Degree,
			"branch": query.Branch,
			"batch":  query.Batch,
		}); err != nil {
			return nil, err
		}
		items, err = s.slots.ListByClass(ctx, query.Degree, query.Branch, query.Batch)
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return items, nil
}

// UpdateSlot rewrites a slot and returns the stored row
func (s *timetableServiceImpl) UpdateSlot(ctx context.Context, id int64, req *dto.UpdateTimetableRequest) (*models.Timetable, error) {
	if err := requireID("timetableId", id); err != nil {
		return nil, err
	}
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	if err := s.checkParents(ctx, req.StaffID, req.CourseCode); err != nil {
		return nil, err
	}

	updated, err := s.slots.Update(ctx, &models.Timetable{
		TimetableID:  id,
		StaffID:      req.StaffID,
		CourseCode:   req.CourseCode,
		Degree:       req.Degree,
		Branch:       req.Branch,
		Batch:        req.Batch,
		DayOfWeek:    models.DayOfWeek(req.DayOfWeek),
		PeriodNumber: req.PeriodNumber,
		IsActive:     models.ActiveFlag(req.IsActive),
		Audit:        models.Audit{UpdatedBy: actor(req.UpdatedBy)},
	})
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewNotFoundErrorf("Timetable slot with ID %d not found", id)
		}
		return nil, writeError(err, "Timetable", slotExistsMsg)
	}
	return updated, nil
}

// DeleteSlot deactivates a slot
func (s *timetableServiceImpl) DeleteSlot(ctx context.Context, id int64, updatedBy string) error {
	if err := requireID("timetableId", id); err != nil {
		return err
	}
	if err := s.slots.SoftDelete(ctx, id, *actor(updatedBy)); err != nil {
		return lookupError(err, "Timetable slot with ID %d not found", id)
	}
	return nil
}
