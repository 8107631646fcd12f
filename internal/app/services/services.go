package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/college/academics/internal/app/models"
	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/app/repositories"
	"github.com/college/academics/internal/pkg/apperrors"
	"github.com/college/academics/internal/pkg/dberrors"
)

// Services defined in this package:
// - BatchService, SemesterService, CourseService: curriculum structure
// - UserService, StaffCourseService, TimetableService: staff and scheduling
// - StudentService, AttendanceService: enrolment and attendance
// - CourseOutcomeService, COToolService, StudentMarkService: outcome assessment

// Services holds every service instance
type Services struct {
	BatchService         BatchService
	UserService          UserService
	SemesterService      SemesterService
	CourseService        CourseService
	StudentService       StudentService
	StaffCourseService   StaffCourseService
	CourseOutcomeService CourseOutcomeService
	COToolService        COToolService
	StudentMarkService   StudentMarkService
	TimetableService     TimetableService
	AttendanceService    AttendanceService
}

// NewServices wires the services onto the repositories
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		BatchService:         NewBatchService(repos.BatchRepository),
		UserService:          NewUserService(repos.UserRepository),
		SemesterService:      NewSemesterService(repos.SemesterRepository, repos.BatchRepository),
		CourseService:        NewCourseService(repos.CourseRepository, repos.SemesterRepository, repos.BatchRepository),
		StudentService:       NewStudentService(repos.StudentRepository, repos.CourseRepository),
		StaffCourseService:   NewStaffCourseService(repos.StaffCourseRepository, repos.UserRepository, repos.CourseRepository),
		CourseOutcomeService: NewCourseOutcomeService(repos.CourseOutcomeRepository, repos.CourseRepository),
		COToolService:        NewCOToolService(repos.COToolRepository, repos.CourseOutcomeRepository),
		StudentMarkService: NewStudentMarkService(repos.StudentCOToolRepository, repos.StudentRepository,
			repos.COToolRepository, repos.CourseOutcomeRepository, repos.CourseRepository),
		TimetableService: NewTimetableService(repos.TimetableRepository, repos.UserRepository, repos.CourseRepository),
		AttendanceService: NewAttendanceService(repos.DayAttendanceRepository, repos.PeriodAttendanceRepository,
			repos.StudentRepository, repos.UserRepository, repos.CourseRepository),
	}
}

// actor returns who performed a write, defaulting to the admin account.
func actor(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		s = dto.DefaultActor
	}
	return &s
}

// activeFlag maps an optional YES/NO input onto the flag, defaulting to YES.
func activeFlag(s string) models.ActiveFlag {
	if s == "" {
		return models.ActiveYes
	}
	return models.ActiveFlag(s)
}

// requireID rejects a missing or non-positive path id.
func requireID(name string, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError(name+" is required", name)
	}
	return nil
}

// requireParent turns a false existence check into a NotFoundError.
func requireParent(found bool, err error, format string, args ...interface{}) error {
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	if !found {
		return apperrors.NewNotFoundErrorf(format, args...)
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, repositories.ErrNotFound)
}

// lookupError maps a repository read or update failure: a missing row becomes
// a NotFoundError with the given message, anything else a DatabaseError.
func lookupError(err error, format string, args ...interface{}) error {
	if isNotFound(err) {
		return apperrors.NewNotFoundErrorf(format, args...)
	}
	return apperrors.NewDatabaseError(err)
}

// writeError maps an insert/update failure. A unique violation becomes a
// conflict carrying conflictMsg so the database arbitrates concurrent creates.
func writeError(err error, entity, conflictMsg string) error {
	if dberrors.IsUniqueViolation(err) {
		return apperrors.NewConflictError(conflictMsg)
	}
	return dberrors.TranslateWrite(err, entity)
}

// conflictIf turns a positive duplicate check into a ConflictError.
func conflictIf(found bool, err error, message string) error {
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	if found {
		return apperrors.NewConflictError(message)
	}
	return nil
}

// requireStaff loads a user and checks the STAFF role.
func requireStaff(ctx context.Context, users userLookup, staffID int64) error {
	user, err := users.GetByID(ctx, staffID)
	if err != nil {
		return lookupError(err, "Staff user with ID %d not found", staffID)
	}
	if user.Role != models.RoleStaff {
		return apperrors.NewValidationError(fmt.Sprintf("User with ID %d is not a STAFF member", staffID), "staffId")
	}
	return nil
}

// userLookup is the read side of the Users table other services rely on.
type userLookup interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// courseLookup is the read side of the Course table other services rely on.
type courseLookup interface {
	Exists(ctx context.Context, code string) (bool, error)
	GetByCode(ctx context.Context, code string) (*models.Course, error)
}

// studentLookup is the read side of the Student table other services rely on.
type studentLookup interface {
	Exists(ctx context.Context, rollnumber string) (bool, error)
}
