package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/app/services"
)

// Controllers holds one handler set per resource
type Controllers struct {
	Semester      *SemesterController
	Course        *CourseController
	Batch         *BatchController
	User          *UserController
	Student       *StudentController
	StaffCourse   *StaffCourseController
	CourseOutcome *CourseOutcomeController
	COTool        *COToolController
	StudentMark   *StudentMarkController
	Timetable     *TimetableController
	Attendance    *AttendanceController
	Health        *HealthController
}

// NewControllers builds the handlers on top of the services
func NewControllers(svcs *services.Services, db Pinger) *Controllers {
	return &Controllers{
		Semester:      NewSemesterController(svcs.SemesterService),
		Course:        NewCourseController(svcs.CourseService),
		Batch:         NewBatchController(svcs.BatchService),
		User:          NewUserController(svcs.UserService),
		Student:       NewStudentController(svcs.StudentService),
		StaffCourse:   NewStaffCourseController(svcs.StaffCourseService),
		CourseOutcome: NewCourseOutcomeController(svcs.CourseOutcomeService),
		COTool:        NewCOToolController(svcs.COToolService),
		StudentMark:   NewStudentMarkController(svcs.StudentMarkService),
		Timetable:     NewTimetableController(svcs.TimetableService),
		Attendance:    NewAttendanceController(svcs.AttendanceService),
		Health:        NewHealthController(db),
	}
}

// pathID parses a numeric path parameter. A malformed or non-positive value
// writes the 400 envelope naming the parameter and returns false.
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid "+name).
			WithFields(name))
		return 0, false
	}
	return id, true
}

// pathKey returns a textual path parameter such as a course code.
func pathKey(ctx *gin.Context, name string) string {
	return strings.TrimSpace(ctx.Param(name))
}

// deletedBy is the actor recorded by soft deletes, taken from ?updatedBy.
func deletedBy(ctx *gin.Context) string {
	return ctx.Query("updatedBy")
}
