package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/app/services"
	"github.com/college/academics/internal/middleware"
)

// AttendanceController handles day and period attendance
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// MarkDay records a student's attendance for a day
// @Summary Mark day attendance
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.CreateDayAttendanceRequest true "Attendance"
// @Success 201 {object} map[string]interface{} "Attendance marked successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or already marked"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /attendance/day [post]
func (c *AttendanceController) MarkDay(ctx *gin.Context) {
	var req dto.CreateDayAttendanceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	id, err := c.attendanceService.MarkDay(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewCreatedResponse("Attendance marked successfully", "dayAttendanceId", id))
}

// MarkDayBulk records a whole class in one request
// @Summary Mark day attendance in bulk
// @Description All records are stored or none are
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.BulkDayAttendanceRequest true "Attendance records"
// @Success 201 {object} map[string]interface{} "Attendance marked successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or already marked"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /attendance/day/bulk [post]
func (c *AttendanceController) MarkDayBulk(ctx *gin.Context) {
	var req dto.BulkDayAttendanceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	ids, err := c.attendanceService.MarkDayBulk(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewCreatedResponse("Attendance marked successfully", "dayAttendanceIds", ids))
}

// GetDayAttendance lists a class's attendance for a date
// @Summary Get day attendance
// @Tags attendance
// @Produce json
// @Param date query string true "Date"
// @Param degree query string true "Degree"
// @Param branch query string true "Branch"
// @Param batch query string true "Batch start year"
// @Success 200 {object} dto.ListResponse{data=[]models.DayAttendance}
// @Failure 400 {object} dto.ErrorResponse "Missing query parameters"
// @Router /attendance/day [get]
func (c *AttendanceController) GetDayAttendance(ctx *gin.Context) {
	var query dto.DayAttendanceQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}

	rows, err := c.attendanceService.GetDayAttendance(ctx, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(rows))
}

// UpdateDay corrects a day mark
// @Summary Update day attendance
// @Tags attendance
// @Accept json
// @Produce json
// @Param dayAttendanceId path int true "Attendance ID"
// @Param request body dto.UpdateAttendanceRequest true "Status"
// @Success 200 {object} dto.UpdatedResponse{data=models.DayAttendance} "Attendance updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Attendance not found"
// @Router /attendance/day/{dayAttendanceId} [put]
func (c *AttendanceController) UpdateDay(ctx *gin.Context) {
	id, ok := pathID(ctx, "dayAttendanceId")
	if !ok {
		return
	}

	var req dto.UpdateAttendanceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	row, err := c.attendanceService.UpdateDay(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUpdatedResponse(row, "Attendance updated successfully"))
}

// MarkPeriod records attendance for one period of a course
// @Summary Mark period attendance
// @Description dayOfWeek is derived from attendanceDate when omitted
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.CreatePeriodAttendanceRequest true "Attendance"
// @Success 201 {object} map[string]interface{} "Attendance marked successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or already marked"
// @Failure 404 {object} dto.ErrorResponse "Student, staff or course not found"
// @Router /attendance/period [post]
func (c *AttendanceController) MarkPeriod(ctx *gin.Context) {
	var req dto.CreatePeriodAttendanceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	id, err := c.attendanceService.MarkPeriod(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewCreatedResponse("Attendance marked successfully", "periodAttendanceId", id))
}

// GetPeriodAttendance lists the period marks of a course on a date
// @Summary Get period attendance
// @Tags attendance
// @Produce json
// @Param courseCode query string true "Course code"
// @Param date query string true "Date"
// @Success 200 {object} dto.ListResponse{data=[]models.PeriodAttendance}
// @Failure 400 {object} dto.ErrorResponse "Missing query parameters"
// @Router /attendance/period [get]
func (c *AttendanceController) GetPeriodAttendance(ctx *gin.Context) {
	var query dto.PeriodAttendanceQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}

	rows, err := c.attendanceService.GetPeriodAttendance(ctx, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(rows))
}

// UpdatePeriod corrects a period mark
// @Summary Update period attendance
// @Tags attendance
// @Accept json
// @Produce json
// @Param periodAttendanceId path int true "Attendance ID"
// @Param request body dto.UpdateAttendanceRequest true "Status"
// @Success 200 {object} dto.UpdatedResponse{data=models.PeriodAttendance} "Attendance updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Attendance not found"
// @Router /attendance/period/{periodAttendanceId} [put]
func (c *AttendanceController) UpdatePeriod(ctx *gin.Context) {
	id, ok := pathID(ctx, "periodAttendanceId")
	if !ok {
		return
	}

	var req dto.UpdateAttendanceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	row, err := c.attendanceService.UpdatePeriod(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUpdatedResponse(row, "Attendance updated successfully"))
}
