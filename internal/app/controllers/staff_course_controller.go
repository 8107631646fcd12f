package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/app/services"
	"github.com/college/academics/internal/middleware"
)

// StaffCourseController handles course assignments
type StaffCourseController struct {
	staffCourseService services.StaffCourseService
}

// NewStaffCourseController creates a new StaffCourseController
func NewStaffCourseController(staffCourseService services.StaffCourseService) *StaffCourseController {
	return &StaffCourseController{
		staffCourseService: staffCourseService,
	}
}

// AssignCourse assigns a course to a staff member
// @Summary Assign a course
// @Tags staff-courses
// @Accept json
// @Produce json
// @Param request body dto.CreateStaffCourseRequest true "Assignment"
// @Success 201 {object} map[string]interface{} "Course assigned successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input, user is not staff, or already assigned"
// @Failure 404 {object} dto.ErrorResponse "Staff or course not found"
// @Router /staff-courses [post]
func (c *StaffCourseController) AssignCourse(ctx *gin.Context) {
	var req dto.CreateStaffCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	id, err := c.staffCourseService.AssignCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewCreatedResponse("Course assigned successfully", "staffCourseId", id))
}

// GetCoursesByStaff lists the assignments of a staff member
// @Summary List staff courses
// @Tags staff-courses
// @Produce json
// @Param staffId path int true "Staff user ID"
// @Success 200 {object} dto.ListResponse{data=[]models.StaffCourse}
// @Failure 400 {object} dto.ErrorResponse "Invalid staff ID"
// @Router /staff/{staffId}/courses [get]
func (c *StaffCourseController) GetCoursesByStaff(ctx *gin.Context) {
	staffID, ok := pathID(ctx, "staffId")
	if !ok {
		return
	}

	items, err := c.staffCourseService.GetCoursesByStaff(ctx, staffID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(items))
}

// GetStaffByCourse lists who teaches a course
// @Summary List course staff
// @Tags staff-courses
// @Produce json
// @Param courseCode path string true "Course code"
// @Success 200 {object} dto.ListResponse{data=[]models.StaffCourse}
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /course/{courseCode}/staff [get]
func (c *StaffCourseController) GetStaffByCourse(ctx *gin.Context) {
	items, err := c.staffCourseService.GetStaffByCourse(ctx, pathKey(ctx, "courseCode"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(items))
}

// DeleteAssignment deactivates an assignment
// @Summary Remove an assignment
// @Tags staff-courses
// @Produce json
// @Param staffCourseId path int true "Assignment ID"
// @Param updatedBy query string false "Actor recorded as updatedBy"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid assignment ID"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /staff-courses/{staffCourseId} [delete]
func (c *StaffCourseController) DeleteAssignment(ctx *gin.Context) {
	id, ok := pathID(ctx, "staffCourseId")
	if !ok {
		return
	}

	if err := c.staffCourseService.DeleteAssignment(ctx, id, deletedBy(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(fmt.Sprintf("Staff course with id %d deleted successfully", id)))
}
