package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/app/services"
	"github.com/college/academics/internal/middleware"
)

// CourseController handles course operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse adds a course to a semester
// @Summary Create a course
// @Description The semester is taken from the path. isActive defaults to YES and createdBy to admin.
// @Tags courses
// @Accept json
// @Produce json
// @Param semesterId path int true "Semester ID"
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.CourseCreatedResponse "Course added successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or course already exists"
// @Failure 404 {object} dto.ErrorResponse "Semester or batch not found"
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /semester/{semesterId}/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	semesterID, ok := pathID(ctx, "semesterId")
	if !ok {
		return
	}

	var req dto.CreateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	req.SemesterID = semesterID

	code, err := c.courseService.CreateCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewCreatedResponse("Course added successfully", "courseId", code))
}

// GetCoursesBySemester lists the courses of a semester
// @Summary List semester courses
// @Tags courses
// @Produce json
// @Param semesterId path int true "Semester ID"
// @Success 200 {object} dto.ListResponse{data=[]models.Course}
// @Failure 400 {object} dto.ErrorResponse "Invalid semester ID"
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /semester/{semesterId}/courses [get]
func (c *CourseController) GetCoursesBySemester(ctx *gin.Context) {
	semesterID, ok := pathID(ctx, "semesterId")
	if !ok {
		return
	}

	courses, err := c.courseService.GetCoursesBySemester(ctx, semesterID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(courses))
}

// GetAllCourses lists every course
// @Summary List courses
// @Tags courses
// @Produce json
// @Success 200 {object} dto.ListResponse{data=[]models.Course}
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(courses))
}

// GetCourse returns one course by code
// @Summary Get course
// @Tags courses
// @Produce json
// @Param courseCode path string true "Course code"
// @Success 200 {object} dto.ListResponse{data=models.Course}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /course/{courseCode} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.courseService.GetCourse(ctx, pathKey(ctx, "courseCode"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(course))
}

// UpdateCourse replaces a course
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Param courseCode path string true "Course code"
// @Param request body dto.UpdateCourseRequest true "Course information"
// @Success 200 {object} dto.UpdatedResponse{data=models.Course} "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Course, semester or batch not found"
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /course/{courseCode} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, pathKey(ctx, "courseCode"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUpdatedResponse(course, "Course updated successfully"))
}

// DeleteCourse deactivates a course
// @Summary Delete a course
// @Description Soft delete: isActive becomes NO
// @Tags courses
// @Produce json
// @Param courseCode path string true "Course code"
// @Param updatedBy query string false "Actor recorded as updatedBy"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /course/{courseCode} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	code := pathKey(ctx, "courseCode")
	if err := c.courseService.DeleteCourse(ctx, code, deletedBy(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(fmt.Sprintf("Course with code %s deleted successfully", code)))
}
