package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/app/services"
	"github.com/college/academics/internal/middleware"
)

// StudentController handles student enrolment
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent enrols a student
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} map[string]interface{} "Student added successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or roll number taken"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	roll, err := c.studentService.CreateStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewCreatedResponse("Student added successfully", "rollnumber", roll))
}

// GetStudents lists students of a class
// @Summary List students
// @Tags students
// @Produce json
// @Param degree query string false "Degree"
// @Param branch query string false "Branch"
// @Param batch query string false "Batch start year"
// @Param semesterNumber query int false "Semester number (1-8)"
// @Success 200 {object} dto.ListResponse{data=[]models.Student}
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	var query dto.StudentQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}

	students, err := c.studentService.GetStudents(ctx, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(students))
}

// GetStudent returns one student
// @Summary Get student
// @Tags students
// @Produce json
// @Param rollnumber path string true "Roll number"
// @Success 200 {object} dto.ListResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{rollnumber} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx, pathKey(ctx, "rollnumber"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(student))
}

// UpdateStudent replaces a student record
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Param rollnumber path string true "Roll number"
// @Param request body dto.UpdateStudentRequest true "Student information"
// @Success 200 {object} dto.UpdatedResponse{data=models.Student} "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Router /students/{rollnumber} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, pathKey(ctx, "rollnumber"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUpdatedResponse(student, "Student updated successfully"))
}

// DeleteStudent deactivates a student
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param rollnumber path string true "Roll number"
// @Param updatedBy query string false "Actor recorded as updatedBy"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{rollnumber} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	roll := pathKey(ctx, "rollnumber")
	if err := c.studentService.DeleteStudent(ctx, roll, deletedBy(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(fmt.Sprintf("Student %s deleted successfully", roll)))
}
