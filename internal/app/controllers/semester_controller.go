package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/app/services"
	"github.com/college/academics/internal/middleware"
)

// SemesterController handles semester operations
type SemesterController struct {
	semesterService services.SemesterService
}

// NewSemesterController creates a new SemesterController
func NewSemesterController(semesterService services.SemesterService) *SemesterController {
	return &SemesterController{
		semesterService: semesterService,
	}
}

// CreateSemester handles semester creation
// @Summary Create a semester
// @Description Adds a semester to a batch. Dates accept any parseable form and are stored as YYYY-MM-DD.
// @Tags semesters
// @Accept json
// @Produce json
// @Param request body dto.CreateSemesterRequest true "Semester information"
// @Success 201 {object} dto.SemesterCreatedResponse "Semester added successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing fields or semester already exists"
// @Failure 404 {object} dto.ErrorResponse "Batch not found"
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /semester [post]
func (c *SemesterController) CreateSemester(ctx *gin.Context) {
	var req dto.CreateSemesterRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	id, err := c.semesterService.CreateSemester(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewCreatedResponse("Semester added successfully", "semesterId", id))
}

// GetSemesters returns the semesters of one batch
// @Summary Find semesters
// @Description Resolves the batch from batch year, degree and branch and returns its semesters as a bare array
// @Tags semesters
// @Produce json
// @Param batch query string true "Batch start year" example(2024)
// @Param degree query string true "Degree"
// @Param branch query string true "Branch"
// @Param semesterNumber query int true "Semester number (1-8)"
// @Success 200 {array} models.Semester
// @Failure 400 {object} dto.ErrorResponse "Missing query parameters"
// @Failure 404 {object} dto.ErrorResponse "Batch not found"
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /semester [get]
func (c *SemesterController) GetSemesters(ctx *gin.Context) {
	var query dto.SemesterQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}

	semesters, err := c.semesterService.GetSemesters(ctx, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, semesters)
}

// GetAllSemesters lists every semester
// @Summary List semesters
// @Tags semesters
// @Produce json
// @Success 200 {object} dto.ListResponse{data=[]models.Semester}
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /semesters [get]
func (c *SemesterController) GetAllSemesters(ctx *gin.Context) {
	semesters, err := c.semesterService.GetAllSemesters(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(semesters))
}

// UpdateSemester replaces a semester
// @Summary Update a semester
// @Tags semesters
// @Accept json
// @Produce json
// @Param semesterId path int true "Semester ID"
// @Param request body dto.UpdateSemesterRequest true "Semester information"
// @Success 200 {object} dto.UpdatedResponse{data=models.Semester} "Semester updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or duplicate semester"
// @Failure 404 {object} dto.ErrorResponse "Semester or batch not found"
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /semester/{semesterId} [put]
func (c *SemesterController) UpdateSemester(ctx *gin.Context) {
	id, ok := pathID(ctx, "semesterId")
	if !ok {
		return
	}

	var req dto.UpdateSemesterRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	semester, err := c.semesterService.UpdateSemester(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUpdatedResponse(semester, "Semester updated successfully"))
}

// DeleteSemester removes a semester
// @Summary Delete a semester
// @Description Hard delete; fails while courses still reference the semester
// @Tags semesters
// @Produce json
// @Param semesterId path int true "Semester ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid semester ID"
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /semester/{semesterId} [delete]
func (c *SemesterController) DeleteSemester(ctx *gin.Context) {
	id, ok := pathID(ctx, "semesterId")
	if !ok {
		return
	}

	if err := c.semesterService.DeleteSemester(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(fmt.Sprintf("Semester with id %d deleted successfully", id)))
}
