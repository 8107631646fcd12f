package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/app/services"
	"github.com/college/academics/internal/middleware"
)

// CourseOutcomeController handles course outcomes (CO1, CO2, ...)
type CourseOutcomeController struct {
	outcomeService services.CourseOutcomeService
}

// NewCourseOutcomeController creates a new CourseOutcomeController
func NewCourseOutcomeController(outcomeService services.CourseOutcomeService) *CourseOutcomeController {
	return &CourseOutcomeController{
		outcomeService: outcomeService,
	}
}

// CreateOutcome adds an outcome to a course
// @Summary Create a course outcome
// @Tags outcomes
// @Accept json
// @Produce json
// @Param courseCode path string true "Course code"
// @Param request body dto.CreateCourseOutcomeRequest true "Outcome"
// @Success 201 {object} map[string]interface{} "Course outcome added successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or outcome already exists"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /course/{courseCode}/outcomes [post]
func (c *CourseOutcomeController) CreateOutcome(ctx *gin.Context) {
	var req dto.CreateCourseOutcomeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	req.CourseCode = pathKey(ctx, "courseCode")

	id, err := c.outcomeService.CreateOutcome(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewCreatedResponse("Course outcome added successfully", "coId", id))
}

// GetOutcomesByCourse lists the outcomes of a course
// @Summary List course outcomes
// @Tags outcomes
// @Produce json
// @Param courseCode path string true "Course code"
// @Success 200 {object} dto.ListResponse{data=[]models.CourseOutcome}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /course/{courseCode}/outcomes [get]
func (c *CourseOutcomeController) GetOutcomesByCourse(ctx *gin.Context) {
	items, err := c.outcomeService.GetOutcomesByCourse(ctx, pathKey(ctx, "courseCode"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(items))
}

// UpdateOutcome replaces an outcome
// @Summary Update a course outcome
// @Tags outcomes
// @Accept json
// @Produce json
// @Param coId path int true "Outcome ID"
// @Param request body dto.UpdateCourseOutcomeRequest true "Outcome"
// @Success 200 {object} dto.UpdatedResponse{data=models.CourseOutcome} "Course outcome updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or duplicate outcome number"
// @Failure 404 {object} dto.ErrorResponse "Outcome not found"
// @Router /outcomes/{coId} [put]
func (c *CourseOutcomeController) UpdateOutcome(ctx *gin.Context) {
	id, ok := pathID(ctx, "coId")
	if !ok {
		return
	}

	var req dto.UpdateCourseOutcomeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	outcome, err := c.outcomeService.UpdateOutcome(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUpdatedResponse(outcome, "Course outcome updated successfully"))
}

// DeleteOutcome deactivates an outcome
// @Summary Delete a course outcome
// @Tags outcomes
// @Produce json
// @Param coId path int true "Outcome ID"
// @Param updatedBy query string false "Actor recorded as updatedBy"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Outcome not found"
// @Router /outcomes/{coId} [delete]
func (c *CourseOutcomeController) DeleteOutcome(ctx *gin.Context) {
	id, ok := pathID(ctx, "coId")
	if !ok {
		return
	}

	if err := c.outcomeService.DeleteOutcome(ctx, id, deletedBy(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(fmt.Sprintf("Course outcome with id %d deleted successfully", id)))
}

// COToolController handles the assessment tools of an outcome
type COToolController struct {
	toolService services.COToolService
}

// NewCOToolController creates a new COToolController
func NewCOToolController(toolService services.COToolService) *COToolController {
	return &COToolController{
		toolService: toolService,
	}
}

// CreateTool adds an assessment tool to an outcome
// @Summary Create an assessment tool
// @Tags tools
// @Accept json
// @Produce json
// @Param coId path int true "Outcome ID"
// @Param request body dto.CreateCOToolRequest true "Tool"
// @Success 201 {object} map[string]interface{} "Tool added successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Outcome not found"
// @Router /outcomes/{coId}/tools [post]
func (c *COToolController) CreateTool(ctx *gin.Context) {
	coID, ok := pathID(ctx, "coId")
	if !ok {
		return
	}

	var req dto.CreateCOToolRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	req.COID = coID

	id, err := c.toolService.CreateTool(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewCreatedResponse("Tool added successfully", "toolId", id))
}

// GetToolsByOutcome lists the tools of an outcome
// @Summary List assessment tools
// @Tags tools
// @Produce json
// @Param coId path int true "Outcome ID"
// @Success 200 {object} dto.ListResponse{data=[]models.COTool}
// @Failure 404 {object} dto.ErrorResponse "Outcome not found"
// @Router /outcomes/{coId}/tools [get]
func (c *COToolController) GetToolsByOutcome(ctx *gin.Context) {
	coID, ok := pathID(ctx, "coId")
	if !ok {
		return
	}

	tools, err := c.toolService.GetToolsByOutcome(ctx, coID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(tools))
}

// UpdateTool replaces a tool
// @Summary Update an assessment tool
// @Tags tools
// @Accept json
// @Produce json
// @Param toolId path int true "Tool ID"
// @Param request body dto.UpdateCOToolRequest true "Tool"
// @Success 200 {object} dto.UpdatedResponse{data=models.COTool} "Tool updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Tool not found"
// @Router /tools/{toolId} [put]
func (c *COToolController) UpdateTool(ctx *gin.Context) {
	id, ok := pathID(ctx, "toolId")
	if !ok {
		return
	}

	var req dto.UpdateCOToolRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	tool, err := c.toolService.UpdateTool(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUpdatedResponse(tool, "Tool updated successfully"))
}

// DeleteTool deactivates a tool
// @Summary Delete an assessment tool
// @Tags tools
// @Produce json
// @Param toolId path int true "Tool ID"
// @Param updatedBy query string false "Actor recorded as updatedBy"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Tool not found"
// @Router /tools/{toolId} [delete]
func (c *COToolController) DeleteTool(ctx *gin.Context) {
	id, ok := pathID(ctx, "toolId")
	if !ok {
		return
	}

	if err := c.toolService.DeleteTool(ctx, id, deletedBy(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(fmt.Sprintf("Tool with id %d deleted successfully", id)))
}

// StudentMarkController records marks per student and tool
type StudentMarkController struct {
	markService services.StudentMarkService
}

// NewStudentMarkController creates a new StudentMarkController
func NewStudentMarkController(markService services.StudentMarkService) *StudentMarkController {
	return &StudentMarkController{
		markService: markService,
	}
}

// RecordMark stores a student's mark for a tool
// @Summary Record a mark
// @Description marksObtained may not exceed the course maxMark
// @Tags marks
// @Accept json
// @Produce json
// @Param toolId path int true "Tool ID"
// @Param request body dto.CreateStudentMarkRequest true "Mark"
// @Success 201 {object} map[string]interface{} "Mark recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or mark already recorded"
// @Failure 404 {object} dto.ErrorResponse "Student or tool not found"
// @Router /tools/{toolId}/marks [post]
func (c *StudentMarkController) RecordMark(ctx *gin.Context) {
	toolID, ok := pathID(ctx, "toolId")
	if !ok {
		return
	}

	var req dto.CreateStudentMarkRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	req.ToolID = toolID

	id, err := c.markService.RecordMark(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewCreatedResponse("Mark recorded successfully", "studentToolId", id))
}

// GetMarksByTool lists the marks recorded for a tool
// @Summary List marks
// @Tags marks
// @Produce json
// @Param toolId path int true "Tool ID"
// @Success 200 {object} dto.ListResponse{data=[]models.StudentCOTool}
// @Failure 404 {object} dto.ErrorResponse "Tool not found"
// @Router /tools/{toolId}/marks [get]
func (c *StudentMarkController) GetMarksByTool(ctx *gin.Context) {
	toolID, ok := pathID(ctx, "toolId")
	if !ok {
		return
	}

	marks, err := c.markService.GetMarksByTool(ctx, toolID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(marks))
}

// UpdateMark changes a recorded mark
// @Summary Update a mark
// @Tags marks
// @Accept json
// @Produce json
// @Param studentToolId path int true "Mark ID"
// @Param request body dto.UpdateStudentMarkRequest true "Mark"
// @Success 200 {object} dto.UpdatedResponse{data=models.StudentCOTool} "Mark updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Mark not found"
// @Router /marks/{studentToolId} [put]
func (c *StudentMarkController) UpdateMark(ctx *gin.Context) {
	id, ok := pathID(ctx, "studentToolId")
	if !ok {
		return
	}

	var req dto.UpdateStudentMarkRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	mark, err := c.markService.UpdateMark(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUpdatedResponse(mark, "Mark updated successfully"))
}
