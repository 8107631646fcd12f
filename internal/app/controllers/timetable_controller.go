package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/app/services"
	"github.com/college/academics/internal/middleware"
)

// TimetableController handles the weekly timetable
type TimetableController struct {
	timetableService services.TimetableService
}

// NewTimetableController creates a new TimetableController
func NewTimetableController(timetableService services.TimetableService) *TimetableController {
	return &TimetableController{
		timetableService: timetableService,
	}
}

// CreateSlot books a weekly period
// @Summary Create a timetable slot
// @Tags timetable
// @Accept json
// @Produce json
// @Param request body dto.CreateTimetableRequest true "Slot"
// @Success 201 {object} map[string]interface{} "Timetable slot added successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or slot already taken"
// @Failure 404 {object} dto.ErrorResponse "Staff or course not found"
// @Router /timetable [post]
func (c *TimetableController) CreateSlot(ctx *gin.Context) {
	var req dto.CreateTimetableRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	id, err := c.timetableService.CreateSlot(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewCreatedResponse("Timetable slot added successfully", "timetableId", id))
}

// GetTimetable returns the slots of a staff member or of a class
// @Summary Get timetable
// @Description Pass staffId, or degree, branch and batch together
// @Tags timetable
// @Produce json
// @Param staffId query int false "Staff user ID"
// @Param degree query string false "Degree"
// @Param branch query string false "Branch"
// @Param batch query string false "Batch start year"
// @Success 200 {object} dto.ListResponse{data=[]models.Timetable}
// @Failure 400 {object} dto.ErrorResponse "Missing query parameters"
// @Router /timetable [get]
func (c *TimetableController) GetTimetable(ctx *gin.Context) {
	var query dto.TimetableQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}

	slots, err := c.timetableService.GetTimetable(ctx, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(slots))
}

// UpdateSlot moves or reassigns a slot
// @Summary Update a timetable slot
// @Tags timetable
// @Accept json
// @Produce json
// @Param timetableId path int true "Slot ID"
// @Param request body dto.UpdateTimetableRequest true "Slot"
// @Success 200 {object} dto.UpdatedResponse{data=models.Timetable} "Timetable slot updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or slot already taken"
// @Failure 404 {object} dto.ErrorResponse "Slot, staff or course not found"
// @Router /timetable/{timetableId} [put]
func (c *TimetableController) UpdateSlot(ctx *gin.Context) {
	id, ok := pathID(ctx, "timetableId")
	if !ok {
		return
	}

	var req dto.UpdateTimetableRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	slot, err := c.timetableService.UpdateSlot(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUpdatedResponse(slot, "Timetable slot updated successfully"))
}

// DeleteSlot deactivates a slot
// @Summary Delete a timetable slot
// @Tags timetable
// @Produce json
// @Param timetableId path int true "Slot ID"
// @Param updatedBy query string false "Actor recorded as updatedBy"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Slot not found"
// @Router /timetable/{timetableId} [delete]
func (c *TimetableController) DeleteSlot(ctx *gin.Context) {
	id, ok := pathID(ctx, "timetableId")
	if !ok {
		return
	}

	if err := c.timetableService.DeleteSlot(ctx, id, deletedBy(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(fmt.Sprintf("Timetable slot with id %d deleted successfully", id)))
}
