package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/app/services"
	"github.com/college/academics/internal/middleware"
)

// BatchController handles batch operations
type BatchController struct {
	batchService services.BatchService
}

// NewBatchController creates a new BatchController
func NewBatchController(batchService services.BatchService) *BatchController {
	return &BatchController{
		batchService: batchService,
	}
}

// CreateBatch handles batch creation
// @Summary Create a batch
// @Tags batches
// @Accept json
// @Produce json
// @Param request body dto.CreateBatchRequest true "Batch information"
// @Success 201 {object} map[string]interface{} "Batch added successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or batch already exists"
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /batch [post]
func (c *BatchController) CreateBatch(ctx *gin.Context) {
	var req dto.CreateBatchRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	id, err := c.batchService.CreateBatch(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewCreatedResponse("Batch added successfully", "batchId", id))
}

// GetAllBatches lists every batch
// @Summary List batches
// @Tags batches
// @Produce json
// @Success 200 {object} dto.ListResponse{data=[]models.Batch}
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /batches [get]
func (c *BatchController) GetAllBatches(ctx *gin.Context) {
	batches, err := c.batchService.GetAllBatches(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(batches))
}

// GetBatchByID returns one batch
// @Summary Get batch
// @Tags batches
// @Produce json
// @Param batchId path int true "Batch ID"
// @Success 200 {object} dto.ListResponse{data=models.Batch}
// @Failure 400 {object} dto.ErrorResponse "Invalid batch ID"
// @Failure 404 {object} dto.ErrorResponse "Batch not found"
// @Router /batch/{batchId} [get]
func (c *BatchController) GetBatchByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "batchId")
	if !ok {
		return
	}

	batch, err := c.batchService.GetBatchByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(batch))
}

// UpdateBatch replaces a batch
// @Summary Update a batch
// @Tags batches
// @Accept json
// @Produce json
// @Param batchId path int true "Batch ID"
// @Param request body dto.UpdateBatchRequest true "Batch information"
// @Success 200 {object} dto.UpdatedResponse{data=models.Batch} "Batch updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or duplicate batch"
// @Failure 404 {object} dto.ErrorResponse "Batch not found"
// @Router /batch/{batchId} [put]
func (c *BatchController) UpdateBatch(ctx *gin.Context) {
	id, ok := pathID(ctx, "batchId")
	if !ok {
		return
	}

	var req dto.UpdateBatchRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	batch, err := c.batchService.UpdateBatch(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUpdatedResponse(batch, "Batch updated successfully"))
}

// DeleteBatch deactivates a batch
// @Summary Delete a batch
// @Description Soft delete: isActive becomes NO
// @Tags batches
// @Produce json
// @Param batchId path int true "Batch ID"
// @Param updatedBy query string false "Actor recorded as updatedBy"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid batch ID"
// @Failure 404 {object} dto.ErrorResponse "Batch not found"
// @Router /batch/{batchId} [delete]
func (c *BatchController) DeleteBatch(ctx *gin.Context) {
	id, ok := pathID(ctx, "batchId")
	if !ok {
		return
	}

	if err := c.batchService.DeleteBatch(ctx, id, deletedBy(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(fmt.Sprintf("Batch with id %d deleted successfully", id)))
}
