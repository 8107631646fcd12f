package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/app/services"
	"github.com/college/academics/internal/middleware"
)

// UserController handles staff and admin accounts
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new user controller
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// CreateUser registers an account
// @Summary Create a user
// @Description The password is stored as a bcrypt hash and never returned
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User information"
// @Success 201 {object} map[string]interface{} "User added successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or email already registered"
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	id, err := c.userService.CreateUser(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewCreatedResponse("User added successfully", "userId", id))
}

// GetUsers lists accounts, optionally by role
// @Summary List users
// @Tags users
// @Produce json
// @Param role query string false "ADMIN or STAFF"
// @Success 200 {object} dto.ListResponse{data=[]models.User}
// @Failure 400 {object} dto.ErrorResponse "Unknown role"
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /users [get]
func (c *UserController) GetUsers(ctx *gin.Context) {
	users, err := c.userService.GetUsers(ctx, ctx.Query("role"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(users))
}

// GetUserByID retrieves user information by ID
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} dto.ListResponse{data=models.User}
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{userId} [get]
func (c *UserController) GetUserByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "userId")
	if !ok {
		return
	}

	user, err := c.userService.GetUserByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(user))
}

// UpdateUser replaces an account; an empty password keeps the current one
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param request body dto.UpdateUserRequest true "User information"
// @Success 200 {object} dto.UpdatedResponse{data=models.User} "User updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or email already registered"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{userId} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "userId")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.userService.UpdateUser(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUpdatedResponse(user, "User updated successfully"))
}

// DeleteUser deactivates an account
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Param updatedBy query string false "Actor recorded as updatedBy"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{userId} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "userId")
	if !ok {
		return
	}

	if err := c.userService.DeleteUser(ctx, id, deletedBy(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(fmt.Sprintf("User with id %d deleted successfully", id)))
}
