package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/college/academics/internal/app/models/dto"
)

// BindJSON decodes the request body into obj. On malformed JSON it writes the
// 400 envelope and returns false; field rules are checked by the services.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid request body").
			WithError(err.Error()))
		return false
	}
	return true
}

// BindQuery decodes query parameters into obj, answering 400 when a value
// cannot be converted to its field type.
func BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid query parameters").
			WithError(err.Error()))
		return false
	}
	return true
}
