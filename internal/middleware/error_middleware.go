package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/pkg/apperrors"
	"github.com/college/academics/internal/pkg/logger"
)

// DatabaseErrorMessage is the message of every 500 envelope caused by a failed statement.
const DatabaseErrorMessage = "Database error"

// HandleAPIError maps a service error onto the HTTP status and failure envelope.
// Duplicates answer 400 like missing input; the code field tells them apart.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, apperrors.Message(err)).
			WithFields(apperrors.Fields(err)...))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, apperrors.Message(err)))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeConflict, apperrors.Message(err)))
	case errors.Is(err, apperrors.ErrDatabase):
		logger.Error().Err(err).Str("request_id", RequestID(c)).Str("path", c.Request.URL.Path).Msg("Database error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeDatabaseError, DatabaseErrorMessage).
			WithError(apperrors.CauseMessage(err)))
	default:
		logger.Error().Err(err).Str("request_id", RequestID(c)).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeInternalServer, "Internal server error").
			WithError(err.Error()))
	}
}

// Recovery turns a handler panic into the 500 envelope instead of a bare status.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().Interface("panic", recovered).Str("request_id", RequestID(c)).
			Str("path", c.Request.URL.Path).Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.ErrorCodeInternalServer, "Internal server error"))
	})
}
