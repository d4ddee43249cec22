package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revams/api/internal/app/models/dto"
	"github.com/revams/api/internal/pkg/apperrors"
	"github.com/revams/api/internal/pkg/logger"
)

// --- Central Error Handling ---

// HandleAPIError writes the error envelope for err. Errors that map to 500 are
// logged with their cause and reported generically.
func HandleAPIError(c *gin.Context, err error) {
	status := apperrors.StatusCode(err)
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("requestId", c.GetString(RequestIDKey)).
			Msg("Unhandled error")
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(status, apperrors.Message(err)))
}

// NotFound answers unknown routes with the error envelope.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Route not found"))
	}
}

// Recovery turns panics into a 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("requestId", c.GetString(RequestIDKey)).
			Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			dto.NewErrorResponse(http.StatusInternalServerError, "Internal server error"))
	})
}
