package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

var internalError = gin.H{"error": "Internal server error"}

// ErrorHandler logs errors attached with c.Error and answers 500 if the
// handler has not written a response yet.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		for _, e := range c.Errors {
			logger.ErrorContext(c.Request.Context(), "request failed",
				"request_id", c.GetString(RequestIDKey),
				"path", c.Request.URL.Path,
				"error", e.Err,
			)
		}
		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, internalError)
		}
	}
}

// Recovery turns a panic into the same 500 response
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.ErrorContext(c.Request.Context(), "panic recovered",
			"request_id", c.GetString(RequestIDKey),
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, internalError)
	})
}
