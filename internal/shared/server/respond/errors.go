package respond

import (
	"github.com/gin-gonic/gin"

	"roast-backend/internal/shared/telemetry"
)

// ErrorResponse is the standardized error body. Details is populated only in
// non-production deployments.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Error sends a standardized error response and logs it.
func Error(c *gin.Context, status int, message string, details string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
