package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"roast-backend/internal/shared/server/respond"
	"roast-backend/internal/shared/telemetry"
)

// Recovery recovers from panics and returns a standardized error response.
// When dev is true the panic value and stack are attached as details.
func Recovery(dev bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := string(debug.Stack())
				telemetry.Error("panic", map[string]any{
					"request_id": RequestIDFromContext(c),
					"error":      fmt.Sprintf("%v", rec),
					"stack":      stack,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
				})
				details := ""
				if dev {
					details = fmt.Sprintf("%v\n%s", rec, stack)
				}
				respond.Error(c, http.StatusInternalServerError, "Something went wrong", details)
			}
		}()
		c.Next()
	}
}
