package respond

import (
	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/shared/telemetry"
)

// ErrorBody is the client-facing error envelope. Internal detail never
// reaches the client; it is logged server-side instead.
type ErrorBody struct {
	Msg string `json:"msg"`
}

// Error sends a `{msg}` error response and logs the failure with request
// context. The gin context is aborted so later handlers do not run.
func Error(c *gin.Context, status int, msg string) {
	fields := map[string]any{
		"status":     status,
		"msg":        msg,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorBody{Msg: msg})
}
