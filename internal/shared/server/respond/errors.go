package respond

import (
	"github.com/gin-gonic/gin"

	"resume-rocket/internal/shared/telemetry"
)

// Error codes shared by every handler.
const (
	CodeValidation  = "validation_error"
	CodeUnsupported = "unsupported_format"
	CodeRender      = "render_error"
	CodeNotFound    = "not_found"
	CodeInternal    = "internal_error"
)

// ErrorBody defines the standardized error object.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse wraps the error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error logs the failure and aborts with the standardized error body.
func Error(c *gin.Context, status int, code, message string, details any) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
		"client_ip":  c.ClientIP(),
	}
	if format := c.Param("format"); format != "" {
		fields["format"] = format
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}
