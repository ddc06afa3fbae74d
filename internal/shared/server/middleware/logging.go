package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-rocket/internal/shared/telemetry"
)

// Context keys handlers set so the request log can carry them.
const (
	AnalysisIDKey   = "analysisId"
	DownloadIDKey   = "downloadId"
	RenderFormatKey = "renderFormat"
	FallbackKey     = "renderFallback"
)

// Logging emits one structured log line per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status":      c.Writer.Status(),
			"bytes":       c.Writer.Size(),
			"duration_ms": float64(time.Since(start).Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		for key, field := range map[string]string{
			AnalysisIDKey:   "analysis_id",
			DownloadIDKey:   "download_id",
			RenderFormatKey: "render_format",
			FallbackKey:     "fallback",
		} {
			if v, ok := c.Get(key); ok {
				fields[field] = v
			}
		}
		telemetry.Info("request.complete", fields)
	}
}
