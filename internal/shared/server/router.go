package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-rocket/internal/analyses"
	"resume-rocket/internal/downloads"
	"resume-rocket/internal/services/health"
	"resume-rocket/internal/shared/config"
	"resume-rocket/internal/shared/metrics"
	"resume-rocket/internal/shared/server/middleware"
	"resume-rocket/internal/shared/server/respond"
)

// Rate limit groups.
const (
	GroupAnalyze = "ANALYZE"
	GroupRender  = "RENDER"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config          config.Config
	AnalysisHandler *analyses.Handler
	DownloadHandler *downloads.Handler
	Health          *health.Service
	Metrics         *metrics.Recorder
	Limiter         *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)
	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})

	rule := middleware.RateLimitRule{Rate: deps.Config.RateLimitRPS, Burst: deps.Config.RateLimitBurst}
	limit := middleware.RateLimit(middleware.RateLimitConfig{
		Rules:   map[string]middleware.RateLimitRule{GroupAnalyze: rule, GroupRender: rule},
		Limiter: deps.Limiter,
		GroupFor: func(c *gin.Context) string {
			if c.Param("format") != "" {
				return GroupRender
			}
			return GroupAnalyze
		},
	})

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.OK(c, gin.H{"ok": true})
			return
		}
		report := deps.Health.Status(c.Request.Context())
		status := http.StatusOK
		if !report.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, report)
	})
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api, limit)
	}
	if deps.DownloadHandler != nil {
		deps.DownloadHandler.RegisterRoutes(api, limit)
	}
	if deps.Metrics != nil {
		r.GET("/metrics", deps.Metrics.Handler())
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
