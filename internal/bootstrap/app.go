// Package bootstrap assembles the service graph from configuration.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-rocket/internal/analyses"
	"resume-rocket/internal/downloads"
	"resume-rocket/internal/enrich"
	"resume-rocket/internal/enrich/gemini"
	"resume-rocket/internal/services/health"
	"resume-rocket/internal/shared/config"
	"resume-rocket/internal/shared/metrics"
	"resume-rocket/internal/shared/server"
	"resume-rocket/internal/shared/server/middleware"
	"resume-rocket/internal/shared/storage/db"
	"resume-rocket/internal/shared/telemetry"
	"resume-rocket/resume/classify"
	"resume-rocket/resume/heuristics"
	"resume-rocket/resume/quantify"
	"resume-rocket/resume/render"
	"resume-rocket/resume/rewrite"
	"resume-rocket/resume/score"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Tables           *heuristics.Tables
	Renderers        *render.Registry
	Metrics          *metrics.Recorder
	Enricher         enrich.Enricher
	DownloadsRepo    downloads.Repo
	AnalysesService  *analyses.Service
	DownloadsService *downloads.Service
	AnalysisHandler  *analyses.Handler
	DownloadHandler  *downloads.Handler
	Health           *health.Service
}

// Options overrides pieces of the graph, mostly for tests.
type Options struct {
	Metrics   *metrics.Recorder
	Generator gemini.TextGenerator
	Render    render.Options
}

// Build prepares every dependency and wires the router.
func Build(ctx context.Context, cfg config.Config, opts Options) (*App, error) {
	tables, err := heuristics.Load(cfg.HeuristicsFile)
	if err != nil {
		return nil, err
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	enricher, err := buildEnricher(ctx, cfg, opts.Generator, tables)
	if err != nil {
		return nil, err
	}

	rec := opts.Metrics
	if rec == nil {
		rec = metrics.Default()
	}

	renderOpts := opts.Render
	renderOpts.Tables = tables
	renderOpts.DisablePDF = renderOpts.DisablePDF || cfg.DisablePDF
	renderOpts.DisableDOCX = renderOpts.DisableDOCX || cfg.DisableDOCX
	renderers := render.NewRegistry(renderOpts)
	for format, cause := range renderers.Status() {
		if cause != nil {
			telemetry.Error("render backend unavailable", map[string]any{"format": string(format), "error": cause})
		}
	}

	app := &App{
		Config:    cfg,
		DB:        sqlDB,
		Tables:    tables,
		Renderers: renderers,
		Metrics:   rec,
		Enricher:  enricher,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		AnalysisHandler: app.AnalysisHandler,
		DownloadHandler: app.DownloadHandler,
		Health:          app.Health,
		Metrics:         rec,
		Limiter:         middleware.NewRateLimiter(nil),
	})
	return app, nil
}

// Close releases the database pool.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		telemetry.Info("bootstrap: DATABASE_URL empty; download records kept in memory", nil)
		return nil, nil
	}
	sqlDB, err := db.GetSingleton(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB)
		if err != nil {
			_ = db.Discard(sqlDB)
		}
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Error("bootstrap: database unavailable; download records kept in memory", map[string]any{"error": err})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildEnricher(ctx context.Context, cfg config.Config, gen gemini.TextGenerator, tables *heuristics.Tables) (enrich.Enricher, error) {
	provider, err := enrich.ParseProvider(cfg.EnrichProvider)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, cfg.EnrichProvider)
	}
	switch provider {
	case enrich.ProviderNone:
		return enrich.Noop{}, nil
	case enrich.ProviderGemini:
		if gen == nil {
			if cfg.GeminiAPIKey == "" {
				return nil, errors.New("ENRICH_PROVIDER=gemini requires GEMINI_API_KEY")
			}
			gen, err = gemini.NewGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
			if err != nil {
				return nil, err
			}
		}
		// Local heuristics answer when the model call fails.
		return enrich.Chain{gemini.New(gen), enrich.NewLocal(tables)}, nil
	default:
		return enrich.NewLocal(tables), nil
	}
}

func buildServices(app *App) {
	var repo downloads.Repo
	var pinger health.Pinger
	if app.DB != nil {
		repo = &downloads.PGRepo{DB: app.DB}
		pinger = app.DB
	} else {
		repo = downloads.NewMemoryRepo(app.Config.DownloadsHistory)
	}

	injector := quantify.New(app.Tables.MetricCues, nil)
	if app.Config.MetricSeed != 0 {
		injector = quantify.NewSeeded(app.Tables.MetricCues, app.Config.MetricSeed)
	}

	app.DownloadsRepo = repo
	app.AnalysesService = &analyses.Service{
		Enricher:   app.Enricher,
		Scorer:     score.New(app.Tables),
		Assembler:  rewrite.New(app.Tables, injector),
		Classifier: classify.New(app.Tables),
		Metrics:    app.Metrics,
	}
	app.DownloadsService = &downloads.Service{
		Repo:      repo,
		Renderers: app.Renderers,
		Metrics:   app.Metrics,
	}
	app.AnalysisHandler = analyses.NewHandler(app.AnalysesService, app.Config.MaxUploadBytes)
	app.DownloadHandler = downloads.NewHandler(app.DownloadsService)
	app.Health = health.NewService(app.Renderers, pinger)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
