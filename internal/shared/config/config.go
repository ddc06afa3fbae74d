package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"resume-rocket/internal/shared/telemetry"
)

// Config holds application configuration.
type Config struct {
	Port             string
	Env              string
	CORSAllowOrigin  []string
	DatabaseURL      string
	HeuristicsFile   string
	DisablePDF       bool
	DisableDOCX      bool
	EnrichProvider   string
	GeminiAPIKey     string
	GeminiModel      string
	MaxUploadBytes   int64
	RateLimitRPS     float64
	RateLimitBurst   int
	LogJSON          bool
	LogDebug         bool
	MetricSeed       int64
	DownloadsHistory int
}

const defaultMaxUploadBytes = 10 << 20

// Load reads configuration from the environment, local .env files and an
// optional config file named by RESUME_CONFIG.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(existing(".env", "cmd/.env")...)
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "dev")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:5173")
	v.SetDefault("ENRICH_PROVIDER", "local")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("MAX_UPLOAD_BYTES", defaultMaxUploadBytes)
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("LOG_JSON", true)
	v.SetDefault("DOWNLOADS_HISTORY", 50)

	if path := strings.TrimSpace(v.GetString("RESUME_CONFIG")); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			telemetry.Error("config file unreadable", map[string]any{"path": path, "error": err.Error()})
		}
	}
	return v
}

// FromViper builds a Config from v. Keys are upper-case env names.
func FromViper(v *viper.Viper) Config {
	env := normalizeEnv(v.GetString("ENV"))
	dbURL := strings.TrimSpace(v.GetString("DATABASE_URL"))
	if env == "production" && dbURL == "" {
		telemetry.Info("DATABASE_URL not set, download records kept in memory", nil)
	}

	maxUpload := v.GetInt64("MAX_UPLOAD_BYTES")
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadBytes
	}

	return Config{
		Port:             v.GetString("PORT"),
		Env:              env,
		CORSAllowOrigin:  splitAndTrim(v.GetString("CORS_ALLOW_ORIGINS")),
		DatabaseURL:      dbURL,
		HeuristicsFile:   strings.TrimSpace(v.GetString("HEURISTICS_FILE")),
		DisablePDF:       v.GetBool("RENDER_DISABLE_PDF"),
		DisableDOCX:      v.GetBool("RENDER_DISABLE_DOCX"),
		EnrichProvider:   strings.ToLower(strings.TrimSpace(v.GetString("ENRICH_PROVIDER"))),
		GeminiAPIKey:     strings.TrimSpace(v.GetString("GEMINI_API_KEY")),
		GeminiModel:      strings.TrimSpace(v.GetString("GEMINI_MODEL")),
		MaxUploadBytes:   maxUpload,
		RateLimitRPS:     v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:   v.GetInt("RATE_LIMIT_BURST"),
		LogJSON:          v.GetBool("LOG_JSON"),
		LogDebug:         v.GetBool("LOG_DEBUG"),
		MetricSeed:       v.GetInt64("METRIC_SEED"),
		DownloadsHistory: v.GetInt("DOWNLOADS_HISTORY"),
	}
}

func existing(paths ...string) []string {
	var out []string
	for _, p := range paths {
		if _, err := godotenv.Read(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
