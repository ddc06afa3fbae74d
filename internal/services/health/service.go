// Package health reports whether the service and its backends are usable.
package health

import (
	"context"
	"sort"
	"time"

	"resume-rocket/resume/render"
)

const pingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Report is the health payload.
type Report struct {
	OK       bool              `json:"ok"`
	Backends map[string]string `json:"backends"`
	Storage  string            `json:"storage"`
}

// Service encapsulates health-related checks.
type Service struct {
	Renderers *render.Registry
	DB        Pinger
}

// NewService constructs a health service. db may be nil when download
// records live in memory.
func NewService(renderers *render.Registry, db Pinger) *Service {
	return &Service{Renderers: renderers, DB: db}
}

// Status lists each render backend as "ok" or "unavailable" along with the
// storage mode. The service stays OK while the text renderer works since
// every download can degrade to it, except when the database is down.
func (s *Service) Status(ctx context.Context) Report {
	report := Report{OK: true, Backends: map[string]string{}, Storage: "memory"}
	if s.Renderers != nil {
		status := s.Renderers.Status()
		formats := make([]string, 0, len(status))
		for f := range status {
			formats = append(formats, string(f))
		}
		sort.Strings(formats)
		for _, f := range formats {
			state := "ok"
			if status[render.Format(f)] != nil {
				state = "unavailable"
			}
			report.Backends[f] = state
		}
	}
	if s.DB != nil {
		ctx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		report.Storage = "postgres"
		if err := s.DB.PingContext(ctx); err != nil {
			report.Storage = "postgres_unreachable"
			report.OK = false
		}
	}
	return report
}
