package downloads

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-rocket/internal/shared/metrics"
	"resume-rocket/internal/shared/telemetry"
	"resume-rocket/internal/shared/util"
	"resume-rocket/resume/render"
)

const fileStampLayout = "20060102_150405"

// Download is a rendered document plus the record kept for it.
type Download struct {
	Record Record
	Body   []byte
}

// Service renders downloads and records their metadata.
type Service struct {
	Repo      Repo
	Renderers *render.Registry
	Metrics   *metrics.Recorder
	Now       func() time.Time
	NewID     func() string
}

// Render renders text in format and records the result. A failure to save
// the record is logged; the document is still returned.
func (s *Service) Render(ctx context.Context, format render.Format, text string) (Download, error) {
	if strings.TrimSpace(text) == "" {
		return Download{}, fmt.Errorf("%w: no resume text provided", ErrInvalidInput)
	}
	if s.Renderers == nil {
		return Download{}, errors.New("missing dependencies")
	}
	if err := ctx.Err(); err != nil {
		return Download{}, err
	}
	renderer, err := s.Renderers.For(format)
	if err != nil {
		return Download{}, err
	}

	started := s.now()
	out, err := renderer.Render(text)
	elapsed := s.now().Sub(started)
	if err != nil {
		s.Metrics.ObserveRender(string(format), metrics.OutcomeError, elapsed)
		telemetry.Error("render failed", map[string]any{"format": string(format), "error": err.Error()})
		return Download{}, err
	}

	outcome := metrics.OutcomeOK
	if out.Fallback {
		outcome = metrics.OutcomeFallback
		telemetry.Info("render fell back to text", map[string]any{"format": string(format)})
	}
	s.Metrics.ObserveRender(string(format), outcome, elapsed)

	rec := Record{
		ID:          s.newID(),
		Format:      string(format),
		ContentType: out.ContentType,
		FileName:    render.FileName("resume_"+started.Format(fileStampLayout), out),
		SizeBytes:   int64(len(out.Body)),
		Digest:      util.Digest(out.Body),
		Fallback:    out.Fallback,
		CreatedAt:   started.UTC(),
	}
	if s.Repo != nil {
		if err := s.Repo.Create(ctx, rec); err != nil {
			telemetry.Error("download record save failed", map[string]any{"id": rec.ID, "error": err.Error()})
		}
	}
	return Download{Record: rec, Body: out.Body}, nil
}

// Recent lists the newest download records.
func (s *Service) Recent(ctx context.Context, limit int) ([]Record, error) {
	if s.Repo == nil {
		return []Record{}, nil
	}
	return s.Repo.ListRecent(ctx, limit, 0)
}

// Get returns one download record.
func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	if strings.TrimSpace(id) == "" {
		return Record{}, ErrInvalidInput
	}
	if s.Repo == nil {
		return Record{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}
