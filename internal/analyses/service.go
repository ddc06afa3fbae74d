package analyses

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-rocket/internal/enrich"
	"resume-rocket/internal/shared/metrics"
	"resume-rocket/internal/shared/telemetry"
	"resume-rocket/resume/classify"
	"resume-rocket/resume/model"
	"resume-rocket/resume/rewrite"
	"resume-rocket/resume/score"
)

const defaultEnrichTimeout = 10 * time.Second

// Service runs the analyze, rewrite and classify pipeline.
type Service struct {
	Enricher      enrich.Enricher
	Scorer        *score.Scorer
	Assembler     *rewrite.Assembler
	Classifier    *classify.Classifier
	Metrics       *metrics.Recorder
	EnrichTimeout time.Duration
	NewID         func() uuid.UUID
}

// Analyze enriches, scores and rewrites the input. Enrichment failures are
// logged and the analysis continues without it.
func (s *Service) Analyze(ctx context.Context, in Input) (Result, error) {
	if strings.TrimSpace(in.Text) == "" {
		s.Metrics.IncAnalysis("invalid")
		return Result{}, fmt.Errorf("%w: resume text is empty", ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	extra := s.enrich(ctx, in.Text)
	assessment := s.Scorer.Analyze(in.Text, extra)
	doc := s.Assembler.Rewrite(in.Text, assessment)

	result := Result{
		ID:          s.newID(),
		FileName:    in.FileName,
		Assessment:  assessment,
		Enrichment:  extra,
		Suggestions: s.Scorer.Suggest(in.Text),
		Rewritten:   doc.Text(),
		CoverLetter: doc.CoverLetter,
		Sections:    doc.Sections.Strings(),
	}
	s.Metrics.IncAnalysis(metrics.OutcomeOK)
	telemetry.Info("analysis.complete", map[string]any{
		"request_id":   requestIDFromContext(ctx),
		"analysis_id":  result.ID.String(),
		"score":        assessment.Score,
		"grade":        assessment.Grade,
		"cover_letter": doc.CoverLetter,
	})
	return result, nil
}

// Rewrite assembles text with a caller-supplied assessment.
func (s *Service) Rewrite(ctx context.Context, text string, assessment model.Assessment) (rewrite.Document, error) {
	if err := ctx.Err(); err != nil {
		return rewrite.Document{}, err
	}
	if err := assessment.Validate(); err != nil {
		return rewrite.Document{}, fmt.Errorf("%w: %s", ErrInvalidInput, model.ValidationMessage(err))
	}
	if assessment.Grade == "" {
		assessment.Grade = score.Grade(assessment.Score)
	}
	return s.Assembler.Rewrite(text, assessment), nil
}

// Classify tags every line of rewritten text with its render type.
func (s *Service) Classify(ctx context.Context, text string) ([]classify.Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lines := s.Classifier.Document(text)
	if lines == nil {
		lines = []classify.Line{}
	}
	return lines, nil
}

func (s *Service) enrich(ctx context.Context, text string) *model.Enrichment {
	if s.Enricher == nil {
		return nil
	}
	timeout := s.EnrichTimeout
	if timeout <= 0 {
		timeout = defaultEnrichTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	extra, err := s.Enricher.Enrich(ctx, text)
	if err != nil {
		telemetry.Error("enrichment failed", map[string]any{
			"request_id": requestIDFromContext(ctx),
			"error":      err.Error(),
		})
		return nil
	}
	if extra.Empty() {
		return nil
	}
	return extra
}

func (s *Service) newID() uuid.UUID {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.New()
}
