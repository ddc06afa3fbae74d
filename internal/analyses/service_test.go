package analyses

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-rocket/internal/shared/metrics"
	"resume-rocket/resume/classify"
	"resume-rocket/resume/heuristics"
	"resume-rocket/resume/model"
	"resume-rocket/resume/quantify"
	"resume-rocket/resume/rewrite"
	"resume-rocket/resume/score"
)

const sampleResume = `Jane Roe
jane@example.com | 555-0100

PROFESSIONAL SUMMARY
Platform engineer who builds reliable delivery pipelines.

SKILLS
Go, Kubernetes, PostgreSQL

PROFESSIONAL EXPERIENCE
Senior Engineer
Acme Corp | 2020 - Present
• Led migration of billing services
• Improved deployment pipeline

EDUCATION
B.S. Computer Science`

var fixedID = uuid.MustParse("6f1c1c7e-3c55-4c0a-9d4e-2a7f9f8b1e01")

type stubEnricher struct {
	out   *model.Enrichment
	err   error
	delay time.Duration
}

func (s stubEnricher) Enrich(ctx context.Context, _ string) (*model.Enrichment, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.out, s.err
}

func newTestService(t *testing.T, enricher stubEnricher) (*Service, *metrics.Recorder) {
	t.Helper()
	tables := heuristics.Default()
	rec := metrics.NewRecorder(nil)
	return &Service{
		Enricher:      enricher,
		Scorer:        score.New(tables),
		Assembler:     rewrite.New(tables, quantify.NewSeeded(tables.MetricCues, 1)),
		Classifier:    classify.New(tables),
		Metrics:       rec,
		EnrichTimeout: 50 * time.Millisecond,
		NewID:         func() uuid.UUID { return fixedID },
	}, rec
}

func TestAnalyzeProducesAssessmentAndRewrite(t *testing.T) {
	svc, rec := newTestService(t, stubEnricher{})

	result, err := svc.Analyze(context.Background(), Input{Text: sampleResume, FileName: "jane.txt"})
	require.NoError(t, err)

	assert.Equal(t, fixedID, result.ID)
	assert.Equal(t, "jane.txt", result.FileName)
	assert.Equal(t, score.Grade(result.Assessment.Score), result.Assessment.Grade)
	assert.False(t, result.CoverLetter)
	assert.Contains(t, result.Rewritten, "PROFESSIONAL SUMMARY")
	assert.Contains(t, result.Sections, "experience")
	assert.Nil(t, result.Enrichment)
	assert.NotNil(t, result.Suggestions)

	count, err := testutil.GatherAndCount(rec.Registry(), "resume_analyses_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAnalyzeRejectsBlankText(t *testing.T) {
	svc, _ := newTestService(t, stubEnricher{})

	_, err := svc.Analyze(context.Background(), Input{Text: " \n\t"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAnalyzeFoldsEnrichment(t *testing.T) {
	extra := &model.Enrichment{Source: "stub", Insights: []string{"Clear ownership of outcomes"}}
	svc, _ := newTestService(t, stubEnricher{out: extra})

	result, err := svc.Analyze(context.Background(), Input{Text: sampleResume})
	require.NoError(t, err)
	require.NotNil(t, result.Enrichment)
	assert.Equal(t, "stub", result.Enrichment.Source)
	assert.Contains(t, result.Assessment.Praise, "Clear ownership of outcomes")
}

func TestAnalyzeIgnoresEnrichmentFailures(t *testing.T) {
	for name, stub := range map[string]stubEnricher{
		"error":   {err: errors.New("quota exceeded")},
		"timeout": {delay: time.Second, out: &model.Enrichment{Insights: []string{"late"}}},
	} {
		t.Run(name, func(t *testing.T) {
			svc, _ := newTestService(t, stub)
			result, err := svc.Analyze(context.Background(), Input{Text: sampleResume})
			require.NoError(t, err)
			assert.Nil(t, result.Enrichment)
		})
	}
}

func TestAnalyzeHonorsCancelledContext(t *testing.T) {
	svc, _ := newTestService(t, stubEnricher{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Analyze(ctx, Input{Text: sampleResume})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRewriteValidatesAssessment(t *testing.T) {
	svc, _ := newTestService(t, stubEnricher{})

	_, err := svc.Rewrite(context.Background(), sampleResume, model.Assessment{Score: 140})
	assert.ErrorIs(t, err, ErrInvalidInput)

	doc, err := svc.Rewrite(context.Background(), sampleResume, model.Assessment{Score: 72})
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Lines)
}

func TestClassifyNeverReturnsNil(t *testing.T) {
	svc, _ := newTestService(t, stubEnricher{})

	lines, err := svc.Classify(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, lines)

	lines, err = svc.Classify(context.Background(), sampleResume)
	require.NoError(t, err)
	require.NotEmpty(t, lines)
	assert.Equal(t, classify.Name, lines[0].Type)
}
