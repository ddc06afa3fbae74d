package enrich

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-rocket/resume/model"
)

func TestLocalCoverLetter(t *testing.T) {
	out, err := NewLocal(nil).Enrich(context.Background(), "Dear Hiring Manager, I am writing to apply.")
	require.NoError(t, err)
	assert.Empty(t, out.Insights)
	assert.Equal(t, []string{
		"CRITICAL: This is a cover letter, not a resume format",
		"Convert to proper resume structure with sections",
	}, out.Suggestions)
}

func TestLocalStrongResume(t *testing.T) {
	text := "Collaborated with finance on SQL and AWS analytics for the whole region. " +
		"Optimized the reporting pipeline and delivered weekly dashboards to leadership"
	out, err := NewLocal(nil).Enrich(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, "local", out.Source)
	assert.Equal(t, []string{
		"Found 4 relevant industry keywords",
		"Good sentence length for readability",
		"Strong professional language usage (3 terms)",
	}, out.Insights)
	assert.Empty(t, out.Suggestions)
}

func TestLocalWeakResume(t *testing.T) {
	out, err := NewLocal(nil).Enrich(context.Background(), "Did things")
	require.NoError(t, err)
	assert.Empty(t, out.Insights)
	assert.Equal(t, []string{
		"Add more industry-specific keywords",
		"Incorporate more professional action verbs",
	}, out.Suggestions)
}

func TestLocalHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewLocal(nil).Enrich(ctx, "text")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAverageSentenceWords(t *testing.T) {
	assert.InDelta(t, 1.5, averageSentenceWords("one two. three"), 0.001)
	assert.InDelta(t, 1.0, averageSentenceWords("one two."), 0.001)
}

type stubEnricher struct {
	out *model.Enrichment
	err error
}

func (s stubEnricher) Enrich(context.Context, string) (*model.Enrichment, error) {
	return s.out, s.err
}

func TestChainFallsThrough(t *testing.T) {
	want := &model.Enrichment{Source: "local", Insights: []string{"x"}}
	chain := Chain{stubEnricher{err: errors.New("down")}, stubEnricher{}, stubEnricher{out: want}}
	got, err := chain.Enrich(context.Background(), "text")
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestChainReportsErrors(t *testing.T) {
	chain := Chain{stubEnricher{err: errors.New("down")}, Noop{}}
	got, err := chain.Enrich(context.Background(), "text")
	assert.Nil(t, got)
	assert.EqualError(t, err, "down")
}

func TestParseProvider(t *testing.T) {
	for raw, want := range map[string]string{"": "local", " Gemini ": "gemini", "none": "none"} {
		got, err := ParseProvider(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseProvider("openai")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestPromptEmbedsText(t *testing.T) {
	assert.Contains(t, Prompt("MY RESUME"), "MY RESUME")
	assert.NotContains(t, Prompt("x"), "{{RESUME_TEXT}}")
	assert.Contains(t, FixJSONPrompt("raw reply"), "raw reply")
}
