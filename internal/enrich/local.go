package enrich

import (
	"context"
	"fmt"
	"strings"

	"resume-rocket/resume/heuristics"
	"resume-rocket/resume/model"
)

const (
	longSentenceWords     = 20
	readableSentenceWords = 10
	professionalTerms     = 3
)

// Local is the offline enricher. It looks at keyword coverage, sentence
// length and professional vocabulary.
type Local struct {
	Tables *heuristics.Tables
}

// NewLocal returns a Local enricher over tables, or the defaults when nil.
func NewLocal(tables *heuristics.Tables) *Local {
	if tables == nil {
		tables = heuristics.Default()
	}
	return &Local{Tables: tables}
}

func (l *Local) Enrich(ctx context.Context, text string) (*model.Enrichment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lower := strings.ToLower(text)
	out := &model.Enrichment{Source: ProviderLocal}

	if heuristics.ContainsAny(lower, l.Tables.CoverLetter) {
		out.Suggestions = []string{
			"CRITICAL: This is a cover letter, not a resume format",
			"Convert to proper resume structure with sections",
		}
		return out, nil
	}

	if n := countIn(lower, l.Tables.IndustryKeywords); n > 0 {
		out.Insights = append(out.Insights, fmt.Sprintf("Found %d relevant industry keywords", n))
	} else {
		out.Suggestions = append(out.Suggestions, "Add more industry-specific keywords")
	}

	switch avg := averageSentenceWords(text); {
	case avg > longSentenceWords:
		out.Suggestions = append(out.Suggestions, "Consider using shorter, more impactful sentences")
	case avg > readableSentenceWords:
		out.Insights = append(out.Insights, "Good sentence length for readability")
	}

	if n := countIn(lower, l.Tables.ProfessionalVerbs); n >= professionalTerms {
		out.Insights = append(out.Insights, fmt.Sprintf("Strong professional language usage (%d terms)", n))
	} else {
		out.Suggestions = append(out.Suggestions, "Incorporate more professional action verbs")
	}
	return out, nil
}

// averageSentenceWords splits on periods, counting the empty tail after a
// final period as a sentence.
func averageSentenceWords(text string) float64 {
	sentences := strings.Split(text, ".")
	words := 0
	for _, s := range sentences {
		words += len(strings.Fields(s))
	}
	return float64(words) / float64(len(sentences))
}

func countIn(lower string, words []string) int {
	n := 0
	for _, w := range words {
		if w != "" && strings.Contains(lower, strings.ToLower(w)) {
			n++
		}
	}
	return n
}
