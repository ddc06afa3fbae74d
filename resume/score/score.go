// Package score grades résumé text with rule-based checks.
package score

import (
	"fmt"
	"regexp"
	"strings"

	"resume-rocket/resume/heuristics"
	"resume-rocket/resume/model"
)

const (
	baseScore      = 50
	praiseWeight   = 12
	failureWeight  = 15
	warningWeight  = 8
	minWords       = 200
	maxWords       = 800
	strongVerbs    = 5
	someVerbs      = 2
	strongMetrics  = 3
	narrativeLimit = 3
	minSections    = 3
)

var (
	emailPattern  = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	phonePattern  = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
	metricPattern = regexp.MustCompile(`(?i)\b\d+(\.\d+)?%?|\b\d+k\b|\b\$\d+|\b\d+\+\b`)
)

// Scorer runs the checks against a set of heuristic tables.
type Scorer struct {
	Tables *heuristics.Tables
}

// New returns a Scorer over tables, or the default tables when nil.
func New(tables *heuristics.Tables) *Scorer {
	if tables == nil {
		tables = heuristics.Default()
	}
	return &Scorer{Tables: tables}
}

// Analyze scores text. Enrichment insights count as praise and its
// suggestions as warnings.
func (s *Scorer) Analyze(text string, extra *model.Enrichment) model.Assessment {
	var a model.Assessment
	if extra != nil {
		a.Praise = append(a.Praise, extra.Insights...)
		a.Warnings = append(a.Warnings, extra.Suggestions...)
	}

	if emailPattern.MatchString(text) {
		a.Praise = append(a.Praise, "Contains email address")
	} else {
		a.Failures = append(a.Failures, "Missing email address")
	}

	if phonePattern.MatchString(text) {
		a.Praise = append(a.Praise, "Contains phone number")
	} else {
		a.Warnings = append(a.Warnings, "Consider adding phone number")
	}

	verbs := countPresent(strings.ToLower(text), s.Tables.ActionVerbs)
	switch {
	case verbs >= strongVerbs:
		a.Praise = append(a.Praise, fmt.Sprintf("Good use of action verbs (%d found)", verbs))
	case verbs >= someVerbs:
		a.Warnings = append(a.Warnings, fmt.Sprintf("Could use more action verbs (only %d found)", verbs))
	default:
		a.Failures = append(a.Failures, "Very few action verbs used")
	}

	metrics := len(metricPattern.FindAllString(text, -1))
	switch {
	case metrics >= strongMetrics:
		a.Praise = append(a.Praise, fmt.Sprintf("Contains quantifiable achievements (%d metrics found)", metrics))
	case metrics >= 1:
		a.Warnings = append(a.Warnings, fmt.Sprintf("Could use more quantifiable achievements (only %d found)", metrics))
	default:
		a.Failures = append(a.Failures, "No quantifiable achievements found")
	}

	words := len(strings.Fields(text))
	switch {
	case words >= minWords && words <= maxWords:
		a.Praise = append(a.Praise, fmt.Sprintf("Appropriate length (%d words)", words))
	case words < minWords:
		a.Failures = append(a.Failures, fmt.Sprintf("Resume too short (%d words)", words))
	default:
		a.Warnings = append(a.Warnings, fmt.Sprintf("Resume might be too long (%d words)", words))
	}

	n := baseScore + len(a.Praise)*praiseWeight - len(a.Failures)*failureWeight - len(a.Warnings)*warningWeight
	a.Score = max(0, min(100, n))
	a.Grade = Grade(a.Score)
	return a
}

// Grade maps a 0-100 score to a letter grade.
func Grade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	default:
		return "D"
	}
}

var (
	structureSections = []string{"experience", "work history", "employment", "skills", "education", "summary"}
	narrativePhrases  = []string{"i am", "my ability", "i have", "i can", "i know", "i take pride"}
	letterOpenings    = []string{"dear", "to whom", "hiring"}
	dutyPhrases       = []string{"responsible for", "duties included", "tasks involved"}
	toolNames         = []string{"python", "javascript", "react", "node", "sql", "aws"}
)

// Suggest returns content advice for text: structure, bullet use, voice and
// specificity.
func (s *Scorer) Suggest(text string) []string {
	lower := strings.ToLower(text)
	if heuristics.ContainsAny(lower, s.Tables.CoverLetter) {
		return []string{
			"CRITICAL: This appears to be a cover letter, not a resume. A resume needs:",
			"Contact information header",
			"Professional summary section",
			"Work experience with bullet points",
			"Skills section",
			"Education section",
		}
	}

	var out []string
	if countPresent(lower, structureSections) < minSections {
		out = append(out, "Your document lacks proper resume structure. Add clear sections like:")
		if !strings.Contains(lower, "experience") && !strings.Contains(lower, "work") {
			out = append(out, "WORK EXPERIENCE section with bullet points")
		}
		if !heuristics.ContainsAny(lower, []string{"skills", "competencies"}) {
			out = append(out, "SKILLS section listing relevant technologies")
		}
		if !heuristics.ContainsAny(lower, []string{"education", "degree"}) {
			out = append(out, "EDUCATION section")
		}
	}
	if !strings.ContainsAny(text, "•-*") {
		out = append(out, "Convert paragraph text to bullet points for better readability")
	}
	if countPresent(lower, narrativePhrases) > narrativeLimit {
		out = append(out, "Reduce first-person narrative style and focus on accomplishments instead of 'I' statements")
	}
	for _, opening := range letterOpenings {
		if strings.HasPrefix(lower, opening) {
			out = append(out, "Start with your name and contact info, not a letter greeting")
			break
		}
	}
	if heuristics.ContainsAny(lower, dutyPhrases) {
		out = append(out, "Focus on achievements rather than just responsibilities")
	}
	if !heuristics.ContainsAny(lower, toolNames) {
		out = append(out, "Add specific technical skills and tools you've used")
	}
	return out
}

func countPresent(lower string, words []string) int {
	n := 0
	for _, w := range words {
		if w != "" && strings.Contains(lower, strings.ToLower(w)) {
			n++
		}
	}
	return n
}

// Analyze scores text with the default tables.
func Analyze(text string, extra *model.Enrichment) model.Assessment {
	return New(nil).Analyze(text, extra)
}
