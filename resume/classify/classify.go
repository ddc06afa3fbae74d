// Package classify assigns a render type to each line of a rewritten résumé.
package classify

import (
	"slices"
	"strings"
	"unicode"

	"resume-rocket/resume/heuristics"
)

// RenderType tells a renderer how to style a line.
type RenderType string

const (
	Name             RenderType = "name"
	HeaderContact    RenderType = "header_contact"
	SectionHeader    RenderType = "section_header"
	JobTitle         RenderType = "job_title"
	CompanyInfo      RenderType = "company_info"
	Bullet           RenderType = "bullet"
	SkillContinue    RenderType = "skill_continuation"
	EducationEntry   RenderType = "education_entry"
	ReferenceHeader  RenderType = "reference_header"
	ReferenceContact RenderType = "reference_contact"
	Regular          RenderType = "regular"
	// Blank marks an empty spacer line. It never takes part in classification.
	Blank RenderType = "blank"
)

const (
	maxNameWords  = 4
	headerRows    = 4
	referenceMark = "**REFERENCES**"
)

// Line is one classified line.
type Line struct {
	Text string     `json:"text"`
	Type RenderType `json:"type"`
}

// State is the fold state carried from one line to the next.
type State struct {
	Section    string
	PrevBullet bool
}

// Classifier evaluates the ordered rule table against résumé lines.
type Classifier struct {
	Tables *heuristics.Tables
}

// New returns a classifier over tables.
func New(tables *heuristics.Tables) *Classifier {
	if tables == nil {
		tables = heuristics.Default()
	}
	return &Classifier{Tables: tables}
}

type input struct {
	line  string
	index int
	state State
}

type rule struct {
	name   string
	result RenderType
	match  func(c *Classifier, in input) bool
}

// rules are evaluated top to bottom; the first match wins.
var rules = []rule{
	{"section-label", SectionHeader, func(c *Classifier, in input) bool {
		return slices.Contains(c.Tables.SectionLabels, in.line)
	}},
	{"name", Name, func(_ *Classifier, in input) bool {
		return in.index == 0 && !heuristics.IsUpper(in.line) &&
			len(strings.Fields(in.line)) <= maxNameWords && isNameText(in.line)
	}},
	{"header-contact", HeaderContact, func(c *Classifier, in input) bool {
		return in.index < headerRows && (strings.ContainsAny(in.line, "|@") || heuristics.HasDigit(in.line) ||
			heuristics.ContainsAny(strings.ToLower(in.line), c.Tables.HeaderRoles))
	}},
	{"reference-header", ReferenceHeader, func(c *Classifier, in input) bool {
		return c.Tables.ReferenceMarker != "" && strings.Contains(in.line, c.Tables.ReferenceMarker)
	}},
	{"reference-contact", ReferenceContact, func(c *Classifier, in input) bool {
		return IsReferenceContact(in.line, c.Tables)
	}},
	{"bullet", Bullet, func(_ *Classifier, in input) bool {
		return heuristics.IsBulleted(in.line)
	}},
	{"skill-continuation", SkillContinue, func(_ *Classifier, in input) bool {
		return in.state.PrevBullet && in.state.Section == heuristics.LabelSkills &&
			!strings.Contains(in.line, "|") && strings.Contains(in.line, ",")
	}},
	{"education", EducationEntry, func(_ *Classifier, in input) bool {
		return in.state.Section == heuristics.LabelEducation
	}},
	{"job-title", JobTitle, func(c *Classifier, in input) bool {
		return inExperience(in) && !strings.Contains(in.line, "|") && heuristics.ContainsAny(in.line, c.Tables.JobTitles)
	}},
	{"company-info", CompanyInfo, func(_ *Classifier, in input) bool {
		return inExperience(in) && strings.Contains(in.line, "|")
	}},
}

func inExperience(in input) bool {
	return in.state.Section == heuristics.LabelExperience && !heuristics.IsBulleted(in.line)
}

// IsReferenceContact reports whether a line looks like a referee's contact
// line, wherever it appears in the document.
func IsReferenceContact(line string, tables *heuristics.Tables) bool {
	if strings.Contains(line, "@") && heuristics.ContainsAny(line, tables.ReferenceProvider) {
		return true
	}
	return strings.Contains(line, "–") && heuristics.ContainsAny(line, tables.ReferenceRoster)
}

// Classify returns the render type of line at index and the state for the
// next line. It depends only on its arguments.
func (c *Classifier) Classify(line string, index int, st State) (RenderType, State) {
	in := input{line: strings.TrimSpace(line), index: index, state: st}
	kind := Regular
	for _, r := range rules {
		if r.match(c, in) {
			kind = r.result
			break
		}
	}

	next := State{Section: st.Section}
	switch kind {
	case SectionHeader:
		next.Section = in.line
	case Bullet, SkillContinue:
		next.PrevBullet = true
	}
	return kind, next
}

// Prepare cleans rewritten text for rendering: lines are trimmed, bracketed
// placeholder lines are dropped and everything from the rewrite-notes
// separator on is cut. Blank lines are kept as empty strings.
func (c *Classifier) Prepare(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	var out []string
	for i, line := range raw {
		line = strings.TrimSpace(line)
		if c.notesStart(line, raw[i+1:]) {
			break
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			continue
		}
		if line == referenceMark {
			line = heuristics.LabelReferences
		}
		out = append(out, line)
	}
	return out
}

func (c *Classifier) notesStart(line string, rest []string) bool {
	sep := c.Tables.SeparatorPrefix
	if sep == "" || !strings.HasPrefix(line, sep) {
		return false
	}
	if heuristics.ContainsAny(line, c.Tables.NotesMarkers) {
		return true
	}
	for _, next := range rest {
		if next = strings.TrimSpace(next); next != "" {
			return heuristics.ContainsAny(next, c.Tables.NotesMarkers)
		}
	}
	return false
}

// Document prepares text and classifies every line in order. Blank lines are
// returned as Blank and do not advance the line index or the state.
func (c *Classifier) Document(text string) []Line {
	var (
		lines []Line
		st    State
		index int
	)
	for _, line := range c.Prepare(text) {
		if line == "" {
			lines = append(lines, Line{Type: Blank})
			continue
		}
		var kind RenderType
		kind, st = c.Classify(line, index, st)
		lines = append(lines, Line{Text: line, Type: kind})
		index++
	}
	return trimBlankLines(lines)
}

func trimBlankLines(lines []Line) []Line {
	start, end := 0, len(lines)
	for start < end && lines[start].Type == Blank {
		start++
	}
	for end > start && lines[end-1].Type == Blank {
		end--
	}
	return lines[start:end]
}

func isNameText(line string) bool {
	stripped := strings.NewReplacer(" ", "", ".", "").Replace(line)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
