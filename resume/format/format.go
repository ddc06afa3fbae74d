// Package format applies per-section professional formatting to segmented
// résumé lines. Every formatter is total: empty input gives empty output.
package format

import (
	"regexp"
	"strings"

	"resume-rocket/resume/heuristics"
	"resume-rocket/resume/quantify"
)

var (
	bracketPattern    = regexp.MustCompile(`\[.*?\]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	yearPattern       = regexp.MustCompile(`\d{4}`)
	toWordPattern     = regexp.MustCompile(`(?i)\bto\b`)
)

const (
	maxInlineSkills = 6
	skillChunk      = 5
	maxMiscSkills   = 8
	maxInlineMisc   = 4
	additionalLabel = "Additional"
	continuation    = "  "
)

// Formatter formats the lines of one section at a time.
type Formatter struct {
	Tables  *heuristics.Tables
	Metrics *quantify.Injector
}

// New returns a formatter over tables. A nil injector leaves lines unquantified.
func New(tables *heuristics.Tables, metrics *quantify.Injector) *Formatter {
	if tables == nil {
		tables = heuristics.Default()
	}
	return &Formatter{Tables: tables, Metrics: metrics}
}

func bullet(text string) string {
	return heuristics.Bullet + " " + text
}

func (f *Formatter) quantify(text string) string {
	if f.Metrics == nil {
		return text
	}
	return f.Metrics.Inject(text)
}

// Summary joins the summary into one paragraph without bracketed placeholders.
func (f *Formatter) Summary(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	text := bracketPattern.ReplaceAllString(strings.Join(lines, " "), "")
	text = strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
	if text == "" {
		return nil
	}
	return []string{text}
}

// Skills groups "Category: a, b" lines by category and collects everything
// else as additional skills.
func (f *Formatter) Skills(lines []string) []string {
	var (
		order      []string
		categories = map[string][]string{}
		misc       []string
	)

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		switch {
		case strings.Contains(line, ":"):
			name, list, _ := strings.Cut(line, ":")
			name = heuristics.StripBullet(name)
			if _, seen := categories[name]; !seen {
				order = append(order, name)
				categories[name] = nil
			}
			categories[name] = append(categories[name], splitList(list)...)
		case heuristics.IsBulleted(line):
			if skill := heuristics.StripBullet(line); skill != "" {
				misc = append(misc, skill)
			}
		case !heuristics.IsUpper(line):
			misc = append(misc, line)
		}
	}

	var out []string
	for _, name := range order {
		skills := categories[name]
		if len(skills) == 0 {
			out = append(out, bullet(name+":"))
			continue
		}
		if len(skills) <= maxInlineSkills {
			out = append(out, bullet(name+": "+strings.Join(skills, ", ")))
			continue
		}
		out = append(out, bullet(name+":"))
		for i := 0; i < len(skills); i += skillChunk {
			end := min(i+skillChunk, len(skills))
			out = append(out, continuation+strings.Join(skills[i:end], ", "))
		}
	}

	if len(misc) > maxMiscSkills {
		misc = misc[:maxMiscSkills]
	}
	switch {
	case len(misc) == 0:
	case len(misc) <= maxInlineMisc:
		out = append(out, bullet(additionalLabel+": "+strings.Join(misc, ", ")))
	default:
		mid := len(misc) / 2
		out = append(out,
			bullet(additionalLabel+": "+strings.Join(misc[:mid], ", ")),
			continuation+strings.Join(misc[mid:], ", "),
		)
	}
	return out
}

func splitList(list string) []string {
	var skills []string
	for _, part := range strings.Split(list, ",") {
		if s := strings.TrimSpace(part); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// Projects keeps title lines as they are and bullets every description line.
func (f *Formatter) Projects(lines []string) []string {
	var out []string
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if f.isProjectTitle(line) {
			out = append(out, line)
			continue
		}
		if text := f.quantify(heuristics.StripBullet(line)); text != "" {
			out = append(out, bullet(text))
		}
	}
	return out
}

func (f *Formatter) isProjectTitle(line string) bool {
	if strings.Contains(line, "|") || heuristics.IsUpper(line) {
		return true
	}
	return heuristics.ContainsAny(strings.ToLower(line), f.Tables.ProjectKeywords)
}

// Education only normalizes internal whitespace.
func (f *Formatter) Education(lines []string) []string {
	var out []string
	for _, raw := range lines {
		line := strings.TrimSpace(whitespacePattern.ReplaceAllString(raw, " "))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Certifications bullets every line.
func (f *Formatter) Certifications(lines []string) []string {
	var out []string
	for _, raw := range lines {
		if text := heuristics.StripBullet(raw); text != "" {
			out = append(out, bullet(text))
		}
	}
	return out
}

// References strips bullets and drops a repeated "References" heading.
// Reference lines name third parties and are never quantified.
func (f *Formatter) References(lines []string) []string {
	var out []string
	for _, raw := range lines {
		text := heuristics.StripBullet(raw)
		if text == "" || strings.EqualFold(strings.TrimSuffix(text, ":"), "references") {
			continue
		}
		out = append(out, text)
	}
	return out
}
