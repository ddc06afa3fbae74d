// Package section splits résumé text into tagged sections.
package section

import (
	"strings"

	"resume-rocket/resume/heuristics"
)

// Tag names one résumé section.
type Tag string

const (
	Header         Tag = heuristics.SectionHeader
	Summary        Tag = heuristics.SectionSummary
	Skills         Tag = heuristics.SectionSkills
	Experience     Tag = heuristics.SectionExperience
	Education      Tag = heuristics.SectionEducation
	Certifications Tag = heuristics.SectionCertifications
	Projects       Tag = heuristics.SectionProjects
	References     Tag = heuristics.SectionReferences
	Other          Tag = heuristics.SectionOther
)

// Order is the order sections appear in a rewritten document.
var Order = []Tag{Header, Summary, Skills, Experience, Projects, Education, Certifications, References, Other}

// Map holds the content lines of each section in document order.
type Map map[Tag][]string

// Lines returns the lines filed under tag.
func (m Map) Lines(tag Tag) []string {
	return m[tag]
}

// Empty reports whether no section holds any line.
func (m Map) Empty() bool {
	for _, lines := range m {
		if len(lines) > 0 {
			return false
		}
	}
	return true
}

// Strings converts the map to plain string keys for JSON responses.
func (m Map) Strings() map[string][]string {
	out := make(map[string][]string, len(m))
	for tag, lines := range m {
		out[string(tag)] = append([]string(nil), lines...)
	}
	return out
}

// SplitLines splits raw text into trimmed, non-blank lines.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Trigger reports which section a line opens, if any. Triggers are tested in
// table order and the first match wins.
func Trigger(line string, tables *heuristics.Tables) (Tag, bool) {
	upper := strings.ToUpper(strings.TrimSpace(line))
	for _, trigger := range tables.Triggers {
		for _, keyword := range trigger.Keywords {
			if keyword == "" {
				continue
			}
			if trigger.Exact && upper == keyword {
				return Tag(trigger.Section), true
			}
			if !trigger.Exact && strings.Contains(upper, keyword) {
				return Tag(trigger.Section), true
			}
		}
	}
	return "", false
}

// Dropped reports whether a line is a separator or an annotation left by an
// earlier rewrite.
func Dropped(line string, tables *heuristics.Tables) bool {
	if tables.SeparatorPrefix != "" && strings.HasPrefix(line, tables.SeparatorPrefix) {
		return true
	}
	return heuristics.ContainsAny(line, tables.AnnotationMarkers)
}

// Segment files each line under the section opened by the most recent
// trigger line. Trigger lines themselves are consumed.
func Segment(lines []string, tables *heuristics.Tables) Map {
	if tables == nil {
		tables = heuristics.Default()
	}
	sections := Map{}
	current := Header
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if tag, ok := Trigger(line, tables); ok {
			current = tag
			continue
		}
		if Dropped(line, tables) {
			continue
		}
		sections[current] = append(sections[current], line)
	}
	return sections
}
