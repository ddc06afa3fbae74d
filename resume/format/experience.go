package format

import (
	"strings"

	"resume-rocket/resume/heuristics"
)

// experienceState is threaded through the experience rules line by line.
type experienceState struct {
	jobOpen bool
}

// experienceRule is one row of the experience rule table. Rules are tried in
// order and the first match decides how a line is emitted.
type experienceRule struct {
	name  string
	match func(f *Formatter, line string, st experienceState) bool
	emit  func(f *Formatter, line string, st experienceState) ([]string, experienceState)
}

var experienceRules = []experienceRule{
	{name: "job-title", match: (*Formatter).isJobLine, emit: emitJob},
	{name: "bullet", match: func(_ *Formatter, line string, _ experienceState) bool {
		return heuristics.IsBulleted(line)
	}, emit: emitBullet},
	{name: "sub-header", match: func(_ *Formatter, line string, _ experienceState) bool {
		return heuristics.IsUpper(line)
	}, emit: emitAsIs},
	// Description lines are promoted whether or not a job line came first,
	// so achievements listed under a bare heading are not lost.
	{name: "promoted", match: func(*Formatter, string, experienceState) bool { return true }, emit: emitBullet},
}

// Experience formats work history: job lines stay plain with a blank line
// between jobs, description lines become quantified bullets.
func (f *Formatter) Experience(lines []string) []string {
	var (
		out []string
		st  experienceState
	)
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		for _, rule := range experienceRules {
			if !rule.match(f, line, st) {
				continue
			}
			var emitted []string
			emitted, st = rule.emit(f, line, st)
			out = append(out, emitted...)
			break
		}
	}
	return out
}

func (f *Formatter) isJobLine(line string, _ experienceState) bool {
	lower := strings.ToLower(line)
	if strings.Contains(line, "|") && heuristics.ContainsAny(lower, f.Tables.EmployerKeywords) {
		return true
	}
	if yearPattern.MatchString(line) &&
		(strings.Contains(line, "–") || strings.Contains(line, "-") || toWordPattern.MatchString(line)) {
		return true
	}
	return !heuristics.IsBulleted(line) && heuristics.ContainsAny(lower, f.Tables.RoleKeywords)
}

func emitJob(_ *Formatter, line string, st experienceState) ([]string, experienceState) {
	if st.jobOpen {
		return []string{"", line}, experienceState{jobOpen: true}
	}
	return []string{line}, experienceState{jobOpen: true}
}

func emitBullet(f *Formatter, line string, st experienceState) ([]string, experienceState) {
	text := f.quantify(heuristics.StripBullet(line))
	if text == "" {
		return nil, st
	}
	return []string{bullet(text)}, st
}

func emitAsIs(_ *Formatter, line string, st experienceState) ([]string, experienceState) {
	return []string{line}, st
}
