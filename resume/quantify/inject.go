// Package quantify adds a plausible quantifier to achievement lines that have none.
package quantify

import (
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"resume-rocket/resume/heuristics"
)

// Source is the randomness the injector draws payloads from.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

var placeholderPattern = regexp.MustCompile(`\[add specific metric:.*?\]`)

// Injector appends or splices a metric into eligible lines.
type Injector struct {
	Cues []heuristics.MetricCue
	Rand Source
}

// New builds an injector over the given cues. A nil source is replaced by a
// time-seeded one.
func New(cues []heuristics.MetricCue, src Source) *Injector {
	if src == nil {
		src = newLockedSource(time.Now().UnixNano())
	}
	return &Injector{Cues: cues, Rand: src}
}

// NewSeeded builds an injector whose draws are reproducible for a given seed.
// The source is safe for concurrent use.
func NewSeeded(cues []heuristics.MetricCue, seed int64) *Injector {
	return &Injector{Cues: cues, Rand: newLockedSource(seed)}
}

// Eligible reports whether a line carries no number, currency or percentage yet.
func Eligible(line string) bool {
	if heuristics.HasDigit(line) {
		return false
	}
	return !strings.ContainsAny(line, "$€£%")
}

// Inject returns line with at most one metric added. Lines that are ineligible
// or match no cue are returned unchanged. A metric placeholder is stripped only
// when a metric replaces it.
func (in *Injector) Inject(line string) string {
	if !Eligible(line) {
		return line
	}
	text := strings.TrimSpace(placeholderPattern.ReplaceAllString(line, ""))
	lower := strings.ToLower(text)

	for _, cue := range in.Cues {
		if !matches(cue, lower) {
			continue
		}
		payload := in.pick(cue.Candidates)
		if payload == "" {
			return line
		}
		switch cue.Mode {
		case heuristics.MetricSplice:
			return splice(text, lower, cue.Target, payload)
		default:
			return text + cue.Prefix + payload + cue.Suffix
		}
	}
	return line
}

func matches(cue heuristics.MetricCue, lower string) bool {
	if !heuristics.ContainsAll(lower, cue.Requires) {
		return false
	}
	if len(cue.AnyOf) > 0 && !heuristics.ContainsAny(lower, cue.AnyOf) {
		return false
	}
	return true
}

func (in *Injector) pick(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	if in.Rand == nil {
		return candidates[0]
	}
	i := in.Rand.Intn(len(candidates))
	if i < 0 || i >= len(candidates) {
		i = 0
	}
	return candidates[i]
}

// splice inserts payload before the first case-insensitive occurrence of target.
func splice(text, lower, target, payload string) string {
	idx := strings.Index(lower, strings.ToLower(target))
	if idx < 0 || len(lower) != len(text) {
		return text + " (" + payload + " " + target + ")"
	}
	return text[:idx] + payload + " " + text[idx:]
}

type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func newLockedSource(seed int64) *lockedSource {
	return &lockedSource{rnd: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}
