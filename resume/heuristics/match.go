package heuristics

import (
	"strings"
	"unicode"
)

// ContainsAny reports whether s contains any of the given substrings.
func ContainsAny(s string, words []string) bool {
	for _, w := range words {
		if w != "" && strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether s contains every one of the given substrings.
func ContainsAll(s string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(s, w) {
			return false
		}
	}
	return true
}

// IsUpper reports whether s has at least one cased letter and no lower-case ones.
func IsUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}

// IsBulleted reports whether a line starts with a bullet or dash marker.
func IsBulleted(line string) bool {
	return strings.HasPrefix(line, Bullet) || strings.HasPrefix(line, "-")
}

// StripBullet removes a leading bullet or dash marker and surrounding space.
func StripBullet(line string) string {
	switch {
	case strings.HasPrefix(line, Bullet):
		return strings.TrimSpace(strings.TrimPrefix(line, Bullet))
	case strings.HasPrefix(line, "-"):
		return strings.TrimSpace(strings.TrimPrefix(line, "-"))
	default:
		return strings.TrimSpace(line)
	}
}

// HasDigit reports whether s contains an ASCII or Unicode digit.
func HasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
