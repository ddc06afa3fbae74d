// Package util holds small helpers shared by handlers and services.
package util

import (
	"errors"
	"path/filepath"
	"strings"
	"unicode"
)

const maxFileNameRunes = 255

// ErrInvalidFileName is returned for names that cannot be made safe.
var ErrInvalidFileName = errors.New("invalid file name")

// SanitizeFileName keeps the base name of an uploaded file, replaces path
// separators and control characters, and rejects traversal patterns.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidFileName
	}
	s := strings.TrimSpace(strings.ReplaceAll(name, "\\", "/"))
	s = filepath.Base(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || r == '"' {
			return '_'
		}
		return r
	}, s)
	if s == "" || s == "." || s == "/" {
		return "", ErrInvalidFileName
	}
	if runes := []rune(s); len(runes) > maxFileNameRunes {
		s = string(runes[:maxFileNameRunes])
	}
	return s, nil
}
