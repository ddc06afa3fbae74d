// Package render turns rewritten résumé text into downloadable documents.
package render

import (
	"errors"
	"fmt"
	"strings"
)

// Format is an output document format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatText Format = "txt"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypeText = "text/plain; charset=utf-8"
)

var (
	// ErrBackendUnavailable is wrapped by a RenderError when a renderer's
	// backend failed its startup probe or was disabled.
	ErrBackendUnavailable = errors.New("render backend unavailable")
	// ErrUnsupportedFormat is returned for formats no renderer handles.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Output is a rendered document.
type Output struct {
	Body        []byte
	ContentType string
	Extension   string
	// Fallback is set when the requested backend was unavailable and the
	// plain-text renderer produced Body instead.
	Fallback bool
}

// Renderer renders rewritten résumé text.
type Renderer interface {
	Render(text string) (Output, error)
	Format() Format
}

// RenderError is a renderer failure surfaced to the caller as a message.
type RenderError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render %s: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("render %s: %s", e.Format, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// ParseFormat maps a request path segment to a Format.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatDOCX:
		return FormatDOCX, nil
	case FormatText, "text":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, raw)
	}
}

// FileName joins a stem and the output's extension.
func FileName(stem string, out Output) string {
	ext := strings.TrimPrefix(out.Extension, ".")
	if ext == "" {
		return stem
	}
	return stem + "." + ext
}

// guard runs fn and converts a panic inside the backend into a RenderError.
func guard(format Format, fn func() ([]byte, error)) (body []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			body = nil
			err = &RenderError{Format: format, Message: "renderer crashed", Cause: fmt.Errorf("%v", r)}
		}
	}()
	body, err = fn()
	if err != nil {
		var renderErr *RenderError
		if !errors.As(err, &renderErr) {
			err = &RenderError{Format: format, Message: "renderer failed", Cause: err}
		}
		return nil, err
	}
	return body, nil
}
