// Package enrich adds optional insights and suggestions to a résumé
// assessment.
package enrich

import (
	"context"
	"errors"
	"strings"

	"resume-rocket/resume/model"
)

// Enricher produces extra praise and advice for résumé text. A nil result
// with a nil error means the source had nothing to add.
type Enricher interface {
	Enrich(ctx context.Context, text string) (*model.Enrichment, error)
}

// Provider names accepted by ENRICH_PROVIDER.
const (
	ProviderLocal  = "local"
	ProviderGemini = "gemini"
	ProviderNone   = "none"
)

// ErrUnknownProvider is returned by ParseProvider for unrecognized names.
var ErrUnknownProvider = errors.New("unknown enrich provider")

// ParseProvider normalizes a provider name. Empty means local.
func ParseProvider(raw string) (string, error) {
	switch p := strings.ToLower(strings.TrimSpace(raw)); p {
	case "":
		return ProviderLocal, nil
	case ProviderLocal, ProviderGemini, ProviderNone:
		return p, nil
	default:
		return "", ErrUnknownProvider
	}
}

// Noop never adds anything.
type Noop struct{}

func (Noop) Enrich(context.Context, string) (*model.Enrichment, error) {
	return nil, nil
}

// Chain asks each enricher in turn and returns the first non-empty result.
// Errors are skipped so a failing remote source falls through to the next.
type Chain []Enricher

func (c Chain) Enrich(ctx context.Context, text string) (*model.Enrichment, error) {
	var errs []error
	for _, e := range c {
		out, err := e.Enrich(ctx, text)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !out.Empty() {
			return out, nil
		}
	}
	return nil, errors.Join(errs...)
}
