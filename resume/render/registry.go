package render

import (
	"errors"
	"fmt"

	"resume-rocket/resume/heuristics"
)

const probeText = "PROBE\n• backend check"

// Options configures which renderers a Registry offers.
type Options struct {
	DisablePDF  bool
	DisableDOCX bool
	// PDFProbe and DOCXProbe replace the default probe, which renders a
	// one-line document through the backend.
	PDFProbe  func() error
	DOCXProbe func() error
	Tables    *heuristics.Tables
}

// Registry resolves a Format to a Renderer. Backend availability is decided
// once, when the registry is built.
type Registry struct {
	renderers map[Format]Renderer
	status    map[Format]error
}

// NewRegistry probes the document backends and builds the renderer set. An
// unavailable PDF backend degrades to plain text; an unavailable DOCX
// backend reports a RenderError on every call.
func NewRegistry(opts Options) *Registry {
	tables := opts.Tables
	if tables == nil {
		tables = heuristics.Default()
	}
	pdfRenderer := NewPDFRenderer(tables)
	docxRenderer := NewDOCXRenderer(tables)

	reg := &Registry{
		renderers: map[Format]Renderer{FormatText: TextRenderer{}},
		status:    map[Format]error{FormatText: nil},
	}

	pdfErr := probe(opts.DisablePDF, opts.PDFProbe, pdfRenderer)
	reg.status[FormatPDF] = pdfErr
	if pdfErr != nil {
		reg.renderers[FormatPDF] = fallbackRenderer{format: FormatPDF}
	} else {
		reg.renderers[FormatPDF] = pdfRenderer
	}

	docxErr := probe(opts.DisableDOCX, opts.DOCXProbe, docxRenderer)
	reg.status[FormatDOCX] = docxErr
	if docxErr != nil {
		reg.renderers[FormatDOCX] = unavailableRenderer{format: FormatDOCX, cause: docxErr}
	} else {
		reg.renderers[FormatDOCX] = docxRenderer
	}
	return reg
}

func probe(disabled bool, custom func() error, r Renderer) (err error) {
	if disabled {
		return errors.New("disabled by configuration")
	}
	if custom != nil {
		defer func() {
			if p := recover(); p != nil {
				err = fmt.Errorf("probe panicked: %v", p)
			}
		}()
		return custom()
	}
	_, err = r.Render(probeText)
	return err
}

// For returns the renderer for f.
func (r *Registry) For(f Format) (Renderer, error) {
	renderer, ok := r.renderers[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	return renderer, nil
}

// Available reports the probe result for f. A nil error means the real
// backend serves f.
func (r *Registry) Available(f Format) error {
	err, ok := r.status[f]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return nil
}

// Status lists every format with its availability error, nil when ready.
func (r *Registry) Status() map[Format]error {
	out := make(map[Format]error, len(r.status))
	for f := range r.status {
		out[f] = r.Available(f)
	}
	return out
}

// fallbackRenderer stands in for an unavailable backend by returning the
// text unchanged as a .txt document.
type fallbackRenderer struct {
	format Format
}

func (f fallbackRenderer) Format() Format { return f.format }

func (f fallbackRenderer) Render(text string) (Output, error) {
	out, err := TextRenderer{}.Render(text)
	if err != nil {
		return Output{}, err
	}
	out.Fallback = true
	return out, nil
}

type unavailableRenderer struct {
	format Format
	cause  error
}

func (u unavailableRenderer) Format() Format { return u.format }

func (u unavailableRenderer) Render(string) (Output, error) {
	return Output{}, &RenderError{
		Format:  u.format,
		Message: fmt.Sprintf("%s backend unavailable", u.format),
		Cause:   fmt.Errorf("%w: %v", ErrBackendUnavailable, u.cause),
	}
}
