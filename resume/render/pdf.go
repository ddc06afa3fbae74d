package render

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"

	"resume-rocket/resume/classify"
	"resume-rocket/resume/heuristics"
)

// Flow layout metrics in points on a Letter page.
const (
	pdfMargin     = 50.0
	pdfLineHeight = 14.0
	pdfHeadSize   = 12.0
	pdfBodySize   = 10.0
	pdfFont       = "Helvetica"
	pdfEllipsis   = "..."
	shortHeadings = 3

	// MaxLineRunes caps a single source line so pathological input still
	// lays out in a bounded number of pages.
	MaxLineRunes = 2000
)

// PDFRenderer lays classified lines out top to bottom with word wrap and
// page breaks.
type PDFRenderer struct {
	Classifier *classify.Classifier
	// Compress toggles stream compression. Tests switch it off to read
	// page content back.
	Compress bool
}

// NewPDFRenderer returns a PDF renderer over tables.
func NewPDFRenderer(tables *heuristics.Tables) *PDFRenderer {
	return &PDFRenderer{Classifier: classify.New(tables), Compress: true}
}

func (r *PDFRenderer) Format() Format { return FormatPDF }

func (r *PDFRenderer) Render(text string) (Output, error) {
	body, err := guard(FormatPDF, func() ([]byte, error) {
		return r.render(text)
	})
	if err != nil {
		return Output{}, err
	}
	return Output{Body: body, ContentType: ContentTypePDF, Extension: string(FormatPDF)}, nil
}

type flowWriter struct {
	doc       *fpdf.Fpdf
	translate func(string) string
	y         float64
	bottom    float64
	width     float64
}

func (r *PDFRenderer) render(text string) ([]byte, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetCompression(r.Compress)
	doc.SetCreator("resume-rocket", false)
	doc.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	pageWidth, pageHeight := doc.GetPageSize()
	fw := &flowWriter{
		doc:       doc,
		translate: doc.UnicodeTranslatorFromDescriptor(""),
		y:         pdfMargin,
		bottom:    pageHeight - pdfMargin,
		width:     pageWidth - 2*pdfMargin,
	}

	for _, line := range r.Classifier.Document(text) {
		if line.Type == classify.Blank {
			fw.advance()
			continue
		}
		fw.draw(line)
		if err := doc.Error(); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (fw *flowWriter) draw(line classify.Line) {
	text := truncateRunes(line.Text, MaxLineRunes)
	if heading(line) {
		fw.doc.SetFont(pdfFont, "B", pdfHeadSize)
	} else {
		fw.doc.SetFont(pdfFont, "", pdfBodySize)
	}
	for _, sub := range fw.wrap(fw.translate(text)) {
		fw.breakIfFull()
		fw.doc.Text(pdfMargin, fw.y, sub)
		fw.y += pdfLineHeight
	}
}

func (fw *flowWriter) advance() {
	fw.breakIfFull()
	fw.y += pdfLineHeight
}

func (fw *flowWriter) breakIfFull() {
	if fw.y > fw.bottom {
		fw.doc.AddPage()
		fw.y = pdfMargin
	}
}

// wrap splits text into lines no wider than the printable width. A single
// word wider than the line is cut and marked with an ellipsis.
func (fw *flowWriter) wrap(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var (
		lines   []string
		current string
	)
	for _, word := range words {
		if fw.doc.GetStringWidth(word) > fw.width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, fw.fit(word))
			continue
		}
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if fw.doc.GetStringWidth(candidate) > fw.width {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// fit trims an over-wide word until it fits with the ellipsis appended.
// Translated text is single-byte so slicing by byte is safe.
func (fw *flowWriter) fit(word string) string {
	for n := len(word) - 1; n > 0; n-- {
		if cut := word[:n] + pdfEllipsis; fw.doc.GetStringWidth(cut) <= fw.width {
			return cut
		}
	}
	return pdfEllipsis
}

func heading(line classify.Line) bool {
	switch line.Type {
	case classify.SectionHeader, classify.Name:
		return true
	}
	if strings.HasPrefix(line.Text, "===") {
		return true
	}
	return heuristics.IsUpper(line.Text) && len(strings.Fields(line.Text)) <= shortHeadings
}

func truncateRunes(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit]) + pdfEllipsis
}
