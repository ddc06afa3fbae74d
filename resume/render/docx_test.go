package render

import (
	"archive/zip"
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-rocket/resume/heuristics"
)

const styledResume = `Jane Roe
jane@x.com | 555-123-4567
Backend Engineer

PROFESSIONAL EXPERIENCE
Acme Inc | Remote | 2019 - 2023
Senior Engineer
• Led migrations

EDUCATION
Bachelor of Science, Computer Science
Cumulative GPA:
---
REWRITE NOTES:
• not rendered`

func TestDOCXRendererStyles(t *testing.T) {
	r := NewDOCXRenderer(heuristics.Default())
	out, err := r.Render(styledResume)
	require.NoError(t, err)
	assert.Equal(t, ContentTypeDOCX, out.ContentType)
	assert.Equal(t, "docx", out.Extension)
	assert.False(t, out.Fallback)

	paras, err := ReadDOCX(out.Body)
	require.NoError(t, err)

	want := []Paragraph{
		{Text: "Jane Roe", Bold: true, Size: 18, Center: true},
		{Text: "jane@x.com | 555-123-4567", Size: 11, Center: true},
		{Text: "Backend Engineer", Bold: true, Size: 14, Center: true},
		{Text: "PROFESSIONAL EXPERIENCE", Bold: true, Size: 14},
		{Text: "Acme Inc | Remote | 2019 - 2023", Size: 11},
		{Text: "Senior Engineer", Bold: true, Size: 12},
		{Text: "• Led migrations", Size: 11, Indent: 0.25},
		{Text: "EDUCATION", Bold: true, Size: 14},
		{Text: "Bachelor of Science, Computer Science", Bold: true, Size: 12},
		{Text: "Cumulative GPA:", Bold: true, Size: 11},
	}
	assert.Equal(t, want, paras)
}

func TestDOCXRendererPackageParts(t *testing.T) {
	r := NewDOCXRenderer(nil)
	r.Now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	out, err := r.Render("Jane Roe")
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(out.Body), int64(len(out.Body)))
	require.NoError(t, err)
	names := map[string]*zip.File{}
	for _, f := range reader.File {
		names[f.Name] = f
	}
	for _, part := range []string{"[Content_Types].xml", "_rels/.rels", "docProps/core.xml", documentPart} {
		assert.Contains(t, names, part)
	}
	core, err := readZipFile(names["docProps/core.xml"])
	require.NoError(t, err)
	assert.Contains(t, string(core), "2026-01-02T03:04:05Z")
}

func TestDOCXRendererEmptyInput(t *testing.T) {
	out, err := NewDOCXRenderer(nil).Render("")
	require.NoError(t, err)

	paras, err := ReadDOCX(out.Body)
	require.NoError(t, err)
	require.Len(t, paras, 1)
	assert.Empty(t, paras[0].Text)
}

func TestDOCXRendererDropsInvalidXMLChars(t *testing.T) {
	out, err := NewDOCXRenderer(nil).Render("PROFESSIONAL SUMMARY\nTab\x01bed <text> & more")
	require.NoError(t, err)

	paras, err := ReadDOCX(out.Body)
	require.NoError(t, err)
	require.Len(t, paras, 2)
	assert.Equal(t, "Tabbed <text> & more", paras[1].Text)
}

func TestReadDOCXRejectsGarbage(t *testing.T) {
	_, err := ReadDOCX([]byte("not a zip"))
	assert.Error(t, err)
}

func TestRenderDocumentXMLOneParagraphPerLine(t *testing.T) {
	tables := heuristics.Default()
	lines := NewDOCXRenderer(tables).Classifier.Document("Jane Roe\n\nPROFESSIONAL SUMMARY\nShips things\n\n")

	xmlText, err := renderDocumentXML(lines, tables)
	require.NoError(t, err)
	require.NoError(t, checkParagraphs(xmlText, 3))
	assert.ErrorContains(t, checkParagraphs(xmlText, 4), "has 3 paragraphs, want 4")
}

func TestCheckParagraphsRejectsMalformedXML(t *testing.T) {
	body := `<w:document xmlns:w="` + wmlNamespace + `"><w:body><w:p></w:body></w:document>`
	assert.ErrorContains(t, checkParagraphs(body, 1), "parse failed")
	assert.Error(t, checkParagraphs("", 0))
}
