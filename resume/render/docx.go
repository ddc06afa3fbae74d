package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"resume-rocket/resume/classify"
	"resume-rocket/resume/heuristics"
)

const (
	documentPart = "word/document.xml"

	// Letter page and margins in twentieths of a point.
	pageWidthTwips    = 12240
	pageHeightTwips   = 15840
	marginTopTwips    = 720
	marginSideTwips   = 1080
	twipsPerInch      = 1440
	twipsPerPoint     = 20
	halfPointsPerSize = 2
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
	`</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`</Relationships>`

const corePropsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` +
	`<dc:title>Resume</dc:title><dc:creator>resume-rocket</dc:creator>` +
	`<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>` +
	`</cp:coreProperties>`

// DOCXRenderer writes a WordprocessingML package with one styled paragraph
// per classified line.
type DOCXRenderer struct {
	Classifier *classify.Classifier
	Now        func() time.Time
}

// NewDOCXRenderer returns a DOCX renderer over tables.
func NewDOCXRenderer(tables *heuristics.Tables) *DOCXRenderer {
	return &DOCXRenderer{Classifier: classify.New(tables), Now: time.Now}
}

func (r *DOCXRenderer) Format() Format { return FormatDOCX }

func (r *DOCXRenderer) Render(text string) (Output, error) {
	body, err := guard(FormatDOCX, func() ([]byte, error) {
		return r.render(text)
	})
	if err != nil {
		return Output{}, err
	}
	return Output{Body: body, ContentType: ContentTypeDOCX, Extension: string(FormatDOCX)}, nil
}

func (r *DOCXRenderer) render(text string) ([]byte, error) {
	lines := r.Classifier.Document(text)
	xmlText, err := renderDocumentXML(lines, r.Classifier.Tables)
	if err != nil {
		return nil, err
	}

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	parts := []struct {
		name    string
		content []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"docProps/core.xml", []byte(fmt.Sprintf(corePropsXML, now().UTC().Format(time.RFC3339)))},
		{documentPart, []byte(xmlText)},
	}

	var output bytes.Buffer
	writer := zip.NewWriter(&output)
	for _, part := range parts {
		if err := writeZipFile(writer, part.name, part.content); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

func renderDocumentXML(lines []classify.Line, tables *heuristics.Tables) (string, error) {
	body := w("body")
	for _, line := range lines {
		if line.Type == classify.Blank {
			continue
		}
		body.add(paragraph(ParagraphText(line), StyleFor(line, tables)))
	}
	if len(body.Children) == 0 {
		body.add(w("p"))
	}
	paragraphs := len(body.Children)
	body.add(sectionProperties())

	root := w("document",
		xml.Attr{Name: xml.Name{Local: "xmlns:w"}, Value: wmlNamespace},
		xml.Attr{Name: xml.Name{Local: "xmlns:r"}, Value: relNamespace},
	).add(body)

	xmlText, err := encodeXMLDocument(root)
	if err != nil {
		return "", err
	}
	if err := checkParagraphs(xmlText, paragraphs); err != nil {
		return "", err
	}
	return xmlText, nil
}

func paragraph(text string, style Style) *xmlNode {
	spacing := w("spacing", wAttr("after", twips(style.SpaceAfter)))
	if style.SpaceBefore > 0 {
		spacing.Attr = append([]xml.Attr{wAttr("before", twips(style.SpaceBefore))}, spacing.Attr...)
	}
	props := w("pPr").add(spacing)
	if style.Indent > 0 {
		props.add(w("ind", wAttr("left", strconv.Itoa(int(style.Indent*twipsPerInch)))))
	}
	align := "left"
	if style.Align == AlignCenter {
		align = "center"
	}
	props.add(w("jc", wAttr("val", align)))

	size := strconv.Itoa(int(style.Size * halfPointsPerSize))
	runProps := w("rPr").add(
		w("rFonts", wAttr("ascii", FontFamily), wAttr("hAnsi", FontFamily), wAttr("cs", FontFamily)),
	)
	if style.Bold {
		runProps.add(w("b"))
	}
	runProps.add(w("sz", wAttr("val", size)), w("szCs", wAttr("val", size)))

	t := w("t", xml.Attr{Name: xml.Name{Local: "xml:space"}, Value: "preserve"}).add(textNode(sanitizeXMLText(text)))
	return w("p").add(props, w("r").add(runProps, t))
}

func sectionProperties() *xmlNode {
	return w("sectPr").add(
		w("pgSz", wAttr("w", strconv.Itoa(pageWidthTwips)), wAttr("h", strconv.Itoa(pageHeightTwips))),
		w("pgMar",
			wAttr("top", strconv.Itoa(marginTopTwips)),
			wAttr("right", strconv.Itoa(marginSideTwips)),
			wAttr("bottom", strconv.Itoa(marginTopTwips)),
			wAttr("left", strconv.Itoa(marginSideTwips)),
			wAttr("header", "0"),
			wAttr("footer", "0"),
			wAttr("gutter", "0"),
		),
	)
}

func twips(points float64) string {
	return strconv.Itoa(int(points * twipsPerPoint))
}

// sanitizeXMLText drops characters XML 1.0 cannot carry.
func sanitizeXMLText(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return r
		case r < 0x20, r == 0xFFFE, r == 0xFFFF:
			return -1
		case r >= 0xD800 && r <= 0xDFFF:
			return -1
		default:
			return r
		}
	}, text)
}

func writeZipFile(writer *zip.Writer, name string, content []byte) error {
	dst, err := writer.CreateHeader(&zip.FileHeader{Name: normalizeZipName(name), Method: zip.Deflate})
	if err != nil {
		return err
	}
	if _, err := dst.Write(content); err != nil {
		return err
	}
	return nil
}

func readZipFile(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	return content, nil
}

func normalizeZipName(name string) string {
	return strings.ReplaceAll(name, "\\", "/")
}

// Paragraph is one paragraph read back from a DOCX package.
type Paragraph struct {
	Text   string
	Bold   bool
	Size   float64
	Center bool
	Indent float64
}

// ReadDOCX opens a DOCX package and returns its body paragraphs.
func ReadDOCX(data []byte) ([]Paragraph, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}
	for _, file := range reader.File {
		if normalizeZipName(file.Name) != documentPart {
			continue
		}
		content, err := readZipFile(file)
		if err != nil {
			return nil, err
		}
		root, err := parseXMLDocument(string(content))
		if err != nil {
			return nil, err
		}
		return collectParagraphs(root), nil
	}
	return nil, errors.New("docx has no " + documentPart)
}

func collectParagraphs(root *xmlNode) []Paragraph {
	body := findElement(root, "body")
	if body == nil {
		return nil
	}
	var out []Paragraph
	for _, n := range body.Children {
		if !isElement(n, "p") {
			continue
		}
		para := Paragraph{Text: paragraphText(n), Bold: findElement(n, "b") != nil}
		if sz := findElement(n, "sz"); sz != nil {
			if v, err := strconv.Atoi(attrValue(sz, "val")); err == nil {
				para.Size = float64(v) / halfPointsPerSize
			}
		}
		para.Center = attrValue(findElement(n, "jc"), "val") == "center"
		if ind := findElement(n, "ind"); ind != nil {
			if v, err := strconv.Atoi(attrValue(ind, "left")); err == nil {
				para.Indent = float64(v) / twipsPerInch
			}
		}
		out = append(out, para)
	}
	return out
}
