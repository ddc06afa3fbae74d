// Package extract pulls plain text out of uploaded résumé files.
package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/charmap"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeText = "text/plain"
	mimeDOC  = "application/msword"
)

var (
	// ErrUnsupportedFile is returned for file types text cannot be read from.
	ErrUnsupportedFile = errors.New("unsupported file type")
	// ErrInvalidUpload wraps every upload validation failure.
	ErrInvalidUpload = errors.New("invalid upload")
)

var allowedExtensions = map[string]string{
	".pdf":  mimePDF,
	".docx": mimeDOCX,
	".txt":  mimeText,
}

// ValidationError lists every problem found with an upload.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidUpload
}

// ValidateUpload checks an upload's name and size before it is read.
func ValidateUpload(name string, size, maxBytes int64) error {
	var problems []string
	if maxBytes > 0 && size > maxBytes {
		problems = append(problems, fmt.Sprintf("File size exceeds %s limit", humanSize(maxBytes)))
	}
	if size == 0 {
		problems = append(problems, "File appears to be empty")
	}
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := allowedExtensions[ext]; !ok {
		problems = append(problems, fmt.Sprintf("Unsupported file type: %s. Allowed: PDF, DOCX, TXT", ext))
	}
	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		problems = append(problems, "Invalid filename characters detected")
	}
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}

func humanSize(n int64) string {
	if n%(1<<20) == 0 {
		return fmt.Sprintf("%dMB", n>>20)
	}
	return fmt.Sprintf("%d bytes", n)
}

// ExtractTextFromBytes extracts text from an in-memory payload. The MIME
// type wins when it names a supported format; otherwise the file extension
// decides.
func ExtractTextFromBytes(ctx context.Context, data []byte, mimeType string, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	normalized := normalizeMimeType(mimeType, fileName, data)
	switch normalized {
	case mimePDF:
		return extractPDF(data)
	case mimeDOCX:
		return extractDOCX(data)
	case mimeText:
		return decodeText(data), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFile, normalized)
	}
}

func extractPDF(data []byte) (string, error) {
	pdfReader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()
		raw, err := io.ReadAll(rc)
		if err != nil {
			return "", err
		}
		return stripDocxXML(string(raw)), nil
	}
	return "", errors.New("document.xml file not found")
}

// stripDocxXML keeps character data and ends a line at every paragraph or
// break.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.EndElement:
			if (t.Name.Local == "p" || t.Name.Local == "br") && buf.Len() > 0 {
				buf.WriteString("\n")
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

// decodeText reads UTF-8, falling back to ISO-8859-1 for legacy files.
func decodeText(data []byte) string {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if utf8.Valid(data) {
		return string(data)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "")
	}
	return string(decoded)
}

func normalizeMimeType(mimeType string, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	switch clean {
	case mimePDF, mimeDOCX, mimeText, mimeDOC:
		return clean
	case "application/zip":
		if mapOOXMLFromZip(data) {
			return mimeDOCX
		}
		return clean
	}
	if byExt, ok := allowedExtensions[strings.ToLower(filepath.Ext(fileName))]; ok {
		return byExt
	}
	if clean == "" {
		return "application/octet-stream"
	}
	return clean
}

func mapOOXMLFromZip(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			return true
		}
	}
	return false
}
