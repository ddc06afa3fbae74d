package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"resume-rocket/resume/render"
)

func TestExtractTextFromBytes_ZipDocxNormalizes(t *testing.T) {
	out, err := render.NewDOCXRenderer(nil).Render("Jane Roe\nPROFESSIONAL SUMMARY\nBuilds services")
	if err != nil {
		t.Fatalf("render docx: %v", err)
	}
	text, err := ExtractTextFromBytes(context.Background(), out.Body, "application/zip", "test.docx")
	if err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
	if text != "Jane Roe\nPROFESSIONAL SUMMARY\nBuilds services" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestExtractTextFromBytes_RealZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	_, err = ExtractTextFromBytes(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if !errors.Is(err, ErrUnsupportedFile) {
		t.Fatalf("expected unsupported file error, got %v", err)
	}
	if !strings.Contains(err.Error(), "application/zip") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExtractTextFromBytes_PDFRoundTrip(t *testing.T) {
	out, err := render.NewPDFRenderer(nil).Render("Jane Roe\nPROFESSIONAL EXPERIENCE")
	if err != nil {
		t.Fatalf("render pdf: %v", err)
	}
	text, err := ExtractTextFromBytes(context.Background(), out.Body, "", "resume.pdf")
	if err != nil {
		t.Fatalf("extract pdf: %v", err)
	}
	if !strings.Contains(text, "EXPERIENCE") {
		t.Fatalf("expected heading in extracted text, got %q", text)
	}
}

func TestExtractTextFromBytes_Text(t *testing.T) {
	text, err := ExtractTextFromBytes(context.Background(), []byte("\xef\xbb\xbfJane Roe"), "text/plain; charset=utf-8", "r.txt")
	if err != nil || text != "Jane Roe" {
		t.Fatalf("utf-8 text: %q %v", text, err)
	}

	latin := []byte{'R', 0xE9, 's', 'u', 'm', 0xE9}
	text, err = ExtractTextFromBytes(context.Background(), latin, "", "r.txt")
	if err != nil || text != "Résumé" {
		t.Fatalf("latin-1 text: %q %v", text, err)
	}
}

func TestExtractTextFromBytes_LegacyDocRejected(t *testing.T) {
	_, err := ExtractTextFromBytes(context.Background(), []byte{0xD0, 0xCF}, "application/msword", "old.doc")
	if !errors.Is(err, ErrUnsupportedFile) {
		t.Fatalf("expected unsupported file error, got %v", err)
	}
}

func TestExtractTextFromBytes_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ExtractTextFromBytes(ctx, []byte("x"), "text/plain", "x.txt"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}

func TestValidateUpload(t *testing.T) {
	const limit = 10 << 20
	if err := ValidateUpload("resume.PDF", 1024, limit); err != nil {
		t.Fatalf("expected valid upload, got %v", err)
	}

	cases := []struct {
		name string
		file string
		size int64
		want []string
	}{
		{"too large", "r.pdf", limit + 1, []string{"File size exceeds 10MB limit"}},
		{"empty", "r.txt", 0, []string{"File appears to be empty"}},
		{"legacy doc", "r.doc", 10, []string{"Unsupported file type: .doc. Allowed: PDF, DOCX, TXT"}},
		{"path", "../r.txt", 10, []string{"Invalid filename characters detected"}},
		{"several", `a\b.exe`, 0, []string{
			"File appears to be empty",
			"Unsupported file type: .exe. Allowed: PDF, DOCX, TXT",
			"Invalid filename characters detected",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateUpload(tc.file, tc.size, limit)
			if !errors.Is(err, ErrInvalidUpload) {
				t.Fatalf("expected invalid upload, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if strings.Join(verr.Problems, "|") != strings.Join(tc.want, "|") {
				t.Fatalf("problems = %q, want %q", verr.Problems, tc.want)
			}
		})
	}
}
