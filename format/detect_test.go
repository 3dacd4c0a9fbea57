package format

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"deck.pptx", PPTX},
		{"DECK.PPTX", PPTX},
		{"old.ppt", LegacyPPT},
		{"doc.docx", DOCX},
		{"sheet.xlsx", XLSX},
		{"slides.odp", ODP},
		{"notes.txt", Unknown},
		{"noextension", Unknown},
	}
	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	ole := []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	if got := DetectFromMagic(ole); got != LegacyPPT {
		t.Errorf("OLE header: got %v, want LegacyPPT", got)
	}

	zipHeader := []byte{0x50, 0x4B, 0x03, 0x04, 0x00, 0x00}
	if got := DetectFromMagic(zipHeader); got != Unknown {
		t.Errorf("ZIP header alone should be Unknown, got %v", got)
	}
	if !IsZipMagic(zipHeader) {
		t.Error("IsZipMagic should accept a ZIP local file header")
	}

	if got := DetectFromMagic([]byte{0x01}); got != Unknown {
		t.Errorf("short input: got %v, want Unknown", got)
	}
}

func buildZip(t *testing.T, names ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		w.Write([]byte("<x/>"))
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDetectFromReader(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  Format
	}{
		{"pptx", []string{"[Content_Types].xml", "ppt/presentation.xml"}, PPTX},
		{"docx", []string{"[Content_Types].xml", "word/document.xml"}, DOCX},
		{"xlsx", []string{"[Content_Types].xml", "xl/workbook.xml"}, XLSX},
		{"plain zip", []string{"readme.md"}, Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := buildZip(t, tt.parts...)
			got, err := DetectFromReader(bytes.NewReader(data), int64(len(data)))
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "deck.pptx")
	data := buildZip(t, "[Content_Types].xml", "_rels/.rels", "ppt/presentation.xml")
	if err := os.WriteFile(good, data, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Validate(good); err != nil {
		t.Errorf("valid package should pass: %v", err)
	}

	if err := Validate(filepath.Join(dir, "absent.pptx")); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing file: got %v", err)
	}

	empty := filepath.Join(dir, "empty.pptx")
	os.WriteFile(empty, nil, 0o644)
	if err := Validate(empty); !errors.Is(err, ErrEmptyFile) {
		t.Errorf("empty file: got %v", err)
	}

	wrongExt := filepath.Join(dir, "deck.txt")
	os.WriteFile(wrongExt, data, 0o644)
	if err := Validate(wrongExt); !errors.Is(err, ErrWrongExtension) {
		t.Errorf("wrong extension: got %v", err)
	}

	legacy := filepath.Join(dir, "old.ppt")
	os.WriteFile(legacy, []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, 0o644)
	if err := Validate(legacy); !errors.Is(err, ErrLegacyFormat) {
		t.Errorf("legacy format: got %v", err)
	}

	notZip := filepath.Join(dir, "fake.pptx")
	os.WriteFile(notZip, []byte("plain text pretending"), 0o644)
	if err := Validate(notZip); !errors.Is(err, ErrNotPresentation) {
		t.Errorf("non-zip: got %v", err)
	}

	incomplete := filepath.Join(dir, "partial.pptx")
	os.WriteFile(incomplete, buildZip(t, "[Content_Types].xml"), 0o644)
	if err := Validate(incomplete); !errors.Is(err, ErrMissingPackagePart) {
		t.Errorf("incomplete package: got %v", err)
	}
}
