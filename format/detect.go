// Package format provides file format detection and validation for
// presentation packages.
package format

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a detected file format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PPTX indicates an Office Open XML presentation.
	PPTX
	// LegacyPPT indicates a pre-2007 binary PowerPoint file (OLE
	// compound document). These are detected so they can be rejected
	// with a useful error; they are never parsed.
	LegacyPPT
	// DOCX indicates an Office Open XML word-processing document.
	DOCX
	// XLSX indicates an Office Open XML spreadsheet.
	XLSX
	// ODP indicates an OpenDocument presentation.
	ODP
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PPTX:
		return "PPTX"
	case LegacyPPT:
		return "PPT"
	case DOCX:
		return "DOCX"
	case XLSX:
		return "XLSX"
	case ODP:
		return "ODP"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PPTX:
		return ".pptx"
	case LegacyPPT:
		return ".ppt"
	case DOCX:
		return ".docx"
	case XLSX:
		return ".xlsx"
	case ODP:
		return ".odp"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pptx":
		return PPTX
	case ".ppt":
		return LegacyPPT
	case ".docx":
		return DOCX
	case ".xlsx":
		return XLSX
	case ".odp":
		return ODP
	default:
		return Unknown
	}
}

// DetectFromMagic checks file magic bytes to determine format.
// ZIP-based formats cannot be told apart from magic bytes alone; for
// those the caller should use DetectFromReader.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// OLE compound document header: legacy binary Office formats.
	if len(data) >= 8 &&
		data[0] == 0xD0 && data[1] == 0xCF && data[2] == 0x11 && data[3] == 0xE0 &&
		data[4] == 0xA1 && data[5] == 0xB1 && data[6] == 0x1A && data[7] == 0xE1 {
		return LegacyPPT
	}

	// ZIP magic: PK\x03\x04. Could be PPTX, DOCX, XLSX, ODP or any
	// other ZIP container.
	if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		return Unknown
	}

	return Unknown
}

// IsZipMagic reports whether the data starts with a ZIP local file header.
func IsZipMagic(data []byte) bool {
	return len(data) >= 4 &&
		data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04
}

// DetectFromReader inspects the content to determine format. This is
// more reliable than extension-based detection and distinguishes the
// ZIP-based Office formats from each other.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 8)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if f := DetectFromMagic(magic); f != Unknown {
		return f, nil
	}
	if IsZipMagic(magic) {
		return detectZIPFormat(r, size)
	}
	return Unknown, nil
}

// detectZIPFormat inspects a ZIP archive to determine which Office
// format it holds.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	// OpenDocument formats carry a mimetype file at the start.
	for _, f := range zr.File {
		if f.Name == "mimetype" {
			rc, err := f.Open()
			if err == nil {
				data := make([]byte, 256)
				n, _ := rc.Read(data)
				rc.Close()
				if strings.Contains(string(data[:n]), "application/vnd.oasis.opendocument.presentation") {
					return ODP, nil
				}
			}
		}
	}

	for _, f := range zr.File {
		switch {
		case strings.HasPrefix(f.Name, "ppt/"):
			return PPTX, nil
		case strings.HasPrefix(f.Name, "word/"):
			return DOCX, nil
		case strings.HasPrefix(f.Name, "xl/"):
			return XLSX, nil
		}
	}

	return Unknown, nil
}
