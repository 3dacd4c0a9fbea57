package format

import (
	"archive/zip"
	"errors"
	"fmt"
	"os"
)

// MaxFileSize is the largest package Validate accepts, in bytes.
const MaxFileSize = 100 * 1024 * 1024

// Validation errors.
var (
	ErrNotFound         = errors.New("format: file not found")
	ErrEmptyFile        = errors.New("format: file is empty")
	ErrTooLarge         = errors.New("format: file exceeds maximum size")
	ErrWrongExtension   = errors.New("format: unsupported file extension")
	ErrNotPresentation  = errors.New("format: not a presentation package")
	ErrLegacyFormat     = errors.New("format: legacy binary .ppt files are not supported")
	ErrMissingPackagePart = errors.New("format: package is missing a required part")
)

// Parts every valid presentation package must contain.
var requiredParts = []string{
	"[Content_Types].xml",
	"_rels/.rels",
	"ppt/presentation.xml",
}

// Validate performs strict validation of a presentation file: existence,
// extension, size bounds, container magic, and required-part presence.
func Validate(path string) error {
	st, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("format: cannot stat %s: %w", path, err)
	}
	if st.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrNotPresentation, path)
	}
	if st.Size() == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}
	if st.Size() > MaxFileSize {
		return fmt.Errorf("%w: %.1fMB (max %dMB)",
			ErrTooLarge, float64(st.Size())/(1024*1024), MaxFileSize/(1024*1024))
	}

	switch Detect(path) {
	case PPTX:
	case LegacyPPT:
		return ErrLegacyFormat
	default:
		return fmt.Errorf("%w: only .pptx files are supported", ErrWrongExtension)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("format: cannot open %s: %w", path, err)
	}
	defer f.Close()

	magic := make([]byte, 8)
	n, _ := f.ReadAt(magic, 0)
	if DetectFromMagic(magic[:n]) == LegacyPPT {
		return ErrLegacyFormat
	}
	if !IsZipMagic(magic[:n]) {
		return fmt.Errorf("%w: not a ZIP container", ErrNotPresentation)
	}

	zr, err := zip.NewReader(f, st.Size())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotPresentation, err)
	}
	present := make(map[string]bool, len(zr.File))
	for _, zf := range zr.File {
		present[zf.Name] = true
	}
	for _, required := range requiredParts {
		if !present[required] {
			return fmt.Errorf("%w: %s", ErrMissingPackagePart, required)
		}
	}
	return nil
}
