package pptx

import (
	"errors"
	"fmt"
)

var (
	// ErrSlideOutOfRange is returned when a requested slide number
	// exceeds the available slides.
	ErrSlideOutOfRange = errors.New("pptx: slide number out of range")

	// ErrNoSlides is returned when a package contains no slide parts.
	ErrNoSlides = errors.New("pptx: presentation contains no slides")
)

// Diagnostic records a non-fatal extraction problem: a sub-feature that
// degraded to its empty value instead of aborting the slide.
type Diagnostic struct {
	Slide   int    // 1-based slide number, 0 for package-level issues
	Context string // what was being extracted
	Err     error
}

func (d Diagnostic) String() string {
	if d.Slide > 0 {
		return fmt.Sprintf("slide %d: %s: %v", d.Slide, d.Context, d.Err)
	}
	return fmt.Sprintf("%s: %v", d.Context, d.Err)
}

// FormatDiagnostics renders diagnostics one per line.
func FormatDiagnostics(diags []Diagnostic) string {
	out := ""
	for i, d := range diags {
		if i > 0 {
			out += "\n"
		}
		out += d.String()
	}
	return out
}
