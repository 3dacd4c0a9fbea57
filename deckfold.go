// Package deckfold provides a fluent API for extracting text, tables, and
// other content from PowerPoint (.pptx) presentations.
//
// Basic usage:
//
//	text, diags, err := deckfold.Open("deck.pptx").Text()
//	if err != nil {
//	    // handle error
//	}
//	if len(diags) > 0 {
//	    log.Println("Diagnostics:", deckfold.FormatDiagnostics(diags))
//	}
//
// With options:
//
//	text, _, err := deckfold.Open("deck.pptx").
//	    Slides(1, 2, 3).
//	    Text()
//
// For advanced use cases, the lower-level pptx package is also available.
package deckfold

import (
	"github.com/deckfold/deckfold/pptx"
)

// Diagnostic is a non-fatal problem recorded during extraction.
type Diagnostic = pptx.Diagnostic

// FormatDiagnostics renders a diagnostic list as one human-readable string.
func FormatDiagnostics(diags []Diagnostic) string {
	return pptx.FormatDiagnostics(diags)
}

// Open opens a .pptx file and returns an Extractor for fluent configuration.
// The returned Extractor must be closed when done, either explicitly via Close()
// or implicitly when calling a terminal operation like Text().
//
// Example:
//
//	text, diags, err := deckfold.Open("deck.pptx").Text()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor from an already-opened pptx.Reader.
// This is useful when you need more control over the reader lifecycle.
// Note: The caller is responsible for closing the reader.
//
// Example:
//
//	r, err := pptx.Open("deck.pptx")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	text, diags, err := deckfold.FromReader(r).Text()
func FromReader(r *pptx.Reader) *Extractor {
	return &Extractor{
		reader:       r,
		ownsReader:   false,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := deckfold.Must(deckfold.Open("deck.pptx").SlideCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to Text() or Markdown() and panics
// if the error is non-nil. It discards diagnostics and returns just the value.
// It is intended for use in scripts or tests where error handling would be cumbersome.
//
// Example:
//
//	text := deckfold.MustText(deckfold.Open("deck.pptx").Text())
func MustText[T any](val T, _ []Diagnostic, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
