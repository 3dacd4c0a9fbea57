package deckfold

import (
	"fmt"
	"sort"
	"strings"

	"github.com/deckfold/deckfold/cache"
	"github.com/deckfold/deckfold/format"
	"github.com/deckfold/deckfold/media"
	"github.com/deckfold/deckfold/model"
	"github.com/deckfold/deckfold/ocr"
	"github.com/deckfold/deckfold/opc"
	"github.com/deckfold/deckfold/pptx"
)

// Extractor provides a fluent interface for extracting content from
// presentations. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method
// chaining.
type Extractor struct {
	// Source
	filename string

	// Reader
	reader *pptx.Reader

	// Lifecycle
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool // true if reader has been opened

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		reader:       e.reader,
		ownsReader:   e.ownsReader,
		readerOpened: e.readerOpened,
		options:      e.options.clone(),
		err:          e.err,
	}
}

// ensureReader opens the reader if not already open.
func (e *Extractor) ensureReader() error {
	if e.err != nil {
		return e.err
	}
	if e.readerOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	if err := format.Validate(e.filename); err != nil {
		return err
	}
	r, err := pptx.Open(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open presentation: %w", err)
	}
	if e.options.cache != nil {
		r.SetCache(e.options.cache)
	}
	if e.options.streamThreshold > 0 {
		r.SetStreamThreshold(e.options.streamThreshold)
	}
	e.reader = r
	e.ownsReader = true
	e.readerOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsReader && e.reader != nil {
		err := e.reader.Close()
		e.reader = nil
		e.ownsReader = false
		e.readerOpened = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Slides specifies which slides to extract from (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	text, _, err := deckfold.Open("deck.pptx").Slides(1, 3, 5).Text()
func (e *Extractor) Slides(slides ...int) *Extractor {
	newExt := e.clone()
	newExt.options.slides = append(newExt.options.slides, slides...)
	return newExt
}

// SlideRange specifies a range of slides to extract (1-indexed, inclusive).
//
// Example:
//
//	text, _, err := deckfold.Open("deck.pptx").SlideRange(5, 10).Text()
func (e *Extractor) SlideRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.slides = append(newExt.options.slides, i)
	}
	return newExt
}

// ExcludeNotes configures the extractor to leave speaker notes out of
// extracted slide documents.
//
// Example:
//
//	deck, _, err := deckfold.Open("deck.pptx").ExcludeNotes().Deck()
func (e *Extractor) ExcludeNotes() *Extractor {
	newExt := e.clone()
	newExt.options.excludeNotes = true
	return newExt
}

// WithCache injects a content cache used to skip re-parsing unchanged
// slides across extractions that share the cache.
//
// Example:
//
//	shared := cache.NewMemory()
//	text, _, err := deckfold.Open("deck.pptx").WithCache(shared).Text()
func (e *Extractor) WithCache(c cache.Cache) *Extractor {
	newExt := e.clone()
	newExt.options.cache = c
	return newExt
}

// WithStreamThreshold overrides the part size, in bytes, above which
// slide parts are parsed in streaming mode.
func (e *Extractor) WithStreamThreshold(bytes int) *Extractor {
	newExt := e.clone()
	newExt.options.streamThreshold = bytes
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// SlideCount returns the number of slides in the presentation.
//
// Example:
//
//	count, err := deckfold.Open("deck.pptx").SlideCount()
func (e *Extractor) SlideCount() (int, error) {
	if err := e.ensureReader(); err != nil {
		return 0, err
	}
	defer e.Close()
	return e.reader.SlideCount(), nil
}

// Text extracts plain text from the selected slides, slides separated by
// blank lines.
//
// Example:
//
//	text, diags, err := deckfold.Open("deck.pptx").Text()
func (e *Extractor) Text() (string, []Diagnostic, error) {
	docs, diags, err := e.extract()
	if err != nil {
		return "", diags, err
	}
	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		parts = append(parts, doc.ExtractText())
	}
	return strings.Join(parts, "\n\n"), diags, nil
}

// Markdown renders the selected slides as Markdown, one section per
// slide.
//
// Example:
//
//	md, diags, err := deckfold.Open("deck.pptx").Markdown()
func (e *Extractor) Markdown() (string, []Diagnostic, error) {
	docs, diags, err := e.extract()
	if err != nil {
		return "", diags, err
	}
	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		parts = append(parts, doc.ToMarkdown())
	}
	return strings.Join(parts, "\n\n"), diags, nil
}

// Tables extracts every table from the selected slides, in slide order.
//
// Example:
//
//	tables, diags, err := deckfold.Open("deck.pptx").Tables()
func (e *Extractor) Tables() ([]*model.Table, []Diagnostic, error) {
	docs, diags, err := e.extract()
	if err != nil {
		return nil, diags, err
	}
	var tables []*model.Table
	for _, doc := range docs {
		tables = append(tables, doc.Tables...)
	}
	return tables, diags, nil
}

// SlideDocuments extracts the full document model for the selected
// slides.
//
// Example:
//
//	docs, diags, err := deckfold.Open("deck.pptx").Slides(2).SlideDocuments()
func (e *Extractor) SlideDocuments() ([]*model.SlideDocument, []Diagnostic, error) {
	return e.extract()
}

// Deck extracts the whole presentation: metadata, document properties,
// the selected slides, and sections.
//
// Example:
//
//	deck, diags, err := deckfold.Open("deck.pptx").Deck()
func (e *Extractor) Deck() (*model.Deck, []Diagnostic, error) {
	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	deck := model.NewDeck()

	meta, err := e.reader.Metadata()
	if err != nil {
		return nil, e.reader.Diagnostics(), err
	}
	deck.Metadata = meta

	if props, err := e.reader.Properties(); err == nil {
		deck.Properties = props
	}

	docs, err := e.extractOpen()
	if err != nil {
		return nil, e.reader.Diagnostics(), err
	}
	deck.Slides = docs

	if sections, err := e.reader.Sections(); err == nil {
		deck.Sections = sections
	}
	if items, err := media.Inventory(e.reader.Package()); err == nil {
		deck.Media = items
	}

	return deck, e.reader.Diagnostics(), nil
}

// Metadata returns presentation-level structure: slide count, slide
// size, and master presence.
func (e *Extractor) Metadata() (*model.PresentationMetadata, error) {
	if err := e.ensureReader(); err != nil {
		return nil, err
	}
	defer e.Close()
	return e.reader.Metadata()
}

// Properties returns the document properties from docProps.
func (e *Extractor) Properties() (*model.DocumentProperties, error) {
	if err := e.ensureReader(); err != nil {
		return nil, err
	}
	defer e.Close()
	return e.reader.Properties()
}

// Sections returns the presentation's sections in order.
func (e *Extractor) Sections() ([]model.Section, error) {
	if err := e.ensureReader(); err != nil {
		return nil, err
	}
	defer e.Close()
	return e.reader.Sections()
}

// SectionSlides returns each section's slide numbers, keyed by section
// name.
func (e *Extractor) SectionSlides() (map[string][]int, error) {
	if err := e.ensureReader(); err != nil {
		return nil, err
	}
	defer e.Close()
	return e.reader.SectionSlides()
}

// Notes returns the speaker notes for one slide (1-indexed), or "" when
// the slide has none.
func (e *Extractor) Notes(slide int) (string, error) {
	if err := e.ensureReader(); err != nil {
		return "", err
	}
	defer e.Close()
	return e.reader.Notes(slide)
}

// Segments returns the formatted spans of one slide's text (1-indexed).
func (e *Extractor) Segments(slide int) ([]model.FormattingSegment, error) {
	if err := e.ensureReader(); err != nil {
		return nil, err
	}
	defer e.Close()
	return e.reader.Segments(slide)
}

// Layouts returns the slide layouts defined by the presentation.
func (e *Extractor) Layouts() ([]model.LayoutInfo, error) {
	if err := e.ensureReader(); err != nil {
		return nil, err
	}
	defer e.Close()
	return e.reader.Layouts()
}

// ArchiveInfo summarizes the package contents without parsing any part.
func (e *Extractor) ArchiveInfo() (opc.ArchiveInfo, error) {
	if err := e.ensureReader(); err != nil {
		return opc.ArchiveInfo{}, err
	}
	defer e.Close()
	return e.reader.Package().Info(), nil
}

// Media returns the embedded media inventory.
func (e *Extractor) Media() ([]model.MediaItem, error) {
	if err := e.ensureReader(); err != nil {
		return nil, err
	}
	defer e.Close()
	return media.Inventory(e.reader.Package())
}

// ImagesText runs OCR over every embedded image and returns recognized
// text keyed by part name. It requires a binary built with the "ocr"
// tag; otherwise it returns ocr.ErrOCRNotEnabled.
//
// Example:
//
//	texts, diags, err := deckfold.Open("deck.pptx").ImagesText()
func (e *Extractor) ImagesText() (map[string]string, []Diagnostic, error) {
	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	client, err := ocr.New()
	if err != nil {
		return nil, nil, err
	}
	defer client.Close()

	items, err := media.Inventory(e.reader.Package())
	if err != nil {
		return nil, nil, err
	}

	var diags []Diagnostic
	texts := make(map[string]string)
	for _, item := range media.Images(items) {
		data, err := e.reader.Package().ReadPart(item.PartName)
		if err != nil {
			diags = append(diags, Diagnostic{Context: "media part " + item.PartName, Err: err})
			continue
		}
		text, err := client.RecognizeImage(data)
		if err != nil {
			diags = append(diags, Diagnostic{Context: "OCR " + item.PartName, Err: err})
			continue
		}
		if text != "" {
			texts[item.PartName] = text
		}
	}
	return texts, diags, nil
}

// ============================================================================
// Internals
// ============================================================================

// extract opens the reader, extracts the selected slides, and closes.
func (e *Extractor) extract() ([]*model.SlideDocument, []Diagnostic, error) {
	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()
	docs, err := e.extractOpen()
	return docs, e.reader.Diagnostics(), err
}

// extractOpen extracts the selected slides from the already-open reader.
func (e *Extractor) extractOpen() ([]*model.SlideDocument, error) {
	numbers := e.selectedSlides()
	docs := make([]*model.SlideDocument, 0, len(numbers))
	for _, n := range numbers {
		doc, err := e.reader.Slide(n)
		if err != nil {
			return nil, err
		}
		if e.options.excludeNotes && doc.Notes != "" {
			// Copy before blanking: cached documents are shared.
			stripped := *doc
			stripped.Notes = ""
			doc = &stripped
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// selectedSlides resolves the slide selection to a sorted, de-duplicated
// list of slide numbers; an empty selection means every slide.
func (e *Extractor) selectedSlides() []int {
	if len(e.options.slides) == 0 {
		numbers := make([]int, e.reader.SlideCount())
		for i := range numbers {
			numbers[i] = i + 1
		}
		return numbers
	}
	seen := make(map[int]bool, len(e.options.slides))
	var numbers []int
	for _, n := range e.options.slides {
		if !seen[n] {
			seen[n] = true
			numbers = append(numbers, n)
		}
	}
	sort.Ints(numbers)
	return numbers
}
