package pptx

import (
	"fmt"
	"strconv"

	"github.com/deckfold/deckfold/cache"
	"github.com/deckfold/deckfold/model"
	"github.com/deckfold/deckfold/ooxml"
	"github.com/deckfold/deckfold/opc"
)

// slideEntry is one slide in presentation order.
type slideEntry struct {
	id   string // numeric slide id from sldIdLst
	rid  string // relationship id
	part string // resolved part name
}

// Reader extracts the document model from one package. It is not safe
// for concurrent use; open one Reader per goroutine.
type Reader struct {
	pkg *opc.Package
	x   *ooxml.Reader

	cache cache.Cache

	slides   []slideEntry
	size     *model.SlideSize
	masters  []string
	notesM   bool
	handoutM bool

	notesFor map[int]string // slide number -> notes part name
	diags    []Diagnostic
}

// Open opens a .pptx file and prepares it for extraction. The caller
// must Close the returned Reader.
func Open(path string) (*Reader, error) {
	pkg, err := opc.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := NewReader(pkg)
	if err != nil {
		pkg.Close()
		return nil, err
	}
	return r, nil
}

// NewReader prepares an already-open package for extraction. Closing the
// Reader closes the package.
func NewReader(pkg *opc.Package) (*Reader, error) {
	if err := pkg.Validate(); err != nil {
		return nil, err
	}
	r := &Reader{pkg: pkg, x: ooxml.NewReader()}
	if err := r.parsePresentation(); err != nil {
		return nil, err
	}
	return r, nil
}

// Close releases the underlying package.
func (r *Reader) Close() error {
	return r.pkg.Close()
}

// SetCache injects a content cache. Extraction runs identically, just
// slower, when no cache is set.
func (r *Reader) SetCache(c cache.Cache) {
	r.cache = c
}

// SetStreamThreshold overrides the part size above which slide parts are
// parsed in streaming mode.
func (r *Reader) SetStreamThreshold(bytes int) {
	r.x = r.x.WithThreshold(bytes)
}

// SlideCount returns the number of slides in presentation order.
func (r *Reader) SlideCount() int {
	return len(r.slides)
}

// Diagnostics returns the non-fatal problems recorded so far.
func (r *Reader) Diagnostics() []Diagnostic {
	return r.diags
}

// Package exposes the underlying container for auxiliary consumers such
// as the media inventory.
func (r *Reader) Package() *opc.Package {
	return r.pkg
}

func (r *Reader) addDiag(slide int, context string, err error) {
	r.diags = append(r.diags, Diagnostic{Slide: slide, Context: context, Err: err})
}

// parsePresentation reads the presentation part once: slide order,
// slide size, and master presence.
func (r *Reader) parsePresentation() error {
	data, err := r.pkg.ReadPart(opc.PartPresentation)
	if err != nil {
		return err
	}
	root, err := r.x.ParseTargets(data,
		"p:sldMasterIdLst", "p:sldIdLst", "p:sldSz",
		"p:notesMasterIdLst", "p:handoutMasterIdLst", "p:extLst")
	if err != nil {
		return fmt.Errorf("presentation part: %w", err)
	}

	rels, err := r.pkg.Relationships(opc.PartPresentation)
	if err != nil {
		return err
	}

	for _, m := range r.x.FindAll(root, "p:sldMasterIdLst/p:sldMasterId") {
		if rid, ok := m.AttrNS(ooxml.NSDocRelation, "id"); ok {
			r.masters = append(r.masters, rid)
		}
	}

	for _, s := range r.x.FindAll(root, "p:sldIdLst/p:sldId") {
		rid, ok := s.AttrNS(ooxml.NSDocRelation, "id")
		if !ok {
			continue
		}
		entry := slideEntry{id: s.AttrDefault("id", ""), rid: rid}
		part, ok := rels.Resolve(rid)
		if !ok {
			r.addDiag(0, "slide reference "+rid, opc.ErrMissingPart)
			continue
		}
		entry.part = part
		r.slides = append(r.slides, entry)
	}

	if sz := r.x.FindFirst(root, "p:sldSz"); sz != nil {
		cx, okX := sz.Attr("cx")
		cy, okY := sz.Attr("cy")
		if okX && okY {
			w := parseInt64(cx)
			h := parseInt64(cy)
			r.size = model.NewSlideSize(w, h)
		}
	}

	r.notesM = r.x.FindFirst(root, "p:notesMasterIdLst/p:notesMasterId") != nil
	r.handoutM = r.x.FindFirst(root, "p:handoutMasterIdLst/p:handoutMasterId") != nil
	return nil
}

// Slide extracts one slide by 1-based number.
func (r *Reader) Slide(number int) (*model.SlideDocument, error) {
	if number < 1 || number > len(r.slides) {
		return nil, fmt.Errorf("%w: %d of %d", ErrSlideOutOfRange, number, len(r.slides))
	}
	entry := r.slides[number-1]

	data, err := r.pkg.ReadPart(entry.part)
	if err != nil {
		return nil, err
	}

	var key string
	if r.cache != nil {
		key = cache.Key(cache.HashContent(data), number)
		if v, ok := r.cache.Get(key); ok {
			if doc, ok := v.(*model.SlideDocument); ok {
				return doc, nil
			}
		}
	}

	doc, err := r.buildSlide(number, data)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		r.cache.Put(key, doc, 0)
	}
	return doc, nil
}

// Slides extracts every slide. Slides whose parts fail to parse are
// skipped with a diagnostic rather than aborting their siblings.
func (r *Reader) Slides() ([]*model.SlideDocument, error) {
	if len(r.slides) == 0 {
		return nil, ErrNoSlides
	}
	docs := make([]*model.SlideDocument, 0, len(r.slides))
	for n := 1; n <= len(r.slides); n++ {
		doc, err := r.Slide(n)
		if err != nil {
			r.addDiag(n, "slide extraction", err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Deck extracts the whole presentation: metadata, properties, every
// slide, and sections.
func (r *Reader) Deck() (*model.Deck, error) {
	deck := model.NewDeck()

	meta, err := r.Metadata()
	if err != nil {
		return nil, err
	}
	deck.Metadata = meta

	if props, err := r.Properties(); err != nil {
		r.addDiag(0, "document properties", err)
	} else {
		deck.Properties = props
	}

	slides, err := r.Slides()
	if err != nil {
		return nil, err
	}
	deck.Slides = slides

	if sections, err := r.Sections(); err != nil {
		r.addDiag(0, "sections", err)
	} else {
		deck.Sections = sections
	}

	return deck, nil
}

// parseInt64 reads a decimal attribute value, treating malformed input
// as zero the same way a missing attribute defaults.
func parseInt64(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseIntDefault reads a decimal attribute value with a fallback.
func parseIntDefault(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
