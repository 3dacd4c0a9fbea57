package pptx

import (
	"fmt"
	"strings"

	"github.com/deckfold/deckfold/opc"
)

// Notes returns the speaker notes for a slide, or "" when the slide has
// none. The notes-part to slide mapping is relationship-driven and built
// once per package; slide numbers never come from notes file names.
func (r *Reader) Notes(number int) (string, error) {
	if number < 1 || number > len(r.slides) {
		return "", fmt.Errorf("%w: %d of %d", ErrSlideOutOfRange, number, len(r.slides))
	}
	if r.notesFor == nil {
		r.buildNotesMap()
	}
	part, ok := r.notesFor[number]
	if !ok {
		return "", nil
	}

	data, err := r.pkg.ReadPart(part)
	if err != nil {
		// Referenced notes part missing from the archive: degrade.
		r.addDiag(number, "notes part "+part, err)
		return "", nil
	}
	return r.notesContent(number, data), nil
}

// buildNotesMap walks every notes part's relationship table back to its
// owning slide part, then to that slide's ordinal in presentation order.
func (r *Reader) buildNotesMap() {
	r.notesFor = make(map[int]string)

	ordinal := make(map[string]int, len(r.slides))
	for i, entry := range r.slides {
		ordinal[entry.part] = i + 1
	}

	for _, part := range r.pkg.Parts() {
		if !opc.IsNotesPart(part) {
			continue
		}
		rels, err := r.pkg.Relationships(part)
		if err != nil {
			r.addDiag(0, "notes relationships "+part, err)
			continue
		}
		for _, rel := range rels.All() {
			if !strings.HasSuffix(rel.Type, "/slide") || rel.External() {
				continue
			}
			if n, ok := ordinal[rel.Target]; ok {
				r.notesFor[n] = part
				break
			}
		}
	}
}

// notesContent extracts the notes text: shape texts joined by blank
// lines, the slide-image placeholder shape skipped.
func (r *Reader) notesContent(number int, data []byte) string {
	root, err := r.x.ParseTargets(data, "p:spTree")
	if err != nil {
		r.addDiag(number, "notes content", err)
		return ""
	}

	var parts []string
	for _, shape := range r.x.FindAll(root, "//p:sp") {
		if ph := r.x.FindFirst(shape, "p:nvSpPr/p:nvPr/p:ph"); ph != nil {
			if ph.AttrDefault("type", "") == "sldImg" {
				continue
			}
		}
		if text := strings.TrimSpace(r.shapeText(shape)); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n")
}
