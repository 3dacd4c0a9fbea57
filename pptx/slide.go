package pptx

import (
	"fmt"
	"strings"

	"github.com/deckfold/deckfold/model"
	"github.com/deckfold/deckfold/ooxml"
)

// buildSlide turns one slide part into a SlideDocument. The whole-part
// parse is the only terminal failure; every sub-feature degrades to its
// empty value with a diagnostic.
func (r *Reader) buildSlide(number int, data []byte) (*model.SlideDocument, error) {
	root, err := r.x.ParseTargets(data, "p:spTree")
	if err != nil {
		return nil, fmt.Errorf("slide %d: %w", number, err)
	}

	doc := &model.SlideDocument{
		SlideNumber:  number,
		Placeholders: make([]model.Placeholder, 0),
		TextElements: make([]model.TextElement, 0),
		Tables:       make([]*model.Table, 0),
	}

	cSld := r.x.FindFirst(root, "p:cSld")
	if cSld == nil {
		r.addDiag(number, "slide content root", ooxml.ErrMalformedInput)
		return doc, nil
	}
	doc.LayoutName = cSld.AttrDefault("name", "")

	tree := r.x.FindFirst(cSld, "p:spTree")
	if tree == nil {
		return doc, nil
	}

	shapes := r.x.FindAll(tree, "//p:sp")

	r.extractPlaceholders(shapes, doc)
	doc.LayoutType = layoutType(doc.Placeholders)
	r.extractTitleSubtitle(doc)
	r.extractTextElements(shapes, doc)
	r.extractTables(tree, number, doc)
	doc.ObjectCounts = r.countObjects(tree)
	r.resolveHyperlinks(number, doc)
	r.attachNotes(number, doc)

	return doc, nil
}

// extractPlaceholders records every shape carrying a placeholder marker.
// A marker with no type attribute defaults to "content".
func (r *Reader) extractPlaceholders(shapes []*ooxml.Node, doc *model.SlideDocument) {
	for _, shape := range shapes {
		ph := r.x.FindFirst(shape, "p:nvSpPr/p:nvPr/p:ph")
		if ph == nil {
			continue
		}
		pos, size := r.shapeTransform(shape)
		doc.Placeholders = append(doc.Placeholders, model.Placeholder{
			Type:     ph.AttrDefault("type", "content"),
			Index:    ph.AttrDefault("idx", ""),
			Position: pos,
			Size:     size,
			Text:     r.shapeText(shape),
		})
	}
}

// layoutType is the decision table over already-extracted placeholder
// kinds. Only an exact "title" placeholder counts as a title here;
// body, obj and content placeholders count as content.
func layoutType(placeholders []model.Placeholder) string {
	hasTitle := false
	contentCount := 0
	for _, ph := range placeholders {
		switch ph.Type {
		case "title":
			hasTitle = true
		case "body", "obj", "content":
			contentCount++
		}
	}
	switch {
	case hasTitle && contentCount >= 2:
		return "twoContent"
	case hasTitle && contentCount >= 1:
		return "titleAndContent"
	case hasTitle:
		return "titleOnly"
	case contentCount > 0:
		return "contentOnly"
	default:
		return "blank"
	}
}

// extractTitleSubtitle populates the title and subtitle fields from the
// extracted placeholders. Centered titles (ctrTitle) count as titles;
// both subtitle spellings occur in the wild.
func (r *Reader) extractTitleSubtitle(doc *model.SlideDocument) {
	for _, ph := range doc.Placeholders {
		switch ph.Type {
		case "title", "ctrTitle":
			if doc.Title == "" {
				doc.Title = ph.Text
			}
		case "subTitle", "subtitle":
			if doc.Subtitle == "" {
				doc.Subtitle = ph.Text
			}
		}
	}
}

// extractTextElements builds one TextElement per text-bearing shape.
// Elements with no text and no hyperlinks are dropped.
func (r *Reader) extractTextElements(shapes []*ooxml.Node, doc *model.SlideDocument) {
	for _, shape := range shapes {
		el := r.textElementFromShape(shape)
		if el == nil {
			continue
		}
		if strings.TrimSpace(el.Text) == "" && len(el.HyperlinkIDs) == 0 {
			continue
		}
		doc.TextElements = append(doc.TextElements, *el)
	}
}

func (r *Reader) textElementFromShape(shape *ooxml.Node) *model.TextElement {
	body := r.x.FindFirst(shape, "p:txBody")
	if body == nil {
		return nil
	}

	pos, size := r.shapeTransform(shape)
	el := &model.TextElement{Position: pos, Size: size}

	var plains, markups []string
	for _, p := range r.x.FindAll(body, "a:p") {
		plain, markup := r.extractParagraph(p, el)
		if plain != "" || markup != "" {
			plains = append(plains, plain)
			markups = append(markups, markup)
		}
	}
	el.Text = strings.Join(plains, "\n")
	el.Markup = strings.Join(markups, "\n")

	if len(el.FontSizes) == 0 {
		el.AddFontSize(r.defaultFontSize(shape))
	}
	return el
}

// extractParagraph accumulates every run, concatenating run text without
// separators. Paragraph-level click actions are collected alongside
// run-level ones.
func (r *Reader) extractParagraph(p *ooxml.Node, el *model.TextElement) (plain, markup string) {
	var plainParts, markupParts []string
	for _, run := range r.x.FindAll(p, "a:r") {
		runPlain, runMarkup := r.accumulateRun(run, el)
		if runPlain != "" {
			plainParts = append(plainParts, runPlain)
			markupParts = append(markupParts, runMarkup)
		}
	}

	for _, link := range r.x.FindAll(p, "//a:hlinkClick") {
		if id, ok := link.AttrNS(ooxml.NSDocRelation, "id"); ok {
			el.AddHyperlinkID(id)
		}
	}

	return strings.Join(plainParts, ""), strings.Join(markupParts, "")
}

// shapeText returns the shape's plain text: paragraphs joined with
// newlines, runs concatenated.
func (r *Reader) shapeText(shape *ooxml.Node) string {
	body := r.x.FindFirst(shape, "p:txBody")
	if body == nil {
		return ""
	}
	var paragraphs []string
	for _, p := range r.x.FindAll(body, "a:p") {
		var sb strings.Builder
		for _, t := range r.x.FindAll(p, "//a:t") {
			sb.WriteString(t.Text)
		}
		if sb.Len() > 0 {
			paragraphs = append(paragraphs, sb.String())
		}
	}
	return strings.Join(paragraphs, "\n")
}

// extractTables pulls every graphic-frame-wrapped table. Frames whose
// tables fail to normalize (zero rows) contribute nothing.
func (r *Reader) extractTables(tree *ooxml.Node, number int, doc *model.SlideDocument) {
	for _, frame := range r.x.FindAll(tree, "//p:graphicFrame") {
		tbl := r.x.FindFirst(frame, "a:graphic/a:graphicData/a:tbl")
		if tbl == nil {
			continue
		}
		pos, size := r.frameTransform(frame)
		if table := r.normalizeTable(tbl, pos, size); table != nil {
			doc.Tables = append(doc.Tables, table)
		}
	}
}

// countObjects builds the per-slide census. Shapes and text boxes count
// top-level shapes only; the other counts include nested occurrences.
func (r *Reader) countObjects(tree *ooxml.Node) model.ObjectCounts {
	var c model.ObjectCounts

	for _, shape := range r.x.FindAll(tree, "p:sp") {
		c.Shapes++
		if r.x.FindFirst(shape, "p:txBody") != nil {
			c.TextBoxes++
		}
	}

	c.Images = len(r.x.FindAll(tree, "//p:pic"))
	c.Tables = len(r.x.FindAll(tree, "//a:tbl"))
	c.Media = len(r.x.FindAll(tree, "//p:media"))
	c.Connectors = len(r.x.FindAll(tree, "//p:cxnSp"))
	c.Groups = len(r.x.FindAll(tree, "//p:grpSp"))

	for _, frame := range r.x.FindAll(tree, "//p:graphicFrame") {
		if data := r.x.FindFirst(frame, "a:graphic/a:graphicData"); data != nil {
			if uri, ok := data.Attr("uri"); ok && strings.Contains(strings.ToLower(uri), "chart") {
				c.Charts++
			}
		}
	}
	return c
}

// resolveHyperlinks maps the slide's collected relationship ids to their
// targets using the slide part's own relationship table. Ids with no
// entry keep the raw id rather than failing the slide.
func (r *Reader) resolveHyperlinks(number int, doc *model.SlideDocument) {
	ids := make([]string, 0)
	seen := make(map[string]bool)
	for _, el := range doc.TextElements {
		for _, id := range el.HyperlinkIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		return
	}

	rels, err := r.pkg.Relationships(r.slides[number-1].part)
	if err != nil {
		r.addDiag(number, "hyperlink relationships", err)
		rels = nil
	}

	doc.Hyperlinks = make(map[string]string, len(ids))
	for _, id := range ids {
		doc.Hyperlinks[id] = id
		if rels == nil {
			continue
		}
		if rel, ok := rels.Lookup(id); ok && strings.Contains(rel.Type, "hyperlink") {
			doc.Hyperlinks[id] = rel.Target
		}
	}
}

// attachNotes fills the slide's speaker notes from the package-wide
// notes map. A slide with no notes entry simply has empty notes.
func (r *Reader) attachNotes(number int, doc *model.SlideDocument) {
	notes, err := r.Notes(number)
	if err != nil {
		r.addDiag(number, "speaker notes", err)
		return
	}
	doc.Notes = notes
}
