package pptx

import "github.com/deckfold/deckfold/model"

// Segments locates every formatted span within a slide's concatenated
// text (elements joined by newlines). Each active style on an element
// yields one segment covering the element's span, plus one segment per
// distinct font size, color and hyperlink.
func (r *Reader) Segments(number int) ([]model.FormattingSegment, error) {
	doc, err := r.Slide(number)
	if err != nil {
		return nil, err
	}

	var segments []model.FormattingSegment
	offset := 0

	for i, el := range doc.TextElements {
		if i > 0 {
			offset++ // newline separator between elements
		}
		start := offset
		end := start + len(el.Text)
		offset = end

		base := model.FormattingSegment{
			Text:         el.Text,
			Start:        start,
			End:          end,
			ElementIndex: i,
		}

		add := func(typ string, mutate func(*model.FormattingSegment)) {
			seg := base
			seg.Type = typ
			if mutate != nil {
				mutate(&seg)
			}
			segments = append(segments, seg)
		}

		if el.Bold > 0 {
			add("bold", nil)
		}
		if el.Italic > 0 {
			add("italic", nil)
		}
		if el.Underline > 0 {
			add("underlined", nil)
		}
		if el.Strikethrough > 0 {
			add("strikethrough", nil)
		}
		if el.Highlight > 0 {
			add("highlighted", nil)
		}
		for _, size := range el.FontSizes {
			size := size
			add("font_size", func(seg *model.FormattingSegment) {
				seg.FontSize = size
			})
		}
		for _, color := range el.Colors {
			color := color
			add("font_color", func(seg *model.FormattingSegment) {
				seg.Color = color
			})
		}
		for _, id := range el.HyperlinkIDs {
			id := id
			add("hyperlink", func(seg *model.FormattingSegment) {
				seg.RelationshipID = id
				seg.Target = id
				if target, ok := doc.Hyperlinks[id]; ok {
					seg.Target = target
				}
			})
		}
	}

	return segments, nil
}
