package pptx

import (
	"strconv"

	"github.com/deckfold/deckfold/model"
	"github.com/deckfold/deckfold/ooxml"
)

// Default font sizes in points, applied at the element level when no run
// carries an explicit size. Context-dependent: titles render larger.
const (
	defaultTitleFontSize    = 44.0
	defaultSubtitleFontSize = 24.0
	defaultBodyFontSize     = 18.0
)

// accumulateRun reads one a:r run: its text, style flags, color, size
// and hyperlink, incrementing the element's per-run counters and
// returning the plain and marked-up renderings.
//
// The marked-up rendering wraps the text in tags appended in the fixed
// order b, i, u, s, mark and applied innermost-first, so bold sits
// closest to the text and highlight wraps everything. The order is a
// compatibility contract for downstream consumers.
func (r *Reader) accumulateRun(run *ooxml.Node, el *model.TextElement) (plain, markup string) {
	t := r.x.FindFirst(run, "//a:t")
	if t == nil || t.Text == "" {
		return "", ""
	}
	plain = t.Text
	markup = plain

	rPr := r.x.FindFirst(run, "//a:rPr")
	if rPr == nil {
		return plain, markup
	}

	var tags []string

	if sz, ok := r.fontSize(rPr); ok {
		el.AddFontSize(sz)
	}
	if color, ok := r.runColor(rPr); ok {
		el.AddColor(color)
	}

	if r.flagOn(rPr, "b", "0") {
		el.Bold++
		tags = append(tags, "b")
	}
	if r.flagOn(rPr, "i", "0") {
		el.Italic++
		tags = append(tags, "i")
	}
	if r.flagOn(rPr, "u", "none") {
		el.Underline++
		tags = append(tags, "u")
	}
	if r.flagOn(rPr, "strike", "noStrike") {
		el.Strikethrough++
		tags = append(tags, "s")
	}
	if r.x.FindFirst(rPr, "//a:highlight") != nil {
		el.Highlight++
		tags = append(tags, "mark")
	}

	if id, ok := r.hyperlinkID(rPr); ok {
		el.AddHyperlinkID(id)
	}

	for _, tag := range tags {
		markup = "<" + tag + ">" + markup + "</" + tag + ">"
	}
	return plain, markup
}

// flagOn detects a style flag that may appear as an rPr attribute or as
// an equivalent child element; in either place the flag is on unless it
// carries the given off-sentinel value ("0", "none", "noStrike").
func (r *Reader) flagOn(rPr *ooxml.Node, name, off string) bool {
	if v, ok := rPr.Attr(name); ok {
		return v != off
	}
	if child := r.x.FindFirst(rPr, "//a:"+name); child != nil {
		return child.AttrDefault("val", "1") != off
	}
	return false
}

// fontSize reads the run size in hundredths of a point, from the sz
// attribute or an a:sz child, and converts it to points.
func (r *Reader) fontSize(rPr *ooxml.Node) (float64, bool) {
	sz, ok := rPr.Attr("sz")
	if !ok {
		if child := r.x.FindFirst(rPr, "//a:sz"); child != nil {
			sz, ok = child.Attr("val")
		}
	}
	if !ok || sz == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(sz, 64)
	if err != nil {
		return 0, false
	}
	return v / 100.0, true
}

// runColor resolves the run's solid fill. An explicit RGB value wins
// over a theme color token; the scheme name is only reported when no
// RGB value exists.
func (r *Reader) runColor(rPr *ooxml.Node) (string, bool) {
	fill := r.x.FindFirst(rPr, "//a:solidFill")
	if fill == nil {
		return "", false
	}
	return r.fillColor(fill)
}

func (r *Reader) fillColor(fill *ooxml.Node) (string, bool) {
	if srgb := r.x.FindFirst(fill, "//a:srgbClr"); srgb != nil {
		if v, ok := srgb.Attr("val"); ok && v != "" {
			return "#" + v, true
		}
	}
	if scheme := r.x.FindFirst(fill, "//a:schemeClr"); scheme != nil {
		if v, ok := scheme.Attr("val"); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// hyperlinkID returns the click-action relationship id, unresolved.
func (r *Reader) hyperlinkID(rPr *ooxml.Node) (string, bool) {
	link := r.x.FindFirst(rPr, "//a:hlinkClick")
	if link == nil {
		return "", false
	}
	return link.AttrNS(ooxml.NSDocRelation, "id")
}

// defaultFontSize picks the context default for a shape with no explicit
// run sizes.
func (r *Reader) defaultFontSize(shape *ooxml.Node) float64 {
	if ph := r.x.FindFirst(shape, "//p:ph"); ph != nil {
		switch ph.AttrDefault("type", "") {
		case "title", "ctrTitle":
			return defaultTitleFontSize
		case "subTitle":
			return defaultSubtitleFontSize
		}
	}
	return defaultBodyFontSize
}
