package pptx

import (
	"reflect"
	"testing"

	"github.com/deckfold/deckfold/model"
)

func runShape(runs string) string {
	return `<p:sp><p:nvSpPr><p:cNvPr id="1" name=""/><p:cNvSpPr/><p:nvPr/></p:nvSpPr><p:spPr/>` +
		`<p:txBody><a:bodyPr/><a:p>` + runs + `</a:p></p:txBody></p:sp>`
}

func styledRun(rPr, text string) string {
	return `<a:r>` + rPr + `<a:t>` + text + `</a:t></a:r>`
}

func extractElement(t *testing.T, spTree string) *model.TextElement {
	t.Helper()
	r := openReader(t, deckFiles(t, spTree))
	doc, err := r.Slide(1)
	if err != nil {
		t.Fatalf("Slide failed: %v", err)
	}
	if len(doc.TextElements) != 1 {
		t.Fatalf("expected 1 text element, got %d", len(doc.TextElements))
	}
	return &doc.TextElements[0]
}

func TestRunFormatting(t *testing.T) {
	el := extractElement(t, runShape(styledRun(
		`<a:rPr b="1" sz="1800"><a:solidFill><a:srgbClr val="0000FF"/></a:solidFill></a:rPr>`,
		"Revenue")))

	if el.Bold != 1 {
		t.Errorf("bold count: got %d, want 1", el.Bold)
	}
	if el.Markup != "<b>Revenue</b>" {
		t.Errorf("markup: got %q", el.Markup)
	}
	if len(el.FontSizes) != 1 || el.FontSizes[0] != 18.0 {
		t.Errorf("font sizes: got %v, want [18]", el.FontSizes)
	}
	if len(el.Colors) != 1 || el.Colors[0] != "#0000FF" {
		t.Errorf("colors: got %v", el.Colors)
	}
	if !el.HasFormatting() {
		t.Error("HasFormatting should report true")
	}
}

func TestMarkupNestingOrder(t *testing.T) {
	el := extractElement(t, runShape(styledRun(
		`<a:rPr b="1" i="1" u="sng" strike="sngStrike"><a:highlight><a:srgbClr val="FFFF00"/></a:highlight></a:rPr>`,
		"all on")))

	want := "<mark><s><u><i><b>all on</b></i></u></s></mark>"
	if el.Markup != want {
		t.Errorf("markup:\ngot:  %q\nwant: %q", el.Markup, want)
	}
}

func TestStyleFlagSentinels(t *testing.T) {
	tests := []struct {
		name string
		rPr  string
		on   func(*model.TextElement) int
		want int
	}{
		{"bold off sentinel", `<a:rPr b="0"/>`, func(e *model.TextElement) int { return e.Bold }, 0},
		{"bold nonzero value", `<a:rPr b="true"/>`, func(e *model.TextElement) int { return e.Bold }, 1},
		{"underline off sentinel", `<a:rPr u="none"/>`, func(e *model.TextElement) int { return e.Underline }, 0},
		{"underline style value", `<a:rPr u="dash"/>`, func(e *model.TextElement) int { return e.Underline }, 1},
		{"strike off sentinel", `<a:rPr strike="noStrike"/>`, func(e *model.TextElement) int { return e.Strikethrough }, 0},
		{"strike on", `<a:rPr strike="sngStrike"/>`, func(e *model.TextElement) int { return e.Strikethrough }, 1},
		{"italic child element", `<a:rPr><a:i/></a:rPr>`, func(e *model.TextElement) int { return e.Italic }, 1},
		{"bold child off value", `<a:rPr><a:b val="0"/></a:rPr>`, func(e *model.TextElement) int { return e.Bold }, 0},
		{"no properties at all", ``, func(e *model.TextElement) int { return e.Bold }, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := extractElement(t, runShape(styledRun(tt.rPr, "text")))
			if got := tt.on(el); got != tt.want {
				t.Errorf("counter: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExplicitRGBWinsOverScheme(t *testing.T) {
	el := extractElement(t, runShape(styledRun(
		`<a:rPr><a:solidFill><a:schemeClr val="accent1"/><a:srgbClr val="FF0000"/></a:solidFill></a:rPr>`,
		"warm")))
	if len(el.Colors) != 1 || el.Colors[0] != "#FF0000" {
		t.Errorf("colors: got %v, want [#FF0000]", el.Colors)
	}
}

func TestSchemeColorFallback(t *testing.T) {
	el := extractElement(t, runShape(styledRun(
		`<a:rPr><a:solidFill><a:schemeClr val="accent1"/></a:solidFill></a:rPr>`,
		"themed")))
	if len(el.Colors) != 1 || el.Colors[0] != "accent1" {
		t.Errorf("colors: got %v, want [accent1]", el.Colors)
	}
}

func TestFontSizeFromChildElement(t *testing.T) {
	el := extractElement(t, runShape(styledRun(`<a:rPr><a:sz val="2400"/></a:rPr>`, "sized")))
	if len(el.FontSizes) != 1 || el.FontSizes[0] != 24.0 {
		t.Errorf("font sizes: got %v, want [24]", el.FontSizes)
	}
}

func TestDefaultFontSizes(t *testing.T) {
	tests := []struct {
		name   string
		spTree string
		want   float64
	}{
		{"title default", placeholderShape("title", "T"), 44.0},
		{"subtitle default", placeholderShape("subTitle", "S"), 24.0},
		{"plain shape default", plainShape("free"), 18.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := extractElement(t, tt.spTree)
			if len(el.FontSizes) != 1 || el.FontSizes[0] != tt.want {
				t.Errorf("font sizes: got %v, want [%v]", el.FontSizes, tt.want)
			}
		})
	}
}

func TestExplicitSizeSuppressesDefault(t *testing.T) {
	el := extractElement(t, runShape(styledRun(`<a:rPr sz="3200"/>`, "big")))
	if !reflect.DeepEqual(el.FontSizes, []float64{32.0}) {
		t.Errorf("font sizes: got %v, want [32]", el.FontSizes)
	}
}

func TestSegments(t *testing.T) {
	spTree := runShape(styledRun(`<a:rPr b="1" sz="1800"/>`, "bold text")) +
		runShape(styledRun(
			`<a:rPr sz="1800"><a:solidFill><a:srgbClr val="00FF00"/></a:solidFill></a:rPr>`,
			"green"))
	r := openReader(t, deckFiles(t, spTree))

	segments, err := r.Segments(1)
	if err != nil {
		t.Fatal(err)
	}

	want := []model.FormattingSegment{
		{Text: "bold text", Start: 0, End: 9, Type: "bold", ElementIndex: 0},
		{Text: "bold text", Start: 0, End: 9, Type: "font_size", ElementIndex: 0, FontSize: 18.0},
		{Text: "green", Start: 10, End: 15, Type: "font_size", ElementIndex: 1, FontSize: 18.0},
		{Text: "green", Start: 10, End: 15, Type: "font_color", ElementIndex: 1, Color: "#00FF00"},
	}
	if !reflect.DeepEqual(segments, want) {
		t.Errorf("segments:\ngot:  %+v\nwant: %+v", segments, want)
	}
}

func TestSegmentHyperlinkTarget(t *testing.T) {
	spTree := runShape(styledRun(`<a:rPr><a:hlinkClick r:id="rId2"/></a:rPr>`, "docs"))
	files := deckFiles(t, spTree)
	files["ppt/slides/_rels/slide1.xml.rels"] = `<?xml version="1.0"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="https://example.com/docs" TargetMode="External"/>` +
		`</Relationships>`
	r := openReader(t, files)

	segments, err := r.Segments(1)
	if err != nil {
		t.Fatal(err)
	}

	var link *model.FormattingSegment
	for i := range segments {
		if segments[i].Type == "hyperlink" {
			link = &segments[i]
		}
	}
	if link == nil {
		t.Fatal("no hyperlink segment found")
	}
	if link.RelationshipID != "rId2" || link.Target != "https://example.com/docs" {
		t.Errorf("hyperlink segment: %+v", link)
	}
}

func TestSegmentsOutOfRange(t *testing.T) {
	r := openReader(t, deckFiles(t, plainShape("x")))
	if _, err := r.Segments(5); err == nil {
		t.Error("expected an error for an out-of-range slide")
	}
}
