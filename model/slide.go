package model

// Point is an (x, y) pair in EMUs. It doubles as a size (cx, cy).
type Point struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

// SlideDocument represents one fully extracted slide.
type SlideDocument struct {
	SlideNumber  int               `json:"slide_number"`
	Title        string            `json:"title,omitempty"`
	Subtitle     string            `json:"subtitle,omitempty"`
	LayoutName   string            `json:"layout_name,omitempty"`
	LayoutType   string            `json:"layout_type,omitempty"`
	Placeholders []Placeholder     `json:"placeholders"`
	TextElements []TextElement     `json:"text_elements"`
	Tables       []*Table          `json:"tables"`
	ObjectCounts ObjectCounts      `json:"object_counts"`
	Notes        string            `json:"notes,omitempty"`
	Hyperlinks   map[string]string `json:"hyperlinks,omitempty"`
}

// Placeholder is a shape whose role is predefined by the slide layout.
// Type is an open string enum ("title", "ctrTitle", "subTitle", "body",
// "obj", ...); the format defines many kinds, so it is not closed here.
type Placeholder struct {
	Type     string `json:"type"`
	Index    string `json:"index,omitempty"`
	Position Point  `json:"position"`
	Size     Point  `json:"size"`
	Text     string `json:"text,omitempty"`
}

// TextElement is one text-bearing shape. Style counters count runs, not
// characters: a counter increments once per run where the flag is active.
// FontSizes, Colors and HyperlinkIDs are de-duplicated sets kept in first
// occurrence order.
type TextElement struct {
	Text     string `json:"text"`
	Markup   string `json:"markup"`
	Position Point  `json:"position"`
	Size     Point  `json:"size"`

	Bold          int `json:"bold"`
	Italic        int `json:"italic"`
	Underline     int `json:"underline"`
	Strikethrough int `json:"strikethrough"`
	Highlight     int `json:"highlight"`

	FontSizes    []float64 `json:"font_sizes,omitempty"`
	Colors       []string  `json:"colors,omitempty"`
	HyperlinkIDs []string  `json:"hyperlink_ids,omitempty"`
}

// AddFontSize records a font size, collapsing duplicates.
func (e *TextElement) AddFontSize(size float64) {
	for _, s := range e.FontSizes {
		if s == size {
			return
		}
	}
	e.FontSizes = append(e.FontSizes, size)
}

// AddColor records a resolved color value, collapsing duplicates.
func (e *TextElement) AddColor(color string) {
	for _, c := range e.Colors {
		if c == color {
			return
		}
	}
	e.Colors = append(e.Colors, color)
}

// AddHyperlinkID records a hyperlink relationship id, collapsing duplicates.
func (e *TextElement) AddHyperlinkID(id string) {
	for _, h := range e.HyperlinkIDs {
		if h == id {
			return
		}
	}
	e.HyperlinkIDs = append(e.HyperlinkIDs, id)
}

// HasFormatting reports whether any style counter is non-zero.
func (e *TextElement) HasFormatting() bool {
	return e.Bold > 0 || e.Italic > 0 || e.Underline > 0 ||
		e.Strikethrough > 0 || e.Highlight > 0
}

// ObjectCounts is a read-only per-slide summary. Shapes and TextBoxes
// count top-level shapes only; shapes nested inside groups are not counted.
type ObjectCounts struct {
	Shapes     int `json:"shapes"`
	TextBoxes  int `json:"text_boxes"`
	Images     int `json:"images"`
	Tables     int `json:"tables"`
	Charts     int `json:"charts"`
	Media      int `json:"media"`
	Connectors int `json:"connectors"`
	Groups     int `json:"groups"`
}

// Total returns the sum of all counted objects.
func (c ObjectCounts) Total() int {
	return c.Shapes + c.Images + c.Tables + c.Charts + c.Media +
		c.Connectors + c.Groups
}

// FormattingSegment locates one formatted span within a slide's
// concatenated text. Type is one of "bold", "italic", "underlined",
// "strikethrough", "highlighted", "font_size", "font_color" or
// "hyperlink"; the optional fields carry the type-specific detail.
type FormattingSegment struct {
	Text           string  `json:"text"`
	Start          int     `json:"start"`
	End            int     `json:"end"`
	Type           string  `json:"type"`
	ElementIndex   int     `json:"element_index"`
	FontSize       float64 `json:"font_size,omitempty"`
	Color          string  `json:"color,omitempty"`
	RelationshipID string  `json:"relationship_id,omitempty"`
	Target         string  `json:"target,omitempty"`
}
