package model

import "strings"

// Deck is a complete extracted presentation: metadata plus every slide in
// presentation order.
type Deck struct {
	Metadata   *PresentationMetadata `json:"metadata,omitempty"`
	Properties *DocumentProperties   `json:"properties,omitempty"`
	Slides     []*SlideDocument      `json:"slides"`
	Sections   []Section             `json:"sections,omitempty"`
	Media      []MediaItem           `json:"media,omitempty"`
}

// NewDeck creates an empty deck.
func NewDeck() *Deck {
	return &Deck{Slides: make([]*SlideDocument, 0)}
}

// AddSlide appends a slide, assigning its 1-based number.
func (d *Deck) AddSlide(s *SlideDocument) {
	s.SlideNumber = len(d.Slides) + 1
	d.Slides = append(d.Slides, s)
}

// Slide returns a slide by number (1-indexed), or nil when out of range.
func (d *Deck) Slide(number int) *SlideDocument {
	if number < 1 || number > len(d.Slides) {
		return nil
	}
	return d.Slides[number-1]
}

// SlideCount returns the number of slides.
func (d *Deck) SlideCount() int {
	return len(d.Slides)
}

// ExtractText returns the plain text of every slide, slides separated by
// blank lines.
func (d *Deck) ExtractText() string {
	var sb strings.Builder
	for i, slide := range d.Slides {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(slide.ExtractText())
	}
	return sb.String()
}

// ExtractTables returns all tables from all slides in order.
func (d *Deck) ExtractTables() []*Table {
	var tables []*Table
	for _, slide := range d.Slides {
		tables = append(tables, slide.Tables...)
	}
	return tables
}

// ExtractText returns the slide's text elements joined by newlines.
func (s *SlideDocument) ExtractText() string {
	parts := make([]string, 0, len(s.TextElements))
	for _, el := range s.TextElements {
		if el.Text != "" {
			parts = append(parts, el.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// ToMarkdown renders the slide as a markdown section: title heading,
// body text, then tables.
func (s *SlideDocument) ToMarkdown() string {
	var sb strings.Builder
	if s.Title != "" {
		sb.WriteString("## ")
		sb.WriteString(s.Title)
		sb.WriteString("\n\n")
	}
	if s.Subtitle != "" {
		sb.WriteString("### ")
		sb.WriteString(s.Subtitle)
		sb.WriteString("\n\n")
	}
	for _, el := range s.TextElements {
		if el.Text == "" || el.Text == s.Title || el.Text == s.Subtitle {
			continue
		}
		sb.WriteString(el.Text)
		sb.WriteString("\n\n")
	}
	for _, t := range s.Tables {
		sb.WriteString(t.ToMarkdown())
		sb.WriteString("\n")
	}
	if s.Notes != "" {
		sb.WriteString("> Notes: ")
		sb.WriteString(strings.ReplaceAll(s.Notes, "\n", " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToMarkdown renders the whole deck as markdown, one section per slide.
func (d *Deck) ToMarkdown() string {
	var sb strings.Builder
	if d.Properties != nil && d.Properties.Title != "" {
		sb.WriteString("# ")
		sb.WriteString(d.Properties.Title)
		sb.WriteString("\n\n")
	}
	for _, slide := range d.Slides {
		sb.WriteString(slide.ToMarkdown())
		sb.WriteString("\n")
	}
	return sb.String()
}
