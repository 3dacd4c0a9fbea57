package opc

import "strings"

// ArchiveInfo is a census of the package contents.
type ArchiveInfo struct {
	TotalParts      int      `json:"total_parts"`
	XMLParts        int      `json:"xml_parts"`
	SlideCount      int      `json:"slide_count"`
	LayoutCount     int      `json:"layout_count"`
	NotesCount      int      `json:"notes_count"`
	MediaCount      int      `json:"media_count"`
	SlideParts      []string `json:"slide_parts,omitempty"`
	LayoutParts     []string `json:"layout_parts,omitempty"`
	NotesParts      []string `json:"notes_parts,omitempty"`
	HasPresentation bool     `json:"has_presentation"`
	HasContentTypes bool     `json:"has_content_types"`
}

// Info summarizes the package without parsing any part.
func (p *Package) Info() ArchiveInfo {
	info := ArchiveInfo{
		HasPresentation: p.HasPart(PartPresentation),
		HasContentTypes: p.HasPart(PartContentTypes),
	}
	for _, name := range p.Parts() {
		info.TotalParts++
		if strings.HasSuffix(name, ".xml") || strings.HasSuffix(name, ".rels") {
			info.XMLParts++
		}
		switch {
		case IsSlidePart(name):
			info.SlideParts = append(info.SlideParts, name)
		case IsLayoutPart(name):
			info.LayoutParts = append(info.LayoutParts, name)
		case IsNotesPart(name):
			info.NotesParts = append(info.NotesParts, name)
		case strings.HasPrefix(name, "ppt/media/"):
			info.MediaCount++
		}
	}
	info.SlideCount = len(info.SlideParts)
	info.LayoutCount = len(info.LayoutParts)
	info.NotesCount = len(info.NotesParts)
	return info
}

// IsSlidePart reports whether a part name is a slide part.
func IsSlidePart(name string) bool {
	return strings.HasPrefix(name, "ppt/slides/slide") && strings.HasSuffix(name, ".xml")
}

// IsLayoutPart reports whether a part name is a slide layout part.
func IsLayoutPart(name string) bool {
	return strings.HasPrefix(name, "ppt/slideLayouts/slideLayout") && strings.HasSuffix(name, ".xml")
}

// IsNotesPart reports whether a part name is a notes slide part.
func IsNotesPart(name string) bool {
	return strings.HasPrefix(name, "ppt/notesSlides/notesSlide") && strings.HasSuffix(name, ".xml")
}
