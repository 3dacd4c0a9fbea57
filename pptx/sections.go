package pptx

import (
	"github.com/deckfold/deckfold/model"
	"github.com/deckfold/deckfold/ooxml"
)

// Sections returns the presentation's section list in order. The section
// list lives in an extension block, under the 2010+ PowerPoint namespace
// in current files; the base namespace variant is also accepted.
// Presentations without sections return an empty list.
func (r *Reader) Sections() ([]model.Section, error) {
	sectionList, err := r.sectionNodes()
	if err != nil {
		return nil, err
	}
	sections := make([]model.Section, 0, len(sectionList))
	for _, s := range sectionList {
		sections = append(sections, model.Section{
			Name: s.AttrDefault("name", "Unnamed Section"),
			ID:   s.AttrDefault("id", ""),
		})
	}
	return sections, nil
}

// SectionSlides derives each section's slide membership: the section's
// slide-id references intersected with the presentation's slide order.
// Keys are section names; values are ascending 1-based slide numbers.
func (r *Reader) SectionSlides() (map[string][]int, error) {
	sectionList, err := r.sectionNodes()
	if err != nil {
		return nil, err
	}

	bySlideID := make(map[string]int, len(r.slides))
	for i, entry := range r.slides {
		bySlideID[entry.id] = i + 1
	}

	membership := make(map[string][]int, len(sectionList))
	for _, s := range sectionList {
		name := s.AttrDefault("name", "Unnamed Section")
		var numbers []int
		for _, ref := range r.x.FindAll(s, "//p14:sldId") {
			if id, ok := ref.Attr("id"); ok {
				if n, found := bySlideID[id]; found {
					numbers = append(numbers, n)
				}
			}
		}
		for _, ref := range r.x.FindAll(s, "//p:sldId") {
			if id, ok := ref.Attr("id"); ok {
				if n, found := bySlideID[id]; found {
					numbers = append(numbers, n)
				}
			}
		}
		membership[name] = numbers
	}
	return membership, nil
}

func (r *Reader) sectionNodes() ([]*ooxml.Node, error) {
	data, err := r.pkg.ReadPart("ppt/presentation.xml")
	if err != nil {
		return nil, err
	}
	root, err := r.x.ParseTargets(data, "p:extLst")
	if err != nil {
		return nil, err
	}

	list := r.x.FindFirst(root, "//p14:sectionLst")
	if list == nil {
		list = r.x.FindFirst(root, "//p:sectionLst")
	}
	if list == nil {
		return nil, nil
	}

	sections := r.x.FindAll(list, "p14:section")
	if len(sections) == 0 {
		sections = r.x.FindAll(list, "p:section")
	}
	return sections, nil
}
