package pptx

import (
	"github.com/deckfold/deckfold/model"
	"github.com/deckfold/deckfold/opc"
)

// Layouts introspects every slide layout part: display name plus the
// placeholder roles the layout defines. Layout parts that fail to parse
// are skipped with a diagnostic.
func (r *Reader) Layouts() ([]model.LayoutInfo, error) {
	var layouts []model.LayoutInfo
	for _, part := range r.pkg.Parts() {
		if !opc.IsLayoutPart(part) {
			continue
		}
		data, err := r.pkg.ReadPart(part)
		if err != nil {
			r.addDiag(0, "layout part "+part, err)
			continue
		}
		root, err := r.x.ParseTargets(data, "p:spTree")
		if err != nil {
			r.addDiag(0, "layout part "+part, err)
			continue
		}

		info := model.LayoutInfo{
			PartName:     part,
			Placeholders: make([]model.Placeholder, 0),
		}
		if cSld := r.x.FindFirst(root, "p:cSld"); cSld != nil {
			info.Name = cSld.AttrDefault("name", "")
		}
		for _, shape := range r.x.FindAll(root, "//p:sp") {
			ph := r.x.FindFirst(shape, "p:nvSpPr/p:nvPr/p:ph")
			if ph == nil {
				continue
			}
			pos, size := r.shapeTransform(shape)
			info.Placeholders = append(info.Placeholders, model.Placeholder{
				Type:     ph.AttrDefault("type", "content"),
				Index:    ph.AttrDefault("idx", ""),
				Position: pos,
				Size:     size,
			})
		}
		layouts = append(layouts, info)
	}
	return layouts, nil
}
