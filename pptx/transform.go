package pptx

import (
	"github.com/deckfold/deckfold/model"
	"github.com/deckfold/deckfold/ooxml"
)

// shapeTransform resolves a shape's position and size in EMUs from its
// a:xfrm child. Missing transform, offset or extent fields default to
// zero.
func (r *Reader) shapeTransform(shape *ooxml.Node) (pos, size model.Point) {
	xfrm := r.x.FindFirst(shape, "p:spPr/a:xfrm")
	if xfrm == nil {
		xfrm = r.x.FindFirst(shape, "//a:xfrm")
	}
	return r.transformOf(xfrm)
}

// frameTransform resolves a graphic frame's transform, which lives in
// the presentation namespace (p:xfrm) rather than under spPr.
func (r *Reader) frameTransform(frame *ooxml.Node) (pos, size model.Point) {
	xfrm := r.x.FindFirst(frame, "p:xfrm")
	if xfrm == nil {
		xfrm = r.x.FindFirst(frame, "//a:xfrm")
	}
	return r.transformOf(xfrm)
}

func (r *Reader) transformOf(xfrm *ooxml.Node) (pos, size model.Point) {
	if xfrm == nil {
		return
	}
	if off := r.x.FindFirst(xfrm, "a:off"); off != nil {
		pos.X = parseInt64(off.AttrDefault("x", "0"))
		pos.Y = parseInt64(off.AttrDefault("y", "0"))
	}
	if ext := r.x.FindFirst(xfrm, "a:ext"); ext != nil {
		size.X = parseInt64(ext.AttrDefault("cx", "0"))
		size.Y = parseInt64(ext.AttrDefault("cy", "0"))
	}
	return
}
