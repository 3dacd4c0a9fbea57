package ooxml

import (
	"encoding/xml"
	"strings"
)

// FindFirst returns the first node matching a prefixed path, or nil.
// Path segments are separated by "/" and matched against direct children;
// a leading "//" (or ".//") matches the first segment at any depth.
//
//	r.FindFirst(slide, "p:cSld/p:spTree")
//	r.FindFirst(run, "a:rPr")
//	r.FindFirst(shape, "//a:t")
func (r *Reader) FindFirst(n *Node, path string) *Node {
	matches := r.find(n, path, true)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// FindAll returns every node matching a prefixed path, in document order.
func (r *Reader) FindAll(n *Node, path string) []*Node {
	return r.find(n, path, false)
}

func (r *Reader) find(n *Node, path string, firstOnly bool) []*Node {
	deep := false
	switch {
	case strings.HasPrefix(path, ".//"):
		deep = true
		path = path[3:]
	case strings.HasPrefix(path, "//"):
		deep = true
		path = path[2:]
	}

	segments := strings.Split(path, "/")
	names := make([]xml.Name, len(segments))
	for i, s := range segments {
		names[i] = r.ns.Expand(s)
	}

	var heads []*Node
	if deep {
		heads = n.descendants(names[0], nil)
	} else {
		heads = n.childrenNamed(names[0])
	}

	if len(names) == 1 {
		if firstOnly && len(heads) > 1 {
			return heads[:1]
		}
		return heads
	}

	var out []*Node
	for _, h := range heads {
		out = append(out, walkSegments(h, names[1:])...)
		if firstOnly && len(out) > 0 {
			return out[:1]
		}
	}
	return out
}

func walkSegments(n *Node, names []xml.Name) []*Node {
	current := []*Node{n}
	for _, name := range names {
		var next []*Node
		for _, c := range current {
			next = append(next, c.childrenNamed(name)...)
		}
		if len(next) == 0 {
			return nil
		}
		current = next
	}
	return current
}
