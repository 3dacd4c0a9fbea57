package ooxml

import (
	"encoding/xml"
	"strings"
)

// Node is one element in a parsed tree. Text holds the character data
// directly inside the element (not descendants).
type Node struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Children []*Node
	Text     string

	keep bool // streaming mode: subtree contains a target
}

// Attr returns the value of an unqualified attribute.
func (n *Node) Attr(local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Space == "" && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// AttrDefault returns the value of an unqualified attribute, or def when
// the attribute is absent.
func (n *Node) AttrDefault(local, def string) string {
	if v, ok := n.Attr(local); ok {
		return v
	}
	return def
}

// AttrNS returns the value of a namespace-qualified attribute, such as
// r:id on a slide reference.
func (n *Node) AttrNS(space, local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Space == space && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// TrimmedText returns the element's own text with surrounding whitespace
// removed.
func (n *Node) TrimmedText() string {
	return strings.TrimSpace(n.Text)
}

// Is reports whether the node has the given expanded name.
func (n *Node) Is(name xml.Name) bool {
	return n.Name == name
}

func (n *Node) child(name xml.Name) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (n *Node) childrenNamed(name xml.Name) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

func (n *Node) descendants(name xml.Name, out []*Node) []*Node {
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
		out = c.descendants(name, out)
	}
	return out
}
