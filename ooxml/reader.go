package ooxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

// ErrMalformedInput is returned when a part cannot be parsed as XML.
// No partial-tree recovery is attempted.
var ErrMalformedInput = errors.New("ooxml: malformed input")

// DefaultStreamThreshold is the part size above which ParseTargets
// switches to streaming mode.
const DefaultStreamThreshold = 1 << 20

// Reader parses OOXML parts and resolves prefixed path queries against
// its namespace table. A Reader is immutable after construction and safe
// for concurrent use.
type Reader struct {
	ns        Namespaces
	threshold int
}

// NewReader returns a Reader with the default namespace table and
// streaming threshold.
func NewReader() *Reader {
	return &Reader{ns: DefaultNamespaces(), threshold: DefaultStreamThreshold}
}

// WithThreshold returns a copy of the Reader using the given streaming
// threshold in bytes. A non-positive value disables streaming.
func (r *Reader) WithThreshold(n int) *Reader {
	cp := *r
	if n <= 0 {
		n = int(^uint(0) >> 1)
	}
	cp.threshold = n
	return &cp
}

// Namespaces returns the reader's prefix table.
func (r *Reader) Namespaces() Namespaces {
	return r.ns
}

// Parse builds the whole tree for a part.
func (r *Reader) Parse(data []byte) (*Node, error) {
	return r.parse(data, nil)
}

// ParseTargets parses a part, retaining only the named target subtrees
// (plus the attributes and text of their ancestors) when the part exceeds
// the streaming threshold. Below the threshold the full tree is returned,
// so queries confined to the targets behave identically in both modes.
func (r *Reader) ParseTargets(data []byte, targets ...string) (*Node, error) {
	if len(targets) == 0 || len(data) <= r.threshold {
		return r.parse(data, nil)
	}
	names := make(map[xml.Name]bool, len(targets))
	for _, t := range targets {
		names[r.ns.Expand(t)] = true
	}
	return r.parse(data, names)
}

func (r *Reader) parse(data []byte, targets map[xml.Name]bool) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel

	var root *Node
	var stack []*Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name}
			if len(t.Attr) > 0 {
				n.Attrs = make([]xml.Attr, len(t.Attr))
				copy(n.Attrs, t.Attr)
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple document elements", ErrMalformedInput)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
				if targets != nil && parent.keep {
					n.keep = true
				}
			}
			if targets != nil && targets[t.Name] {
				n.keep = true
			}
			stack = append(stack, n)

		case xml.EndElement:
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if targets != nil && len(stack) > 0 {
				parent := stack[len(stack)-1]
				if n.keep {
					parent.keep = true
				} else {
					// Fully closed with no target inside: release it.
					parent.Children = parent.Children[:len(parent.Children)-1]
				}
			}

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no document element", ErrMalformedInput)
	}
	return root, nil
}
