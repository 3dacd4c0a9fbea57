package opc

import (
	"encoding/xml"
	"fmt"
	"path"
	"strings"
)

// Relationship is one entry in a part's relationship table. Target is a
// part name for internal relationships, or a URL when TargetMode is
// "External".
type Relationship struct {
	ID         string
	Type       string
	Target     string
	TargetMode string
}

// External reports whether the relationship points outside the package.
func (r Relationship) External() bool {
	return strings.EqualFold(r.TargetMode, "External")
}

// Relationships is the relationship table scoped to one source part.
// Internal targets are normalized to absolute part names.
type Relationships struct {
	source  string
	byID    map[string]Relationship
	ordered []Relationship
}

type relationshipsXML struct {
	XMLName       xml.Name `xml:"Relationships"`
	Relationships []struct {
		ID         string `xml:"Id,attr"`
		Type       string `xml:"Type,attr"`
		Target     string `xml:"Target,attr"`
		TargetMode string `xml:"TargetMode,attr"`
	} `xml:"Relationship"`
}

// Relationships returns the relationship table for a source part. A part
// with no relationship file yields an empty table, not an error; the
// package root's table lives under source "".
func (p *Package) Relationships(source string) (*Relationships, error) {
	rels := &Relationships{source: source, byID: make(map[string]Relationship)}

	data, err := p.ReadPart(relsPartFor(source))
	if err != nil {
		return rels, nil
	}

	var parsed relationshipsXML
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: relationships for %s: %v", ErrMalformedPackage, source, err)
	}

	for _, r := range parsed.Relationships {
		rel := Relationship{
			ID:         r.ID,
			Type:       r.Type,
			Target:     r.Target,
			TargetMode: r.TargetMode,
		}
		if !rel.External() {
			rel.Target = resolveTarget(source, rel.Target)
		}
		rels.byID[rel.ID] = rel
		rels.ordered = append(rels.ordered, rel)
	}
	return rels, nil
}

// Lookup returns the relationship with the given id.
func (rs *Relationships) Lookup(id string) (Relationship, bool) {
	r, ok := rs.byID[id]
	return r, ok
}

// Resolve returns the normalized target part name for a relationship id.
// External relationships return their URL unchanged.
func (rs *Relationships) Resolve(id string) (string, bool) {
	r, ok := rs.byID[id]
	if !ok {
		return "", false
	}
	return r.Target, true
}

// ByType returns every relationship whose type URI contains the given
// substring, in table order.
func (rs *Relationships) ByType(substr string) []Relationship {
	var out []Relationship
	for _, r := range rs.ordered {
		if strings.Contains(r.Type, substr) {
			out = append(out, r)
		}
	}
	return out
}

// All returns every relationship in table order.
func (rs *Relationships) All() []Relationship {
	return rs.ordered
}

// Len returns the number of relationships in the table.
func (rs *Relationships) Len() int {
	return len(rs.ordered)
}

// relsPartFor maps a part name to its relationship part:
// "ppt/presentation.xml" -> "ppt/_rels/presentation.xml.rels", and the
// package root ("") -> "_rels/.rels".
func relsPartFor(source string) string {
	if source == "" {
		return PartRootRels
	}
	dir, base := path.Split(source)
	return dir + "_rels/" + base + ".rels"
}

// resolveTarget normalizes a relationship target against its source
// part's directory, collapsing "../" segments. Absolute targets are
// rooted at the package root.
func resolveTarget(source, target string) string {
	if strings.HasPrefix(target, "/") {
		return path.Clean(target[1:])
	}
	dir := path.Dir(source)
	if source == "" || dir == "." {
		return path.Clean(target)
	}
	return path.Clean(path.Join(dir, target))
}
