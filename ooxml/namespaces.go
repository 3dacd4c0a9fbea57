package ooxml

import (
	"encoding/xml"
	"strings"
)

// Namespace URIs used across PresentationML packages.
const (
	NSPresentation   = "http://schemas.openxmlformats.org/presentationml/2006/main"
	NSDrawing        = "http://schemas.openxmlformats.org/drawingml/2006/main"
	NSDocRelation    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	NSPackageRel     = "http://schemas.openxmlformats.org/package/2006/relationships"
	NSCoreProps      = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	NSAppProps       = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	NSDublinCore     = "http://purl.org/dc/elements/1.1/"
	NSDCTerms        = "http://purl.org/dc/terms/"
	NSPowerPoint2010 = "http://schemas.microsoft.com/office/powerpoint/2010/main"
)

// Namespaces maps a query prefix to its namespace URI. The table is
// immutable after construction; there is no process-wide registry.
type Namespaces map[string]string

// DefaultNamespaces returns the prefix table for PresentationML parts.
func DefaultNamespaces() Namespaces {
	return Namespaces{
		"p":   NSPresentation,
		"a":   NSDrawing,
		"r":   NSDocRelation,
		"rel": NSPackageRel,
		"cp":  NSCoreProps,
		"ep":  NSAppProps,
		"dc":  NSDublinCore,
		"dct": NSDCTerms,
		"p14": NSPowerPoint2010,
	}
}

// Expand resolves a prefixed name such as "p:sp" to its expanded form.
// An unknown prefix is a programmer error and panics; data errors never
// reach this point because the table is fixed at build time.
func (ns Namespaces) Expand(prefixed string) xml.Name {
	i := strings.IndexByte(prefixed, ':')
	if i < 0 {
		return xml.Name{Local: prefixed}
	}
	uri, ok := ns[prefixed[:i]]
	if !ok {
		panic("ooxml: unknown namespace prefix " + prefixed[:i])
	}
	return xml.Name{Space: uri, Local: prefixed[i+1:]}
}
