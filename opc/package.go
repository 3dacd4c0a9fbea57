package opc

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

var (
	// ErrMissingPart is returned when a named part does not exist in the
	// package.
	ErrMissingPart = errors.New("opc: part not found")

	// ErrMalformedPackage is returned when the container cannot be read
	// as a ZIP archive or lacks required parts.
	ErrMalformedPackage = errors.New("opc: malformed package")
)

// Required parts of a valid package.
const (
	PartContentTypes = "[Content_Types].xml"
	PartRootRels     = "_rels/.rels"
	PartPresentation = "ppt/presentation.xml"
)

// Package is a read-only OPC container.
type Package struct {
	zr     *zip.Reader
	closer io.Closer
	parts  map[string]*zip.File
}

// Open opens a package file from disk. The caller must Close it.
func Open(path string) (*Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open package: %w", err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat package: %w", err)
	}
	pkg, err := NewPackage(f, st.Size())
	if err != nil {
		f.Close()
		return nil, err
	}
	pkg.closer = f
	return pkg, nil
}

// NewPackage reads a package from an in-memory or already-open source.
func NewPackage(r io.ReaderAt, size int64) (*Package, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPackage, err)
	}
	parts := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		if strings.HasSuffix(f.Name, "/") {
			continue
		}
		parts[f.Name] = f
	}
	return &Package{zr: zr, parts: parts}, nil
}

// Close releases the underlying file, if this package owns one.
// It is safe to call Close multiple times.
func (p *Package) Close() error {
	if p.closer != nil {
		err := p.closer.Close()
		p.closer = nil
		return err
	}
	return nil
}

// Parts returns every part name in the package, sorted.
func (p *Package) Parts() []string {
	names := make([]string, 0, len(p.parts))
	for name := range p.parts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasPart reports whether a part exists.
func (p *Package) HasPart(name string) bool {
	_, ok := p.parts[name]
	return ok
}

// PartSize returns a part's uncompressed size, or false when absent.
func (p *Package) PartSize(name string) (int64, bool) {
	f, ok := p.parts[name]
	if !ok {
		return 0, false
	}
	return int64(f.UncompressedSize64), true
}

// ReadPart returns the bytes of a named part.
func (p *Package) ReadPart(name string) ([]byte, error) {
	f, ok := p.parts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingPart, name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open part %s: %w", name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read part %s: %w", name, err)
	}
	return data, nil
}

// Validate checks that the package carries the parts every valid
// presentation must have.
func (p *Package) Validate() error {
	for _, required := range []string{PartContentTypes, PartRootRels, PartPresentation} {
		if !p.HasPart(required) {
			return fmt.Errorf("%w: missing required part %s", ErrMalformedPackage, required)
		}
	}
	return nil
}
