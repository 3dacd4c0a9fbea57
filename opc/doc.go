// Package opc provides read access to an Open Packaging Conventions
// container: the ZIP archive of parts and per-part relationship files
// that make up a .pptx package.
//
// The package exposes the narrow surface the extraction engine depends
// on: list part names, read part bytes by name, and resolve a
// relationship id to its target for a given source part.
package opc
