// Package ooxml provides a namespace-aware XML reader for Office Open XML
// parts. It parses a part into a Node tree and answers prefix-qualified
// path queries ("p:cSld/p:spTree", "//a:t") against a fixed prefix-to-URI
// table.
//
// Parts above a configurable size threshold can be parsed in a streaming
// mode that materializes only requested target subtrees: as soon as a
// subtree is fully closed and contains no target, it is discarded,
// bounding peak memory to the depth of the current path plus the retained
// targets. Queries confined to the targets see the same tree either way.
package ooxml
