// Package pptx extracts a typed document model from PowerPoint (.pptx)
// packages: slides with placeholders, styled text elements, normalized
// tables, speaker notes, sections, and presentation metadata.
//
// A Reader is opened once per package and builds one SlideDocument per
// slide part. Extraction is synchronous and side-effect-free: failures in
// optional sub-features degrade that feature to its empty value and are
// recorded as diagnostics, while unparsable parts and out-of-range slide
// requests are terminal errors.
package pptx
