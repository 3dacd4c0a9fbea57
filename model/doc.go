// Package model defines the typed document model produced by extraction:
// slides, placeholders, text elements with accumulated run formatting,
// normalized tables, presentation metadata, sections, and media items.
//
// All entities are built fresh per extraction call and are not mutated
// afterwards. Positions and sizes are in EMUs (English Metric Units,
// 914400 per inch); unit conversions happen only in SlideSize.
package model
