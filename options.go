package deckfold

import "github.com/deckfold/deckfold/cache"

// ExtractOptions holds configuration for presentation extraction.
type ExtractOptions struct {
	// Slide selection (1-indexed in API, stored as-is)
	slides []int

	// Content options
	excludeNotes bool

	// Processing options
	cache           cache.Cache
	streamThreshold int // 0 means the engine default
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		slides:          nil, // nil means all slides
		excludeNotes:    false,
		cache:           nil,
		streamThreshold: 0,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		excludeNotes:    o.excludeNotes,
		cache:           o.cache,
		streamThreshold: o.streamThreshold,
	}

	// Deep copy slides slice
	if o.slides != nil {
		newOpts.slides = make([]int, len(o.slides))
		copy(newOpts.slides, o.slides)
	}

	return newOpts
}
