package estado

import (
	"github.com/tsawler/estado/grid"
	"github.com/tsawler/estado/profile"
)

// ExtractOptions holds configuration for statement extraction.
type ExtractOptions struct {
	// Profile selection: an explicit profile wins over detection candidates
	profile    *profile.Profile
	candidates []profile.Profile

	// External transaction grid (a grid value wins over a file path)
	grid     *grid.Grid
	gridPath string

	// Page selection (1-indexed in API, stored as-is)
	pages []int
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages: nil, // nil means all pages
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		profile:  o.profile,
		grid:     o.grid,
		gridPath: o.gridPath,
	}

	if o.candidates != nil {
		newOpts.candidates = make([]profile.Profile, len(o.candidates))
		copy(newOpts.candidates, o.candidates)
	}
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
