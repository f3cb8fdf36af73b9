package panelizer

import (
	"github.com/panelizer/panelizer/imageutil"
	"github.com/panelizer/panelizer/segment"
	"github.com/panelizer/panelizer/source"
)

// ExtractOptions holds configuration for panel extraction.
type ExtractOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Segmentation thresholds
	cfg segment.Config

	// Parallelism; 0 means auto-size from the host
	workers int

	// PDF render resolution
	dpi int

	// Crop output encoding
	outFormat imageutil.OutputFormat
	quality   int
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:     nil, // nil means all pages
		cfg:       segment.DefaultConfig(),
		workers:   0,
		dpi:       source.DefaultDPI,
		outFormat: imageutil.JPEG,
		quality:   90,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := o
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}
	return newOpts
}
