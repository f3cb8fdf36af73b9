package model

// Panel is a detected comic panel: a leaf region of the page partition
// tagged with its reading-order index.
type Panel struct {
	// Region is the panel bounding box in source-page pixel coordinates.
	Region Region

	// Index is the zero-based reading-order index within the page.
	Index int

	// LowConfidence marks panels whose reading-band assignment was
	// ambiguous and resolved by the nearest-center heuristic.
	LowConfidence bool
}

// PageResult holds the segmentation result for a single page.
type PageResult struct {
	// PageIndex is the zero-based index of the page within its source.
	PageIndex int

	// Name is the page's member or file name within its source, if known.
	Name string

	// Bounds is the full page extent.
	Bounds Region

	// Panels in reading order.
	Panels []Panel
}

// PanelCount returns the number of panels detected on the page.
func (p PageResult) PanelCount() int {
	return len(p.Panels)
}
