package segment

import "github.com/panelizer/panelizer/model"

// Split recursively partitions the page into panels at detected gutter
// bands, a binary space partition driven by content rather than a fixed
// grid. It returns a tree unconditionally: a page with no usable gutters
// (including a fully blank page) yields a single whole-page leaf.
func Split(f *Field, cfg Config) *Tree {
	cfg = cfg.normalized()
	return &Tree{Root: splitRegion(f, f.Bounds(), cfg, 0)}
}

func splitRegion(f *Field, r model.Region, cfg Config, depth int) *Node {
	trimmed, ok := shrinkToContent(f, r, cfg)
	if !ok {
		// Fully blank region. Degenerate, but still a panel: report the
		// whole region rather than nothing.
		return &Node{Region: r}
	}
	r = trimmed

	if depth >= cfg.MaxDepth || r.Width() < cfg.MinPanelSize || r.Height() < cfg.MinPanelSize {
		return &Node{Region: r}
	}

	p := profileRegion(f, r)
	hBand, hOK := chooseBand(gutterBands(p.Rows, r.Y0, cfg), r.Y0, r.Y1, cfg.MinPanelSize)
	vBand, vOK := chooseBand(gutterBands(p.Cols, r.X0, cfg), r.X0, r.X1, cfg.MinPanelSize)

	axis := Horizontal
	best := hBand
	switch {
	case hOK && vOK:
		if preferSecond(hBand, vBand, r.CenterY(), r.CenterX()) {
			axis, best = Vertical, vBand
		}
	case vOK:
		axis, best = Vertical, vBand
	case !hOK:
		return &Node{Region: r}
	}

	n := &Node{Region: r, Axis: axis, SplitAt: best.center() / 2}
	if axis == Horizontal {
		n.First = splitRegion(f, model.Region{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: best.start}, cfg, depth+1)
		n.Second = splitRegion(f, model.Region{X0: r.X0, Y0: best.end, X1: r.X1, Y1: r.Y1}, cfg, depth+1)
	} else {
		n.First = splitRegion(f, model.Region{X0: r.X0, Y0: r.Y0, X1: best.start, Y1: r.Y1}, cfg, depth+1)
		n.Second = splitRegion(f, model.Region{X0: best.end, Y0: r.Y0, X1: r.X1, Y1: r.Y1}, cfg, depth+1)
	}
	return n
}

// shrinkToContent trims blank margins: leading and trailing runs of gutter
// lines on both axes, repeated until stable since trimming one axis changes
// the other's profile. Returns false when the region contains no ink at all.
func shrinkToContent(f *Field, r model.Region, cfg Config) (model.Region, bool) {
	for {
		if r.Empty() {
			return model.Region{}, false
		}
		p := profileRegion(f, r)
		next := r
		next.Y0 += leadingGutter(p.Rows, cfg.GutterThreshold)
		if next.Y0 < next.Y1 {
			next.Y1 -= trailingGutter(p.Rows, cfg.GutterThreshold)
		}
		next.X0 += leadingGutter(p.Cols, cfg.GutterThreshold)
		if next.X0 < next.X1 {
			next.X1 -= trailingGutter(p.Cols, cfg.GutterThreshold)
		}
		if next == r {
			return r, true
		}
		r = next
	}
}

func leadingGutter(occ []float64, threshold float64) int {
	n := 0
	for _, v := range occ {
		if v > threshold {
			break
		}
		n++
	}
	return n
}

func trailingGutter(occ []float64, threshold float64) int {
	n := 0
	for i := len(occ) - 1; i >= 0; i-- {
		if occ[i] > threshold {
			break
		}
		n++
	}
	return n
}

// chooseBand picks the split band for one axis: the widest band whose split
// would leave both children at least minPanel wide along the axis, with ties
// broken by proximity to the region center. lo and hi are the region's
// extent along the axis.
//
// Bands touching the region edge cannot occur here; shrinkToContent has
// already consumed them.
func chooseBand(bands []band, lo, hi, minPanel int) (band, bool) {
	center := lo + hi
	var best band
	found := false
	for _, b := range bands {
		if b.start-lo < minPanel || hi-b.end < minPanel {
			continue
		}
		if !found || wider(b, best, center) {
			best = b
			found = true
		}
	}
	return best, found
}

// wider reports whether a beats b: wider wins; equal widths go to the band
// closer to the region center, which minimizes lopsided splits on noisy art.
func wider(a, b band, center int) bool {
	if a.width() != b.width() {
		return a.width() > b.width()
	}
	return absInt(a.center()-center) < absInt(b.center()-center)
}

// preferSecond reports whether the vertical candidate should win over the
// horizontal one: the wider band wins, ties go to the band closer to its
// region midpoint.
func preferSecond(h, v band, hCenter, vCenter int) bool {
	if v.width() != h.width() {
		return v.width() > h.width()
	}
	return absInt(v.center()-vCenter) < absInt(h.center()-hCenter)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
