package segment

import "github.com/panelizer/panelizer/model"

// Profile holds the occupancy of every row and column of one region: the
// fraction of ink (non-blank) pixels along each line, restricted to the
// region. Profiles are transient; they are recomputed at every recursion
// step and never shared between regions.
type Profile struct {
	// Rows[i] is the ink fraction of row r.Y0+i across columns [X0, X1).
	Rows []float64
	// Cols[i] is the ink fraction of column r.X0+i across rows [Y0, Y1).
	Cols []float64
}

// profileRegion computes the occupancy profile of r. Thanks to the field's
// partial ink counts this is linear in the region's perimeter.
func profileRegion(f *Field, r model.Region) Profile {
	p := Profile{
		Rows: make([]float64, r.Height()),
		Cols: make([]float64, r.Width()),
	}
	rw := float64(r.Width())
	for y := r.Y0; y < r.Y1; y++ {
		p.Rows[y-r.Y0] = float64(f.rowInkRange(y, r.X0, r.X1)) / rw
	}
	rh := float64(r.Height())
	for x := r.X0; x < r.X1; x++ {
		p.Cols[x-r.X0] = float64(f.colInkRange(x, r.Y0, r.Y1)) / rh
	}
	return p
}

// band is a run of consecutive gutter lines in page coordinates, spanning
// lines [start, end) along one axis.
type band struct {
	start, end int
}

func (b band) width() int { return b.end - b.start }

// center returns the band midpoint doubled, to stay in integer arithmetic.
func (b band) center() int { return b.start + b.end }

// gutterBands merges consecutive gutter lines (occupancy at or below the
// gutter threshold) into bands and drops bands narrower than MinGutterWidth.
// offset translates profile indices back to page coordinates.
func gutterBands(occ []float64, offset int, cfg Config) []band {
	var bands []band
	runStart := -1
	for i, v := range occ {
		if v <= cfg.GutterThreshold {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		if runStart >= 0 {
			bands = appendBand(bands, band{offset + runStart, offset + i}, cfg)
			runStart = -1
		}
	}
	if runStart >= 0 {
		bands = appendBand(bands, band{offset + runStart, offset + len(occ)}, cfg)
	}
	return bands
}

func appendBand(bands []band, b band, cfg Config) []band {
	if b.width() < cfg.MinGutterWidth {
		return bands
	}
	return append(bands, b)
}
