package segment

// Direction indicates the horizontal reading direction of the material.
type Direction int

const (
	// LeftToRight is the convention for Western comics.
	LeftToRight Direction = iota
	// RightToLeft is the convention for unmirrored manga.
	RightToLeft
)

// String returns a string representation of the reading direction.
func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// Config holds the tunable thresholds for one segmentation run. The zero
// value is not usable; start from DefaultConfig and adjust.
type Config struct {
	// BlankThreshold is the brightness cutoff for a blank pixel. A pixel
	// whose luminance is at or above the threshold counts as background.
	// Lower it for dim scans; invert the page before segmentation for
	// white-ink-on-black material.
	BlankThreshold uint8

	// GutterThreshold is the maximum fraction of non-blank pixels a row or
	// column may contain and still qualify as a gutter line. Nonzero values
	// tolerate scan noise and speckle.
	GutterThreshold float64

	// MinGutterWidth is the minimum number of consecutive gutter lines for
	// a band to act as a panel separator.
	MinGutterWidth int

	// MinPanelSize is the minimum extent, on both axes, for a region to be
	// subdivided further. Prevents runaway subdivision on textured art.
	MinPanelSize int

	// MaxDepth bounds the split recursion as a guard against pathological
	// inputs such as pages of alternating fine stripes.
	MaxDepth int

	// Direction is the reading direction used when ordering panels.
	Direction Direction

	// BandOverlap is the fraction of the shorter vertical span two leaves
	// must share to be grouped into the same reading band.
	BandOverlap float64
}

// DefaultConfig returns the default segmentation thresholds. The blank
// threshold of 235 leaves headroom for off-white paper in typical scans.
func DefaultConfig() Config {
	return Config{
		BlankThreshold:  235,
		GutterThreshold: 0.02,
		MinGutterWidth:  6,
		MinPanelSize:    32,
		MaxDepth:        8,
		Direction:       LeftToRight,
		BandOverlap:     0.5,
	}
}

// normalized replaces unusable values with defaults so that a partially
// filled Config cannot drive the splitter into nontermination.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.GutterThreshold < 0 {
		c.GutterThreshold = def.GutterThreshold
	}
	if c.MinGutterWidth < 1 {
		c.MinGutterWidth = def.MinGutterWidth
	}
	if c.MinPanelSize < 1 {
		c.MinPanelSize = def.MinPanelSize
	}
	if c.MaxDepth < 1 {
		c.MaxDepth = def.MaxDepth
	}
	if c.BandOverlap <= 0 || c.BandOverlap > 1 {
		c.BandOverlap = def.BandOverlap
	}
	return c
}
