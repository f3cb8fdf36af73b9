package segment

import (
	"fmt"
	"sort"

	"github.com/panelizer/panelizer/model"
)

// Note records a recoverable oddity met while resolving reading order, such
// as a panel whose band assignment was ambiguous. Notes never fail a page;
// callers typically surface them as warnings.
type Note struct {
	// Panel is the reading-order index of the affected panel.
	Panel int
	// Message describes the condition.
	Message string
}

// ambiguityMargin is how close (in overlap fraction) two candidate bands
// must be for a placement to count as ambiguous.
const ambiguityMargin = 0.1

// readingBand is a horizontal strip of panels read together before moving
// down the page.
type readingBand struct {
	y0, y1  int
	members []bandMember
}

type bandMember struct {
	region        model.Region
	lowConfidence bool
}

// Order flattens panel-tree leaves into reading order. Leaves are grouped
// into horizontal bands: a leaf joins a band when their vertical spans
// overlap by more than cfg.BandOverlap of the shorter span. Bands run top to
// bottom; within a band panels run left to right, or right to left when
// cfg.Direction is RightToLeft.
//
// Physical split order can interleave panels of uneven layouts, which is why
// ordering is resolved here rather than taken from the tree traversal.
func Order(leaves []model.Region, cfg Config) ([]model.Panel, []Note) {
	cfg = cfg.normalized()
	if len(leaves) == 0 {
		return nil, nil
	}

	sorted := make([]model.Region, len(leaves))
	copy(sorted, leaves)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Y0 != sorted[j].Y0 {
			return sorted[i].Y0 < sorted[j].Y0
		}
		return sorted[i].X0 < sorted[j].X0
	})

	var bands []*readingBand
	var ambiguous []model.Region
	for _, leaf := range sorted {
		idx, lowConf := assignBand(bands, leaf, cfg)
		if idx < 0 {
			bands = append(bands, &readingBand{
				y0:      leaf.Y0,
				y1:      leaf.Y1,
				members: []bandMember{{region: leaf}},
			})
			continue
		}
		b := bands[idx]
		b.members = append(b.members, bandMember{region: leaf, lowConfidence: lowConf})
		b.y0 = min(b.y0, leaf.Y0)
		b.y1 = max(b.y1, leaf.Y1)
		if lowConf {
			ambiguous = append(ambiguous, leaf)
		}
	}

	sort.Slice(bands, func(i, j int) bool {
		if bands[i].y0 != bands[j].y0 {
			return bands[i].y0 < bands[j].y0
		}
		return bands[i].y1 < bands[j].y1
	})

	var panels []model.Panel
	var notes []Note
	for _, b := range bands {
		sort.Slice(b.members, func(i, j int) bool {
			ri, rj := b.members[i].region, b.members[j].region
			if cfg.Direction == RightToLeft {
				if ri.X1 != rj.X1 {
					return ri.X1 > rj.X1
				}
				return ri.Y0 < rj.Y0
			}
			if ri.X0 != rj.X0 {
				return ri.X0 < rj.X0
			}
			return ri.Y0 < rj.Y0
		})
		for _, m := range b.members {
			p := model.Panel{
				Region:        m.region,
				Index:         len(panels),
				LowConfidence: m.lowConfidence,
			}
			if m.lowConfidence {
				notes = append(notes, Note{
					Panel: p.Index,
					Message: fmt.Sprintf("panel %v overlaps two reading bands almost equally; placed by nearest band center",
						m.region),
				})
			}
			panels = append(panels, p)
		}
	}
	return panels, notes
}

// assignBand finds the band the leaf belongs to, or -1 for a new band. The
// second result reports an ambiguous placement: the leaf overlapped two
// bands roughly equally and was assigned to the one whose vertical center is
// closer.
func assignBand(bands []*readingBand, leaf model.Region, cfg Config) (int, bool) {
	bestIdx, secondIdx := -1, -1
	bestFrac, secondFrac := 0.0, 0.0
	for i, b := range bands {
		frac := overlapFraction(b, leaf)
		if frac <= cfg.BandOverlap {
			continue
		}
		if bestIdx < 0 || frac > bestFrac {
			secondIdx, secondFrac = bestIdx, bestFrac
			bestIdx, bestFrac = i, frac
		} else if secondIdx < 0 || frac > secondFrac {
			secondIdx, secondFrac = i, frac
		}
	}
	if bestIdx < 0 {
		return -1, false
	}
	if secondIdx >= 0 && bestFrac-secondFrac < ambiguityMargin {
		// Roughly equal overlap with two bands: pick the nearer center.
		leafCenter := leaf.CenterY()
		best := bands[bestIdx]
		second := bands[secondIdx]
		if absInt(second.y0+second.y1-leafCenter) < absInt(best.y0+best.y1-leafCenter) {
			return secondIdx, true
		}
		return bestIdx, true
	}
	return bestIdx, false
}

// overlapFraction returns the vertical overlap between a band and a leaf as
// a fraction of the shorter of the two spans.
func overlapFraction(b *readingBand, leaf model.Region) float64 {
	top := max(b.y0, leaf.Y0)
	bottom := min(b.y1, leaf.Y1)
	if bottom <= top {
		return 0
	}
	shorter := min(b.y1-b.y0, leaf.Height())
	if shorter == 0 {
		return 0
	}
	return float64(bottom-top) / float64(shorter)
}
