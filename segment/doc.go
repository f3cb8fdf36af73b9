// Package segment implements gutter-driven panel detection for comic pages.
//
// Given a page's pixel content, the package locates the rectangular regions
// corresponding to individual panels, separated by blank gutters, and
// recovers their reading order.
//
// # Pipeline
//
// A decoded page enters as a [Field], a read-only brightness grid with
// precomputed partial ink counts so that occupancy profiles over any
// sub-region cost time linear in the region's perimeter. [Split] recursively
// partitions the page at detected gutter bands, producing a [Tree] whose
// leaves are the final panel bounding boxes. [Order] flattens the leaves
// into reading order.
//
//	field, err := segment.NewField(img, cfg.BlankThreshold)
//	if err != nil {
//	    // malformed page
//	}
//	tree := segment.Split(field, cfg)
//	panels, notes := segment.Order(tree.Leaves(), cfg)
//
// # Detection
//
// A row or column of a region is a gutter line when the fraction of
// non-blank pixels along it falls below [Config].GutterThreshold.
// Consecutive gutter lines merge into a gutter band; bands narrower than
// MinGutterWidth are rejected so that thin ink strokes crossing a near-blank
// row are not mistaken for separators. Each split takes the widest valid
// band on either axis, tie-broken by proximity to the region's center.
//
// Splitting stops when no valid band remains, when a region's extent falls
// below MinPanelSize, or when recursion exceeds MaxDepth. A page with no
// detectable gutters yields a single whole-page leaf rather than an error;
// the only error conditions are structural (empty dimensions, inconsistent
// buffer length) and are reported at [Field] construction.
//
// # Determinism
//
// Segmentation is pure and synchronous. Given identical configuration and
// identical pixel content the resulting tree and panel sequence are
// reproducible bit for bit: all occupancy comparisons reduce to integer
// pixel counts and no iteration order depends on map traversal or
// floating-point accumulation order.
//
// # Reading order
//
// [Order] groups leaves into horizontal bands by overlapping vertical
// extent, orders bands top to bottom and leaves within a band left to right
// (or right to left for manga-style material). Panel layouts that
// deliberately break grid conventions have no universally correct order;
// when a leaf overlaps two bands roughly equally it is assigned to the band
// whose vertical center is closer and flagged as a low-confidence
// placement.
package segment
