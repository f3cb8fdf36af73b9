package model

import "image"

// Region represents an axis-aligned bounding box in page pixel coordinates.
// The box spans columns [X0, X1) and rows [Y0, Y1). A well-formed Region has
// X0 < X1 and Y0 < Y1.
type Region struct {
	X0, Y0 int
	X1, Y1 int
}

// NewRegion creates a region from two corner coordinates, normalizing the
// corner order.
func NewRegion(x0, y0, x1, y1 int) Region {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Region{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the horizontal extent in pixels.
func (r Region) Width() int {
	return r.X1 - r.X0
}

// Height returns the vertical extent in pixels.
func (r Region) Height() int {
	return r.Y1 - r.Y0
}

// Area returns the area in pixels.
func (r Region) Area() int {
	return r.Width() * r.Height()
}

// CenterX returns the horizontal center in half-pixel units (doubled to stay
// in integer arithmetic).
func (r Region) CenterX() int {
	return r.X0 + r.X1
}

// CenterY returns the vertical center in half-pixel units (doubled to stay
// in integer arithmetic).
func (r Region) CenterY() int {
	return r.Y0 + r.Y1
}

// Empty returns true if the region has no pixels.
func (r Region) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Valid returns true if the region has positive extent on both axes.
func (r Region) Valid() bool {
	return !r.Empty()
}

// Contains checks whether the pixel (x, y) lies inside the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

// Intersects checks whether two regions share at least one pixel.
func (r Region) Intersects(other Region) bool {
	return r.X0 < other.X1 && other.X0 < r.X1 &&
		r.Y0 < other.Y1 && other.Y0 < r.Y1
}

// VerticalOverlap returns the number of rows shared by the vertical spans of
// two regions, regardless of their horizontal positions. Zero when the spans
// are disjoint.
func (r Region) VerticalOverlap(other Region) int {
	top := max(r.Y0, other.Y0)
	bottom := min(r.Y1, other.Y1)
	if bottom <= top {
		return 0
	}
	return bottom - top
}

// Union returns the smallest region covering both regions.
func (r Region) Union(other Region) Region {
	return Region{
		X0: min(r.X0, other.X0),
		Y0: min(r.Y0, other.Y0),
		X1: max(r.X1, other.X1),
		Y1: max(r.Y1, other.Y1),
	}
}

// Rect converts the region to an image.Rectangle for use with the standard
// image packages.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X0, r.Y0, r.X1, r.Y1)
}

// FromRect converts an image.Rectangle to a Region.
func FromRect(rect image.Rectangle) Region {
	return Region{X0: rect.Min.X, Y0: rect.Min.Y, X1: rect.Max.X, Y1: rect.Max.Y}
}
