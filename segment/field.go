package segment

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/panelizer/panelizer/model"
)

// Field construction errors. Both indicate a malformed page: the page cannot
// be segmented, but the failure is local to it and should not abort a batch.
var (
	ErrEmptyImage = errors.New("segment: image has zero width or height")
	ErrBufferSize = errors.New("segment: luminance buffer length does not match dimensions")
)

// Field is an immutable, normalized view over a decoded page. It classifies
// every pixel as blank (background) or ink against a brightness threshold
// and keeps per-row and per-column partial ink counts so that the occupancy
// of any row or column segment is answered in constant time.
//
// A Field is created once per page, owned by a single segmentation run, and
// safe for concurrent reads.
type Field struct {
	width, height int
	threshold     uint8

	// rowInk[y*(width+1)+x] is the number of ink pixels in row y at
	// columns [0, x). colInk is the transposed equivalent.
	rowInk []int32
	colInk []int32
}

// NewFieldFromLuma builds a Field from a row-major luminance buffer of
// length w*h. This is the strict input contract: the decode collaborator
// performs color-to-brightness reduction and hands over raw samples.
func NewFieldFromLuma(w, h int, luma []byte, blankThreshold uint8) (*Field, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, w, h)
	}
	if len(luma) != w*h {
		return nil, fmt.Errorf("%w: have %d samples, want %d", ErrBufferSize, len(luma), w*h)
	}

	f := &Field{
		width:     w,
		height:    h,
		threshold: blankThreshold,
		rowInk:    make([]int32, h*(w+1)),
		colInk:    make([]int32, w*(h+1)),
	}

	for y := 0; y < h; y++ {
		row := luma[y*w : (y+1)*w]
		base := y * (w + 1)
		var run int32
		for x, v := range row {
			if v < blankThreshold {
				run++
			}
			f.rowInk[base+x+1] = run
		}
	}
	for x := 0; x < w; x++ {
		base := x * (h + 1)
		var run int32
		for y := 0; y < h; y++ {
			if luma[y*w+x] < blankThreshold {
				run++
			}
			f.colInk[base+y+1] = run
		}
	}

	return f, nil
}

// NewField builds a Field directly from a decoded image, reducing color to
// luminance first. Convenience wrapper over NewFieldFromLuma.
func NewField(img image.Image, blankThreshold uint8) (*Field, error) {
	if img == nil {
		return nil, ErrEmptyImage
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, w, h)
	}
	return NewFieldFromLuma(w, h, Luma(img), blankThreshold)
}

// Luma reduces an image to a row-major buffer of 8-bit luminance samples
// using the standard Rec. 601 weights (via color.GrayModel).
func Luma(img image.Image) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := make([]byte, w*h)

	switch src := img.(type) {
	case *image.Gray:
		for y := 0; y < h; y++ {
			copy(out[y*w:(y+1)*w], src.Pix[(y+b.Min.Y-src.Rect.Min.Y)*src.Stride+(b.Min.X-src.Rect.Min.X):])
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
				out[y*w+x] = g.Y
			}
		}
	}
	return out
}

// Width returns the page width in pixels.
func (f *Field) Width() int { return f.width }

// Height returns the page height in pixels.
func (f *Field) Height() int { return f.height }

// Threshold returns the blank-brightness cutoff the field was built with.
func (f *Field) Threshold() uint8 { return f.threshold }

// Bounds returns the full page extent as a Region.
func (f *Field) Bounds() model.Region {
	return model.Region{X0: 0, Y0: 0, X1: f.width, Y1: f.height}
}

// Blank reports whether the pixel at (x, y) is background. Out-of-bounds
// coordinates are blank.
func (f *Field) Blank(x, y int) bool {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return true
	}
	return f.rowInkRange(y, x, x+1) == 0
}

// rowInkRange returns the number of ink pixels in row y at columns [x0, x1).
func (f *Field) rowInkRange(y, x0, x1 int) int {
	base := y * (f.width + 1)
	return int(f.rowInk[base+x1] - f.rowInk[base+x0])
}

// colInkRange returns the number of ink pixels in column x at rows [y0, y1).
func (f *Field) colInkRange(x, y0, y1 int) int {
	base := x * (f.height + 1)
	return int(f.colInk[base+y1] - f.colInk[base+y0])
}
