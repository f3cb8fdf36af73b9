// Package imageutil handles the raster I/O around segmentation: decoding
// page images, cropping panel regions, and encoding the crops.
package imageutil

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	_ "image/gif"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	xwebp "golang.org/x/image/webp"

	"github.com/panelizer/panelizer/model"
)

// Decode reads an image from r. The standard decoders (plus bmp/tiff via
// x/image) are tried first, then a WebP fallback; some wild archives carry
// WebP pages with lying extensions.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if img, _, err := image.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}
	if img, err := xwebp.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}
	return nil, fmt.Errorf("imageutil: unknown or unsupported image format")
}

// Crop returns the sub-image of img covered by the region, copied out of the
// source so the page can be released.
func Crop(img image.Image, r model.Region) (image.Image, error) {
	rect := r.Rect().Add(img.Bounds().Min).Intersect(img.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("imageutil: crop %v lies outside image bounds %v", r, img.Bounds())
	}
	return imaging.Crop(img, rect), nil
}

// OutputFormat is an encodable crop format.
type OutputFormat string

const (
	JPEG OutputFormat = "jpeg"
	PNG  OutputFormat = "png"
	WebP OutputFormat = "webp"
)

// Ext returns the file extension for the format.
func (f OutputFormat) Ext() string {
	switch f {
	case PNG:
		return ".png"
	case WebP:
		return ".webp"
	default:
		return ".jpg"
	}
}

// ParseFormat maps a user-supplied format name to an OutputFormat.
func ParseFormat(name string) (OutputFormat, error) {
	switch strings.ToLower(name) {
	case "jpg", "jpeg", "":
		return JPEG, nil
	case "png":
		return PNG, nil
	case "webp":
		return WebP, nil
	}
	return "", fmt.Errorf("imageutil: unknown output format %q", name)
}

// FormatForName derives the output format from a file name's extension,
// defaulting to JPEG.
func FormatForName(name string) OutputFormat {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return PNG
	case ".webp":
		return WebP
	default:
		return JPEG
	}
}

// Encode writes img to w in the given format. quality applies to the lossy
// formats and follows the JPEG 1-100 scale.
func Encode(w io.Writer, img image.Image, f OutputFormat, quality int) error {
	if quality <= 0 || quality > 100 {
		quality = 90
	}
	switch f {
	case PNG:
		return png.Encode(w, img)
	case WebP:
		return webp.Encode(w, img, &webp.Options{Quality: float32(quality)})
	default:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	}
}
