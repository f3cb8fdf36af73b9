// Package source abstracts where comic pages come from: comic-book
// archives, PDF documents, directories of loose images, or a single image
// file. The extractor consumes pages through the [Source] interface and
// never touches the container format directly.
package source

import (
	"fmt"
	"image"

	"github.com/panelizer/panelizer/format"
)

// Source yields the pages of one comic in order.
//
// Implementations must support concurrent Page calls on distinct indices;
// the extractor fans pages out to a worker pool.
type Source interface {
	// PageCount returns the number of pages.
	PageCount() int

	// Name returns the page's member or file name, or an empty string when
	// the source has no meaningful names (e.g. PDF pages).
	Name(i int) string

	// Page decodes page i.
	Page(i int) (image.Image, error)

	// Close releases any underlying handles.
	Close() error
}

// Open opens a page source appropriate for the path's format.
func Open(path string) (Source, error) {
	switch f := format.Detect(path); f {
	case format.CBZ, format.CBR:
		return OpenArchive(path)
	case format.PDF:
		return OpenPDF(path, DefaultDPI)
	case format.Dir, format.Image:
		return OpenDir(path)
	default:
		return nil, fmt.Errorf("source: unsupported input %q", path)
	}
}
