// Package panelizer provides a fluent API for extracting individual comic
// panels from comic-book archives, PDFs, and loose page images.
//
// Basic usage:
//
//	results, warnings, err := panelizer.Open("issue-01.cbz").Panels()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", panelizer.FormatWarnings(warnings))
//	}
//
// With options:
//
//	n, _, err := panelizer.Open("issue-01.cbz").
//	    Direction(segment.RightToLeft).
//	    MinGutterWidth(12).
//	    ExtractTo("issue-01-panels.cbz")
//
// Panels returns bounding boxes only; ExtractTo crops every panel and
// writes the crops to a .cbz archive or a directory. For advanced use
// cases the lower-level segment and source packages are also available.
package panelizer

import "github.com/panelizer/panelizer/source"

// Open opens a comic input (cbz, cbr, pdf, a directory of images, or a
// single image) and returns an Extractor for fluent configuration. The
// returned Extractor must be closed when done, either explicitly via
// Close() or implicitly by a terminal operation like Panels().
//
// Example:
//
//	results, warnings, err := panelizer.Open("issue-01.cbz").Panels()
func Open(path string) *Extractor {
	return &Extractor{
		path:    path,
		options: defaultOptions(),
	}
}

// FromSource creates an Extractor from an already-opened page source. The
// caller remains responsible for closing the source.
func FromSource(src source.Source) *Extractor {
	return &Extractor{
		src:        src,
		srcOpened:  true,
		ownsSource: false,
		options:    defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := panelizer.Must(panelizer.Open("issue-01.cbz").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
