package source

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/panelizer/panelizer/format"
	"github.com/panelizer/panelizer/imageutil"
)

// Dir reads pages from a directory of image files (non-recursive), or from
// a single image file.
type Dir struct {
	paths []string
}

// OpenDir opens a directory or single-image page source. Directory entries
// are ordered with numeric-aware collation, matching archive member order.
func OpenDir(path string) (*Dir, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}

	if !fi.IsDir() {
		return &Dir{paths: []string{path}}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !format.IsImageName(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(path, e.Name()))
	}
	collate.New(language.Und, collate.Numeric).SortStrings(paths)

	if len(paths) == 0 {
		return nil, fmt.Errorf("source: no images in %q", path)
	}
	return &Dir{paths: paths}, nil
}

// PageCount returns the number of image files.
func (d *Dir) PageCount() int {
	return len(d.paths)
}

// Name returns the base file name of page i.
func (d *Dir) Name(i int) string {
	return filepath.Base(d.paths[i])
}

// Page decodes page i from disk.
func (d *Dir) Page(i int) (image.Image, error) {
	f, err := os.Open(d.paths[i])
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	defer f.Close()
	return imageutil.Decode(f)
}

// Close is a no-op; directory sources hold no handles between pages.
func (d *Dir) Close() error {
	return nil
}
