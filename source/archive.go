package source

import (
	"image"

	"github.com/panelizer/panelizer/archive"
)

// Archive reads pages out of a .cbz or .cbr comic-book archive.
type Archive struct {
	r *archive.Reader
}

// OpenArchive opens an archive-backed page source.
func OpenArchive(path string) (*Archive, error) {
	r, err := archive.OpenReader(path)
	if err != nil {
		return nil, err
	}
	return &Archive{r: r}, nil
}

// PageCount returns the number of image members.
func (a *Archive) PageCount() int {
	return a.r.PageCount()
}

// Name returns the archive member name of page i.
func (a *Archive) Name(i int) string {
	return a.r.Member(i)
}

// Page decodes page i from the archive.
func (a *Archive) Page(i int) (image.Image, error) {
	return a.r.Page(i)
}

// Close closes the underlying archive.
func (a *Archive) Close() error {
	return a.r.Close()
}
