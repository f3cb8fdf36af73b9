package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"image"
	"io"
	"path"
	"strings"

	"github.com/nwaples/rardecode/v2"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/panelizer/panelizer/format"
	"github.com/panelizer/panelizer/imageutil"
)

// Reader-related errors.
var (
	ErrInvalidArchive = errors.New("archive: invalid or corrupted archive")
	ErrNoPages        = errors.New("archive: no image members found")
	ErrUnsupported    = errors.New("archive: unsupported archive format")
)

// Reader provides access to the page images of a comic-book archive.
type Reader struct {
	path    string
	kind    format.Format
	zr      *zip.ReadCloser   // cbz only
	zipFile map[string]*zip.File
	members []string // image member names in reading order
}

// OpenReader opens a .cbz or .cbr archive from a path.
func OpenReader(filePath string) (*Reader, error) {
	kind := format.Detect(filePath)
	switch kind {
	case format.CBZ:
		return openZip(filePath)
	case format.CBR:
		return openRar(filePath)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, kind)
	}
}

func openZip(filePath string) (*Reader, error) {
	zr, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArchive, err)
	}

	r := &Reader{path: filePath, kind: format.CBZ, zr: zr, zipFile: make(map[string]*zip.File)}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !isPageMember(f.Name) {
			continue
		}
		r.zipFile[f.Name] = f
		r.members = append(r.members, f.Name)
	}
	sortMembers(r.members)

	if len(r.members) == 0 {
		zr.Close()
		return nil, ErrNoPages
	}
	return r, nil
}

func openRar(filePath string) (*Reader, error) {
	rr, err := rardecode.OpenReader(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArchive, err)
	}
	defer rr.Close()

	r := &Reader{path: filePath, kind: format.CBR}
	for {
		hdr, err := rr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArchive, err)
		}
		if hdr.IsDir || !isPageMember(hdr.Name) {
			continue
		}
		r.members = append(r.members, hdr.Name)
	}
	sortMembers(r.members)

	if len(r.members) == 0 {
		return nil, ErrNoPages
	}
	return r, nil
}

// isPageMember filters archive members down to decodable page images,
// skipping resource forks and hidden entries some packers produce.
func isPageMember(name string) bool {
	base := path.Base(name)
	if strings.HasPrefix(base, ".") || strings.HasPrefix(name, "__MACOSX/") {
		return false
	}
	return format.IsImageName(name)
}

// sortMembers orders member names with numeric-aware collation so that
// unpadded page numbers read in the intended order.
func sortMembers(names []string) {
	collate.New(language.Und, collate.Numeric).SortStrings(names)
}

// PageCount returns the number of page images in the archive.
func (r *Reader) PageCount() int {
	return len(r.members)
}

// Member returns the name of page i.
func (r *Reader) Member(i int) string {
	return r.members[i]
}

// Page decodes page i. Safe for concurrent use: zip members open
// independent readers, and rar access reopens the archive per call.
func (r *Reader) Page(i int) (image.Image, error) {
	if i < 0 || i >= len(r.members) {
		return nil, fmt.Errorf("archive: page %d out of range [0,%d)", i, len(r.members))
	}
	name := r.members[i]

	var (
		img image.Image
		err error
	)
	if r.kind == format.CBZ {
		img, err = r.zipPage(name)
	} else {
		img, err = r.rarPage(name)
	}
	if err != nil {
		return nil, fmt.Errorf("archive: decode %q: %w", name, err)
	}
	return img, nil
}

func (r *Reader) zipPage(name string) (image.Image, error) {
	f, ok := r.zipFile[name]
	if !ok {
		return nil, ErrInvalidArchive
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return imageutil.Decode(rc)
}

// rarPage scans the archive for the named member. rar has no random member
// access, so each page read walks the stream from the start; comic archives
// are small enough that this stays cheap.
func (r *Reader) rarPage(name string) (image.Image, error) {
	rr, err := rardecode.OpenReader(r.path)
	if err != nil {
		return nil, err
	}
	defer rr.Close()

	for {
		hdr, err := rr.Next()
		if err == io.EOF {
			return nil, fmt.Errorf("%w: member %q vanished", ErrInvalidArchive, name)
		}
		if err != nil {
			return nil, err
		}
		if hdr.Name == name {
			return imageutil.Decode(rr)
		}
	}
}

// Close releases the underlying archive handle.
func (r *Reader) Close() error {
	if r.zr != nil {
		return r.zr.Close()
	}
	return nil
}
