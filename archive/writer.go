package archive

import (
	"archive/zip"
	"fmt"
	"image"
	"os"
	"path"
	"strings"

	"github.com/panelizer/panelizer/imageutil"
)

// Writer produces a .cbz archive of panel crops. Not safe for concurrent
// use; callers serialize Add* calls, typically by writing results in page
// order after parallel segmentation.
type Writer struct {
	f  *os.File
	zw *zip.Writer
}

// Create creates a new .cbz archive at the given path, truncating any
// existing file.
func Create(filePath string) (*Writer, error) {
	f, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("archive: create %q: %w", filePath, err)
	}
	return &Writer{f: f, zw: zip.NewWriter(f)}, nil
}

// AddImage encodes an image into the archive under the given member name.
// The encoding format is derived from the member name's extension.
func (w *Writer) AddImage(name string, img image.Image, quality int) error {
	member, err := w.zw.Create(name)
	if err != nil {
		return fmt.Errorf("archive: add %q: %w", name, err)
	}
	if err := imageutil.Encode(member, img, imageutil.FormatForName(name), quality); err != nil {
		return fmt.Errorf("archive: encode %q: %w", name, err)
	}
	return nil
}

// AddRaw stores already-encoded image bytes under the given member name.
func (w *Writer) AddRaw(name string, data []byte) error {
	member, err := w.zw.Create(name)
	if err != nil {
		return fmt.Errorf("archive: add %q: %w", name, err)
	}
	if _, err := member.Write(data); err != nil {
		return fmt.Errorf("archive: write %q: %w", name, err)
	}
	return nil
}

// Close flushes the archive directory and closes the file.
func (w *Writer) Close() error {
	if err := w.zw.Close(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}

// PanelName builds the output member name for one panel crop: the page's
// base name with a reading-order suffix, e.g. page012.jpg -> page012_panel-03.png.
// Pages without a usable name fall back to their page index.
func PanelName(pageName string, pageIndex, panelIndex int, ext string) string {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	base := path.Base(pageName)
	if base == "" || base == "." || base == "/" {
		return fmt.Sprintf("page-%04d_panel-%02d%s", pageIndex, panelIndex, ext)
	}
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return fmt.Sprintf("%s_panel-%02d%s", base, panelIndex, ext)
}
