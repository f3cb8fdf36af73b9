// Package format provides input format detection for the panelizer library.
package format

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format represents a supported input kind.
type Format int

const (
	// Unknown indicates an unrecognized input.
	Unknown Format = iota
	// CBZ indicates a zip comic-book archive (.cbz or .zip).
	CBZ
	// CBR indicates a rar comic-book archive (.cbr or .rar).
	CBR
	// PDF indicates a PDF document.
	PDF
	// Dir indicates a directory of page images.
	Dir
	// Image indicates a single loose page image.
	Image
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case CBZ:
		return "CBZ"
	case CBR:
		return "CBR"
	case PDF:
		return "PDF"
	case Dir:
		return "directory"
	case Image:
		return "image"
	default:
		return "Unknown"
	}
}

// imageExtensions are the raster formats the page sources can decode.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
}

// IsImageName reports whether the file name has a decodable image extension.
func IsImageName(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// Detect determines the input format of a path. Directories are detected by
// stat; files by extension, with content sniffing as a fallback for unknown
// or misleading extensions.
func Detect(path string) Format {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return Dir
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".cbz", ".zip":
		return CBZ
	case ".cbr", ".rar":
		return CBR
	case ".pdf":
		return PDF
	}
	if IsImageName(path) {
		return Image
	}

	f, err := os.Open(path)
	if err != nil {
		return Unknown
	}
	defer f.Close()
	return DetectReader(f)
}

// Magic numbers for container sniffing.
var (
	zipMagic = []byte("PK\x03\x04")
	rarMagic = []byte("Rar!")
	pdfMagic = []byte("%PDF")
)

// DetectReader sniffs the format from the leading bytes of a stream.
func DetectReader(r io.Reader) Format {
	head := make([]byte, 4)
	if _, err := io.ReadFull(r, head); err != nil {
		return Unknown
	}
	switch {
	case bytes.Equal(head, zipMagic):
		return CBZ
	case bytes.Equal(head, rarMagic):
		return CBR
	case bytes.Equal(head, pdfMagic):
		return PDF
	}
	return Unknown
}
