package format

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{CBZ, "CBZ"},
		{CBR, "CBR"},
		{PDF, "PDF"},
		{Dir, "directory"},
		{Image, "image"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"book.cbz", CBZ},
		{"book.CBZ", CBZ},
		{"book.zip", CBZ},
		{"book.cbr", CBR},
		{"book.RAR", CBR},
		{"book.pdf", PDF},
		{"book.Pdf", PDF},
		{"page.jpg", Image},
		{"page.JPEG", Image},
		{"page.png", Image},
		{"page.webp", Image},
		{"page.tiff", Image},
		{"/path/to/book.cbz", CBZ},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetect_Directory(t *testing.T) {
	dir := t.TempDir()
	if got := Detect(dir); got != Dir {
		t.Errorf("Detect(%q) = %v, want Dir", dir, got)
	}
}

func TestDetect_SniffsContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mystery")
	if err := os.WriteFile(path, []byte("PK\x03\x04rest of archive"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := Detect(path); got != CBZ {
		t.Errorf("Detect(extensionless zip) = %v, want CBZ", got)
	}
}

func TestDetectReader(t *testing.T) {
	tests := []struct {
		name string
		head []byte
		want Format
	}{
		{"zip", []byte("PK\x03\x04...."), CBZ},
		{"rar", []byte("Rar!\x1a\x07"), CBR},
		{"pdf", []byte("%PDF-1.7"), PDF},
		{"garbage", []byte("ABCD"), Unknown},
		{"short", []byte("PK"), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectReader(bytes.NewReader(tt.head)); got != tt.want {
				t.Errorf("DetectReader = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsImageName(t *testing.T) {
	for _, name := range []string{"a.jpg", "b.PNG", "dir/c.webp", "d.tif"} {
		if !IsImageName(name) {
			t.Errorf("IsImageName(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"a.txt", "b", "c.cbz"} {
		if IsImageName(name) {
			t.Errorf("IsImageName(%q) = true, want false", name)
		}
	}
}
