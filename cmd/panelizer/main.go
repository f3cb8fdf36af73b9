package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/panelizer/panelizer"
	"github.com/panelizer/panelizer/segment"
	"github.com/panelizer/panelizer/source"
)

func main() {
	defaults := segment.DefaultConfig()

	var (
		input      string
		output     string
		configPath string
		pagesSpec  string
		direction  string
		workers    int
		dpi        int
		format     string
		quality    int
		boxes      bool

		blankThreshold  int
		gutterThreshold float64
		minGutterWidth  int
		minPanelSize    int
		maxDepth        int
		bandOverlap     float64
	)

	flag.StringVar(&input, "input", "", "input comic: .cbz, .cbr, .pdf, an image, or a directory of images")
	flag.StringVar(&output, "output", "", "output .cbz archive or directory (default: <input>_panels.cbz)")
	flag.StringVar(&configPath, "config", "", "YAML config file; explicit flags override file values")
	flag.StringVar(&pagesSpec, "pages", "", "pages to process, e.g. 1,3,5-8 (default: all)")
	flag.StringVar(&direction, "direction", "ltr", "reading direction: ltr or rtl (manga)")
	flag.IntVar(&workers, "workers", 0, "pages processed in parallel (0 = auto from CPU and memory)")
	flag.IntVar(&dpi, "dpi", source.DefaultDPI, "render resolution for PDF inputs")
	flag.StringVar(&format, "format", "jpg", "panel crop format: jpg|png|webp")
	flag.IntVar(&quality, "quality", 90, "JPEG/WebP quality for panel crops (1-100)")
	flag.BoolVar(&boxes, "boxes", false, "print panel bounding boxes as JSON instead of writing crops")

	flag.IntVar(&blankThreshold, "blank-threshold", int(defaults.BlankThreshold), "brightness above which a pixel counts as blank (0-255)")
	flag.Float64Var(&gutterThreshold, "gutter-threshold", defaults.GutterThreshold, "max ink fraction for a gutter row/column")
	flag.IntVar(&minGutterWidth, "min-gutter", defaults.MinGutterWidth, "minimum gutter width in pixels")
	flag.IntVar(&minPanelSize, "min-panel", defaults.MinPanelSize, "minimum panel extent in pixels")
	flag.IntVar(&maxDepth, "max-depth", defaults.MaxDepth, "maximum split recursion depth")
	flag.Float64Var(&bandOverlap, "band-overlap", defaults.BandOverlap, "vertical overlap fraction grouping panels into a row")

	flag.Parse()

	seen := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { seen[f.Name] = true })

	if configPath != "" {
		fc, err := loadConfigFile(configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		applyFile(fc, seen, map[string]any{
			"input": &input, "output": &output, "pages": &pagesSpec,
			"direction": &direction, "workers": &workers, "dpi": &dpi,
			"format": &format, "quality": &quality,
			"blank-threshold": &blankThreshold, "gutter-threshold": &gutterThreshold,
			"min-gutter": &minGutterWidth, "min-panel": &minPanelSize,
			"max-depth": &maxDepth, "band-overlap": &bandOverlap,
		})
	}

	if input == "" {
		log.Fatalf("usage: %s -input comic.cbz [-output panels.cbz] [-direction rtl] [-boxes]", filepath.Base(os.Args[0]))
	}

	dir := segment.LeftToRight
	switch strings.ToLower(direction) {
	case "ltr", "":
	case "rtl":
		dir = segment.RightToLeft
	default:
		log.Fatalf("unknown direction %q (use ltr or rtl)", direction)
	}

	ex := panelizer.Open(input).
		Direction(dir).
		BlankThreshold(uint8(blankThreshold)).
		GutterThreshold(gutterThreshold).
		MinGutterWidth(minGutterWidth).
		MinPanelSize(minPanelSize).
		MaxDepth(maxDepth).
		BandOverlap(bandOverlap).
		Workers(workers).
		DPI(dpi).
		Format(format).
		Quality(quality)

	if pagesSpec != "" {
		pages, err := parsePages(pagesSpec)
		if err != nil {
			log.Fatalf("pages: %v", err)
		}
		ex = ex.Pages(pages...)
	}

	if boxes {
		results, warnings, err := ex.Panels()
		if err != nil {
			log.Fatalf("%v", err)
		}
		reportWarnings(warnings)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			log.Fatalf("encode: %v", err)
		}
		return
	}

	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		output = base + "_panels.cbz"
	}

	n, warnings, err := ex.ExtractTo(output)
	if err != nil {
		log.Fatalf("%v", err)
	}
	reportWarnings(warnings)
	fmt.Printf("wrote %d panels to %s\n", n, output)
}

func reportWarnings(warnings []panelizer.Warning) {
	if len(warnings) > 0 {
		fmt.Fprintln(os.Stderr, panelizer.FormatWarnings(warnings))
	}
}

// applyFile copies file-config values into flag variables that were not set
// explicitly on the command line.
func applyFile(fc *fileConfig, seen map[string]bool, dst map[string]any) {
	vals := map[string]any{
		"input": fc.Input, "output": fc.Output, "pages": fc.Pages,
		"direction": fc.Direction, "workers": fc.Workers, "dpi": fc.DPI,
		"format": fc.Format, "quality": fc.Quality,
		"blank-threshold": fc.BlankThreshold, "gutter-threshold": fc.GutterThreshold,
		"min-gutter": fc.MinGutterWidth, "min-panel": fc.MinPanelSize,
		"max-depth": fc.MaxDepth, "band-overlap": fc.BandOverlap,
	}
	for name, v := range vals {
		if seen[name] || isZero(v) {
			continue
		}
		switch p := dst[name].(type) {
		case *string:
			*p = v.(string)
		case *int:
			*p = v.(int)
		case *float64:
			*p = v.(float64)
		}
	}
}

func isZero(v any) bool {
	switch x := v.(type) {
	case string:
		return x == ""
	case int:
		return x == 0
	case float64:
		return x == 0
	}
	return false
}

// parsePages parses a page selection like "1,3,5-8" into a 1-indexed list.
func parsePages(spec string) ([]int, error) {
	var pages []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			a, err := strconv.Atoi(strings.TrimSpace(lo))
			if err != nil {
				return nil, fmt.Errorf("bad page range %q", part)
			}
			b, err := strconv.Atoi(strings.TrimSpace(hi))
			if err != nil || b < a {
				return nil, fmt.Errorf("bad page range %q", part)
			}
			for p := a; p <= b; p++ {
				pages = append(pages, p)
			}
			continue
		}
		p, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("bad page %q", part)
		}
		pages = append(pages, p)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("empty page selection %q", spec)
	}
	return pages, nil
}
