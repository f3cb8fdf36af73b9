package panelizer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/panelizer/panelizer/archive"
	"github.com/panelizer/panelizer/imageutil"
	"github.com/panelizer/panelizer/internal/system"
	"github.com/panelizer/panelizer/model"
	"github.com/panelizer/panelizer/segment"
	"github.com/panelizer/panelizer/source"
)

// Extractor provides a fluent interface for extracting panels from a comic
// input. Each configuration method returns a new Extractor instance, making
// it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Input
	path string

	// Page source
	src        source.Source
	ownsSource bool // true if we opened the source and should close it
	srcOpened  bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of
// options. This ensures immutability - each chain method returns a new
// instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		path:       e.path,
		src:        e.src,
		ownsSource: e.ownsSource,
		srcOpened:  e.srcOpened,
		options:    e.options.clone(),
		err:        e.err,
	}
}

// ensureSource opens the page source if not already open.
func (e *Extractor) ensureSource() error {
	if e.srcOpened {
		return nil
	}
	if e.path == "" {
		return fmt.Errorf("no input specified")
	}
	src, err := source.Open(e.path)
	if err != nil {
		return err
	}
	if pdf, ok := src.(*source.PDF); ok && e.options.dpi != source.DefaultDPI {
		// Reopen at the configured resolution.
		pdf.Close()
		src, err = source.OpenPDF(e.path, e.options.dpi)
		if err != nil {
			return err
		}
	}
	e.src = src
	e.ownsSource = true
	e.srcOpened = true
	return nil
}

// Pages restricts extraction to specific pages (1-indexed).
func (e *Extractor) Pages(pages ...int) *Extractor {
	n := e.clone()
	n.options.pages = append([]int(nil), pages...)
	return n
}

// Direction sets the reading direction used to order panels.
func (e *Extractor) Direction(d segment.Direction) *Extractor {
	n := e.clone()
	n.options.cfg.Direction = d
	return n
}

// BlankThreshold sets the brightness cutoff for a blank pixel.
func (e *Extractor) BlankThreshold(v uint8) *Extractor {
	n := e.clone()
	n.options.cfg.BlankThreshold = v
	return n
}

// GutterThreshold sets the maximum occupancy fraction for a gutter line.
func (e *Extractor) GutterThreshold(v float64) *Extractor {
	n := e.clone()
	if v < 0 || v >= 1 {
		n.err = fmt.Errorf("gutter threshold %v out of range [0,1)", v)
		return n
	}
	n.options.cfg.GutterThreshold = v
	return n
}

// MinGutterWidth sets the minimum gutter band width in pixels.
func (e *Extractor) MinGutterWidth(px int) *Extractor {
	n := e.clone()
	n.options.cfg.MinGutterWidth = px
	return n
}

// MinPanelSize sets the minimum panel extent in pixels, on both axes.
func (e *Extractor) MinPanelSize(px int) *Extractor {
	n := e.clone()
	n.options.cfg.MinPanelSize = px
	return n
}

// MaxDepth bounds the split recursion depth.
func (e *Extractor) MaxDepth(d int) *Extractor {
	n := e.clone()
	n.options.cfg.MaxDepth = d
	return n
}

// BandOverlap sets the vertical-overlap fraction for reading-band grouping.
func (e *Extractor) BandOverlap(f float64) *Extractor {
	n := e.clone()
	n.options.cfg.BandOverlap = f
	return n
}

// Config replaces the whole segmentation configuration at once.
func (e *Extractor) Config(cfg segment.Config) *Extractor {
	n := e.clone()
	n.options.cfg = cfg
	return n
}

// Workers sets the number of pages processed in parallel. Zero restores
// auto-sizing from CPU count and available memory.
func (e *Extractor) Workers(n int) *Extractor {
	c := e.clone()
	c.options.workers = n
	return c
}

// DPI sets the render resolution for PDF inputs.
func (e *Extractor) DPI(dpi int) *Extractor {
	n := e.clone()
	n.options.dpi = dpi
	return n
}

// Format sets the crop output encoding: "jpg", "png", or "webp".
func (e *Extractor) Format(name string) *Extractor {
	n := e.clone()
	f, err := imageutil.ParseFormat(name)
	if err != nil {
		n.err = err
		return n
	}
	n.options.outFormat = f
	return n
}

// Quality sets the encoding quality (1-100) for lossy crop formats.
func (e *Extractor) Quality(q int) *Extractor {
	n := e.clone()
	n.options.quality = q
	return n
}

// PageCount returns the number of pages in the input.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := e.ensureSource(); err != nil {
		return 0, err
	}
	return e.src.PageCount(), nil
}

// Close releases the underlying source if this Extractor owns it.
func (e *Extractor) Close() error {
	if e.src != nil && e.ownsSource {
		err := e.src.Close()
		e.src = nil
		e.srcOpened = false
		return err
	}
	return nil
}

// Panels segments the selected pages and returns their panel bounding
// boxes in reading order, along with any warnings. Pages that cannot be
// decoded are skipped with a warning; the error return is reserved for
// failures of the input as a whole.
func (e *Extractor) Panels() ([]model.PageResult, []Warning, error) {
	outcomes, err := e.run(false)
	if err != nil {
		return nil, nil, err
	}
	defer e.Close()

	var results []model.PageResult
	var warnings []Warning
	for _, o := range outcomes {
		warnings = append(warnings, o.warnings...)
		if o.skipped {
			continue
		}
		results = append(results, o.result)
	}
	return results, warnings, nil
}

// ExtractTo segments the selected pages, crops every panel, and writes the
// crops to outPath: a .cbz archive when the path carries a .cbz or .zip
// extension, otherwise a directory of image files. It returns the number of
// panels written.
func (e *Extractor) ExtractTo(outPath string) (int, []Warning, error) {
	outcomes, err := e.run(true)
	if err != nil {
		return 0, nil, err
	}
	defer e.Close()

	var warnings []Warning
	for _, o := range outcomes {
		warnings = append(warnings, o.warnings...)
	}

	written := 0
	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".cbz", ".zip":
		w, err := archive.Create(outPath)
		if err != nil {
			return 0, warnings, err
		}
		for _, o := range outcomes {
			for _, c := range o.crops {
				if err := w.AddRaw(c.name, c.data); err != nil {
					w.Close()
					return written, warnings, err
				}
				written++
			}
		}
		if err := w.Close(); err != nil {
			return written, warnings, err
		}
	default:
		if err := os.MkdirAll(outPath, 0o755); err != nil {
			return 0, warnings, err
		}
		for _, o := range outcomes {
			for _, c := range o.crops {
				if err := os.WriteFile(filepath.Join(outPath, c.name), c.data, 0o644); err != nil {
					return written, warnings, err
				}
				written++
			}
		}
	}
	return written, warnings, nil
}

// panelCrop is one encoded panel image ready to be written out.
type panelCrop struct {
	name string
	data []byte
}

// pageOutcome is the per-page result of a run, kept in page order.
type pageOutcome struct {
	result   model.PageResult
	crops    []panelCrop
	warnings []Warning
	skipped  bool
}

// run processes the selected pages in parallel. Segmentation is pure and
// per-page; the only shared state is the outcome slice, written at disjoint
// indices.
func (e *Extractor) run(collectCrops bool) ([]pageOutcome, error) {
	if e.err != nil {
		return nil, e.err
	}
	if err := e.ensureSource(); err != nil {
		return nil, err
	}
	pageIdxs, err := e.selectedPages()
	if err != nil {
		return nil, err
	}

	workers := e.options.workers
	if workers <= 0 {
		workers = system.DefaultWorkers()
	}

	outcomes := make([]pageOutcome, len(pageIdxs))
	var g errgroup.Group
	g.SetLimit(workers)
	for slot, pageIdx := range pageIdxs {
		slot, pageIdx := slot, pageIdx
		g.Go(func() error {
			outcomes[slot] = e.processPage(pageIdx, collectCrops)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// selectedPages maps the 1-indexed page selection to source indices,
// defaulting to all pages.
func (e *Extractor) selectedPages() ([]int, error) {
	count := e.src.PageCount()
	if e.options.pages == nil {
		idxs := make([]int, count)
		for i := range idxs {
			idxs[i] = i
		}
		return idxs, nil
	}
	idxs := make([]int, 0, len(e.options.pages))
	for _, p := range e.options.pages {
		if p < 1 || p > count {
			return nil, fmt.Errorf("page %d out of range [1,%d]", p, count)
		}
		idxs = append(idxs, p-1)
	}
	return idxs, nil
}

// processPage runs the whole per-page pipeline: decode, segment, order,
// and optionally crop. Failures are local to the page.
func (e *Extractor) processPage(pageIdx int, collectCrops bool) pageOutcome {
	cfg := e.options.cfg
	pageNo := pageIdx + 1

	img, err := e.src.Page(pageIdx)
	if err != nil {
		return pageOutcome{
			skipped:  true,
			warnings: []Warning{{Page: pageNo, Panel: -1, Message: fmt.Sprintf("skipped: %v", err)}},
		}
	}

	field, err := segment.NewField(img, cfg.BlankThreshold)
	if err != nil {
		return pageOutcome{
			skipped:  true,
			warnings: []Warning{{Page: pageNo, Panel: -1, Message: fmt.Sprintf("skipped: %v", err)}},
		}
	}

	tree := segment.Split(field, cfg)
	panels, notes := segment.Order(tree.Leaves(), cfg)

	o := pageOutcome{
		result: model.PageResult{
			PageIndex: pageIdx,
			Name:      e.src.Name(pageIdx),
			Bounds:    field.Bounds(),
			Panels:    panels,
		},
	}
	for _, note := range notes {
		o.warnings = append(o.warnings, Warning{Page: pageNo, Panel: note.Panel, Message: note.Message})
	}

	if !collectCrops {
		return o
	}
	for _, p := range panels {
		cropped, err := imageutil.Crop(img, p.Region)
		if err != nil {
			o.warnings = append(o.warnings, Warning{Page: pageNo, Panel: p.Index, Message: err.Error()})
			continue
		}
		var buf bytes.Buffer
		if err := imageutil.Encode(&buf, cropped, e.options.outFormat, e.options.quality); err != nil {
			o.warnings = append(o.warnings, Warning{Page: pageNo, Panel: p.Index, Message: err.Error()})
			continue
		}
		name := archive.PanelName(e.src.Name(pageIdx), pageIdx, p.Index, e.options.outFormat.Ext())
		o.crops = append(o.crops, panelCrop{name: name, data: buf.Bytes()})
	}
	return o
}
