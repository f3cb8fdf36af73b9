package segment

import (
	"reflect"
	"testing"

	"github.com/panelizer/panelizer/model"
)

// gridRegions returns the panel regions of the 3×2 grid page used by several
// tests: a 460×320 page with 10px margins, 136×142 panels and 16px gutters.
func gridRegions() []model.Region {
	xs := [][2]int{{10, 146}, {162, 298}, {314, 450}}
	ys := [][2]int{{10, 152}, {168, 310}}
	var out []model.Region
	for _, y := range ys {
		for _, x := range xs {
			out = append(out, model.NewRegion(x[0], y[0], x[1], y[1]))
		}
	}
	return out
}

func gridPage(t *testing.T) *Field {
	t.Helper()
	return panelPage(t, 460, 320, gridRegions()...)
}

func TestSplit_SinglePanelFullPage(t *testing.T) {
	f := inkPage(t, 200, 300)

	tree := Split(f, DefaultConfig())
	leaves := tree.Leaves()
	if len(leaves) != 1 {
		t.Fatalf("got %d leaves, want 1", len(leaves))
	}
	if leaves[0] != f.Bounds() {
		t.Errorf("leaf = %v, want full bounds %v", leaves[0], f.Bounds())
	}
}

func TestSplit_BlankPage(t *testing.T) {
	f := panelPage(t, 200, 300)

	tree := Split(f, DefaultConfig())
	leaves := tree.Leaves()
	if len(leaves) != 1 {
		t.Fatalf("blank page: got %d leaves, want 1", len(leaves))
	}
	if leaves[0] != f.Bounds() {
		t.Errorf("blank page leaf = %v, want full bounds %v", leaves[0], f.Bounds())
	}
}

func TestSplit_HorizontalGutter(t *testing.T) {
	// 1000×1400 page, fully inked except a blank band at rows 700-709.
	f := inkPage(t, 1000, 1400, model.NewRegion(0, 700, 1000, 710))

	cfg := DefaultConfig()
	cfg.GutterThreshold = 0.02
	cfg.MinGutterWidth = 10

	tree := Split(f, cfg)
	panels, notes := Order(tree.Leaves(), cfg)
	if len(notes) != 0 {
		t.Errorf("unexpected notes: %v", notes)
	}
	if len(panels) != 2 {
		t.Fatalf("got %d panels, want 2", len(panels))
	}
	want := []model.Region{
		model.NewRegion(0, 0, 1000, 700),
		model.NewRegion(0, 710, 1000, 1400),
	}
	for i, w := range want {
		if panels[i].Region != w {
			t.Errorf("panel %d = %v, want %v", i, panels[i].Region, w)
		}
	}
	if gap := panels[1].Region.Y0 - panels[0].Region.Y1; gap < cfg.MinGutterWidth {
		t.Errorf("vertical gap %d smaller than gutter width %d", gap, cfg.MinGutterWidth)
	}
}

func TestSplit_Grid(t *testing.T) {
	f := gridPage(t)
	cfg := DefaultConfig()

	tree := Split(f, cfg)
	leaves := tree.Leaves()
	if len(leaves) != 6 {
		t.Fatalf("got %d leaves, want 6", len(leaves))
	}

	panels, notes := Order(leaves, cfg)
	if len(notes) != 0 {
		t.Errorf("unexpected notes: %v", notes)
	}
	want := gridRegions()
	for i, w := range want {
		if panels[i].Region != w {
			t.Errorf("panel %d = %v, want %v", i, panels[i].Region, w)
		}
		if panels[i].Index != i {
			t.Errorf("panel %d has index %d", i, panels[i].Index)
		}
	}
}

func TestSplit_GridRightToLeft(t *testing.T) {
	f := gridPage(t)
	cfg := DefaultConfig()
	cfg.Direction = RightToLeft

	panels, _ := Order(Split(f, cfg).Leaves(), cfg)
	if len(panels) != 6 {
		t.Fatalf("got %d panels, want 6", len(panels))
	}

	grid := gridRegions()
	// Rows stay top to bottom, columns mirror.
	want := []model.Region{grid[2], grid[1], grid[0], grid[5], grid[4], grid[3]}
	for i, w := range want {
		if panels[i].Region != w {
			t.Errorf("panel %d = %v, want %v", i, panels[i].Region, w)
		}
	}
}

func TestSplit_NarrowGutterIgnored(t *testing.T) {
	// Two stacked panels separated by a 4px gutter; minimum is 6.
	f := panelPage(t, 200, 300,
		model.NewRegion(10, 10, 190, 148),
		model.NewRegion(10, 152, 190, 290),
	)

	tree := Split(f, DefaultConfig())
	leaves := tree.Leaves()
	if len(leaves) != 1 {
		t.Fatalf("got %d leaves, want 1 (gutter below minimum width)", len(leaves))
	}
	if want := model.NewRegion(10, 10, 190, 290); leaves[0] != want {
		t.Errorf("leaf = %v, want trimmed content bounds %v", leaves[0], want)
	}
}

func TestSplit_MinPanelSizeMonotonic(t *testing.T) {
	f := gridPage(t)
	cfg := DefaultConfig()

	prev := -1
	for _, size := range []int{8, 32, 100, 137, 200, 400} {
		cfg.MinPanelSize = size
		n := Split(f, cfg).LeafCount()
		if prev >= 0 && n > prev {
			t.Errorf("MinPanelSize %d produced %d leaves, more than %d at the previous size", size, n, prev)
		}
		prev = n
	}

	cfg.MinPanelSize = 200
	if n := Split(f, cfg).LeafCount(); n != 1 {
		t.Errorf("MinPanelSize 200: got %d leaves, want 1", n)
	}
}

func TestSplit_MaxDepth(t *testing.T) {
	// Alternating 20px ink stripes and 8px gutters.
	var stripes []model.Region
	for y := 0; y+20 <= 400; y += 28 {
		stripes = append(stripes, model.NewRegion(0, y, 100, y+20))
	}
	f := panelPage(t, 100, 400, stripes...)

	cfg := DefaultConfig()
	cfg.MinPanelSize = 10
	cfg.MaxDepth = 2

	if n := Split(f, cfg).LeafCount(); n > 4 {
		t.Errorf("depth 2 split produced %d leaves, want at most 4", n)
	}

	cfg.MaxDepth = 16
	if n := Split(f, cfg).LeafCount(); n != len(stripes) {
		t.Errorf("got %d leaves, want one per stripe (%d)", n, len(stripes))
	}
}

func TestSplit_Deterministic(t *testing.T) {
	f := gridPage(t)
	cfg := DefaultConfig()

	t1 := Split(f, cfg)
	t2 := Split(f, cfg)
	if !reflect.DeepEqual(t1, t2) {
		t.Error("repeated splits of the same field disagree")
	}

	p1, n1 := Order(t1.Leaves(), cfg)
	p2, n2 := Order(t2.Leaves(), cfg)
	if !reflect.DeepEqual(p1, p2) || !reflect.DeepEqual(n1, n2) {
		t.Error("repeated ordering of the same leaves disagrees")
	}
}

func TestSplit_WidestBandWins(t *testing.T) {
	// A 12px horizontal gutter and a 24px vertical gutter: the vertical one
	// must be chosen first, making the root split vertical.
	f := panelPage(t, 400, 300,
		model.NewRegion(0, 0, 188, 144),
		model.NewRegion(0, 156, 188, 300),
		model.NewRegion(212, 0, 400, 144),
		model.NewRegion(212, 156, 400, 300),
	)

	tree := Split(f, DefaultConfig())
	if tree.Root.IsLeaf() {
		t.Fatal("expected a split at the root")
	}
	if tree.Root.Axis != Vertical {
		t.Errorf("root split axis = %v, want vertical (wider band)", tree.Root.Axis)
	}
	if tree.Root.SplitAt != 200 {
		t.Errorf("root split coordinate = %d, want 200", tree.Root.SplitAt)
	}
	if n := tree.LeafCount(); n != 4 {
		t.Errorf("got %d leaves, want 4", n)
	}
}

func TestTreeLeavesOrderApproximatesSpatial(t *testing.T) {
	f := gridPage(t)
	leaves := Split(f, DefaultConfig()).Leaves()

	want := gridRegions()
	if !reflect.DeepEqual(leaves, want) {
		t.Errorf("in-order leaves = %v, want spatial order %v", leaves, want)
	}
}
