package segment

import (
	"testing"

	"github.com/panelizer/panelizer/model"
)

func TestOrder_Empty(t *testing.T) {
	panels, notes := Order(nil, DefaultConfig())
	if panels != nil || notes != nil {
		t.Errorf("got %v / %v, want nil / nil", panels, notes)
	}
}

func TestOrder_SingleLeaf(t *testing.T) {
	r := model.NewRegion(0, 0, 100, 150)
	panels, notes := Order([]model.Region{r}, DefaultConfig())
	if len(panels) != 1 || panels[0].Region != r || panels[0].Index != 0 {
		t.Errorf("got %v, want single panel %v at index 0", panels, r)
	}
	if len(notes) != 0 {
		t.Errorf("unexpected notes: %v", notes)
	}
}

func TestOrder_StaggeredColumns(t *testing.T) {
	// A tall left panel next to two stacked right panels. The left panel
	// spans both rows, so all three share one band; within it the order is
	// left to right, then top to bottom.
	left := model.NewRegion(0, 0, 200, 400)
	topRight := model.NewRegion(220, 0, 400, 190)
	bottomRight := model.NewRegion(220, 210, 400, 400)

	panels, notes := Order([]model.Region{left, topRight, bottomRight}, DefaultConfig())
	if len(panels) != 3 {
		t.Fatalf("got %d panels, want 3", len(panels))
	}
	want := []model.Region{left, topRight, bottomRight}
	for i, w := range want {
		if panels[i].Region != w {
			t.Errorf("panel %d = %v, want %v", i, panels[i].Region, w)
		}
	}
	if len(notes) != 0 {
		t.Errorf("unexpected notes: %v", notes)
	}
}

func TestOrder_RightToLeft(t *testing.T) {
	a := model.NewRegion(0, 0, 100, 100)
	b := model.NewRegion(120, 0, 220, 100)
	c := model.NewRegion(240, 0, 340, 100)

	cfg := DefaultConfig()
	cfg.Direction = RightToLeft
	panels, _ := Order([]model.Region{a, b, c}, cfg)

	want := []model.Region{c, b, a}
	for i, w := range want {
		if panels[i].Region != w {
			t.Errorf("panel %d = %v, want %v", i, panels[i].Region, w)
		}
	}
}

func TestOrder_AmbiguousBand(t *testing.T) {
	// leaf3 sits entirely inside the strip shared by the two bands, so it
	// overlaps both completely; the tie resolves to the nearer band center
	// (band B) and is flagged low-confidence.
	leaf1 := model.NewRegion(0, 0, 300, 200)    // band A
	leaf2 := model.NewRegion(320, 160, 600, 360) // band B
	leaf3 := model.NewRegion(0, 162, 120, 200)

	panels, notes := Order([]model.Region{leaf1, leaf2, leaf3}, DefaultConfig())
	if len(panels) != 3 {
		t.Fatalf("got %d panels, want 3", len(panels))
	}

	// Band A first, then band B left to right: leaf3 before leaf2.
	want := []model.Region{leaf1, leaf3, leaf2}
	for i, w := range want {
		if panels[i].Region != w {
			t.Errorf("panel %d = %v, want %v", i, panels[i].Region, w)
		}
	}

	if !panels[1].LowConfidence {
		t.Error("ambiguous panel not flagged low-confidence")
	}
	if panels[0].LowConfidence || panels[2].LowConfidence {
		t.Error("unambiguous panels flagged low-confidence")
	}
	if len(notes) != 1 {
		t.Fatalf("got %d notes, want 1", len(notes))
	}
	if notes[0].Panel != 1 {
		t.Errorf("note references panel %d, want 1", notes[0].Panel)
	}
}

func TestOrder_BandOverlapThreshold(t *testing.T) {
	// Two panels whose spans overlap by 60% of the shorter span: one band
	// at the default 0.5 threshold, two bands at 0.7.
	a := model.NewRegion(0, 0, 100, 100)
	b := model.NewRegion(120, 40, 220, 140)

	cfg := DefaultConfig()
	panels, _ := Order([]model.Region{a, b}, cfg)
	if panels[0].Region != a || panels[1].Region != b {
		t.Errorf("default threshold: got %v, want a then b in one band", panels)
	}

	cfg.BandOverlap = 0.7
	panels, _ = Order([]model.Region{b, a}, cfg)
	if panels[0].Region != a || panels[1].Region != b {
		t.Errorf("raised threshold: got %v, want a's band above b's", panels)
	}
}
