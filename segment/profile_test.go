package segment

import (
	"testing"

	"github.com/panelizer/panelizer/model"
)

func TestProfileRegion(t *testing.T) {
	// 10 wide, 6 high; ink fills columns 0-4 of every row.
	f := panelPage(t, 10, 6, model.NewRegion(0, 0, 5, 6))

	p := profileRegion(f, f.Bounds())
	if len(p.Rows) != 6 || len(p.Cols) != 10 {
		t.Fatalf("profile sizes %d/%d, want 6/10", len(p.Rows), len(p.Cols))
	}
	for y, v := range p.Rows {
		if v != 0.5 {
			t.Errorf("row %d occupancy = %v, want 0.5", y, v)
		}
	}
	for x, v := range p.Cols {
		want := 0.0
		if x < 5 {
			want = 1.0
		}
		if v != want {
			t.Errorf("col %d occupancy = %v, want %v", x, v, want)
		}
	}
}

func TestProfileRegion_SubRegion(t *testing.T) {
	f := panelPage(t, 10, 10, model.NewRegion(0, 0, 10, 5))

	p := profileRegion(f, model.NewRegion(2, 3, 8, 9))
	// Rows 3 and 4 are ink, rows 5-8 blank, within any column range.
	for i, want := range []float64{1, 1, 0, 0, 0, 0} {
		if p.Rows[i] != want {
			t.Errorf("row %d occupancy = %v, want %v", 3+i, p.Rows[i], want)
		}
	}
	// Each column sees 2 ink rows out of 6.
	for x, v := range p.Cols {
		if v != 2.0/6.0 {
			t.Errorf("col %d occupancy = %v, want %v", 2+x, v, 2.0/6.0)
		}
	}
}

func TestGutterBands(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GutterThreshold = 0.02
	cfg.MinGutterWidth = 3

	tests := []struct {
		name string
		occ  []float64
		want []band
	}{
		{
			name: "no gutters",
			occ:  []float64{0.5, 0.5, 0.5, 0.5},
			want: nil,
		},
		{
			name: "interior band",
			occ:  []float64{0.5, 0, 0, 0.01, 0.5, 0.5},
			want: []band{{11, 14}},
		},
		{
			name: "band at end",
			occ:  []float64{0.5, 0.5, 0, 0, 0},
			want: []band{{12, 15}},
		},
		{
			name: "too narrow",
			occ:  []float64{0.5, 0, 0, 0.5, 0.5},
			want: nil,
		},
		{
			name: "thin stroke splits a near-blank run",
			occ:  []float64{0.5, 0, 0, 0.5, 0, 0, 0.5},
			want: nil,
		},
		{
			name: "two bands",
			occ:  []float64{0, 0, 0, 0.5, 0.3, 0, 0.02, 0, 0.4},
			want: []band{{10, 13}, {15, 18}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gutterBands(tt.occ, 10, cfg)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d bands (%v), want %d (%v)", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("band %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
