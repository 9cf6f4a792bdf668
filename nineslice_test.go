package sprig

import (
	"errors"
	"testing"
)

var panelEntry = AtlasEntry{ID: "panel", UV: Rect{0.5, 0, 1, 0.5}, PixelSize: Vec2{20, 10}}

var panelInsets = NineSliceInsets{Left: 4, Top: 2, Right: 6, Bottom: 3}

func TestBuildNineSlice_Counts(t *testing.T) {
	var m Mesh
	if err := BuildNineSlice(&m, DefaultPlacement(Vec2{100, 50}), panelEntry, panelInsets, 1); err != nil {
		t.Fatal(err)
	}
	if len(m.Positions) != 16 || len(m.UVs) != 16 || len(m.Colors) != 16 {
		t.Errorf("vertices = %d, want 16", len(m.Positions))
	}
	if len(m.Indices) != 54 {
		t.Errorf("indices = %d, want 54", len(m.Indices))
	}
	assertCCW(t, &m)
}

func TestBuildNineSlice_GridLines(t *testing.T) {
	var m Mesh
	p := DefaultPlacement(Vec2{100, 50})
	p.Anchor = AnchorBottomLeft
	if err := BuildNineSlice(&m, p, panelEntry, panelInsets, 1); err != nil {
		t.Fatal(err)
	}
	wantX := [4]float64{0, 4, 94, 100}
	wantY := [4]float64{50, 48, 3, 0} // rows from the top
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			got := m.Positions[row*4+col]
			if !approxEqual(got.X, wantX[col], 1e-9) || !approxEqual(got.Y, wantY[row], 1e-9) {
				t.Errorf("vertex (%d,%d) = %v, want (%v,%v)", row, col, got, wantX[col], wantY[row])
			}
		}
	}
}

func TestBuildNineSlice_CornerUVsIndependentOfSize(t *testing.T) {
	sizes := []Vec2{{20, 10}, {100, 50}, {33, 300}}
	var first [16]Vec2
	for i, size := range sizes {
		var m Mesh
		if err := BuildNineSlice(&m, DefaultPlacement(size), panelEntry, panelInsets, 1); err != nil {
			t.Fatal(err)
		}
		if i == 0 {
			copy(first[:], m.UVs)
			continue
		}
		for j := range first {
			if !approxEqual(m.UVs[j].X, first[j].X, 1e-12) || !approxEqual(m.UVs[j].Y, first[j].Y, 1e-12) {
				t.Errorf("size %v: uv[%d] = %v, want %v", size, j, m.UVs[j], first[j])
			}
		}
	}

	// Left border spans 4/20 of the texture width, top border 2/10 of its height.
	u := first[1].X - first[0].X
	v := first[0].Y - first[4].Y
	if !approxEqual(u, 0.5*4.0/20, 1e-12) {
		t.Errorf("left border u span = %v, want %v", u, 0.5*4.0/20)
	}
	if !approxEqual(v, 0.5*2.0/10, 1e-12) {
		t.Errorf("top border v span = %v, want %v", v, 0.5*2.0/10)
	}
}

func TestBuildNineSlice_ScaledInsets(t *testing.T) {
	var m Mesh
	p := DefaultPlacement(Vec2{100, 50})
	p.Scale = Vec2{2, 2}
	if err := BuildNineSlice(&m, p, panelEntry, panelInsets, 0.5); err != nil {
		t.Fatal(err)
	}
	// Total footprint 100*0.5*2; left border 4*0.5*2.
	if !approxEqual(m.Positions[3].X, 100, 1e-9) {
		t.Errorf("right edge = %v, want 100", m.Positions[3].X)
	}
	if !approxEqual(m.Positions[1].X, 4, 1e-9) {
		t.Errorf("left inset line = %v, want 4", m.Positions[1].X)
	}
}

func TestBuildNineSlice_InvalidInsetsStillBuild(t *testing.T) {
	var m Mesh
	bad := NineSliceInsets{Left: 15, Right: 15}
	err := BuildNineSlice(&m, DefaultPlacement(Vec2{40, 40}), panelEntry, bad, 1)
	if !errors.Is(err, ErrInvalidInsets) {
		t.Fatalf("err = %v, want ErrInvalidInsets", err)
	}
	if len(m.Positions) != 16 || len(m.Indices) != 54 {
		t.Error("geometry should still be generated for invalid insets")
	}
}

func TestNineSliceInsets_Validate(t *testing.T) {
	size := Vec2{20, 10}
	cases := []struct {
		in NineSliceInsets
		ok bool
	}{
		{NineSliceInsets{}, true},
		{NineSliceInsets{10, 5, 10, 5}, true},
		{NineSliceInsets{11, 0, 10, 0}, false},
		{NineSliceInsets{0, 6, 0, 5}, false},
		{NineSliceInsets{-1, 0, 0, 0}, false},
	}
	for _, c := range cases {
		err := c.in.Validate(size)
		if (err == nil) != c.ok {
			t.Errorf("Validate(%+v) = %v, want ok=%v", c.in, err, c.ok)
		}
	}
}

func TestBuildNineSlice_FlipAndFrameSwap(t *testing.T) {
	var m Mesh
	if err := BuildNineSlice(&m, DefaultPlacement(Vec2{60, 30}), panelEntry, panelInsets, 1); err != nil {
		t.Fatal(err)
	}
	orig := append([]Vec2(nil), m.UVs...)
	m.FlipUVs()
	if m.UVs[0] != orig[3] || m.UVs[5] != orig[6] {
		t.Error("flip should mirror each row")
	}
	m.FlipUVs()

	m.SetUVRect(Rect{0, 0.5, 0.5, 1}, false)
	if !approxEqual(m.UVs[1].X-m.UVs[0].X, 0.5*4.0/20, 1e-12) {
		t.Errorf("left border after frame swap = %v", m.UVs[1].X-m.UVs[0].X)
	}
	if m.UVs[0] != (Vec2{0, 1}) || m.UVs[15] != (Vec2{0.5, 0.5}) {
		t.Errorf("outer corners = %v, %v", m.UVs[0], m.UVs[15])
	}
}
