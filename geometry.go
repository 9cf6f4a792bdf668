package sprig

import "math"

// Placement holds the per-sprite inputs to geometry generation. DesiredSize
// is in atlas pixels; the atlas ortho adjustment converts it to world units.
type Placement struct {
	Anchor      Anchor
	DesiredSize Vec2
	Scale       Vec2
	Tint        Color
	Flipped     bool
}

// DefaultPlacement returns a bottom-left anchored, unscaled, untinted
// placement of the given size.
func DefaultPlacement(size Vec2) Placement {
	return Placement{
		Anchor:      AnchorBottomLeft,
		DesiredSize: size,
		Scale:       Vec2{1, 1},
		Tint:        ColorWhite,
	}
}

type meshLayout uint8

const (
	layoutNone meshLayout = iota
	layoutTiled
	layoutNineSlice
)

// maxMeshVertices is the vertex limit imposed by uint16 indices.
const maxMeshVertices = 1 << 16

// sizeEpsilon absorbs float error when deciding whether a desired size is an
// exact multiple of the cell size.
const sizeEpsilon = 1e-6

// Mesh holds the buffers produced by the geometry builders. Positions are in
// local space, Y up, origin at the placement anchor. UVs, Colors and
// Positions are parallel. Indices describe counter-clockwise triangles.
//
// The host reads the exported slices and MUST NOT resize them; sprig reuses
// their backing arrays across rebuilds.
type Mesh struct {
	Positions []Vec2
	UVs       []Vec2
	Colors    []Color
	Indices   []uint16

	layout   meshLayout
	quadFrac []Vec2     // tiled: share of the source rect each quad shows
	slice    [4]float64 // nine-slice: left, top, right, bottom as source fractions
}

// Reset empties the mesh, keeping its buffers for reuse.
func (m *Mesh) Reset() {
	m.Positions = m.Positions[:0]
	m.UVs = m.UVs[:0]
	m.Colors = m.Colors[:0]
	m.Indices = m.Indices[:0]
	m.quadFrac = m.quadFrac[:0]
	m.slice = [4]float64{}
	m.layout = layoutNone
}

// Empty reports whether the mesh has no triangles.
func (m *Mesh) Empty() bool {
	return len(m.Indices) == 0
}

// NumQuads returns the number of quads in a tiled mesh, or 0 for other layouts.
func (m *Mesh) NumQuads() int {
	if m.layout != layoutTiled {
		return 0
	}
	return len(m.quadFrac)
}

// SetTint writes c into every vertex color.
func (m *Mesh) SetTint(c Color) {
	for i := range m.Colors {
		m.Colors[i] = c
	}
}

// SetUVRect maps the source rectangle r onto the mesh without touching
// positions. Clipped quads keep showing the same fraction of r they were
// built with, and nine-slice borders keep their source proportions. When
// flipped is true each row of four UVs is mirrored. Allocation free.
func (m *Mesh) SetUVRect(r Rect, flipped bool) {
	switch m.layout {
	case layoutTiled:
		w, h := r.Width(), r.Height()
		for q, f := range m.quadFrac {
			u1 := r.XMin + w*f.X
			v1 := r.YMin + h*f.Y
			vi := q * 4
			m.UVs[vi+0] = Vec2{r.XMin, v1}
			m.UVs[vi+1] = Vec2{r.XMin, r.YMin}
			m.UVs[vi+2] = Vec2{u1, r.YMin}
			m.UVs[vi+3] = Vec2{u1, v1}
		}
	case layoutNineSlice:
		w, h := r.Width(), r.Height()
		us := [4]float64{r.XMin, r.XMin + w*m.slice[0], r.XMax - w*m.slice[2], r.XMax}
		vs := [4]float64{r.YMax, r.YMax - h*m.slice[1], r.YMin + h*m.slice[3], r.YMin}
		for row := 0; row < 4; row++ {
			for col := 0; col < 4; col++ {
				m.UVs[row*4+col] = Vec2{us[col], vs[row]}
			}
		}
	default:
		return
	}
	if flipped {
		m.FlipUVs()
	}
}

// FlipUVs mirrors the mesh horizontally by reversing every run of four UVs.
// Tiled quads store their corners as TL, BL, BR, TR and nine-slice grids
// store rows of four left to right, so the same swap mirrors both layouts.
// Applying it twice restores the original UVs exactly.
func (m *Mesh) FlipUVs() {
	uv := m.UVs
	for i := 0; i+3 < len(uv); i += 4 {
		uv[i], uv[i+3] = uv[i+3], uv[i]
		uv[i+1], uv[i+2] = uv[i+2], uv[i+1]
	}
}

// grow resizes the buffers to nv vertices and ni indices, reallocating only
// when capacity is insufficient (high-water mark, never shrinks).
func (m *Mesh) grow(nv, ni int) {
	if cap(m.Positions) < nv {
		m.Positions = make([]Vec2, nv)
	}
	m.Positions = m.Positions[:nv]
	if cap(m.UVs) < nv {
		m.UVs = make([]Vec2, nv)
	}
	m.UVs = m.UVs[:nv]
	if cap(m.Colors) < nv {
		m.Colors = make([]Color, nv)
	}
	m.Colors = m.Colors[:nv]
	if cap(m.Indices) < ni {
		m.Indices = make([]uint16, ni)
	}
	m.Indices = m.Indices[:ni]
}

// BuildTiled fills dst with the standard sprite geometry: the atlas cell is
// repeated, not stretched, until it covers the desired size. The last column
// and row are clipped to the remainder, and their UVs show only the matching
// fraction of the cell. Quads run bottom-left to top-right, column by column.
//
// A non-positive size or an entry without pixel size yields an empty mesh.
// Infinite sizes, and sizes needing more quads than uint16 indices can
// address, are logged and also yield an empty mesh.
func BuildTiled(dst *Mesh, p Placement, e AtlasEntry, orthoAdj float64) {
	dst.Reset()
	if !positiveFinite(orthoAdj) {
		orthoAdj = 1
	}
	if !positiveFinite(e.PixelSize.X) || !positiveFinite(e.PixelSize.Y) {
		return
	}
	if !(p.DesiredSize.X > 0) || !(p.DesiredSize.Y > 0) {
		return
	}

	cell := Vec2{e.PixelSize.X * orthoAdj, e.PixelSize.Y * orthoAdj}
	desired := Vec2{p.DesiredSize.X * orthoAdj, p.DesiredSize.Y * orthoAdj}
	if !positiveFinite(cell.X) || !positiveFinite(cell.Y) ||
		!positiveFinite(desired.X) || !positiveFinite(desired.Y) {
		Logger().Warn("sprig: tiled sprite size is not finite",
			"id", e.ID, "size", p.DesiredSize, "cell", e.PixelSize)
		return
	}

	// Count in floating point so huge sizes cannot overflow int.
	if math.Ceil(desired.X/cell.X)*math.Ceil(desired.Y/cell.Y) > maxMeshVertices/4 {
		Logger().Warn("sprig: tiled sprite needs too many quads",
			"id", e.ID, "size", p.DesiredSize, "cell", e.PixelSize)
		return
	}
	cols, lastW := tileSpan(desired.X, cell.X)
	rows, lastH := tileSpan(desired.Y, cell.Y)
	quads := cols * rows

	offset := AnchorOffset(p.Anchor, desired, p.Scale)
	dst.layout = layoutTiled
	dst.grow(quads*4, quads*6)
	if cap(dst.quadFrac) < quads {
		dst.quadFrac = make([]Vec2, quads)
	}
	dst.quadFrac = dst.quadFrac[:quads]

	q := 0
	for x := 0; x < cols; x++ {
		for y := 0; y < rows; y++ {
			w, h := cell.X, cell.Y
			if x == cols-1 {
				w = lastW
			}
			if y == rows-1 {
				h = lastH
			}
			x0 := float64(x)*cell.X*p.Scale.X + offset.X
			y0 := float64(y)*cell.Y*p.Scale.Y + offset.Y
			x1 := x0 + w*p.Scale.X
			y1 := y0 + h*p.Scale.Y

			vi := q * 4
			dst.Positions[vi+0] = Vec2{x0, y1}
			dst.Positions[vi+1] = Vec2{x0, y0}
			dst.Positions[vi+2] = Vec2{x1, y0}
			dst.Positions[vi+3] = Vec2{x1, y1}
			dst.quadFrac[q] = Vec2{w / cell.X, h / cell.Y}

			ii := q * 6
			base := uint16(vi)
			dst.Indices[ii+0] = base
			dst.Indices[ii+1] = base + 1
			dst.Indices[ii+2] = base + 3
			dst.Indices[ii+3] = base + 3
			dst.Indices[ii+4] = base + 1
			dst.Indices[ii+5] = base + 2
			q++
		}
	}

	dst.SetTint(p.Tint)
	dst.SetUVRect(e.UV, p.Flipped)
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// tileSpan returns how many cells cover total and the extent of the last
// one. Totals within sizeEpsilon of an exact multiple are not clipped.
func tileSpan(total, cell float64) (int, float64) {
	ratio := total / cell
	whole := math.Round(ratio)
	if math.Abs(ratio-whole) < sizeEpsilon {
		if whole < 1 {
			return 1, total
		}
		return int(whole), cell
	}
	n := int(math.Ceil(ratio))
	return n, total - float64(n-1)*cell
}
