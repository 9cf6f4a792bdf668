package sprig

import "github.com/hajimehoshi/ebiten/v2"

// BlendMode picks how sprite pixels combine with the destination.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // alpha over
	BlendAdd                     // additive, for glows and sparks
	BlendNone                    // overwrite the destination
)

// EbitenBlend maps m to Ebiten's blend state. Unknown modes draw as
// BlendNormal.
func (m BlendMode) EbitenBlend() ebiten.Blend {
	switch m {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendNone:
		return ebiten.BlendCopy
	}
	return ebiten.BlendSourceOver
}

// DrawOptions configures DrawSprite and Batch.Flush. The zero value draws at
// the origin with standard density, normal blending and nearest filtering.
type DrawOptions struct {
	// GeoM maps the sprite's local space, after the Y axis has been flipped to
	// point down, onto the destination image.
	GeoM    ebiten.GeoM
	Density Density
	Blend   BlendMode
	Filter  ebiten.Filter
}

// AppendVertices appends the sprite's mesh to dst as Ebiten vertices and
// returns the extended slice. Local positions are Y-up, so Y is negated
// before geoM is applied. UVs become source pixels on a page of
// pageW x pageH, and colors are premultiplied by alpha. The vertex order
// matches Mesh().Indices.
func (s *Sprite) AppendVertices(dst []ebiten.Vertex, geoM ebiten.GeoM, pageW, pageH float64) []ebiten.Vertex {
	m := &s.mesh
	for i, p := range m.Positions {
		dx, dy := geoM.Apply(p.X, -p.Y)
		uv := m.UVs[i]
		c := m.Colors[i]
		a := float32(c.A)
		dst = append(dst, ebiten.Vertex{
			DstX:   float32(dx),
			DstY:   float32(dy),
			SrcX:   float32(uv.X * pageW),
			SrcY:   float32((1 - uv.Y) * pageH),
			ColorR: float32(c.R) * a,
			ColorG: float32(c.G) * a,
			ColorB: float32(c.B) * a,
			ColorA: a,
		})
	}
	return dst
}

// drawVerts is reused across DrawSprite calls. Ebiten draws from a single
// goroutine, so one buffer is enough.
var drawVerts []ebiten.Vertex

// DrawSprite draws s onto dst using the atlas page for opts.Density. Hidden
// sprites, empty meshes and atlases without a page draw nothing. opts may be
// nil.
func DrawSprite(dst *ebiten.Image, s *Sprite, opts *DrawOptions) {
	if s == nil || !s.Visible() || s.mesh.Empty() {
		return
	}
	if opts == nil {
		opts = &DrawOptions{}
	}
	page := s.atlas.Page(opts.Density)
	if page == nil {
		return
	}
	b := page.Bounds()
	drawVerts = s.AppendVertices(drawVerts[:0], opts.GeoM, float64(b.Dx()), float64(b.Dy()))

	var triOp ebiten.DrawTrianglesOptions
	triOp.Blend = opts.Blend.EbitenBlend()
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	triOp.Filter = opts.Filter
	dst.DrawTriangles(drawVerts, s.mesh.Indices, page, &triOp)
}

// Batch accumulates sprites that share one atlas page and submits them in a
// single DrawTriangles32 call. Its buffers grow to a high-water mark and are
// reused after every Flush.
type Batch struct {
	verts []ebiten.Vertex
	inds  []uint32
	atlas *Atlas
	pageW float64
	pageH float64
}

// Add appends s transformed by geoM. Sprites must come from the same atlas as
// the first sprite added since the last Flush; others are skipped and
// reported as false. Hidden sprites and empty meshes are skipped too.
func (b *Batch) Add(s *Sprite, geoM ebiten.GeoM, density Density) bool {
	if s == nil || !s.Visible() || s.mesh.Empty() {
		return false
	}
	if b.atlas == nil {
		page := s.atlas.Page(density)
		if page == nil {
			return false
		}
		r := page.Bounds()
		b.atlas = s.atlas
		b.pageW, b.pageH = float64(r.Dx()), float64(r.Dy())
	} else if s.atlas != b.atlas {
		return false
	}

	base := uint32(len(b.verts))
	b.verts = s.AppendVertices(b.verts, geoM, b.pageW, b.pageH)
	for _, i := range s.mesh.Indices {
		b.inds = append(b.inds, base+uint32(i))
	}
	return true
}

// Len returns the number of vertices waiting to be drawn.
func (b *Batch) Len() int { return len(b.verts) }

// Flush draws the accumulated sprites onto dst and resets the batch.
// opts.GeoM is ignored; each sprite carried its own transform into Add.
func (b *Batch) Flush(dst *ebiten.Image, opts *DrawOptions) {
	defer b.reset()
	if len(b.verts) == 0 || b.atlas == nil {
		return
	}
	if opts == nil {
		opts = &DrawOptions{}
	}
	page := b.atlas.Page(opts.Density)
	if page == nil {
		return
	}

	var triOp ebiten.DrawTrianglesOptions
	triOp.Blend = opts.Blend.EbitenBlend()
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	triOp.Filter = opts.Filter
	dst.DrawTriangles32(b.verts, b.inds, page, &triOp)
}

func (b *Batch) reset() {
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
	b.atlas = nil
}
