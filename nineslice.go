package sprig

import "fmt"

// NineSliceInsets are the fixed border widths of a nine-slice sprite, in
// native pixels of the source image.
type NineSliceInsets struct {
	Left, Top, Right, Bottom int
}

// Validate checks the insets against the source image size. Negative
// insets, or opposite insets adding up to more than the source, wrap
// ErrInvalidInsets.
func (in NineSliceInsets) Validate(pixelSize Vec2) error {
	if in.Left < 0 || in.Top < 0 || in.Right < 0 || in.Bottom < 0 ||
		float64(in.Left+in.Right) > pixelSize.X || float64(in.Top+in.Bottom) > pixelSize.Y {
		return fmt.Errorf("%w: insets %+v, source %vx%v", ErrInvalidInsets, in, pixelSize.X, pixelSize.Y)
	}
	return nil
}

// BuildNineSlice fills dst with a 4x4 vertex grid (16 vertices, 9 cells,
// 54 indices) covering the desired size. Interior position lines sit at the
// insets, scaled into world units, from each edge; interior UV lines sit at
// the insets as a fraction of the source. Corner cells therefore show the
// source corners unstretched while edges and center stretch.
//
// Vertices are stored row by row from the top, left to right. Insets that do
// not fit the source are logged and returned as an error wrapping
// ErrInvalidInsets, but the geometry is still built.
func BuildNineSlice(dst *Mesh, p Placement, e AtlasEntry, in NineSliceInsets, orthoAdj float64) error {
	dst.Reset()
	if orthoAdj <= 0 {
		orthoAdj = 1
	}
	err := in.Validate(e.PixelSize)
	if err != nil {
		Logger().Warn("sprig: nine-slice insets exceed source", "id", e.ID, "insets", in, "size", e.PixelSize)
	}

	desired := Vec2{p.DesiredSize.X * orthoAdj, p.DesiredSize.Y * orthoAdj}
	offset := AnchorOffset(p.Anchor, desired, p.Scale)
	x0 := offset.X
	y0 := offset.Y
	x1 := x0 + desired.X*p.Scale.X
	y1 := y0 + desired.Y*p.Scale.Y

	kx := orthoAdj * p.Scale.X
	ky := orthoAdj * p.Scale.Y
	xs := [4]float64{x0, x0 + float64(in.Left)*kx, x1 - float64(in.Right)*kx, x1}
	ys := [4]float64{y1, y1 - float64(in.Top)*ky, y0 + float64(in.Bottom)*ky, y0}

	dst.layout = layoutNineSlice
	dst.grow(16, 54)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			dst.Positions[row*4+col] = Vec2{xs[col], ys[row]}
		}
	}
	dst.slice = [4]float64{
		fraction(in.Left, e.PixelSize.X),
		fraction(in.Top, e.PixelSize.Y),
		fraction(in.Right, e.PixelSize.X),
		fraction(in.Bottom, e.PixelSize.Y),
	}

	ii := 0
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			tl := uint16(row*4 + col)
			tr := tl + 1
			bl := tl + 4
			br := bl + 1
			dst.Indices[ii+0] = tl
			dst.Indices[ii+1] = bl
			dst.Indices[ii+2] = tr
			dst.Indices[ii+3] = tr
			dst.Indices[ii+4] = bl
			dst.Indices[ii+5] = br
			ii += 6
		}
	}

	dst.SetTint(p.Tint)
	dst.SetUVRect(e.UV, p.Flipped)
	return err
}

func fraction(px int, size float64) float64 {
	if size <= 0 {
		return 0
	}
	return float64(px) / size
}
