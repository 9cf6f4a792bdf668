package sprig

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, sizes, scales and texture
// coordinates throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle stored as min/max corners. Texture
// rectangles use normalized coordinates with V increasing upward, matching
// the Y-up local space sprite geometry is built in.
type Rect struct {
	XMin, YMin, XMax, YMax float64
}

// Width returns XMax - XMin.
func (r Rect) Width() float64 { return r.XMax - r.XMin }

// Height returns YMax - YMin.
func (r Rect) Height() float64 { return r.YMax - r.YMin }

// Anchor selects which point of a sprite sits at its local origin.
type Anchor uint8

const (
	AnchorTopLeft      Anchor = iota // origin at the top-left corner
	AnchorTopCenter                  // origin at the middle of the top edge
	AnchorTopRight                   // origin at the top-right corner
	AnchorMiddleLeft                 // origin at the middle of the left edge
	AnchorMiddleCenter               // origin at the center
	AnchorMiddleRight                // origin at the middle of the right edge
	AnchorBottomLeft                 // origin at the bottom-left corner
	AnchorBottomCenter               // origin at the middle of the bottom edge
	AnchorBottomRight                // origin at the bottom-right corner
)

// Density selects between the standard and high-density atlas pages.
type Density uint8

const (
	DensityStandard Density = iota // 1x atlas page
	DensityHigh                    // 2x atlas page, when the atlas has one
	densityCount
)

// highDensityMinWidth is the screen width above which DensityForScreen
// reports DensityHigh.
const highDensityMinWidth = 480

// DensityForScreen picks the atlas density for a screen of the given pixel
// width. The result is meant to be stored by the caller and passed through
// DrawOptions; sprig keeps no process-wide density state.
func DensityForScreen(width int) Density {
	if width > highDensityMinWidth {
		return DensityHigh
	}
	return DensityStandard
}
