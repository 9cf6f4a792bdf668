package sprig

// AnchorOffset returns the translation that places a quad of the given size,
// built from its bottom-left corner, so that the anchor point lands on the
// origin. The result is multiplied by scale. Unknown anchor values behave
// like AnchorBottomLeft.
func AnchorOffset(a Anchor, size, scale Vec2) Vec2 {
	var fx, fy float64
	switch a {
	case AnchorTopLeft:
		fx, fy = 0, -1
	case AnchorTopCenter:
		fx, fy = -0.5, -1
	case AnchorTopRight:
		fx, fy = -1, -1
	case AnchorMiddleLeft:
		fx, fy = 0, -0.5
	case AnchorMiddleCenter:
		fx, fy = -0.5, -0.5
	case AnchorMiddleRight:
		fx, fy = -1, -0.5
	case AnchorBottomLeft:
		fx, fy = 0, 0
	case AnchorBottomCenter:
		fx, fy = -0.5, 0
	case AnchorBottomRight:
		fx, fy = -1, 0
	}
	return Vec2{X: fx * size.X * scale.X, Y: fy * size.Y * scale.Y}
}

// String returns the anchor's name.
func (a Anchor) String() string {
	switch a {
	case AnchorTopLeft:
		return "TopLeft"
	case AnchorTopCenter:
		return "TopCenter"
	case AnchorTopRight:
		return "TopRight"
	case AnchorMiddleLeft:
		return "MiddleLeft"
	case AnchorMiddleCenter:
		return "MiddleCenter"
	case AnchorMiddleRight:
		return "MiddleRight"
	case AnchorBottomLeft:
		return "BottomLeft"
	case AnchorBottomCenter:
		return "BottomCenter"
	case AnchorBottomRight:
		return "BottomRight"
	default:
		return "Anchor(?)"
	}
}
