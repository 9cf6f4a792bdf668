package sprig

import "errors"

// Errors reported by sprig. All of them are recoverable: a lookup miss leaves
// a sprite with an empty mesh, invalid insets still produce geometry, and a
// degenerate animation is rejected before it can reach a Clock. Returned
// errors wrap these sentinels; test with errors.Is.
var (
	// ErrLookupMiss reports that no atlas entry matches an image id.
	ErrLookupMiss = errors.New("sprig: atlas entry not found")

	// ErrInvalidInsets reports nine-slice insets that exceed the source
	// image. Geometry is still generated but corners may overlap or invert.
	ErrInvalidInsets = errors.New("sprig: nine-slice insets exceed source size")

	// ErrDegenerateAnimation reports an animation definition with no frames,
	// a non-positive frame rate, or a negative delay.
	ErrDegenerateAnimation = errors.New("sprig: degenerate animation")
)
