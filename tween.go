package sprig

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type tweenKind uint8

const (
	tweenTint tweenKind = iota
	tweenScale
	tweenDesiredSize
)

// TweenGroup animates up to 4 components of a sprite property at once.
// Create one via TweenTint, TweenScale or TweenDesiredSize and call
// Update(dt) each frame. Values are written through the sprite's setters, so
// a tint tween only touches vertex colors while size and scale tweens
// rebuild geometry. If the sprite is destroyed the group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	values [4]float64
	count  int
	kind   tweenKind
	target *Sprite
	Done   bool
}

// Update advances all tweens by dt seconds and applies the values.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target == nil || g.target.IsDestroyed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.values[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	v := g.values
	switch g.kind {
	case tweenTint:
		g.target.SetTint(Color{R: v[0], G: v[1], B: v[2], A: v[3]})
	case tweenScale:
		_ = g.target.SetScale(Vec2{v[0], v[1]})
	case tweenDesiredSize:
		_ = g.target.SetDesiredSize(Vec2{v[0], v[1]})
	}
}

// TweenTint animates the sprite's tint to the given color.
func TweenTint(s *Sprite, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := s.Placement().Tint
	g := &TweenGroup{count: 4, kind: tweenTint, target: s}
	g.tweens[0] = gween.New(float32(from.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(from.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(from.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(from.A), float32(to.A), duration, fn)
	return g
}

// TweenScale animates the sprite's scale.
func TweenScale(s *Sprite, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := s.Placement().Scale
	g := &TweenGroup{count: 2, kind: tweenScale, target: s}
	g.tweens[0] = gween.New(float32(from.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(from.Y), float32(to.Y), duration, fn)
	return g
}

// TweenDesiredSize animates the size the sprite covers, in atlas pixels.
// Tiled sprites gain and lose tiles as the size passes cell boundaries.
func TweenDesiredSize(s *Sprite, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := s.Placement().DesiredSize
	g := &TweenGroup{count: 2, kind: tweenDesiredSize, target: s}
	g.tweens[0] = gween.New(float32(from.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(from.Y), float32(to.Y), duration, fn)
	return g
}
