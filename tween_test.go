package sprig

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenTintReachesTarget(t *testing.T) {
	s := newTestSprite(t, "hero")
	target := Color{R: 0, G: 1, B: 0.5, A: 0.5}

	g := TweenTint(s, target, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	got := s.Placement().Tint
	if math.Abs(got.R-target.R) > 0.01 || math.Abs(got.G-target.G) > 0.01 ||
		math.Abs(got.B-target.B) > 0.01 || math.Abs(got.A-target.A) > 0.01 {
		t.Errorf("tint = %+v, want %+v", got, target)
	}
	if c := s.Mesh().Colors[0]; math.Abs(c.G-1) > 0.01 {
		t.Errorf("vertex color = %+v, want tint applied", c)
	}
}

func TestTweenTintInterpolates(t *testing.T) {
	s := newTestSprite(t, "hero")
	g := TweenTint(s, Color{0, 0, 0, 1}, 1.0, ease.Linear)
	g.Update(0.5)
	if g.Done {
		t.Fatal("should not be done at halfway")
	}
	if r := s.Placement().Tint.R; math.Abs(r-0.5) > 0.01 {
		t.Errorf("R at halfway = %f, want ~0.5", r)
	}
}

func TestTweenScaleRebuildsGeometry(t *testing.T) {
	s := newTestSprite(t, "hero")
	g := TweenScale(s, Vec2{2, 3}, 0.5, ease.Linear)
	g.Update(0.25)
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	b := bounds(s.Mesh())
	if math.Abs(b.Width()-40) > 0.1 || math.Abs(b.Height()-60) > 0.1 {
		t.Errorf("footprint = %vx%v, want 40x60", b.Width(), b.Height())
	}
}

func TestTweenDesiredSizeAddsTiles(t *testing.T) {
	s := newTestSprite(t, "tile")
	g := TweenDesiredSize(s, Vec2{16, 4}, 1.0, ease.Linear)
	g.Update(0.5)
	if n := s.Mesh().NumQuads(); n != 3 {
		t.Errorf("quads at halfway = %d, want 3", n)
	}
	g.Update(0.5)
	if !g.Done {
		t.Fatal("expected Done")
	}
	if n := s.Mesh().NumQuads(); n != 4 {
		t.Errorf("quads at end = %d, want 4", n)
	}
}

func TestTweenStopsOnDestroyedSprite(t *testing.T) {
	s := newTestSprite(t, "walk_0")
	_ = s.Play(walkDef(s.Atlas(), CompletionDestroy))
	for i := 0; i < 10; i++ {
		s.Tick(0.1)
	}
	if !s.IsDestroyed() {
		t.Fatal("sprite should be destroyed")
	}
	before := s.Placement().Tint

	g := TweenTint(s, Color{1, 0, 0, 1}, 1.0, ease.Linear)
	g.Update(0.5)
	if !g.Done {
		t.Error("tween on destroyed sprite should be done")
	}
	if s.Placement().Tint != before {
		t.Error("tween wrote to a destroyed sprite")
	}
}

func TestTweenUpdateAfterDoneIsNoop(t *testing.T) {
	s := newTestSprite(t, "hero")
	g := TweenScale(s, Vec2{2, 2}, 0.1, ease.Linear)
	g.Update(0.1)
	if !g.Done {
		t.Fatal("expected Done")
	}
	_ = s.SetScale(Vec2{5, 5})
	g.Update(0.1)
	if s.Placement().Scale != (Vec2{5, 5}) {
		t.Error("finished tween should not write")
	}
}
