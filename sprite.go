package sprig

import "fmt"

// Owner is the host object a sprite belongs to. Completion policies call it;
// the Clock never does.
type Owner interface {
	Destroy()
	SetVisible(visible bool)
}

// Sprite is one renderable instance: a placement, the atlas entry it shows,
// a cached mesh and at most one active animation clock. A Sprite is owned by
// a single host object and ticked from a single goroutine.
type Sprite struct {
	atlas     *Atlas
	imageID   string
	entry     AtlasEntry
	resolved  bool
	placement Placement
	insets    *NineSliceInsets
	uv        Rect // source rect currently mapped onto the mesh

	mesh    Mesh
	scratch Mesh

	clock     *Clock
	owner     Owner
	visible   bool
	destroyed bool

	// OnAnimationComplete, when set, is called after the completion policy
	// of a finished animation has been applied.
	OnAnimationComplete func(def *AnimationDefinition)
}

// NewSprite creates a tiled sprite showing the atlas image id. The desired
// size starts at the image's native size. On a lookup miss the sprite is
// still returned, with an empty mesh, alongside an error wrapping
// ErrLookupMiss.
func NewSprite(atlas *Atlas, id string, anchor Anchor) (*Sprite, error) {
	return newSprite(atlas, id, anchor, nil)
}

// NewNineSliceSprite creates a nine-slice sprite. Insets that do not fit the
// source image are reported as ErrInvalidInsets; the sprite is still usable.
func NewNineSliceSprite(atlas *Atlas, id string, anchor Anchor, insets NineSliceInsets) (*Sprite, error) {
	return newSprite(atlas, id, anchor, &insets)
}

func newSprite(atlas *Atlas, id string, anchor Anchor, insets *NineSliceInsets) (*Sprite, error) {
	if atlas == nil {
		panic("sprig: NewSprite with nil atlas")
	}
	s := &Sprite{atlas: atlas, insets: insets, visible: true}
	s.placement = DefaultPlacement(Vec2{})
	s.placement.Anchor = anchor
	err := s.resolve(id)
	if s.resolved {
		s.placement.DesiredSize = s.entry.PixelSize
	}
	if buildErr := s.rebuild(); err == nil {
		err = buildErr
	}
	return s, err
}

func (s *Sprite) resolve(id string) error {
	s.imageID = id
	e, err := s.atlas.Lookup(id)
	if err != nil {
		s.entry = AtlasEntry{}
		s.resolved = false
		return err
	}
	s.entry = e
	s.resolved = true
	s.uv = e.UV
	return nil
}

// rebuild regenerates geometry into the scratch mesh and swaps it in, so a
// half-built mesh is never visible. The displayed frame is kept.
func (s *Sprite) rebuild() error {
	if !s.resolved {
		s.mesh.Reset()
		return nil
	}
	var err error
	adj := s.atlas.OrthoAdjustment()
	if s.insets != nil {
		err = BuildNineSlice(&s.scratch, s.placement, s.entry, *s.insets, adj)
	} else {
		BuildTiled(&s.scratch, s.placement, s.entry, adj)
	}
	s.mesh, s.scratch = s.scratch, s.mesh
	if s.uv != s.entry.UV {
		s.mesh.SetUVRect(s.uv, s.placement.Flipped)
	}
	return err
}

// showUV maps r onto the current mesh.
func (s *Sprite) showUV(r Rect) {
	s.uv = r
	s.mesh.SetUVRect(r, s.placement.Flipped)
}

// Mesh returns the cached geometry for the host renderer. The pointer stays
// valid until the next placement change.
func (s *Sprite) Mesh() *Mesh { return &s.mesh }

// Atlas returns the atlas the sprite draws from.
func (s *Sprite) Atlas() *Atlas { return s.atlas }

// ImageID returns the atlas id the sprite was asked to show.
func (s *Sprite) ImageID() string { return s.imageID }

// Entry returns the resolved atlas entry and whether resolution succeeded.
func (s *Sprite) Entry() (AtlasEntry, bool) { return s.entry, s.resolved }

// Placement returns the current placement.
func (s *Sprite) Placement() Placement { return s.placement }

// Insets returns the nine-slice insets, or nil for a tiled sprite.
func (s *Sprite) Insets() *NineSliceInsets { return s.insets }

// SetPlacement replaces the placement and rebuilds the geometry. The only
// error is ErrInvalidInsets for nine-slice sprites.
func (s *Sprite) SetPlacement(p Placement) error {
	s.placement = p
	return s.rebuild()
}

// SetDesiredSize sets the size in atlas pixels to cover and rebuilds.
// Tiled sprites repeat the image to fill it; nine-slice sprites stretch.
func (s *Sprite) SetDesiredSize(size Vec2) error {
	s.placement.DesiredSize = size
	return s.rebuild()
}

// SetScale sets the scale and rebuilds.
func (s *Sprite) SetScale(scale Vec2) error {
	s.placement.Scale = scale
	return s.rebuild()
}

// SetAnchor sets the anchor and rebuilds.
func (s *Sprite) SetAnchor(a Anchor) error {
	s.placement.Anchor = a
	return s.rebuild()
}

// SetTint sets the tint. Only the color channel is rewritten.
func (s *Sprite) SetTint(c Color) {
	s.placement.Tint = c
	s.mesh.SetTint(c)
}

// SetInsets changes the nine-slice insets and rebuilds. Passing nil turns
// the sprite back into a tiled sprite.
func (s *Sprite) SetInsets(in *NineSliceInsets) error {
	if in != nil {
		cp := *in
		in = &cp
	}
	s.insets = in
	return s.rebuild()
}

// SetImage switches to another atlas image, keeping the placement. On a
// lookup miss the mesh is emptied and the error wraps ErrLookupMiss.
func (s *Sprite) SetImage(id string) error {
	if err := s.resolve(id); err != nil {
		s.mesh.Reset()
		return err
	}
	return s.rebuild()
}

// IsFlipped reports whether the sprite is mirrored horizontally.
func (s *Sprite) IsFlipped() bool { return s.placement.Flipped }

// FlipHorizontally toggles the mirror state by reversing the UVs in place.
// Positions are untouched.
func (s *Sprite) FlipHorizontally() {
	s.placement.Flipped = !s.placement.Flipped
	s.mesh.FlipUVs()
}

// FaceBackwards mirrors the sprite if it is not mirrored already.
func (s *Sprite) FaceBackwards() {
	if !s.placement.Flipped {
		s.FlipHorizontally()
	}
}

// FaceForwards undoes FaceBackwards.
func (s *Sprite) FaceForwards() {
	if s.placement.Flipped {
		s.FlipHorizontally()
	}
}

// SetOwner sets the host object completion policies act on.
func (s *Sprite) SetOwner(o Owner) { s.owner = o }

// Owner returns the host object, or nil.
func (s *Sprite) Owner() Owner { return s.owner }

// Visible reports whether the sprite should be drawn.
func (s *Sprite) Visible() bool { return s.visible }

// SetVisible shows or hides the sprite.
func (s *Sprite) SetVisible(v bool) { s.visible = v }

// IsDestroyed reports whether a CompletionDestroy policy has fired.
func (s *Sprite) IsDestroyed() bool { return s.destroyed }

// Animation returns the active clock, or nil when nothing is playing.
func (s *Sprite) Animation() *Clock { return s.clock }

// Play starts def on this sprite, reusing the existing clock when there is
// one. If the clock starts playing right away the first frame is shown
// immediately; with a start delay the current image stays until the first
// tick after the delay. Passing nil discards the active animation.
func (s *Sprite) Play(def *AnimationDefinition) error {
	if def == nil {
		s.clock = nil
		return nil
	}
	if err := def.Validate(); err != nil {
		return err
	}
	if s.clock == nil {
		s.clock = NewClock(def)
	} else {
		s.clock.SetDefinition(def)
	}
	if !s.clock.IsStopped() && def.Delay <= 0 {
		_, r := s.clock.Frame()
		s.showUV(r)
	}
	return nil
}

// PlayNamed looks up name in store and plays it.
func (s *Sprite) PlayNamed(store *AnimationStore, name string) error {
	def, ok := store.Get(name)
	if !ok {
		return fmt.Errorf("sprig: animation %q not found", name)
	}
	return s.Play(def)
}

// Tick advances the active animation by dt seconds. Without an animation it
// does nothing. Frame changes only rewrite the UV channel; completion
// applies the definition's Completion policy once and drops the clock.
func (s *Sprite) Tick(dt float64) {
	if s.clock == nil {
		return
	}
	changed, complete := s.clock.Advance(dt)
	if complete {
		s.complete()
		return
	}
	if changed {
		_, r := s.clock.Frame()
		s.showUV(r)
	}
}

func (s *Sprite) complete() {
	def := s.clock.Definition()
	s.clock = nil
	switch def.Completion {
	case CompletionDestroy:
		s.destroyed = true
		s.visible = false
		if s.owner != nil {
			s.owner.Destroy()
		}
	case CompletionHide:
		s.visible = false
		if s.owner != nil {
			s.owner.SetVisible(false)
		}
	case CompletionRevert:
		if s.resolved {
			s.showUV(s.entry.UV)
		}
	}
	Logger().Debug("sprig: animation complete", "animation", def.Name, "image", s.imageID, "completion", def.Completion)
	if s.OnAnimationComplete != nil {
		s.OnAnimationComplete(def)
	}
}
