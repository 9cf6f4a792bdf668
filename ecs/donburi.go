package ecs

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/sprig"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// SpriteData is the component attached to sprite entities. X and Y place
// the sprite's anchor in screen space when drawn through System.Draw.
type SpriteData struct {
	Sprite  *sprig.Sprite
	Visible bool
	X, Y    float64
}

// SpriteComponent is the Donburi component type for SpriteData.
var SpriteComponent = donburi.NewComponentType[SpriteData]()

// AnimationCompleted is published when an entity's animation finishes.
type AnimationCompleted struct {
	Entity     donburi.Entity
	Animation  string
	Completion sprig.Completion
}

// AnimationCompletedEvent is the Donburi event type for finished animations.
var AnimationCompletedEvent = events.NewEventType[AnimationCompleted]()

// System ticks every sprite entity in a world.
type System struct {
	query   *donburi.Query
	pending []donburi.Entity
}

// NewSystem creates a System matching entities with a SpriteComponent.
func NewSystem() *System {
	return &System{query: donburi.NewQuery(filter.Contains(SpriteComponent))}
}

// Attach stores sp on entity e and wires completion policies to the entity.
// The entity must have been created with SpriteComponent.
func (s *System) Attach(world donburi.World, e donburi.Entity, sp *sprig.Sprite) {
	entry := world.Entry(e)
	SpriteComponent.SetValue(entry, SpriteData{Sprite: sp, Visible: sp.Visible()})
	sp.SetOwner(&entityOwner{sys: s, world: world, entity: e})
	sp.OnAnimationComplete = func(def *sprig.AnimationDefinition) {
		AnimationCompletedEvent.Publish(world, AnimationCompleted{
			Entity:     e,
			Animation:  def.Name,
			Completion: def.Completion,
		})
	}
}

// Update advances every sprite by dt seconds. Entities destroyed by a
// completion policy are removed once the pass is over.
func (s *System) Update(world donburi.World, dt float64) {
	s.query.Each(world, func(entry *donburi.Entry) {
		data := SpriteComponent.Get(entry)
		if data.Sprite != nil {
			data.Sprite.Tick(dt)
		}
	})
	for _, e := range s.pending {
		if world.Valid(e) {
			world.Remove(e)
			sprig.Logger().Debug("sprig/ecs: entity destroyed by animation", "entity", e)
		}
	}
	s.pending = s.pending[:0]
}

// Draw draws every visible sprite entity onto screen, translating each by
// its X and Y before applying opts.GeoM.
func (s *System) Draw(world donburi.World, screen *ebiten.Image, opts sprig.DrawOptions) {
	base := opts.GeoM
	s.query.Each(world, func(entry *donburi.Entry) {
		data := SpriteComponent.Get(entry)
		if !data.Visible || data.Sprite == nil {
			return
		}
		var g ebiten.GeoM
		g.Translate(data.X, data.Y)
		g.Concat(base)
		opts.GeoM = g
		sprig.DrawSprite(screen, data.Sprite, &opts)
	})
}

// entityOwner routes completion policies to an entity.
type entityOwner struct {
	sys    *System
	world  donburi.World
	entity donburi.Entity
}

func (o *entityOwner) Destroy() {
	o.sys.pending = append(o.sys.pending, o.entity)
}

func (o *entityOwner) SetVisible(visible bool) {
	if !o.world.Valid(o.entity) {
		return
	}
	SpriteComponent.Get(o.world.Entry(o.entity)).Visible = visible
}
