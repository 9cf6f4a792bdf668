// Package ecs provides a [Donburi] adapter for sprig sprites.
//
// Attach a sprite to an entity with [System.Attach], then call
// [System.Update] once per tick to advance every sprite's animation.
// Completion policies act on the entity: destroy removes it after the pass
// and hide clears [SpriteData.Visible]. Finished animations are published
// to [AnimationCompletedEvent]; process them with events.ProcessAllEvents.
//
// Usage:
//
//	sys := ecs.NewSystem()
//	e := world.Create(ecs.SpriteComponent)
//	sys.Attach(world, e, sprite)
//	// each tick
//	sys.Update(world, dt)
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
