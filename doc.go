// Package sprig builds and animates atlas-backed 2D sprites for [Ebitengine].
//
// Sprig covers the part of a sprite that sits between an asset pipeline and
// a renderer: finding images in a texture atlas, generating their triangle
// geometry, and flipping through animation frames. The host owns the game
// loop, transforms and draw order.
//
// # Atlas
//
// An [Atlas] is an ordered catalog of [AtlasEntry] values, each a normalized
// UV rectangle plus the image's native pixel size. Build one with [NewAtlas]
// or parse TexturePacker JSON with [LoadAtlas]. [Atlas.Lookup] matches ids
// exactly first and then by prefix, so "hero" finds "hero.png".
//
//	atlas, err := sprig.LoadAtlas(jsonData, sprig.AtlasConfig{})
//	atlas.SetPage(sprig.DensityStandard, pageImage)
//
// # Sprites
//
// A [Sprite] shows one atlas image at a desired size. Tiled sprites repeat
// the image, clipping the last row and column; nine-slice sprites, created
// with [NewNineSliceSprite], keep their borders fixed and stretch the rest.
// Geometry is local, Y-up, with the origin at the sprite's [Anchor].
//
//	s, err := sprig.NewSprite(atlas, "floor", sprig.AnchorBottomLeft)
//	s.SetDesiredSize(sprig.Vec2{X: 320, Y: 32})
//
// Read the result through [Sprite.Mesh] or hand it to [DrawSprite], which
// converts it into Ebiten vertices and calls DrawTriangles. [Batch] merges
// many sprites sharing a page into one draw call.
//
// # Animation
//
// An [AnimationDefinition] is a shared, immutable list of frames with a
// frame rate, [WrapMode], iteration count, speed, start delay and
// [Completion] policy. Each playing sprite owns a [Clock] holding its
// position. Call [Sprite.Tick] once per frame: frame changes rewrite only the
// mesh's texture coordinates, and completion applies the policy to the
// sprite's [Owner].
//
//	store := sprig.NewAnimationStore(atlas)
//	store.LoadAnimationFile("animations.yaml")
//	s.PlayNamed(store, "walk")
//	// each frame
//	s.Tick(dt)
//
// [Watcher] reports edits to animation and atlas files so the host can
// reload a store while the game runs.
//
// # Tweens
//
// [TweenTint], [TweenScale] and [TweenDesiredSize] animate sprite properties
// with [gween] easing functions. Call Update on the returned [TweenGroup]
// each frame.
//
// # Logging
//
// Sprig is silent by default. Pass a [log/slog] logger to [SetLogger] to see
// lookup misses and invalid insets (Warn) and completions and reloads
// (Debug).
//
// # ECS
//
// The sprig/ecs module attaches sprites to [Donburi] entities and publishes
// completion events.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package sprig
