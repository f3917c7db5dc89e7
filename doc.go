// Package hover resolves which 3D object sits under the pointer and tracks
// hover transitions for [Ebitengine] games.
//
// Each frame the pointer is turned into a world space [Ray], every
// candidate object's bounding volume is tested against it, and the nearest
// hit becomes the hovered object. At most one object is hovered at a time.
// When it changes, the previous object gets a stop transition and the new
// one a start transition, in that order, within the same frame.
//
// # Quick start
//
//	cam := hover.NewCamera(mgl64.Vec3{0, 2, 8}, mgl64.Vec3{}, 640, 480)
//	pointer := hover.NewPointer(cam)
//	sys := hover.NewHoverSystem()
//
//	reg := hover.CandidateList{{
//		ID:        1,
//		Handler:   hover.NewHighlightHover(hover.Ball{Radius: 1}),
//		Transform: mgl64.Ident4(),
//	}}
//
//	// in ebiten.Game.Update:
//	ray, clicked := pointer.Poll()
//	sys.Update(ray, reg, nil)
//	if clicked {
//		sys.ClickHovered(clicks, nil)
//	}
//
// # Shapes and transforms
//
// Bounding volumes are [Ball], [Cuboid] and [Capsule]. Placements must be
// rigid: translation and rotation only. A world matrix with scale, shear,
// mirroring or non-finite entries is a programming error and panics during
// picking; use [IsometryFromMat4] to check a matrix ahead of time.
//
// By default the picker raises each volume by its upright half height, so a
// transform placed at an object's feet tests a volume resting on that
// point. See [Picker.CenterOnBounds].
//
// # Handlers
//
// Objects react through [Hoverable] and [Clickable]. [NoEffectHover],
// [TextureSwapHover], [HighlightHover] and [HoverFuncs] cover the common
// cases; embed [NoEffectHover] to write your own with only the callbacks you
// need.
//
// # Events
//
// Transitions are queued on [HoverSystem.Events] and delivered by
// [EventQueue.Flush], which [HoverSystem.Update] calls after each step. An
// optional [EventSink] receives every transition as it happens; the ecs
// subpackage provides one that republishes them as Donburi events.
//
// # Configuration
//
// [LoadConfig] and [LoadShapes] read YAML descriptions of the picker, the
// camera and named bounding volumes.
//
// # Testing
//
// [Pointer.InjectMove], [Pointer.InjectClick], [Pointer.InjectRay] and
// [Pointer.InjectSweep] queue synthetic pointer frames that Poll consumes
// before reading the real mouse.
//
// [Ebitengine]: https://ebitengine.org
package hover
