// Package pinpoint shows interactive point markers in a 3D scene with
// [Ebitengine].
//
// A [Marker] sits at a fixed position. Clicking it opens a [LabelPopup]: a
// screen-space box anchored at the clicked point that fades in, stays while
// the user does nothing else, and fades out and detaches itself on the next
// pointer press, touch, key press or wheel scroll outside of it.
//
// # Quick start
//
//	scene := pinpoint.NewScene()
//	scene.Camera().LookAt(pinpoint.Vec3{0, 5, 20}, pinpoint.Vec3{})
//
//	m := pinpoint.NewMarker(scene, "spawn")
//	m.UpdateFromData(pinpoint.MarkerData{
//		Position: &pinpoint.PositionData{X: 2},
//		Label:    "Spawn point",
//	})
//	scene.Root().AddChild(m.Node())
//
//	pinpoint.Run(scene, pinpoint.RunConfig{Title: "Markers", Width: 800, Height: 600})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Popups
//
// A popup moves through explicit phases (see [Phase]). [LabelPopup.Open]
// and [LabelPopup.Close] each run a 300 ms linear fade through the scene's
// [Animator]; only a completed fade-out detaches the popup. Auto-closing
// popups hold a single [Subscription] on the scene's [DismissChannel] that
// is released the first time it fires.
//
// # Snapshots
//
// Marker state comes from [MarkerData] snapshots, decoded from YAML or JSON
// with [ParseMarkerData]. Missing fields fall back to zero values.
//
// [Ebitengine]: https://ebitengine.org
package pinpoint
