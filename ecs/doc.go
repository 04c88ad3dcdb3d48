// Package ecs bridges pinpoint popup lifecycle events into a Donburi world.
//
//	world := donburi.NewWorld()
//	scene.SetEntityStore(ecs.NewDonburiStore(world))
//
//	ecs.PopupEventType.Subscribe(world, func(w donburi.World, e pinpoint.PopupEvent) {
//		// react to popups opening and closing
//	})
//
// Call PopupEventType.ProcessEvents(world) once per frame to deliver the
// queued events.
package ecs
