package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/pinpoint"

	"github.com/yohamta/donburi"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitPopupEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []pinpoint.PopupEvent
	PopupEventType.Subscribe(world, func(w donburi.World, e pinpoint.PopupEvent) {
		received = append(received, e)
	})

	store.EmitPopupEvent(pinpoint.PopupEvent{Type: pinpoint.PopupOpened, MarkerID: "a", NodeID: 7})
	store.EmitPopupEvent(pinpoint.PopupEvent{Type: pinpoint.PopupDetached, MarkerID: "a", NodeID: 7})

	// Events are queued; process them.
	PopupEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != pinpoint.PopupOpened || received[0].MarkerID != "a" || received[0].NodeID != 7 {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Type != pinpoint.PopupDetached {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestSceneForwardsPopupLifecycle(t *testing.T) {
	world := donburi.NewWorld()
	scene := pinpoint.NewScene()
	scene.SetEntityStore(NewDonburiStore(world))

	var types []pinpoint.PopupEventType
	PopupEventType.Subscribe(world, func(w donburi.World, e pinpoint.PopupEvent) {
		if e.MarkerID != "m1" {
			t.Errorf("MarkerID = %q, want m1", e.MarkerID)
		}
		types = append(types, e.Type)
	})

	m := pinpoint.NewMarker(scene, "m1")
	m.Label = "hello"
	scene.Root().AddChild(m.Node())
	m.OnClick(pinpoint.ClickEvent{})

	scene.Animator().Update(time.Second)
	m.Popup().Close(true)
	scene.Animator().Update(time.Second)

	PopupEventType.ProcessEvents(world)

	want := []pinpoint.PopupEventType{
		pinpoint.PopupOpened,
		pinpoint.PopupShown,
		pinpoint.PopupClosing,
		pinpoint.PopupDetached,
	}
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}
