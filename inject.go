package pinpoint

import "github.com/hajimehoshi/ebiten/v2"

type syntheticKind uint8

const (
	syntheticPointer syntheticKind = iota
	syntheticTouch
	syntheticKey
	syntheticWheel
)

// syntheticEvent represents a single injected input event in screen
// coordinates.
type syntheticEvent struct {
	kind             syntheticKind
	screenX, screenY float64
	pressed          bool
	key              ebiten.Key
}

// InjectPointerDown queues a mouse press at the given screen coordinates.
// Each queued event is consumed by one Update and replaces real input for
// that frame.
func (s *Scene) InjectPointerDown(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticPointer, screenX: x, screenY: y, pressed: true})
}

// InjectPointerUp queues a mouse release at the given screen coordinates.
func (s *Scene) InjectPointerUp(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticPointer, screenX: x, screenY: y})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPointerDown(x, y)
	s.InjectPointerUp(x, y)
}

// InjectTouch queues a tap (touch start then end) at the given screen
// coordinates. Consumes two frames.
func (s *Scene) InjectTouch(x, y float64) {
	s.injectQueue = append(s.injectQueue,
		syntheticEvent{kind: syntheticTouch, screenX: x, screenY: y, pressed: true},
		syntheticEvent{kind: syntheticTouch, screenX: x, screenY: y},
	)
}

// InjectKey queues a key press.
func (s *Scene) InjectKey(key ebiten.Key) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticKey, key: key})
}

// InjectWheel queues a wheel scroll with the cursor at the given screen
// coordinates.
func (s *Scene) InjectWheel(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticWheel, screenX: x, screenY: y})
}

// PendingInjections returns the number of queued synthetic events.
func (s *Scene) PendingInjections() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the same paths as real input. Returns true if an event was
// consumed (real input should be skipped).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticPointer:
		s.processPointer(0, evt.screenX, evt.screenY, evt.pressed, DismissPointerDown)
	case syntheticTouch:
		// Slot 1 is the first touch slot; synthetic taps never overlap.
		s.processPointer(1, evt.screenX, evt.screenY, evt.pressed, DismissTouchStart)
	case syntheticKey:
		logger.Debug().Stringer("key", evt.key).Msg("injected key")
		s.dispatchDismiss(DismissKeyDown, 0, 0, nil)
	case syntheticWheel:
		s.dispatchDismiss(DismissWheel, evt.screenX, evt.screenY, s.overlaysAt(evt.screenX, evt.screenY))
	}
	return true
}
