package pinpoint

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// PopupEventType identifies a popup lifecycle transition.
type PopupEventType uint8

const (
	PopupOpened   PopupEventType = iota // Open started the fade-in
	PopupShown                          // the fade-in completed
	PopupClosing                        // Close started the fade-out
	PopupClosed                         // the fade-out completed without removal
	PopupDetached                       // the fade-out completed and the popup left its marker
)

// PopupEvent carries a popup lifecycle transition for the ECS bridge.
type PopupEvent struct {
	Type     PopupEventType
	MarkerID string
	NodeID   uint32
}

// EventStore is the interface for optional ECS integration.
// When set on a Scene, popup lifecycle events are forwarded to it.
type EventStore interface {
	EmitPopupEvent(event PopupEvent)
}

// LinkOpener follows a marker link. newTab asks for a new navigation context.
type LinkOpener func(url string, newTab bool)

const defaultViewportW, defaultViewportH = 640, 480

// Scene is the top-level object that owns the node tree, the camera, the
// animation driver, the dismiss channel and input state.
type Scene struct {
	root     *Node
	camera   *Camera
	animator *Animator
	dismiss  DismissChannel
	store    EventStore
	opener   LinkOpener
	debug    bool

	// logger in effect before debug mode replaced it
	savedLogger zerolog.Logger

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	// Input state
	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	keyBuf       []ebiten.Key
	injectQueue  []syntheticEvent
	testRunner   *TestRunner
}

// NewScene creates a new scene with a pre-created root container and a
// default camera.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		root:     root,
		camera:   NewCamera(Rect{Width: defaultViewportW, Height: defaultViewportH}),
		animator: NewAnimator(),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Camera returns the scene camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// SetCamera replaces the scene camera. A nil camera is ignored.
func (s *Scene) SetCamera(cam *Camera) {
	if cam != nil {
		s.camera = cam
	}
}

// Animator returns the scene's animation driver.
func (s *Scene) Animator() *Animator {
	return s.animator
}

// Dismiss returns the scene's dismiss channel.
func (s *Scene) Dismiss() *DismissChannel {
	return &s.dismiss
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EventStore) {
	s.store = store
}

// SetLinkOpener sets the function that follows marker links when a popup
// is clicked.
func (s *Scene) SetLinkOpener(fn LinkOpener) {
	s.opener = fn
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth warnings are logged and the package logger
// writes debug output to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	switch {
	case enabled && !s.debug:
		s.savedLogger = logger
		SetLogger(newDebugLogger())
	case !enabled && s.debug:
		SetLogger(s.savedLogger)
	}
	s.debug = enabled
	globalDebug = enabled
}

// Update advances the scene by one tick at the current TPS.
func (s *Scene) Update() {
	s.UpdateDelta(time.Second / time.Duration(ebiten.TPS()))
}

// UpdateDelta refreshes transforms and overlay placement, processes input
// and advances animations by dt.
func (s *Scene) UpdateDelta(dt time.Duration) {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.refresh()
	s.processInput()
	s.animator.Update(dt)
}

// refresh recomputes world transforms and projects overlays.
func (s *Scene) refresh() {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.layoutOverlays(s.root)
}

func (s *Scene) emitPopupEvent(typ PopupEventType, markerID string, node *Node) {
	if s.store == nil {
		return
	}
	s.store.EmitPopupEvent(PopupEvent{Type: typ, MarkerID: markerID, NodeID: node.ID})
}
