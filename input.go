package pinpoint

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Constants ---

const (
	maxPointers = 10 // pointer 0 = mouse, 1-9 = touch
	hitEpsilon  = 1e-12
)

// --- Built-in HitShape types ---

// HitSphere is a spherical hit area in local coordinates.
type HitSphere struct {
	Center Vec3
	Radius float64
}

// Intersect reports the nearest point where the ray enters the sphere. A ray
// starting inside the sphere hits where it exits.
func (h HitSphere) Intersect(origin, dir Vec3) (Intersection, bool) {
	oc := origin.Sub(h.Center)
	a := dir.Dot(dir)
	if a < hitEpsilon {
		return Intersection{}, false
	}
	b := 2 * oc.Dot(dir)
	c := oc.Dot(oc) - h.Radius*h.Radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return Intersection{}, false
	}
	sq := math.Sqrt(disc)
	t := (-b - sq) / (2 * a)
	if t < 0 {
		t = (-b + sq) / (2 * a)
	}
	if t < 0 {
		return Intersection{}, false
	}
	return Intersection{Point: origin.Add(dir.Mul(t)), Distance: t}, true
}

// HitSegment is a line-like hit area from A to B in local coordinates. A ray
// hits when it passes within Threshold of the segment; the intersection
// carries the closest point on the segment as PointOnLine.
type HitSegment struct {
	A, B      Vec3
	Threshold float64
}

// Intersect finds the closest approach between the ray and the segment.
func (h HitSegment) Intersect(origin, dir Vec3) (Intersection, bool) {
	d2 := h.B.Sub(h.A)
	r := origin.Sub(h.A)
	a := dir.Dot(dir)
	e := d2.Dot(d2)
	f := d2.Dot(r)
	if a < hitEpsilon {
		return Intersection{}, false
	}
	c := dir.Dot(r)

	var s, t float64
	if e < hitEpsilon {
		s = math.Max(0, -c/a)
	} else {
		b := dir.Dot(d2)
		denom := a*e - b*b
		if denom > hitEpsilon {
			s = math.Max(0, (b*f-c*e)/denom)
		}
		t = (b*s + f) / e
		if t < 0 {
			t = 0
			s = math.Max(0, -c/a)
		} else if t > 1 {
			t = 1
			s = math.Max(0, (b-c)/a)
		}
	}

	onRay := origin.Add(dir.Mul(s))
	onLine := h.A.Add(d2.Mul(t))
	if onRay.Sub(onLine).Len() > h.Threshold {
		return Intersection{}, false
	}
	return Intersection{Point: onRay, PointOnLine: &onLine, Distance: s}, true
}

// --- Per-pointer state ---

type pointerState struct {
	down    bool
	hitNode *Node
	lastX   float64
	lastY   float64
}

// --- Picking ---

// pick finds the nearest interactable node under the screen point and the
// world-space intersection with it. Skips Visible=false or
// Interactable=false subtrees.
func (s *Scene) pick(sx, sy float64) (*Node, *Intersection) {
	origin, dir := s.camera.ScreenRay(sx, sy)
	var best *Node
	var bestHit Intersection
	s.pickNode(s.root, origin, dir, &best, &bestHit)
	if best == nil {
		return nil, nil
	}
	return best, &bestHit
}

func (s *Scene) pickNode(n *Node, origin, dir Vec3, best **Node, bestHit *Intersection) {
	if !n.Visible || !n.Interactable {
		return
	}
	if n.HitShape != nil {
		lo, ld := n.rayToLocal(origin, dir)
		if hit, ok := n.HitShape.Intersect(lo, ld); ok && (*best == nil || hit.Distance < bestHit.Distance) {
			hit.Point = n.LocalToWorld(hit.Point)
			if hit.PointOnLine != nil {
				p := n.LocalToWorld(*hit.PointOnLine)
				hit.PointOnLine = &p
			}
			*best = n
			*bestHit = hit
		}
	}
	for _, child := range n.children {
		s.pickNode(child, origin, dir, best, bestHit)
	}
}

// targetAt resolves what a pointer at (sx, sy) is over. Overlays sit above
// the 3D scene, so the topmost overlay in path wins.
func (s *Scene) targetAt(sx, sy float64, path []*Node) (*Node, *Intersection) {
	if len(path) > 0 {
		return path[0], nil
	}
	return s.pick(sx, sy)
}

// --- Input processing ---

// processInput is called from Scene.Update to turn raw input into dismiss
// events and clicks. World transforms and overlay bounds are already
// refreshed. An injected event replaces real input for the frame.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	s.processMousePointer()
	s.processTouchPointers()
	s.processKeys()
	s.processWheel()
}

// processMousePointer handles mouse input (pointer 0).
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	s.processPointer(0, float64(mx), float64(my), pressed, DismissPointerDown)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true, DismissTouchStart)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false, DismissTouchStart)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processKeys turns every key pressed this frame into a dismiss event.
func (s *Scene) processKeys() {
	s.keyBuf = inpututil.AppendJustPressedKeys(s.keyBuf[:0])
	for range s.keyBuf {
		s.dispatchDismiss(DismissKeyDown, 0, 0, nil)
	}
}

// processWheel turns wheel movement into a dismiss event at the cursor.
func (s *Scene) processWheel() {
	dx, dy := ebiten.Wheel()
	if dx == 0 && dy == 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	s.dispatchDismiss(DismissWheel, x, y, s.overlaysAt(x, y))
}

// processPointer runs the press/release state machine for a single pointer.
// A press dispatches a dismiss event of the given kind; a release over the
// node that received the press is a click.
func (s *Scene) processPointer(pointerID int, x, y float64, pressed bool, kind DismissKind) {
	ps := &s.pointers[pointerID]

	if pressed && !ps.down {
		path := s.overlaysAt(x, y)
		s.dispatchDismiss(kind, x, y, path)
		// Dismissal may have detached overlays; resolve the target afterwards.
		target, _ := s.targetAt(x, y, s.overlaysAt(x, y))
		ps.down = true
		ps.hitNode = target
	} else if !pressed && ps.down {
		target, hit := s.targetAt(x, y, s.overlaysAt(x, y))
		if ps.hitNode != nil && ps.hitNode == target {
			s.fireClick(target, hit, x, y, pointerID)
		}
		ps.down = false
		ps.hitNode = nil
	}
	ps.lastX = x
	ps.lastY = y
}

// --- Event dispatch ---

func (s *Scene) dispatchDismiss(kind DismissKind, x, y float64, path []*Node) {
	logger.Debug().Stringer("kind", kind).Int("path", len(path)).Msg("dismiss event")
	s.dismiss.Dispatch(DismissEvent{Kind: kind, Path: path, ScreenX: x, ScreenY: y})
}

// fireClick delivers a click to node and bubbles it up the parent chain
// until a handler reports it handled.
func (s *Scene) fireClick(node *Node, hit *Intersection, x, y float64, pointerID int) {
	ev := ClickEvent{Node: node, Intersection: hit, ScreenX: x, ScreenY: y, PointerID: pointerID}
	for n := node; n != nil; n = n.Parent {
		if n.OnClick == nil {
			continue
		}
		if n.OnClick(ev) {
			logger.Debug().Str("node", n.Name).Msg("click handled")
			return
		}
	}
}
