package pinpoint

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is the 3D vector used for positions, offsets and directions
// throughout the API.
type Vec3 = mgl64.Vec3

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// RGBA returns the premultiplied 8-bit form of c with its alpha scaled by
// alpha.
func (c Color) RGBA(alpha float64) color.RGBA {
	a := clamp01(c.A * alpha)
	return color.RGBA{
		R: uint8(clamp01(c.R) * a * 255),
		G: uint8(clamp01(c.G) * a * 255),
		B: uint8(clamp01(c.B) * a * 255),
		A: uint8(a * 255),
	}
}

// Rect is an axis-aligned screen rectangle. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeMarker                    // point of interest drawn as a dot
	NodeTypeOverlay                   // screen-space element anchored to a 3D point
)

// DismissKind identifies one of the global interaction events that close an
// auto-closing popup.
type DismissKind uint8

const (
	DismissPointerDown DismissKind = iota // a mouse button was pressed
	DismissTouchStart                     // a new touch began
	DismissKeyDown                        // a key was pressed
	DismissWheel                          // the wheel was scrolled

	numDismissKinds = 4
)

// AllDismissKinds lists every dismiss kind in dispatch order.
var AllDismissKinds = []DismissKind{
	DismissPointerDown,
	DismissTouchStart,
	DismissKeyDown,
	DismissWheel,
}

func (k DismissKind) String() string {
	switch k {
	case DismissPointerDown:
		return "pointerdown"
	case DismissTouchStart:
		return "touchstart"
	case DismissKeyDown:
		return "keydown"
	case DismissWheel:
		return "wheel"
	default:
		return "unknown"
	}
}

// Phase is the lifecycle state of a LabelPopup.
type Phase uint8

const (
	PhaseClosed   Phase = iota // not shown; initial state
	PhaseOpening               // fade-in animation running
	PhaseOpen                  // fully shown, waiting for dismissal
	PhaseClosing               // fade-out animation running
	PhaseDetached              // closed and removed from its marker (terminal)
)

func (p Phase) String() string {
	switch p {
	case PhaseClosed:
		return "closed"
	case PhaseOpening:
		return "opening"
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	case PhaseDetached:
		return "detached"
	default:
		return "unknown"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
