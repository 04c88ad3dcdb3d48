package pinpoint

import (
	"fmt"
	"html"
	"unicode/utf8"
)

// LabelPopupClass is the element class given to marker label popups.
const LabelPopupClass = "pp-marker-labelpopup"

const (
	overlayPadding = 6 // pixels around the content
	overlayGap     = 8 // pixels between the anchor and the element's bottom edge

	// Fallback metrics when no font is available.
	fallbackGlyphWidth = 7
	fallbackLineHeight = 16
)

// Element is the screen-space part of an overlay node: a box with text that
// follows the projection of its node's world position.
type Element struct {
	Class string
	// Text is the raw content. It is never interpreted as markup.
	Text string
	// Opacity is the element's own opacity in [0, 1], independent of the
	// node's Alpha.
	Opacity    float64
	Background Color
	Foreground Color
	Font       *Font

	// Bounds is the screen rectangle as of the last scene update.
	Bounds Rect

	onScreen bool
	width    float64
	height   float64
}

func newElement(class, content string) *Element {
	e := &Element{
		Class:      class,
		Text:       content,
		Opacity:    1,
		Background: Color{0.1, 0.1, 0.12, 0.85},
		Foreground: ColorWhite,
		Font:       DefaultFont(),
	}
	e.measure()
	return e
}

// Markup renders the element as an HTML fragment with the text escaped.
func (e *Element) Markup() string {
	return fmt.Sprintf(`<div class="%s">%s</div>`, html.EscapeString(e.Class), html.EscapeString(e.Text))
}

// OnScreen reports whether the anchor projected in front of the camera on
// the last update.
func (e *Element) OnScreen() bool {
	return e.onScreen
}

// Size returns the element's box size including padding.
func (e *Element) Size() (w, h float64) {
	return e.width, e.height
}

// SetText replaces the content and re-measures the box.
func (e *Element) SetText(s string) {
	e.Text = s
	e.measure()
}

func (e *Element) measure() {
	var w, h float64
	if e.Font != nil {
		w, h = e.Font.MeasureString(e.Text)
	} else {
		w = float64(utf8.RuneCountInString(e.Text)) * fallbackGlyphWidth
		h = fallbackLineHeight
	}
	e.width = w + 2*overlayPadding
	e.height = h + 2*overlayPadding
}

// place centres the element horizontally on (sx, sy) with its bottom edge
// overlayGap pixels above it.
func (e *Element) place(sx, sy float64) {
	e.Bounds = Rect{
		X:      sx - e.width/2,
		Y:      sy - overlayGap - e.height,
		Width:  e.width,
		Height: e.height,
	}
}

// NewOverlay creates an overlay node that shows content in a screen-space
// box anchored at the node's world position.
func NewOverlay(name, class, content string) *Node {
	n := &Node{Name: name, Type: NodeTypeOverlay, Element: newElement(class, content)}
	nodeDefaults(n)
	return n
}

// layoutOverlays projects every visible overlay anchor under n and places
// its element. World transforms must be current.
func (s *Scene) layoutOverlays(n *Node) {
	if !n.Visible {
		hideOverlays(n)
		return
	}
	if n.Type == NodeTypeOverlay && n.Element != nil {
		sx, sy, ok := s.camera.WorldToScreen(n.WorldPosition())
		n.Element.onScreen = ok
		if ok {
			n.Element.place(sx, sy)
		}
	}
	for _, child := range n.children {
		s.layoutOverlays(child)
	}
}

func hideOverlays(n *Node) {
	if n.Element != nil {
		n.Element.onScreen = false
	}
	for _, child := range n.children {
		hideOverlays(child)
	}
}

// overlaysAt returns the overlay nodes whose element contains (x, y),
// topmost (last drawn) first.
func (s *Scene) overlaysAt(x, y float64) []*Node {
	var path []*Node
	s.collectOverlaysAt(s.root, x, y, &path)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (s *Scene) collectOverlaysAt(n *Node, x, y float64, path *[]*Node) {
	if !n.Visible {
		return
	}
	if n.Element != nil && n.Element.onScreen && n.Element.Bounds.Contains(x, y) {
		*path = append(*path, n)
	}
	for _, child := range n.children {
		s.collectOverlaysAt(child, x, y, path)
	}
}
