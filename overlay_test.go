package pinpoint

import (
	"math"
	"testing"
)

func TestElementMeasure(t *testing.T) {
	e := newElement("c", "")
	w0, h0 := e.Size()
	if w0 < 2*overlayPadding || h0 < 2*overlayPadding {
		t.Errorf("empty size = (%v, %v), want at least padding", w0, h0)
	}
	e.SetText("A longer label")
	w1, _ := e.Size()
	if w1 <= w0 {
		t.Errorf("width %v should grow past %v after SetText", w1, w0)
	}
}

func TestElementMeasureWithoutFont(t *testing.T) {
	e := &Element{Text: "abcd"}
	e.measure()
	w, h := e.Size()
	if w != 4*fallbackGlyphWidth+2*overlayPadding {
		t.Errorf("width = %v", w)
	}
	if h != fallbackLineHeight+2*overlayPadding {
		t.Errorf("height = %v", h)
	}
}

func TestLayoutOverlayAboveAnchor(t *testing.T) {
	s := NewScene()
	ov := NewOverlay("ov", "c", "Label")
	s.Root().AddChild(ov)
	s.refresh()

	e := ov.Element
	if !e.OnScreen() {
		t.Fatal("overlay should be on screen")
	}
	w, h := e.Size()
	b := e.Bounds
	if b.Width != w || b.Height != h {
		t.Errorf("bounds size = (%v, %v), want (%v, %v)", b.Width, b.Height, w, h)
	}
	if math.Abs(b.X+b.Width/2-320) > 1e-6 {
		t.Errorf("centre x = %v, want 320", b.X+b.Width/2)
	}
	if math.Abs(b.Y+b.Height-(240-overlayGap)) > 1e-6 {
		t.Errorf("bottom = %v, want %v", b.Y+b.Height, 240-overlayGap)
	}
}

func TestLayoutOverlayFollowsParent(t *testing.T) {
	s := NewScene()
	parent := NewContainer("p")
	ov := NewOverlay("ov", "c", "Label")
	parent.AddChild(ov)
	s.Root().AddChild(parent)
	s.refresh()
	x0 := ov.Element.Bounds.X

	parent.SetPosition(1, 0, 0)
	s.refresh()
	if ov.Element.Bounds.X <= x0 {
		t.Errorf("overlay should move right with its parent: %v -> %v", x0, ov.Element.Bounds.X)
	}
}

func TestLayoutOverlayHiddenBehindCamera(t *testing.T) {
	s := NewScene()
	ov := NewOverlay("ov", "c", "Label")
	ov.SetPosition(0, 0, 50)
	s.Root().AddChild(ov)
	s.refresh()
	if ov.Element.OnScreen() {
		t.Error("overlay behind the camera should be hidden")
	}
	if got := s.overlaysAt(320, 230); len(got) != 0 {
		t.Errorf("hidden overlay should not be hit, got %d", len(got))
	}
}

func TestLayoutOverlayHiddenWithParent(t *testing.T) {
	s := NewScene()
	parent := NewContainer("p")
	ov := NewOverlay("ov", "c", "Label")
	parent.AddChild(ov)
	s.Root().AddChild(parent)
	s.refresh()

	parent.Visible = false
	s.refresh()
	if ov.Element.OnScreen() {
		t.Error("overlay under an invisible parent should be hidden")
	}
}

func TestOverlaysAtTopmostFirst(t *testing.T) {
	s := NewScene()
	bottom := NewOverlay("bottom", "c", "Label")
	top := NewOverlay("top", "c", "Label")
	s.Root().AddChild(bottom)
	s.Root().AddChild(top)
	s.refresh()

	b := top.Element.Bounds
	path := s.overlaysAt(b.X+b.Width/2, b.Y+b.Height/2)
	if len(path) != 2 {
		t.Fatalf("path length = %d, want 2", len(path))
	}
	if path[0] != top || path[1] != bottom {
		t.Errorf("path = [%s %s], want [top bottom]", path[0].Name, path[1].Name)
	}
	if got := s.overlaysAt(0, 0); len(got) != 0 {
		t.Errorf("corner should hit nothing, got %d", len(got))
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},
		{40, 60, true},
		{25, 40, true},
		{9.9, 40, false},
		{25, 60.1, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestColorRGBAPremultiplies(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 1}.RGBA(0.5)
	if c.A != 127 || c.R != 127 || c.G != 63 || c.B != 0 {
		t.Errorf("RGBA = %+v", c)
	}
	if z := ColorWhite.RGBA(0); z.A != 0 || z.R != 0 {
		t.Errorf("zero alpha = %+v", z)
	}
}
