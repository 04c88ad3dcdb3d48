package pinpoint

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw renders marker dots and then overlay elements on top of them.
// Positions come from the last Update.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.RGBA(1))
	}
	s.drawMarkers(screen, s.root)
	s.drawOverlays(screen, s.root)
}

func (s *Scene) drawMarkers(screen *ebiten.Image, n *Node) {
	if !n.Visible {
		return
	}
	if n.Type == NodeTypeMarker && n.Radius > 0 && n.worldAlpha > 0 {
		if sx, sy, ok := s.camera.WorldToScreen(n.WorldPosition()); ok {
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(n.Radius),
				n.Color.RGBA(n.worldAlpha), true)
		}
	}
	for _, child := range n.children {
		s.drawMarkers(screen, child)
	}
}

func (s *Scene) drawOverlays(screen *ebiten.Image, n *Node) {
	if !n.Visible {
		return
	}
	if e := n.Element; e != nil && e.onScreen {
		if alpha := n.worldAlpha * e.Opacity; alpha > 0 {
			drawElement(screen, e, alpha)
		}
	}
	for _, child := range n.children {
		s.drawOverlays(screen, child)
	}
}

func drawElement(screen *ebiten.Image, e *Element, alpha float64) {
	b := e.Bounds
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height),
		e.Background.RGBA(alpha), false)

	x, y := b.X+overlayPadding, b.Y+overlayPadding
	if e.Font == nil {
		ebitenutil.DebugPrintAt(screen, e.Text, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(e.Foreground.RGBA(alpha))
	op.LineSpacing = e.Font.LineHeight()
	text.Draw(screen, e.Text, e.Font.Face(), op)
}
