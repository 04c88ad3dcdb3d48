package pinpoint

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	Debug  bool
}

// Run opens a window and drives scene until the window closes.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = defaultViewportW
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultViewportH
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	scene.camera.SetViewport(Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)})
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	if err := ebiten.RunGame(&gameShell{scene: scene}); err != nil {
		return fmt.Errorf("pinpoint: run: %w", err)
	}
	return nil
}

// gameShell adapts a Scene to ebiten.Game.
type gameShell struct {
	scene *Scene
}

func (g *gameShell) Update() error {
	g.scene.Update()
	return nil
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *gameShell) Layout(w, h int) (int, int) {
	vp := g.scene.camera.Viewport
	if vp.Width != float64(w) || vp.Height != float64(h) {
		g.scene.camera.SetViewport(Rect{Width: float64(w), Height: float64(h)})
	}
	return w, h
}
