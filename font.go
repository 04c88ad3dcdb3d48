package pinpoint

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// defaultFontSize is the popup label size in pixels.
const defaultFontSize = 14

// Font wraps Ebitengine's text/v2 for measuring and drawing popup labels.
type Font struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// LoadFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("pinpoint: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	return &Font{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

var defaultFont *Font

// DefaultFont returns the built-in Go Regular font at the default size.
// Returns nil only if the embedded font fails to parse.
func DefaultFont() *Font {
	if defaultFont != nil {
		return defaultFont
	}
	f, err := LoadFont(goregular.TTF, defaultFontSize)
	if err != nil {
		logger.Error().Err(err).Msg("load default font")
		return nil
	}
	defaultFont = f
	return f
}

// MeasureString returns the width and height of the rendered text.
func (f *Font) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct text/v2 rendering.
func (f *Font) Face() *text.GoTextFace {
	return f.face
}
