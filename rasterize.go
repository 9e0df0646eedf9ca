package chisel

import (
	"fmt"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// RasterizeText renders a single line of text with the bundled monospace
// face and thresholds the result into a Bitmap suitable for
// NewSimulation: text pixels protected, everything else carveable.
//
// fontSize is in points at 72 DPI, so it equals the approximate glyph
// height in cells. The bitmap gets a small margin around the text; add
// breathing room with Params.Padding rather than a larger margin.
func RasterizeText(text string, fontSize float64) (*Bitmap, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("rasterize: empty text")
	}
	if fontSize <= 0 {
		return nil, fmt.Errorf("rasterize: font size %.1f must be positive", fontSize)
	}

	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("rasterize: parse font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	// Measure with a throwaway context, then draw centered.
	meas := gg.NewContext(1, 1)
	meas.SetFontFace(face)
	textW, textH := meas.MeasureString(text)

	margin := int(fontSize/4) + 1
	width := int(textW) + 2*margin
	height := int(textH) + 2*margin

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)
	dc.SetFontFace(face)
	dc.DrawStringAnchored(text, float64(width)/2, float64(height)/2, 0.5, 0.5)

	return BitmapFromImage(dc.Image(), 128), nil
}
