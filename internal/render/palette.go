package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	paletteSaturation = 1.0
	paletteLightness  = 0.5
)

var (
	// Background fills the surface behind the cells.
	Background = color.RGBA{A: 255}
	// Foreground is used for text drawn over the grid.
	Foreground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Palette returns one color per cell value. Two colors render as black and
// white; larger counts are spread evenly around the hue wheel.
func Palette(colors int) []color.RGBA {
	if colors <= 0 {
		return nil
	}
	if colors == 2 {
		return []color.RGBA{
			{R: 0, G: 0, B: 0, A: 255},
			{R: 255, G: 255, B: 255, A: 255},
		}
	}
	palette := make([]color.RGBA, colors)
	for i := range palette {
		hue := float64(i * 360 / colors)
		r, g, b := colorful.Hsl(hue, paletteSaturation, paletteLightness).Clamped().RGB255()
		palette[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return palette
}
