//go:build ebiten

package render

import (
	"image/color"

	"lightsout/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads cell values into a one-pixel-per-cell image and draws it
// scaled up, so each cell becomes a filled rectangle.
type GridPainter struct {
	w, h    int
	colors  int
	palette []color.RGBA
	img     *ebiten.Image
	buf     []byte
}

// NewGridPainter returns an empty painter; images are allocated on first Blit.
func NewGridPainter() *GridPainter {
	return &GridPainter{}
}

// Blit draws the grid of st onto dst with the given cell size in pixels.
func (gp *GridPainter) Blit(dst *ebiten.Image, st core.State, cellSize int) {
	g := st.Grid
	if g == nil {
		return
	}
	gp.ensure(g.W, g.H, st.Config.Colors)
	fillPaletteRGBA(gp.buf, g.Cells(), gp.palette)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)
}

func (gp *GridPainter) ensure(w, h, colors int) {
	if gp.img == nil || gp.w != w || gp.h != h {
		if gp.img != nil {
			gp.img.Dispose()
		}
		gp.w, gp.h = w, h
		gp.img = ebiten.NewImage(w, h)
		gp.buf = make([]byte, 4*w*h)
	}
	if gp.colors != colors {
		gp.colors = colors
		gp.palette = Palette(colors)
	}
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
