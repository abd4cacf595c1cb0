//go:build ebiten

package ui

import (
	"image/color"

	"lightsout/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the mode label, win message, prompt line and notices.
type Overlay struct {
	showMode bool
}

// NewOverlay constructs an overlay; the mode label is shown by default.
func NewOverlay() *Overlay {
	return &Overlay{showMode: true}
}

// ToggleModeLabel shows or hides the mode label.
func (o *Overlay) ToggleModeLabel() { o.showMode = !o.showMode }

// Draw renders the overlay onto the grid area of screen.
func (o *Overlay) Draw(screen *ebiten.Image, f Frame) {
	face := basicfont.Face7x13
	if o.showMode {
		label := "Mode: " + f.State.Config.Mode.String()
		o.drawLabel(screen, label, 6, 6)
	}
	if f.State.Solved() {
		b := text.BoundString(face, WinMessage)
		x := (f.Width - b.Dx()) / 2
		y := (f.Height + b.Dy()) / 2
		o.drawLabel(screen, WinMessage, x, y-b.Dy())
	}
	if f.PromptLabel != "" {
		line := f.PromptLabel + " " + f.PromptInput + "_"
		o.drawBar(screen, line, f.Width, f.Height-2*barHeight)
	}
	if f.Notice != "" {
		o.drawBar(screen, f.Notice, f.Width, f.Height-barHeight)
	}
}

func (o *Overlay) drawLabel(screen *ebiten.Image, s string, x, y int) {
	face := basicfont.Face7x13
	b := text.BoundString(face, s)
	vector.DrawFilledRect(screen, float32(x-4), float32(y-2), float32(b.Dx()+8), float32(b.Dy()+6), color.RGBA{A: 180}, false)
	text.Draw(screen, s, face, x, y+b.Dy(), render.Foreground)
}

func (o *Overlay) drawBar(screen *ebiten.Image, s string, width, y int) {
	if y < 0 {
		y = 0
	}
	vector.DrawFilledRect(screen, 0, float32(y), float32(width), barHeight, color.RGBA{R: 16, G: 16, B: 20, A: 220}, false)
	text.Draw(screen, s, basicfont.Face7x13, 6, y+barHeight-6, render.Foreground)
}

const barHeight = 20
