//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"lightsout/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Board is the parameter surface the HUD edits.
type Board interface {
	Parameters() core.ParameterSnapshot
	core.ParameterControlsProvider
	core.IntParameterSetter
}

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	textColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	helpColor   = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
)

// stepper is one labelled value with - and + buttons.
type stepper struct {
	control core.ParameterControl
	value   int
	top     int
	minus   image.Rectangle
	plus    image.Rectangle
}

// HUD renders the board panel to the right of the grid and turns clicks on
// its +/- buttons into parameter changes.
type HUD struct {
	board    Board
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	snapshot core.ParameterSnapshot
	steppers []stepper
}

// NewHUD builds a panel of the given width for board.
func NewHUD(board Board, width int) *HUD {
	h := &HUD{board: board, width: max(width, 0)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	for i, ctrl := range board.ParameterControls() {
		top := controlsTop + i*lineHeight
		y := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, y, h.width-panelPadding, y+buttonSize)
		minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
		h.steppers = append(h.steppers, stepper{control: ctrl, top: top, minus: minus, plus: plus})
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the values shown and applies a button click. offsetX is
// the panel's left edge in screen pixels. It reports whether the click landed
// on the panel.
func (h *HUD) Update(offsetX int) bool {
	if h == nil {
		return false
	}
	h.snapshot = h.board.Parameters()
	for i := range h.steppers {
		s := &h.steppers[i]
		if p, ok := h.snapshot.Lookup(s.control.Key); ok {
			s.value, _ = strconv.Atoi(p.Value)
		}
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < offsetX {
		return false
	}
	pt := image.Pt(mx-offsetX, my)
	for i := range h.steppers {
		s := &h.steppers[i]
		switch {
		case pt.In(s.minus):
			h.adjust(s, -1)
		case pt.In(s.plus):
			h.adjust(s, 1)
		}
	}
	return true
}

func (h *HUD) adjust(s *stepper, dir int) {
	if !s.canStep(dir) {
		return
	}
	target := s.value + dir*s.step()
	if h.board.SetIntParameter(s.control.Key, target) {
		s.value = target
	}
}

func (s *stepper) step() int {
	if s.control.Step <= 0 {
		return 1
	}
	return s.control.Step
}

func (s *stepper) canStep(dir int) bool {
	target := s.value + dir*s.step()
	return target == s.control.Clamp(target)
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width == 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	text.Draw(h.panel, "Board", face, panelPadding, panelPadding+headerBaseline, dimColor)
	for i := range h.steppers {
		s := &h.steppers[i]
		y := s.top + labelBaseline
		value := strconv.Itoa(s.value)
		text.Draw(h.panel, s.control.Label, face, panelPadding, y, textColor)
		text.Draw(h.panel, value, face, s.minus.Min.X-buttonGap-text.BoundString(face, value).Dx(), y, textColor)
		h.drawButton(s.minus, "-", s.canStep(-1))
		h.drawButton(s.plus, "+", s.canStep(1))
	}

	// Read-only values, then key help.
	y := controlsTop + len(h.steppers)*lineHeight + lineHeight/2
	for _, group := range h.snapshot.Groups {
		for _, p := range group.Params {
			if p.Type == core.ParamTypeInt && h.stepperFor(p.Key) {
				continue
			}
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding, y, dimColor)
			y += lineHeight / 2
		}
	}
	for _, line := range helpLines {
		y += lineHeight / 2
		text.Draw(h.panel, line, face, panelPadding, y, helpColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) stepperFor(key string) bool {
	for i := range h.steppers {
		if h.steppers[i].control.Key == key {
			return true
		}
	}
	return false
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(buttonColor)
	fg := color.Color(textColor)
	if !enabled {
		op.ColorScale.Scale(0.6, 0.6, 0.6, 1)
		fg = helpColor
	}
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	text.Draw(h.panel, label, face, rect.Min.X+(rect.Dx()-b.Dx())/2, rect.Min.Y+(rect.Dy()+b.Dy())/2, fg)
}

var helpLines = []string{
	"click: toggle",
	"shift/right: reverse",
	"r: rescramble",
	"i: resize  c: colors",
	"m: mode  q: quit",
}

const (
	// PanelWidth is the default HUD width in pixels.
	PanelWidth = 180

	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 14
)
