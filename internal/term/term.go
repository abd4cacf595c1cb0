// Package term plays the puzzle inside a terminal using tcell. Each cell is
// two columns wide and one row tall; status lines sit below the grid.
package term

import (
	"fmt"
	"image/color"
	"time"

	"lightsout/internal/core"
	"lightsout/internal/game"
	"lightsout/internal/render"
	"lightsout/internal/ui"

	"github.com/gdamore/tcell/v2"
)

const (
	cellCols = 2
	cellRows = 1

	tickInterval = time.Second / 60
)

// View draws a session onto a tcell screen and dispatches its events.
type View struct {
	screen tcell.Screen
	ctrl   *game.Controller

	colors  int
	palette []tcell.Style

	lastButtons tcell.ButtonMask
}

// New wraps an initialised screen.
func New(screen tcell.Screen, ctrl *game.Controller) *View {
	screen.EnableMouse()
	return &View{screen: screen, ctrl: ctrl}
}

// Run draws and handles events until the player quits or the screen closes.
func (v *View) Run() error {
	done := make(chan struct{})
	defer close(done)
	go v.tick(done)

	for {
		v.Draw()
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if v.Handle(ev) {
			return nil
		}
	}
}

func (v *View) tick(done <-chan struct{}) {
	t := time.NewTicker(tickInterval)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-t.C:
			if err := v.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
				// Queue full; skip this tick.
				continue
			}
		}
	}
}

// Handle applies one event and reports whether the view should exit.
func (v *View) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		v.ctrl.Tick()
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev)
	}
	return false
}

func (v *View) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		return v.ctrl.Escape()
	case tcell.KeyEnter:
		v.ctrl.Enter()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		v.ctrl.Backspace()
	case tcell.KeyRune:
		return v.ctrl.Key(ev.Rune())
	}
	return false
}

func (v *View) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons() & (tcell.Button1 | tcell.Button2)
	pressed := buttons &^ v.lastButtons
	v.lastButtons = buttons
	if pressed == 0 {
		return
	}
	px, py := ev.Position()
	x, y := game.CellAt(float64(px), float64(py), 1, 1, cellCols, cellRows)
	reverse := pressed&tcell.Button2 != 0 || ev.Modifiers()&tcell.ModShift != 0
	v.ctrl.Click(x, y, reverse)
}

// Draw renders the grid and status lines.
func (v *View) Draw() {
	st := v.ctrl.Session.State()
	v.ensurePalette(st.Config.Colors)
	v.screen.Clear()

	g := st.Grid
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			style := v.palette[g.At(x, y)]
			for c := 0; c < cellCols; c++ {
				v.screen.SetContent(x*cellCols+c, y*cellRows, ' ', nil, style)
			}
		}
	}

	row := g.H * cellRows
	status := fmt.Sprintf("Mode: %s  Colors: %d  Moves: %d", st.Config.Mode, st.Config.Colors, v.ctrl.Session.Moves())
	if st.Solved() {
		status += "  " + ui.WinMessage
	}
	v.drawText(0, row, status, tcell.StyleDefault.Bold(st.Solved()))
	if p := v.ctrl.Prompt(); p != nil {
		v.drawText(0, row+1, p.Label()+" "+p.Input()+"_", tcell.StyleDefault)
	}
	if n := v.ctrl.Notice(); n != "" {
		v.drawText(0, row+2, n, tcell.StyleDefault.Reverse(true))
	}
	v.screen.Show()
}

func (v *View) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (v *View) ensurePalette(colors int) {
	if v.colors == colors && v.palette != nil {
		return
	}
	v.colors = colors
	pal := render.Palette(colors)
	v.palette = make([]tcell.Style, core.MaxColors)
	for i := range v.palette {
		c := pal[len(pal)-1]
		if i < len(pal) {
			c = pal[i]
		}
		v.palette[i] = tcell.StyleDefault.Background(toTcell(c))
	}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
