//go:build ebiten

package app

import (
	"lightsout/internal/game"
	"lightsout/internal/render"
	"lightsout/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a puzzle session to the ebiten.Game interface.
type Game struct {
	ctrl    *game.Controller
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	cellSize int
	chars    []rune
}

// New constructs a Game for the provided session with an initial cell size.
func New(sess *game.Session, cellSize int) *Game {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Game{
		ctrl:     game.NewController(sess),
		painter:  render.NewGridPainter(),
		hud:      ui.NewHUD(sess, ui.PanelWidth),
		overlay:  ui.NewOverlay(),
		cellSize: cellSize,
	}
}

// Update handles per-frame input.
func (g *Game) Update() error {
	g.ctrl.Tick()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.ctrl.Escape() {
		return ebiten.Termination
	}
	if g.ctrl.Prompt() == nil && inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.overlay.ToggleModeLabel()
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	enter := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
	if g.ctrl.Keys(g.chars, inpututil.IsKeyJustPressed(ebiten.KeyBackspace), enter) {
		return ebiten.Termination
	}

	gridW, _ := g.gridSize()
	if g.hud.Update(gridW) {
		return nil
	}
	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if left || right {
		mx, my := ebiten.CursorPosition()
		if mx < gridW {
			x, y := game.CellAt(float64(mx), float64(my), 1, 1, g.cellSize, g.cellSize)
			reverse := right || ebiten.IsKeyPressed(ebiten.KeyShift)
			g.ctrl.Click(x, y, reverse)
		}
	}
	return nil
}

// Draw renders the current puzzle state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	st := g.ctrl.Session.State()
	g.painter.Blit(screen, st, g.cellSize)

	gridW, gridH := g.gridSize()
	frame := ui.Frame{State: st, Width: gridW, Height: gridH, Notice: g.ctrl.Notice()}
	if p := g.ctrl.Prompt(); p != nil {
		frame.PromptLabel = p.Label()
		frame.PromptInput = p.Input()
	}
	g.overlay.Draw(screen, frame)
	g.hud.Draw(screen, gridW, gridH)
}

// Layout fits the largest square cells into the window and returns the
// logical screen size of the grid plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.ctrl.Session.Config().Size()
	g.cellSize = render.CellSize(outsideWidth-g.hud.Width(), outsideHeight, size.W, size.H)
	gridW, gridH := g.gridSize()
	return gridW + g.hud.Width(), gridH
}

// WindowSize returns the initial window size for the configured cell size.
func (g *Game) WindowSize() (int, int) {
	gridW, gridH := g.gridSize()
	return gridW + g.hud.Width(), gridH
}

func (g *Game) gridSize() (int, int) {
	size := g.ctrl.Session.Config().Size()
	return size.W * g.cellSize, size.H * g.cellSize
}
