package term

import (
	"strings"
	"testing"

	"lightsout/internal/core"
	"lightsout/internal/game"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newView(t *testing.T, cfg core.Config) (*View, tcell.SimulationScreen, *game.Session) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(60, 12)

	sess, err := game.NewSession(cfg, game.WithSeed(5), game.WithPolicy(func(int, int, int) int { return 0 }))
	require.NoError(t, err)
	return New(screen, game.NewController(sess)), screen, sess
}

func rowText(screen tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func background(screen tcell.SimulationScreen, x, y int) (int32, int32, int32) {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg.RGB()
}

func TestDrawGridAndStatus(t *testing.T) {
	v, screen, _ := newView(t, core.Config{Width: 3, Height: 2, Colors: 2, Mode: core.ModeCross})
	v.Draw()

	r, g, b := background(screen, 0, 0)
	assert.Equal(t, [3]int32{0, 0, 0}, [3]int32{r, g, b})
	assert.Equal(t, "Mode: CROSS  Colors: 2  Moves: 0  You won!", rowText(screen, 2, 60))
}

func TestMouseClickTogglesCell(t *testing.T) {
	v, screen, sess := newView(t, core.Config{Width: 3, Height: 3, Colors: 2, Mode: core.ModeCross})

	// Column 3 is the right half of cell x=1.
	assert.False(t, v.Handle(tcell.NewEventMouse(3, 1, tcell.Button1, tcell.ModNone)))
	// Holding the button does not toggle again.
	v.Handle(tcell.NewEventMouse(3, 1, tcell.Button1, tcell.ModNone))
	v.Handle(tcell.NewEventMouse(3, 1, tcell.ButtonNone, tcell.ModNone))

	assert.Equal(t, 1, sess.Moves())
	assert.Equal(t, uint8(1), sess.State().Grid.At(1, 1))
	assert.Equal(t, uint8(0), sess.State().Grid.At(0, 0))
	assert.False(t, sess.Solved())

	v.Draw()
	r, g, b := background(screen, 2, 1)
	assert.Equal(t, [3]int32{255, 255, 255}, [3]int32{r, g, b})
	assert.Equal(t, "Mode: CROSS  Colors: 2  Moves: 1", rowText(screen, 3, 60))
}

func TestRightClickReverses(t *testing.T) {
	v, _, sess := newView(t, core.Config{Width: 3, Height: 3, Colors: 4, Mode: core.ModeX})
	v.Handle(tcell.NewEventMouse(2, 1, tcell.Button2, tcell.ModNone))
	assert.Equal(t, uint8(3), sess.State().Grid.At(1, 1))

	v.Handle(tcell.NewEventMouse(2, 1, tcell.ButtonNone, tcell.ModNone))
	v.Handle(tcell.NewEventMouse(2, 1, tcell.Button1, tcell.ModShift))
	assert.Equal(t, uint8(2), sess.State().Grid.At(1, 1))
}

func TestClickOutsideGridIgnored(t *testing.T) {
	v, _, sess := newView(t, core.Config{Width: 3, Height: 3, Colors: 2, Mode: core.ModeCross})
	v.Handle(tcell.NewEventMouse(30, 8, tcell.Button1, tcell.ModNone))
	assert.Zero(t, sess.Moves())
}

func TestKeyboardResizeFlow(t *testing.T) {
	v, screen, sess := newView(t, core.Config{Width: 3, Height: 3, Colors: 2, Mode: core.ModeCross})
	key := func(r rune) bool { return v.Handle(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)) }

	key('i')
	v.Draw()
	assert.Equal(t, "Enter new width:", strings.TrimSuffix(rowText(screen, 4, 60), " _"))

	key('4')
	v.Handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	key('x')
	v.Handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	v.Draw()
	assert.Equal(t, core.Size{W: 3, H: 3}, sess.Config().Size())
	assert.Equal(t, game.InvalidInputMessage, rowText(screen, 5, 60))

	key('i')
	key('4')
	v.Handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	key('2')
	v.Handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	assert.Equal(t, core.Size{W: 4, H: 2}, sess.Config().Size())

	assert.True(t, key('q'))
}

func TestEscapeAndInterrupt(t *testing.T) {
	v, _, sess := newView(t, core.Config{Width: 3, Height: 3, Colors: 2, Mode: core.ModeCross})
	v.Handle(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone))
	assert.Equal(t, core.ModeX, sess.Config().Mode)
	assert.NotEmpty(t, v.ctrl.Notice())
	for i := 0; i < 200; i++ {
		v.Handle(tcell.NewEventInterrupt(nil))
	}
	assert.Empty(t, v.ctrl.Notice())

	v.Handle(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone))
	assert.False(t, v.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, v.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, v.Handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
}
