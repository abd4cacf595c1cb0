package game

import (
	"testing"

	"lightsout/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellAt(t *testing.T) {
	cases := []struct {
		px, py, sx, sy float64
		cw, ch         int
		x, y           int
	}{
		{0, 0, 1, 1, 100, 100, 0, 0},
		{99, 199, 1, 1, 100, 100, 0, 1},
		{150, 50, 2, 2, 100, 100, 3, 1},
		{7, 3, 1, 1, 2, 1, 3, 3},
		{-1, 5, 1, 1, 10, 10, -1, 0},
		{5, 5, 0, 0, 10, 10, 0, 0},
	}
	for _, tc := range cases {
		x, y := CellAt(tc.px, tc.py, tc.sx, tc.sy, tc.cw, tc.ch)
		assert.Equal(t, tc.x, x, "x for %+v", tc)
		assert.Equal(t, tc.y, y, "y for %+v", tc)
	}
	x, y := CellAt(10, 10, 1, 1, 0, 10)
	assert.Equal(t, -1, x)
	assert.Equal(t, -1, y)
}

func TestCommandForKey(t *testing.T) {
	assert.Equal(t, CommandReset, CommandForKey('r'))
	assert.Equal(t, CommandResize, CommandForKey('I'))
	assert.Equal(t, CommandRecolor, CommandForKey('c'))
	assert.Equal(t, CommandCycleMode, CommandForKey('m'))
	assert.Equal(t, CommandQuit, CommandForKey('q'))
	assert.Equal(t, CommandNone, CommandForKey('z'))
}

func typeString(c *Controller, s string) {
	for _, r := range s {
		c.Key(r)
	}
}

func TestControllerResizePrompt(t *testing.T) {
	s, _ := newTestSession(t, core.DefaultConfig())
	c := NewController(s)

	require.False(t, c.Key('i'))
	p := c.Prompt()
	require.NotNil(t, p)
	assert.Equal(t, "Enter new width:", p.Label())

	typeString(c, "12")
	c.Backspace()
	typeString(c, "0")
	assert.Equal(t, "10", p.Input())
	c.Enter()
	require.NotNil(t, c.Prompt())
	assert.Equal(t, "Enter new height:", c.Prompt().Label())

	// Command keys are text while the prompt is open.
	typeString(c, "3")
	c.Enter()
	assert.Nil(t, c.Prompt())
	assert.Equal(t, core.Size{W: 10, H: 3}, s.Config().Size())
	assert.Empty(t, c.Notice())
}

func TestControllerKeysTypesBeforeEnter(t *testing.T) {
	s, _ := newTestSession(t, core.DefaultConfig())
	c := NewController(s)

	require.False(t, c.Keys([]rune{'c'}, false, false))
	require.NotNil(t, c.Prompt())

	// Digit and Enter arriving in one frame.
	require.False(t, c.Keys([]rune{'4'}, false, true))
	assert.Nil(t, c.Prompt())
	assert.Equal(t, 4, s.Config().Colors)
	assert.Empty(t, c.Notice())

	require.False(t, c.Keys([]rune{'c'}, false, false))
	require.False(t, c.Keys([]rune{'9', '5'}, true, true))
	assert.Equal(t, 9, s.Config().Colors)

	assert.True(t, c.Keys([]rune{'q'}, false, false))
}

func TestControllerInvalidRecolorShowsNotice(t *testing.T) {
	s, _ := newTestSession(t, core.DefaultConfig())
	c := NewController(s)

	c.Key('c')
	typeString(c, "x")
	c.Enter()
	assert.Nil(t, c.Prompt())
	assert.Equal(t, InvalidInputMessage, c.Notice())
	assert.Equal(t, 2, s.Config().Colors)

	for i := 0; i < noticeTicks; i++ {
		c.Tick()
	}
	assert.Empty(t, c.Notice())
}

func TestControllerEscape(t *testing.T) {
	s, _ := newTestSession(t, core.DefaultConfig())
	c := NewController(s)

	c.Key('i')
	assert.False(t, c.Escape(), "escape closes the prompt first")
	assert.Nil(t, c.Prompt())
	assert.True(t, c.Escape())
	assert.True(t, c.Key('q'))
}

func TestControllerClickIgnoredDuringPrompt(t *testing.T) {
	s, _ := newTestSession(t, core.DefaultConfig())
	c := NewController(s)
	before := s.State().Grid.Clone()

	c.Key('c')
	c.Click(1, 1, false)
	assert.True(t, before.Equal(s.State().Grid))

	c.Escape()
	c.Click(1, 1, false)
	c.Click(-4, 1, false)
	assert.Equal(t, 1, s.Moves())
	assert.Empty(t, c.Notice())
}

func TestControllerModeKey(t *testing.T) {
	s, _ := newTestSession(t, core.DefaultConfig())
	c := NewController(s)
	c.Key('m')
	c.Key('m')
	assert.Equal(t, core.ModePlus, s.Config().Mode)
	assert.Equal(t, "Mode: PLUS", c.Notice())
}

func TestPromptIgnoresInputWhenDone(t *testing.T) {
	var got []string
	p := NewPrompt(func(a []string) error { got = a; return nil }, "one")
	p.Type('4', '\n', '2')
	done, err := p.Submit()
	require.True(t, done)
	require.NoError(t, err)
	assert.Equal(t, []string{"42"}, got)

	p.Type('9')
	assert.False(t, p.Active())
	done, _ = p.Submit()
	assert.False(t, done)
}
