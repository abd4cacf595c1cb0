package game

import (
	"errors"
	"math"

	"lightsout/internal/core"
)

// Command is a keyboard action understood by both shells.
type Command uint8

const (
	CommandNone Command = iota
	CommandReset
	CommandResize
	CommandRecolor
	CommandCycleMode
	CommandQuit
)

// CommandForKey maps a single character to its command.
func CommandForKey(r rune) Command {
	switch r {
	case 'r', 'R':
		return CommandReset
	case 'i', 'I':
		return CommandResize
	case 'c', 'C':
		return CommandRecolor
	case 'm', 'M':
		return CommandCycleMode
	case 'q', 'Q':
		return CommandQuit
	default:
		return CommandNone
	}
}

// CellAt converts pointer coordinates to a cell. scaleX and scaleY undo any
// display scaling between the pointer space and the drawing surface; cellW
// and cellH are the cell size on that surface. The result may be out of
// bounds.
func CellAt(px, py, scaleX, scaleY float64, cellW, cellH int) (int, int) {
	if cellW <= 0 || cellH <= 0 {
		return -1, -1
	}
	if scaleX <= 0 {
		scaleX = 1
	}
	if scaleY <= 0 {
		scaleY = 1
	}
	x := int(math.Floor(px * scaleX / float64(cellW)))
	y := int(math.Floor(py * scaleY / float64(cellH)))
	return x, y
}

// noticeTicks keeps a notice on screen for about three seconds at 60 TPS.
const noticeTicks = 180

// Controller routes shell input to a Session, running the text prompts that
// stand in for modal dialogs.
type Controller struct {
	Session *Session
	prompt  *Prompt
	notice  Notice
}

// NewController wraps s.
func NewController(s *Session) *Controller {
	return &Controller{Session: s}
}

// Prompt returns the active prompt, or nil.
func (c *Controller) Prompt() *Prompt {
	if c.prompt.Active() {
		return c.prompt
	}
	return nil
}

// Notice returns the visible notice text.
func (c *Controller) Notice() string { return c.notice.Text() }

// Tick advances per-frame timers.
func (c *Controller) Tick() { c.notice.Tick() }

// Click toggles the cell under the pointer. Clicks are ignored while a
// prompt is open or when they land outside the grid.
func (c *Controller) Click(x, y int, reverse bool) {
	if c.Prompt() != nil {
		return
	}
	if err := c.Session.Click(x, y, reverse); err != nil && !errors.Is(err, core.ErrOutOfBounds) {
		c.notice.Show(err.Error(), noticeTicks)
	}
}

// Key handles a typed character. It reports true when the shell should exit.
func (c *Controller) Key(r rune) bool {
	if p := c.Prompt(); p != nil {
		p.Type(r)
		return false
	}
	switch CommandForKey(r) {
	case CommandReset:
		c.Session.Reset()
	case CommandCycleMode:
		mode := c.Session.CycleMode()
		c.notice.Show("Mode: "+mode.String(), noticeTicks/2)
	case CommandResize:
		c.prompt = NewPrompt(func(a []string) error {
			return c.Session.ResizeText(a[0], a[1])
		}, "Enter new width:", "Enter new height:")
	case CommandRecolor:
		c.prompt = NewPrompt(func(a []string) error {
			return c.Session.RecolorText(a[0])
		}, "Enter number of colors:")
	case CommandQuit:
		return true
	}
	return false
}

// Backspace edits the active prompt.
func (c *Controller) Backspace() {
	if p := c.Prompt(); p != nil {
		p.Backspace()
	}
}

// Enter submits the current prompt answer.
func (c *Controller) Enter() {
	p := c.Prompt()
	if p == nil {
		return
	}
	done, err := p.Submit()
	if !done {
		return
	}
	c.prompt = nil
	if err != nil {
		c.notice.Show(InvalidInputMessage, noticeTicks)
	}
}

// Keys applies one frame of keyboard input: typed characters first, then
// backspace, then enter, so an answer typed in the same frame as Enter is
// submitted whole. It reports true when the shell should exit.
func (c *Controller) Keys(chars []rune, backspace, enter bool) bool {
	for _, r := range chars {
		if c.Key(r) {
			return true
		}
	}
	if backspace {
		c.Backspace()
	}
	if enter {
		c.Enter()
	}
	return false
}

// Escape cancels the active prompt. It reports true when no prompt was open,
// meaning the shell should treat it as quit.
func (c *Controller) Escape() bool {
	if c.Prompt() == nil {
		return true
	}
	c.prompt = nil
	return false
}
