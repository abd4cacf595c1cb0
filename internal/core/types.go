package core

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MaxDimension bounds grid width and height.
	MaxDimension = 256
	// MinColors is the shortest usable color cycle.
	MinColors = 2
	// MaxColors keeps every cell value representable in a byte.
	MaxColors = 256
)

var (
	// ErrOutOfBounds is returned when a toggle targets a cell outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrInvalidSize reports a width or height outside [1, MaxDimension].
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrInvalidColors reports a color count outside [MinColors, MaxColors].
	ErrInvalidColors = errors.New("invalid color count")
	// ErrInvalidMode reports an unknown neighborhood mode.
	ErrInvalidMode = errors.New("invalid mode")
)

// Size describes the dimensions of a puzzle grid.
type Size struct {
	W int
	H int
}

// Mode selects the neighborhood toggled alongside the target cell.
type Mode uint8

const (
	// ModeCross toggles the four orthogonal neighbors.
	ModeCross Mode = iota
	// ModeX toggles the four diagonal neighbors.
	ModeX
	// ModePlus toggles all eight surrounding cells.
	ModePlus

	modeCount
)

var modeNames = [...]string{
	ModeCross: "CROSS",
	ModeX:     "X",
	ModePlus:  "PLUS",
}

// String returns the display name of the mode.
func (m Mode) String() string {
	if m >= modeCount {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool { return m < modeCount }

// Next cycles CROSS → X → PLUS → CROSS.
func (m Mode) Next() Mode {
	return (m + 1) % modeCount
}

// ParseMode resolves a mode name, ignoring case.
func ParseMode(s string) (Mode, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return ModeCross, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Config holds the puzzle parameters. It is a value type: reconfiguring a
// puzzle means building a new Config, never editing a shared one.
type Config struct {
	Width  int
	Height int
	Colors int
	Mode   Mode
}

// DefaultConfig returns the standard 7×5 two-color cross puzzle.
func DefaultConfig() Config {
	return Config{Width: 7, Height: 5, Colors: 2, Mode: ModeCross}
}

// Size returns the grid dimensions of the configuration.
func (c Config) Size() Size { return Size{W: c.Width, H: c.Height} }

// Validate checks every field against its allowed range.
func (c Config) Validate() error {
	if c.Width < 1 || c.Width > MaxDimension || c.Height < 1 || c.Height > MaxDimension {
		return fmt.Errorf("%w: %dx%d (each side must be 1..%d)", ErrInvalidSize, c.Width, c.Height, MaxDimension)
	}
	if c.Colors < MinColors || c.Colors > MaxColors {
		return fmt.Errorf("%w: %d (must be %d..%d)", ErrInvalidColors, c.Colors, MinColors, MaxColors)
	}
	if !c.Mode.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidMode, c.Mode)
	}
	return nil
}

// State is the snapshot a renderer reads each frame.
type State struct {
	Config Config
	Grid   *Grid
}

// Solved reports whether the snapshot's grid is uniform.
func (s State) Solved() bool { return IsSolved(s.Grid) }
