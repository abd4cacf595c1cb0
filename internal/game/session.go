// Package game owns the live puzzle: it applies clicks and keyboard commands
// to the current state and validates reconfiguration requests.
package game

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"lightsout/internal/core"

	"github.com/sirupsen/logrus"
)

// ErrInvalidInput reports text that is not a whole number.
var ErrInvalidInput = errors.New("invalid input")

// Option customizes a Session.
type Option func(*Session)

// WithLogger routes session logs to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSeed makes scrambles reproducible.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = core.NewRNG(seed) }
}

// WithPolicy sets the scramble iteration-count policy.
func WithPolicy(p core.Policy) Option {
	return func(s *Session) {
		if p != nil {
			s.policy = p
		}
	}
}

// Session is the single writer of puzzle state. It is not safe for
// concurrent use; both shells drive it from one goroutine.
type Session struct {
	state  core.State
	rng    *core.RNG
	policy core.Policy
	log    logrus.FieldLogger

	moves int
}

// NewSession validates cfg and returns a session holding a freshly scrambled
// grid.
func NewSession(cfg core.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{policy: core.LinearPolicy, log: discardLogger()}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = core.NewRNG(time.Now().UnixNano())
	}
	s.replace(cfg, "start")
	return s, nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// State returns the snapshot to render this frame.
func (s *Session) State() core.State { return s.state }

// Config returns the active configuration.
func (s *Session) Config() core.Config { return s.state.Config }

// Moves counts the clicks applied since the last scramble.
func (s *Session) Moves() int { return s.moves }

// Solved reports whether the current grid is uniform.
func (s *Session) Solved() bool { return s.state.Solved() }

// Click toggles the cell at (x, y) under the active mode. Out-of-range
// targets return core.ErrOutOfBounds and leave the grid untouched.
func (s *Session) Click(x, y int, reverse bool) error {
	cfg := s.state.Config
	if _, err := core.Toggle(s.state.Grid, x, y, cfg.Mode, cfg.Colors, reverse); err != nil {
		return err
	}
	s.moves++
	if s.state.Solved() {
		s.log.WithFields(logrus.Fields{
			"moves": s.moves,
			"color": s.state.Grid.At(0, 0),
		}).Info("puzzle solved")
	}
	return nil
}

// Reset rescrambles the grid with the current configuration.
func (s *Session) Reset() {
	s.replace(s.state.Config, "reset")
}

// Resize discards the grid and scrambles a new one of w×h cells. Invalid
// sizes leave the session unchanged.
func (s *Session) Resize(w, h int) error {
	cfg := s.state.Config
	cfg.Width, cfg.Height = w, h
	return s.reconfigure(cfg, "resize")
}

// Recolor discards the grid and scrambles a new one cycling through colors
// values. Invalid counts leave the session unchanged.
func (s *Session) Recolor(colors int) error {
	cfg := s.state.Config
	cfg.Colors = colors
	return s.reconfigure(cfg, "recolor")
}

// CycleMode switches to the next neighborhood mode and rescrambles; the old
// grid is not reinterpreted under the new rule.
func (s *Session) CycleMode() core.Mode {
	cfg := s.state.Config
	cfg.Mode = cfg.Mode.Next()
	s.replace(cfg, "mode")
	return cfg.Mode
}

// ResizeText parses user-entered dimensions and applies them.
func (s *Session) ResizeText(w, h string) error {
	wv, err := parseCount(w)
	if err != nil {
		return s.reject("resize", err)
	}
	hv, err := parseCount(h)
	if err != nil {
		return s.reject("resize", err)
	}
	return s.Resize(wv, hv)
}

// RecolorText parses a user-entered color count and applies it.
func (s *Session) RecolorText(colors string) error {
	n, err := parseCount(colors)
	if err != nil {
		return s.reject("recolor", err)
	}
	return s.Recolor(n)
}

func parseCount(text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, text)
	}
	return v, nil
}

func (s *Session) reconfigure(cfg core.Config, reason string) error {
	if err := cfg.Validate(); err != nil {
		return s.reject(reason, err)
	}
	s.replace(cfg, reason)
	return nil
}

func (s *Session) reject(reason string, err error) error {
	s.log.WithFields(logrus.Fields{
		"command": reason,
		"error":   err,
	}).Warn("rejected configuration")
	return err
}

func (s *Session) replace(cfg core.Config, reason string) {
	grid := core.NewGrid(cfg.Width, cfg.Height)
	record := core.Scramble(grid, cfg.Mode, cfg.Colors, s.rng, s.policy)
	s.state = core.State{Config: cfg, Grid: grid}
	s.moves = 0
	s.log.WithFields(logrus.Fields{
		"reason":  reason,
		"width":   cfg.Width,
		"height":  cfg.Height,
		"colors":  cfg.Colors,
		"mode":    cfg.Mode.String(),
		"toggles": len(record),
	}).Debug("scrambled grid")
}
