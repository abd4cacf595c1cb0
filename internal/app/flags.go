package app

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"lightsout/internal/core"
	"lightsout/internal/game"

	"github.com/sirupsen/logrus"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	Colors   int
	Mode     string
	Policy   string
	Cell     int
	TPS      int
	Seed     int64
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := core.DefaultConfig()
	return &Config{
		Width:    d.Width,
		Height:   d.Height,
		Colors:   d.Colors,
		Mode:     d.Mode.String(),
		Policy:   core.DefaultPolicyName,
		Cell:     100,
		TPS:      60,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Colors, "colors", c.Colors, "number of colors each cell cycles through")
	fs.StringVar(&c.Mode, "mode", c.Mode, "neighborhood mode: cross, x or plus")
	fs.StringVar(&c.Policy, "policy", c.Policy, "scramble policy: "+strings.Join(core.PolicyNames(), ", "))
	fs.IntVar(&c.Cell, "cell", c.Cell, "initial cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "scramble seed (0 picks one from the clock)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
}

// Puzzle converts the flags into a validated puzzle configuration.
func (c *Config) Puzzle() (core.Config, error) {
	mode, err := core.ParseMode(c.Mode)
	if err != nil {
		return core.Config{}, err
	}
	cfg := core.Config{Width: c.Width, Height: c.Height, Colors: c.Colors, Mode: mode}
	if err := cfg.Validate(); err != nil {
		return core.Config{}, err
	}
	return cfg, nil
}

// NewLogger builds a text logger writing to out at the configured level.
func (c *Config) NewLogger(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	return l, nil
}

// NewSession builds the game session described by the flags.
func (c *Config) NewSession(log logrus.FieldLogger) (*game.Session, error) {
	cfg, err := c.Puzzle()
	if err != nil {
		return nil, err
	}
	policy, err := core.LookupPolicy(c.Policy)
	if err != nil {
		return nil, err
	}
	opts := []game.Option{game.WithLogger(log), game.WithPolicy(policy)}
	if c.Seed != 0 {
		opts = append(opts, game.WithSeed(c.Seed))
	}
	return game.NewSession(cfg, opts...)
}
