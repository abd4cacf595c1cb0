package game

import (
	"strconv"

	"lightsout/internal/core"
)

const (
	paramWidth  = "w"
	paramHeight = "h"
	paramColors = "colors"
	paramMode   = "mode"
	paramMoves  = "moves"
)

// Parameters reports the live configuration for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	cfg := s.state.Config
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam(paramWidth, "Width", cfg.Width),
				intParam(paramHeight, "Height", cfg.Height),
				intParam(paramColors, "Colors", cfg.Colors),
			},
		},
		{
			Name: "Play",
			Params: []core.Parameter{
				{Key: paramMode, Label: "Mode", Type: core.ParamTypeText, Value: cfg.Mode.String()},
				intParam(paramMoves, "Moves", s.moves),
			},
		},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

// ParameterControls lists the settings adjustable with +/- buttons.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: paramWidth, Label: "Width", Step: 1, Min: 1, Max: core.MaxDimension},
		{Key: paramHeight, Label: "Height", Step: 1, Min: 1, Max: core.MaxDimension},
		{Key: paramColors, Label: "Colors", Step: 1, Min: core.MinColors, Max: core.MaxColors},
	}
}

// SetIntParameter applies a HUD adjustment. It reports whether the new value
// was accepted.
func (s *Session) SetIntParameter(key string, value int) bool {
	cfg := s.state.Config
	var err error
	switch key {
	case paramWidth:
		err = s.Resize(value, cfg.Height)
	case paramHeight:
		err = s.Resize(cfg.Width, value)
	case paramColors:
		err = s.Recolor(value)
	default:
		return false
	}
	return err == nil
}
