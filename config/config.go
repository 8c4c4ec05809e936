// Package config loads ink tuning parameters from TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/input"
	"github.com/gogpu/ink/object"
	"github.com/gogpu/ink/outline"
	"github.com/gogpu/ink/session"
)

// ErrInvalidConfig is returned for configuration values out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every tunable of the ink pipeline. Fields left out of a
// file keep their Default values.
type Config struct {
	Smoothing Smoothing `toml:"smoothing"`
	Pressure  Pressure  `toml:"pressure"`
	Tilt      Tilt      `toml:"tilt"`
	HitTest   HitTest   `toml:"hit_test"`
	Style     Style     `toml:"style"`
}

// Smoothing configures the zero-phase pressure filter.
type Smoothing struct {
	Alpha float64 `toml:"alpha"`
}

// Pressure configures pressure scaling.
type Pressure struct {
	Min        float64 `toml:"min"`
	InitialMax float64 `toml:"initial_max"`
}

// Tilt configures calligraphic width asymmetry.
type Tilt struct {
	Deadzone float64 `toml:"deadzone"`
	Strength float64 `toml:"strength"`
}

// HitTest configures selection of committed strokes.
type HitTest struct {
	TouchMarginFloor float64 `toml:"touch_margin_floor"`
}

// Style is the initial pen.
type Style struct {
	Width float64  `toml:"width"`
	Color ink.RGBA `toml:"color"`
	Tilt  bool     `toml:"tilt"`
}

// Default returns the recommended configuration.
func Default() Config {
	return Config{
		Smoothing: Smoothing{Alpha: outline.DefaultAlpha},
		Pressure:  Pressure{Min: ink.MinPressure, InitialMax: 1},
		Tilt: Tilt{
			Deadzone: outline.DefaultTiltDeadzone,
			Strength: outline.DefaultCalligraphyStrength,
		},
		HitTest: HitTest{TouchMarginFloor: object.MinTouchMargin},
		Style: Style{
			Width: session.DefaultWidth,
			Color: ink.Black,
			Tilt:  true,
		},
	}
}

// Load reads a TOML file on top of Default and validates the result.
func Load(path string) (Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r on top of Default and validates the result.
// Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Config{}, fmt.Errorf("line %d column %d: %w", row, col, err)
		}
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (c Config) Encode(w io.Writer) error {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf).SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Validate reports the first out-of-range value, wrapped in
// ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case !(c.Smoothing.Alpha > 0 && c.Smoothing.Alpha <= 1):
		return fmt.Errorf("%w: smoothing.alpha %v not in (0, 1]", ErrInvalidConfig, c.Smoothing.Alpha)
	case !(c.Pressure.Min > 0 && c.Pressure.Min <= 1):
		return fmt.Errorf("%w: pressure.min %v not in (0, 1]", ErrInvalidConfig, c.Pressure.Min)
	case !(c.Pressure.InitialMax > 0):
		return fmt.Errorf("%w: pressure.initial_max %v must be positive", ErrInvalidConfig, c.Pressure.InitialMax)
	case !(c.Tilt.Deadzone >= 0 && c.Tilt.Deadzone < 1):
		return fmt.Errorf("%w: tilt.deadzone %v not in [0, 1)", ErrInvalidConfig, c.Tilt.Deadzone)
	case !(c.Tilt.Strength >= 0 && c.Tilt.Strength <= 1):
		return fmt.Errorf("%w: tilt.strength %v not in [0, 1]", ErrInvalidConfig, c.Tilt.Strength)
	case !(c.HitTest.TouchMarginFloor >= 0):
		return fmt.Errorf("%w: hit_test.touch_margin_floor %v must not be negative", ErrInvalidConfig, c.HitTest.TouchMarginFloor)
	case !(c.Style.Width > 0):
		return fmt.Errorf("%w: style.width %v must be positive", ErrInvalidConfig, c.Style.Width)
	}
	return nil
}

// Builder returns an outline builder with the configured parameters.
func (c Config) Builder() *outline.Builder {
	return outline.NewBuilder(
		outline.WithMinPressure(c.Pressure.Min),
		outline.WithTiltDeadzone(c.Tilt.Deadzone),
		outline.WithCalligraphyStrength(c.Tilt.Strength),
	)
}

// SessionOptions returns the session options matching c. Callers append
// their own, such as session.WithMessages.
func (c Config) SessionOptions() []session.Option {
	return []session.Option{
		session.WithBuilder(c.Builder()),
		session.WithCalibration(input.NewCalibrationAt(c.Pressure.InitialMax)),
		session.WithSmoothing(c.Smoothing.Alpha),
		session.WithTouchMarginFloor(c.HitTest.TouchMarginFloor),
		session.WithStyle(session.Style{
			Width: c.Style.Width,
			Color: c.Style.Color,
			Tilt:  c.Style.Tilt,
		}),
	}
}
