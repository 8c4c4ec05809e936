package config

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/input"
	"github.com/gogpu/ink/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.35, cfg.Smoothing.Alpha)
	assert.Equal(t, 0.05, cfg.Pressure.Min)
	assert.Equal(t, 0.08, cfg.Tilt.Deadzone)
	assert.Equal(t, 0.4, cfg.Tilt.Strength)
	assert.Equal(t, 4.0, cfg.HitTest.TouchMarginFloor)
}

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "calligraphy.toml"))
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Smoothing.Alpha)
	assert.Equal(t, 0.1, cfg.Pressure.Min)
	assert.Equal(t, 0.8, cfg.Pressure.InitialMax)
	assert.Equal(t, 0.9, cfg.Tilt.Strength)
	assert.Equal(t, 0.08, cfg.Tilt.Deadzone, "unset keys keep defaults")
	assert.Equal(t, 4.0, cfg.HitTest.TouchMarginFloor)
	assert.Equal(t, 12.0, cfg.Style.Width)
	assert.Equal(t, ink.Hex("#1a237e"), cfg.Style.Color)
	assert.True(t, cfg.Style.Tilt)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		file    string
		invalid bool
	}{
		{"unknown_key.toml", false},
		{"bad_alpha.toml", true},
		{"bad_color.toml", false},
		{"missing.toml", false},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := Load(filepath.Join("testdata", tt.file))
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalidConfig), "%v", err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"alpha zero", func(c *Config) { c.Smoothing.Alpha = 0 }},
		{"alpha nan", func(c *Config) { c.Smoothing.Alpha = math.NaN() }},
		{"min pressure", func(c *Config) { c.Pressure.Min = 0 }},
		{"initial max", func(c *Config) { c.Pressure.InitialMax = -1 }},
		{"deadzone", func(c *Config) { c.Tilt.Deadzone = 1 }},
		{"strength", func(c *Config) { c.Tilt.Strength = 2 }},
		{"margin", func(c *Config) { c.HitTest.TouchMarginFloor = -0.5 }},
		{"width", func(c *Config) { c.Style.Width = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	cfg := Default()
	cfg.Style.Color = ink.RGB(1, 0, 0)
	cfg.Tilt.Strength = 0.25

	var buf bytes.Buffer
	require.NoError(t, cfg.Encode(&buf))
	assert.Contains(t, buf.String(), "[tilt]")
	assert.Contains(t, buf.String(), "#ff0000ff")

	back, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestDecodeReportsPosition(t *testing.T) {
	_, err := Decode(strings.NewReader("[smoothing]\nalpha = = 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestSessionOptions(t *testing.T) {
	cfg := Default()
	cfg.Pressure.InitialMax = 0.5
	cfg.Style.Width = 9
	s := session.New(cfg.SessionOptions()...)

	assert.Equal(t, 9.0, s.Style().Width)
	assert.Equal(t, 0.5, s.Calibration().Max())

	r := s.Handle(&input.Event{
		Action: input.ActionDown,
		Pointers: []input.Pointer{{
			ID: 1, Tool: input.ToolStylus,
			Sample: input.RawSample{X: 1, Y: 1, Pressure: 0.25},
		}},
	})
	require.Len(t, r.Points, 1)
	assert.InDelta(t, 0.5, r.Points[0].Pressure, 1e-12)
}

func TestBuilder(t *testing.T) {
	cfg := Default()
	cfg.Pressure.Min = 0.5
	assert.Equal(t, 0.5, cfg.Builder().MinPressure())
}
