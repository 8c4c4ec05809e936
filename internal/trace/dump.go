package trace

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/object"
)

// StrokeDump is the persisted form of a committed stroke. Points holds the
// flattened point list, object.FlatStride values per point.
type StrokeDump struct {
	BaseWidth float64    `yaml:"base_width"`
	Color     ink.RGBA   `yaml:"color"`
	Tilt      bool       `yaml:"tilt"`
	Rotation  float64    `yaml:"rotation,omitempty"`
	Bounds    [4]float64 `yaml:"bounds,flow"`
	Points    []float64  `yaml:"points,flow"`
}

// Dump returns the persisted form of s.
func Dump(s *object.Stroke) StrokeDump {
	b := s.Bounds()
	return StrokeDump{
		BaseWidth: s.BaseWidth(),
		Color:     s.Color(),
		Tilt:      s.TiltEnabled(),
		Rotation:  s.Rotation(),
		Bounds:    [4]float64{b.Min.X, b.Min.Y, b.Max.X, b.Max.Y},
		Points:    s.Flatten(),
	}
}

// Stroke rebuilds the stroke a dump was made from.
func (d StrokeDump) Stroke(opts ...object.Option) (*object.Stroke, error) {
	s, err := object.StrokeFromFlat(d.Points, d.BaseWidth, d.Color, d.Tilt, opts...)
	if err != nil {
		return nil, err
	}
	s.SetRotation(d.Rotation)
	return s, nil
}

// WriteStrokes writes strokes to w as a YAML sequence.
func WriteStrokes(w io.Writer, strokes []*object.Stroke) error {
	dumps := make([]StrokeDump, len(strokes))
	for i, s := range strokes {
		dumps[i] = Dump(s)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(dumps); err != nil {
		return fmt.Errorf("trace: write strokes: %w", err)
	}
	return enc.Close()
}

// ReadStrokes reads strokes written by WriteStrokes.
func ReadStrokes(r io.Reader, opts ...object.Option) ([]*object.Stroke, error) {
	var dumps []StrokeDump
	if err := yaml.NewDecoder(r).Decode(&dumps); err != nil {
		return nil, fmt.Errorf("trace: read strokes: %w", err)
	}
	strokes := make([]*object.Stroke, 0, len(dumps))
	for i, d := range dumps {
		s, err := d.Stroke(opts...)
		if err != nil {
			return nil, fmt.Errorf("trace: stroke %d: %w", i, err)
		}
		strokes = append(strokes, s)
	}
	return strokes, nil
}
