// Package trace reads recorded input traces and writes stroke dumps, both
// as YAML.
package trace

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ink/input"
)

// ErrEmptyTrace is returned for a trace without events.
var ErrEmptyTrace = errors.New("trace: no events")

// File is a recorded input trace.
type File struct {
	Name string `yaml:"name,omitempty"`
	// Width and Height are the size of the recording surface, if known.
	Width  int     `yaml:"width,omitempty"`
	Height int     `yaml:"height,omitempty"`
	Events []Event `yaml:"events"`
}

// Event is one recorded raw event.
type Event struct {
	Action      string    `yaml:"action"`
	ActionIndex int       `yaml:"action_index,omitempty"`
	Time        int64     `yaml:"time"`
	History     []int64   `yaml:"history,omitempty,flow"`
	Pointers    []Pointer `yaml:"pointers"`
}

// Pointer is one recorded pointer. Tool is a tool name or platform code.
type Pointer struct {
	ID      int32    `yaml:"id"`
	Tool    string   `yaml:"tool"`
	Sample  `yaml:",inline"`
	History []Sample `yaml:"history,omitempty"`
}

// Sample is one recorded hardware reading.
type Sample struct {
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Pressure    float64 `yaml:"pressure"`
	Tilt        float64 `yaml:"tilt,omitempty"`
	Orientation float64 `yaml:"orientation,omitempty"`
}

// Load reads a trace file.
func Load(path string) (*File, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	defer f.Close()

	tr, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("trace: %s: %w", path, err)
	}
	return tr, nil
}

// Decode reads a trace from r.
func Decode(r io.Reader) (*File, error) {
	var tr File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&tr); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyTrace
		}
		return nil, err
	}
	if len(tr.Events) == 0 {
		return nil, ErrEmptyTrace
	}
	return &tr, nil
}

// Encode writes the trace to w.
func (f *File) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("trace: encode: %w", err)
	}
	return enc.Close()
}

// InputEvents converts the recorded events.
func (f *File) InputEvents() ([]*input.Event, error) {
	out := make([]*input.Event, 0, len(f.Events))
	for i, e := range f.Events {
		ev, err := e.toInput()
		if err != nil {
			return nil, fmt.Errorf("trace: event %d: %w", i, err)
		}
		out = append(out, ev)
	}
	return out, nil
}

func (e Event) toInput() (*input.Event, error) {
	ev := &input.Event{
		ActionIndex: e.ActionIndex,
		Time:        e.Time,
		History:     e.History,
		Pointers:    make([]input.Pointer, 0, len(e.Pointers)),
	}
	if err := ev.Action.UnmarshalText([]byte(e.Action)); err != nil {
		return nil, err
	}
	for _, p := range e.Pointers {
		var tool input.ToolType
		if err := tool.UnmarshalText([]byte(p.Tool)); err != nil {
			return nil, err
		}
		ptr := input.Pointer{
			ID:     input.PointerID(p.ID),
			Tool:   tool,
			Sample: p.Sample.raw(),
		}
		for _, h := range p.History {
			ptr.History = append(ptr.History, h.raw())
		}
		ev.Pointers = append(ev.Pointers, ptr)
	}
	return ev, nil
}

func (s Sample) raw() input.RawSample {
	return input.RawSample{
		X:           s.X,
		Y:           s.Y,
		Pressure:    s.Pressure,
		Tilt:        s.Tilt,
		Orientation: s.Orientation,
	}
}

// FromInput records events in trace form.
func FromInput(name string, events []*input.Event) *File {
	f := &File{Name: name, Events: make([]Event, 0, len(events))}
	for _, ev := range events {
		e := Event{
			Action:      ev.Action.String(),
			ActionIndex: ev.ActionIndex,
			Time:        ev.Time,
			History:     ev.History,
		}
		for _, p := range ev.Pointers {
			rp := Pointer{ID: int32(p.ID), Tool: p.Tool.String(), Sample: sampleOf(p.Sample)}
			for _, h := range p.History {
				rp.History = append(rp.History, sampleOf(h))
			}
			e.Pointers = append(e.Pointers, rp)
		}
		f.Events = append(f.Events, e)
	}
	return f
}

func sampleOf(r input.RawSample) Sample {
	return Sample{
		X:           r.X,
		Y:           r.Y,
		Pressure:    r.Pressure,
		Tilt:        r.Tilt,
		Orientation: r.Orientation,
	}
}
