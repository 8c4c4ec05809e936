package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Action is the kind of a raw input event.
type Action uint8

const (
	// ActionDown is a pointer touching the surface.
	ActionDown Action = iota
	// ActionMove is a pointer moving while down. Move events may carry
	// batched historical samples.
	ActionMove
	// ActionUp is a pointer lifting from the surface.
	ActionUp
	// ActionCancel aborts the current gesture for the pointers in the event.
	ActionCancel
	// ActionHover is a pen moving near, but not touching, the surface.
	ActionHover
)

var actionNames = [...]string{
	ActionDown:   "down",
	ActionMove:   "move",
	ActionUp:     "up",
	ActionCancel: "cancel",
	ActionHover:  "hover",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Action(" + strconv.Itoa(int(a)) + ")"
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Action) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range actionNames {
		if n == name {
			*a = Action(i)
			return nil
		}
	}
	return fmt.Errorf("input: unknown action %q", text)
}

// ToolType is the tool a platform reports for a pointer. The numeric codes
// follow the common platform numbering; unknown codes classify as
// SourceUnknown.
type ToolType int

const (
	ToolUnknown ToolType = 0
	ToolFinger  ToolType = 1
	ToolStylus  ToolType = 2
	ToolMouse   ToolType = 3
	ToolEraser  ToolType = 4
)

var toolNames = map[ToolType]string{
	ToolUnknown: "unknown",
	ToolFinger:  "finger",
	ToolStylus:  "stylus",
	ToolMouse:   "mouse",
	ToolEraser:  "eraser",
}

func (t ToolType) String() string {
	if n, ok := toolNames[t]; ok {
		return n
	}
	return "ToolType(" + strconv.Itoa(int(t)) + ")"
}

// UnmarshalText accepts a tool name or a numeric platform code.
func (t *ToolType) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for tool, name := range toolNames {
		if name == s {
			*t = tool
			return nil
		}
	}
	code, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("input: unknown tool %q", text)
	}
	*t = ToolType(code)
	return nil
}

// PointerID identifies a pointer from its down to its up or cancel.
type PointerID int32

// RawSample is one hardware reading for a pointer, in event coordinates.
// Tilt is the angle from vertical in radians (0 = upright, pi/2 = flat);
// Orientation is the azimuth of the pen's lean around its own axis.
type RawSample struct {
	X, Y        float64
	Pressure    float64
	Tilt        float64
	Orientation float64
}

// Pointer is one pointer present in an event.
// History holds batched samples older than Sample, oldest first, aligned
// with Event.History.
type Pointer struct {
	ID      PointerID
	Tool    ToolType
	Sample  RawSample
	History []RawSample
}

// Event is one raw input event as delivered by the platform.
type Event struct {
	Action Action
	// ActionIndex is the index in Pointers of the pointer a down, up or
	// cancel refers to.
	ActionIndex int
	// Time is the timestamp of the current samples, in milliseconds.
	Time int64
	// History holds the timestamps of the batched samples, oldest first.
	History  []int64
	Pointers []Pointer
}

// PointerCount returns the number of pointers in the event.
func (e *Event) PointerCount() int {
	return len(e.Pointers)
}

// HistorySize returns the number of batched historical samples available
// for pointer i.
func (e *Event) HistorySize(i int) int {
	if i < 0 || i >= len(e.Pointers) {
		return 0
	}
	return min(len(e.History), len(e.Pointers[i].History))
}

// ActionPointer returns the index of the pointer the action refers to,
// falling back to 0 when ActionIndex is out of range.
func (e *Event) ActionPointer() int {
	if e.ActionIndex >= 0 && e.ActionIndex < len(e.Pointers) {
		return e.ActionIndex
	}
	return 0
}
