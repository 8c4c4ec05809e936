package input

import (
	"github.com/gogpu/ink"
)

// State is the palm-rejection state.
type State uint8

const (
	// StateIdle means no pen is on the surface.
	StateIdle State = iota
	// StateStylusEngaged means a pen pointer is down; finger input is
	// treated as a resting palm.
	StateStylusEngaged
)

func (s State) String() string {
	if s == StateStylusEngaged {
		return "StylusEngaged"
	}
	return "Idle"
}

// Policy carries caller-side rules that change how events are classified.
type Policy struct {
	// TolerateFinger keeps finger events alive while a pen is engaged.
	// Object-selection modes set it so a resting palm can still pan or
	// select.
	TolerateFinger bool
}

// Classification is the classifier's verdict on one event.
type Classification struct {
	// Source of the pointer the event is about: the action pointer for
	// down, up and cancel, the primary pointer otherwise.
	Source Source
	// PointerID of that pointer.
	PointerID PointerID
	// Primary is the index of the primary pointer, or -1 for an event
	// without pointers.
	Primary int
	// PalmRejected events must be consumed without any side effect.
	PalmRejected bool
	// Erase is set for eraser-end input. The caller routes it to an erase
	// action regardless of the selected tool.
	Erase bool
}

// Classifier discriminates tool types and runs the palm-rejection state
// machine. It is keyed by pointer id:
//
//	Idle --pen down(id)--> StylusEngaged(id)
//	StylusEngaged(id) --pen down(id2)--> StylusEngaged(id2)
//	StylusEngaged(id) --up/cancel(id)--> Idle
//
// A second pen pointer going down while one is engaged takes over: the last
// pen down wins, and only an up or cancel of the engaged id returns to Idle.
// The zero value is ready to use.
type Classifier struct {
	state   State
	engaged PointerID
}

// NewClassifier returns a classifier in the Idle state.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// State returns the current state and, when engaged, the engaged pointer.
func (c *Classifier) State() (State, PointerID) {
	return c.state, c.engaged
}

// Reset returns the classifier to Idle.
func (c *Classifier) Reset() {
	c.state = StateIdle
	c.engaged = 0
}

// Classify tags ev and advances the state machine.
func (c *Classifier) Classify(ev *Event, policy Policy) Classification {
	if ev == nil || len(ev.Pointers) == 0 {
		return Classification{Primary: -1}
	}

	primary := PrimaryIndex(ev)
	subject := primary
	switch ev.Action {
	case ActionDown, ActionUp, ActionCancel:
		subject = ev.ActionPointer()
	}
	p := ev.Pointers[subject]
	out := Classification{
		Source:    SourceOf(p.Tool),
		PointerID: p.ID,
		Primary:   primary,
	}
	out.Erase = out.Source == SourceEraser

	if ev.Action == ActionDown && out.Source.IsPen() {
		c.engage(p.ID)
	}

	if c.state == StateStylusEngaged && out.Source == SourceFinger && !policy.TolerateFinger {
		out.PalmRejected = true
	}

	switch ev.Action {
	case ActionUp:
		if c.state == StateStylusEngaged && p.ID == c.engaged {
			c.release()
		}
	case ActionCancel:
		// A cancel ends the gesture for every pointer it carries.
		for _, q := range ev.Pointers {
			if c.state == StateStylusEngaged && q.ID == c.engaged {
				c.release()
				break
			}
		}
	}
	return out
}

func (c *Classifier) engage(id PointerID) {
	if c.state == StateStylusEngaged && c.engaged != id {
		ink.Logger().Debug("input: pen takeover", "from", c.engaged, "to", id)
	} else if c.state == StateIdle {
		ink.Logger().Debug("input: stylus engaged", "pointer", id)
	}
	c.state = StateStylusEngaged
	c.engaged = id
}

func (c *Classifier) release() {
	ink.Logger().Debug("input: stylus released", "pointer", c.engaged)
	c.Reset()
}

// PrimaryIndex selects the pointer samples are extracted from: the first
// stylus or eraser pointer in the event, otherwise index 0. It returns -1
// for an event without pointers.
func PrimaryIndex(ev *Event) int {
	if ev == nil || len(ev.Pointers) == 0 {
		return -1
	}
	for i, p := range ev.Pointers {
		if SourceOf(p.Tool).IsPen() {
			return i
		}
	}
	return 0
}
