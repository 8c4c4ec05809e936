package session

import (
	"github.com/gogpu/ink"
	"github.com/gogpu/ink/object"
)

// Message is a notification sent on the channel given to WithMessages.
// The variants are StrokeCommitted, EraseRequested, ToolChanged and
// GestureReset. Messages are sent in the order the session produced them.
type Message interface {
	isMessage()
}

// StrokeCommitted carries a finished stroke for the object manager.
type StrokeCommitted struct {
	Stroke *object.Stroke
}

// EraseRequested carries canvas points touched by an eraser.
type EraseRequested struct {
	Points []ink.Point
}

// ToolChanged reports a new mode or style.
type ToolChanged struct {
	Mode  Mode
	Style Style
}

// GestureReset reports that an in-progress stroke was discarded.
type GestureReset struct {
	Discarded int
}

func (StrokeCommitted) isMessage() {}
func (EraseRequested) isMessage()  {}
func (ToolChanged) isMessage()     {}
func (GestureReset) isMessage()    {}
