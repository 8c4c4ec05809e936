package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(id PointerID, tool ToolType) Pointer {
	return Pointer{ID: id, Tool: tool, Sample: RawSample{Pressure: 0.5}}
}

func event(action Action, index int, pointers ...Pointer) *Event {
	return &Event{Action: action, ActionIndex: index, Pointers: pointers}
}

func TestSourceOf(t *testing.T) {
	tests := []struct {
		tool ToolType
		want Source
	}{
		{ToolStylus, SourceStylus},
		{ToolEraser, SourceEraser},
		{ToolFinger, SourceFinger},
		{ToolMouse, SourceMouse},
		{ToolUnknown, SourceUnknown},
		{ToolType(42), SourceUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.tool.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, SourceOf(tt.tool))
		})
	}
}

func TestClassifierPalmRejection(t *testing.T) {
	c := NewClassifier()
	pen := ptr(1, ToolStylus)
	finger := ptr(2, ToolFinger)

	got := c.Classify(event(ActionDown, 0, pen), Policy{})
	assert.Equal(t, SourceStylus, got.Source)
	assert.False(t, got.PalmRejected)
	state, id := c.State()
	require.Equal(t, StateStylusEngaged, state)
	assert.Equal(t, PointerID(1), id)

	got = c.Classify(event(ActionDown, 1, pen, finger), Policy{})
	assert.Equal(t, SourceFinger, got.Source)
	assert.Equal(t, PointerID(2), got.PointerID)
	assert.True(t, got.PalmRejected)

	got = c.Classify(event(ActionUp, 0, pen, finger), Policy{})
	assert.False(t, got.PalmRejected)
	state, _ = c.State()
	assert.Equal(t, StateIdle, state)

	got = c.Classify(event(ActionMove, 0, finger), Policy{})
	assert.Equal(t, SourceFinger, got.Source)
	assert.False(t, got.PalmRejected)
}

func TestClassifierTolerateFinger(t *testing.T) {
	c := NewClassifier()
	c.Classify(event(ActionDown, 0, ptr(1, ToolStylus)), Policy{})

	got := c.Classify(event(ActionMove, 0, ptr(2, ToolFinger)), Policy{TolerateFinger: true})
	assert.False(t, got.PalmRejected)

	got = c.Classify(event(ActionMove, 0, ptr(2, ToolFinger)), Policy{})
	assert.True(t, got.PalmRejected)
}

func TestClassifierMoveUsesPrimary(t *testing.T) {
	c := NewClassifier()
	pen := ptr(1, ToolStylus)
	palm := ptr(2, ToolFinger)
	c.Classify(event(ActionDown, 0, pen), Policy{})

	// The palm is listed first but the pen is primary.
	got := c.Classify(event(ActionMove, 0, palm, pen), Policy{})
	assert.Equal(t, 1, got.Primary)
	assert.Equal(t, SourceStylus, got.Source)
	assert.False(t, got.PalmRejected)
}

func TestClassifierEraserRouting(t *testing.T) {
	c := NewClassifier()
	got := c.Classify(event(ActionDown, 0, ptr(7, ToolEraser)), Policy{})
	assert.True(t, got.Erase)
	assert.Equal(t, SourceEraser, got.Source)

	state, id := c.State()
	assert.Equal(t, StateStylusEngaged, state)
	assert.Equal(t, PointerID(7), id)

	got = c.Classify(event(ActionMove, 0, ptr(8, ToolFinger)), Policy{})
	assert.True(t, got.PalmRejected)
	assert.False(t, got.Erase)
}

func TestClassifierLastPenWins(t *testing.T) {
	c := NewClassifier()
	c.Classify(event(ActionDown, 0, ptr(1, ToolStylus)), Policy{})
	c.Classify(event(ActionDown, 1, ptr(1, ToolStylus), ptr(3, ToolStylus)), Policy{})

	state, id := c.State()
	require.Equal(t, StateStylusEngaged, state)
	assert.Equal(t, PointerID(3), id)

	// Lifting the first pen does not disengage.
	c.Classify(event(ActionUp, 0, ptr(1, ToolStylus), ptr(3, ToolStylus)), Policy{})
	state, _ = c.State()
	assert.Equal(t, StateStylusEngaged, state)

	c.Classify(event(ActionUp, 0, ptr(3, ToolStylus)), Policy{})
	state, _ = c.State()
	assert.Equal(t, StateIdle, state)
}

func TestClassifierCancel(t *testing.T) {
	c := NewClassifier()
	c.Classify(event(ActionDown, 0, ptr(1, ToolStylus)), Policy{})
	c.Classify(event(ActionCancel, 0, ptr(2, ToolFinger), ptr(1, ToolStylus)), Policy{})

	state, _ := c.State()
	assert.Equal(t, StateIdle, state)
}

func TestClassifierFingerUpWhileEngagedKeepsState(t *testing.T) {
	c := NewClassifier()
	c.Classify(event(ActionDown, 0, ptr(1, ToolStylus)), Policy{})
	got := c.Classify(event(ActionUp, 1, ptr(1, ToolStylus), ptr(2, ToolFinger)), Policy{})
	assert.True(t, got.PalmRejected)

	state, id := c.State()
	assert.Equal(t, StateStylusEngaged, state)
	assert.Equal(t, PointerID(1), id)
}

func TestClassifierEmptyEvent(t *testing.T) {
	c := NewClassifier()
	got := c.Classify(&Event{Action: ActionMove}, Policy{})
	assert.Equal(t, -1, got.Primary)
	assert.Equal(t, SourceUnknown, got.Source)
	assert.False(t, got.PalmRejected)

	got = c.Classify(nil, Policy{})
	assert.Equal(t, -1, got.Primary)
}

func TestPrimaryIndex(t *testing.T) {
	tests := []struct {
		name     string
		pointers []Pointer
		want     int
	}{
		{"none", nil, -1},
		{"single finger", []Pointer{ptr(1, ToolFinger)}, 0},
		{"fingers only", []Pointer{ptr(1, ToolFinger), ptr(2, ToolFinger)}, 0},
		{"stylus second", []Pointer{ptr(1, ToolFinger), ptr(2, ToolStylus)}, 1},
		{"eraser third", []Pointer{ptr(1, ToolFinger), ptr(2, ToolMouse), ptr(3, ToolEraser)}, 2},
		{"first pen wins", []Pointer{ptr(1, ToolFinger), ptr(2, ToolEraser), ptr(3, ToolStylus)}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrimaryIndex(&Event{Pointers: tt.pointers}))
		})
	}
}

func TestActionUnmarshalText(t *testing.T) {
	var a Action
	require.NoError(t, a.UnmarshalText([]byte("Hover")))
	assert.Equal(t, ActionHover, a)
	assert.Error(t, a.UnmarshalText([]byte("drag")))
}

func TestToolTypeUnmarshalText(t *testing.T) {
	var tool ToolType
	require.NoError(t, tool.UnmarshalText([]byte("stylus")))
	assert.Equal(t, ToolStylus, tool)
	require.NoError(t, tool.UnmarshalText([]byte("4")))
	assert.Equal(t, ToolEraser, tool)
	assert.Error(t, tool.UnmarshalText([]byte("pencil")))
}
