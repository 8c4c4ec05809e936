package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/gogpu/ink"
	"github.com/gogpu/ink/input"
	"github.com/gogpu/ink/internal/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scribble = filepath.Join("..", "..", "internal", "trace", "testdata", "scribble.yaml")

func TestReplayScribble(t *testing.T) {
	dir := t.TempDir()
	o := options{
		trace:   scribble,
		out:     filepath.Join(dir, "strokes.png"),
		preview: filepath.Join(dir, "preview.png"),
		dump:    filepath.Join(dir, "strokes.yaml"),
	}
	sum, err := replay(o)
	require.NoError(t, err)
	assert.Equal(t, summary{events: 10, strokes: 1, erased: 0, rejected: 1}, sum)

	for _, name := range []string{"strokes.png", "preview.png", "strokes.yaml"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}

	f, err := os.Open(o.dump)
	require.NoError(t, err)
	defer f.Close()
	strokes, err := trace.ReadStrokes(f)
	require.NoError(t, err)
	require.Len(t, strokes, 1)
	assert.Equal(t, 6, strokes[0].Len())
}

func TestReplayErasesStroke(t *testing.T) {
	stroke := func(action input.Action, tm int64, tool input.ToolType, id input.PointerID, x, y float64) *input.Event {
		return &input.Event{Action: action, Time: tm, Pointers: []input.Pointer{{
			ID: id, Tool: tool, Sample: input.RawSample{X: x, Y: y, Pressure: 0.5},
		}}}
	}
	events := []*input.Event{
		stroke(input.ActionDown, 0, input.ToolStylus, 1, 10, 10),
		stroke(input.ActionMove, 8, input.ToolStylus, 1, 30, 10),
		stroke(input.ActionUp, 16, input.ToolStylus, 1, 50, 10),
		stroke(input.ActionDown, 24, input.ToolStylus, 2, 10, 40),
		stroke(input.ActionUp, 32, input.ToolStylus, 2, 50, 40),
		stroke(input.ActionDown, 40, input.ToolEraser, 3, 30, 12),
		stroke(input.ActionUp, 48, input.ToolEraser, 3, 30, 12),
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "erase.yaml")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, trace.FromInput("erase", events).Encode(f))
	require.NoError(t, f.Close())

	sum, err := replay(options{trace: path, out: filepath.Join(dir, "out.png"), width: 64, height: 64})
	require.NoError(t, err)
	assert.Equal(t, 2, sum.strokes+sum.erased)
	assert.Equal(t, 1, sum.erased)
}

func TestReplayZoom(t *testing.T) {
	firstPoint := func(zoom float64) ink.SamplePoint {
		dir := t.TempDir()
		o := options{
			trace: scribble,
			out:   filepath.Join(dir, "strokes.png"),
			dump:  filepath.Join(dir, "strokes.yaml"),
			zoom:  zoom,
		}
		sum, err := replay(o)
		require.NoError(t, err)
		require.Equal(t, 1, sum.strokes)

		f, err := os.Open(o.dump)
		require.NoError(t, err)
		defer f.Close()
		strokes, err := trace.ReadStrokes(f)
		require.NoError(t, err)
		require.Len(t, strokes, 1)
		return strokes[0].Points()[0]
	}

	plain, zoomed := firstPoint(1), firstPoint(2)
	assert.InDelta(t, plain.X/2, zoomed.X, 1e-9)
	assert.InDelta(t, plain.Y/2, zoomed.Y, 1e-9)
}

func TestOptionsView(t *testing.T) {
	assert.True(t, options{}.view().IsIdentity())
	assert.True(t, options{zoom: -3}.view().IsIdentity())
	assert.Equal(t, ink.Pt(6, 8), options{zoom: 2}.view().TransformPoint(ink.Pt(3, 4)))
}

func TestReplayBadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[smoothing]\nalpha = 7\n"), 0o600))
	_, err := replay(options{trace: scribble, config: cfg, out: filepath.Join(dir, "x.png")})
	assert.Error(t, err)
}

func TestSize(t *testing.T) {
	assert.Equal(t, 10, size(10, 20, 30))
	assert.Equal(t, 20, size(0, 20, 30))
	assert.Equal(t, 30, size(0, 0, 30))
}

func TestRelevant(t *testing.T) {
	abs, err := filepath.Abs(scribble)
	require.NoError(t, err)
	watched := map[string]bool{abs: true}

	assert.True(t, relevant(fsnotify.Event{Name: scribble, Op: fsnotify.Write}, watched))
	assert.True(t, relevant(fsnotify.Event{Name: scribble, Op: fsnotify.Create}, watched))
	assert.False(t, relevant(fsnotify.Event{Name: scribble, Op: fsnotify.Chmod}, watched))
	assert.False(t, relevant(fsnotify.Event{Name: "other.yaml", Op: fsnotify.Write}, watched))
}
