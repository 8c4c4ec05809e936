package input

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalibrationNormalize(t *testing.T) {
	t.Run("max stays at one", func(t *testing.T) {
		c := NewCalibration()
		var got []float64
		for _, raw := range []float64{0.6, 0.6, 0.9, 0.3} {
			got = append(got, c.Normalize(raw))
		}
		assert.InDeltaSlice(t, []float64{0.6, 0.6, 0.9, 0.3}, got, 1e-12)
		assert.Equal(t, 1.0, c.Max())
	})

	t.Run("max raised by reading", func(t *testing.T) {
		c := NewCalibrationAt(0.8)
		assert.Equal(t, 1.0, c.Normalize(0.9))
		assert.Equal(t, 0.9, c.Max())
	})

	t.Run("low ceiling digitizer", func(t *testing.T) {
		c := NewCalibrationAt(0.5)
		assert.InDelta(t, 0.5, c.Normalize(0.25), 1e-12)
		assert.Equal(t, 1.0, c.Normalize(0.5))
	})

	t.Run("spike above one", func(t *testing.T) {
		c := NewCalibration()
		assert.Equal(t, 1.0, c.Normalize(2))
		assert.InDelta(t, 0.5, c.Normalize(1), 1e-12)
	})

	t.Run("malformed readings", func(t *testing.T) {
		c := NewCalibration()
		assert.Equal(t, 0.0, c.Normalize(-0.3))
		assert.Equal(t, 0.0, c.Normalize(math.NaN()))
		assert.Equal(t, 0.0, c.Normalize(math.Inf(1)))
		assert.Equal(t, 1.0, c.Max())
	})

	t.Run("new session", func(t *testing.T) {
		c := NewCalibration()
		c.Normalize(3)
		c.NewSession()
		assert.Equal(t, 1.0, c.Max())
	})

	t.Run("bad initial", func(t *testing.T) {
		assert.Equal(t, 1.0, NewCalibrationAt(0).Max())
		assert.Equal(t, 1.0, NewCalibrationAt(math.NaN()).Max())
	})
}

func TestCalibrationMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := NewCalibration()
	prev := c.Max()
	for i := 0; i < 1000; i++ {
		raw := rng.Float64()*3 - 0.5
		p := c.Normalize(raw)
		require.GreaterOrEqual(t, c.Max(), prev)
		require.GreaterOrEqual(t, p, 0.0)
		require.LessOrEqual(t, p, 1.0)
		prev = c.Max()
	}
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		name              string
		tilt, orientation float64
		wantX, wantY      float64
	}{
		{"vertical", 0, 1.3, 0, 0},
		{"flat east", math.Pi / 2, 0, 1, 0},
		{"flat south", math.Pi / 2, math.Pi / 2, 0, 1},
		{"half lean west", math.Pi / 6, math.Pi, -0.5, 0},
		{"over tilted clamps", math.Pi, 0, 1, 0},
		{"negative tilt clamps", -1, 0, 0, 0},
		{"nan tilt", math.NaN(), 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Decompose(tt.tilt, tt.orientation)
			assert.InDelta(t, tt.wantX, x, 1e-9)
			assert.InDelta(t, tt.wantY, y, 1e-9)
			assert.LessOrEqual(t, x*x+y*y, 1+1e-9)
		})
	}
}

func TestExtractMoveWithHistory(t *testing.T) {
	x := NewExtractor(nil)
	ev := &Event{
		Action:  ActionMove,
		Time:    30,
		History: []int64{10, 20},
		Pointers: []Pointer{{
			ID:   1,
			Tool: ToolStylus,
			History: []RawSample{
				{X: 1, Y: 1, Pressure: 0.2},
				{X: 2, Y: 2, Pressure: 0.4},
			},
			Sample: RawSample{X: 3, Y: 3, Pressure: 0.6},
		}},
	}

	pts := x.Extract(ev, 0)
	require.Len(t, pts, 3)
	for i, want := range []struct {
		x, p float64
		ts   int64
	}{{1, 0.2, 10}, {2, 0.4, 20}, {3, 0.6, 30}} {
		assert.Equal(t, want.x, pts[i].X)
		assert.InDelta(t, want.p, pts[i].Pressure, 1e-12)
		assert.Equal(t, want.ts, pts[i].Timestamp)
	}
}

func TestExtractHistoryMisaligned(t *testing.T) {
	x := NewExtractor(nil)
	ev := &Event{
		Action:   ActionMove,
		History:  []int64{10},
		Pointers: []Pointer{{History: []RawSample{{X: 1}, {X: 2}}, Sample: RawSample{X: 3}}},
	}
	assert.Len(t, x.Extract(ev, 0), 2)
}

func TestExtractDownUpCancel(t *testing.T) {
	x := NewExtractor(nil)
	p := Pointer{
		ID:      1,
		Tool:    ToolStylus,
		Sample:  RawSample{X: 5, Y: 6, Pressure: 0.5, Tilt: math.Pi / 2},
		History: []RawSample{{X: 4, Y: 4}},
	}
	for _, action := range []Action{ActionDown, ActionUp} {
		pts := x.Extract(&Event{Action: action, History: []int64{1}, Pointers: []Pointer{p}}, 0)
		require.Len(t, pts, 1, action.String())
		assert.Equal(t, 5.0, pts[0].X)
		assert.InDelta(t, 1, pts[0].TiltX, 1e-9)
	}
	assert.Empty(t, x.Extract(&Event{Action: ActionCancel, Pointers: []Pointer{p}}, 0))
	assert.Empty(t, x.Extract(&Event{Action: ActionDown, Pointers: []Pointer{p}}, 3))
	assert.Empty(t, x.Extract(nil, 0))
}

func TestExtractSharesCalibration(t *testing.T) {
	cal := NewCalibration()
	x := NewExtractor(cal)
	ev := &Event{Action: ActionDown, Pointers: []Pointer{{Sample: RawSample{Pressure: 1.6}}}}
	pts := x.Extract(ev, 0)
	require.Len(t, pts, 1)
	assert.Equal(t, 1.0, pts[0].Pressure)
	assert.Equal(t, 1.6, cal.Max())
	assert.Same(t, cal, x.Calibration())
}

func TestExtractNonFinitePosition(t *testing.T) {
	x := NewExtractor(nil)
	ev := &Event{
		Action:  ActionMove,
		History: []int64{1},
		Pointers: []Pointer{{
			History: []RawSample{{X: 7, Y: 8}},
			Sample:  RawSample{X: math.NaN(), Y: math.Inf(-1)},
		}},
	}
	pts := x.Extract(ev, 0)
	require.Len(t, pts, 2)
	assert.Equal(t, 7.0, pts[1].X)
	assert.Equal(t, 8.0, pts[1].Y)
}
