package session

import (
	"math"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/input"
	"github.com/gogpu/ink/object"
	"github.com/gogpu/ink/outline"
	"github.com/gogpu/ink/preview"
)

// DefaultWidth is the base stroke width of DefaultStyle.
const DefaultWidth = 4.0

// Mode is the selected tool.
type Mode uint8

const (
	// ModeDraw turns pen, finger and mouse input into strokes.
	ModeDraw Mode = iota
	// ModeSelect leaves input to the selection tool: fingers are tolerated
	// next to an engaged pen and nothing is drawn.
	ModeSelect
	// ModeErase turns every drawing gesture into erase requests.
	ModeErase
)

func (m Mode) String() string {
	switch m {
	case ModeDraw:
		return "draw"
	case ModeSelect:
		return "select"
	case ModeErase:
		return "erase"
	default:
		return "unknown"
	}
}

// Style is the pen used for new strokes.
type Style struct {
	Width float64
	Color ink.RGBA
	Tilt  bool
}

// DefaultStyle returns a black pen of DefaultWidth with tilt shaping on.
func DefaultStyle() Style {
	return Style{Width: DefaultWidth, Color: ink.Black, Tilt: true}
}

func (st Style) sanitize() Style {
	if !(st.Width > 0) || math.IsInf(st.Width, 0) {
		st.Width = DefaultWidth
	}
	return st
}

// Outcome says what Handle did with an event.
type Outcome uint8

const (
	// OutcomeIgnored events had nothing to act on.
	OutcomeIgnored Outcome = iota
	// OutcomeRejected events were classified as a resting palm.
	OutcomeRejected
	// OutcomePassThrough events belong to another tool.
	OutcomePassThrough
	// OutcomeDrawing events extended the in-progress stroke.
	OutcomeDrawing
	// OutcomeCommitted events finished a stroke.
	OutcomeCommitted
	// OutcomeCancelled events discarded the in-progress stroke.
	OutcomeCancelled
	// OutcomeErase events carried eraser points.
	OutcomeErase
	// OutcomeHover events moved the hover indicator.
	OutcomeHover
)

var outcomeNames = [...]string{
	OutcomeIgnored:     "ignored",
	OutcomeRejected:    "rejected",
	OutcomePassThrough: "pass-through",
	OutcomeDrawing:     "drawing",
	OutcomeCommitted:   "committed",
	OutcomeCancelled:   "cancelled",
	OutcomeErase:       "erase",
	OutcomeHover:       "hover",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Result is the outcome of one Handle call.
type Result struct {
	Outcome        Outcome
	Classification input.Classification
	// Points are the canvas-space samples the event contributed: appended
	// stroke samples, or eraser positions.
	Points []ink.SamplePoint
	// Hover is the indicator position for OutcomeHover.
	Hover ink.Point
	// Stroke is set for OutcomeCommitted.
	Stroke *object.Stroke
}

// Session turns raw events into strokes. It owns the classifier, the
// extractor and the in-progress buffer of one input surface.
//
// A Session is not safe for concurrent use; events must be handled one at
// a time, in delivery order.
type Session struct {
	classifier  *input.Classifier
	extractor   *input.Extractor
	calibration *input.Calibration
	transform   Transform
	builder     *outline.Builder
	preview     *preview.Renderer
	alpha       float64
	style       Style
	mode        Mode
	marginFloor float64
	messages    chan<- Message

	buffer  []ink.SamplePoint
	drawing bool
	pointer input.PointerID

	hovering bool
	hover    ink.Point
}

// New creates a session in ModeDraw.
func New(opts ...Option) *Session {
	s := defaultSession()
	for _, opt := range opts {
		opt(&s)
	}
	if s.calibration == nil {
		s.calibration = input.NewCalibration()
	}
	s.classifier = input.NewClassifier()
	s.extractor = input.NewExtractor(s.calibration)
	s.preview = preview.New(s.builder)
	return &s
}

// Mode returns the selected tool.
func (s *Session) Mode() Mode { return s.mode }

// Style returns the current pen.
func (s *Session) Style() Style { return s.style }

// Calibration returns the pressure calibration shared by all strokes of
// the session.
func (s *Session) Calibration() *input.Calibration { return s.calibration }

// Classifier returns the palm-rejection state machine.
func (s *Session) Classifier() *input.Classifier { return s.classifier }

// Drawing reports whether a stroke is in progress.
func (s *Session) Drawing() bool { return s.drawing }

// Buffer returns the in-progress samples in canvas space. The slice is
// only valid until the next Handle call and must not be modified.
func (s *Session) Buffer() []ink.SamplePoint { return s.buffer }

// Hover returns the hover indicator position, if a pen is hovering.
func (s *Session) Hover() (ink.Point, bool) { return s.hover, s.hovering }

// SetMode switches tools. An in-progress stroke is discarded.
func (s *Session) SetMode(m Mode) {
	if m == s.mode {
		return
	}
	s.Reset()
	s.mode = m
	s.send(ToolChanged{Mode: s.mode, Style: s.style})
}

// SetStyle changes the pen. An in-progress stroke is discarded.
func (s *Session) SetStyle(st Style) {
	st = st.sanitize()
	if st == s.style {
		return
	}
	s.Reset()
	s.style = st
	s.send(ToolChanged{Mode: s.mode, Style: s.style})
}

// Reset discards the in-progress stroke, if any.
func (s *Session) Reset() {
	if !s.drawing {
		return
	}
	n := len(s.buffer)
	s.buffer = nil
	s.drawing = false
	ink.Logger().Debug("session: gesture reset", "discarded", n)
	s.send(GestureReset{Discarded: n})
}

// Handle processes one raw event.
func (s *Session) Handle(ev *input.Event) Result {
	cls := s.classifier.Classify(ev, input.Policy{TolerateFinger: s.mode == ModeSelect})
	res := Result{Classification: cls}
	switch {
	case cls.Primary < 0:
		return res
	case cls.PalmRejected:
		res.Outcome = OutcomeRejected
		return res
	case s.mode == ModeSelect:
		res.Outcome = OutcomePassThrough
		return res
	}

	if ev.Action == input.ActionHover {
		return s.handleHover(ev, res)
	}
	if ev.Action == input.ActionDown {
		s.hovering = false
	}
	if cls.Erase || s.mode == ModeErase {
		return s.handleErase(ev, res)
	}
	return s.handleDraw(ev, res)
}

func (s *Session) handleHover(ev *input.Event, res Result) Result {
	pts := s.canvasSamples(ev, res.Classification.Primary)
	if len(pts) == 0 {
		s.hovering = false
		return res
	}
	s.hover = pts[len(pts)-1].Pos()
	s.hovering = true
	res.Outcome = OutcomeHover
	res.Hover = s.hover
	return res
}

func (s *Session) handleErase(ev *input.Event, res Result) Result {
	if ev.Action == input.ActionCancel {
		return res
	}
	idx := res.Classification.Primary
	switch ev.Action {
	case input.ActionDown:
		s.Reset()
		idx = ev.ActionPointer()
	case input.ActionUp:
		idx = ev.ActionPointer()
	}
	pts := s.canvasSamples(ev, idx)
	if len(pts) == 0 {
		return res
	}
	res.Outcome = OutcomeErase
	res.Points = pts
	touched := make([]ink.Point, len(pts))
	for i, p := range pts {
		touched[i] = p.Pos()
	}
	s.send(EraseRequested{Points: touched})
	return res
}

func (s *Session) handleDraw(ev *input.Event, res Result) Result {
	switch ev.Action {
	case input.ActionDown:
		idx := ev.ActionPointer()
		p := ev.Pointers[idx]
		if s.drawing {
			// A new pen takes over the gesture; any other pointer going
			// down starts a multi-touch gesture that has priority.
			s.Reset()
			if !input.SourceOf(p.Tool).IsPen() {
				res.Outcome = OutcomeCancelled
				return res
			}
		}
		s.drawing = true
		s.pointer = p.ID
		s.buffer = s.buffer[:0]
		res.Points = s.appendSamples(ev, idx)
		res.Outcome = OutcomeDrawing

	case input.ActionMove:
		idx := s.drawingIndex(ev)
		if idx < 0 {
			return res
		}
		res.Points = s.appendSamples(ev, idx)
		res.Outcome = OutcomeDrawing

	case input.ActionUp:
		idx := ev.ActionPointer()
		if !s.drawing || ev.Pointers[idx].ID != s.pointer {
			return res
		}
		res.Points = s.appendSamples(ev, idx)
		if st := s.commit(); st != nil {
			res.Outcome = OutcomeCommitted
			res.Stroke = st
		} else {
			res.Outcome = OutcomeCancelled
		}

	case input.ActionCancel:
		if s.drawing {
			s.Reset()
			res.Outcome = OutcomeCancelled
		}
	}
	return res
}

// drawingIndex returns the index of the drawing pointer in ev, or -1.
func (s *Session) drawingIndex(ev *input.Event) int {
	if !s.drawing {
		return -1
	}
	for i, p := range ev.Pointers {
		if p.ID == s.pointer {
			return i
		}
	}
	return -1
}

// canvasSamples extracts the samples of pointer idx and maps them to
// canvas space, dropping those outside the canvas.
func (s *Session) canvasSamples(ev *input.Event, idx int) []ink.SamplePoint {
	raw := s.extractor.Extract(ev, idx)
	out := raw[:0]
	for _, p := range raw {
		x, y, ok := s.transform.ScreenToCanvas(p.X, p.Y)
		if !ok {
			continue
		}
		p.X, p.Y = x, y
		out = append(out, p)
	}
	return out
}

func (s *Session) appendSamples(ev *input.Event, idx int) []ink.SamplePoint {
	pts := s.canvasSamples(ev, idx)
	s.buffer = append(s.buffer, pts...)
	return pts
}

// commit smooths the buffer into a Stroke and clears it. An empty buffer
// commits nothing.
func (s *Session) commit() *object.Stroke {
	points := s.buffer
	s.buffer = nil
	s.drawing = false
	if len(points) == 0 {
		s.send(GestureReset{})
		return nil
	}

	smoothed := outline.SmoothPressure(points, s.alpha)
	st := object.NewStroke(smoothed, s.style.Width, s.style.Color, s.style.Tilt,
		object.WithBuilder(s.builder),
		object.WithTouchMarginFloor(s.marginFloor))
	ink.Logger().Info("session: stroke committed",
		"points", len(smoothed), "width", s.style.Width, "tilt", s.style.Tilt)
	s.send(StrokeCommitted{Stroke: st})
	return st
}

// RenderPreview draws the in-progress stroke and the hover indicator.
func (s *Session) RenderPreview(dc *ink.Canvas) error {
	if err := s.preview.Render(dc, s.buffer, s.style.Width, s.style.Color); err != nil {
		return err
	}
	if s.hovering && !s.drawing {
		return s.preview.RenderHover(dc, s.hover, s.style.Width, s.style.Color)
	}
	return nil
}

func (s *Session) send(m Message) {
	if s.messages != nil {
		s.messages <- m
	}
}
