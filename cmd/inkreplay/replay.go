package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/config"
	"github.com/gogpu/ink/input"
	"github.com/gogpu/ink/internal/trace"
	"github.com/gogpu/ink/object"
	"github.com/gogpu/ink/preview"
	"github.com/gogpu/ink/session"
)

const (
	defaultWidth  = 800
	defaultHeight = 600

	eraseMarkRadius = 3.0
)

var (
	hoverColor = ink.Hex("#3366e6")
	rawColor   = ink.Hex("#e6333399")
	eraseColor = ink.Hex("#ff800080")
	labelColor = ink.Hex("#666")
)

type options struct {
	trace   string
	config  string
	out     string
	preview string
	dump    string
	width   int
	height  int
	zoom    float64
}

type summary struct {
	events   int
	strokes  int
	erased   int
	rejected int
}

// view maps canvas space to image pixels.
func (o options) view() ink.Matrix {
	if !(o.zoom > 0) {
		return ink.Identity()
	}
	return ink.Scale(o.zoom, o.zoom)
}

func (o options) loadConfig() (config.Config, error) {
	if o.config == "" {
		return config.Default(), nil
	}
	return config.Load(o.config)
}

// board is the object manager for a replay: it owns committed drawables
// and applies erase requests to them.
type board struct {
	objects []object.Drawable
	erased  int
}

func (b *board) apply(m session.Message) {
	switch m := m.(type) {
	case session.StrokeCommitted:
		b.objects = append(b.objects, m.Stroke)
	case session.EraseRequested:
		before := len(b.objects)
		b.objects = slices.DeleteFunc(b.objects, func(d object.Drawable) bool {
			for _, pt := range m.Points {
				if object.HitTest(d, pt) {
					return true
				}
			}
			return false
		})
		b.erased += before - len(b.objects)
	}
}

func (b *board) strokes() []*object.Stroke {
	var out []*object.Stroke
	for _, d := range b.objects {
		if s, ok := d.(*object.Stroke); ok {
			out = append(out, s)
		}
	}
	return out
}

func replay(o options) (summary, error) {
	var sum summary

	cfg, err := o.loadConfig()
	if err != nil {
		return sum, err
	}
	tr, err := trace.Load(o.trace)
	if err != nil {
		return sum, err
	}
	events, err := tr.InputEvents()
	if err != nil {
		return sum, err
	}
	w, h := size(o.width, tr.Width, defaultWidth), size(o.height, tr.Height, defaultHeight)

	msgs := make(chan session.Message)
	done := make(chan struct{})
	b := &board{}
	go func() {
		defer close(done)
		for m := range msgs {
			b.apply(m)
		}
	}()

	view := o.view()
	// The canvas area is the image area seen through the view.
	area := ink.NewRect(ink.Pt(0, 0), view.Invert().TransformPoint(ink.Pt(float64(w), float64(h))))
	s := session.New(append(cfg.SessionOptions(),
		session.WithTransform(session.ViewTransform(view, area)),
		session.WithMessages(msgs),
	)...)

	pv := newPreviewer(o.preview, w, h, view, cfg)
	for _, ev := range events {
		res := s.Handle(ev)
		sum.events++
		if res.Outcome == session.OutcomeRejected {
			sum.rejected++
		}
		if err := pv.observe(ev, res, s.Style()); err != nil {
			close(msgs)
			<-done
			return sum, err
		}
	}
	close(msgs)
	<-done

	sum.strokes = len(b.strokes())
	sum.erased = b.erased

	dc := ink.NewCanvas(w, h)
	dc.Clear(ink.White)
	dc.SetMatrix(view)
	for _, d := range b.objects {
		if err := object.Draw(dc, d); err != nil {
			return sum, err
		}
	}
	dc.ResetMatrix()
	if tr.Name != "" {
		label := object.NewText(tr.Name, ink.Pt(4, float64(h)-4), labelColor, dc.Face())
		if err := object.Draw(dc, label); err != nil {
			return sum, err
		}
	}
	if err := dc.Pixmap().SavePNG(o.out); err != nil {
		return sum, err
	}
	if err := pv.save(); err != nil {
		return sum, err
	}
	if o.dump != "" {
		if err := writeDump(o.dump, b.strokes()); err != nil {
			return sum, err
		}
	}
	return sum, nil
}

func size(fromFlag, fromTrace, fallback int) int {
	switch {
	case fromFlag > 0:
		return fromFlag
	case fromTrace > 0:
		return fromTrace
	}
	return fallback
}

func writeDump(path string, strokes []*object.Stroke) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return trace.WriteStrokes(f, strokes)
}

// previewer draws what the live preview showed during the replay: every
// stroke as it looked just before commit, the raw sample path on top,
// hover indicators and eraser marks.
type previewer struct {
	path     string
	dc       *ink.Canvas
	renderer *preview.Renderer
	pending  []ink.SamplePoint
}

func newPreviewer(path string, w, h int, view ink.Matrix, cfg config.Config) *previewer {
	if path == "" {
		return &previewer{}
	}
	dc := ink.NewCanvas(w, h)
	dc.Clear(ink.White)
	dc.SetMatrix(view)
	return &previewer{path: path, dc: dc, renderer: preview.New(cfg.Builder())}
}

func (p *previewer) observe(ev *input.Event, res session.Result, st session.Style) error {
	if p.dc == nil {
		return nil
	}
	switch res.Outcome {
	case session.OutcomeDrawing:
		if ev.Action == input.ActionDown {
			p.pending = p.pending[:0]
		}
		p.pending = append(p.pending, res.Points...)
	case session.OutcomeCancelled:
		p.pending = p.pending[:0]
	case session.OutcomeCommitted:
		p.pending = append(p.pending, res.Points...)
		if err := p.renderer.Render(p.dc, p.pending, st.Width, st.Color); err != nil {
			return err
		}
		raw := make([]ink.Point, len(p.pending))
		for i, s := range p.pending {
			raw[i] = s.Pos()
		}
		if err := object.Draw(p.dc, object.NewPolyline(raw, 1, rawColor)); err != nil {
			return err
		}
		p.pending = p.pending[:0]
	case session.OutcomeHover:
		return p.renderer.RenderHover(p.dc, res.Hover, st.Width, hoverColor)
	case session.OutcomeErase:
		for _, s := range res.Points {
			c := s.Pos()
			mark := object.NewShape(object.KindEllipse,
				ink.Pt(c.X-eraseMarkRadius, c.Y-eraseMarkRadius),
				ink.Pt(c.X+eraseMarkRadius, c.Y+eraseMarkRadius), eraseColor)
			if err := object.Draw(p.dc, mark); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *previewer) save() error {
	if p.dc == nil {
		return nil
	}
	return p.dc.Pixmap().SavePNG(p.path)
}
