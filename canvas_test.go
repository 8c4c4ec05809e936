package ink

import (
	"math"
	"testing"

	"golang.org/x/image/font/basicfont"
)

type countingRenderer struct {
	fills int
	last  *Path
}

func (r *countingRenderer) Fill(_ *Pixmap, p *Path, _ RGBA) error {
	r.fills++
	r.last = p
	return nil
}

func TestCanvasOptions(t *testing.T) {
	pm := NewPixmap(12, 7)
	rec := &countingRenderer{}
	dc := NewCanvas(100, 100, WithPixmap(pm), WithRenderer(rec), WithFace(basicfont.Face7x13))
	if dc.Pixmap() != pm {
		t.Error("WithPixmap ignored")
	}
	if dc.Face() != basicfont.Face7x13 {
		t.Error("WithFace ignored")
	}

	p := NewPath()
	p.Rectangle(NewRect(Pt(0, 0), Pt(1, 1)))
	if err := dc.Fill(p, Black); err != nil {
		t.Fatal(err)
	}
	if err := dc.Fill(NewPath(), Black); err != nil {
		t.Fatal(err)
	}
	if rec.fills != 1 {
		t.Errorf("fills = %d, want 1 (empty paths are skipped)", rec.fills)
	}
	if rec.last != p {
		t.Error("identity transform should pass the path through untouched")
	}
}

func TestCanvasTransform(t *testing.T) {
	rec := &countingRenderer{}
	dc := NewCanvas(10, 10, WithRenderer(rec))
	dc.SetMatrix(RotateAround(Pt(5, 5), math.Pi/2))

	p := NewPath()
	p.Rectangle(NewRect(Pt(0, 4), Pt(10, 6)))
	if err := dc.Fill(p, Black); err != nil {
		t.Fatal(err)
	}
	got := rec.last.BoundingBox()
	if !got.Approx(NewRect(Pt(4, 0), Pt(6, 10)), 1e-9) {
		t.Errorf("rotated bounds = %v", got)
	}
	if !p.BoundingBox().Approx(NewRect(Pt(0, 4), Pt(10, 6)), 1e-12) {
		t.Error("Fill modified the caller's path")
	}

	dc.ResetMatrix()
	if !dc.Matrix().IsIdentity() {
		t.Error("ResetMatrix did not restore identity")
	}
}

func TestCanvasDrawString(t *testing.T) {
	dc := NewCanvas(40, 20)
	dc.Clear(White)
	dc.DrawString("ink", Pt(2, 14), Black)

	dark := 0
	img := dc.Pixmap().Image()
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			if img.RGBAAt(x, y).R < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("DrawString drew nothing")
	}
}

func TestMeasureString(t *testing.T) {
	r := MeasureString(basicfont.Face7x13, "abc", Pt(10, 20))
	// Ink bounds: two 7 pixel advances plus the 6 pixel wide last glyph.
	if r.Width() != 20 {
		t.Errorf("width = %v, want 20", r.Width())
	}
	if r.Min.X != 10 || r.Min.Y >= 20 || r.Max.Y <= 20 {
		t.Errorf("bounds = %v", r)
	}
}
