package ink

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas is the drawing surface the preview renderer and drawables paint on.
// It pairs a Pixmap with a Renderer and a current transform that is applied
// to every filled path. Rotation of committed objects is applied here, at
// draw time, never baked into cached geometry.
type Canvas struct {
	pixmap   *Pixmap
	renderer Renderer
	matrix   Matrix
	face     font.Face
}

// NewCanvas creates a canvas of the given size.
//
// Example:
//
//	dc := ink.NewCanvas(800, 600)
//	dc.Clear(ink.White)
//	_ = dc.Fill(path, ink.Black)
//	_ = dc.Pixmap().SavePNG("out.png")
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.pixmap == nil {
		o.pixmap = NewPixmap(width, height)
	}
	if o.renderer == nil {
		o.renderer = NewSoftwareRenderer()
	}
	if o.face == nil {
		o.face = basicfont.Face7x13
	}
	return &Canvas{
		pixmap:   o.pixmap,
		renderer: o.renderer,
		matrix:   Identity(),
		face:     o.face,
	}
}

// Pixmap returns the canvas pixels.
func (dc *Canvas) Pixmap() *Pixmap {
	return dc.pixmap
}

// Clear fills the whole canvas with c, ignoring the transform.
func (dc *Canvas) Clear(c RGBA) {
	dc.pixmap.Clear(c)
}

// Matrix returns the current transform.
func (dc *Canvas) Matrix() Matrix {
	return dc.matrix
}

// SetMatrix replaces the current transform.
func (dc *Canvas) SetMatrix(m Matrix) {
	dc.matrix = m
}

// ResetMatrix restores the identity transform.
func (dc *Canvas) ResetMatrix() {
	dc.matrix = Identity()
}

// Fill fills p with c through the current transform.
func (dc *Canvas) Fill(p *Path, c RGBA) error {
	if p.Empty() {
		return nil
	}
	if !dc.matrix.IsIdentity() {
		p = p.Transform(dc.matrix)
	}
	return dc.renderer.Fill(dc.pixmap, p, c)
}

// Face returns the font face used by DrawString.
func (dc *Canvas) Face() font.Face {
	return dc.face
}

// DrawString draws s with its baseline origin at pt. The origin goes through
// the current transform but glyphs are always drawn upright.
func (dc *Canvas) DrawString(s string, pt Point, c RGBA) {
	dc.DrawStringFace(dc.face, s, pt, c)
}

// DrawStringFace is DrawString with an explicit face.
func (dc *Canvas) DrawStringFace(face font.Face, s string, pt Point, c RGBA) {
	pt = dc.matrix.TransformPoint(pt)
	d := font.Drawer{
		Dst:  dc.pixmap.Image(),
		Src:  image.NewUniform(c.Color()),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(pt.X * 64), Y: fixed.Int26_6(pt.Y * 64)},
	}
	d.DrawString(s)
}

// MeasureString returns the bounds of s drawn with face at baseline origin pt.
func MeasureString(face font.Face, s string, pt Point) Rect {
	b, _ := font.BoundString(face, s)
	return Rect{
		Min: Point{X: pt.X + fromFixed(b.Min.X), Y: pt.Y + fromFixed(b.Min.Y)},
		Max: Point{X: pt.X + fromFixed(b.Max.X), Y: pt.Y + fromFixed(b.Max.Y)},
	}
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
