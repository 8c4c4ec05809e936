package session

import "github.com/gogpu/ink"

// Transform maps event coordinates to canvas coordinates. It is normally
// owned by the pan and zoom component. ok is false for points that land
// outside the canvas; those points are dropped.
type Transform interface {
	ScreenToCanvas(x, y float64) (cx, cy float64, ok bool)
}

// MatrixTransform is a Transform backed by an affine matrix. A zero Bounds
// accepts every point.
type MatrixTransform struct {
	Matrix ink.Matrix
	Bounds ink.Rect
}

// IdentityTransform returns a transform that passes points through
// unchanged and accepts all of them.
func IdentityTransform() MatrixTransform {
	return MatrixTransform{Matrix: ink.Identity()}
}

// ScreenToCanvas implements Transform.
func (t MatrixTransform) ScreenToCanvas(x, y float64) (float64, float64, bool) {
	p := t.Matrix.TransformPoint(ink.Pt(x, y))
	if !t.Bounds.Empty() && !t.Bounds.Contains(p) {
		return p.X, p.Y, false
	}
	return p.X, p.Y, true
}

// ViewTransform returns the Transform for a pan and zoom view matrix that
// maps canvas space to the screen, such as ink.Scale(zoom, zoom). bounds is
// the canvas area in canvas coordinates.
func ViewTransform(view ink.Matrix, bounds ink.Rect) MatrixTransform {
	return MatrixTransform{Matrix: view.Invert(), Bounds: bounds}
}

// CanvasToScreen maps a canvas point back to event coordinates. It ignores
// Bounds.
func (t MatrixTransform) CanvasToScreen(p ink.Point) ink.Point {
	return t.Matrix.Invert().TransformPoint(p)
}
