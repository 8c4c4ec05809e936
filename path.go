package ink

// PathElement represents a single element in a path.
// The set of elements is closed: MoveTo, LineTo, QuadTo, CubicTo and Close.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight segment to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Orientation is the winding direction of a closed contour, expressed as
// the sign of its Area.
type Orientation int8

const (
	// Positive contours have positive Area (clockwise on a y-down canvas).
	Positive Orientation = 1
	// Negative contours have negative Area.
	Negative Orientation = -1
)

// OrientationOf returns the orientation matching a signed area.
// Degenerate (zero) areas count as Positive.
func OrientationOf(area float64) Orientation {
	if area < 0 {
		return Negative
	}
	return Positive
}

// Path is a vector path made of one or more subpaths.
// All subpaths are filled together with the nonzero winding rule.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt Point) {
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a straight segment to pt.
func (p *Path) LineTo(pt Point) {
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadTo draws a quadratic Bezier curve through ctrl to pt.
func (p *Path) QuadTo(ctrl, pt Point) {
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(ctrl1, ctrl2, pt Point) {
	p.elements = append(p.elements, CubicTo{Control1: ctrl1, Control2: ctrl2, Point: pt})
	p.current = pt
}

// Close closes the current subpath by drawing a line to its start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// Empty reports whether the path has no elements.
func (p *Path) Empty() bool {
	return p == nil || len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Circle adds a closed circle with the given orientation, built from four
// cubic Bezier quarters.
func (p *Path) Circle(c Point, r float64, o Orientation) {
	// 4/3 * (sqrt(2) - 1)
	const k = 0.5522847498307936
	off := r * k
	s := float64(o) // flips the y axis for Negative circles

	p.MoveTo(Pt(c.X+r, c.Y))
	p.CubicTo(Pt(c.X+r, c.Y+s*off), Pt(c.X+off, c.Y+s*r), Pt(c.X, c.Y+s*r))
	p.CubicTo(Pt(c.X-off, c.Y+s*r), Pt(c.X-r, c.Y+s*off), Pt(c.X-r, c.Y))
	p.CubicTo(Pt(c.X-r, c.Y-s*off), Pt(c.X-off, c.Y-s*r), Pt(c.X, c.Y-s*r))
	p.CubicTo(Pt(c.X+off, c.Y-s*r), Pt(c.X+r, c.Y-s*off), Pt(c.X+r, c.Y))
	p.Close()
}

// Ellipse adds a closed, Positive axis-aligned ellipse.
func (p *Path) Ellipse(c Point, rx, ry float64) {
	const k = 0.5522847498307936
	ox := rx * k
	oy := ry * k

	p.MoveTo(Pt(c.X+rx, c.Y))
	p.CubicTo(Pt(c.X+rx, c.Y+oy), Pt(c.X+ox, c.Y+ry), Pt(c.X, c.Y+ry))
	p.CubicTo(Pt(c.X-ox, c.Y+ry), Pt(c.X-rx, c.Y+oy), Pt(c.X-rx, c.Y))
	p.CubicTo(Pt(c.X-rx, c.Y-oy), Pt(c.X-ox, c.Y-ry), Pt(c.X, c.Y-ry))
	p.CubicTo(Pt(c.X+ox, c.Y-ry), Pt(c.X+rx, c.Y-oy), Pt(c.X+rx, c.Y))
	p.Close()
}

// Polygon adds a closed polygon through pts. Fewer than three points add
// nothing.
func (p *Path) Polygon(pts ...Point) {
	if len(pts) < 3 {
		return
	}
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	p.Close()
}

// Rectangle adds a closed, Positive rectangle.
func (p *Path) Rectangle(r Rect) {
	p.Polygon(r.Min, Pt(r.Max.X, r.Min.Y), r.Max, Pt(r.Min.X, r.Max.Y))
}

// Append adds all subpaths of other to p.
func (p *Path) Append(other *Path) {
	if other.Empty() {
		return
	}
	p.elements = append(p.elements, other.elements...)
	p.start = other.start
	p.current = other.current
}

// Transform returns a copy of the path with m applied to every point.
func (p *Path) Transform(m Matrix) *Path {
	result := &Path{elements: make([]PathElement, 0, len(p.elements))}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.MoveTo(m.TransformPoint(e.Point))
		case LineTo:
			result.LineTo(m.TransformPoint(e.Point))
		case QuadTo:
			result.QuadTo(m.TransformPoint(e.Control), m.TransformPoint(e.Point))
		case CubicTo:
			result.CubicTo(m.TransformPoint(e.Control1), m.TransformPoint(e.Control2), m.TransformPoint(e.Point))
		case Close:
			result.Close()
		}
	}
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{elements: make([]PathElement, len(p.elements))}
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}
