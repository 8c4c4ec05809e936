package ink

// Area returns the signed area enclosed by the path (Green's theorem,
// exact for line, quadratic and cubic segments).
// Positive for clockwise paths on a y-down canvas. Open subpaths are
// closed implicitly.
func (p *Path) Area() float64 {
	var area float64
	var current, start Point
	open := false

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if open {
				area += lineArea(current, start)
			}
			start = e.Point
			current = e.Point
			open = true
		case LineTo:
			area += lineArea(current, e.Point)
			current = e.Point
		case QuadTo:
			area += quadArea(current, e.Control, e.Point)
			current = e.Point
		case CubicTo:
			area += cubicArea(current, e.Control1, e.Control2, e.Point)
			current = e.Point
		case Close:
			area += lineArea(current, start)
			current = start
			open = false
		}
	}
	if open {
		area += lineArea(current, start)
	}
	return area
}

// lineArea is the shoelace contribution of a line segment.
func lineArea(p0, p1 Point) float64 {
	return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
}

// quadArea integrates the area contribution of a quadratic Bezier.
func quadArea(p0, p1, p2 Point) float64 {
	return (p0.X*(2*p1.Y+p2.Y) + 2*p1.X*(p2.Y-p0.Y) - p2.X*(p0.Y+2*p1.Y)) / 6.0
}

// cubicArea integrates the area contribution of a cubic Bezier.
func cubicArea(p0, p1, p2, p3 Point) float64 {
	return (p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
		3*p1.X*(-2*p0.Y+p2.Y+p3.Y) +
		3*p2.X*(-p0.Y-p1.Y+2*p3.Y) +
		p3.X*(-p0.Y-3*p1.Y-6*p2.Y)) / 20.0
}

// BoundingBox returns the tight axis-aligned bounding box of the path,
// using curve extrema rather than control points.
func (p *Path) BoundingBox() Rect {
	if p.Empty() {
		return Rect{}
	}

	var bbox Rect
	var current Point
	first := true
	include := func(r Rect) {
		if first {
			bbox = r
			first = false
			return
		}
		// Union would drop a degenerate box at the origin.
		bbox = bbox.Include(r.Min).Include(r.Max)
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			include(NewRect(e.Point, e.Point))
			current = e.Point
		case LineTo:
			include(NewRect(current, e.Point))
			current = e.Point
		case QuadTo:
			include(QuadBez{P0: current, P1: e.Control, P2: e.Point}.BoundingBox())
			current = e.Point
		case CubicTo:
			include(CubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}.BoundingBox())
			current = e.Point
		case Close:
		}
	}
	return bbox
}
