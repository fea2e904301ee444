package domain

// Segment is a straight line between two distinct points.
// Fractures and boreholes are both segments.
type Segment struct {
	P0 Point
	P1 Point
}

// NewSegment builds a segment, rejecting zero-length input.
func NewSegment(p0, p1 Point) (Segment, error) {
	if p0 == p1 {
		return Segment{}, &GeometryError{Op: "new segment", Kind: KindZeroLength}
	}
	return Segment{P0: p0, P1: p1}, nil
}

func (s Segment) Length() float64 {
	return s.P0.Distance(s.P1)
}

// Crosses reports whether s and o intersect at a single interior point of both.
//
// Each segment's endpoints must lie strictly on opposite sides of the other's
// supporting line. Endpoint contact, T-junctions and collinear overlap are not
// crossings, so a segment never crosses itself.
func (s Segment) Crosses(o Segment) bool {
	d1 := orientation(o.P0, o.P1, s.P0)
	d2 := orientation(o.P0, o.P1, s.P1)
	d3 := orientation(s.P0, s.P1, o.P0)
	d4 := orientation(s.P0, s.P1, o.P1)

	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// orientation is the z component of (b-a) x (c-a): positive when c is left of a->b.
func orientation(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
