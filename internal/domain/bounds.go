package domain

import (
	"errors"
	"math"
)

// Edge names one side of the domain rectangle.
type Edge string

const (
	EdgeBottom Edge = "bottom" // y = 0
	EdgeTop    Edge = "top"    // y = YMax
	EdgeLeft   Edge = "left"   // x = 0
	EdgeRight  Edge = "right"  // x = XMax
)

// Domain is the sampling rectangle [0, XMax] x [0, YMax].
// It is derived once from the fracture endpoints and never changes.
type Domain struct {
	XMax float64
	YMax float64
}

// DomainFromSegments takes the maxima over every endpoint coordinate.
func DomainFromSegments(segments []Segment) (Domain, error) {
	if len(segments) == 0 {
		return Domain{}, &MalformedInputError{Reason: "no fractures", Err: errors.New("domain requires at least one fracture")}
	}

	d := Domain{XMax: math.Inf(-1), YMax: math.Inf(-1)}
	for _, s := range segments {
		d.XMax = math.Max(d.XMax, math.Max(s.P0.X, s.P1.X))
		d.YMax = math.Max(d.YMax, math.Max(s.P0.Y, s.P1.Y))
	}
	return d, nil
}

// Validate rejects domains with no area; no borehole can be clipped to them.
func (d Domain) Validate() error {
	if !(d.XMax > 0) || !(d.YMax > 0) || math.IsInf(d.XMax, 0) || math.IsInf(d.YMax, 0) {
		return &GeometryError{Op: "validate domain", Kind: KindDegenerateDomain}
	}
	return nil
}

func (d Domain) Contains(p Point) bool {
	return p.X >= 0 && p.X <= d.XMax && p.Y >= 0 && p.Y <= d.YMax
}

// Tolerance is the absolute slack used for boundary comparisons.
func (d Domain) Tolerance() float64 {
	return 1e-9 * math.Max(1, math.Max(d.XMax, d.YMax))
}

// Edges lists the boundary edges p lies on. Corners report two edges,
// interior and exterior points report none.
func (d Domain) Edges(p Point) []Edge {
	tol := d.Tolerance()
	if p.X < -tol || p.X > d.XMax+tol || p.Y < -tol || p.Y > d.YMax+tol {
		return nil
	}

	var edges []Edge
	if math.Abs(p.Y) <= tol {
		edges = append(edges, EdgeBottom)
	}
	if math.Abs(p.Y-d.YMax) <= tol {
		edges = append(edges, EdgeTop)
	}
	if math.Abs(p.X) <= tol {
		edges = append(edges, EdgeLeft)
	}
	if math.Abs(p.X-d.XMax) <= tol {
		edges = append(edges, EdgeRight)
	}
	return edges
}

// Corners returns the rectangle vertices counter-clockwise from the origin.
func (d Domain) Corners() [4]Point {
	return [4]Point{{0, 0}, {d.XMax, 0}, {d.XMax, d.YMax}, {0, d.YMax}}
}
