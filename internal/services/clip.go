package services

import (
	"fracture-density-service/internal/domain"
	"math"
)

// ClipToDomain returns the part of the infinite line through p0 and p1 that
// lies inside the domain rectangle.
//
// The line is written as y = grad*x + c and intersected with the four edges.
// Candidates outside the opposite axis range are discarded, coincident
// candidates (corner hits) are merged, and exactly two points must remain.
// If more survive only because of rounding slack, the farthest pair is kept.
// Vertical and horizontal lines are clipped directly since they have no
// usable slope/intercept form.
func ClipToDomain(p0, p1 domain.Point, dom domain.Domain) (domain.Segment, error) {
	const op = "clip to domain"

	if err := dom.Validate(); err != nil {
		return domain.Segment{}, err
	}
	if p0 == p1 {
		return domain.Segment{}, &domain.GeometryError{Op: op, Kind: domain.KindCoincidentPoints}
	}

	tol := dom.Tolerance()

	if p0.X == p1.X {
		if p0.X < -tol || p0.X > dom.XMax+tol {
			return domain.Segment{}, &domain.GeometryError{Op: op, Kind: domain.KindBoundaryCount, Count: 0}
		}
		x := clamp(p0.X, dom.XMax)
		return domain.NewSegment(domain.Point{X: x, Y: 0}, domain.Point{X: x, Y: dom.YMax})
	}

	grad := (p1.Y - p0.Y) / (p1.X - p0.X)
	if math.IsInf(grad, 0) || math.IsNaN(grad) {
		return domain.Segment{}, &domain.GeometryError{Op: op, Kind: domain.KindDivisionByZero}
	}

	if grad == 0 {
		if p0.Y < -tol || p0.Y > dom.YMax+tol {
			return domain.Segment{}, &domain.GeometryError{Op: op, Kind: domain.KindBoundaryCount, Count: 0}
		}
		y := clamp(p0.Y, dom.YMax)
		return domain.NewSegment(domain.Point{X: 0, Y: y}, domain.Point{X: dom.XMax, Y: y})
	}

	c := p0.Y - grad*p0.X

	candidates := []boundaryCandidate{
		{domain.Point{X: -c / grad, Y: 0}, -c / grad, dom.XMax},
		{domain.Point{X: (dom.YMax - c) / grad, Y: dom.YMax}, (dom.YMax - c) / grad, dom.XMax},
		{domain.Point{X: 0, Y: c}, c, dom.YMax},
		{domain.Point{X: dom.XMax, Y: grad*dom.XMax + c}, grad*dom.XMax + c, dom.YMax},
	}

	// Exact bounds first; the tolerance only rescues crossings lost to rounding.
	accepted := acceptCandidates(candidates, dom, 0)
	if len(accepted) < 2 {
		accepted = acceptCandidates(candidates, dom, tol)
	}
	if len(accepted) > 2 {
		accepted = farthestPair(accepted)
	}

	if len(accepted) != 2 {
		return domain.Segment{}, &domain.GeometryError{Op: op, Kind: domain.KindBoundaryCount, Count: len(accepted)}
	}

	return domain.NewSegment(accepted[0], accepted[1])
}

type boundaryCandidate struct {
	pt    domain.Point
	along float64 // coordinate checked against the edge's own axis
	max   float64
}

// acceptCandidates keeps candidates within [-tol, max+tol] along their edge,
// clamped into the domain, with near-duplicates (corner hits) merged.
func acceptCandidates(candidates []boundaryCandidate, dom domain.Domain, tol float64) []domain.Point {
	merge := dom.Tolerance()

	accepted := make([]domain.Point, 0, len(candidates))
	for _, cand := range candidates {
		if math.IsNaN(cand.along) || cand.along < -tol || cand.along > cand.max+tol {
			continue
		}

		pt := domain.Point{X: clamp(cand.pt.X, dom.XMax), Y: clamp(cand.pt.Y, dom.YMax)}
		if !dom.Contains(pt) {
			continue
		}

		duplicate := false
		for _, a := range accepted {
			if a.NearlyEqual(pt, merge) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			accepted = append(accepted, pt)
		}
	}
	return accepted
}

func farthestPair(pts []domain.Point) []domain.Point {
	best := []domain.Point{pts[0], pts[1]}
	bestDist := pts[0].Distance(pts[1])
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if d := pts[i].Distance(pts[j]); d > bestDist {
				best = []domain.Point{pts[i], pts[j]}
				bestDist = d
			}
		}
	}
	return best
}

func clamp(v, hi float64) float64 {
	return math.Min(math.Max(v, 0), hi)
}
