package services

import (
	"fmt"
	"fracture-density-service/internal/domain"
	"fracture-density-service/internal/ports"
)

// BoreholeGenerator draws randomly oriented boreholes that span the domain.
type BoreholeGenerator struct {
	rng ports.RandomSource
}

func NewBoreholeGenerator(rng ports.RandomSource) *BoreholeGenerator {
	return &BoreholeGenerator{rng: rng}
}

// Generate picks two uniform points inside the domain and clips the line
// through them to the domain boundary. Clipping errors are returned as is,
// wrapped with context; retry policy belongs to the caller.
func (g *BoreholeGenerator) Generate(dom domain.Domain) (domain.Segment, error) {
	p0 := domain.Point{X: g.rng.Float64() * dom.XMax, Y: g.rng.Float64() * dom.YMax}
	p1 := domain.Point{X: g.rng.Float64() * dom.XMax, Y: g.rng.Float64() * dom.YMax}

	bh, err := ClipToDomain(p0, p1, dom)
	if err != nil {
		return domain.Segment{}, fmt.Errorf("generate borehole: %w", err)
	}
	return bh, nil
}
