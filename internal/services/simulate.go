package services

import (
	"context"
	"errors"
	"fmt"
	"fracture-density-service/internal/domain"
	"fracture-density-service/internal/ports"
)

// SimulationResult is the output of one complete run.
type SimulationResult struct {
	Fractures *domain.FractureSet
	Domain    domain.Domain
	Series    domain.P10Series
}

// RunSimulation loads the fractures, derives the domain and samples P10.
//
// The reporter, when given, sees Begin before any trial and Finish only after
// a successful run; a failed run reports nothing further.
func RunSimulation(
	ctx context.Context,
	req SampleRequest,
	repo ports.FractureRepository,
	reporter ports.Reporter,
) (*SimulationResult, error) {
	if repo == nil {
		return nil, errors.New("run simulation: repository must be non-nil")
	}

	segments, err := repo.ListFractures(ctx)
	if err != nil {
		return nil, fmt.Errorf("run simulation: list fractures: %w", err)
	}

	fractures, err := domain.NewFractureSet(segments)
	if err != nil {
		return nil, fmt.Errorf("run simulation: build fracture set: %w", err)
	}
	dom := fractures.Domain()

	var observer ports.TrialObserver
	if reporter != nil {
		reporter.Begin(dom, fractures)
		observer = reporter
	}

	series, err := SampleP10(ctx, fractures, dom, req, observer)
	if err != nil {
		return nil, fmt.Errorf("run simulation: %w", err)
	}

	if reporter != nil {
		if err := reporter.Finish(series); err != nil {
			return nil, fmt.Errorf("run simulation: report: %w", err)
		}
	}

	return &SimulationResult{
		Fractures: fractures,
		Domain:    dom,
		Series:    series,
	}, nil
}
