package services

import (
	"context"
	"errors"
	"fmt"
	"fracture-density-service/internal/domain"
	"fracture-density-service/internal/platform/obs"
	"fracture-density-service/internal/ports"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultTrials     = 50
	DefaultMaxRedraws = 10
)

type SampleRequest struct {
	Trials int
	Seed   uint64
	// Additional draws allowed per trial after a geometry failure.
	// Zero makes the first failure fatal.
	MaxRedraws int
	// Trials run concurrently when Workers > 1.
	Workers int
	// Source builds the random source for one trial. Nil uses a PCG
	// stream seeded from (Seed, index).
	Source func(seed uint64, index int) ports.RandomSource
}

func (r SampleRequest) trialSource(index int) ports.RandomSource {
	if r.Source != nil {
		return r.Source(r.Seed, index)
	}
	return newTrialSource(r.Seed, index)
}

// SampleP10 runs req.Trials independent borehole trials against the fracture
// set and returns crossings/length for each, in trial order.
//
// Every trial owns a PCG source seeded from (Seed, trial index), so the
// series depends only on the seed, never on scheduling. Any trial failure
// aborts the run and no partial series is returned. On success, trials are
// passed to observer (if non-nil) in order.
func SampleP10(
	ctx context.Context,
	fractures *domain.FractureSet,
	dom domain.Domain,
	req SampleRequest,
	observer ports.TrialObserver,
) (_ domain.P10Series, err error) {
	defer obs.Time(ctx, "services.SampleP10")(&err)

	if fractures == nil {
		return nil, errors.New("sample p10: fractures must be non-nil")
	}
	if req.Trials < 0 {
		return nil, fmt.Errorf("sample p10: trials must be >= 0, got %d", req.Trials)
	}
	if req.MaxRedraws < 0 {
		return nil, fmt.Errorf("sample p10: max redraws must be >= 0, got %d", req.MaxRedraws)
	}

	if req.Trials == 0 {
		return domain.P10Series{}, nil
	}

	// A domain without area can never yield a borehole; fail before redrawing.
	if err := dom.Validate(); err != nil {
		return nil, fmt.Errorf("sample p10: %w", err)
	}

	trials := make([]domain.Trial, req.Trials)

	if req.Workers <= 1 {
		for i := range trials {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("sample p10: %w", err)
			}
			t, err := runTrial(i, req.trialSource(i), fractures, dom, req.MaxRedraws)
			if err != nil {
				return nil, fmt.Errorf("sample p10: %w", err)
			}
			trials[i] = t
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(req.Workers)

		for i := range trials {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				t, err := runTrial(i, req.trialSource(i), fractures, dom, req.MaxRedraws)
				if err != nil {
					return err
				}
				// Each goroutine owns a distinct index.
				trials[i] = t
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("sample p10: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("sample p10: %w", err)
		}
	}

	series := make(domain.P10Series, 0, len(trials))
	for _, t := range trials {
		series = append(series, t.P10)
		if observer != nil {
			observer.ObserveTrial(t)
		}
	}

	return series, nil
}

// runTrial draws a borehole, redrawing on geometry failures, and measures it.
func runTrial(
	index int,
	rng ports.RandomSource,
	fractures *domain.FractureSet,
	dom domain.Domain,
	maxRedraws int,
) (domain.Trial, error) {
	gen := NewBoreholeGenerator(rng)

	var lastErr error
	for attempt := 0; attempt <= maxRedraws; attempt++ {
		bh, err := gen.Generate(dom)
		if err != nil {
			if !errors.Is(err, domain.ErrGeometry) {
				return domain.Trial{}, fmt.Errorf("trial %d: %w", index, err)
			}
			lastErr = err
			continue
		}

		count := fractures.CountCrossings(bh)
		return domain.Trial{
			Index:     index,
			Borehole:  bh,
			Crossings: count,
			P10:       TrialP10(count, bh),
			Redraws:   attempt,
		}, nil
	}

	return domain.Trial{}, &domain.RedrawsExhaustedError{Trial: index, Attempts: maxRedraws + 1, Last: lastErr}
}

// TrialP10 is the fracture density contribution of one borehole.
func TrialP10(crossings int, borehole domain.Segment) float64 {
	return float64(crossings) / borehole.Length()
}

func newTrialSource(seed uint64, index int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(index)))
}
