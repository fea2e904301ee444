package services

import (
	"context"
	"errors"
	"fracture-density-service/internal/adapters/repositories"
	"fracture-density-service/internal/domain"
	"testing"
)

type fakeReporter struct {
	recordingObserver
	begun    bool
	dom      domain.Domain
	finished domain.P10Series
	err      error
}

func (f *fakeReporter) Begin(dom domain.Domain, _ *domain.FractureSet) {
	f.begun = true
	f.dom = dom
}

func (f *fakeReporter) Finish(series domain.P10Series) error {
	f.finished = series
	return f.err
}

func TestRunSimulation(t *testing.T) {
	repo := repositories.NewStaticFractureRepository([]domain.Segment{
		{P0: pt(0, 0), P1: pt(10, 10)},
		{P0: pt(1, 9), P1: pt(4, 2)},
	})
	rep := &fakeReporter{}

	res, err := RunSimulation(context.Background(), SampleRequest{Trials: 25, Seed: 3, MaxRedraws: 10}, repo, rep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Domain != (domain.Domain{XMax: 10, YMax: 10}) {
		t.Fatalf("domain = %+v, want 10x10", res.Domain)
	}
	if len(res.Series) != 25 {
		t.Fatalf("len(series) = %d, want 25", len(res.Series))
	}
	if !rep.begun || rep.dom != res.Domain {
		t.Fatalf("reporter Begin not called with domain: %+v", rep.dom)
	}
	if len(rep.trials) != 25 || len(rep.finished) != 25 {
		t.Fatalf("reporter saw %d trials and %d finished values, want 25", len(rep.trials), len(rep.finished))
	}
}

func TestRunSimulationErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	if _, err := RunSimulation(ctx, SampleRequest{Trials: 1}, repositories.NewFailingFractureRepository(boom), nil); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	empty := repositories.NewStaticFractureRepository(nil)
	if _, err := RunSimulation(ctx, SampleRequest{Trials: 1}, empty, nil); !errors.Is(err, domain.ErrMalformedInput) {
		t.Fatalf("err = %v, want ErrMalformedInput", err)
	}

	repo := repositories.NewStaticFractureRepository([]domain.Segment{{P0: pt(0, 0), P1: pt(3, 3)}})
	rep := &fakeReporter{err: boom}
	if _, err := RunSimulation(ctx, SampleRequest{Trials: 2}, repo, rep); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want reporter error", err)
	}
}
