package report

import (
	"fracture-density-service/internal/domain"
	"fracture-density-service/internal/ports"
	"sync"
)

// Collector records everything a run emits so renderers can work from a
// snapshot after the run completes.
type Collector struct {
	mu        sync.Mutex
	dom       domain.Domain
	fractures *domain.FractureSet
	trials    []domain.Trial
	series    domain.P10Series
	finished  bool
}

var _ ports.Reporter = (*Collector)(nil)

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Begin(dom domain.Domain, fractures *domain.FractureSet) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dom = dom
	c.fractures = fractures
	c.trials = nil
	c.series = nil
	c.finished = false
}

func (c *Collector) ObserveTrial(t domain.Trial) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.trials = append(c.trials, t)
}

func (c *Collector) Finish(series domain.P10Series) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.series = series.Clone()
	c.finished = true
	return nil
}

// Snapshot is an immutable view of a collected run.
type Snapshot struct {
	Domain    domain.Domain
	Fractures []domain.Segment
	Trials    []domain.Trial
	Series    domain.P10Series
	Finished  bool
}

func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		Domain:   c.dom,
		Trials:   append([]domain.Trial(nil), c.trials...),
		Series:   c.series.Clone(),
		Finished: c.finished,
	}
	if c.fractures != nil {
		s.Fractures = c.fractures.Segments()
	}
	return s
}

// Fanout forwards every event to each reporter in order. Finish stops at the
// first error.
type Fanout []ports.Reporter

var _ ports.Reporter = Fanout(nil)

func (f Fanout) Begin(dom domain.Domain, fractures *domain.FractureSet) {
	for _, r := range f {
		r.Begin(dom, fractures)
	}
}

func (f Fanout) ObserveTrial(t domain.Trial) {
	for _, r := range f {
		r.ObserveTrial(t)
	}
}

func (f Fanout) Finish(series domain.P10Series) error {
	for _, r := range f {
		if err := r.Finish(series); err != nil {
			return err
		}
	}
	return nil
}
