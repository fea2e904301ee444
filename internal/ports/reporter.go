package ports

import "fracture-density-service/internal/domain"

// Receives completed trials in trial order.
type TrialObserver interface {
	ObserveTrial(trial domain.Trial)
}

// Optional extension of TrialObserver that also owns rendering state
// for a whole run.
type Reporter interface {
	TrialObserver
	// Called once before any trial is observed.
	Begin(dom domain.Domain, fractures *domain.FractureSet)
	// Called once after the last trial of a successful run.
	Finish(series domain.P10Series) error
}
