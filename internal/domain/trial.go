package domain

// Represents the outcome of a single Monte-Carlo trial.
// The borehole is kept only so reporters can draw it.
type Trial struct {
	Index     int
	Borehole  Segment
	Crossings int
	P10       float64
	Redraws   int
}

// P10Series holds one fracture density per trial, in trial order.
type P10Series []float64

// Clone returns an independent copy of the series.
func (s P10Series) Clone() P10Series {
	out := make(P10Series, len(s))
	copy(out, s)
	return out
}
