package report

import (
	"fracture-density-service/internal/domain"
	"math"
)

// Summary holds descriptive statistics of a P10 series.
type Summary struct {
	Trials int     `json:"trials" yaml:"trials"`
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"std_dev" yaml:"std_dev"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
}

// Summarize computes count, mean, sample standard deviation and range.
// StdDev is zero for fewer than two trials.
func Summarize(series domain.P10Series) Summary {
	s := Summary{Trials: len(series)}
	if len(series) == 0 {
		return s
	}

	s.Min, s.Max = series[0], series[0]
	sum := 0.0
	for _, v := range series {
		sum += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Mean = sum / float64(len(series))

	if len(series) > 1 {
		ss := 0.0
		for _, v := range series {
			d := v - s.Mean
			ss += d * d
		}
		s.StdDev = math.Sqrt(ss / float64(len(series)-1))
	}

	return s
}
