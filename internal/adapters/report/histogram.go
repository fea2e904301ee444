package report

import "fracture-density-service/internal/domain"

const DefaultBins = 20

// Bin is one histogram bucket covering [Lo, Hi); the last bucket is closed.
type Bin struct {
	Lo    float64 `json:"lo" yaml:"lo"`
	Hi    float64 `json:"hi" yaml:"hi"`
	Count int     `json:"count" yaml:"count"`
}

// Histogram splits [min, max] of the series into equal-width bins.
// A constant series is centred in [v-0.5, v+0.5]. An empty series or a
// non-positive bin count yields no bins.
func Histogram(series domain.P10Series, bins int) []Bin {
	if len(series) == 0 || bins <= 0 {
		return []Bin{}
	}

	lo, hi := series[0], series[0]
	for _, v := range series[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	width := (hi - lo) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i].Lo = lo + float64(i)*width
		out[i].Hi = lo + float64(i+1)*width
	}
	out[bins-1].Hi = hi

	for _, v := range series {
		i := int((v - lo) / width)
		i = max(0, min(i, bins-1))
		// Rounding in the division can disagree with the stored edges.
		for i > 0 && v < out[i].Lo {
			i--
		}
		for i < bins-1 && v >= out[i].Hi {
			i++
		}
		out[i].Count++
	}

	return out
}
