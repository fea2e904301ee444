package dto

type SimulationRequest struct {
	Trials           *int    `json:"trials"`
	Seed             *uint64 `json:"seed"`
	Workers          int     `json:"workers"`
	MaxRedraws       *int    `json:"max_redraws"`
	Bins             int     `json:"bins"`
	IncludeBoreholes bool    `json:"include_boreholes"`
}

type SummaryResponse struct {
	Trials int     `json:"trials"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

type BinResponse struct {
	Lo    float64 `json:"lo"`
	Hi    float64 `json:"hi"`
	Count int     `json:"count"`
}

type BoreholeResponse struct {
	Trial     int             `json:"trial"`
	Segment   SegmentResponse `json:"segment"`
	Crossings int             `json:"crossings"`
	P10       float64         `json:"p10"`
	Redraws   int             `json:"redraws"`
}

type SimulationResponse struct {
	RunID         string             `json:"run_id"`
	Seed          uint64             `json:"seed"`
	Domain        DomainResponse     `json:"domain"`
	FractureCount int                `json:"fracture_count"`
	P10           []float64          `json:"p10"`
	Summary       SummaryResponse    `json:"summary"`
	Histogram     []BinResponse      `json:"histogram"`
	Boreholes     []BoreholeResponse `json:"boreholes,omitempty"`
}
