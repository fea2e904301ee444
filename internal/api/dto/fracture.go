package dto

type PointResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type SegmentResponse struct {
	P0 PointResponse `json:"p0"`
	P1 PointResponse `json:"p1"`
}

type DomainResponse struct {
	XMax float64 `json:"xmax"`
	YMax float64 `json:"ymax"`
}

type ListFracturesResponse struct {
	Domain    DomainResponse    `json:"domain"`
	Fractures []SegmentResponse `json:"fractures"`
}
