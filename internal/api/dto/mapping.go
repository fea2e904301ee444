package dto

import "fracture-density-service/internal/domain"

func FromDomain(d domain.Domain) DomainResponse {
	return DomainResponse{XMax: d.XMax, YMax: d.YMax}
}

func FromSegment(s domain.Segment) SegmentResponse {
	return SegmentResponse{
		P0: PointResponse{X: s.P0.X, Y: s.P0.Y},
		P1: PointResponse{X: s.P1.X, Y: s.P1.Y},
	}
}
