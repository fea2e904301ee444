package ports

import (
	"context"
	"fracture-density-service/internal/domain"
)

// Port: a boundary for retrieving fracture traces from a data source.
type FractureRepository interface {
	// Retrieve all fractures in load order.
	ListFractures(ctx context.Context) ([]domain.Segment, error)
}
