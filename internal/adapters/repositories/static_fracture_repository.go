package repositories

import (
	"context"
	"fracture-density-service/internal/domain"
)

// In-memory fracture source for tests and callers that already hold segments.
type StaticFractureRepository struct {
	fractures []domain.Segment
	err       error
}

func NewStaticFractureRepository(fractures []domain.Segment) *StaticFractureRepository {
	return &StaticFractureRepository{fractures: fractures}
}

// NewFailingFractureRepository returns a source whose ListFractures always fails with err.
func NewFailingFractureRepository(err error) *StaticFractureRepository {
	return &StaticFractureRepository{err: err}
}

func (s *StaticFractureRepository) ListFractures(ctx context.Context) ([]domain.Segment, error) {
	if s.err != nil {
		return nil, s.err
	}

	out := make([]domain.Segment, len(s.fractures))
	copy(out, s.fractures)
	return out, nil
}
