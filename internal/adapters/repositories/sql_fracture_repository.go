package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"fracture-density-service/internal/domain"
	"fracture-density-service/internal/platform/obs"
)

// SQL-backed implementation of the FractureRepository port.
// The query is portable, so the same type serves SQLite and Postgres.
type SQLFractureRepository struct{ DB *sql.DB }

func NewSQLFractureRepository(db *sql.DB) *SQLFractureRepository {
	return &SQLFractureRepository{DB: db}
}

// Return all fractures stored in the catalog, ordered by id.
func (s *SQLFractureRepository) ListFractures(ctx context.Context) (_ []domain.Segment, err error) {
	defer obs.Time(ctx, "fractures.sql.ListFractures")(&err)

	if s.DB == nil {
		return nil, errors.New("sql fracture repository: DB is nil")
	}

	query := `
	SELECT
		fracture_id,
		x0,
		y0,
		xf,
		yf
	FROM fractures
	ORDER BY fracture_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list fractures: query fractures table: %w", err)
	}
	defer rows.Close()

	fractures := make([]domain.Segment, 0, 64)
	for rows.Next() {
		var id int
		var x0, y0, xf, yf float64
		if err := rows.Scan(&id, &x0, &y0, &xf, &yf); err != nil {
			return nil, fmt.Errorf("list fractures: scan row: %w", err)
		}

		seg, err := domain.NewSegment(domain.Point{X: x0, Y: y0}, domain.Point{X: xf, Y: yf})
		if err != nil {
			return nil, &domain.MalformedInputError{Reason: fmt.Sprintf("fracture_id=%d is zero-length", id), Err: err}
		}
		fractures = append(fractures, seg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list fractures: row iteration: %w", err)
	}

	return fractures, nil
}
