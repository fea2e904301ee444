package cli

import (
	"context"
	"errors"
	"fmt"
	"fracture-density-service/internal/adapters/repositories"
	"fracture-density-service/internal/platform/db"
	"fracture-density-service/internal/ports"
	"strings"
)

// fractureSource names where fractures are read from. The first non-empty
// of DatabaseURL (Postgres), DBPath (SQLite) and Path (text file) wins.
type fractureSource struct {
	Path        string
	DBPath      string
	DatabaseURL string
}

func (s fractureSource) String() string {
	switch {
	case strings.TrimSpace(s.DatabaseURL) != "":
		return "postgres"
	case strings.TrimSpace(s.DBPath) != "":
		return s.DBPath
	default:
		return s.Path
	}
}

// openRepository opens the configured fracture source. The returned cleanup is never nil.
func openRepository(ctx context.Context, src fractureSource) (ports.FractureRepository, func() error, error) {
	noop := func() error { return nil }

	switch {
	case strings.TrimSpace(src.DatabaseURL) != "":
		conn, err := db.OpenPostgres(ctx, src.DatabaseURL)
		if err != nil {
			return nil, noop, fmt.Errorf("open fracture catalog: %w", err)
		}
		return repositories.NewSQLFractureRepository(conn), conn.Close, nil
	case strings.TrimSpace(src.DBPath) != "":
		conn, err := db.OpenSqlite(ctx, src.DBPath)
		if err != nil {
			return nil, noop, fmt.Errorf("open fracture catalog: %w", err)
		}
		return repositories.NewSQLFractureRepository(conn), conn.Close, nil
	case strings.TrimSpace(src.Path) != "":
		return repositories.NewTextFractureRepository(src.Path), noop, nil
	default:
		return nil, noop, errors.New("open fracture source: an input file or database is required")
	}
}
