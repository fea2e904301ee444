package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Dialect selects the bind-parameter syntax for a SQL backend.
type Dialect int

const (
	DialectSqlite Dialect = iota
	DialectPostgres
)

func (d Dialect) placeholders(n int) string {
	ph := make([]string, n)
	for i := range ph {
		if d == DialectPostgres {
			ph[i] = fmt.Sprintf("$%d", i+1)
		} else {
			ph[i] = "?"
		}
	}
	return strings.Join(ph, ", ")
}

// Initialize the fracture catalog schema. The DDL is valid for both SQLite and Postgres.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createFracturesQuery := `
	CREATE TABLE IF NOT EXISTS fractures (
		fracture_id INTEGER PRIMARY KEY,
		x0 DOUBLE PRECISION NOT NULL,
		y0 DOUBLE PRECISION NOT NULL,
		xf DOUBLE PRECISION NOT NULL,
		yf DOUBLE PRECISION NOT NULL
	);
	`

	statements := []string{
		createFracturesQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the catalog from a fracture tips text file. Fracture ids follow
// record order starting at 1, so reseeding the same file is idempotent.
func SeedFromFile(ctx context.Context, db *sql.DB, dialect Dialect, path string) (int, error) {
	if db == nil {
		return 0, errors.New("seed fractures: DB is nil")
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("seed fractures: open %q: %w", path, err)
	}
	defer f.Close()

	fractures, err := ParseFractures(f, path)
	if err != nil {
		return 0, fmt.Errorf("seed fractures: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("seed fractures: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO fractures (
		fracture_id,
		x0,
		y0,
		xf,
		yf
	)
	VALUES (` + dialect.placeholders(5) + `)
	ON CONFLICT (fracture_id) DO UPDATE
	SET x0 = EXCLUDED.x0,
		y0 = EXCLUDED.y0,
		xf = EXCLUDED.xf,
		yf = EXCLUDED.yf;
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("seed fractures: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, s := range fractures {
		if _, err := stmt.ExecContext(ctx, i+1, s.P0.X, s.P0.Y, s.P1.X, s.P1.Y); err != nil {
			return 0, fmt.Errorf("seed fractures: insert fracture_id=%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("seed fractures: commit tx: %w", err)
	}

	return len(fractures), nil
}
