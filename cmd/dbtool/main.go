package main

import (
	"context"
	"database/sql"
	"fracture-density-service/internal/adapters/repositories"
	"fracture-density-service/internal/config"
	"fracture-density-service/internal/platform/db"
	"log"
)

// main initializes a fracture catalog and seeds it from a tips file.
// DATABASE_URL selects Postgres; otherwise DB_PATH selects SQLite.
func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Println(err)
	}

	ctx := context.Background()

	var (
		conn    *sql.DB
		dialect repositories.Dialect
		err     error
	)
	if databaseURL := config.Get("DATABASE_URL", ""); databaseURL != "" {
		conn, err = db.OpenPostgres(ctx, databaseURL)
		dialect = repositories.DialectPostgres
	} else if dbPath := config.Get("DB_PATH", ""); dbPath != "" {
		conn, err = db.OpenSqlite(ctx, dbPath)
		dialect = repositories.DialectSqlite
	} else {
		log.Fatal("DATABASE_URL or DB_PATH is required")
	}
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	seedPath := config.Get("FRACTURES_PATH", "data/FractureTips.txt")
	if err := initAndSeed(ctx, conn, dialect, seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, dialect repositories.Dialect, seedPath string) error {
	log.Println("Initializing fracture schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return err
	}
	log.Println("Schema ready.")

	log.Printf("Seeding fractures from %s...", seedPath)
	n, err := repositories.SeedFromFile(ctx, conn, dialect, seedPath)
	if err != nil {
		return err
	}
	log.Printf("Seeding complete (%d fractures).", n)

	return nil
}
