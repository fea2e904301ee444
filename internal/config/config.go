package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadDotEnv loads .env into the process environment when present.
// A missing file is not an error; real environment variables win.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load dotenv: %w", err)
	}
	return nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Simulation holds the sampling parameters shared by the CLI and the API.
type Simulation struct {
	FracturesPath string `env:"FRACTURES_PATH" envDefault:"data/FractureTips.txt"`
	// When set, fractures are read from this SQLite catalog instead of FracturesPath.
	DBPath string `env:"DB_PATH"`
	// When set, fractures are read from this Postgres catalog; takes precedence over DBPath.
	DatabaseURL string `env:"DATABASE_URL"`
	Trials      int    `env:"P10_TRIALS" envDefault:"50"`
	MaxRedraws  int    `env:"P10_MAX_REDRAWS" envDefault:"10"`
	Workers     int    `env:"P10_WORKERS" envDefault:"1"`
	// Zero means a fresh random seed per run.
	Seed      uint64 `env:"P10_SEED"`
	Bins      int    `env:"P10_BINS" envDefault:"20"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Debug     bool   `env:"DEBUG"`
}

type Server struct {
	Simulation
	Port      string `env:"PORT" envDefault:"8080"`
	MaxTrials int    `env:"MAX_TRIALS" envDefault:"100000"`
}

func LoadSimulation() (Simulation, error) {
	var cfg Simulation
	if err := env.Parse(&cfg); err != nil {
		return Simulation{}, fmt.Errorf("load simulation config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Simulation{}, fmt.Errorf("load simulation config: %w", err)
	}
	return cfg, nil
}

func LoadServer() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("load server config: %w", err)
	}
	if err := cfg.Simulation.Validate(); err != nil {
		return Server{}, fmt.Errorf("load server config: %w", err)
	}
	if cfg.MaxTrials < 1 {
		return Server{}, fmt.Errorf("load server config: MAX_TRIALS must be >= 1, got %d", cfg.MaxTrials)
	}
	return cfg, nil
}

func (c Simulation) Validate() error {
	if c.Trials < 0 {
		return fmt.Errorf("P10_TRIALS must be >= 0, got %d", c.Trials)
	}
	if c.MaxRedraws < 0 {
		return fmt.Errorf("P10_MAX_REDRAWS must be >= 0, got %d", c.MaxRedraws)
	}
	if c.Workers < 1 {
		return fmt.Errorf("P10_WORKERS must be >= 1, got %d", c.Workers)
	}
	if c.Bins < 1 {
		return fmt.Errorf("P10_BINS must be >= 1, got %d", c.Bins)
	}
	return nil
}
