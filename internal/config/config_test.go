package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSimulationDefaults(t *testing.T) {
	for _, k := range []string{"FRACTURES_PATH", "DB_PATH", "P10_TRIALS", "P10_MAX_REDRAWS", "P10_WORKERS", "P10_SEED", "P10_BINS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := LoadSimulation()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Trials != 50 || cfg.MaxRedraws != 10 || cfg.Workers != 1 || cfg.Bins != 20 {
		t.Fatalf("defaults = %+v", cfg)
	}
	if cfg.FracturesPath != "data/FractureTips.txt" {
		t.Fatalf("fractures path = %q", cfg.FracturesPath)
	}
}

func TestLoadServerFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("P10_TRIALS", "500")
	t.Setenv("P10_SEED", "1234")
	t.Setenv("P10_WORKERS", "4")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" || cfg.Trials != 500 || cfg.Seed != 1234 || cfg.Workers != 4 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadSimulationRejectsInvalid(t *testing.T) {
	t.Setenv("P10_WORKERS", "0")
	if _, err := LoadSimulation(); err == nil {
		t.Fatal("expected error for zero workers")
	}

	t.Setenv("P10_WORKERS", "1")
	t.Setenv("P10_TRIALS", "many")
	if _, err := LoadSimulation(); err == nil {
		t.Fatal("expected parse error for non-numeric trials")
	}
}

func TestLoadDotEnv(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing .env should be ignored, got %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("P10_DOTENV_PROBE=from-file\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("P10_DOTENV_PROBE", "")
	os.Unsetenv("P10_DOTENV_PROBE")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Get("P10_DOTENV_PROBE", "fallback"); got != "from-file" {
		t.Fatalf("Get = %q, want from-file", got)
	}
	if got := Get("P10_UNSET_PROBE", "fallback"); got != "fallback" {
		t.Fatalf("Get = %q, want fallback", got)
	}
}
