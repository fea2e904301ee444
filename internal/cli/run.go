package cli

import (
	"encoding/json"
	"fmt"
	"fracture-density-service/internal/adapters/report"
	"fracture-density-service/internal/config"
	"fracture-density-service/internal/platform/logger"
	"fracture-density-service/internal/platform/obs"
	"fracture-density-service/internal/platform/random"
	"fracture-density-service/internal/services"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type runOptions struct {
	input       string
	dbPath      string
	databaseURL string
	trials      int
	seed        uint64
	workers     int
	maxRedraws  int
	bins        int
	format      string
	geojson     string
}

// runOutput is the machine-readable result of `p10 run`.
type runOutput struct {
	RunID     string         `json:"run_id" yaml:"run_id"`
	Seed      uint64         `json:"seed" yaml:"seed"`
	Source    string         `json:"source" yaml:"source"`
	XMax      float64        `json:"xmax" yaml:"xmax"`
	YMax      float64        `json:"ymax" yaml:"ymax"`
	Fractures int            `json:"fractures" yaml:"fractures"`
	Summary   report.Summary `json:"summary" yaml:"summary"`
	Histogram []report.Bin   `json:"histogram" yaml:"histogram"`
	P10       []float64      `json:"p10" yaml:"p10"`
}

func runCmd() *cobra.Command {
	// Flags still need defaults when the environment is invalid; the error is
	// reported when the command runs.
	defaults, cfgErr := config.LoadSimulation()
	if cfgErr != nil {
		defaults = config.Simulation{
			FracturesPath: "data/FractureTips.txt",
			Trials:        services.DefaultTrials,
			MaxRedraws:    services.DefaultMaxRedraws,
			Workers:       1,
			Bins:          report.DefaultBins,
		}
	}

	var o runOptions

	c := &cobra.Command{
		Use:   "run",
		Short: "Sample P10 with randomly oriented boreholes across the fracture domain",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			return runSimulation(cmd, o)
		},
	}

	c.Flags().StringVarP(&o.input, "input", "i", defaults.FracturesPath, "Fracture tips file (x0,y0,xf,yf per line)")
	c.Flags().StringVar(&o.dbPath, "db", defaults.DBPath, "SQLite fracture catalog (overrides --input)")
	c.Flags().StringVar(&o.databaseURL, "database-url", defaults.DatabaseURL, "Postgres fracture catalog (overrides --db and --input)")
	c.Flags().IntVarP(&o.trials, "trials", "n", defaults.Trials, "Number of Monte-Carlo trials")
	c.Flags().Uint64Var(&o.seed, "seed", defaults.Seed, "Random seed (0 picks one)")
	c.Flags().IntVarP(&o.workers, "workers", "j", defaults.Workers, "Concurrent trial workers")
	c.Flags().IntVar(&o.maxRedraws, "max-redraws", defaults.MaxRedraws, "Borehole redraws allowed per trial on degenerate geometry")
	c.Flags().IntVar(&o.bins, "bins", defaults.Bins, "Histogram bins")
	c.Flags().StringVar(&o.format, "format", "pretty", "Output format: pretty|json|yaml")
	c.Flags().StringVar(&o.geojson, "geojson", "", "Write the fracture/borehole schematic as GeoJSON to this path")

	return c
}

func runSimulation(cmd *cobra.Command, o runOptions) error {
	switch o.format {
	case "pretty", "json", "yaml":
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|yaml)", o.format)
	}
	if o.bins < 1 {
		return fmt.Errorf("bins must be >= 1, got %d", o.bins)
	}

	seed := o.seed
	if seed == 0 {
		s, err := random.NewSeed()
		if err != nil {
			return err
		}
		seed = s
	}

	runID := uuid.NewString()
	ctx := obs.WithRunID(cmd.Context(), runID)

	src := fractureSource{Path: o.input, DBPath: o.dbPath, DatabaseURL: o.databaseURL}
	repo, cleanup, err := openRepository(ctx, src)
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	collector := report.NewCollector()
	reporters := report.Fanout{collector}
	if o.format == "pretty" {
		reporters = append(reporters, report.NewTerminalReporter(cmd.OutOrStdout(), o.bins))
	}

	req := services.SampleRequest{
		Trials:     o.trials,
		Seed:       seed,
		MaxRedraws: o.maxRedraws,
		Workers:    o.workers,
	}

	logger.L().Info("run.start", "run_id", runID, "trials", o.trials, "seed", seed, "workers", o.workers)

	result, err := services.RunSimulation(ctx, req, repo, reporters)
	if err != nil {
		logger.L().Error("run.failed", "run_id", runID, "err", err)
		return err
	}

	if o.geojson != "" {
		if err := writeGeoJSONFile(o.geojson, collector.Snapshot()); err != nil {
			return err
		}
	}

	out := runOutput{
		RunID:     runID,
		Seed:      seed,
		Source:    src.String(),
		XMax:      result.Domain.XMax,
		YMax:      result.Domain.YMax,
		Fractures: result.Fractures.Len(),
		Summary:   report.Summarize(result.Series),
		Histogram: report.Histogram(result.Series, o.bins),
		P10:       result.Series,
	}

	logger.L().Info("run.done", "run_id", runID, "mean_p10", out.Summary.Mean)
	return printRun(cmd.OutOrStdout(), out, o.format)
}

func printRun(w io.Writer, out runOutput, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		// The terminal reporter already rendered the histogram.
		fmt.Fprintf(w, "\nRun ID: %s (seed=%d)\n", out.RunID, out.Seed)
		return nil
	}
}

func writeGeoJSONFile(path string, snap report.Snapshot) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write geojson: create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("write geojson: close %q: %w", path, cerr)
		}
	}()

	return report.WriteGeoJSON(f, snap)
}
