package cli

import (
	"context"
	"errors"
	"fracture-density-service/internal/api"
	"fracture-density-service/internal/config"
	"fracture-density-service/internal/platform/logger"
	"fracture-density-service/internal/services"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the P10 simulation HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadServer()
			if err != nil {
				return err
			}
			return Serve(cmd.Context(), cfg)
		},
	}
}

// Serve wires the fracture source behind the HTTP API and blocks until ctx
// is done or the listener fails.
func Serve(ctx context.Context, cfg config.Server) error {
	src := fractureSource{Path: cfg.FracturesPath, DBPath: cfg.DBPath, DatabaseURL: cfg.DatabaseURL}
	repo, cleanup, err := openRepository(ctx, src)
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	router := api.NewRouter(repo, api.Options{
		Defaults: services.SampleRequest{
			Trials:     cfg.Trials,
			Seed:       cfg.Seed,
			MaxRedraws: cfg.MaxRedraws,
			Workers:    cfg.Workers,
		},
		Bins:      cfg.Bins,
		MaxTrials: cfg.MaxTrials,
	})

	// Large trial counts are CPU bound; the write timeout leaves room for them.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("server.listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
