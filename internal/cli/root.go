package cli

import (
	"context"
	"fmt"
	"fracture-density-service/internal/buildinfo"
	"fracture-density-service/internal/config"
	"fracture-density-service/internal/platform/logger"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func Execute() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var logFormat string

	cmd := &cobra.Command{
		Use:          "p10",
		Short:        "Monte-Carlo P10 fracture density sampling with random boreholes",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.Setup(logger.Config{
				Writer: cmd.ErrOrStderr(),
				Format: logFormat,
				Debug:  debug,
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", config.Get("DEBUG", "") == "true", "enable debug logging")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", config.Get("LOG_FORMAT", "text"), "Log format: text|json")

	cmd.AddCommand(runCmd(), serveCmd(), versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
