package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"consultant-gaps/internal/telemetry"
	"consultant-gaps/lib/configutil"
	"consultant-gaps/lib/serviceutil"

	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	dumpHttp   string
)

// populated by the root command before any subcommand runs
var (
	cfg       Config
	tel       telemetry.API = telemetry.SlogAPI{}
	providers telemetry.Telemetry
)

var rootCmd = &cobra.Command{
	Use:           "consultant-gaps",
	Short:         "consultant-gaps scrapes consultant profiles and reports on the ones with missing information.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(verbose)
		if verbose {
			slog.Debug("verbose logging enabled")
		}

		var err error
		cfg, err = configutil.ReadConfigWithDefaults(configPath, defaultConfig())
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}

		providers, err = telemetry.Setup(cmd.Context(), "consultant-gaps", cfg.Telemetry)
		if err != nil {
			return fmt.Errorf("setup telemetry: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.json5", "Configuration file, <name>.local.<ext> overrides it when present.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging.")
	rootCmd.PersistentFlags().StringVar(&dumpHttp, "dump-http", "", "Directory to write every HTTP request/response pair to.")
}

// shutdownTelemetry flushes the spans and metrics of a run.
var shutdownTelemetry = func(ctx context.Context) error {
	return providers.Shutdown(ctx)
}

// execute runs the command line `args`, telemetry is flushed whether or not
// the command failed.
func execute(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)

	// the run context may already be cancelled by Ctrl+C
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	shutdownErr := shutdownTelemetry(shutdownCtx)
	if shutdownErr != nil {
		slog.Warn("failed to shutdown telemetry", "err", shutdownErr)
	}

	return err
}

func ExecuteContext(ctx context.Context) {
	err := execute(ctx, os.Args[1:])
	if err != nil {
		serviceutil.Fatal("consultant-gaps failed", err)
	}
}
