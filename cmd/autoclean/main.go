// Command autoclean cleans the automobile specifications dataset.
//
// Usage:
//
//	autoclean [source.csv [output.csv]]
//
// Paths default to AUTO_SOURCE_PATH and AUTO_OUTPUT_PATH.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/autoprep/internal/clean"
	"github.com/JonMunkholm/autoprep/internal/config"
	"github.com/JonMunkholm/autoprep/internal/core"
	"github.com/JonMunkholm/autoprep/internal/logging"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}

	cfg.Clean.ApplyArgs(os.Args[1:])
	if err := cfg.Validate(); err != nil {
		fail(fmt.Errorf("config validation: %w", err))
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Debug("configuration loaded", "config", cfg.String())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, cfg.Run.Timeout)
	defer cancel()

	report, err := clean.RunAuto(ctx, clean.AutoOptions{
		Source:       cfg.Clean.SourcePath,
		Output:       cfg.Clean.OutputPath,
		MissingToken: cfg.Clean.MissingToken,
		RunID:        cfg.Run.ID,
	})
	if err != nil {
		slog.Error("cleaning failed", "run_id", report.RunID, "error", err)
		stop()
		cancel()
		fail(err)
	}

	fmt.Fprintf(os.Stderr, "wrote %d rows x %d columns to %s (dropped %d)\n",
		report.RowsOut, len(report.Columns), report.Output, report.Dropped)
}

// fail prints the user-facing form of err and exits with status 1.
func fail(err error) {
	ue := core.NewUserError(err)
	if core.IsUserFacing(err) {
		fmt.Fprintf(os.Stderr, "autoclean: %s\n", core.FormatUserError(err))
	}
	fmt.Fprintf(os.Stderr, "autoclean: %v\n", ue.Technical)
	os.Exit(1)
}
