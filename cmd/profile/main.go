// Command profile prints missing-value counts and the distinct values of
// text columns for a headered CSV file.
//
// Usage:
//
//	profile [source.csv]
//
// The path defaults to STUDENT_SOURCE_PATH; PROFILE_FORMAT selects text or
// json output.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/autoprep/internal/config"
	"github.com/JonMunkholm/autoprep/internal/core"
	"github.com/JonMunkholm/autoprep/internal/logging"
	"github.com/JonMunkholm/autoprep/internal/profile"
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

	cfg.Profile.ApplyArgs(os.Args[1:])
	if err := cfg.Validate(); err != nil {
		fail(fmt.Errorf("config validation: %w", err))
	}

	// Logs go to stderr so the report on stdout stays parseable
	logging.SetupWriter(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, cfg.Run.Timeout)
	defer cancel()

	ctx = logging.WithRunID(ctx, cfg.Run.ID)

	p, err := profile.File(ctx, cfg.Profile.SourcePath)
	if err != nil {
		slog.Error("profiling failed", "run_id", logging.RunID(ctx), "error", err)
		stop()
		cancel()
		fail(err)
	}

	if err := profile.Write(os.Stdout, p, cfg.Profile.Format); err != nil {
		fail(err)
	}
}

// fail prints the user-facing form of err and exits with status 1.
func fail(err error) {
	ue := core.NewUserError(err)
	if core.IsUserFacing(err) {
		fmt.Fprintf(os.Stderr, "profile: %s\n", core.FormatUserError(err))
	}
	fmt.Fprintf(os.Stderr, "profile: %v\n", ue.Technical)
	os.Exit(1)
}
