// Package config provides configuration for the cleaning and profiling
// binaries. Settings come from environment variables (optionally seeded from
// a .env file by main) with defaults that match the repository's Data layout,
// and are validated on startup to fail fast on misconfiguration.
package config

import "time"

// Config holds all application configuration.
type Config struct {
	Clean   CleanConfig
	Profile ProfileConfig
	Run     RunConfig
	Logging LoggingConfig
}

// CleanConfig holds settings for the automobile cleaning pipeline.
type CleanConfig struct {
	// SourcePath is the header-less 26-column input (default: Data/auto.csv)
	SourcePath string `env:"AUTO_SOURCE_PATH" default:"Data/auto.csv"`

	// OutputPath is where the cleaned CSV is written (default: Data/Clean_Data/clean_auto_df.csv)
	OutputPath string `env:"AUTO_OUTPUT_PATH" default:"Data/Clean_Data/clean_auto_df.csv"`

	// MissingToken is the cell text that marks a missing value (default: ?)
	MissingToken string `env:"AUTO_MISSING_TOKEN" default:"?"`
}

// ProfileConfig holds settings for the exploratory profiler.
type ProfileConfig struct {
	// SourcePath is the headered input (default: Data/student_habits_performance.csv)
	SourcePath string `env:"STUDENT_SOURCE_PATH" envAlt:"PROFILE_SOURCE_PATH" default:"Data/student_habits_performance.csv"`

	// Format is the report format: text or json (default: text)
	Format string `env:"PROFILE_FORMAT" default:"text"`
}

// RunConfig holds settings shared by every run.
type RunConfig struct {
	// Timeout bounds a whole run (default: 2m)
	Timeout time.Duration `env:"RUN_TIMEOUT" default:"2m"`

	// ID tags log lines and reports; generated when empty
	ID string `env:"RUN_ID"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// ApplyArgs overrides the paths with positional arguments: the source,
// then the output. Empty arguments are ignored.
func (c *CleanConfig) ApplyArgs(args []string) {
	if len(args) > 0 && args[0] != "" {
		c.SourcePath = args[0]
	}
	if len(args) > 1 && args[1] != "" {
		c.OutputPath = args[1]
	}
}

// ApplyArgs overrides the source path with the first positional argument.
func (c *ProfileConfig) ApplyArgs(args []string) {
	if len(args) > 0 && args[0] != "" {
		c.SourcePath = args[0]
	}
}
