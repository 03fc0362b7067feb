// Package config loads environment defaults for circle-census.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvLogLevel  = "CIRCLE_CENSUS_LOG_LEVEL"
	EnvLogFormat = "CIRCLE_CENSUS_LOG_FORMAT"
	EnvMode      = "CIRCLE_CENSUS_MODE"
)

// Config holds the defaults the command line can override.
type Config struct {
	LogLevel  string
	LogFormat string
	Mode      string
}

// Load reads an optional .env file from the working directory and returns the
// settings found in the environment. Variables already set in the process
// environment win over the file. A missing .env is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		LogLevel:  getenv(EnvLogLevel, "warn"),
		LogFormat: getenv(EnvLogFormat, "text"),
		Mode:      getenv(EnvMode, "rectangle_exclusion"),
	}
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// NewLogger builds the process logger. Format is "text" or "json".
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("invalid log format %q", format)
}
