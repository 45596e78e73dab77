// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global logger. Level is a zerolog level name
// ("debug", "info", "warn", "error"); format is "console" or "json".
func Setup(level, format string) error {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(parsed)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "console":
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		})
	case "json":
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}

// Component returns a logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
