// Package logging builds the process-wide zerolog logger.
package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const levelEnv = "COMPLATE_LOG_LEVEL"

// New returns the root logger. Logs go to stderr so stdout stays clean
// for rendered output. The level comes from COMPLATE_LOG_LEVEL and
// defaults to warn.
func New() zerolog.Logger {
	level := zerolog.WarnLevel
	if raw := strings.TrimSpace(os.Getenv(levelEnv)); raw != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(raw)); err == nil {
			level = parsed
		}
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// Component returns the root logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return New().With().Str("component", name).Logger()
}
