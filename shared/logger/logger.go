package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates the service logger. Production writes JSON lines to stdout;
// other environments get a human readable console writer.
func New(service, environment, level string) *zerolog.Logger {
	var out io.Writer = os.Stdout
	if environment != "production" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	logger := zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("service", service).
		Str("env", environment).
		Logger()

	return &logger
}
