package cache

import (
	"os"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

// Config controls how a Store is constructed.
type Config struct {
	// Clock supplies the current time and schedules expiry timers.
	// Defaults to the wall clock.
	Clock clock.Clock

	// Logger receives diagnostic output while debug logging is enabled.
	// Defaults to a console logger on stderr.
	Logger *zerolog.Logger

	// Observer, when set, is notified after each store operation.
	Observer Observer

	// Debug sets the initial state of the debug flag.
	Debug bool
}

func (c Config) withDefaults() Config {
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	if c.Logger == nil {
		logger := defaultLogger()
		c.Logger = &logger
	}
	return c
}

func defaultLogger() zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).With().Timestamp().Str("component", "cache").Logger()
}
