package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global logger for the given environment:
// development gets human-readable console output at debug level, staging
// stays at debug but emits JSON for the log pipeline, production and
// anything unrecognized emit JSON at info level.
func Init(env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.DurationFieldUnit = time.Millisecond

	switch strings.ToLower(env) {
	case "development":
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "staging":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// Error logs a failed operation that the request still survived.
func Error(msg string, err error) {
	log.Error().Err(err).Msg(msg)
}

// Warn logs a degraded best-effort step (cache invalidation, orphaned
// object cleanup) that does not affect the response.
func Warn(msg string, err error) {
	log.Warn().Err(err).Msg(msg)
}
