// Package logging configures the zerolog logger used by dsignore.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global logger for the given verbosity and writer.
//
//	0  warnings and errors only
//	1  informational messages
//	2+ debug
//
// Nothing is written to disk; the destination ignore file is the only state
// dsignore leaves behind.
func Setup(w io.Writer, verbosity int, noColor bool) {
	zerolog.SetGlobalLevel(Level(verbosity))

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}
	log.Logger = zerolog.New(console).With().Timestamp().Logger()

	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Msg("Logger initialized")
}

// Level maps a -v count to a zerolog level.
func Level(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}
