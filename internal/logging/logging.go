// Package logging configures the process-wide zerolog logger used for
// diagnostic output. User-facing results are printed by the cli package;
// the logger only reports pipeline stages and is quiet unless --verbose is set.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init installs a console logger writing to w (stderr when nil) and returns it.
// verbose lowers the level from warn to debug.
func Init(app string, w io.Writer, verbose bool) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(output).Level(level).With().Timestamp().Str("app", app).Logger()
	log.Logger = logger
	return logger
}
