// Package logging builds the CLI's console logger.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. Debug output is enabled when
// verbose is set. Colors are disabled when NO_COLOR is present.
func New(w io.Writer, verbose bool) zerolog.Logger {
	_, noColor := os.LookupEnv("NO_COLOR")
	cw := zerolog.ConsoleWriter{
		Out:     w,
		NoColor: noColor,
		PartsExclude: []string{
			zerolog.TimestampFieldName,
		},
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
