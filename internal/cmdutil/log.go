package cmdutil

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger returns the logger both commands share. Verbose raises the level
// from warnings-only to full progress reporting.
func NewLogger(dst io.Writer, verbose bool) zerolog.Logger {
	lvl := zerolog.WarnLevel
	if verbose {
		lvl = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{Out: dst, NoColor: true, TimeFormat: "15:04:05"}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger()
}
