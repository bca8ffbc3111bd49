package cmd

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// newLogger returns a console logger on stderr, stdout being reserved to the
// reports. Unknown levels fall back to warn.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(w).With().Timestamp().Logger().Level(lvl)
}
