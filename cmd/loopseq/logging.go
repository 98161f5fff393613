package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
)

// newLogger returns a console logger writing to w at the named level.
// Terminal output goes through go-colorable so colors work on Windows too.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		w = colorable.NewColorable(f)
		noColor = false
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger(), nil
}
