package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"divgame/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// setupLogging points the global logger at the configured file, or at
// stderr when console is set. Without a file, a full-screen program logs
// nowhere so the screen stays clean.
func setupLogging(cfg config.Config, console bool) (func(), error) {
	zerolog.SetGlobalLevel(cfg.Level())
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var out io.Writer
	closer := func() {}
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = func() { _ = f.Close() }
	case console:
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	default:
		out = io.Discard
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return closer, nil
}
