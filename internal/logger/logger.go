// Package logger provides structured logging for the monitor, backed by
// zerolog. Runs are short-lived, so configuration is a single Init call:
// console output for humans, JSON when running under a scheduler.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Fields represents structured log fields
type Fields map[string]interface{}

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	Level(zerolog.InfoLevel).
	With().Timestamp().Logger()

// Init configures the default logger. With json set, entries are emitted as
// JSON lines; otherwise a human-readable console format is used. Verbose
// lowers the level to debug.
func Init(out io.Writer, verbose, json bool) {
	if out == nil {
		out = os.Stderr
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	var w io.Writer = out
	if !json {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	log = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Debug logs a debug message with optional structured fields.
func Debug(message string, fields Fields) {
	emit(log.Debug(), message, fields, nil)
}

// Info logs an informational message with optional structured fields.
func Info(message string, fields Fields) {
	emit(log.Info(), message, fields, nil)
}

// Warn logs a warning message with optional structured fields.
func Warn(message string, fields Fields) {
	emit(log.Warn(), message, fields, nil)
}

// Error logs an error message with optional structured fields and an error.
func Error(message string, fields Fields, err error) {
	emit(log.Error(), message, fields, err)
}

func emit(e *zerolog.Event, message string, fields Fields, err error) {
	for k, v := range fields {
		e = e.Interface(k, v)
	}
	if err != nil {
		e = e.Err(err)
	}
	e.Msg(message)
}
