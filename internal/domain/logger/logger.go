// Package logger holds the program logger.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"jellytube/internal/domain/consts"

	"github.com/rs/zerolog"
)

// LoggingConfig sets up a ProgramLogger.
type LoggingConfig struct {
	LogFilePath string
	Console     io.Writer
	Program     string
	DebugLevel  int
}

// ProgramLogger writes levelled messages to the console and the log file.
//
// D messages are only written when their level is at or below the configured debug level.
type ProgramLogger struct {
	zl         zerolog.Logger
	debugLevel int
	file       *os.File
}

// SetupLogging opens the log file and returns a logger writing to it and the console.
func SetupLogging(c LoggingConfig) (*ProgramLogger, error) {
	writers := make([]io.Writer, 0, 2)
	if c.Console != nil {
		writers = append(writers, consoleWriter(c.Console))
	}

	var f *os.File
	if c.LogFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(c.LogFilePath), consts.PermsLogDir); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		var err error
		if f, err = os.OpenFile(c.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, consts.PermsLogFile); err != nil {
			return nil, fmt.Errorf("failed to open log file %q: %w", c.LogFilePath, err)
		}
		writers = append(writers, f)
	}

	pl := New(zerolog.MultiLevelWriter(writers...), c.DebugLevel)
	pl.file = f
	if c.Program != "" {
		pl.zl = pl.zl.With().Str("program", c.Program).Logger()
	}
	return pl, nil
}

// New returns a logger writing JSON lines to w.
func New(w io.Writer, debugLevel int) *ProgramLogger {
	return &ProgramLogger{
		zl:         zerolog.New(w).With().Timestamp().Logger(),
		debugLevel: debugLevel,
	}
}

// NewConsole returns a logger writing human-readable lines to w, in the same
// format SetupLogging uses for the console.
func NewConsole(w io.Writer, debugLevel int) *ProgramLogger {
	return New(consoleWriter(w), debugLevel)
}

func consoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: w, TimeFormat: "2006-01-02 15:04:05"}
}

// Nop returns a logger which discards everything.
func Nop() *ProgramLogger {
	return &ProgramLogger{zl: zerolog.Nop(), debugLevel: -1}
}

// With returns a child logger carrying the key/value pair on every line.
func (pl *ProgramLogger) With(key, value string) *ProgramLogger {
	return &ProgramLogger{
		zl:         pl.zl.With().Str(key, value).Logger(),
		debugLevel: pl.debugLevel,
	}
}

// Close closes the log file, if any.
func (pl *ProgramLogger) Close() error {
	if pl.file == nil {
		return nil
	}
	return pl.file.Close()
}

// I logs an info message.
func (pl *ProgramLogger) I(format string, args ...any) {
	pl.zl.Info().Msgf(format, args...)
}

// S logs a success message.
func (pl *ProgramLogger) S(format string, args ...any) {
	pl.zl.Info().Bool("success", true).Msgf(format, args...)
}

// W logs a warning.
func (pl *ProgramLogger) W(format string, args ...any) {
	pl.zl.Warn().Msgf(format, args...)
}

// E logs an error.
func (pl *ProgramLogger) E(format string, args ...any) {
	pl.zl.Error().Msgf(format, args...)
}

// D logs a debug message at level l (1-5).
func (pl *ProgramLogger) D(l int, format string, args ...any) {
	if l > pl.debugLevel {
		return
	}
	pl.zl.Debug().Int("debug_level", l).Msgf(format, args...)
}

type ctxKey struct{}

// WithContext returns a copy of ctx carrying pl.
func (pl *ProgramLogger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, pl)
}

// FromContext returns the logger stored in ctx, or fallback if there is none.
func FromContext(ctx context.Context, fallback *ProgramLogger) *ProgramLogger {
	if pl, ok := ctx.Value(ctxKey{}).(*ProgramLogger); ok && pl != nil {
		return pl
	}
	return fallback
}
