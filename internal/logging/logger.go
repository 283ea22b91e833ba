// Package logging provides the leveled console logger used across the CLI,
// built on zerolog with an optional append-mode file sink.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/backmassage/mov2mp4/internal/config"
	"github.com/backmassage/mov2mp4/internal/term"
)

// Logger wraps a zerolog.Logger behind a printf-style API so call sites stay
// one-liners. Console output goes to stderr; ffmpeg's own output owns stdout.
type Logger struct {
	zl   zerolog.Logger
	file *os.File
}

// NewLogger builds a Logger from cfg: colors per ColorMode, debug level when
// verbose, and an optional log file. Call Close when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    !term.ColorsEnabled(cfg.ColorMode),
		TimeFormat: "15:04:05",
	}

	l := &Logger{}
	var out io.Writer = console

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
		fileSink := zerolog.ConsoleWriter{
			Out:        f,
			NoColor:    true,
			TimeFormat: "2006-01-02 15:04:05",
		}
		out = zerolog.MultiLevelWriter(console, fileSink)
	}

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	l.zl = zerolog.New(out).Level(level).With().Timestamp().Logger()
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.zl.Info().Msgf(format, args...)
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.zl.Warn().Msgf(format, args...)
}

// Error logs at ERROR level.
func (l *Logger) Error(format string, args ...interface{}) {
	l.zl.Error().Msgf(format, args...)
}

// Debug logs at DEBUG level; suppressed unless verbose was enabled.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.zl.Debug().Msgf(format, args...)
}
