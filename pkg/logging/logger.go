package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
)

type Options struct {
	// Level is one of debug, info, warn or error. Empty means info.
	Level     string
	Timestamp bool
}

// New builds a console slog logger writing to w.
func New(w io.Writer, opts Options) (*slog.Logger, error) {
	level := log.InfoLevel
	if s := strings.TrimSpace(opts.Level); s != "" {
		l, err := log.ParseLevel(strings.ToLower(s))
		if err != nil {
			return nil, err
		}
		level = l
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: opts.Timestamp,
		Level:           level,
	})
	return slog.New(handler), nil
}

// Setup installs the console logger as the slog default. An invalid level falls
// back to info and is reported.
func Setup(w io.Writer, opts Options) *slog.Logger {
	logger, err := New(w, opts)
	if err != nil {
		logger, _ = New(w, Options{Timestamp: opts.Timestamp})
		logger.Warn("invalid log level, using info", "level", opts.Level)
	}
	slog.SetDefault(logger)
	return logger
}
