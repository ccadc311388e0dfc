package apperr

import (
	"errors"
	"log/slog"
)

const (
	ExitOK     = 0
	ExitFailed = 1
	ExitUsage  = 2
)

// Handle logs err according to its kind and returns the process exit code.
func Handle(err error) int {
	if err == nil {
		return ExitOK
	}

	switch {
	case IsConfig(err):
		slog.Error("invalid configuration", "error", err)
		return ExitUsage
	case IsRecord(err):
		slog.Error("malformed record", "error", err)
		return ExitFailed
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		slog.Error("validation error", "error", ve.Message)
		return ExitUsage
	}

	slog.Error("run failed", "error", err)
	return ExitFailed
}
