// Package errors provides utilities for error handling in calltrace.
package errors

import (
	"errors"
	"io"

	"github.com/rs/zerolog"
)

// ExitCoder is implemented by errors that carry a process exit status.
type ExitCoder interface {
	ExitCode() int
}

// ExitCode returns the exit status carried by err or any error it wraps.
// Returns fallback when no error in the chain implements ExitCoder, and 0 for
// a nil error.
func ExitCode(err error, fallback int) int {
	if err == nil {
		return 0
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return fallback
}

// DeferClose properly closes an io.Closer with logging.
// Use this in defer statements to avoid suppressing close errors.
func DeferClose(logger zerolog.Logger, closer io.Closer, msg string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logger.Warn().Err(err).Msg(msg)
	}
}
