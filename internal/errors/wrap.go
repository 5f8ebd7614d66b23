package errors

import (
	"errors"
	"fmt"
)

// WrappedError pairs an internal failure with the Indonesian reply the
// user should see instead of raw error text.
type WrappedError struct {
	Module      string // originating module ("dialog", "nlu", "session")
	Operation   string // failing operation ("load_session", "classify")
	Cause       error
	UserMessage string
}

func (e *WrappedError) Error() string {
	return fmt.Sprintf("%s/%s: %v", e.Module, e.Operation, e.Cause)
}

func (e *WrappedError) Unwrap() error {
	return e.Cause
}

// ErrorWrapper stamps failures from one module with their origin so the
// transport layer can pick the user-facing reply off the error chain.
type ErrorWrapper struct {
	module string
}

// NewWrapper creates an error wrapper for a module.
func NewWrapper(module string) *ErrorWrapper {
	return &ErrorWrapper{module: module}
}

// Wrap attaches operation context and a user-facing message to err.
// Returns nil if err is nil.
func (w *ErrorWrapper) Wrap(operation string, err error, userMessage string) error {
	if err == nil {
		return nil
	}
	return &WrappedError{
		Module:      w.module,
		Operation:   operation,
		Cause:       err,
		UserMessage: userMessage,
	}
}

// GetUserMessage digs the user-facing message out of an error chain.
// It never exposes internal error text: when no WrappedError with a
// message is present the fallback is returned instead.
func GetUserMessage(err error, fallback string) string {
	var wrapped *WrappedError
	if errors.As(err, &wrapped) && wrapped.UserMessage != "" {
		return wrapped.UserMessage
	}
	return fallback
}
