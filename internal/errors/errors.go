// Package errors provides domain-specific error types and sentinel errors
// for improved error handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common scenarios.
// Use errors.Is() to check these errors in your code.
var (
	// ErrInvalidInput indicates user provided invalid input. Every
	// ValidationError unwraps to it.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownIntent indicates the model emitted an intent outside
	// the registered set.
	ErrUnknownIntent = errors.New("unknown intent")

	// ErrOracleUnavailable indicates every NLU provider failed for a turn.
	ErrOracleUnavailable = errors.New("nlu oracle unavailable")

	// ErrSessionNotFound indicates the session id has no stored state.
	ErrSessionNotFound = errors.New("session not found")
)

// ValidationError represents input validation failures.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// OracleError represents an NLU provider failure with context.
type OracleError struct {
	Provider string
	Err      error
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("nlu oracle error (provider=%s): %v", e.Provider, e.Err)
}

func (e *OracleError) Unwrap() error {
	return e.Err
}

// NewOracleError creates a new NLU oracle error.
func NewOracleError(provider string, err error) *OracleError {
	return &OracleError{
		Provider: provider,
		Err:      err,
	}
}
