package errors

import (
	"errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		target   error
		expected bool
	}{
		{
			name:     "ErrSessionNotFound is recognized",
			err:      ErrSessionNotFound,
			target:   ErrSessionNotFound,
			expected: true,
		},
		{
			name:     "Wrapped ErrSessionNotFound is recognized",
			err:      errors.Join(ErrSessionNotFound, errors.New("additional context")),
			target:   ErrSessionNotFound,
			expected: true,
		},
		{
			name:     "Different error is not ErrSessionNotFound",
			err:      ErrUnknownIntent,
			target:   ErrSessionNotFound,
			expected: false,
		},
		{
			name:     "ErrOracleUnavailable is recognized",
			err:      ErrOracleUnavailable,
			target:   ErrOracleUnavailable,
			expected: true,
		},
		{
			name:     "ValidationError unwraps to ErrInvalidInput",
			err:      NewValidationError("text", "kosong"),
			target:   ErrInvalidInput,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := errors.Is(tt.err, tt.target)
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("message", "empty after trimming")

	if err.Field != "message" {
		t.Errorf("expected field 'message', got '%s'", err.Field)
	}

	if err.Message != "empty after trimming" {
		t.Errorf("expected message 'empty after trimming', got '%s'", err.Message)
	}

	expected := "validation failed on message: empty after trimming"
	if err.Error() != expected {
		t.Errorf("expected error '%s', got '%s'", expected, err.Error())
	}
}

func TestOracleError(t *testing.T) {
	baseErr := errors.New("connection timeout")
	err := NewOracleError("gemini", baseErr)

	if err.Provider != "gemini" {
		t.Errorf("expected provider 'gemini', got '%s'", err.Provider)
	}

	if !errors.Is(err, baseErr) {
		t.Error("expected error to wrap base error")
	}

	if err.Error() == "" {
		t.Error("expected non-empty error message")
	}
}
