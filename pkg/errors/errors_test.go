package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppErrorError(t *testing.T) {
	err := NewAppError(ErrValidation, 400, "bad input")
	if got, want := err.Error(), "VALIDATION_ERROR: bad input"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	err = NewAppError(ErrValidation, 400, "bad input", "field x")
	if got, want := err.Error(), "VALIDATION_ERROR: bad input - field x"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorTypeHelpers(t *testing.T) {
	err := NewInvalidTokenError("sig mismatch")
	if !IsErrorType(err, ErrInvalidToken) {
		t.Errorf("IsErrorType mismatch for %v", err)
	}
	if IsErrorType(err, ErrAccessDenied) {
		t.Errorf("IsErrorType must differentiate types")
	}
	if GetErrorType(err) != ErrInvalidToken {
		t.Errorf("GetErrorType = %q", GetErrorType(err))
	}
	if GetStatusCode(err) != 403 {
		t.Errorf("GetStatusCode = %d, want 403", GetStatusCode(err))
	}
}

func TestHelpersOnPlainErrors(t *testing.T) {
	plain := errors.New("boom")
	if IsErrorType(plain, ErrValidation) {
		t.Errorf("plain errors have no type")
	}
	if GetStatusCode(plain) != 500 {
		t.Errorf("GetStatusCode(plain) = %d, want 500", GetStatusCode(plain))
	}
}

func TestWrappedAppError(t *testing.T) {
	wrapped := fmt.Errorf("request failed: %w", NewAccessDeniedError("no token"))
	if !IsErrorType(wrapped, ErrAccessDenied) {
		t.Errorf("wrapped errors must still match their type")
	}
	if GetStatusCode(wrapped) != 403 {
		t.Errorf("GetStatusCode(wrapped) = %d, want 403", GetStatusCode(wrapped))
	}
}

func TestConstructorStatusCodes(t *testing.T) {
	tests := []struct {
		err  *AppError
		want int
	}{
		{NewInvalidOptionError("scale"), 400},
		{NewInvalidRecordError("bad record"), 400},
		{NewMalformedInputError("bad bytes"), 400},
		{NewInvalidTokenError("bad sig"), 403},
		{NewAccessDeniedError("denied"), 403},
	}
	for _, tt := range tests {
		if tt.err.StatusCode != tt.want {
			t.Errorf("%s status = %d, want %d", tt.err.Type, tt.err.StatusCode, tt.want)
		}
	}
}
