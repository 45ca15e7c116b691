package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidMargins, "usable width is %gmm", -40.0)

	if err.Code != ErrCodeInvalidMargins {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidMargins)
	}

	if err.Message != "usable width is -40mm" {
		t.Errorf("Message = %v, want %v", err.Message, "usable width is -40mm")
	}

	expected := "INVALID_MARGINS: usable width is -40mm"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, cause, "failed to write pdf")

	if err.Code != ErrCodeInternal {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInternal)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

// codedError stands in for typed errors such as layout.MinimumBoxesError.
type codedError struct{}

func (codedError) Error() string { return "coded" }
func (codedError) Code() Code    { return ErrCodeMinimumBoxes }

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeGridTooSmall, "test"),
			code:     ErrCodeGridTooSmall,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeGridTooSmall, "test"),
			code:     ErrCodeInvalidColor,
			expected: false,
		},
		{
			name:     "wrapped error uses outer code",
			err:      Wrap(ErrCodeInternal, New(ErrCodeInvalidColor, "inner"), "outer"),
			code:     ErrCodeInternal,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      fmt.Errorf("resolve: %w", New(ErrCodeInvalidMargins, "inner")),
			code:     ErrCodeInvalidMargins,
			expected: true,
		},
		{
			name:     "typed coded error",
			err:      fmt.Errorf("resolve: %w", codedError{}),
			code:     ErrCodeMinimumBoxes,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeInvalidPageSize, "test"), ErrCodeInvalidPageSize},
		{"coded type", codedError{}, ErrCodeMinimumBoxes},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidColor, "friendly message"), "friendly message"},
		{"wrapped Error type", fmt.Errorf("ctx: %w", New(ErrCodeInvalidColor, "friendly")), "friendly"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}
