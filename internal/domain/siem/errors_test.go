package siem

import (
	"errors"
	"fmt"
	"testing"
)

func TestTokenUnavailableWrapsCause(t *testing.T) {
	t.Parallel()

	cause := &APIError{StatusCode: 401, Body: `{"title":"Unauthorized"}`}
	err := fmt.Errorf("%w: %w", ErrTokenUnavailable, cause)

	if !errors.Is(err, ErrTokenUnavailable) {
		t.Error("errors.Is(err, ErrTokenUnavailable) = false")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatal("errors.As(err, *APIError) = false")
	}
	if apiErr.StatusCode != 401 {
		t.Errorf("StatusCode = %d, want 401", apiErr.StatusCode)
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	t.Parallel()

	inner := errors.New("connection refused")
	err := &TransportError{Op: "authenticate", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("TransportError does not unwrap to its cause")
	}
	if got := err.Error(); got != "siem: authenticate: connection refused" {
		t.Errorf("Error() = %q", got)
	}
}

func TestErrorStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{&APIError{StatusCode: 500, Body: "boom"}, "siem: api status 500: boom"},
		{&MissingFieldError{Field: "data.token"}, `siem: response missing field "data.token"`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
