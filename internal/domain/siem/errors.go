// Package siem defines the domain error taxonomy for the upstream SIEM API.
//
// Every failure in the authenticated request cycle is one of three kinds:
// authentication unavailable (no token obtainable), upstream HTTP error
// (non-200 with status and body), or transport error (network/TLS/timeout/
// parse). Components return these typed errors; conversion to display strings
// happens only at the tool boundary, so the taxonomy stays inspectable in
// tests.
package siem

import (
	"errors"
	"fmt"
)

// ErrNoCredentials reports an incomplete credential set. The process boots
// without credentials; the failure surfaces here, per call.
var ErrNoCredentials = errors.New("siem: credentials not configured")

// ErrTokenUnavailable wraps every authentication failure. Callers that only
// need the "no token" signal check it with errors.Is; the wrapped cause stays
// available for logging.
var ErrTokenUnavailable = errors.New("siem: token unavailable")

// APIError is an upstream HTTP error: the API answered with a non-200 status.
// StatusCode and Body are preserved exactly as received so the tool boundary
// can embed them verbatim.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("siem: api status %d: %s", e.StatusCode, e.Body)
}

// TransportError is a network, TLS, timeout, or decode failure: the request
// never produced a usable API response.
type TransportError struct {
	Op  string // "authenticate", "list agents", ...
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("siem: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MissingFieldError reports a well-formed JSON response that lacks an
// expected field, named by its dotted path.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("siem: response missing field %q", e.Field)
}
