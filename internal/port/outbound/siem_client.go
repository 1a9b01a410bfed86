// Package outbound defines interfaces for outbound adapters.
package outbound

import (
	"context"
	"encoding/json"
)

// SIEMClient is the outbound port for the Wazuh manager REST API.
//
// Implementations return typed errors (see internal/domain/siem) so callers
// can distinguish authentication failures, upstream HTTP errors, and transport
// errors; conversion to display strings happens at the tool boundary, not here.
type SIEMClient interface {
	// Authenticate exchanges the configured basic credentials for a bearer
	// token. The token is valid for exactly one batch of downstream calls and
	// is never cached by this system.
	Authenticate(ctx context.Context) (string, error)

	// ListAgents returns the raw JSON array of monitored-host records
	// (data.affected_items), byte-for-byte as received from upstream.
	ListAgents(ctx context.Context, token string) (json.RawMessage, error)

	// AgentSummary returns the raw JSON object of aggregate agent status
	// counters (data), byte-for-byte as received from upstream.
	AgentSummary(ctx context.Context, token string) (json.RawMessage, error)
}
