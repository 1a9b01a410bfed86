// Package service contains application services.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/threat-hunter/wazuh-mcp/internal/domain/siem"
	"github.com/threat-hunter/wazuh-mcp/internal/port/outbound"
)

// Outcome is the terminal state of one tool invocation.
type Outcome string

const (
	OutcomeOK          Outcome = "ok"
	OutcomeAuthFailed  Outcome = "auth_failed"
	OutcomeQueryFailed Outcome = "query_failed"
)

// User-facing diagnostic strings. These are the contract with the downstream
// assistant and are kept verbatim from the deployed bridge, including
// language: failures must arrive as text the assistant can reason over, never
// as exceptions.
const (
	msgAuthFailedAgents = "錯誤: 無法連線至 Wazuh API，請檢查帳號密碼或網路連線。"
	msgAuthFailedStatus = "錯誤: 無法連線至 Wazuh API"
	statusReportLabel   = "【資安態勢報告】"
	fmtAgentsAPIError   = "API 回傳錯誤: %d - %s"
	fmtAgentsTransport  = "發生例外錯誤: %v"
	fmtStatusAPIError   = "查詢失敗: %d - %s"
	fmtStatusTransport  = "發生錯誤: %v"
)

// QueryService runs the authenticated request cycle for each tool call:
// acquire a fresh token, issue exactly one query with it, and normalize the
// result into a string. No state survives an invocation — no token cache, no
// shared connection bookkeeping — so concurrent calls never interact.
type QueryService struct {
	client outbound.SIEMClient
	logger *slog.Logger
}

// NewQueryService creates a QueryService backed by the given SIEM client.
func NewQueryService(client outbound.SIEMClient, logger *slog.Logger) *QueryService {
	return &QueryService{
		client: client,
		logger: logger,
	}
}

// ListAgents returns every monitored-host record as pretty-printed JSON, in
// upstream order, or a diagnostic string. Never returns an error: the string
// is the whole contract.
func (s *QueryService) ListAgents(ctx context.Context) (string, Outcome) {
	log := s.invocationLogger("list_agents")

	token, err := s.client.Authenticate(ctx)
	if err != nil {
		log.Warn("authentication failed", "error", err)
		return msgAuthFailedAgents, OutcomeAuthFailed
	}

	items, err := s.client.ListAgents(ctx, token)
	if err != nil {
		log.Warn("agent query failed", "error", err)
		var apiErr *siem.APIError
		if errors.As(err, &apiErr) {
			return fmt.Sprintf(fmtAgentsAPIError, apiErr.StatusCode, apiErr.Body), OutcomeQueryFailed
		}
		return fmt.Sprintf(fmtAgentsTransport, err), OutcomeQueryFailed
	}

	pretty, err := indentJSON(items)
	if err != nil {
		log.Warn("agent payload malformed", "error", err)
		return fmt.Sprintf(fmtAgentsTransport, err), OutcomeQueryFailed
	}

	log.Debug("agents listed", "bytes", len(pretty))
	return pretty, OutcomeOK
}

// InfrastructureStatus returns the labeled aggregate agent status report, or
// a diagnostic string. Same contract as ListAgents.
func (s *QueryService) InfrastructureStatus(ctx context.Context) (string, Outcome) {
	log := s.invocationLogger("get_infrastructure_status")

	token, err := s.client.Authenticate(ctx)
	if err != nil {
		log.Warn("authentication failed", "error", err)
		return msgAuthFailedStatus, OutcomeAuthFailed
	}

	summary, err := s.client.AgentSummary(ctx, token)
	if err != nil {
		log.Warn("status query failed", "error", err)
		var apiErr *siem.APIError
		if errors.As(err, &apiErr) {
			return fmt.Sprintf(fmtStatusAPIError, apiErr.StatusCode, apiErr.Body), OutcomeQueryFailed
		}
		return fmt.Sprintf(fmtStatusTransport, err), OutcomeQueryFailed
	}

	pretty, err := indentJSON(summary)
	if err != nil {
		log.Warn("status payload malformed", "error", err)
		return fmt.Sprintf(fmtStatusTransport, err), OutcomeQueryFailed
	}

	log.Debug("status summarized", "bytes", len(pretty))
	return statusReportLabel + "\n" + pretty, OutcomeOK
}

// invocationLogger tags all log lines of one tool call with a request ID.
func (s *QueryService) invocationLogger(tool string) *slog.Logger {
	return s.logger.With("tool", tool, "request_id", uuid.NewString())
}

// indentJSON pretty-prints a raw JSON value without re-encoding it: record
// order, key order, and non-ASCII content pass through byte-for-byte.
func indentJSON(raw json.RawMessage) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", fmt.Errorf("indent payload: %w", err)
	}
	return buf.String(), nil
}
