// Package mcptool registers the bridge's tools with the MCP runtime and
// serves them over stdio.
package mcptool

import (
	"context"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	inhttp "github.com/threat-hunter/wazuh-mcp/internal/adapter/inbound/http"
	"github.com/threat-hunter/wazuh-mcp/internal/service"
)

const serverName = "wazuh-threat-hunter"

// Tool descriptions are part of the contract with the downstream assistant
// and are kept verbatim from the deployed bridge: they tell the model when to
// reach for each tool.
const (
	descListAgents = "列出所有受監控的主機 (Agents) 及其連線狀態。" +
		"當使用者問「有哪些電腦受監控？」或是「檢查 Agent 狀態」時使用此工具。"
	descInfraStatus = "獲取目前的資安基礎設施概況 (Infrastructure Status)。" +
		"當使用者問「目前的資安態勢如何？」或「系統狀況總覽」時使用。"
)

// Server hosts the two zero-argument tools. Each handler delegates to the
// query service and always answers with text content: the service's string is
// the entire result, success or failure.
type Server struct {
	mcp     *mcp.Server
	metrics *inhttp.Metrics // nil when the metrics listener is disabled
	logger  *slog.Logger
}

// NewServer creates the MCP server and registers both tools.
func NewServer(svc *service.QueryService, metrics *inhttp.Metrics, version string, logger *slog.Logger) *Server {
	s := &Server{
		metrics: metrics,
		logger:  logger,
	}

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version,
	}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_agents",
		Description: descListAgents,
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, s.handler("list_agents", svc.ListAgents))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_infrastructure_status",
		Description: descInfraStatus,
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, s.handler("get_infrastructure_status", svc.InfrastructureStatus))

	s.mcp = srv
	return s
}

// handler adapts a query service method to an MCP tool handler, recording
// per-call metrics. The returned handler never yields a protocol error: every
// outcome is delivered as text.
func (s *Server) handler(tool string, run func(context.Context) (string, service.Outcome)) mcp.ToolHandlerFor[struct{}, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
		start := time.Now()
		text, outcome := run(ctx)

		if s.metrics != nil {
			s.metrics.ToolCalls.WithLabelValues(tool, string(outcome)).Inc()
			s.metrics.ToolDuration.WithLabelValues(tool).Observe(time.Since(start).Seconds())
			if outcome == service.OutcomeAuthFailed {
				s.metrics.AuthFailures.Inc()
			}
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// Run serves the MCP stream on stdio until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("mcp server started", "name", serverName, "transport", "stdio")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}
