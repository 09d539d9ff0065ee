package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wanderplan/wanderplan-go/client"
)

// HealthHandler exposes the service_health tool.
type HealthHandler struct {
	client *client.Client
}

func NewHealthHandler(c *client.Client) *HealthHandler {
	return &HealthHandler{client: c}
}

// RegisterTools registers the service_health tool.
func (hh *HealthHandler) RegisterTools(s *server.MCPServer) error {
	healthTool := mcp.NewTool("service_health",
		mcp.WithDescription("Probe the itinerary service's /api/health endpoint and return its payload."),
	)
	s.AddTool(healthTool, hh.handleHealth)
	return nil
}

func (hh *HealthHandler) handleHealth(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, err := hh.client.Health(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("service_health failed: %v", err)), nil
	}
	b, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(b)), nil
}
