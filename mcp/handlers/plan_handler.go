package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wanderplan/wanderplan-go/store"
)

// PlanHandler exposes the plan_trip tool.
type PlanHandler struct {
	store *store.Store
}

func NewPlanHandler(st *store.Store) *PlanHandler {
	return &PlanHandler{store: st}
}

// RegisterTools registers the plan_trip tool.
func (ph *PlanHandler) RegisterTools(s *server.MCPServer) error {
	planTool := mcp.NewTool("plan_trip",
		mcp.WithDescription("Generate a day-by-day trip itinerary for a destination. The end date is derived from start_date + duration - 1 days. The result becomes the current itinerary and, when the service persisted it, joins the trip list."),
		mcp.WithString("destination", mcp.Required(), mcp.Description("Where the trip goes")),
		mcp.WithString("start_date", mcp.Required(), mcp.Description("First day of the trip (YYYY-MM-DD)")),
		mcp.WithNumber("duration", mcp.Required(), mcp.Description("Trip length in days (>= 1)")),
		mcp.WithNumber("budget", mcp.Required(), mcp.Description("Total trip budget (>= 1)")),
		mcp.WithBoolean("vegetarian", mcp.Description("Prefer vegetarian dining suggestions")),
		mcp.WithNumber("travelers", mcp.Description("Number of travelers (default 1)")),
	)
	s.AddTool(planTool, ph.handlePlan)
	return nil
}

func (ph *PlanHandler) handlePlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	destination, _ := req.RequireString("destination")
	startDate, _ := req.RequireString("start_date")

	form := store.FormData{
		Destination: destination,
		StartDate:   startDate,
	}
	if v, ok := req.GetArguments()["duration"].(float64); ok {
		form.Duration = int(v)
	}
	if v, ok := req.GetArguments()["budget"].(float64); ok {
		form.Budget = v
	}
	if v, ok := req.GetArguments()["vegetarian"].(bool); ok {
		form.IsVegetarian = v
	}
	if v, ok := req.GetArguments()["travelers"].(float64); ok {
		form.Travelers = int(v)
	}

	it, err := ph.store.Generate(ctx, form)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("plan_trip failed: %v", err)), nil
	}

	b, _ := json.MarshalIndent(it, "", "  ")
	return mcp.NewToolResultText(string(b)), nil
}
