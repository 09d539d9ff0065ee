package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wanderplan/wanderplan-go/store"
	"github.com/wanderplan/wanderplan-go/view"
)

// TripsHandler exposes the list_trips, get_trip and delete_trip tools.
type TripsHandler struct {
	store *store.Store
}

func NewTripsHandler(st *store.Store) *TripsHandler {
	return &TripsHandler{store: st}
}

// RegisterTools registers the trip lifecycle tools.
func (th *TripsHandler) RegisterTools(s *server.MCPServer) error {
	listTool := mcp.NewTool("list_trips",
		mcp.WithDescription("Refresh and return the traveler's saved itineraries with summary stats (trip count, upcoming trips, aggregate budget)."),
	)
	s.AddTool(listTool, th.handleList)

	getTool := mcp.NewTool("get_trip",
		mcp.WithDescription("Fetch one itinerary with full content and its normalized day-by-day sections. It becomes the current itinerary."),
		mcp.WithString("trip_id", mcp.Required(), mcp.Description("The itinerary id")),
	)
	s.AddTool(getTool, th.handleGet)

	deleteTool := mcp.NewTool("delete_trip",
		mcp.WithDescription("Delete one itinerary from the service and the local list."),
		mcp.WithString("trip_id", mcp.Required(), mcp.Description("The itinerary id")),
	)
	s.AddTool(deleteTool, th.handleDelete)
	return nil
}

func (th *TripsHandler) handleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := th.store.Refresh(ctx); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list_trips failed: %v", err)), nil
	}
	list := th.store.Itineraries()
	sum := store.Summarize(list, time.Now())

	payload := map[string]interface{}{
		"itineraries":  list,
		"count":        sum.Trips,
		"upcoming":     sum.Upcoming,
		"total_budget": sum.TotalBudget,
	}
	b, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(b)), nil
}

func (th *TripsHandler) handleGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tripID, _ := req.RequireString("trip_id")

	it, err := th.store.GetOne(ctx, tripID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("get_trip failed: %v", err)), nil
	}

	sections := view.Normalize(it)
	payload := map[string]interface{}{
		"itinerary":    it,
		"content_kind": sections.Kind().String(),
		"day_plans":    sections.Plans,
		"day_groups":   sections.Groups,
	}
	b, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(b)), nil
}

func (th *TripsHandler) handleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tripID, _ := req.RequireString("trip_id")

	if err := th.store.Delete(ctx, tripID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("delete_trip failed: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("itinerary %s deleted", tripID)), nil
}
