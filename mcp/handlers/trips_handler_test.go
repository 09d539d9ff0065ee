package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/wanderplan/wanderplan-go/client"
	"github.com/wanderplan/wanderplan-go/store"
)

func newTestStore(t *testing.T, handler http.HandlerFunc) (*store.Store, func()) {
	t.Helper()
	ts := httptest.NewServer(handler)
	sdk := client.New(ts.URL)
	return store.New(sdk, "traveler_1"), ts.Close
}

func TestListTripsTool(t *testing.T) {
	st, done := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/itineraries" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": [{"id": "1", "destination": "Goa", "max_budget": 1000}], "count": 1}`))
	})
	defer done()

	th := NewTripsHandler(st)
	res, err := th.handleList(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if res == nil || res.IsError {
		t.Fatalf("unexpected result %#v", res)
	}
	if len(st.Itineraries()) != 1 {
		t.Fatalf("store list not refreshed")
	}
}

func TestGetTripTool(t *testing.T) {
	st, done := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": {"id": "7", "destination": "Udaipur", "items": [{"day_number": 1, "title": "City Palace"}]}}`))
	})
	defer done()

	th := NewTripsHandler(st)
	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]any{"trip_id": "7"},
		},
	}
	res, err := th.handleGet(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if res == nil || res.IsError {
		t.Fatalf("unexpected result %#v", res)
	}
	if st.Current() == nil || st.Current().ID != "7" {
		t.Fatalf("current not set by get_trip")
	}
}

func TestDeleteTripToolSurfacesFailure(t *testing.T) {
	st, done := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "Failed to delete itinerary"}`))
	})
	defer done()

	th := NewTripsHandler(st)
	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]any{"trip_id": "7"},
		},
	}
	res, err := th.handleDelete(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if res == nil || !res.IsError {
		t.Fatalf("service failure should surface as a tool error")
	}
}
