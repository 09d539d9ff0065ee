package client

import (
	"encoding/json"
	"testing"
)

func TestDaysUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want Days
	}{
		{`3`, 3},
		{`"3 days"`, 3},
		{`"5"`, 5},
		{`null`, 0},
		{`"soon"`, 0},
		{`""`, 0},
	}
	for _, tc := range cases {
		var d Days
		if err := json.Unmarshal([]byte(tc.in), &d); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if d != tc.want {
			t.Fatalf("unmarshal %s: got %d want %d", tc.in, d, tc.want)
		}
	}
}

func TestItineraryPersisted(t *testing.T) {
	unsaved := Itinerary{Destination: "Goa"}
	if unsaved.Persisted() {
		t.Fatalf("itinerary without id must not be persisted")
	}
	saved := Itinerary{ID: "42"}
	if !saved.Persisted() {
		t.Fatalf("itinerary with id must be persisted")
	}
}

func TestItineraryDecodesBothShapes(t *testing.T) {
	raw := []byte(`{
		"id": "9",
		"destination": "Udaipur",
		"max_budget": 5000,
		"daily_itinerary": [{"day": 1, "activities": [{"activity": "Lake Pichola"}]}],
		"items": [{"day_number": 1, "title": "Lake Pichola", "estimated_cost": 300}]
	}`)
	var it Itinerary
	if err := json.Unmarshal(raw, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(it.DailyItinerary) != 1 || len(it.Items) != 1 {
		t.Fatalf("both shapes should decode side by side: %#v", it)
	}
	if it.MaxBudget == nil || *it.MaxBudget != 5000 {
		t.Fatalf("max_budget not decoded: %#v", it.MaxBudget)
	}
	if it.Items[0].EstimatedCost == nil || *it.Items[0].EstimatedCost != 300 {
		t.Fatalf("item estimated_cost not decoded: %#v", it.Items[0])
	}
}
