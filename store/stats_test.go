package store

import (
	"testing"
	"time"

	"github.com/wanderplan/wanderplan-go/client"
)

func f(v float64) *float64 { return &v }

func TestSummarizeTreatsMissingBudgetAsZero(t *testing.T) {
	list := []client.Itinerary{
		{MaxBudget: f(1000)},
		{}, // absent budget
		{MaxBudget: f(500)},
	}
	sum := Summarize(list, time.Now())
	if sum.TotalBudget != 1500 {
		t.Fatalf("total budget = %v, want 1500", sum.TotalBudget)
	}
	if sum.Trips != 3 {
		t.Fatalf("trips = %d", sum.Trips)
	}
}

func TestSummarizeUpcoming(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	list := []client.Itinerary{
		{StartDate: "2025-03-10"}, // upcoming
		{StartDate: "2025-02-10"}, // past
		{StartDate: "not-a-date"}, // unparseable, not upcoming
		{},                        // no date
	}
	sum := Summarize(list, now)
	if sum.Upcoming != 1 {
		t.Fatalf("upcoming = %d, want 1", sum.Upcoming)
	}
}
