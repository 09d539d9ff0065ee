package view

import (
	"testing"

	"github.com/wanderplan/wanderplan-go/client"
)

func TestGroupItemsDefaultsToDayOne(t *testing.T) {
	groups := GroupItems([]client.ItineraryItem{
		{Title: "Check in"},             // no day_number
		{Title: "Fort", DayNumber: 2},
		{Title: "Breakfast"},            // no day_number
	})
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Day != 1 || len(groups[0].Entries) != 2 {
		t.Fatalf("day-1 group wrong: %#v", groups[0])
	}
	if groups[0].Entries[0].Title != "Check in" || groups[0].Entries[1].Title != "Breakfast" {
		t.Fatalf("input order not preserved within group: %#v", groups[0].Entries)
	}
}

func TestGroupItemsSortedAscending(t *testing.T) {
	groups := GroupItems([]client.ItineraryItem{
		{Title: "c", DayNumber: 3},
		{Title: "a", DayNumber: 1},
		{Title: "b", DayNumber: 2},
		{Title: "a2", DayNumber: 1},
	})
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	for i, want := range []int{1, 2, 3} {
		if groups[i].Day != want {
			t.Fatalf("groups out of order: %#v", groups)
		}
	}
	if groups[0].Entries[1].Title != "a2" {
		t.Fatalf("entries within a day must keep input order")
	}
}

func TestNormalizeRendersBothShapesIndependently(t *testing.T) {
	it := &client.Itinerary{
		DailyItinerary: []client.DayPlan{{Day: 2}, {Day: 1}}, // upstream order is trusted
		Items:          []client.ItineraryItem{{Title: "x", DayNumber: 1}},
	}
	sections := Normalize(it)
	if sections.Kind() != ContentBoth {
		t.Fatalf("kind = %v, want both", sections.Kind())
	}
	// generated shape passes through without re-sorting
	if sections.Plans[0].Day != 2 || sections.Plans[1].Day != 1 {
		t.Fatalf("generated shape was reordered: %#v", sections.Plans)
	}
	if len(sections.Groups) != 1 {
		t.Fatalf("flat shape not grouped: %#v", sections.Groups)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if !Normalize(&client.Itinerary{}).Empty() {
		t.Fatalf("itinerary without content must normalize to empty")
	}
	if !Normalize(nil).Empty() {
		t.Fatalf("nil itinerary must normalize to empty")
	}
	if Normalize(&client.Itinerary{Items: []client.ItineraryItem{{}}}).Empty() {
		t.Fatalf("itinerary with items must not be empty")
	}
}

func TestContentKind(t *testing.T) {
	gen := Normalize(&client.Itinerary{DailyItinerary: []client.DayPlan{{Day: 1}}})
	if gen.Kind() != ContentGenerated {
		t.Fatalf("kind = %v", gen.Kind())
	}
	per := Normalize(&client.Itinerary{Items: []client.ItineraryItem{{}}})
	if per.Kind() != ContentPersisted {
		t.Fatalf("kind = %v", per.Kind())
	}
	if ContentBoth.String() != "generated+persisted" || ContentEmpty.String() != "empty" {
		t.Fatalf("kind strings wrong")
	}
}

func TestItemTitlePrecedence(t *testing.T) {
	cases := []struct {
		item client.ItineraryItem
		idx  int
		want string
	}{
		{client.ItineraryItem{Title: "T", Activity: "A", Name: "N"}, 0, "T"},
		{client.ItineraryItem{Activity: "A", Name: "N"}, 0, "A"},
		{client.ItineraryItem{Name: "N"}, 0, "N"},
		{client.ItineraryItem{}, 0, "Activity 1"},
		{client.ItineraryItem{}, 4, "Activity 5"},
	}
	for _, tc := range cases {
		if got := ItemTitle(tc.item, tc.idx); got != tc.want {
			t.Fatalf("ItemTitle(%#v, %d) = %q, want %q", tc.item, tc.idx, got, tc.want)
		}
	}
}

func TestActivityTitlePrecedence(t *testing.T) {
	if got := ActivityTitle(client.Activity{Activity: "Baga Beach", Name: "x"}, 0); got != "Baga Beach" {
		t.Fatalf("got %q", got)
	}
	if got := ActivityTitle(client.Activity{Name: "Fort"}, 0); got != "Fort" {
		t.Fatalf("got %q", got)
	}
	if got := ActivityTitle(client.Activity{}, 2); got != "Activity 3" {
		t.Fatalf("got %q", got)
	}
}
