// Package view turns a raw Itinerary record into renderable day-by-day
// sections. It is pure: no network access, no mutation of its input.
//
// An itinerary's content arrives in one of two shapes. Generated records carry
// a daily_itinerary tree of DayPlans; persisted records carry a flat items
// list tagged with day numbers. The two are never merged: a record that holds
// both (a leftover of an earlier schema migration) renders both sections
// independently.
package view

import (
	"fmt"
	"sort"

	"github.com/wanderplan/wanderplan-go/client"
)

// ContentKind tags which content shape(s) an itinerary carries.
type ContentKind int

const (
	ContentEmpty ContentKind = iota
	ContentGenerated
	ContentPersisted
	ContentBoth
)

func (k ContentKind) String() string {
	switch k {
	case ContentGenerated:
		return "generated"
	case ContentPersisted:
		return "persisted"
	case ContentBoth:
		return "generated+persisted"
	default:
		return "empty"
	}
}

// DayGroup is a derived day section produced by grouping flat items by their
// day number. Entries keep their input order within the group.
type DayGroup struct {
	Day     int
	Entries []client.ItineraryItem
}

// Sections is the normalized, renderable form of one itinerary's content.
type Sections struct {
	// Plans is the generated shape, in the order the service produced it.
	Plans []client.DayPlan
	// Groups is the persisted shape grouped by day, ascending.
	Groups []DayGroup
}

// Kind reports which content shapes the sections carry.
func (s Sections) Kind() ContentKind {
	switch {
	case len(s.Plans) > 0 && len(s.Groups) > 0:
		return ContentBoth
	case len(s.Plans) > 0:
		return ContentGenerated
	case len(s.Groups) > 0:
		return ContentPersisted
	default:
		return ContentEmpty
	}
}

// Empty reports whether no detailed itinerary content is available.
func (s Sections) Empty() bool { return s.Kind() == ContentEmpty }

// Normalize builds the day-by-day sections for one itinerary. The generated
// shape is passed through untouched; its ordering is trusted upstream. The
// flat shape is grouped by day number and sorted by ascending day.
func Normalize(it *client.Itinerary) Sections {
	if it == nil {
		return Sections{}
	}
	return Sections{
		Plans:  it.DailyItinerary,
		Groups: GroupItems(it.Items),
	}
}

// GroupItems buckets flat items by day number. An item without a day number
// belongs to day 1. Groups come back sorted by ascending day; entries inside
// a group keep input order.
func GroupItems(items []client.ItineraryItem) []DayGroup {
	if len(items) == 0 {
		return nil
	}
	byDay := make(map[int][]client.ItineraryItem)
	for _, item := range items {
		day := item.DayNumber
		if day == 0 {
			day = 1
		}
		byDay[day] = append(byDay[day], item)
	}
	groups := make([]DayGroup, 0, len(byDay))
	for day, entries := range byDay {
		groups = append(groups, DayGroup{Day: day, Entries: entries})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Day < groups[j].Day })
	return groups
}

// ItemTitle resolves the display title of a flat item: the first non-empty of
// title, activity, name, else a positional fallback. idx is zero-based.
func ItemTitle(item client.ItineraryItem, idx int) string {
	switch {
	case item.Title != "":
		return item.Title
	case item.Activity != "":
		return item.Activity
	case item.Name != "":
		return item.Name
	default:
		return fmt.Sprintf("Activity %d", idx+1)
	}
}

// ActivityTitle resolves the display title of a generated-shape activity.
func ActivityTitle(a client.Activity, idx int) string {
	switch {
	case a.Activity != "":
		return a.Activity
	case a.Name != "":
		return a.Name
	default:
		return fmt.Sprintf("Activity %d", idx+1)
	}
}
