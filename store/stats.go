package store

import (
	"time"

	"github.com/wanderplan/wanderplan-go/client"
)

// Summary aggregates the itinerary list for dashboard display.
type Summary struct {
	Trips       int
	Upcoming    int
	TotalBudget float64
}

// Summarize computes trip counts and the aggregate budget over a list.
// A missing max budget counts as 0, never as a failure. Upcoming counts
// trips whose start date is strictly after now; unparseable dates are
// simply not upcoming.
func Summarize(list []client.Itinerary, now time.Time) Summary {
	sum := Summary{Trips: len(list)}
	for _, it := range list {
		if it.MaxBudget != nil {
			sum.TotalBudget += *it.MaxBudget
		}
		if start, err := time.Parse(dateLayout, it.StartDate); err == nil && start.After(now) {
			sum.Upcoming++
		}
	}
	return sum
}

// Summary aggregates the store's current list as of now.
func (s *Store) Summary(now time.Time) Summary {
	return Summarize(s.Itineraries(), now)
}
