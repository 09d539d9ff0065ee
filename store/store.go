// Package store owns the itinerary lifecycle state: the canonical list of a
// traveler's itineraries, the currently selected one, and the loading/error
// status of the most recent operation. It orchestrates calls to the service
// client and is the only component that mutates this state.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wanderplan/wanderplan-go/client"
)

// Service is the subset of the itinerary service client the store drives.
// *client.Client satisfies it.
type Service interface {
	GenerateItinerary(ctx context.Context, req client.GenerateRequest) (*client.Itinerary, error)
	ListItineraries(ctx context.Context, userID string) ([]client.Itinerary, error)
	GetItinerary(ctx context.Context, id string) (*client.Itinerary, error)
	DeleteItinerary(ctx context.Context, id string) error
}

// FormData is the user-supplied trip request. The end date is not part of it:
// the store derives it from StartDate and Duration before calling the client.
type FormData struct {
	Destination  string
	StartDate    string
	Duration     int
	Budget       float64
	IsVegetarian bool
	Travelers    int
}

const dateLayout = "2006-01-02"

// DeriveEndDate computes the trip's last day: start + duration - 1 days.
func DeriveEndDate(startDate string, duration int) (string, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return "", &client.ValidationError{Message: "start_date must use YYYY-MM-DD format"}
	}
	return start.AddDate(0, 0, duration-1).Format(dateLayout), nil
}

// Store holds itinerary state for one traveler identity. The mutex guards
// memory safety only; it does not serialize whole operations. Loading is
// advisory: nothing stops a second operation from starting while one is in
// flight, and concurrent completions apply last-writer-wins, matching the
// behavior this store reproduces.
type Store struct {
	svc    Service
	userID string

	mu      sync.Mutex
	current *client.Itinerary
	list    []client.Itinerary
	loading bool
	lastErr string
}

// New builds a Store bound to an explicit traveler identity. Identity is
// always passed in here, never read from ambient state inside operations.
func New(svc Service, userID string) *Store {
	return &Store{svc: svc, userID: userID}
}

// UserID returns the traveler identity the store was built with.
func (s *Store) UserID() string { return s.userID }

// Current returns the currently selected itinerary, or nil.
func (s *Store) Current() *client.Itinerary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Itineraries returns a snapshot of the itinerary list.
func (s *Store) Itineraries() []client.Itinerary {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]client.Itinerary, len(s.list))
	copy(out, s.list)
	return out
}

// Loading reports whether an operation is (advisorily) in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the failure message of the last failed operation, or "".
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Refresh replaces the itinerary list wholesale from the service. On failure
// the previous list stays untouched and the error message is recorded.
func (s *Store) Refresh(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	list, err := s.svc.ListItineraries(ctx, s.userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", s.userID).Msg("failed to refresh itineraries")
		s.recordErr(err)
		return err
	}

	s.mu.Lock()
	s.list = list
	s.lastErr = ""
	s.mu.Unlock()

	log.Debug().Int("count", len(list)).Str("user_id", s.userID).Msg("itineraries refreshed")
	return nil
}

// Generate validates the form, derives the end date, and asks the service for
// a new itinerary. On success the result becomes current; it is prepended to
// the list only when the service persisted it (the record carries an ID).
// Validation failures never reach the network.
func (s *Store) Generate(ctx context.Context, form FormData) (*client.Itinerary, error) {
	if form.Destination == "" {
		return nil, s.recordErr(&client.ValidationError{Message: "destination is required"})
	}
	if form.Duration < 1 {
		return nil, s.recordErr(&client.ValidationError{Message: "duration must be at least 1 day"})
	}
	if form.Budget < 1 {
		return nil, s.recordErr(&client.ValidationError{Message: "budget must be a positive number"})
	}
	endDate, err := DeriveEndDate(form.StartDate, form.Duration)
	if err != nil {
		return nil, s.recordErr(err)
	}
	travelers := form.Travelers
	if travelers == 0 {
		travelers = 1
	}

	s.setLoading(true)
	defer s.setLoading(false)

	it, err := s.svc.GenerateItinerary(ctx, client.GenerateRequest{
		Destination:  form.Destination,
		StartDate:    form.StartDate,
		EndDate:      endDate,
		Duration:     form.Duration,
		Budget:       form.Budget,
		IsVegetarian: form.IsVegetarian,
		Travelers:    travelers,
		UserID:       s.userID,
	})
	if err != nil {
		log.Error().Err(err).Str("destination", form.Destination).Msg("itinerary generation failed")
		return nil, s.recordErr(err)
	}

	s.mu.Lock()
	s.current = it
	if it.Persisted() {
		s.list = append([]client.Itinerary{*it}, s.list...)
	}
	s.lastErr = ""
	s.mu.Unlock()

	log.Info().Str("destination", form.Destination).Str("itinerary_id", it.ID).Bool("persisted", it.Persisted()).Msg("itinerary generated")
	return it, nil
}

// Delete removes the itinerary on the service side first, then prunes it from
// local state. Exactly one list entry is removed even if duplicates slipped
// in, and current is cleared when it was the deleted one. There is no
// optimistic removal before the call returns.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.svc.DeleteItinerary(ctx, id); err != nil {
		log.Error().Err(err).Str("itinerary_id", id).Msg("failed to delete itinerary")
		return s.recordErr(err)
	}

	s.mu.Lock()
	for i := range s.list {
		if s.list[i].ID == id {
			s.list = append(s.list[:i], s.list[i+1:]...)
			break
		}
	}
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	s.lastErr = ""
	s.mu.Unlock()

	log.Info().Str("itinerary_id", id).Msg("itinerary deleted")
	return nil
}

// GetOne fetches one itinerary with full content and makes it current.
func (s *Store) GetOne(ctx context.Context, id string) (*client.Itinerary, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	it, err := s.svc.GetItinerary(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("itinerary_id", id).Msg("failed to fetch itinerary")
		return nil, s.recordErr(err)
	}

	s.mu.Lock()
	s.current = it
	s.lastErr = ""
	s.mu.Unlock()
	return it, nil
}

// ClearCurrent resets the current selection and the error state. No network.
func (s *Store) ClearCurrent() {
	s.mu.Lock()
	s.current = nil
	s.lastErr = ""
	s.mu.Unlock()
}

// recordErr stores the failure message for the caller to surface and returns
// err unchanged so operations can re-raise it. The store itself stays usable.
func (s *Store) recordErr(err error) error {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.mu.Unlock()
	return err
}
