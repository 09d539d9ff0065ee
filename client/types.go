package client

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ------------------------------
// Core domain types and payloads
// ------------------------------

// Days is a trip length in whole days. The service is inconsistent about the
// wire form: freshly generated payloads carry strings like "3 days" while
// persisted records carry plain integers. Days decodes both.
type Days int

func (d *Days) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*d = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		fields := strings.Fields(s)
		if len(fields) == 0 {
			*d = 0
			return nil
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			*d = 0
			return nil
		}
		*d = Days(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*d = Days(n)
	return nil
}

// Itinerary is a trip plan record. Content arrives in exactly one of two
// shapes and the two are never merged: DailyItinerary (generated tree) or
// Items (persisted flat rows tagged with day_number). Both may be populated
// on records straddling a schema migration; see the view package.
type Itinerary struct {
	// ID is set only once the service has persisted the record; a freshly
	// generated, unsaved result has no ID.
	ID          string `json:"id,omitempty"`
	UserID      string `json:"user_id,omitempty"`
	Destination string `json:"destination,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Duration    Days   `json:"duration,omitempty"`

	Travelers            int      `json:"travelers,omitempty"`
	MinBudget            *float64 `json:"min_budget,omitempty"`
	MaxBudget            *float64 `json:"max_budget,omitempty"`
	VegetarianPreference bool     `json:"vegetarian_preference,omitempty"`
	SpecialRequirements  string   `json:"special_requirements,omitempty"`
	CreatedAt            string   `json:"created_at,omitempty"`

	TripSummary        string `json:"trip_summary,omitempty"`
	TotalEstimatedCost string `json:"total_estimated_cost,omitempty"`

	// Generated content shape.
	DailyItinerary           []DayPlan         `json:"daily_itinerary,omitempty"`
	AccommodationSuggestions []Accommodation   `json:"accommodation_suggestions,omitempty"`
	Transportation           *Transportation   `json:"transportation,omitempty"`
	PackingSuggestions       []string          `json:"packing_suggestions,omitempty"`
	LocalTips                []string          `json:"local_tips,omitempty"`
	EmergencyContacts        map[string]string `json:"emergency_contacts,omitempty"`

	// Persisted/flat content shape.
	Items []ItineraryItem `json:"items,omitempty"`
}

// Persisted reports whether the service stored this itinerary.
func (it *Itinerary) Persisted() bool { return it.ID != "" }

// DayPlan is one pre-grouped day from the generated content shape.
type DayPlan struct {
	Day                  int               `json:"day"`
	Date                 string            `json:"date,omitempty"`
	DayName              string            `json:"day_name,omitempty"`
	Theme                string            `json:"theme,omitempty"`
	WeatherNote          string            `json:"weather_note,omitempty"`
	Activities           []Activity        `json:"activities,omitempty"`
	Meals                []Meal            `json:"meals,omitempty"`
	DailyBudgetBreakdown map[string]string `json:"daily_budget_breakdown,omitempty"`
	EveningSuggestions   []string          `json:"evening_suggestions,omitempty"`
}

// Activity is a single generated-shape activity. Costs here are free-form
// display strings ("₹200-500") straight from the generator.
type Activity struct {
	Time            string   `json:"time,omitempty"`
	Activity        string   `json:"activity,omitempty"`
	Name            string   `json:"name,omitempty"`
	Description     string   `json:"description,omitempty"`
	Location        string   `json:"location,omitempty"`
	Duration        string   `json:"duration,omitempty"`
	EstimatedCost   string   `json:"estimated_cost,omitempty"`
	Type            string   `json:"type,omitempty"`
	DifficultyLevel string   `json:"difficulty_level,omitempty"`
	Highlights      []string `json:"highlights,omitempty"`
	Tips            []string `json:"tips,omitempty"`
}

// Meal is one suggested meal within a DayPlan.
type Meal struct {
	MealType           string   `json:"meal_type,omitempty"`
	Time               string   `json:"time,omitempty"`
	Restaurant         string   `json:"restaurant,omitempty"`
	Cuisine            string   `json:"cuisine,omitempty"`
	Location           string   `json:"location,omitempty"`
	EstimatedCost      string   `json:"estimated_cost,omitempty"`
	Specialties        []string `json:"specialties,omitempty"`
	VegetarianFriendly bool     `json:"vegetarian_friendly,omitempty"`
	Ambiance           string   `json:"ambiance,omitempty"`
	BookingRequired    bool     `json:"booking_required,omitempty"`
}

// Accommodation is one lodging suggestion.
type Accommodation struct {
	Name                  string   `json:"name,omitempty"`
	Type                  string   `json:"type,omitempty"`
	Location              string   `json:"location,omitempty"`
	EstimatedCostPerNight string   `json:"estimated_cost_per_night,omitempty"`
	Amenities             []string `json:"amenities,omitempty"`
	Rating                string   `json:"rating,omitempty"`
	BookingTips           string   `json:"booking_tips,omitempty"`
}

// Transportation groups the to-destination leg with local transport options.
type Transportation struct {
	ToDestination  *TransportLeg    `json:"to_destination,omitempty"`
	LocalTransport []LocalTransport `json:"local_transport,omitempty"`
}

// TransportLeg describes getting to the destination.
type TransportLeg struct {
	Mode          string `json:"mode,omitempty"`
	From          string `json:"from,omitempty"`
	EstimatedCost string `json:"estimated_cost,omitempty"`
	Duration      string `json:"duration,omitempty"`
	BookingTips   string `json:"booking_tips,omitempty"`
}

// LocalTransport describes one in-destination transport option.
type LocalTransport struct {
	Mode          string `json:"mode,omitempty"`
	Usage         string `json:"usage,omitempty"`
	EstimatedCost string `json:"estimated_cost,omitempty"`
}

// ItineraryItem is one flat row from the persisted content shape. A missing
// day_number means day 1. The backend normalizes estimated_cost to a number
// before storing, unlike the generated shape's display strings.
type ItineraryItem struct {
	ID            json.Number `json:"id,omitempty"`
	ItineraryID   string      `json:"itinerary_id,omitempty"`
	DayNumber     int         `json:"day_number,omitempty"`
	ActivityType  string      `json:"activity_type,omitempty"`
	Title         string      `json:"title,omitempty"`
	Activity      string      `json:"activity,omitempty"`
	Name          string      `json:"name,omitempty"`
	Description   string      `json:"description,omitempty"`
	Location      string      `json:"location,omitempty"`
	Duration      string      `json:"duration,omitempty"`
	StartTime     string      `json:"start_time,omitempty"`
	EndTime       string      `json:"end_time,omitempty"`
	EstimatedCost *float64    `json:"estimated_cost,omitempty"`
	CreatedAt     string      `json:"created_at,omitempty"`
}

// GenerateRequest is the payload for POST /api/generate-itinerary. EndDate
// must be supplied by the caller; the client does not derive it.
type GenerateRequest struct {
	Destination  string  `json:"destination"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Duration     int     `json:"duration"`
	Budget       float64 `json:"budget"`
	IsVegetarian bool    `json:"isVegetarian"`
	Travelers    int     `json:"travelers"`
	UserID       string  `json:"user_id"`
}

// envelope is the uniform response wrapper used by every endpoint.
type envelope struct {
	Success bool            `json:"success,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Count   int             `json:"count,omitempty"`
	Error   string          `json:"error,omitempty"`
}
