package view

import "time"

// DatePlaceholder is shown when a date string cannot be parsed. Display
// formatting degrades instead of raising.
const DatePlaceholder = "Date unavailable"

const wireDateLayout = "2006-01-02"

// FormatDate renders a YYYY-MM-DD wire date for display, e.g. "Mar 10, 2025".
// Unparseable input degrades to DatePlaceholder.
func FormatDate(s string) string {
	if s == "" {
		return DatePlaceholder
	}
	t, err := time.Parse(wireDateLayout, s)
	if err != nil {
		// Persisted timestamps sometimes arrive with a time component.
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return DatePlaceholder
		}
	}
	return t.Format("Jan 2, 2006")
}

// DateRange renders "start – end" for display, degrading per FormatDate.
func DateRange(start, end string) string {
	return FormatDate(start) + " – " + FormatDate(end)
}
