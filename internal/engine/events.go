package engine

import "time"

// ActiveEvent names the seasonal event covering today, or returns "".
// The annotation is informational; no rule changes while an event runs.
func ActiveEvent(today time.Time) string {
	start := time.Date(today.Year(), time.December, 20, 0, 0, 0, 0, today.Location())
	end := time.Date(today.Year(), time.December, 31, 23, 59, 59, 0, today.Location())
	if !today.Before(start) && !today.After(end) {
		return "Holiday Event"
	}
	return ""
}
