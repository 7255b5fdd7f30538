package availability

import "eventoz/models"

// Interval is a half-open occupied hour range [Start, End) on one day.
type Interval struct {
	Start int
	End   int
}

// OccupiedIntervals normalizes the reservations falling on the given date
// into half-open hour intervals. A reservation without an end hour
// occupies exactly one hour; occupation never crosses midnight, so ends
// are capped at 24. Overlapping or malformed input is kept as-is and
// treated as a union of blocked hours by the callers, never an error:
// the engine is a read-side safety net, not the system of record.
func OccupiedIntervals(reservations []models.Reservation, date string) []Interval {
	var intervals []Interval
	for _, r := range reservations {
		if r.Date != date {
			continue
		}
		if r.StartHour < 0 || r.StartHour > 23 {
			continue
		}
		end := r.StartHour + 1
		if r.EndHour != nil && *r.EndHour > r.StartHour {
			end = *r.EndHour
		}
		if end > 24 {
			end = 24
		}
		intervals = append(intervals, Interval{Start: r.StartHour, End: end})
	}
	return intervals
}

// occupied reports whether the hour falls inside any interval.
func occupied(intervals []Interval, hour int) bool {
	for _, iv := range intervals {
		if iv.Start <= hour && hour < iv.End {
			return true
		}
	}
	return false
}

// nextStartAfter returns the start of the nearest interval beginning
// strictly after the given hour, or ok=false when there is none.
func nextStartAfter(intervals []Interval, hour int) (int, bool) {
	next, ok := 0, false
	for _, iv := range intervals {
		if iv.Start > hour && (!ok || iv.Start < next) {
			next, ok = iv.Start, true
		}
	}
	return next, ok
}
