package availability

import (
	"fmt"
	"strconv"
	"strings"

	"eventoz/models"
)

// Providers without configured hours fall back to a standard business day.
const (
	defaultOpenHour  = 8
	defaultCloseHour = 20
)

// window is the resolved daily operating window. For an all-day service
// bookings may start at any of the 24 hours and run to end of day (24).
type window struct {
	open   int
	close  int
	allDay bool
}

// endCeiling is the exclusive upper boundary an end time may reach.
func (w window) endCeiling() int {
	if w.allDay {
		return 24
	}
	return w.close
}

// lastStartHour is the latest hour a booking may start. Hour 24 exists
// only as an end boundary, never as a start.
func (w window) lastStartHour() int {
	if w.allDay || w.close > 23 {
		return 23
	}
	return w.close
}

// resolveWindow validates and normalizes a service's business hours.
// Hours must not wrap past midnight: open >= close is a configuration
// error, never a silently wrapped range.
func resolveWindow(bh models.BusinessHours) (window, error) {
	if bh.Type == models.HoursAllDay {
		return window{open: 0, close: 23, allDay: true}, nil
	}

	// Unset halves of a custom window fall back to the standard day, so
	// a provider who only sets an opening hour still closes at 20.
	open, close := defaultOpenHour, defaultCloseHour
	if bh.Type == models.HoursCustom {
		var err error
		if bh.Start != "" {
			if open, err = ParseHour(bh.Start); err != nil {
				return window{}, NewConfigurationError(fmt.Sprintf("invalid opening hour %q", bh.Start))
			}
		}
		if bh.End != "" {
			if close, err = ParseHour(bh.End); err != nil {
				return window{}, NewConfigurationError(fmt.Sprintf("invalid closing hour %q", bh.End))
			}
		}
	}
	if open >= close {
		return window{}, NewConfigurationError(
			fmt.Sprintf("opening hour %d must be before closing hour %d", open, close))
	}
	return window{open: open, close: close}, nil
}

// candidateHours returns the ordered candidate start hours for any open
// day: every hour for all-day services, open..close inclusive otherwise,
// never past 23. The closing hour is offered as a start; whether a valid
// end exists for it is decided by the end-time computation.
func (w window) candidateHours() []int {
	if w.allDay {
		hours := make([]int, 24)
		for h := range hours {
			hours[h] = h
		}
		return hours
	}
	last := w.lastStartHour()
	hours := make([]int, 0, last-w.open+1)
	for h := w.open; h <= last; h++ {
		hours = append(hours, h)
	}
	return hours
}

// ParseHour parses an "HH:00" or "HH:MM" time string into its hour.
// "24:00" is accepted as the end-of-day boundary.
func ParseHour(s string) (int, error) {
	part, _, _ := strings.Cut(s, ":")
	h, err := strconv.Atoi(part)
	if err != nil || h < 0 || h > 24 {
		return 0, fmt.Errorf("invalid hour value %q", s)
	}
	return h, nil
}

// FormatHour renders an hour as the "HH:00" string used on the wire.
// Hour 24 renders as "24:00", the end-of-day boundary for all-day
// services (never "00:00", which would read as a wrap past midnight).
func FormatHour(h int) string {
	return fmt.Sprintf("%02d:00", h)
}
