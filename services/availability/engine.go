package availability

import (
	"fmt"
	"time"

	"eventoz/models"
)

const dateLayout = "2006-01-02"

// Calculator computes bookable days and slots for one service. It is a
// pure function of the service configuration, the reservations handed to
// each call and the injected clock; it keeps no mutable state and
// performs no I/O, so a single instance is safe for concurrent use.
//
// Callers must pass only active reservations (pending + confirmed);
// cancelled ones are excluded upstream.
type Calculator struct {
	mode    models.BookingType
	win     window
	blocked map[string]struct{}
	now     func() time.Time
}

// NewCalculator builds a calculator from a service's booking
// configuration. Malformed business hours yield a configuration error.
func NewCalculator(svc models.Service, now func() time.Time) (*Calculator, error) {
	win, err := resolveWindow(svc.BusinessHours)
	if err != nil {
		return nil, err
	}
	mode := svc.BookingType
	if mode == "" {
		mode = models.BookingTimeBound
	}
	blocked := make(map[string]struct{}, len(svc.UnavailableDates))
	for _, d := range svc.UnavailableDates {
		blocked[d] = struct{}{}
	}
	if now == nil {
		now = time.Now
	}
	return &Calculator{mode: mode, win: win, blocked: blocked, now: now}, nil
}

// Mode returns the booking mode the calculator operates in.
func (c *Calculator) Mode() models.BookingType {
	return c.mode
}

// IsDayBookable reports whether the date can take new bookings at all:
// not in the past and not a blocked day.
func (c *Calculator) IsDayBookable(date string) bool {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	now := c.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return false
	}
	_, isBlocked := c.blocked[date]
	return !isBlocked
}

// MonthDays returns the bookable flag for every day of a month, in order,
// for rendering a calendar grid.
func (c *Calculator) MonthDays(year int, month time.Month) []models.DayOption {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]models.DayOption, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Format(dateLayout)
		days = append(days, models.DayOption{Date: date, Bookable: c.IsDayBookable(date)})
	}
	return days
}

// StartTimeOptions returns every candidate start hour for the date with
// its bookable flag. Hours inside an occupied interval are flagged, not
// dropped, so UIs can render them as disabled. For a day that is not
// bookable at all, the full list comes back with every entry unbookable.
func (c *Calculator) StartTimeOptions(date string, active []models.Reservation) []models.StartTimeOption {
	hours := c.win.candidateHours()
	options := make([]models.StartTimeOption, 0, len(hours))

	if !c.IsDayBookable(date) {
		for _, h := range hours {
			options = append(options, models.StartTimeOption{Hour: h, Time: FormatHour(h)})
		}
		return options
	}

	intervals := OccupiedIntervals(active, date)
	for _, h := range hours {
		options = append(options, models.StartTimeOption{
			Hour:     h,
			Time:     FormatHour(h),
			Bookable: !occupied(intervals, h),
		})
	}
	return options
}

// EndTimeOptions lists the valid end hours once a start hour is chosen.
// Only meaningful for time-bound services. The ceiling is the business
// closing hour (24 for all-day services), narrowed to the start of the
// nearest reservation after the chosen hour: an existing booking is a
// hard wall a new booking may touch but never cross. An empty result
// means no extension is possible, which is not an error.
func (c *Calculator) EndTimeOptions(date string, startHour int, active []models.Reservation) ([]int, error) {
	if c.mode != models.BookingTimeBound {
		return nil, NewInvalidSelectionError("end times do not apply to delivery-bound services")
	}
	if !c.startBookable(date, startHour, active) {
		return nil, NewInvalidSelectionError(
			fmt.Sprintf("start hour %d is not bookable on %s", startHour, date))
	}

	limit := c.endLimit(date, startHour, active)
	var ends []int
	for h := startHour + 1; h <= limit; h++ {
		ends = append(ends, h)
	}
	return ends, nil
}

// ValidateSelection re-derives day, start and end validity from current
// state immediately before persistence, guarding against availability
// changing between render and submit. A selection that could never be
// valid under the current configuration is an invalid selection; one
// that lost its slot to another reservation is stale. On success the
// selection is returned unchanged.
func (c *Calculator) ValidateSelection(sel models.SlotSelection, active []models.Reservation) (models.SlotSelection, error) {
	if _, err := time.Parse(dateLayout, sel.Date); err != nil {
		return sel, NewInvalidSelectionError(fmt.Sprintf("invalid date %q", sel.Date))
	}
	if !c.IsDayBookable(sel.Date) {
		return sel, NewInvalidSelectionError(fmt.Sprintf("date %s is not bookable", sel.Date))
	}

	start, err := ParseHour(sel.StartTime)
	if err != nil {
		return sel, NewInvalidSelectionError(fmt.Sprintf("invalid start time %q", sel.StartTime))
	}
	if !c.withinWindow(start) {
		return sel, NewInvalidSelectionError(
			fmt.Sprintf("start time %s is outside business hours", sel.StartTime))
	}
	if occupied(OccupiedIntervals(active, sel.Date), start) {
		return sel, NewStaleAvailabilityError(
			fmt.Sprintf("start time %s on %s has been taken", sel.StartTime, sel.Date))
	}

	if c.mode == models.BookingDeliveryBound {
		if sel.EndTime != "" && sel.EndTime != sel.StartTime {
			return sel, NewInvalidSelectionError("delivery-bound bookings take a single time")
		}
		return sel, nil
	}

	end, err := ParseHour(sel.EndTime)
	if err != nil {
		return sel, NewInvalidSelectionError(fmt.Sprintf("invalid end time %q", sel.EndTime))
	}
	if end <= start {
		return sel, NewInvalidSelectionError("end time must be after start time")
	}
	if end > c.win.endCeiling() {
		return sel, NewInvalidSelectionError(
			fmt.Sprintf("end time %s is outside business hours", sel.EndTime))
	}
	if end > c.endLimit(sel.Date, start, active) {
		return sel, NewStaleAvailabilityError(
			fmt.Sprintf("slot %s-%s on %s now overlaps another booking", sel.StartTime, sel.EndTime, sel.Date))
	}
	return sel, nil
}

// withinWindow reports whether the hour is a candidate start hour.
// Hour 24 is never a start, only an end boundary.
func (c *Calculator) withinWindow(hour int) bool {
	if c.win.allDay {
		return hour >= 0 && hour <= 23
	}
	return hour >= c.win.open && hour <= c.win.lastStartHour()
}

func (c *Calculator) startBookable(date string, startHour int, active []models.Reservation) bool {
	if !c.IsDayBookable(date) || !c.withinWindow(startHour) {
		return false
	}
	return !occupied(OccupiedIntervals(active, date), startHour)
}

// endLimit is the inclusive maximum end hour for a booking starting at
// startHour: the business ceiling, pulled down to the next reservation.
func (c *Calculator) endLimit(date string, startHour int, active []models.Reservation) int {
	limit := c.win.endCeiling()
	if next, ok := nextStartAfter(OccupiedIntervals(active, date), startHour); ok && next < limit {
		limit = next
	}
	return limit
}
