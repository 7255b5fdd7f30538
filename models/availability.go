package models

// BookingType determines how the calendar offers slots for a service.
// A time-bound service (e.g. a DJ set) needs a start and an end hour;
// a delivery-bound service (e.g. a cake drop-off) needs a single hour.
type BookingType string

const (
	BookingTimeBound     BookingType = "time_bound"
	BookingDeliveryBound BookingType = "delivery_bound"
)

// BusinessHours is the provider-configured daily window during which
// bookings may start. Type is either "24h" or "custom"; for "custom",
// Start and End carry "HH:MM" strings (hour granularity, e.g. "08:00").
type BusinessHours struct {
	Type  string `bson:"type" json:"type"`
	Start string `bson:"start,omitempty" json:"start,omitempty"`
	End   string `bson:"end,omitempty" json:"end,omitempty"`
}

const (
	HoursAllDay = "24h"
	HoursCustom = "custom"
)

// StartTimeOption is one candidate start hour offered to a customer.
// Non-bookable entries are kept so the UI can render them struck-through.
type StartTimeOption struct {
	Hour     int    `json:"hour"`
	Time     string `json:"time"` // "HH:00"
	Bookable bool   `json:"bookable"`
}

// DayOption is one calendar day in a month grid.
type DayOption struct {
	Date     string `json:"date"` // "YYYY-MM-DD"
	Bookable bool   `json:"bookable"`
}

// SlotSelection is the engine's boundary object: what the customer picked.
// EndTime is only meaningful for time-bound services; for delivery-bound
// services it mirrors StartTime.
type SlotSelection struct {
	Date      string `json:"date"`      // "YYYY-MM-DD"
	StartTime string `json:"startTime"` // "HH:00"
	EndTime   string `json:"endTime,omitempty"`
}
