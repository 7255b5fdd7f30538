package models

import "time"

// BookingSession carries an in-progress booking through the select-day,
// select-slot, confirm flow. Sessions live in Redis with a short TTL so an
// abandoned flow simply evaporates.
type BookingSession struct {
	SessionID string    `json:"sessionId"`
	UserID    string    `json:"userId"`
	ServiceID string    `json:"serviceId"`
	EventID   string    `json:"eventId,omitempty"`
	Date      string    `json:"date,omitempty"`
	StartTime string    `json:"startTime,omitempty"`
	EndTime   string    `json:"endTime,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
