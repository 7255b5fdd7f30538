package booking

import (
	"time"

	"eventoz/models"
)

// BookingRequest is a direct booking submission, either assembled from a
// cached session or sent in one shot by the client.
type BookingRequest struct {
	UserID    string               `json:"userId"`
	EventID   string               `json:"eventId,omitempty"`
	ServiceID string               `json:"serviceId"`
	Location  string               `json:"location,omitempty"`
	Selection models.SlotSelection `json:"selection"`
}

// BookingService exposes availability queries, the stateful booking
// session flow and the reservation lifecycle.
type BookingService interface {
	// Availability queries, backed by the calculator.
	MonthAvailability(serviceID string, year int, month time.Month) ([]models.DayOption, error)
	StartTimeOptions(serviceID, date string) ([]models.StartTimeOption, error)
	EndTimeOptions(serviceID, date string, startHour int) ([]string, error)

	// Redis-backed session flow.
	InitiateSession(userID, serviceID, eventID string) (*models.BookingSession, error)
	UpdateSession(sessionID string, sel models.SlotSelection) (*models.BookingSession, error)
	ConfirmSession(sessionID, location string) (*models.Reservation, error)
	CancelSession(sessionID string) error

	// Reservation lifecycle.
	RequestBooking(req BookingRequest) (*models.Reservation, error)
	ConfirmReservation(id string) error
	CancelReservation(id string) error
	CompleteReservation(id string) error
	GetReservation(id string) (*models.Reservation, error)
	ListForService(serviceID string) ([]models.Reservation, error)
	ListForEvent(eventID string) ([]models.Reservation, error)
}
