package models

import "time"

// Reservation represents a confirmed or pending booking against a service.
// Times are hour-granular: StartHour is the booked start, EndHour the
// exclusive-ish end boundary selected by the customer. A nil EndHour
// (delivery-bound booking) occupies exactly [StartHour, StartHour+1).
type Reservation struct {
	ID        string    `bson:"id" json:"id"`
	EventID   string    `bson:"event_id,omitempty" json:"eventId,omitempty"` // Organizer's event this booking belongs to
	ServiceID string    `bson:"service_id" json:"serviceId"`
	UserID    string    `bson:"user_id" json:"userId"`
	Date      string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	StartHour int       `bson:"start_hour" json:"startHour"`
	EndHour   *int      `bson:"end_hour,omitempty" json:"endHour,omitempty"`
	Amount    float64   `bson:"amount" json:"amount"`
	Location  string    `bson:"location,omitempty" json:"location,omitempty"` // Venue specified by the organizer
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Reservation lifecycle states. Active = pending + confirmed; only
// active reservations count against availability.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCompleted = "completed"
	ReservationCancelled = "cancelled"
)

// Active reports whether the reservation still occupies its slot.
func (r Reservation) Active() bool {
	return r.Status == ReservationPending || r.Status == ReservationConfirmed
}
