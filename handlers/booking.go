package handlers

import (
	"errors"
	"net/http"

	"eventoz/models"
	"eventoz/services/booking"

	"github.com/gin-gonic/gin"
)

// StartBookingSession opens a booking session for the signed-in user.
func StartBookingSession(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId"`
		EventID   string `json:"eventId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ServiceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "serviceId is required"})
		return
	}

	userID := c.GetString("userID")
	session, err := BookingSvc.InitiateSession(userID, input.ServiceID, input.EventID)
	if err != nil {
		c.JSON(availabilityStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// sessionStatus maps session-flow errors: a missing or expired session
// is a 404, everything else follows the availability taxonomy.
func sessionStatus(err error) int {
	if errors.Is(err, booking.ErrNotFound) {
		return http.StatusNotFound
	}
	return availabilityStatus(err)
}

// UpdateBookingSession stores the customer's slot choice after checking
// it against live availability.
func UpdateBookingSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Selection models.SlotSelection `json:"selection"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := BookingSvc.UpdateSession(sessionID, input.Selection)
	if err != nil {
		c.JSON(sessionStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ConfirmBookingSession turns the session into a pending reservation.
func ConfirmBookingSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Location string `json:"location"`
	}
	_ = c.ShouldBindJSON(&input)

	reservation, err := BookingSvc.ConfirmSession(sessionID, input.Location)
	if err != nil {
		c.JSON(sessionStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reservation": reservation})
}

// CancelBookingSession abandons the flow and drops the cached session.
func CancelBookingSession(c *gin.Context) {
	if err := BookingSvc.CancelSession(c.Param("sessionID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// RequestBooking places a reservation in one shot, without a session.
func RequestBooking(c *gin.Context) {
	var req booking.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	req.UserID = c.GetString("userID")

	reservation, err := BookingSvc.RequestBooking(req)
	if err != nil {
		c.JSON(availabilityStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reservation": reservation})
}

func lifecycleStatus(err error) int {
	switch {
	case errors.Is(err, booking.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrBadTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ConfirmReservation accepts a pending booking on the provider side.
func ConfirmReservation(c *gin.Context) {
	if err := BookingSvc.ConfirmReservation(c.Param("id")); err != nil {
		c.JSON(lifecycleStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.ReservationConfirmed})
}

// CancelReservation frees the slot from either side.
func CancelReservation(c *gin.Context) {
	if err := BookingSvc.CancelReservation(c.Param("id")); err != nil {
		c.JSON(lifecycleStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.ReservationCancelled})
}

// GetReservation fetches one reservation.
func GetReservation(c *gin.Context) {
	reservation, err := BookingSvc.GetReservation(c.Param("id"))
	if err != nil {
		c.JSON(lifecycleStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}

// ListServiceReservations returns every reservation against a service.
func ListServiceReservations(c *gin.Context) {
	reservations, err := BookingSvc.ListForService(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

// ListEventReservations returns the bookings attached to an event.
func ListEventReservations(c *gin.Context) {
	reservations, err := BookingSvc.ListForEvent(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}
