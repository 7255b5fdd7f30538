package handlers

import (
	"net/http"
	"strconv"
	"time"

	"eventoz/services/availability"
	"eventoz/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingSvc is wired at startup.
var BookingSvc booking.BookingService

// availabilityStatus maps the availability error taxonomy onto HTTP
// statuses: misconfigured listing, impossible selection, lost slot.
func availabilityStatus(err error) int {
	switch {
	case availability.IsConfigurationError(err):
		return http.StatusUnprocessableEntity
	case availability.IsInvalidSelection(err):
		return http.StatusBadRequest
	case availability.IsStaleAvailability(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// GetMonthAvailability returns the bookable flag for each day of a month.
func GetMonthAvailability(c *gin.Context) {
	serviceID := c.Param("id")
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}

	days, err := BookingSvc.MonthAvailability(serviceID, year, time.Month(month))
	if err != nil {
		c.JSON(availabilityStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

// GetStartTimes returns the candidate start hours for a date, with each
// hour flagged bookable or not.
func GetStartTimes(c *gin.Context) {
	serviceID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	options, err := BookingSvc.StartTimeOptions(serviceID, date)
	if err != nil {
		c.JSON(availabilityStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"startTimes": options})
}

// GetEndTimes returns the valid end hours for a chosen start hour.
func GetEndTimes(c *gin.Context) {
	serviceID := c.Param("id")
	date := c.Query("date")
	startHour, err := strconv.Atoi(c.Query("startHour"))
	if date == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and startHour are required"})
		return
	}

	ends, err := BookingSvc.EndTimeOptions(serviceID, date, startHour)
	if err != nil {
		c.JSON(availabilityStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"endTimes": ends})
}
