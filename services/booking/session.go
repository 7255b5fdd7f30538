package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"eventoz/config"
	"eventoz/models"
	"eventoz/services/availability"
	"eventoz/utils"

	"github.com/google/uuid"
)

func sessionTTL() time.Duration {
	mins := config.AppConfig.SessionTTLMins
	if mins <= 0 {
		mins = 10
	}
	return time.Duration(mins) * time.Minute
}

// InitiateSession opens a booking session for a user against a service,
// assigns it a session ID and stores it in Redis. The service must exist
// and be bookable before a session is handed out.
func (s *DefaultBookingService) InitiateSession(userID, serviceID, eventID string) (*models.BookingSession, error) {
	if _, _, err := s.calculatorFor(serviceID); err != nil {
		return nil, err
	}

	session := models.BookingSession{
		SessionID: uuid.New().String(),
		UserID:    userID,
		ServiceID: serviceID,
		EventID:   eventID,
		CreatedAt: s.clock()(),
	}
	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return &session, nil
}

// UpdateSession stores the customer's current slot choice after checking
// it against live availability, so the confirm step starts from a
// selection that was valid moments ago.
func (s *DefaultBookingService) UpdateSession(sessionID string, sel models.SlotSelection) (*models.BookingSession, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	calc, _, err := s.calculatorFor(session.ServiceID)
	if err != nil {
		return nil, err
	}
	active, err := s.ReservationRepo.ListActive(session.ServiceID, sel.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	if _, err := calc.ValidateSelection(sel, active); err != nil {
		return nil, err
	}

	session.Date = sel.Date
	session.StartTime = sel.StartTime
	session.EndTime = sel.EndTime
	if err := s.saveSession(*session); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmSession turns the session's stored selection into a pending
// reservation and drops the session. Availability is re-validated inside
// RequestBooking, so a slot lost while the session sat idle comes back
// as a stale-availability error.
func (s *DefaultBookingService) ConfirmSession(sessionID, location string) (*models.Reservation, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Date == "" || session.StartTime == "" {
		return nil, availability.NewInvalidSelectionError("booking session has no slot selected")
	}

	reservation, err := s.RequestBooking(BookingRequest{
		UserID:    session.UserID,
		EventID:   session.EventID,
		ServiceID: session.ServiceID,
		Location:  location,
		Selection: models.SlotSelection{
			Date:      session.Date,
			StartTime: session.StartTime,
			EndTime:   session.EndTime,
		},
	})
	if err != nil {
		return nil, err
	}

	_ = s.CancelSession(sessionID)
	return reservation, nil
}

// CancelSession drops the cached session. Missing sessions are fine.
func (s *DefaultBookingService) CancelSession(sessionID string) error {
	ctx := context.Background()
	if err := s.Cache.Del(ctx, utils.SessionCachePrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to drop booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingService) saveSession(session models.BookingSession) error {
	ctx := context.Background()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	key := utils.SessionCachePrefix + session.SessionID
	if err := s.Cache.Set(ctx, key, data, sessionTTL()).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingService) loadSession(sessionID string) (*models.BookingSession, error) {
	ctx := context.Background()
	data, err := s.Cache.Get(ctx, utils.SessionCachePrefix+sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("booking session %s not found or expired: %w", sessionID, ErrNotFound)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}
