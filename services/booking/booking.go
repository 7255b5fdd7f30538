package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	reservationRepo "eventoz/database/repository/reservation"
	serviceRepo "eventoz/database/repository/service"
	"eventoz/models"
	"eventoz/services/availability"
	"eventoz/services/tasks"
	"eventoz/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrBadTransition is returned when a reservation cannot move to the
// requested lifecycle status from its current one.
var ErrBadTransition = errors.New("reservation cannot change to the requested status")

// ErrNotFound is returned when a reservation or session does not exist.
var ErrNotFound = errors.New("reservation not found")

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	ServiceRepo     serviceRepo.ServiceRepository
	ReservationRepo reservationRepo.ReservationRepository
	Cache           *redis.Client
	Scheduler       tasks.CompletionScheduler
	Now             func() time.Time
}

func (s *DefaultBookingService) clock() func() time.Time {
	if s.Now != nil {
		return s.Now
	}
	return time.Now
}

// calculatorFor loads the service and builds its availability calculator.
// Only approved listings are open for booking.
func (s *DefaultBookingService) calculatorFor(serviceID string) (*availability.Calculator, *models.Service, error) {
	svc, err := s.ServiceRepo.GetByID(serviceID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch service %s: %w", serviceID, err)
	}
	if svc.Status != models.ServiceApproved {
		return nil, nil, availability.NewInvalidSelectionError("service is not open for booking")
	}
	calc, err := availability.NewCalculator(*svc, s.clock())
	if err != nil {
		return nil, nil, err
	}
	return calc, svc, nil
}

// MonthAvailability returns the bookable flag for each day of a month.
func (s *DefaultBookingService) MonthAvailability(serviceID string, year int, month time.Month) ([]models.DayOption, error) {
	calc, _, err := s.calculatorFor(serviceID)
	if err != nil {
		return nil, err
	}
	return calc.MonthDays(year, month), nil
}

// StartTimeOptions returns the candidate start hours for a date with
// their bookable flags, reflecting current active reservations.
func (s *DefaultBookingService) StartTimeOptions(serviceID, date string) ([]models.StartTimeOption, error) {
	calc, _, err := s.calculatorFor(serviceID)
	if err != nil {
		return nil, err
	}
	active, err := s.ReservationRepo.ListActive(serviceID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	return calc.StartTimeOptions(date, active), nil
}

// EndTimeOptions returns the formatted end-hour labels once a start hour
// is chosen. An empty list means the start cannot be extended.
func (s *DefaultBookingService) EndTimeOptions(serviceID, date string, startHour int) ([]string, error) {
	calc, _, err := s.calculatorFor(serviceID)
	if err != nil {
		return nil, err
	}
	active, err := s.ReservationRepo.ListActive(serviceID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	ends, err := calc.EndTimeOptions(date, startHour, active)
	if err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(ends))
	for _, h := range ends {
		labels = append(labels, availability.FormatHour(h))
	}
	return labels, nil
}

// RequestBooking validates the selection against current availability and
// persists a pending reservation. The store re-checks for overlap inside
// a transaction, so a slot lost between validation and insert surfaces as
// a stale-availability error rather than a double booking.
func (s *DefaultBookingService) RequestBooking(req BookingRequest) (*models.Reservation, error) {
	logger := utils.GetLogger()

	calc, svc, err := s.calculatorFor(req.ServiceID)
	if err != nil {
		return nil, err
	}
	active, err := s.ReservationRepo.ListActive(req.ServiceID, req.Selection.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	sel, err := calc.ValidateSelection(req.Selection, active)
	if err != nil {
		return nil, err
	}

	startHour, err := availability.ParseHour(sel.StartTime)
	if err != nil {
		return nil, availability.NewInvalidSelectionError(fmt.Sprintf("invalid start time %q", sel.StartTime))
	}
	var endHour *int
	if calc.Mode() == models.BookingTimeBound {
		end, err := availability.ParseHour(sel.EndTime)
		if err != nil {
			return nil, availability.NewInvalidSelectionError(fmt.Sprintf("invalid end time %q", sel.EndTime))
		}
		endHour = &end
	}

	reservation := &models.Reservation{
		ID:        uuid.New().String(),
		EventID:   req.EventID,
		ServiceID: req.ServiceID,
		UserID:    req.UserID,
		Date:      sel.Date,
		StartHour: startHour,
		EndHour:   endHour,
		Amount:    amountFor(*svc, startHour, endHour),
		Location:  req.Location,
		Status:    models.ReservationPending,
		CreatedAt: s.clock()(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.ReservationRepo.Create(ctx, reservation); err != nil {
		if errors.Is(err, reservationRepo.ErrConflict) {
			logger.Warn("booking lost slot to concurrent reservation",
				zap.String("serviceID", req.ServiceID),
				zap.String("date", sel.Date),
				zap.String("startTime", sel.StartTime))
			return nil, availability.NewStaleAvailabilityError(
				fmt.Sprintf("slot %s on %s was just taken", sel.StartTime, sel.Date))
		}
		return nil, fmt.Errorf("failed to persist reservation: %w", err)
	}

	logger.Info("reservation created",
		zap.String("reservationID", reservation.ID),
		zap.String("serviceID", reservation.ServiceID),
		zap.String("date", reservation.Date),
		zap.Int("startHour", reservation.StartHour))
	return reservation, nil
}

// ConfirmReservation moves a pending reservation to confirmed and
// schedules its automatic completion for the end of the booked window.
func (s *DefaultBookingService) ConfirmReservation(id string) error {
	logger := utils.GetLogger()

	if err := s.transition(id, models.ReservationPending, models.ReservationConfirmed); err != nil {
		return err
	}
	if s.Scheduler != nil {
		reservation, err := s.ReservationRepo.GetByID(id)
		if err == nil {
			if err := s.Scheduler.ScheduleCompletion(*reservation); err != nil {
				// The reservation is confirmed either way; completion can
				// be caught up manually if the queue was down.
				logger.Error("failed to schedule completion", zap.String("reservationID", id), zap.Error(err))
			}
		}
	}
	return nil
}

// CancelReservation frees the slot. Allowed from pending or confirmed.
func (s *DefaultBookingService) CancelReservation(id string) error {
	reservation, err := s.ReservationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !reservation.Active() {
		return ErrBadTransition
	}
	return s.transition(id, reservation.Status, models.ReservationCancelled)
}

// CompleteReservation closes out a confirmed reservation after its window.
func (s *DefaultBookingService) CompleteReservation(id string) error {
	return s.transition(id, models.ReservationConfirmed, models.ReservationCompleted)
}

// transition applies a guarded status change. The repository matches on
// the expected current status, so a mismatch means either a missing
// reservation or a disallowed transition.
func (s *DefaultBookingService) transition(id, from, to string) error {
	err := s.ReservationRepo.UpdateStatus(id, from, to)
	if err == nil {
		return nil
	}
	if !errors.Is(err, reservationRepo.ErrNotFound) {
		return err
	}
	if _, getErr := s.ReservationRepo.GetByID(id); getErr != nil {
		if errors.Is(getErr, reservationRepo.ErrNotFound) {
			return ErrNotFound
		}
		return getErr
	}
	return ErrBadTransition
}

// GetReservation fetches one reservation by ID.
func (s *DefaultBookingService) GetReservation(id string) (*models.Reservation, error) {
	reservation, err := s.ReservationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return reservation, nil
}

// ListForService returns all reservations against a service.
func (s *DefaultBookingService) ListForService(serviceID string) ([]models.Reservation, error) {
	return s.ReservationRepo.ListByService(serviceID)
}

// ListForEvent returns all reservations attached to an organizer's event.
func (s *DefaultBookingService) ListForEvent(eventID string) ([]models.Reservation, error) {
	return s.ReservationRepo.ListByEvent(eventID)
}

// amountFor prices a reservation. Hourly listings multiply by the booked
// duration; every other unit is charged flat per booking.
func amountFor(svc models.Service, startHour int, endHour *int) float64 {
	if svc.PriceUnit != "hora" {
		return svc.Price
	}
	hours := 1
	if endHour != nil && *endHour > startHour {
		hours = *endHour - startHour
	}
	return svc.Price * float64(hours)
}
