package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"eventoz/config"
	"eventoz/models"

	"github.com/hibiken/asynq"
)

const TypeReservationComplete = "reservation:complete"

// CompletionPayload identifies the reservation to close out once its
// booked window has passed.
type CompletionPayload struct {
	ReservationID string `json:"reservationId"`
}

func NewCompletionTask(payload CompletionPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReservationComplete, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// CompletionScheduler schedules the automatic confirmed -> completed
// transition for the instant a reservation's booked window ends.
type CompletionScheduler interface {
	ScheduleCompletion(reservation models.Reservation) error
}

// AsynqScheduler enqueues completion tasks on the shared task queue.
type AsynqScheduler struct {
	Client *asynq.Client
}

// NewAsynqScheduler builds a scheduler backed by the configured Redis
// task queue.
func NewAsynqScheduler() *AsynqScheduler {
	return &AsynqScheduler{
		Client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisTaskDB,
		}),
	}
}

func (s *AsynqScheduler) ScheduleCompletion(reservation models.Reservation) error {
	task, opts, err := NewCompletionTask(
		CompletionPayload{ReservationID: reservation.ID},
		EndInstant(reservation),
	)
	if err != nil {
		return fmt.Errorf("failed to build completion task: %w", err)
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue completion task: %w", err)
	}
	return nil
}

// EndInstant is the wall-clock moment a reservation's booked window ends.
// Hour 24 normalizes to midnight of the following day.
func EndInstant(reservation models.Reservation) time.Time {
	day, err := time.Parse("2006-01-02", reservation.Date)
	if err != nil {
		return time.Now()
	}
	end := reservation.StartHour + 1
	if reservation.EndHour != nil && *reservation.EndHour > reservation.StartHour {
		end = *reservation.EndHour
	}
	return time.Date(day.Year(), day.Month(), day.Day(), end, 0, 0, 0, time.UTC)
}
