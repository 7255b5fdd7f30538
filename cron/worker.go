package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"eventoz/config"
	"eventoz/services/booking"
	"eventoz/services/tasks"

	"github.com/hibiken/asynq"
)

// InitCompletionWorker runs the async worker in background. It picks up
// completion tasks scheduled for the end of each confirmed reservation's
// booked window and closes them out.
func InitCompletionWorker(bookingSvc booking.BookingService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReservationComplete, handleCompletionTask(bookingSvc))

	go func() {
		log.Println("[CompletionWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[CompletionWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[CompletionWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleCompletionTask(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.CompletionPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[CompletionWorker] invalid payload: %v", err)
			return err
		}

		err := bookingSvc.CompleteReservation(p.ReservationID)
		if err == booking.ErrBadTransition || err == booking.ErrNotFound {
			// Already cancelled or gone; nothing to complete.
			return nil
		}
		if err != nil {
			log.Printf("[CompletionWorker] failed to complete reservation %s: %v", p.ReservationID, err)
		}
		return err
	}
}
