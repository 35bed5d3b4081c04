package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"partyplan/config"
	bookingsRepo "partyplan/database/repository/bookings"
	"partyplan/services/mail"

	"github.com/hibiken/asynq"
)

const TypeConfirmationSend = "booking:confirmation"

// ConfirmationPayload is the task body queued by payment reconciliation.
type ConfirmationPayload struct {
	BookingID string `json:"booking_id"`
	Email     string `json:"email"`
}

func redisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitConfirmationWorker runs the async worker in background.
func InitConfirmationWorker(bookings bookingsRepo.BookingRepository, mailer mail.Mailer) {
	srv := asynq.NewServer(
		redisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeConfirmationSend, handleConfirmationTask(bookings, mailer))

	// Start async worker with retry logic.
	go func() {
		log.Println("[ConfirmationWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ConfirmationWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ConfirmationWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleConfirmationTask(bookings bookingsRepo.BookingRepository, mailer mail.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ConfirmationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ConfirmationWorker] invalid payload: %v", err)
			return err
		}

		b, err := bookings.GetByID(p.BookingID)
		if err != nil {
			log.Printf("[ConfirmationWorker] booking %s lookup failed: %v", p.BookingID, err)
			return err
		}

		subject := "Your booking is confirmed!"
		body := fmt.Sprintf("Hi!\n\nYour payment went through and your booking is confirmed.\n\nPackage: %s\nEvent date: %s\nGuests: %d\nTotal paid: $%.2f\n\nSee you at the party!",
			b.PackageTitle, b.EventDate, b.GuestCount, b.TotalAmount)

		if err := mailer.Send(p.Email, subject, body); err != nil {
			log.Printf("[ConfirmationWorker] failed to send confirmation for booking %s: %v", p.BookingID, err)
			return err
		}
		log.Printf("[ConfirmationWorker] confirmation sent for booking %s", p.BookingID)
		return nil
	}
}
