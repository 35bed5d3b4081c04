package cron

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// ConfirmationQueue enqueues confirmation-email tasks for the worker.
type ConfirmationQueue struct {
	client *asynq.Client
}

// NewConfirmationQueue builds a queue client on the configured Redis DB.
func NewConfirmationQueue() *ConfirmationQueue {
	return &ConfirmationQueue{client: asynq.NewClient(redisOpt())}
}

// EnqueueBookingConfirmation queues one confirmation email.
func (q *ConfirmationQueue) EnqueueBookingConfirmation(bookingID, email string) error {
	payload, err := json.Marshal(ConfirmationPayload{BookingID: bookingID, Email: email})
	if err != nil {
		return fmt.Errorf("marshal confirmation payload: %w", err)
	}
	task := asynq.NewTask(TypeConfirmationSend, payload)
	if _, err := q.client.Enqueue(task, asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("enqueue confirmation task: %w", err)
	}
	return nil
}
