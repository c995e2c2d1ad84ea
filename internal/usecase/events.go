package usecase

import (
	"context"
	"time"

	"spa-booking/pkg/kafka"

	"go.uber.org/zap"
)

const (
	eventBookingCreated   = "booking.created"
	eventBookingCancelled = "booking.cancelled"
	eventPaymentCompleted = "payment.completed"
)

type bookingEvent struct {
	Event           string    `json:"event"`
	BookingID       string    `json:"bookingId"`
	ReferenceNumber string    `json:"referenceNumber"`
	BranchID        string    `json:"branchId"`
	Status          string    `json:"status"`
	TotalPrice      float64   `json:"totalPrice"`
	OccurredAt      time.Time `json:"occurredAt"`
}

type paymentEvent struct {
	Event         string    `json:"event"`
	PaymentID     string    `json:"paymentId"`
	BookingID     string    `json:"bookingId"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"transactionId,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// publishEvent is fire-and-forget: event delivery failures are logged and
// never fail the request that produced them.
func publishEvent(ctx context.Context, producer *kafka.Producer, log *zap.Logger, topic, key string, event any) {
	if producer == nil {
		return
	}
	if err := producer.PublishJSON(ctx, topic, key, event); err != nil {
		log.Error("Failed to publish event",
			zap.Error(err),
			zap.String("topic", topic),
			zap.String("key", key),
		)
	}
}
