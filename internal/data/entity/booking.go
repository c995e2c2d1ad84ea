package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusNoShow    BookingStatus = "NO_SHOW"
)

type Booking struct {
	Base
	ReferenceNumber    string        `db:"reference_number"`
	UserID             *uuid.UUID    `db:"user_id"`
	BranchID           uuid.UUID     `db:"branch_id"`
	AppointmentDate    time.Time     `db:"appointment_date"`
	AppointmentTime    string        `db:"appointment_time"` // HH:MM, 24-hour
	Status             BookingStatus `db:"status"`
	GuestName          *string       `db:"guest_name"`
	GuestEmail         *string       `db:"guest_email"`
	GuestPhone         *string       `db:"guest_phone"`
	Notes              *string       `db:"notes"`
	Language           string        `db:"language"`
	TotalPrice         float64       `db:"total_price"`
	TotalDuration      int           `db:"total_duration"` // minutes, sum of services
	CancellationReason *string       `db:"cancellation_reason"`
}

// BookingService links a booking to one of its services.
type BookingService struct {
	BaseSimple
	BookingID uuid.UUID `db:"booking_id"`
	ServiceID uuid.UUID `db:"service_id"`
}
