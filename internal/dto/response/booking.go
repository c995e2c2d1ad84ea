package response

import (
	"time"

	"spa-booking/internal/data/entity"
)

type BookingResponse struct {
	ID              string               `json:"id"`
	ReferenceNumber string               `json:"referenceNumber"`
	BranchID        string               `json:"branchId"`
	BranchName      string               `json:"branchName,omitempty"`
	Date            string               `json:"date"`
	Time            string               `json:"time"`
	Status          entity.BookingStatus `json:"status"`
	GuestName       *string              `json:"guestName,omitempty"`
	GuestEmail      *string              `json:"guestEmail,omitempty"`
	GuestPhone      *string              `json:"guestPhone,omitempty"`
	Notes           *string              `json:"notes,omitempty"`
	Language        string               `json:"language"`
	TotalPrice      float64              `json:"totalPrice"`
	TotalDuration   int                  `json:"totalDuration"`
	Services        []ServiceResponse    `json:"services,omitempty"`
	Payment         *PaymentResponse     `json:"payment,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
}

type BookingStatsResponse struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Cancelled int64 `json:"cancelled"`
	Completed int64 `json:"completed"`
	NoShow    int64 `json:"noShow"`
}

// Helper converter
func BookingToResponse(b *entity.Booking, branchName string, services []ServiceResponse, payment *PaymentResponse) BookingResponse {
	return BookingResponse{
		ID:              b.ID.String(),
		ReferenceNumber: b.ReferenceNumber,
		BranchID:        b.BranchID.String(),
		BranchName:      branchName,
		Date:            b.AppointmentDate.Format("2006-01-02"),
		Time:            b.AppointmentTime,
		Status:          b.Status,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		Notes:           b.Notes,
		Language:        b.Language,
		TotalPrice:      b.TotalPrice,
		TotalDuration:   b.TotalDuration,
		Services:        services,
		Payment:         payment,
		CreatedAt:       b.CreatedAt,
	}
}
