package response

import (
	"time"

	"spa-booking/internal/data/entity"
)

type PaymentResponse struct {
	ID            string               `json:"id"`
	BookingID     string               `json:"bookingId"`
	Amount        float64              `json:"amount"`
	Currency      string               `json:"currency"`
	PaymentType   entity.PaymentType   `json:"paymentType"`
	Status        entity.PaymentStatus `json:"status"`
	TransactionID *string              `json:"transactionId,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
}

type PaymentURLResponse struct {
	PaymentURL string `json:"paymentUrl"`
}

// PaymentReturnResponse is what the return-URL handler reports back after
// signature verification.
type PaymentReturnResponse struct {
	Success         bool    `json:"success"`
	ReferenceNumber string  `json:"referenceNumber,omitempty"`
	ResponseCode    string  `json:"responseCode"`
	Message         string  `json:"message"`
	TransactionID   *string `json:"transactionId,omitempty"`
}

// IPNResponse follows the VNPay IPN contract: the gateway retries until it
// receives RspCode "00" or a terminal code.
type IPNResponse struct {
	RspCode string `json:"RspCode"`
	Message string `json:"Message"`
}

func PaymentToResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID.String(),
		BookingID:     p.BookingID.String(),
		Amount:        p.Amount,
		Currency:      p.Currency,
		PaymentType:   p.PaymentType,
		Status:        p.Status,
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
	}
}
