package response

import (
	"time"

	"spa-booking/internal/data/entity"
)

// DraftResponse is the draft as the client sees it. SelectedServices is
// derived from the stored service ids at read time; totals are sums over
// the derived list.
type DraftResponse struct {
	ServiceIDs             []string               `json:"serviceIds"`
	SelectedServices       []ServiceResponse      `json:"selectedServices"`
	Branch                 *entity.BranchSnapshot `json:"branch,omitempty"`
	Date                   string                 `json:"date,omitempty"`
	Time                   string                 `json:"time,omitempty"`
	Name                   string                 `json:"name"`
	Email                  string                 `json:"email"`
	Phone                  string                 `json:"phone"`
	Notes                  string                 `json:"notes"`
	PaymentMethod          string                 `json:"paymentMethod,omitempty"`
	PaymentDetailsComplete bool                   `json:"paymentDetailsComplete"`
	PromoCode              string                 `json:"promoCode,omitempty"`
	UseAI                  bool                   `json:"useAI"`
	Language               string                 `json:"language"`
	TotalPrice             float64                `json:"totalPrice"`
	TotalDuration          int                    `json:"totalDuration"`
}

type WizardSessionResponse struct {
	ID          string            `json:"id"`
	CurrentStep string            `json:"currentStep"`
	StepNumber  int               `json:"stepNumber"`
	Draft       DraftResponse     `json:"draft"`
	CanContinue bool              `json:"canContinue"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// SubmitResponse is the outcome of a wizard submission or quick booking.
// PaymentURL is present only for gateway payments.
type SubmitResponse struct {
	ReferenceNumber string  `json:"referenceNumber"`
	BookingID       string  `json:"bookingId"`
	PaymentURL      *string `json:"paymentUrl,omitempty"`
}
