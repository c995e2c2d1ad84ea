package request

// CreateBookingRequest is the direct booking payload. Guest fields are
// required only when there is no authenticated user; that check lives in
// the usecase because it depends on the request context.
type CreateBookingRequest struct {
	ServiceIDs    []string `json:"serviceIds" validate:"required,min=1,dive,uuid4"`
	BranchID      string   `json:"branchId" validate:"required,uuid4"`
	Date          string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string   `json:"time" validate:"required,datetime=15:04"`
	Name          string   `json:"name,omitempty" validate:"omitempty,max=100"`
	Email         string   `json:"email,omitempty" validate:"omitempty,max=254"`
	Phone         string   `json:"phone,omitempty" validate:"omitempty,max=20"`
	Notes         string   `json:"notes,omitempty" validate:"omitempty,max=500"`
	PaymentMethod string   `json:"paymentMethod" validate:"required"`
	Language      string   `json:"language,omitempty" validate:"omitempty,oneof=en vi"`
}

// QuickBookingRequest is the one-shot path: the whole draft in a single
// request, validated as one conjunction including payment readiness.
type QuickBookingRequest struct {
	ServiceIDs             []string `json:"serviceIds" validate:"required,min=1,dive,uuid4"`
	BranchID               string   `json:"branchId" validate:"required,uuid4"`
	Date                   string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time                   string   `json:"time" validate:"required,datetime=15:04"`
	Name                   string   `json:"name,omitempty" validate:"omitempty,max=100"`
	Email                  string   `json:"email,omitempty" validate:"omitempty,max=254"`
	Phone                  string   `json:"phone,omitempty" validate:"omitempty,max=20"`
	Notes                  string   `json:"notes,omitempty" validate:"omitempty,max=500"`
	PaymentMethod          string   `json:"paymentMethod" validate:"required"`
	PaymentDetailsComplete bool     `json:"paymentDetailsComplete,omitempty"`
	PromoCode              string   `json:"promoCode,omitempty" validate:"omitempty,max=50"`
	Language               string   `json:"language,omitempty" validate:"omitempty,oneof=en vi"`
}

type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}
