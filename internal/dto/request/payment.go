package request

type CreatePaymentURLRequest struct {
	BookingID string `json:"bookingId" validate:"required,uuid4"`
	Locale    string `json:"locale,omitempty" validate:"omitempty,oneof=vn en"`
	BankCode  string `json:"bankCode,omitempty" validate:"omitempty,max=20"`
}
