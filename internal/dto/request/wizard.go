package request

// StartWizardRequest carries the optional prefill block for a new wizard
// session. Entry widgets (chat-booking, chat-widget, home-widget) pass ids
// they already collected; everything is optional, and a malformed or
// unresolvable prefill value is dropped rather than rejected — the session
// just starts at an earlier step. Only size limits are enforced here.
type StartWizardRequest struct {
	Source    string `json:"source,omitempty" validate:"omitempty,max=50"`
	ServiceID string `json:"service,omitempty" validate:"omitempty,max=64"`
	BranchID  string `json:"branch,omitempty" validate:"omitempty,max=64"`
	Date      string `json:"date,omitempty" validate:"omitempty,max=20"`
	Time      string `json:"time,omitempty" validate:"omitempty,max=10"`
	Name      string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email     string `json:"email,omitempty" validate:"omitempty,max=254"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=20"`
	AIAssist  bool   `json:"aiAssist,omitempty"`
	Language  string `json:"language,omitempty" validate:"omitempty,oneof=en vi"`
}

// UpdateDraftRequest is a partial patch: nil fields are left untouched,
// non-nil fields replace the draft's value. ToggleServiceID flips one id
// in or out of the selection instead of replacing the whole list.
type UpdateDraftRequest struct {
	ServiceIDs             *[]string `json:"serviceIds,omitempty" validate:"omitempty,dive,uuid4"`
	ToggleServiceID        *string   `json:"toggleServiceId,omitempty" validate:"omitempty,uuid4"`
	BranchID               *string   `json:"branchId,omitempty" validate:"omitempty,uuid4"`
	Date                   *string   `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time                   *string   `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
	Name                   *string   `json:"name,omitempty" validate:"omitempty,max=100"`
	Email                  *string   `json:"email,omitempty" validate:"omitempty,max=254"`
	Phone                  *string   `json:"phone,omitempty" validate:"omitempty,max=20"`
	Notes                  *string   `json:"notes,omitempty" validate:"omitempty,max=500"`
	PaymentMethod          *string   `json:"paymentMethod,omitempty"`
	PaymentDetailsComplete *bool     `json:"paymentDetailsComplete,omitempty"`
	PromoCode              *string   `json:"promoCode,omitempty" validate:"omitempty,max=50"`
	UseAI                  *bool     `json:"useAI,omitempty"`
	Language               *string   `json:"language,omitempty" validate:"omitempty,oneof=en vi"`
}
