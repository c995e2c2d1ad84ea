package usecase

import (
	"regexp"

	"spa-booking/internal/data/entity"
)

// Deliberately loose: the form only needs something shaped like an address,
// real deliverability is the mail provider's problem.
var emailRx = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// CanContinue reports whether the draft satisfies the step's gate. Gates
// never error: an incomplete draft is a normal state, not a failure.
func CanContinue(step entity.WizardStep, draft *entity.BookingDraft) bool {
	return len(StepFieldErrors(step, draft)) == 0
}

// StepFieldErrors returns the per-field reasons a step's gate fails,
// empty when the gate passes.
func StepFieldErrors(step entity.WizardStep, draft *entity.BookingDraft) map[string]string {
	errs := map[string]string{}

	switch step {
	case entity.StepSelectServices:
		if len(draft.ServiceIDs) == 0 {
			errs["serviceIds"] = "Select at least one service"
		}
	case entity.StepChooseBranch:
		if draft.Branch == nil {
			errs["branch"] = "Choose a branch"
		}
	case entity.StepPickDateTime:
		if draft.Date == "" {
			errs["date"] = "Pick a date"
		}
		if draft.Time == "" {
			errs["time"] = "Pick a time"
		}
	case entity.StepContactInfo:
		if draft.Name == "" {
			errs["name"] = "Name is required"
		}
		if draft.Phone == "" {
			errs["phone"] = "Phone is required"
		}
		if !emailRx.MatchString(draft.Email) {
			errs["email"] = "A valid email is required"
		}
	case entity.StepPayment, entity.StepConfirm:
		// always passable at the sequencer level; submission has its own
		// payment-readiness gate
	}

	return errs
}

// IsPaymentReady gates submission on the payment step: in-clinic payment
// needs nothing, gateway methods need the payment details flagged complete.
func IsPaymentReady(draft *entity.BookingDraft) bool {
	if draft.PaymentMethod == "" {
		return false
	}
	t, err := entity.WirePaymentType(draft.PaymentMethod)
	if err != nil {
		return false
	}
	if t.IsGateway() {
		return draft.PaymentDetailsComplete
	}
	return true
}

// SubmitFieldErrors is the full submission conjunction: every step gate
// plus payment readiness, collected into one field map.
func SubmitFieldErrors(draft *entity.BookingDraft) map[string]string {
	errs := map[string]string{}
	for step := entity.StepSelectServices; step <= entity.StepContactInfo; step++ {
		for field, msg := range StepFieldErrors(step, draft) {
			errs[field] = msg
		}
	}
	if !IsPaymentReady(draft) {
		errs["paymentMethod"] = "Choose a payment method and complete its details"
	}
	return errs
}
