package usecase

import (
	"testing"

	"spa-booking/internal/data/entity"
)

func completeDraft() *entity.BookingDraft {
	return &entity.BookingDraft{
		ServiceIDs: []string{"6f1e9a3e-9f3e-4c1a-b5cb-1f6f1e9a3e9f"},
		Branch:     &entity.BranchSnapshot{Name: "Downtown"},
		Date:       "2026-09-10",
		Time:       "10:00",
		Name:       "Linh Tran",
		Email:      "linh@example.com",
		Phone:      "0901234567",
	}
}

func TestStepGates(t *testing.T) {
	tests := []struct {
		name    string
		step    entity.WizardStep
		mutate  func(*entity.BookingDraft)
		pass    bool
		failKey string
	}{
		{"services selected", entity.StepSelectServices, nil, true, ""},
		{"no services", entity.StepSelectServices, func(d *entity.BookingDraft) { d.ServiceIDs = nil }, false, "serviceIds"},
		{"branch chosen", entity.StepChooseBranch, nil, true, ""},
		{"no branch", entity.StepChooseBranch, func(d *entity.BookingDraft) { d.Branch = nil }, false, "branch"},
		{"date and time", entity.StepPickDateTime, nil, true, ""},
		{"missing date", entity.StepPickDateTime, func(d *entity.BookingDraft) { d.Date = "" }, false, "date"},
		{"missing time", entity.StepPickDateTime, func(d *entity.BookingDraft) { d.Time = "" }, false, "time"},
		{"contact complete", entity.StepContactInfo, nil, true, ""},
		{"missing name", entity.StepContactInfo, func(d *entity.BookingDraft) { d.Name = "" }, false, "name"},
		{"missing phone", entity.StepContactInfo, func(d *entity.BookingDraft) { d.Phone = "" }, false, "phone"},
		{"bad email", entity.StepContactInfo, func(d *entity.BookingDraft) { d.Email = "not-an-email" }, false, "email"},
		{"payment step always passes", entity.StepPayment, func(d *entity.BookingDraft) { *d = entity.BookingDraft{} }, true, ""},
		{"confirm step always passes", entity.StepConfirm, func(d *entity.BookingDraft) { *d = entity.BookingDraft{} }, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := completeDraft()
			if tt.mutate != nil {
				tt.mutate(draft)
			}
			errs := StepFieldErrors(tt.step, draft)
			if tt.pass {
				if len(errs) != 0 {
					t.Fatalf("expected gate to pass, got %v", errs)
				}
				if !CanContinue(tt.step, draft) {
					t.Fatal("CanContinue should agree with empty field errors")
				}
				return
			}
			if _, ok := errs[tt.failKey]; !ok {
				t.Fatalf("expected field error for %q, got %v", tt.failKey, errs)
			}
			if CanContinue(tt.step, draft) {
				t.Fatal("CanContinue should be false when fields fail")
			}
		})
	}
}

func TestEmailGate(t *testing.T) {
	valid := []string{"a@b.co", "first.last@mail.example.com", "x+tag@y.vn"}
	invalid := []string{"", "plain", "a@b", "@b.co", "a @b.co", "a@ b.co"}

	for _, email := range valid {
		draft := completeDraft()
		draft.Email = email
		if errs := StepFieldErrors(entity.StepContactInfo, draft); len(errs) != 0 {
			t.Errorf("email %q should pass, got %v", email, errs)
		}
	}
	for _, email := range invalid {
		draft := completeDraft()
		draft.Email = email
		if errs := StepFieldErrors(entity.StepContactInfo, draft); errs["email"] == "" {
			t.Errorf("email %q should fail", email)
		}
	}
}

func TestIsPaymentReady(t *testing.T) {
	tests := []struct {
		name            string
		method          string
		detailsComplete bool
		want            bool
	}{
		{"no method", "", false, false},
		{"clinic needs nothing more", "clinic", false, true},
		{"vnpay without details", "vnpay", false, false},
		{"vnpay with details", "vnpay", true, true},
		{"ewallet with details", "ewallet", true, true},
		{"bank without details", "bank", false, false},
		{"wire CASH", "CASH", false, true},
		{"unknown method", "paypal", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := &entity.BookingDraft{
				PaymentMethod:          tt.method,
				PaymentDetailsComplete: tt.detailsComplete,
			}
			if got := IsPaymentReady(draft); got != tt.want {
				t.Fatalf("IsPaymentReady = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubmitFieldErrorsCollectsEverything(t *testing.T) {
	draft := &entity.BookingDraft{}
	errs := SubmitFieldErrors(draft)

	for _, key := range []string{"serviceIds", "branch", "date", "time", "name", "phone", "email", "paymentMethod"} {
		if _, ok := errs[key]; !ok {
			t.Errorf("expected %q in submit errors, got %v", key, errs)
		}
	}

	ready := completeDraft()
	ready.PaymentMethod = "clinic"
	if errs := SubmitFieldErrors(ready); len(errs) != 0 {
		t.Fatalf("complete draft should submit, got %v", errs)
	}
}
