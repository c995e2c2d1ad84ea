package entity

import (
	"time"

	"github.com/google/uuid"
)

// WizardStep is a named state of the booking wizard. Transitions only move
// along the table below; there is no way to jump to a disconnected step.
type WizardStep int

const (
	StepSelectServices WizardStep = iota + 1
	StepChooseBranch
	StepPickDateTime
	StepContactInfo
	StepPayment
	StepConfirm
)

var stepNames = map[WizardStep]string{
	StepSelectServices: "select_services",
	StepChooseBranch:   "choose_branch",
	StepPickDateTime:   "pick_date_time",
	StepContactInfo:    "contact_info",
	StepPayment:        "payment",
	StepConfirm:        "confirm",
}

// forward transition table; Confirm is terminal
var nextStep = map[WizardStep]WizardStep{
	StepSelectServices: StepChooseBranch,
	StepChooseBranch:   StepPickDateTime,
	StepPickDateTime:   StepContactInfo,
	StepContactInfo:    StepPayment,
	StepPayment:        StepConfirm,
}

// backward transition table; SelectServices is the floor
var prevStep = map[WizardStep]WizardStep{
	StepChooseBranch: StepSelectServices,
	StepPickDateTime: StepChooseBranch,
	StepContactInfo:  StepPickDateTime,
	StepPayment:      StepContactInfo,
	StepConfirm:      StepPayment,
}

func (s WizardStep) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s WizardStep) Valid() bool {
	_, ok := stepNames[s]
	return ok
}

// Next returns the following step. ok is false at the terminal step.
func (s WizardStep) Next() (WizardStep, bool) {
	n, ok := nextStep[s]
	return n, ok
}

// Prev returns the preceding step. ok is false at the first step.
func (s WizardStep) Prev() (WizardStep, bool) {
	p, ok := prevStep[s]
	return p, ok
}

// BranchSnapshot is the branch subset a draft carries once step 2 completes.
type BranchSnapshot struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	Phone   string    `json:"phone"`
}

// BookingDraft is the accumulating, not-yet-submitted booking record.
// It is mutated only through the wizard service's merge update and stored
// as a JSON value in Redis for the lifetime of the session.
//
// Selected service details are NOT stored here: they are derived from
// ServiceIDs against the catalog whenever the draft is read, so the two
// can never diverge.
type BookingDraft struct {
	ServiceIDs             []string        `json:"serviceIds"`
	Branch                 *BranchSnapshot `json:"branch,omitempty"`
	Date                   string          `json:"date,omitempty"` // YYYY-MM-DD
	Time                   string          `json:"time,omitempty"` // HH:MM, 24-hour
	Name                   string          `json:"name"`
	Email                  string          `json:"email"`
	Phone                  string          `json:"phone"`
	Notes                  string          `json:"notes"`
	PaymentMethod          string          `json:"paymentMethod,omitempty"` // client label or wire value
	PaymentDetailsComplete bool            `json:"paymentDetailsComplete"`
	PromoCode              string          `json:"promoCode,omitempty"`
	UseAI                  bool            `json:"useAI"`
	Language               string          `json:"language"`
	UserID                 *uuid.UUID      `json:"userId,omitempty"`
}

// HasService reports whether id is already selected.
func (d *BookingDraft) HasService(id string) bool {
	for _, s := range d.ServiceIDs {
		if s == id {
			return true
		}
	}
	return false
}

// WizardSession is one wizard run: current step plus the draft.
type WizardSession struct {
	ID          string       `json:"id"`
	CurrentStep WizardStep   `json:"currentStep"`
	Draft       BookingDraft `json:"draft"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
