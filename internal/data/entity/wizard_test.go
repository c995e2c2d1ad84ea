package entity

import "testing"

func TestWizardStepTransitions(t *testing.T) {
	tests := []struct {
		name     string
		from     WizardStep
		forward  bool
		want     WizardStep
		wantMove bool
	}{
		{"select services forward", StepSelectServices, true, StepChooseBranch, true},
		{"choose branch forward", StepChooseBranch, true, StepPickDateTime, true},
		{"pick date time forward", StepPickDateTime, true, StepContactInfo, true},
		{"contact info forward", StepContactInfo, true, StepPayment, true},
		{"payment forward", StepPayment, true, StepConfirm, true},
		{"confirm is terminal", StepConfirm, true, 0, false},
		{"confirm backward", StepConfirm, false, StepPayment, true},
		{"payment backward", StepPayment, false, StepContactInfo, true},
		{"pick date time backward", StepPickDateTime, false, StepChooseBranch, true},
		{"choose branch backward", StepChooseBranch, false, StepSelectServices, true},
		{"select services is the floor", StepSelectServices, false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got WizardStep
			var moved bool
			if tt.forward {
				got, moved = tt.from.Next()
			} else {
				got, moved = tt.from.Prev()
			}
			if moved != tt.wantMove {
				t.Fatalf("moved = %v, want %v", moved, tt.wantMove)
			}
			if moved && got != tt.want {
				t.Fatalf("got step %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWizardStepRoundTrip(t *testing.T) {
	// walking forward to the end and back again lands on the first step
	step := StepSelectServices
	for {
		next, ok := step.Next()
		if !ok {
			break
		}
		step = next
	}
	if step != StepConfirm {
		t.Fatalf("forward walk ended at %v, want %v", step, StepConfirm)
	}
	for {
		prev, ok := step.Prev()
		if !ok {
			break
		}
		step = prev
	}
	if step != StepSelectServices {
		t.Fatalf("backward walk ended at %v, want %v", step, StepSelectServices)
	}
}

func TestWizardStepNames(t *testing.T) {
	for step := StepSelectServices; step <= StepConfirm; step++ {
		if !step.Valid() {
			t.Errorf("step %d should be valid", step)
		}
		if step.String() == "unknown" {
			t.Errorf("step %d has no name", step)
		}
	}
	if WizardStep(0).Valid() || WizardStep(7).Valid() {
		t.Error("out-of-range steps should be invalid")
	}
}

func TestDraftHasService(t *testing.T) {
	d := &BookingDraft{ServiceIDs: []string{"a", "b"}}
	if !d.HasService("a") {
		t.Error("expected a to be selected")
	}
	if d.HasService("c") {
		t.Error("did not expect c to be selected")
	}
}
