package usecase

import "fmt"

// StepIncompleteError carries the per-field gate failures for a wizard step.
// Handlers translate it to a 422 with the field map in the envelope.
type StepIncompleteError struct {
	Step   string
	Fields map[string]string
}

func (e *StepIncompleteError) Error() string {
	return fmt.Sprintf("step %s incomplete: %d field error(s)", e.Step, len(e.Fields))
}
