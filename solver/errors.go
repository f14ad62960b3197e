package solver

import (
	"errors"
	"fmt"
)

// ErrUnstable reports a non-finite field value detected after a half-step.
// Match with errors.Is; the concrete *InstabilityError carries the step.
var ErrUnstable = errors.New("solver: non-finite field value")

// InstabilityError aborts a run when the field picks up a NaN or Inf.
// Step is the propagation step being computed when the value appeared;
// steps [0, Step) were committed, and trace rows 0..Step are valid.
type InstabilityError struct {
	Step int
}

func (e *InstabilityError) Error() string {
	return fmt.Sprintf("solver: non-finite field value during step %d (%d steps committed)", e.Step, e.Step)
}

func (e *InstabilityError) Is(target error) bool { return target == ErrUnstable }
