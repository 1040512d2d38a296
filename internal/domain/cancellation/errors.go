package cancellation

import (
	"travel-loyalty-booking/internal/pkg/errs"
)

var (
	// ErrPlanning marks every error raised while building a plan. Planning
	// errors happen before any external mutation.
	ErrPlanning = errs.New("cancellation planning failed")

	ErrNothingToCancel       = errs.New("nothing to cancel")
	ErrInvalidStepTransition = errs.New("invalid step transition")
)

// PlanningFailed marks cause so that errs.Is(err, ErrPlanning) holds.
func PlanningFailed(cause error) error {
	return errs.Mark(cause, ErrPlanning)
}

type ErrorKind string

const (
	ErrorKindStepExecution ErrorKind = "STEP_EXECUTION"
	ErrorKindPersistence   ErrorKind = "PERSISTENCE"
)

// ExecutionError is a failure recorded while executing a plan. It is carried
// in the result rather than returned.
type ExecutionError struct {
	Kind       ErrorKind
	StepID     string
	LineItemID string
	JournalID  string
	Message    string
}

func (e ExecutionError) Error() string {
	switch {
	case e.JournalID != "":
		return string(e.Kind) + ": journal " + e.JournalID + ": " + e.Message
	case e.LineItemID != "":
		return string(e.Kind) + ": line item " + e.LineItemID + ": " + e.Message
	default:
		return string(e.Kind) + ": " + e.Message
	}
}
