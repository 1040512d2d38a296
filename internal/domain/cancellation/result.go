package cancellation

import (
	"time"

	"travel-loyalty-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type Outcome string

const (
	OutcomeSuccess        Outcome = "success"
	OutcomePartialSuccess Outcome = "partial_success"
	OutcomeFailed         Outcome = "failed"
)

type ResultParams struct {
	Plan   *Plan
	Steps  []Step
	Errors []ExecutionError
	// SettledLineItemIDs are the items persisted as CANCELLED.
	SettledLineItemIDs []uuid.UUID
	BookingStatus      booking.Status
	StartedAt          time.Time
	CompletedAt        time.Time
}

// Result records what happened when a plan was executed.
type Result struct {
	plan                  *Plan
	steps                 []Step
	errors                []ExecutionError
	settledLineItemIDs    []uuid.UUID
	actualPointsRefunded  int64
	actualPointsCancelled int64
	actualCashRefund      booking.Money
	success               bool
	partialSuccess        bool
	bookingStatus         booking.Status
	startedAt             time.Time
	completedAt           time.Time
}

func NewResult(p ResultParams) *Result {
	r := &Result{
		plan:               p.Plan,
		steps:              make([]Step, len(p.Steps)),
		errors:             append([]ExecutionError(nil), p.Errors...),
		settledLineItemIDs: append([]uuid.UUID(nil), p.SettledLineItemIDs...),
		bookingStatus:      p.BookingStatus,
		startedAt:          p.StartedAt,
		completedAt:        p.CompletedAt,
	}

	var completed, failed int
	for i, s := range p.Steps {
		r.steps[i] = s.clone()
		switch s.Status {
		case StepCompleted:
			completed++
			switch s.Type {
			case StepRedemptionRefund:
				r.actualPointsRefunded += s.Points
			case StepAccrualCancel:
				r.actualPointsCancelled += s.Points
			}
		case StepFailed:
			failed++
		}
	}
	r.success = failed == 0 && completed > 0
	r.partialSuccess = completed > 0 && failed > 0

	if p.Plan != nil {
		for _, id := range p.SettledLineItemIDs {
			if item, ok := p.Plan.scopedItem(id); ok {
				r.actualCashRefund = r.actualCashRefund.Add(item.CashRefund)
			}
		}
	}
	return r
}

func (r *Result) Plan() *Plan                     { return r.plan }
func (r *Result) ActualPointsRefunded() int64     { return r.actualPointsRefunded }
func (r *Result) ActualPointsCancelled() int64    { return r.actualPointsCancelled }
func (r *Result) ActualCashRefund() booking.Money { return r.actualCashRefund }
func (r *Result) Success() bool                   { return r.success }
func (r *Result) PartialSuccess() bool            { return r.partialSuccess }
func (r *Result) BookingStatus() booking.Status   { return r.bookingStatus }
func (r *Result) StartedAt() time.Time            { return r.startedAt }
func (r *Result) CompletedAt() time.Time          { return r.completedAt }

func (r *Result) Steps() []Step {
	out := make([]Step, len(r.steps))
	for i, s := range r.steps {
		out[i] = s.clone()
	}
	return out
}

func (r *Result) Errors() []ExecutionError {
	return append([]ExecutionError(nil), r.errors...)
}

func (r *Result) SettledLineItemIDs() []uuid.UUID {
	return append([]uuid.UUID(nil), r.settledLineItemIDs...)
}

// Outcome classifies the result. The three outcomes are mutually exclusive:
// a result with no completed step is failed whatever else happened.
func (r *Result) Outcome() Outcome {
	switch {
	case r.success:
		return OutcomeSuccess
	case r.partialSuccess:
		return OutcomePartialSuccess
	default:
		return OutcomeFailed
	}
}

func (r *Result) CountByStatus(status StepStatus) int {
	n := 0
	for _, s := range r.steps {
		if s.Status == status {
			n++
		}
	}
	return n
}
