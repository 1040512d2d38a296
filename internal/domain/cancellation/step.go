package cancellation

import (
	"encoding/json"
	"sort"
	"time"

	"travel-loyalty-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type StepType string

const (
	StepRedemptionRefund StepType = "REDEMPTION_REFUND"
	StepAccrualCancel    StepType = "ACCRUAL_CANCEL"
)

// priority orders step types at execution time: lower runs first.
func (t StepType) priority() int {
	switch t {
	case StepRedemptionRefund:
		return 0
	case StepAccrualCancel:
		return 1
	default:
		return 2
	}
}

type StepStatus string

const (
	StepPending    StepStatus = "PENDING"
	StepProcessing StepStatus = "PROCESSING"
	StepCompleted  StepStatus = "COMPLETED"
	StepFailed     StepStatus = "FAILED"
)

func (s StepStatus) IsTerminal() bool {
	return s == StepCompleted || s == StepFailed
}

// Step is one ledger reversal. The executor mutates its own copy of each step
// as it runs.
type Step struct {
	ID             string
	Type           StepType
	LineItemID     uuid.UUID
	LineOfBusiness booking.LineOfBusiness
	JournalID      string
	Points         int64
	Status         StepStatus
	StartedAt      *time.Time
	CompletedAt    *time.Time
	Error          string
	CancellationID string
	LedgerResponse json.RawMessage
	LedgerEntries  []LedgerEntry
}

func newStep(t StepType, item *booking.LineItem, journalID string, points int64) Step {
	return Step{
		ID:             StepID(item.ID(), t),
		Type:           t,
		LineItemID:     item.ID(),
		LineOfBusiness: item.LineOfBusiness(),
		JournalID:      journalID,
		Points:         points,
		Status:         StepPending,
	}
}

func StepID(lineItemID uuid.UUID, t StepType) string {
	return lineItemID.String() + "/" + string(t)
}

func (s *Step) Start(now time.Time) error {
	if s.Status != StepPending {
		return ErrInvalidStepTransition
	}
	s.Status = StepProcessing
	s.StartedAt = &now
	return nil
}

func (s *Step) Complete(now time.Time, cancellationID string, raw json.RawMessage) error {
	if s.Status != StepProcessing {
		return ErrInvalidStepTransition
	}
	s.Status = StepCompleted
	s.CompletedAt = &now
	s.CancellationID = cancellationID
	s.LedgerResponse = raw
	return nil
}

func (s *Step) Fail(now time.Time, message string, raw json.RawMessage) error {
	if s.Status != StepProcessing {
		return ErrInvalidStepTransition
	}
	s.Status = StepFailed
	s.CompletedAt = &now
	s.Error = message
	s.LedgerResponse = raw
	return nil
}

func (s Step) clone() Step {
	cp := s
	if s.StartedAt != nil {
		t := *s.StartedAt
		cp.StartedAt = &t
	}
	if s.CompletedAt != nil {
		t := *s.CompletedAt
		cp.CompletedAt = &t
	}
	if s.LedgerResponse != nil {
		cp.LedgerResponse = append(json.RawMessage(nil), s.LedgerResponse...)
	}
	if s.LedgerEntries != nil {
		cp.LedgerEntries = make([]LedgerEntry, len(s.LedgerEntries))
		copy(cp.LedgerEntries, s.LedgerEntries)
	}
	return cp
}

// OrderForExecution returns the steps with every redemption refund ahead of
// every accrual cancel. Relative order inside a phase is preserved.
func OrderForExecution(steps []Step) []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Type.priority() < out[j].Type.priority()
	})
	return out
}
