package events

import (
	"time"

	"travel-loyalty-booking/internal/domain/cancellation"
)

const (
	EventTypeCancellationExecuted = "booking.cancellation.executed"
	eventSource                   = "travel-loyalty-booking/cancellation"
	specVersion                   = "1.0"
)

// CloudEvent is the envelope every published message is wrapped in.
type CloudEvent struct {
	SpecVersion     string    `json:"specversion"`
	ID              string    `json:"id"`
	Source          string    `json:"source"`
	Type            string    `json:"type"`
	Subject         string    `json:"subject,omitempty"`
	Time            time.Time `json:"time"`
	DataContentType string    `json:"datacontenttype"`
	Data            any       `json:"data"`
}

type CancellationExecutedEvent struct {
	BookingID             string             `json:"bookingId"`
	ExternalRef           string             `json:"externalRef"`
	MemberID              string             `json:"memberId"`
	Outcome               string             `json:"outcome"`
	BookingStatus         string             `json:"bookingStatus"`
	ActualPointsRefunded  int64              `json:"actualPointsRefunded"`
	ActualPointsCancelled int64              `json:"actualPointsCancelled"`
	ActualCashRefundCents int64              `json:"actualCashRefundCents"`
	SettledLineItemIDs    []string           `json:"settledLineItemIds"`
	Steps                 []StepOutcomeEvent `json:"steps"`
	Errors                []string           `json:"errors,omitempty"`
	CompletedAt           time.Time          `json:"completedAt"`
}

type StepOutcomeEvent struct {
	StepID         string `json:"stepId"`
	Type           string `json:"type"`
	JournalID      string `json:"journalId"`
	Points         int64  `json:"points"`
	Status         string `json:"status"`
	CancellationID string `json:"cancellationId,omitempty"`
	Error          string `json:"error,omitempty"`
}

func NewCancellationExecutedEvent(result *cancellation.Result) CancellationExecutedEvent {
	plan := result.Plan()

	settled := make([]string, 0, len(result.SettledLineItemIDs()))
	for _, id := range result.SettledLineItemIDs() {
		settled = append(settled, id.String())
	}

	steps := make([]StepOutcomeEvent, 0, len(result.Steps()))
	for _, s := range result.Steps() {
		steps = append(steps, StepOutcomeEvent{
			StepID:         s.ID,
			Type:           string(s.Type),
			JournalID:      s.JournalID,
			Points:         s.Points,
			Status:         string(s.Status),
			CancellationID: s.CancellationID,
			Error:          s.Error,
		})
	}

	var errMsgs []string
	for _, e := range result.Errors() {
		errMsgs = append(errMsgs, e.Error())
	}

	return CancellationExecutedEvent{
		BookingID:             plan.BookingID().String(),
		ExternalRef:           plan.ExternalRef(),
		MemberID:              plan.MemberID(),
		Outcome:               string(result.Outcome()),
		BookingStatus:         string(result.BookingStatus()),
		ActualPointsRefunded:  result.ActualPointsRefunded(),
		ActualPointsCancelled: result.ActualPointsCancelled(),
		ActualCashRefundCents: result.ActualCashRefund().Cents(),
		SettledLineItemIDs:    settled,
		Steps:                 steps,
		Errors:                errMsgs,
		CompletedAt:           result.CompletedAt(),
	}
}
