package cancellation

import (
	"time"

	"travel-loyalty-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type Request struct {
	// LineItemIDs narrows the scope. Nil means every line item on the booking;
	// an empty slice means none.
	LineItemIDs []uuid.UUID
	Reason      string
	RequestedBy string
}

// ScopedLineItem is the part of a line item a plan needs after planning.
type ScopedLineItem struct {
	ID             uuid.UUID
	LineOfBusiness booking.LineOfBusiness
	CashRefund     booking.Money
	Currency       string
}

type PlanParams struct {
	BookingID   uuid.UUID
	ExternalRef string
	MemberID    string
	LineItems   []ScopedLineItem
	Steps       []Step
	Reason      string
	RequestedBy string
	CreatedAt   time.Time
}

// Plan is the immutable outcome of planning a cancellation.
type Plan struct {
	bookingID           uuid.UUID
	externalRef         string
	memberID            string
	lineItems           []ScopedLineItem
	steps               []Step
	reason              string
	requestedBy         string
	totalPointsToRefund int64
	totalPointsToCancel int64
	totalCashRefund     booking.Money
	createdAt           time.Time
}

func NewPlan(p PlanParams) *Plan {
	plan := &Plan{
		bookingID:   p.BookingID,
		externalRef: p.ExternalRef,
		memberID:    p.MemberID,
		lineItems:   append([]ScopedLineItem(nil), p.LineItems...),
		steps:       make([]Step, len(p.Steps)),
		reason:      p.Reason,
		requestedBy: p.RequestedBy,
		createdAt:   p.CreatedAt,
	}
	for i, s := range p.Steps {
		plan.steps[i] = s.clone()
		switch s.Type {
		case StepRedemptionRefund:
			plan.totalPointsToRefund += s.Points
		case StepAccrualCancel:
			plan.totalPointsToCancel += s.Points
		}
	}
	for _, item := range p.LineItems {
		plan.totalCashRefund = plan.totalCashRefund.Add(item.CashRefund)
	}
	return plan
}

func (p *Plan) BookingID() uuid.UUID           { return p.bookingID }
func (p *Plan) ExternalRef() string            { return p.externalRef }
func (p *Plan) MemberID() string               { return p.memberID }
func (p *Plan) Reason() string                 { return p.reason }
func (p *Plan) RequestedBy() string            { return p.requestedBy }
func (p *Plan) TotalPointsToRefund() int64     { return p.totalPointsToRefund }
func (p *Plan) TotalPointsToCancel() int64     { return p.totalPointsToCancel }
func (p *Plan) TotalCashRefund() booking.Money { return p.totalCashRefund }
func (p *Plan) CreatedAt() time.Time           { return p.createdAt }

// NetPointsChange is positive when the member ends up with more points.
func (p *Plan) NetPointsChange() int64 {
	return p.totalPointsToRefund - p.totalPointsToCancel
}

func (p *Plan) LineItemIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(p.lineItems))
	for i, item := range p.lineItems {
		ids[i] = item.ID
	}
	return ids
}

func (p *Plan) LineItems() []ScopedLineItem {
	return append([]ScopedLineItem(nil), p.lineItems...)
}

// Steps returns copies of the planned steps, all PENDING, in planning order.
func (p *Plan) Steps() []Step {
	out := make([]Step, len(p.steps))
	for i, s := range p.steps {
		out[i] = s.clone()
	}
	return out
}

func (p *Plan) StepCount() int {
	return len(p.steps)
}

func (p *Plan) scopedItem(id uuid.UUID) (ScopedLineItem, bool) {
	for _, item := range p.lineItems {
		if item.ID == id {
			return item, true
		}
	}
	return ScopedLineItem{}, false
}
