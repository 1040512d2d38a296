package booking

import (
	"time"

	"travel-loyalty-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidLineOfBusiness    = errs.New("invalid line of business")
	ErrInvalidLineItemStatus    = errs.New("invalid line item status")
	ErrNegativePoints           = errs.New("points cannot be negative")
	ErrLineItemAlreadyCancelled = errs.New("line item is already cancelled")
	ErrCancellationIncomplete   = errs.New("cancelled line item requires timestamp and reason")
)

type LineItemParams struct {
	ID                  uuid.UUID
	LineOfBusiness      LineOfBusiness
	Cash                Money
	Taxes               Money
	Fees                Money
	Currency            string
	PointsRedeemed      int64
	PointsEarned        int64
	Dates               DateRange
	Destination         string
	RedemptionJournalID string
	AccrualJournalID    string
}

type LineItem struct {
	id                  uuid.UUID
	lineOfBusiness      LineOfBusiness
	cash                Money
	taxes               Money
	fees                Money
	currency            string
	pointsRedeemed      int64
	pointsEarned        int64
	dates               DateRange
	destination         string
	redemptionJournalID string
	accrualJournalID    string
	status              LineItemStatus
	cancellation        *Cancellation
}

func NewLineItem(p LineItemParams) (*LineItem, error) {
	if !p.LineOfBusiness.IsValid() {
		return nil, ErrInvalidLineOfBusiness
	}
	if p.PointsRedeemed < 0 || p.PointsEarned < 0 {
		return nil, ErrNegativePoints
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Currency == "" {
		p.Currency = "USD"
	}
	return newLineItem(p, LineItemActive, nil), nil
}

// ReconstructLineItem rebuilds a stored line item without re-validating history.
func ReconstructLineItem(p LineItemParams, status LineItemStatus, cancellation *Cancellation) *LineItem {
	return newLineItem(p, status, cancellation)
}

func newLineItem(p LineItemParams, status LineItemStatus, cancellation *Cancellation) *LineItem {
	return &LineItem{
		id:                  p.ID,
		lineOfBusiness:      p.LineOfBusiness,
		cash:                p.Cash,
		taxes:               p.Taxes,
		fees:                p.Fees,
		currency:            p.Currency,
		pointsRedeemed:      p.PointsRedeemed,
		pointsEarned:        p.PointsEarned,
		dates:               p.Dates,
		destination:         p.Destination,
		redemptionJournalID: p.RedemptionJournalID,
		accrualJournalID:    p.AccrualJournalID,
		status:              status,
		cancellation:        cancellation,
	}
}

func (li *LineItem) ID() uuid.UUID                  { return li.id }
func (li *LineItem) LineOfBusiness() LineOfBusiness { return li.lineOfBusiness }
func (li *LineItem) Cash() Money                    { return li.cash }
func (li *LineItem) Taxes() Money                   { return li.taxes }
func (li *LineItem) Fees() Money                    { return li.fees }
func (li *LineItem) Currency() string               { return li.currency }
func (li *LineItem) PointsRedeemed() int64          { return li.pointsRedeemed }
func (li *LineItem) PointsEarned() int64            { return li.pointsEarned }
func (li *LineItem) Dates() DateRange               { return li.dates }
func (li *LineItem) Destination() string            { return li.destination }
func (li *LineItem) RedemptionJournalID() string    { return li.redemptionJournalID }
func (li *LineItem) AccrualJournalID() string       { return li.accrualJournalID }
func (li *LineItem) Status() LineItemStatus         { return li.status }

func (li *LineItem) Cancellation() *Cancellation {
	if li.cancellation == nil {
		return nil
	}
	c := *li.cancellation
	return &c
}

func (li *LineItem) IsActive() bool {
	return li.status == LineItemActive
}

// CashRefund is the cash, taxes and fees paid for the item.
func (li *LineItem) CashRefund() Money {
	return li.cash.Add(li.taxes).Add(li.fees)
}

// HasRedemption reports whether spent points can be returned through the ledger.
func (li *LineItem) HasRedemption() bool {
	return li.redemptionJournalID != "" && li.pointsRedeemed > 0
}

// HasAccrual reports whether earned points can be taken back through the ledger.
func (li *LineItem) HasAccrual() bool {
	return li.accrualJournalID != "" && li.pointsEarned > 0
}

func (li *LineItem) Params() LineItemParams {
	return LineItemParams{
		ID:                  li.id,
		LineOfBusiness:      li.lineOfBusiness,
		Cash:                li.cash,
		Taxes:               li.taxes,
		Fees:                li.fees,
		Currency:            li.currency,
		PointsRedeemed:      li.pointsRedeemed,
		PointsEarned:        li.pointsEarned,
		Dates:               li.dates,
		Destination:         li.destination,
		RedemptionJournalID: li.redemptionJournalID,
		AccrualJournalID:    li.accrualJournalID,
	}
}

// ApplyStatus moves the item to status. CANCELLED is terminal and must carry a
// timestamp and a reason.
func (li *LineItem) ApplyStatus(status LineItemStatus, change Cancellation) error {
	if !status.IsValid() {
		return ErrInvalidLineItemStatus
	}
	if li.status == LineItemCancelled {
		return ErrLineItemAlreadyCancelled
	}

	switch status {
	case LineItemCancelled:
		if change.At.IsZero() || change.Reason == "" {
			return ErrCancellationIncomplete
		}
		c := change
		li.cancellation = &c
	case LineItemPendingCancellation, LineItemCancelling:
		if !change.At.IsZero() {
			c := change
			li.cancellation = &c
		}
	case LineItemActive:
		li.cancellation = nil
	}
	li.status = status
	return nil
}

func (li *LineItem) clone() *LineItem {
	cp := *li
	if li.cancellation != nil {
		c := *li.cancellation
		cp.cancellation = &c
	}
	return &cp
}

func cancelledAtOrZero(li *LineItem) time.Time {
	if li.cancellation == nil {
		return time.Time{}
	}
	return li.cancellation.At
}
