package booking

import (
	"time"

	"travel-loyalty-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound    = errs.New("booking not found")
	ErrLineItemNotFound   = errs.New("line item not found")
	ErrEmptyBooking       = errs.New("booking requires at least one line item")
	ErrDuplicateLineItem  = errs.New("duplicate line item id")
	ErrMissingMemberID    = errs.New("member id is required")
	ErrMissingExternalRef = errs.New("external reference is required")
)

type Booking struct {
	id          uuid.UUID
	externalRef string
	memberID    string
	lineItems   []*LineItem
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBooking(externalRef, memberID string, items []*LineItem, now time.Time) (*Booking, error) {
	if externalRef == "" {
		return nil, ErrMissingExternalRef
	}
	if memberID == "" {
		return nil, ErrMissingMemberID
	}
	if len(items) == 0 {
		return nil, ErrEmptyBooking
	}
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.ID()]; dup {
			return nil, ErrDuplicateLineItem
		}
		seen[item.ID()] = struct{}{}
	}

	return &Booking{
		id:          uuid.New(),
		externalRef: externalRef,
		memberID:    memberID,
		lineItems:   items,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	externalRef, memberID string,
	items []*LineItem,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		externalRef: externalRef,
		memberID:    memberID,
		lineItems:   items,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ExternalRef() string  { return b.externalRef }
func (b *Booking) MemberID() string     { return b.memberID }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// Status is always derived from the line items.
func (b *Booking) Status() Status {
	return DeriveStatus(b.lineItems)
}

// LineItems returns the items in booking order.
func (b *Booking) LineItems() []*LineItem {
	out := make([]*LineItem, len(b.lineItems))
	copy(out, b.lineItems)
	return out
}

func (b *Booking) LineItem(id uuid.UUID) (*LineItem, bool) {
	for _, item := range b.lineItems {
		if item.ID() == id {
			return item, true
		}
	}
	return nil, false
}

func (b *Booking) Totals() Totals {
	var t Totals
	for _, item := range b.lineItems {
		t.Cash = t.Cash.Add(item.Cash())
		t.TaxesAndFees = t.TaxesAndFees.Add(item.Taxes()).Add(item.Fees())
		t.PointsRedeemed += item.PointsRedeemed()
		t.PointsEarned += item.PointsEarned()
	}
	return t
}

func (b *Booking) ApplyLineItemStatus(lineItemID uuid.UUID, status LineItemStatus, change Cancellation) error {
	item, ok := b.LineItem(lineItemID)
	if !ok {
		return ErrLineItemNotFound
	}
	if err := item.ApplyStatus(status, change); err != nil {
		return err
	}
	if at := cancelledAtOrZero(item); at.After(b.updatedAt) {
		b.updatedAt = at
	}
	return nil
}

// Clone returns a deep copy that shares no mutable state with b.
func (b *Booking) Clone() *Booking {
	items := make([]*LineItem, len(b.lineItems))
	for i, item := range b.lineItems {
		items[i] = item.clone()
	}
	cp := *b
	cp.lineItems = items
	return &cp
}
