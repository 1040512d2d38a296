package cancellation

import (
	"context"
	"log/slog"

	"travel-loyalty-booking/internal/domain/booking"
	"travel-loyalty-booking/internal/pkg/clock"
	"travel-loyalty-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// EntryFetcher reads the ledger entries behind a journal for display.
type EntryFetcher interface {
	GetLedgerEntries(ctx context.Context, journalID string) ([]LedgerEntry, error)
}

// Planner turns a booking and a request into a Plan. It never writes to the
// booking or the ledger; the only outbound call is the best-effort entry lookup.
type Planner struct {
	entries       EntryFetcher
	clock         clock.Clock
	logger        *slog.Logger
	defaultReason string
}

func NewPlanner(entries EntryFetcher, clk clock.Clock, logger *slog.Logger, defaultReason string) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{
		entries:       entries,
		clock:         clk,
		logger:        logger,
		defaultReason: defaultReason,
	}
}

func (p *Planner) CreatePlan(ctx context.Context, b *booking.Booking, req Request) (*Plan, error) {
	if b == nil {
		return nil, PlanningFailed(booking.ErrBookingNotFound)
	}

	var (
		items []ScopedLineItem
		steps []Step
		cash  booking.Money
	)
	for _, item := range resolveScope(b, req.LineItemIDs) {
		if !item.IsActive() {
			continue
		}
		items = append(items, ScopedLineItem{
			ID:             item.ID(),
			LineOfBusiness: item.LineOfBusiness(),
			CashRefund:     item.CashRefund(),
			Currency:       item.Currency(),
		})
		cash = cash.Add(item.CashRefund())

		if item.HasRedemption() {
			steps = append(steps, newStep(StepRedemptionRefund, item, item.RedemptionJournalID(), item.PointsRedeemed()))
		}
		if item.HasAccrual() {
			steps = append(steps, newStep(StepAccrualCancel, item, item.AccrualJournalID(), item.PointsEarned()))
		}
	}

	if len(steps) == 0 && cash.IsZero() {
		return nil, PlanningFailed(errs.Wrapf(ErrNothingToCancel, "booking %s", b.ID()))
	}

	for i := range steps {
		steps[i].LedgerEntries = p.fetchEntries(ctx, steps[i])
	}

	reason := req.Reason
	if reason == "" {
		reason = p.defaultReason
	}
	requestedBy := req.RequestedBy
	if requestedBy == "" {
		requestedBy = b.MemberID()
	}

	return NewPlan(PlanParams{
		BookingID:   b.ID(),
		ExternalRef: b.ExternalRef(),
		MemberID:    b.MemberID(),
		LineItems:   items,
		Steps:       steps,
		Reason:      reason,
		RequestedBy: requestedBy,
		CreatedAt:   p.clock.Now(),
	}), nil
}

func (p *Planner) fetchEntries(ctx context.Context, step Step) []LedgerEntry {
	if p.entries == nil {
		return []LedgerEntry{}
	}
	entries, err := p.entries.GetLedgerEntries(ctx, step.JournalID)
	if err != nil {
		p.logger.WarnContext(ctx, "failed to fetch ledger entries for plan step",
			"step_id", step.ID,
			"journal_id", step.JournalID,
			"error", err.Error())
		return []LedgerEntry{}
	}
	if entries == nil {
		return []LedgerEntry{}
	}
	return entries
}

// resolveScope keeps booking order. A nil ids selects every line item; an
// empty non-nil ids selects none. Requested ids that are not on the booking
// are ignored.
func resolveScope(b *booking.Booking, ids []uuid.UUID) []*booking.LineItem {
	all := b.LineItems()
	if ids == nil {
		return all
	}
	wanted := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	scoped := make([]*booking.LineItem, 0, len(ids))
	for _, item := range all {
		if _, ok := wanted[item.ID()]; ok {
			scoped = append(scoped, item)
		}
	}
	return scoped
}
