package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"travel-loyalty-booking/internal/domain/booking"
	"travel-loyalty-booking/internal/domain/cancellation"
	"travel-loyalty-booking/internal/pkg/clock"
	"travel-loyalty-booking/internal/pkg/errs"
	"travel-loyalty-booking/internal/usecase/shared"
)

var ErrJournalUnavailable = errs.New("journal unavailable")

// MemoryGateway is an in-process stand-in for the loyalty platform. Each
// journal can be reversed once; later attempts are refused.
type MemoryGateway struct {
	mu       sync.Mutex
	clock    clock.Clock
	entries  map[string][]cancellation.LedgerEntry
	reversed map[string]string
	refuse   map[string]string
	fail     map[string]error
	seq      int
}

func NewMemoryGateway(clk clock.Clock) *MemoryGateway {
	return &MemoryGateway{
		clock:    clk,
		entries:  make(map[string][]cancellation.LedgerEntry),
		reversed: make(map[string]string),
		refuse:   make(map[string]string),
		fail:     make(map[string]error),
	}
}

// RegisterBooking records the original redemption and accrual entries of
// every line item so they can be listed and reversed.
func (g *MemoryGateway) RegisterBooking(b *booking.Booking) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, item := range b.LineItems() {
		if item.RedemptionJournalID() != "" {
			g.addEntry(item.RedemptionJournalID(), "REDEMPTION", -item.PointsRedeemed(),
				fmt.Sprintf("%s redemption %s", item.LineOfBusiness(), b.ExternalRef()))
		}
		if item.AccrualJournalID() != "" {
			g.addEntry(item.AccrualJournalID(), "ACCRUAL", item.PointsEarned(),
				fmt.Sprintf("%s accrual %s", item.LineOfBusiness(), b.ExternalRef()))
		}
	}
}

// Refuse makes the platform answer reversals of journalID with a rejection.
func (g *MemoryGateway) Refuse(journalID, message string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.refuse[journalID] = message
}

// Fail makes reversals of journalID return err as if the platform were unreachable.
func (g *MemoryGateway) Fail(journalID string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err == nil {
		err = ErrJournalUnavailable
	}
	g.fail[journalID] = err
}

func (g *MemoryGateway) ReverseRedemption(ctx context.Context, journalID string) (*shared.ReversalOutcome, error) {
	return g.reverse(ctx, journalID, "REDEMPTION_REVERSAL")
}

func (g *MemoryGateway) ReverseAccrual(ctx context.Context, journalID string) (*shared.ReversalOutcome, error) {
	return g.reverse(ctx, journalID, "ACCRUAL_REVERSAL")
}

func (g *MemoryGateway) GetLedgerEntries(ctx context.Context, journalID string) ([]cancellation.LedgerEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if err, ok := g.fail[journalID]; ok {
		return nil, err
	}
	entries := g.entries[journalID]
	out := make([]cancellation.LedgerEntry, len(entries))
	copy(out, entries)
	return out, nil
}

// Reversed reports the cancellation id issued for journalID, if any.
func (g *MemoryGateway) Reversed(journalID string) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id, ok := g.reversed[journalID]
	return id, ok
}

func (g *MemoryGateway) reverse(ctx context.Context, journalID, entryType string) (*shared.ReversalOutcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if err, ok := g.fail[journalID]; ok {
		return nil, errs.Wrapf(err, "journal %s", journalID)
	}
	if msg, ok := g.refuse[journalID]; ok {
		return rejected(msg), nil
	}
	if _, done := g.reversed[journalID]; done {
		return rejected(fmt.Sprintf("journal %s already reversed", journalID)), nil
	}

	g.seq++
	cancellationID := fmt.Sprintf("CXL-%06d", g.seq)
	g.reversed[journalID] = cancellationID

	var points int64
	for _, e := range g.entries[journalID] {
		points -= e.Points
	}
	g.addEntry(journalID, entryType, points, "reversal "+cancellationID)

	raw, _ := json.Marshal(reversalResponse{
		Status:         statusSuccess,
		CancellationID: cancellationID,
	})
	return &shared.ReversalOutcome{OK: true, CancellationID: cancellationID, Raw: raw}, nil
}

func (g *MemoryGateway) addEntry(journalID, entryType string, points int64, description string) {
	entries := g.entries[journalID]
	g.entries[journalID] = append(entries, cancellation.LedgerEntry{
		ID:          fmt.Sprintf("%s-%d", journalID, len(entries)+1),
		JournalID:   journalID,
		EntryType:   entryType,
		Points:      points,
		Description: description,
		PostedAt:    g.clock.Now(),
	})
}

func rejected(msg string) *shared.ReversalOutcome {
	raw, _ := json.Marshal(reversalResponse{Status: "rejected", Message: msg})
	return &shared.ReversalOutcome{OK: false, Message: msg, Raw: raw}
}
