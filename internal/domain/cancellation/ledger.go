package cancellation

import "time"

// LedgerEntry is a single movement on a member's points ledger, shown next to
// a step so members can see what is being reversed.
type LedgerEntry struct {
	ID          string
	JournalID   string
	EntryType   string
	Points      int64
	Description string
	PostedAt    time.Time
}
