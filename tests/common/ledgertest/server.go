//go:build unit || e2e

package ledgertest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"travel-loyalty-booking/internal/infra/ledger"
	"travel-loyalty-booking/internal/usecase/shared"
)

// Server exposes a MemoryGateway over the journal HTTP API so the real ledger
// client can be exercised end to end.
type Server struct {
	*httptest.Server
	Gateway *ledger.MemoryGateway
}

func NewServer(t *testing.T, gw *ledger.MemoryGateway) *Server {
	t.Helper()
	s := &Server{Gateway: gw}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// handle serves /programs/{program}/journals/{journal}/{resource}.
func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 5 || parts[0] != "programs" || parts[2] != "journals" {
		http.NotFound(w, r)
		return
	}
	journalID, resource := parts[3], parts[4]

	switch {
	case r.Method == http.MethodGet && resource == "ledger-entries":
		entries, err := s.Gateway.GetLedgerEntries(r.Context(), journalID)
		if err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "error", "message": err.Error()})
			return
		}
		out := make([]map[string]any, 0, len(entries))
		for _, e := range entries {
			out = append(out, map[string]any{
				"id":          e.ID,
				"journalId":   e.JournalID,
				"entryType":   e.EntryType,
				"points":      e.Points,
				"description": e.Description,
				"postedAt":    e.PostedAt,
			})
		}
		writeJSON(w, http.StatusOK, map[string]any{"entries": out})
	case r.Method == http.MethodPost && resource == "redemption-reversals":
		s.writeOutcome(w)(s.Gateway.ReverseRedemption(r.Context(), journalID))
	case r.Method == http.MethodPost && resource == "accrual-reversals":
		s.writeOutcome(w)(s.Gateway.ReverseAccrual(r.Context(), journalID))
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) writeOutcome(w http.ResponseWriter) func(*shared.ReversalOutcome, error) {
	return func(out *shared.ReversalOutcome, err error) {
		switch {
		case err != nil:
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "error", "message": err.Error()})
		case !out.OK:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write(out.Raw)
		default:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(out.Raw)
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
