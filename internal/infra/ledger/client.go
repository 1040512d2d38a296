package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"travel-loyalty-booking/internal/domain/cancellation"
	"travel-loyalty-booking/internal/pkg/errs"
	"travel-loyalty-booking/internal/usecase/shared"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName       = "travel-loyalty-booking/ledger"
	statusSuccess    = "success"
	maxResponseBytes = 1 << 20
)

var ErrUnexpectedResponse = errs.New("unexpected ledger response")

type ClientConfig struct {
	BaseURL string
	Program string
	Token   string
	Timeout time.Duration
}

// Client talks to the loyalty platform's journal API.
type Client struct {
	baseURL string
	program string
	token   string
	http    *http.Client
	tracer  trace.Tracer
}

func NewClient(cfg ClientConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		program: cfg.Program,
		token:   cfg.Token,
		http:    httpClient,
		tracer:  otel.Tracer(tracerName),
	}
}

type reversalResponse struct {
	Status         string `json:"status"`
	CancellationID string `json:"cancellationId"`
	Message        string `json:"message"`
}

type ledgerEntryResponse struct {
	ID          string    `json:"id"`
	JournalID   string    `json:"journalId"`
	EntryType   string    `json:"entryType"`
	Points      int64     `json:"points"`
	Description string    `json:"description"`
	PostedAt    time.Time `json:"postedAt"`
}

type ledgerEntriesResponse struct {
	Entries []ledgerEntryResponse `json:"entries"`
}

func (c *Client) ReverseRedemption(ctx context.Context, journalID string) (*shared.ReversalOutcome, error) {
	return c.reverse(ctx, "ledger.reverse_redemption", journalID, "redemption-reversals")
}

func (c *Client) ReverseAccrual(ctx context.Context, journalID string) (*shared.ReversalOutcome, error) {
	return c.reverse(ctx, "ledger.reverse_accrual", journalID, "accrual-reversals")
}

func (c *Client) GetLedgerEntries(ctx context.Context, journalID string) ([]cancellation.LedgerEntry, error) {
	ctx, span := c.tracer.Start(ctx, "ledger.get_entries", trace.WithAttributes(
		attribute.String("ledger.journal_id", journalID),
	))
	defer span.End()

	status, body, err := c.do(ctx, http.MethodGet, c.journalURL(journalID, "ledger-entries"))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, err
	}
	span.SetAttributes(attribute.Int("http.status_code", status))
	if status < 200 || status >= 300 {
		span.SetStatus(codes.Error, http.StatusText(status))
		return nil, errs.Wrapf(ErrUnexpectedResponse, "ledger entries for journal %s: HTTP %d", journalID, status)
	}

	var resp ledgerEntriesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid body")
		return nil, errs.Mark(errs.Wrap(err, "failed to decode ledger entries"), ErrUnexpectedResponse)
	}

	entries := make([]cancellation.LedgerEntry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		entries = append(entries, cancellation.LedgerEntry{
			ID:          e.ID,
			JournalID:   e.JournalID,
			EntryType:   e.EntryType,
			Points:      e.Points,
			Description: e.Description,
			PostedAt:    e.PostedAt,
		})
	}
	span.SetStatus(codes.Ok, "")
	return entries, nil
}

// reverse only returns an error when the platform could not be reached.
// A reachable platform that refuses the reversal yields OK=false.
func (c *Client) reverse(ctx context.Context, spanName, journalID, resource string) (*shared.ReversalOutcome, error) {
	ctx, span := c.tracer.Start(ctx, spanName, trace.WithAttributes(
		attribute.String("ledger.journal_id", journalID),
		attribute.String("ledger.program", c.program),
	))
	defer span.End()

	status, body, err := c.do(ctx, http.MethodPost, c.journalURL(journalID, resource))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, err
	}
	span.SetAttributes(attribute.Int("http.status_code", status))

	outcome := &shared.ReversalOutcome{Raw: rawJSON(body)}

	var resp reversalResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		outcome.Message = fmt.Sprintf("HTTP %d with unreadable body", status)
		span.SetStatus(codes.Error, outcome.Message)
		return outcome, nil
	}
	outcome.CancellationID = resp.CancellationID
	outcome.Message = resp.Message
	outcome.OK = status >= 200 && status < 300 && strings.EqualFold(resp.Status, statusSuccess)

	if !outcome.OK {
		if outcome.Message == "" {
			outcome.Message = fmt.Sprintf("HTTP %d status %q", status, resp.Status)
		}
		span.SetStatus(codes.Error, outcome.Message)
		return outcome, nil
	}
	span.SetAttributes(attribute.String("ledger.cancellation_id", resp.CancellationID))
	span.SetStatus(codes.Ok, "")
	return outcome, nil
}

func (c *Client) do(ctx context.Context, method, target string) (int, []byte, error) {
	var reqBody io.Reader
	if method == http.MethodPost {
		reqBody = bytes.NewReader([]byte("{}"))
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return 0, nil, errs.Wrap(err, "failed to build ledger request")
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, errs.Wrapf(err, "ledger %s %s", method, req.URL.Path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, nil, errs.Wrap(err, "failed to read ledger response")
	}
	return resp.StatusCode, body, nil
}

func (c *Client) journalURL(journalID, resource string) string {
	return fmt.Sprintf("%s/programs/%s/journals/%s/%s",
		c.baseURL, url.PathEscape(c.program), url.PathEscape(journalID), resource)
}

func rawJSON(body []byte) json.RawMessage {
	if len(body) == 0 || !json.Valid(body) {
		return nil
	}
	return json.RawMessage(body)
}
