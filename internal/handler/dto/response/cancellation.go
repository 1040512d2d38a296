package response

import (
	"encoding/json"
	"time"

	"travel-loyalty-booking/internal/domain/booking"
	"travel-loyalty-booking/internal/domain/cancellation"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PlanResponse struct {
	BookingID           string               `json:"bookingId"`
	ExternalRef         string               `json:"externalRef"`
	MemberID            string               `json:"memberId"`
	LineItems           []ScopedItemResponse `json:"lineItems"`
	Steps               []StepResponse       `json:"steps"`
	Reason              string               `json:"reason"`
	RequestedBy         string               `json:"requestedBy"`
	TotalPointsToRefund int64                `json:"totalPointsToRefund"`
	TotalPointsToCancel int64                `json:"totalPointsToCancel"`
	NetPointsChange     int64                `json:"netPointsChange"`
	TotalCashRefund     int64                `json:"totalCashRefundCents"`
	CreatedAt           time.Time            `json:"createdAt"`
}

type ScopedItemResponse struct {
	ID              string `json:"id"`
	LineOfBusiness  string `json:"lineOfBusiness"`
	CashRefundCents int64  `json:"cashRefundCents"`
	Currency        string `json:"currency"`
}

type StepResponse struct {
	ID             string                `json:"id"`
	Type           string                `json:"type"`
	LineItemID     string                `json:"lineItemId"`
	LineOfBusiness string                `json:"lineOfBusiness"`
	JournalID      string                `json:"journalId"`
	Points         int64                 `json:"points"`
	Status         string                `json:"status"`
	StartedAt      *time.Time            `json:"startedAt,omitempty"`
	CompletedAt    *time.Time            `json:"completedAt,omitempty"`
	Error          string                `json:"error,omitempty"`
	CancellationID string                `json:"cancellationId,omitempty"`
	LedgerResponse json.RawMessage       `json:"ledgerResponse,omitempty" swaggertype:"object"`
	LedgerEntries  []LedgerEntryResponse `json:"ledgerEntries"`
}

type LedgerEntryResponse struct {
	ID          string    `json:"id"`
	JournalID   string    `json:"journalId"`
	EntryType   string    `json:"entryType"`
	Points      int64     `json:"points"`
	Description string    `json:"description"`
	PostedAt    time.Time `json:"postedAt"`
}

type ResultResponse struct {
	Outcome               string                   `json:"outcome"`
	Success               bool                     `json:"success"`
	PartialSuccess        bool                     `json:"partialSuccess"`
	BookingStatus         string                   `json:"bookingStatus"`
	Plan                  *PlanResponse            `json:"plan"`
	Steps                 []StepResponse           `json:"steps"`
	Errors                []ExecutionErrorResponse `json:"errors"`
	SettledLineItemIDs    []string                 `json:"settledLineItemIds"`
	ActualPointsRefunded  int64                    `json:"actualPointsRefunded"`
	ActualPointsCancelled int64                    `json:"actualPointsCancelled"`
	ActualCashRefund      int64                    `json:"actualCashRefundCents"`
	StartedAt             time.Time                `json:"startedAt"`
	CompletedAt           time.Time                `json:"completedAt"`
}

type ExecutionErrorResponse struct {
	Kind       string `json:"kind"`
	StepID     string `json:"stepId,omitempty"`
	LineItemID string `json:"lineItemId,omitempty"`
	JournalID  string `json:"journalId,omitempty"`
	Message    string `json:"message"`
}

var stepCopyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: cancellation.StepType(""),
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return string(src.(cancellation.StepType)), nil
			},
		},
		{
			SrcType: cancellation.StepStatus(""),
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return string(src.(cancellation.StepStatus)), nil
			},
		},
		{
			SrcType: booking.LineOfBusiness(""),
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return string(src.(booking.LineOfBusiness)), nil
			},
		},
	},
}

func FromPlan(p *cancellation.Plan) (*PlanResponse, error) {
	steps, err := fromSteps(p.Steps())
	if err != nil {
		return nil, err
	}

	items := make([]ScopedItemResponse, 0, len(p.LineItems()))
	for _, item := range p.LineItems() {
		items = append(items, ScopedItemResponse{
			ID:              item.ID.String(),
			LineOfBusiness:  string(item.LineOfBusiness),
			CashRefundCents: item.CashRefund.Cents(),
			Currency:        item.Currency,
		})
	}

	return &PlanResponse{
		BookingID:           p.BookingID().String(),
		ExternalRef:         p.ExternalRef(),
		MemberID:            p.MemberID(),
		LineItems:           items,
		Steps:               steps,
		Reason:              p.Reason(),
		RequestedBy:         p.RequestedBy(),
		TotalPointsToRefund: p.TotalPointsToRefund(),
		TotalPointsToCancel: p.TotalPointsToCancel(),
		NetPointsChange:     p.NetPointsChange(),
		TotalCashRefund:     p.TotalCashRefund().Cents(),
		CreatedAt:           p.CreatedAt(),
	}, nil
}

func FromResult(r *cancellation.Result) (*ResultResponse, error) {
	plan, err := FromPlan(r.Plan())
	if err != nil {
		return nil, err
	}
	steps, err := fromSteps(r.Steps())
	if err != nil {
		return nil, err
	}

	execErrs := make([]ExecutionErrorResponse, 0, len(r.Errors()))
	for _, e := range r.Errors() {
		execErrs = append(execErrs, ExecutionErrorResponse{
			Kind:       string(e.Kind),
			StepID:     e.StepID,
			LineItemID: e.LineItemID,
			JournalID:  e.JournalID,
			Message:    e.Message,
		})
	}

	settled := make([]string, 0, len(r.SettledLineItemIDs()))
	for _, id := range r.SettledLineItemIDs() {
		settled = append(settled, id.String())
	}

	return &ResultResponse{
		Outcome:               string(r.Outcome()),
		Success:               r.Success(),
		PartialSuccess:        r.PartialSuccess(),
		BookingStatus:         string(r.BookingStatus()),
		Plan:                  plan,
		Steps:                 steps,
		Errors:                execErrs,
		SettledLineItemIDs:    settled,
		ActualPointsRefunded:  r.ActualPointsRefunded(),
		ActualPointsCancelled: r.ActualPointsCancelled(),
		ActualCashRefund:      r.ActualCashRefund().Cents(),
		StartedAt:             r.StartedAt(),
		CompletedAt:           r.CompletedAt(),
	}, nil
}

func fromSteps(steps []cancellation.Step) ([]StepResponse, error) {
	out := make([]StepResponse, len(steps))
	for i := range steps {
		if err := copier.CopyWithOption(&out[i], &steps[i], stepCopyOption); err != nil {
			return nil, err
		}
		if out[i].LedgerEntries == nil {
			out[i].LedgerEntries = []LedgerEntryResponse{}
		}
	}
	return out, nil
}
