package response

import (
	"time"

	"travel-loyalty-booking/internal/domain/booking"
)

type BookingResponse struct {
	ID          string             `json:"id"`
	ExternalRef string             `json:"externalRef"`
	MemberID    string             `json:"memberId"`
	Status      string             `json:"status"`
	LineItems   []LineItemResponse `json:"lineItems"`
	Totals      TotalsResponse     `json:"totals"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

type LineItemResponse struct {
	ID                  string                `json:"id"`
	LineOfBusiness      string                `json:"lineOfBusiness"`
	Status              string                `json:"status"`
	CashCents           int64                 `json:"cashCents"`
	TaxCents            int64                 `json:"taxCents"`
	FeeCents            int64                 `json:"feeCents"`
	Currency            string                `json:"currency"`
	PointsRedeemed      int64                 `json:"pointsRedeemed"`
	PointsEarned        int64                 `json:"pointsEarned"`
	RedemptionJournalID string                `json:"redemptionJournalId,omitempty"`
	AccrualJournalID    string                `json:"accrualJournalId,omitempty"`
	StartDate           *time.Time            `json:"startDate,omitempty"`
	EndDate             *time.Time            `json:"endDate,omitempty"`
	Destination         string                `json:"destination,omitempty"`
	Cancellation        *CancellationResponse `json:"cancellation,omitempty"`
}

type CancellationResponse struct {
	At     time.Time `json:"at"`
	Reason string    `json:"reason"`
	By     string    `json:"by,omitempty"`
}

type TotalsResponse struct {
	CashCents         int64 `json:"cashCents"`
	TaxesAndFeesCents int64 `json:"taxesAndFeesCents"`
	PointsRedeemed    int64 `json:"pointsRedeemed"`
	PointsEarned      int64 `json:"pointsEarned"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	items := make([]LineItemResponse, 0, len(b.LineItems()))
	for _, item := range b.LineItems() {
		items = append(items, fromLineItem(item))
	}
	totals := b.Totals()
	return &BookingResponse{
		ID:          b.ID().String(),
		ExternalRef: b.ExternalRef(),
		MemberID:    b.MemberID(),
		Status:      string(b.Status()),
		LineItems:   items,
		Totals: TotalsResponse{
			CashCents:         totals.Cash.Cents(),
			TaxesAndFeesCents: totals.TaxesAndFees.Cents(),
			PointsRedeemed:    totals.PointsRedeemed,
			PointsEarned:      totals.PointsEarned,
		},
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}

func fromLineItem(item *booking.LineItem) LineItemResponse {
	res := LineItemResponse{
		ID:                  item.ID().String(),
		LineOfBusiness:      string(item.LineOfBusiness()),
		Status:              string(item.Status()),
		CashCents:           item.Cash().Cents(),
		TaxCents:            item.Taxes().Cents(),
		FeeCents:            item.Fees().Cents(),
		Currency:            item.Currency(),
		PointsRedeemed:      item.PointsRedeemed(),
		PointsEarned:        item.PointsEarned(),
		RedemptionJournalID: item.RedemptionJournalID(),
		AccrualJournalID:    item.AccrualJournalID(),
		StartDate:           timePtr(item.Dates().Start()),
		EndDate:             timePtr(item.Dates().End()),
		Destination:         item.Destination(),
	}
	if c := item.Cancellation(); c != nil {
		res.Cancellation = &CancellationResponse{At: c.At, Reason: c.Reason, By: c.By}
	}
	return res
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
