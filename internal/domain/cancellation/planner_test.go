//go:build unit

package cancellation_test

import (
	"context"
	"testing"
	"time"

	"travel-loyalty-booking/internal/domain/booking"
	"travel-loyalty-booking/internal/domain/cancellation"
	"travel-loyalty-booking/internal/pkg/clock"
	"travel-loyalty-booking/internal/pkg/errs"
	"travel-loyalty-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEntries struct {
	entries map[string][]cancellation.LedgerEntry
	err     error
	calls   []string
}

func (f *fakeEntries) GetLedgerEntries(_ context.Context, journalID string) ([]cancellation.LedgerEntry, error) {
	f.calls = append(f.calls, journalID)
	if f.err != nil {
		return nil, f.err
	}
	return f.entries[journalID], nil
}

func newPlanner(entries cancellation.EntryFetcher) *cancellation.Planner {
	return cancellation.NewPlanner(entries, clock.NewMockClock(builder.DefaultNow), nil, "Cancelled at member request")
}

func TestPlanner_CreatePlan(t *testing.T) {
	ctx := context.Background()

	t.Run("full booking", func(t *testing.T) {
		b, hotel, flight := builder.HotelAndFlight()
		entries := &fakeEntries{entries: map[string][]cancellation.LedgerEntry{
			"JRN-HTL-RED": {{ID: "E1", JournalID: "JRN-HTL-RED", EntryType: "REDEMPTION", Points: -20000}},
		}}

		plan, err := newPlanner(entries).CreatePlan(ctx, b, cancellation.Request{})
		require.NoError(t, err)

		assert.Equal(t, b.ID(), plan.BookingID())
		assert.Equal(t, b.MemberID(), plan.RequestedBy())
		assert.Equal(t, "Cancelled at member request", plan.Reason())
		assert.Equal(t, builder.DefaultNow, plan.CreatedAt())
		assert.Equal(t, []uuid.UUID{hotel.ID(), flight.ID()}, plan.LineItemIDs())

		assert.Equal(t, int64(55000), plan.TotalPointsToRefund())
		assert.Equal(t, int64(840), plan.TotalPointsToCancel())
		assert.Equal(t, int64(54160), plan.NetPointsChange())
		assert.Equal(t, int64(42000+5460+1500+8730), plan.TotalCashRefund().Cents())

		steps := plan.Steps()
		require.Len(t, steps, 3)
		assert.Equal(t, cancellation.StepRedemptionRefund, steps[0].Type)
		assert.Equal(t, hotel.ID().String()+"/REDEMPTION_REFUND", steps[0].ID)
		assert.Equal(t, cancellation.StepAccrualCancel, steps[1].Type)
		assert.Equal(t, "JRN-HTL-ACC", steps[1].JournalID)
		assert.Equal(t, cancellation.StepRedemptionRefund, steps[2].Type)
		assert.Equal(t, "JRN-FLT-RED", steps[2].JournalID)
		assert.Equal(t, booking.LineOfBusinessFlight, steps[2].LineOfBusiness)
		for _, s := range steps {
			assert.Equal(t, cancellation.StepPending, s.Status)
			assert.NotNil(t, s.LedgerEntries)
		}
		assert.Len(t, steps[0].LedgerEntries, 1)
		assert.Empty(t, steps[1].LedgerEntries)
		assert.ElementsMatch(t, []string{"JRN-HTL-RED", "JRN-HTL-ACC", "JRN-FLT-RED"}, entries.calls)
	})

	t.Run("scoped to one line item", func(t *testing.T) {
		b, _, flight := builder.HotelAndFlight()

		plan, err := newPlanner(nil).CreatePlan(ctx, b, cancellation.Request{
			LineItemIDs: []uuid.UUID{flight.ID(), uuid.New()},
			Reason:      "schedule change",
			RequestedBy: "agent-7",
		})
		require.NoError(t, err)

		assert.Equal(t, []uuid.UUID{flight.ID()}, plan.LineItemIDs())
		assert.Equal(t, int64(35000), plan.TotalPointsToRefund())
		assert.Equal(t, int64(0), plan.TotalPointsToCancel())
		assert.Equal(t, int64(8730), plan.TotalCashRefund().Cents())
		assert.Equal(t, "schedule change", plan.Reason())
		assert.Equal(t, "agent-7", plan.RequestedBy())
		assert.Equal(t, 1, plan.StepCount())
	})

	t.Run("cash only item has no steps", func(t *testing.T) {
		car := builder.NewLineItemBuilder().
			WithLineOfBusiness(booking.LineOfBusinessCar).
			WithCash(18000, 1900, 0).
			Build()
		b := builder.NewBookingBuilder().WithLineItems(car).Build()

		plan, err := newPlanner(nil).CreatePlan(ctx, b, cancellation.Request{})
		require.NoError(t, err)

		assert.Equal(t, 0, plan.StepCount())
		assert.Equal(t, int64(19900), plan.TotalCashRefund().Cents())
		assert.Equal(t, int64(0), plan.NetPointsChange())
	})

	t.Run("already cancelled items are skipped", func(t *testing.T) {
		cancelled := builder.NewLineItemBuilder().
			WithRedemption("J-OLD", 1000).
			WithStatus(booking.LineItemCancelled).
			Build()
		active := builder.NewLineItemBuilder().WithRedemption("J-NEW", 5000).Build()
		b := builder.NewBookingBuilder().WithLineItems(cancelled, active).Build()

		plan, err := newPlanner(nil).CreatePlan(ctx, b, cancellation.Request{})
		require.NoError(t, err)

		assert.Equal(t, []uuid.UUID{active.ID()}, plan.LineItemIDs())
		assert.Equal(t, int64(5000), plan.TotalPointsToRefund())
	})

	t.Run("nothing to cancel", func(t *testing.T) {
		cancelled := builder.NewLineItemBuilder().
			WithRedemption("J-OLD", 1000).
			WithStatus(booking.LineItemCancelled).
			Build()
		b := builder.NewBookingBuilder().WithLineItems(cancelled).Build()

		plan, err := newPlanner(nil).CreatePlan(ctx, b, cancellation.Request{})
		assert.Nil(t, plan)
		assert.True(t, errs.Is(err, cancellation.ErrPlanning))
		assert.True(t, errs.Is(err, cancellation.ErrNothingToCancel))
	})

	t.Run("explicitly empty scope selects nothing", func(t *testing.T) {
		b, _, _ := builder.HotelAndFlight()

		plan, err := newPlanner(nil).CreatePlan(ctx, b, cancellation.Request{LineItemIDs: []uuid.UUID{}})
		assert.Nil(t, plan)
		assert.True(t, errs.Is(err, cancellation.ErrPlanning))
		assert.True(t, errs.Is(err, cancellation.ErrNothingToCancel))
	})

	t.Run("scope matching no items", func(t *testing.T) {
		b, _, _ := builder.HotelAndFlight()

		_, err := newPlanner(nil).CreatePlan(ctx, b, cancellation.Request{LineItemIDs: []uuid.UUID{uuid.New()}})
		assert.True(t, errs.Is(err, cancellation.ErrNothingToCancel))
	})

	t.Run("missing booking", func(t *testing.T) {
		_, err := newPlanner(nil).CreatePlan(ctx, nil, cancellation.Request{})
		assert.True(t, errs.Is(err, cancellation.ErrPlanning))
		assert.True(t, errs.Is(err, booking.ErrBookingNotFound))
	})

	t.Run("entry lookup failure does not fail planning", func(t *testing.T) {
		b, _, _ := builder.HotelAndFlight()
		entries := &fakeEntries{err: errs.New("ledger down")}

		plan, err := newPlanner(entries).CreatePlan(ctx, b, cancellation.Request{})
		require.NoError(t, err)
		for _, s := range plan.Steps() {
			assert.NotNil(t, s.LedgerEntries)
			assert.Empty(t, s.LedgerEntries)
		}
	})

	t.Run("planning twice yields the same plan", func(t *testing.T) {
		b, _, _ := builder.HotelAndFlight()
		planner := cancellation.NewPlanner(nil, clock.NewSteppingClock(builder.DefaultNow, time.Minute), nil, "r")

		first, err := planner.CreatePlan(ctx, b, cancellation.Request{})
		require.NoError(t, err)
		second, err := planner.CreatePlan(ctx, b, cancellation.Request{})
		require.NoError(t, err)

		assert.Empty(t, cmp.Diff(first.Steps(), second.Steps()))
		assert.Equal(t, first.LineItems(), second.LineItems())
		assert.Equal(t, first.NetPointsChange(), second.NetPointsChange())
		assert.NotEqual(t, first.CreatedAt(), second.CreatedAt())
	})

	t.Run("planning leaves the booking untouched", func(t *testing.T) {
		b, _, _ := builder.HotelAndFlight()
		_, err := newPlanner(nil).CreatePlan(ctx, b, cancellation.Request{})
		require.NoError(t, err)
		for _, item := range b.LineItems() {
			assert.Equal(t, booking.LineItemActive, item.Status())
		}
	})
}

func TestPlan_StepsAreCopies(t *testing.T) {
	b, _, _ := builder.HotelAndFlight()
	plan, err := newPlanner(nil).CreatePlan(context.Background(), b, cancellation.Request{})
	require.NoError(t, err)

	steps := plan.Steps()
	require.NoError(t, steps[0].Start(builder.DefaultNow))

	assert.Equal(t, cancellation.StepPending, plan.Steps()[0].Status)
}
