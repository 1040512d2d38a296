//go:build unit

package cancellation_test

import (
	"encoding/json"
	"testing"
	"time"

	"travel-loyalty-booking/internal/domain/cancellation"
	"travel-loyalty-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingStep(t cancellation.StepType, journalID string) cancellation.Step {
	id := uuid.New()
	return cancellation.Step{
		ID:         cancellation.StepID(id, t),
		Type:       t,
		LineItemID: id,
		JournalID:  journalID,
		Points:     100,
		Status:     cancellation.StepPending,
	}
}

func TestStep_Transitions(t *testing.T) {
	now := builder.DefaultNow

	t.Run("pending to completed", func(t *testing.T) {
		s := pendingStep(cancellation.StepRedemptionRefund, "J1")
		require.NoError(t, s.Start(now))
		assert.Equal(t, cancellation.StepProcessing, s.Status)
		require.NotNil(t, s.StartedAt)

		raw := json.RawMessage(`{"status":"success"}`)
		require.NoError(t, s.Complete(now.Add(time.Second), "CXL-1", raw))
		assert.Equal(t, cancellation.StepCompleted, s.Status)
		assert.Equal(t, "CXL-1", s.CancellationID)
		assert.JSONEq(t, string(raw), string(s.LedgerResponse))
		assert.True(t, s.Status.IsTerminal())
		assert.True(t, s.CompletedAt.After(*s.StartedAt))
	})

	t.Run("pending to failed", func(t *testing.T) {
		s := pendingStep(cancellation.StepAccrualCancel, "J2")
		require.NoError(t, s.Start(now))
		require.NoError(t, s.Fail(now, "journal not found", nil))
		assert.Equal(t, cancellation.StepFailed, s.Status)
		assert.Equal(t, "journal not found", s.Error)
		assert.True(t, s.Status.IsTerminal())
	})

	tests := []struct {
		name string
		run  func(s *cancellation.Step) error
	}{
		{
			name: "complete without start",
			run:  func(s *cancellation.Step) error { return s.Complete(now, "CXL", nil) },
		},
		{
			name: "fail without start",
			run:  func(s *cancellation.Step) error { return s.Fail(now, "x", nil) },
		},
		{
			name: "start twice",
			run: func(s *cancellation.Step) error {
				_ = s.Start(now)
				return s.Start(now)
			},
		},
		{
			name: "fail after complete",
			run: func(s *cancellation.Step) error {
				_ = s.Start(now)
				_ = s.Complete(now, "CXL", nil)
				return s.Fail(now, "late", nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := pendingStep(cancellation.StepRedemptionRefund, "J1")
			assert.ErrorIs(t, tt.run(&s), cancellation.ErrInvalidStepTransition)
		})
	}
}

func TestOrderForExecution(t *testing.T) {
	acc1 := pendingStep(cancellation.StepAccrualCancel, "A1")
	red1 := pendingStep(cancellation.StepRedemptionRefund, "R1")
	acc2 := pendingStep(cancellation.StepAccrualCancel, "A2")
	red2 := pendingStep(cancellation.StepRedemptionRefund, "R2")

	in := []cancellation.Step{acc1, red1, acc2, red2}
	out := cancellation.OrderForExecution(in)

	journals := make([]string, len(out))
	for i, s := range out {
		journals[i] = s.JournalID
	}
	assert.Equal(t, []string{"R1", "R2", "A1", "A2"}, journals)
	assert.Equal(t, "A1", in[0].JournalID, "input is not reordered")
}

func TestStepID(t *testing.T) {
	id := uuid.MustParse("7b0b7d7e-3c1f-4a47-9b0e-1d3f5c1a2b3c")
	assert.Equal(t, "7b0b7d7e-3c1f-4a47-9b0e-1d3f5c1a2b3c/ACCRUAL_CANCEL", cancellation.StepID(id, cancellation.StepAccrualCancel))
}
