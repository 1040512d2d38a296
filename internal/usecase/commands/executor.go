package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"travel-loyalty-booking/internal/domain/booking"
	"travel-loyalty-booking/internal/domain/cancellation"
	"travel-loyalty-booking/internal/pkg/clock"
	"travel-loyalty-booking/internal/pkg/errs"
	"travel-loyalty-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ExecutorOptions struct {
	// StepTimeout bounds a single ledger call. A call that runs out of time fails its step.
	StepTimeout time.Duration
	// HoldFailedReversals leaves line items whose reversal failed in
	// PENDING_CANCELLATION instead of CANCELLED.
	HoldFailedReversals bool
}

// Executor runs the steps of a plan against the ledger and records the
// outcome on the booking. It never re-plans and never returns an error:
// everything that goes wrong is reported in the result.
type Executor struct {
	ledger   shared.LedgerGateway
	bookings shared.BookingRepository
	clock    clock.Clock
	logger   *slog.Logger
	opts     ExecutorOptions
}

func NewExecutor(
	ledger shared.LedgerGateway,
	bookings shared.BookingRepository,
	clk clock.Clock,
	logger *slog.Logger,
	opts ExecutorOptions,
) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.StepTimeout <= 0 {
		opts.StepTimeout = 10 * time.Second
	}
	return &Executor{
		ledger:   ledger,
		bookings: bookings,
		clock:    clk,
		logger:   logger,
		opts:     opts,
	}
}

// Execute runs every redemption refund before any accrual cancel, one step at
// a time. Steps are returned in the order they ran.
func (e *Executor) Execute(ctx context.Context, plan *cancellation.Plan) *cancellation.Result {
	startedAt := e.clock.Now()
	steps := cancellation.OrderForExecution(plan.Steps())

	// A started batch runs to the end even if the caller goes away; only the
	// per-step timeout can cut a ledger call short.
	runCtx := context.WithoutCancel(ctx)

	var execErrs []cancellation.ExecutionError
	for i := range steps {
		if execErr := e.runStep(runCtx, &steps[i]); execErr != nil {
			execErrs = append(execErrs, *execErr)
		}
	}

	settled, persistErrs := e.updateLineItems(runCtx, plan, steps)
	execErrs = append(execErrs, persistErrs...)

	status, statusErr := e.refreshBookingStatus(runCtx, plan.BookingID())
	if statusErr != nil {
		execErrs = append(execErrs, *statusErr)
	}

	result := cancellation.NewResult(cancellation.ResultParams{
		Plan:               plan,
		Steps:              steps,
		Errors:             execErrs,
		SettledLineItemIDs: settled,
		BookingStatus:      status,
		StartedAt:          startedAt,
		CompletedAt:        e.clock.Now(),
	})

	e.logger.InfoContext(ctx, "cancellation plan executed",
		"booking_id", plan.BookingID().String(),
		"outcome", string(result.Outcome()),
		"steps", len(steps),
		"errors", len(execErrs),
		"points_refunded", result.ActualPointsRefunded(),
		"points_cancelled", result.ActualPointsCancelled())

	return result
}

func (e *Executor) runStep(ctx context.Context, step *cancellation.Step) *cancellation.ExecutionError {
	if err := step.Start(e.clock.Now()); err != nil {
		return stepError(step, err.Error())
	}
	e.logger.DebugContext(ctx, "ledger step started",
		"step_id", step.ID,
		"type", string(step.Type),
		"journal_id", step.JournalID)

	callCtx, cancel := context.WithTimeout(ctx, e.opts.StepTimeout)
	outcome, err := e.reverse(callCtx, step)
	cancel()

	now := e.clock.Now()
	switch {
	case err != nil:
		msg := err.Error()
		if errors.Is(err, context.DeadlineExceeded) {
			msg = fmt.Sprintf("ledger call timed out after %s", e.opts.StepTimeout)
		}
		_ = step.Fail(now, msg, nil)
	case outcome == nil || !outcome.OK:
		msg := "ledger rejected reversal"
		var raw []byte
		if outcome != nil {
			raw = outcome.Raw
			if outcome.Message != "" {
				msg += ": " + outcome.Message
			}
		}
		_ = step.Fail(now, msg, raw)
	default:
		_ = step.Complete(now, outcome.CancellationID, outcome.Raw)
		e.logger.DebugContext(ctx, "ledger step completed",
			"step_id", step.ID,
			"cancellation_id", outcome.CancellationID)
		return nil
	}

	e.logger.WarnContext(ctx, "ledger step failed",
		"step_id", step.ID,
		"type", string(step.Type),
		"journal_id", step.JournalID,
		"error", step.Error)
	return stepError(step, step.Error)
}

// reverse turns a panicking gateway into a failed step.
func (e *Executor) reverse(ctx context.Context, step *cancellation.Step) (outcome *shared.ReversalOutcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			outcome = nil
			err = errs.Newf("ledger gateway panicked: %v", r)
		}
	}()

	switch step.Type {
	case cancellation.StepRedemptionRefund:
		return e.ledger.ReverseRedemption(ctx, step.JournalID)
	case cancellation.StepAccrualCancel:
		return e.ledger.ReverseAccrual(ctx, step.JournalID)
	default:
		return nil, errs.Newf("unknown step type %q", step.Type)
	}
}

func (e *Executor) updateLineItems(
	ctx context.Context,
	plan *cancellation.Plan,
	steps []cancellation.Step,
) ([]uuid.UUID, []cancellation.ExecutionError) {
	failed := make(map[uuid.UUID]bool)
	for _, s := range steps {
		if s.Status == cancellation.StepFailed {
			failed[s.LineItemID] = true
		}
	}

	change := booking.Cancellation{
		At:     e.clock.Now(),
		Reason: plan.Reason(),
		By:     plan.RequestedBy(),
	}

	var (
		settled  []uuid.UUID
		failures []cancellation.ExecutionError
	)
	for _, id := range plan.LineItemIDs() {
		status := booking.LineItemCancelled
		if e.opts.HoldFailedReversals && failed[id] {
			status = booking.LineItemPendingCancellation
		}

		ok, err := e.bookings.UpdateLineItemStatus(ctx, plan.BookingID(), id, status, change)
		switch {
		case err != nil:
			failures = append(failures, persistenceError(id, "failed to update line item status: "+err.Error()))
			e.logger.ErrorContext(ctx, "failed to update line item status",
				"booking_id", plan.BookingID().String(),
				"line_item_id", id.String(),
				"error", err.Error())
			continue
		case !ok:
			failures = append(failures, persistenceError(id, "line item not found on booking"))
			continue
		}
		if status == booking.LineItemCancelled {
			settled = append(settled, id)
		}
	}
	return settled, failures
}

func (e *Executor) refreshBookingStatus(ctx context.Context, bookingID uuid.UUID) (booking.Status, *cancellation.ExecutionError) {
	b, err := e.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return "", &cancellation.ExecutionError{
			Kind:    cancellation.ErrorKindPersistence,
			Message: "failed to reload booking: " + err.Error(),
		}
	}

	status := b.Status()
	if err := e.bookings.UpdateBookingStatus(ctx, bookingID, status); err != nil {
		e.logger.ErrorContext(ctx, "failed to update booking status",
			"booking_id", bookingID.String(),
			"status", string(status),
			"error", err.Error())
		return status, &cancellation.ExecutionError{
			Kind:    cancellation.ErrorKindPersistence,
			Message: "failed to update booking status: " + err.Error(),
		}
	}
	return status, nil
}

func stepError(step *cancellation.Step, msg string) *cancellation.ExecutionError {
	return &cancellation.ExecutionError{
		Kind:       cancellation.ErrorKindStepExecution,
		StepID:     step.ID,
		LineItemID: step.LineItemID.String(),
		JournalID:  step.JournalID,
		Message:    msg,
	}
}

func persistenceError(lineItemID uuid.UUID, msg string) cancellation.ExecutionError {
	return cancellation.ExecutionError{
		Kind:       cancellation.ErrorKindPersistence,
		LineItemID: lineItemID.String(),
		Message:    msg,
	}
}
