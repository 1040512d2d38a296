package commands

import (
	"context"
	"errors"
	"log/slog"

	"travel-loyalty-booking/internal/domain/booking"
	"travel-loyalty-booking/internal/domain/cancellation"
	"travel-loyalty-booking/internal/pkg/errs"
	"travel-loyalty-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=cancellation.go -destination=../../../tests/mock/commands/cancellation.go -package=commandsmock

var (
	ErrCancellationInProgress  = errs.ErrCancellationInProgress
	ErrLockUnavailable         = errs.New("booking lock unavailable")
	ErrDatabaseOperationFailed = errs.ErrDatabaseOperationFailed
)

type CancellationCommands interface {
	// Confirm plans and executes a cancellation. Planning errors are returned;
	// once a plan exists the outcome is always reported through the result.
	Confirm(ctx context.Context, bookingID uuid.UUID, req cancellation.Request) (*cancellation.Result, error)
}

type cancellationCommandsImpl struct {
	bookings  shared.BookingRepository
	locker    shared.BookingLocker
	publisher shared.CancellationEventPublisher
	planner   *cancellation.Planner
	executor  *Executor
	logger    *slog.Logger
}

func NewCancellationCommands(
	bookings shared.BookingRepository,
	locker shared.BookingLocker,
	publisher shared.CancellationEventPublisher,
	planner *cancellation.Planner,
	executor *Executor,
	logger *slog.Logger,
) CancellationCommands {
	return &cancellationCommandsImpl{
		bookings:  bookings,
		locker:    locker,
		publisher: publisher,
		planner:   planner,
		executor:  executor,
		logger:    logger,
	}
}

func (uc *cancellationCommandsImpl) Confirm(
	ctx context.Context,
	bookingID uuid.UUID,
	req cancellation.Request,
) (*cancellation.Result, error) {
	release, err := uc.locker.Acquire(ctx, bookingID)
	if err != nil {
		if errors.Is(err, shared.ErrLockNotAcquired) {
			return nil, ErrCancellationInProgress
		}
		return nil, errs.Mark(err, ErrLockUnavailable)
	}
	defer release(context.WithoutCancel(ctx))

	b, err := uc.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, cancellation.PlanningFailed(err)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	plan, err := uc.planner.CreatePlan(ctx, b, req)
	if err != nil {
		return nil, err
	}

	result := uc.executor.Execute(ctx, plan)

	// Ledger effects are already applied; the event goes out even if the caller left.
	pubCtx := context.WithoutCancel(ctx)
	if pubErr := uc.publisher.PublishCancellationExecuted(pubCtx, result); pubErr != nil {
		uc.logger.WarnContext(pubCtx, "failed to publish cancellation event",
			"booking_id", bookingID.String(),
			"error", pubErr.Error())
	}

	return result, nil
}
