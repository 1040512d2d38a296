package lock

import (
	"context"
	"sync"

	"travel-loyalty-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// LocalLocker guards bookings within a single process.
type LocalLocker struct {
	mu   sync.Mutex
	held map[uuid.UUID]struct{}
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{held: make(map[uuid.UUID]struct{})}
}

func (l *LocalLocker) Acquire(_ context.Context, bookingID uuid.UUID) (func(context.Context), error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, busy := l.held[bookingID]; busy {
		return nil, shared.ErrLockNotAcquired
	}
	l.held[bookingID] = struct{}{}

	var once sync.Once
	return func(context.Context) {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, bookingID)
			l.mu.Unlock()
		})
	}, nil
}
