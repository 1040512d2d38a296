package memstore

import (
	"context"
	"sync"

	"travel-loyalty-booking/internal/domain/booking"
	"travel-loyalty-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// BookingStore keeps bookings in process memory. Callers always receive
// copies, so nothing outside the store can mutate what it holds.
type BookingStore struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]*booking.Booking
	statuses map[uuid.UUID]booking.Status
}

func NewBookingStore() *BookingStore {
	return &BookingStore{
		bookings: make(map[uuid.UUID]*booking.Booking),
		statuses: make(map[uuid.UUID]booking.Status),
	}
}

func (s *BookingStore) Save(_ context.Context, b *booking.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.bookings[b.ID()]; exists {
		return errs.Newf("booking %s already exists", b.ID())
	}
	s.bookings[b.ID()] = b.Clone()
	s.statuses[b.ID()] = b.Status()
	return nil
}

func (s *BookingStore) GetBooking(_ context.Context, bookingID uuid.UUID) (*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[bookingID]
	if !ok {
		return nil, errs.Wrapf(booking.ErrBookingNotFound, "booking %s", bookingID)
	}
	return b.Clone(), nil
}

func (s *BookingStore) UpdateLineItemStatus(
	_ context.Context,
	bookingID, lineItemID uuid.UUID,
	status booking.LineItemStatus,
	change booking.Cancellation,
) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[bookingID]
	if !ok {
		return false, nil
	}
	if err := b.ApplyLineItemStatus(lineItemID, status, change); err != nil {
		if errs.Is(err, booking.ErrLineItemNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *BookingStore) UpdateBookingStatus(_ context.Context, bookingID uuid.UUID, status booking.Status) error {
	if !status.IsValid() {
		return errs.Newf("invalid booking status %q", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[bookingID]; !ok {
		return errs.Wrapf(booking.ErrBookingNotFound, "booking %s", bookingID)
	}
	s.statuses[bookingID] = status
	return nil
}

// StoredStatus returns the last status written through UpdateBookingStatus.
func (s *BookingStore) StoredStatus(bookingID uuid.UUID) (booking.Status, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.statuses[bookingID]
	return st, ok
}

func (s *BookingStore) List() []*booking.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*booking.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b.Clone())
	}
	return out
}
