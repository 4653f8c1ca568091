package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/NomadCrew/tourist-travel-backend/store"
	"github.com/NomadCrew/tourist-travel-backend/types"
)

var _ store.BookingStore = (*BookingStore)(nil)

// BookingStore keeps bookings in insertion order.
type BookingStore struct {
	mu       sync.RWMutex
	bookings []types.Booking
}

// NewBookingStore returns an empty BookingStore.
func NewBookingStore() *BookingStore {
	return &BookingStore{bookings: []types.Booking{}}
}

// ListBookings returns copies of all bookings in insertion order.
func (s *BookingStore) ListBookings(ctx context.Context) ([]types.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Booking, len(s.bookings))
	for i := range s.bookings {
		out[i] = copyBooking(s.bookings[i])
	}
	return out, nil
}

// CreateBooking appends booking. A duplicate id returns ErrConflict.
func (s *BookingStore) CreateBooking(ctx context.Context, booking types.Booking) error {
	if booking.ID == "" {
		return fmt.Errorf("failed to create booking: empty id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(booking.ID) != -1 {
		return fmt.Errorf("failed to create booking %s: %w", booking.ID, store.ErrConflict)
	}
	s.bookings = append(s.bookings, copyBooking(booking))
	return nil
}

// GetBooking returns a copy of the booking or ErrNotFound.
func (s *BookingStore) GetBooking(ctx context.Context, id string) (*types.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return nil, fmt.Errorf("booking %s: %w", id, store.ErrNotFound)
	}
	b := copyBooking(s.bookings[idx])
	return &b, nil
}

// UpdateBookingStatus sets status and updatedAt in place.
func (s *BookingStore) UpdateBookingStatus(ctx context.Context, id string, status types.BookingStatus, updatedAt time.Time) (*types.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return nil, fmt.Errorf("booking %s: %w", id, store.ErrNotFound)
	}
	s.bookings[idx].Status = status
	s.bookings[idx].UpdatedAt = &updatedAt

	b := copyBooking(s.bookings[idx])
	return &b, nil
}

// DeleteBooking removes the booking and returns it.
func (s *BookingStore) DeleteBooking(ctx context.Context, id string) (*types.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return nil, fmt.Errorf("booking %s: %w", id, store.ErrNotFound)
	}
	removed := s.bookings[idx]
	s.bookings = append(s.bookings[:idx], s.bookings[idx+1:]...)
	return &removed, nil
}

// CountBookings returns the number of stored bookings.
func (s *BookingStore) CountBookings(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings), nil
}

// indexOf must be called with mu held.
func (s *BookingStore) indexOf(id string) int {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return i
		}
	}
	return -1
}

// copyBooking detaches the UpdatedAt pointer from the stored value.
func copyBooking(b types.Booking) types.Booking {
	if b.UpdatedAt != nil {
		t := *b.UpdatedAt
		b.UpdatedAt = &t
	}
	return b
}
