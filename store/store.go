// Package store defines the record collections the intake service writes to.
package store

import (
	"context"
	"time"

	"github.com/NomadCrew/tourist-travel-backend/types"
)

// Store groups the independent record collections.
type Store interface {
	Bookings() BookingStore
	ContactMessages() ContactMessageStore
	Newsletters() NewsletterStore
}

// BookingStore is the ordered collection of bookings.
type BookingStore interface {
	// ListBookings returns all bookings in insertion order.
	ListBookings(ctx context.Context) ([]types.Booking, error)
	CreateBooking(ctx context.Context, booking types.Booking) error
	GetBooking(ctx context.Context, id string) (*types.Booking, error)
	// UpdateBookingStatus overwrites status and updatedAt only.
	UpdateBookingStatus(ctx context.Context, id string, status types.BookingStatus, updatedAt time.Time) (*types.Booking, error)
	// DeleteBooking removes the booking and returns its final state.
	DeleteBooking(ctx context.Context, id string) (*types.Booking, error)
	CountBookings(ctx context.Context) (int, error)
}

// ContactMessageStore is the append-only collection of contact form messages.
type ContactMessageStore interface {
	ListContactMessages(ctx context.Context) ([]types.ContactMessage, error)
	CreateContactMessage(ctx context.Context, msg types.ContactMessage) error
	CountContactMessages(ctx context.Context) (int, error)
}

// NewsletterStore is the append-only collection of newsletter subscriptions.
type NewsletterStore interface {
	ListSubscriptions(ctx context.Context) ([]types.NewsletterSubscription, error)
	// CreateSubscription appends sub unless its email is already present,
	// in which case it returns ErrConflict. The check and the insert are atomic.
	CreateSubscription(ctx context.Context, sub types.NewsletterSubscription) error
	CountSubscriptions(ctx context.Context) (int, error)
}
