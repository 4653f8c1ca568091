// Package memory implements the record collections as process-lifetime slices.
// Nothing is persisted; a new Store starts empty.
package memory

import (
	"github.com/NomadCrew/tourist-travel-backend/store"
)

var _ store.Store = (*Store)(nil)

// Store owns one instance of every collection.
type Store struct {
	bookings    *BookingStore
	contacts    *ContactMessageStore
	newsletters *NewsletterStore
}

// NewStore returns a Store with empty collections.
func NewStore() *Store {
	return &Store{
		bookings:    NewBookingStore(),
		contacts:    NewContactMessageStore(),
		newsletters: NewNewsletterStore(),
	}
}

// Bookings returns the booking collection.
func (s *Store) Bookings() store.BookingStore {
	return s.bookings
}

// ContactMessages returns the contact message collection.
func (s *Store) ContactMessages() store.ContactMessageStore {
	return s.contacts
}

// Newsletters returns the newsletter collection.
func (s *Store) Newsletters() store.NewsletterStore {
	return s.newsletters
}
