package types

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid reports whether s is one of the known booking statuses.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is a travel booking request submitted through the booking form.
type Booking struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Datetime    string        `json:"datetime"`
	Destination string        `json:"destination"`
	Message     string        `json:"message"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	// UpdatedAt is only set once the status has been changed.
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
	BookingReference string     `json:"bookingReference"`
}

// BookingCreate is the request body for POST /api/bookings.
type BookingCreate struct {
	Name        string `json:"name" form:"name"`
	Email       string `json:"email" form:"email"`
	Datetime    string `json:"datetime" form:"datetime"`
	Destination string `json:"destination" form:"destination"`
	Message     string `json:"message" form:"message"`
}

// BookingStatusUpdate is the request body for PATCH /api/bookings/:id.
type BookingStatusUpdate struct {
	Status string `json:"status" form:"status"`
}
