package models

import (
	"context"
	stderrors "errors"
	"strings"

	apperrors "github.com/NomadCrew/tourist-travel-backend/errors"
	"github.com/NomadCrew/tourist-travel-backend/logger"
	"github.com/NomadCrew/tourist-travel-backend/models/validation"
	"github.com/NomadCrew/tourist-travel-backend/store"
	"github.com/NomadCrew/tourist-travel-backend/types"
)

const (
	msgBookingRequiredFields = "Please fill in all required fields"
	msgInvalidBookingStatus  = "Invalid status. Must be: pending, confirmed, or cancelled"
)

// BookingModel applies the booking rules on top of a BookingStore.
type BookingModel struct {
	store store.BookingStore
	newID IDGenerator
	now   Clock
}

// NewBookingModel creates a BookingModel. Nil newID or now fall back to
// NewUUID and the UTC wall clock.
func NewBookingModel(s store.BookingStore, newID IDGenerator, now Clock) *BookingModel {
	if newID == nil {
		newID = NewUUID
	}
	if now == nil {
		now = utcNow
	}
	return &BookingModel{store: s, newID: newID, now: now}
}

// ListBookings returns every booking in creation order.
func (m *BookingModel) ListBookings(ctx context.Context) ([]types.Booking, error) {
	bookings, err := m.store.ListBookings(ctx)
	if err != nil {
		return nil, apperrors.InternalServerError(err)
	}
	return bookings, nil
}

// CreateBooking validates req, normalizes it and appends a pending booking.
// The datetime is stored as sent; it is not parsed.
func (m *BookingModel) CreateBooking(ctx context.Context, req types.BookingCreate) (*types.Booking, error) {
	if err := validation.RequireFields(msgBookingRequiredFields,
		validation.Field{Name: "name", Value: req.Name},
		validation.Field{Name: "email", Value: req.Email},
		validation.Field{Name: "datetime", Value: req.Datetime},
		validation.Field{Name: "destination", Value: req.Destination},
	); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return nil, err
	}

	id := m.newID()
	booking := types.Booking{
		ID:               id,
		Name:             strings.TrimSpace(req.Name),
		Email:            validation.NormalizeEmail(req.Email),
		Datetime:         req.Datetime,
		Destination:      req.Destination,
		Message:          strings.TrimSpace(req.Message),
		Status:           types.BookingStatusPending,
		CreatedAt:        m.now(),
		BookingReference: BookingReference(id),
	}

	if err := m.store.CreateBooking(ctx, booking); err != nil {
		return nil, apperrors.InternalServerError(err)
	}

	logger.GetLogger().Infow("Booking created",
		"booking_id", booking.ID,
		"booking_reference", booking.BookingReference,
		"email", logger.MaskEmail(booking.Email),
		"destination", booking.Destination)
	return &booking, nil
}

// GetBooking returns the booking with id or a NotFound error.
func (m *BookingModel) GetBooking(ctx context.Context, id string) (*types.Booking, error) {
	booking, err := m.store.GetBooking(ctx, id)
	if err != nil {
		return nil, m.translate(err, id)
	}
	return booking, nil
}

// UpdateBookingStatus checks existence before the status value, so an unknown id
// is reported as not found even when the status is also invalid.
func (m *BookingModel) UpdateBookingStatus(ctx context.Context, id string, status string) (*types.Booking, error) {
	if _, err := m.store.GetBooking(ctx, id); err != nil {
		return nil, m.translate(err, id)
	}

	newStatus := types.BookingStatus(status)
	if !newStatus.IsValid() {
		return nil, apperrors.ValidationFailed(msgInvalidBookingStatus, "status: "+status)
	}

	booking, err := m.store.UpdateBookingStatus(ctx, id, newStatus, m.now())
	if err != nil {
		return nil, m.translate(err, id)
	}

	logger.GetLogger().Infow("Booking status updated", "booking_id", id, "status", newStatus)
	return booking, nil
}

// DeleteBooking removes a booking and returns its final state.
func (m *BookingModel) DeleteBooking(ctx context.Context, id string) (*types.Booking, error) {
	booking, err := m.store.DeleteBooking(ctx, id)
	if err != nil {
		return nil, m.translate(err, id)
	}

	logger.GetLogger().Infow("Booking deleted", "booking_id", id)
	return booking, nil
}

func (m *BookingModel) translate(err error, id string) error {
	if stderrors.Is(err, store.ErrNotFound) {
		return apperrors.NotFound("Booking", id)
	}
	return apperrors.InternalServerError(err)
}
