package models

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/NomadCrew/tourist-travel-backend/errors"
	"github.com/NomadCrew/tourist-travel-backend/store"
	"github.com/NomadCrew/tourist-travel-backend/store/memory"
	"github.com/NomadCrew/tourist-travel-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

func validBookingRequest() types.BookingCreate {
	return types.BookingCreate{
		Name:        "  Asha Menon ",
		Email:       "Asha@Example.COM",
		Datetime:    "2999-01-01T00:00",
		Destination: "Alleppey",
		Message:     "  window seat please  ",
	}
}

func requireAppError(t *testing.T, err error, errType apperrors.ErrorType) *apperrors.AppError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.As(err)
	require.True(t, ok, "expected AppError, got %T", err)
	assert.Equal(t, errType, appErr.Type)
	return appErr
}

func TestBookingModel_CreateBooking(t *testing.T) {
	ctx := context.Background()
	s := memory.NewBookingStore()
	m := NewBookingModel(s, sequentialIDs("1739000123456"), fixedClock(testNow))

	booking, err := m.CreateBooking(ctx, validBookingRequest())
	require.NoError(t, err)

	assert.Equal(t, "1739000123456", booking.ID)
	assert.Equal(t, "Asha Menon", booking.Name)
	assert.Equal(t, "asha@example.com", booking.Email)
	assert.Equal(t, "2999-01-01T00:00", booking.Datetime)
	assert.Equal(t, "Alleppey", booking.Destination)
	assert.Equal(t, "window seat please", booking.Message)
	assert.Equal(t, types.BookingStatusPending, booking.Status)
	assert.Equal(t, testNow, booking.CreatedAt)
	assert.Nil(t, booking.UpdatedAt)
	assert.Equal(t, "TUR123456", booking.BookingReference)

	stored, err := s.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, *booking, *stored)
}

func TestBookingModel_CreateBookingDefaults(t *testing.T) {
	m := NewBookingModel(memory.NewBookingStore(), nil, nil)

	req := validBookingRequest()
	req.Message = ""
	booking, err := m.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "", booking.Message)
	assert.Regexp(t, `^TUR\d{6}$`, booking.BookingReference)
	assert.False(t, booking.CreatedAt.IsZero())
}

func TestBookingModel_CreateBookingValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *types.BookingCreate)
		message string
	}{
		{"missing name", func(r *types.BookingCreate) { r.Name = "" }, "Please fill in all required fields"},
		{"blank email", func(r *types.BookingCreate) { r.Email = "   " }, "Please fill in all required fields"},
		{"missing datetime", func(r *types.BookingCreate) { r.Datetime = "" }, "Please fill in all required fields"},
		{"missing destination", func(r *types.BookingCreate) { r.Destination = "\t" }, "Please fill in all required fields"},
		{"email without at", func(r *types.BookingCreate) { r.Email = "asha.example.com" }, "Please enter a valid email address"},
		{"email without dot", func(r *types.BookingCreate) { r.Email = "asha@example" }, "Please enter a valid email address"},
		{"email with space", func(r *types.BookingCreate) { r.Email = "asha menon@example.com" }, "Please enter a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := memory.NewBookingStore()
			m := NewBookingModel(s, nil, nil)

			req := validBookingRequest()
			tt.mutate(&req)

			_, err := m.CreateBooking(ctx, req)
			appErr := requireAppError(t, err, apperrors.ValidationError)
			assert.Equal(t, tt.message, appErr.Message)

			count, err := s.CountBookings(ctx)
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}

func TestBookingModel_CreateBookingStoreFailure(t *testing.T) {
	s := new(MockBookingStore)
	s.On("CreateBooking", mock.Anything, mock.AnythingOfType("types.Booking")).Return(errors.New("disk on fire"))
	m := NewBookingModel(s, sequentialIDs("b1"), fixedClock(testNow))

	_, err := m.CreateBooking(context.Background(), validBookingRequest())
	appErr := requireAppError(t, err, apperrors.ServerError)
	assert.Equal(t, apperrors.GenericServerMessage, appErr.Message)
	s.AssertExpectations(t)
}

func TestBookingModel_GetBooking(t *testing.T) {
	ctx := context.Background()
	m := NewBookingModel(memory.NewBookingStore(), sequentialIDs("b1"), fixedClock(testNow))
	created, err := m.CreateBooking(ctx, validBookingRequest())
	require.NoError(t, err)

	got, err := m.GetBooking(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)

	_, err = m.GetBooking(ctx, "missing")
	appErr := requireAppError(t, err, apperrors.NotFoundError)
	assert.Equal(t, "Booking not found", appErr.Message)
}

func TestBookingModel_UpdateBookingStatus(t *testing.T) {
	ctx := context.Background()
	later := testNow.Add(time.Hour)
	clock := testNow
	m := NewBookingModel(memory.NewBookingStore(), sequentialIDs("b1"), func() time.Time { return clock })

	created, err := m.CreateBooking(ctx, validBookingRequest())
	require.NoError(t, err)

	t.Run("valid status", func(t *testing.T) {
		clock = later
		updated, err := m.UpdateBookingStatus(ctx, created.ID, "confirmed")
		require.NoError(t, err)
		assert.Equal(t, types.BookingStatusConfirmed, updated.Status)
		require.NotNil(t, updated.UpdatedAt)
		assert.Equal(t, later, *updated.UpdatedAt)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.Equal(t, created.BookingReference, updated.BookingReference)
	})

	t.Run("invalid status leaves booking unchanged", func(t *testing.T) {
		_, err := m.UpdateBookingStatus(ctx, created.ID, "shipped")
		appErr := requireAppError(t, err, apperrors.ValidationError)
		assert.Equal(t, "Invalid status. Must be: pending, confirmed, or cancelled", appErr.Message)

		got, err := m.GetBooking(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, types.BookingStatusConfirmed, got.Status)
	})

	t.Run("unknown id wins over invalid status", func(t *testing.T) {
		_, err := m.UpdateBookingStatus(ctx, "missing", "shipped")
		requireAppError(t, err, apperrors.NotFoundError)
	})
}

func TestBookingModel_DeleteBookingTwice(t *testing.T) {
	ctx := context.Background()
	m := NewBookingModel(memory.NewBookingStore(), sequentialIDs("b1"), fixedClock(testNow))
	created, err := m.CreateBooking(ctx, validBookingRequest())
	require.NoError(t, err)

	deleted, err := m.DeleteBooking(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *deleted)

	_, err = m.DeleteBooking(ctx, created.ID)
	requireAppError(t, err, apperrors.NotFoundError)

	list, err := m.ListBookings(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestBookingModel_StoreErrorsBecomeServerErrors(t *testing.T) {
	ctx := context.Background()
	s := new(MockBookingStore)
	s.On("ListBookings", mock.Anything).Return(nil, errors.New("boom"))
	s.On("DeleteBooking", mock.Anything, "b1").Return(nil, errors.New("boom"))
	s.On("GetBooking", mock.Anything, "gone").Return(nil, store.ErrNotFound)
	m := NewBookingModel(s, nil, nil)

	_, err := m.ListBookings(ctx)
	requireAppError(t, err, apperrors.ServerError)

	_, err = m.DeleteBooking(ctx, "b1")
	requireAppError(t, err, apperrors.ServerError)

	_, err = m.GetBooking(ctx, "gone")
	requireAppError(t, err, apperrors.NotFoundError)
	s.AssertExpectations(t)
}

func TestBookingReference(t *testing.T) {
	tests := []struct {
		id       string
		expected string
	}{
		{"1739000123456", "TUR123456"},
		{"42", "TUR000042"},
		{"no-digits-here", "TUR000000"},
		{"3f2a9c1e-77b0-4d5e-9a1b-0c8d6e4f2b19", "TUR864219"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.expected, BookingReference(tt.id))
		})
	}
}
