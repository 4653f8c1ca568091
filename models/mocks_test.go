package models

import (
	"context"
	"time"

	"github.com/NomadCrew/tourist-travel-backend/logger"
	"github.com/NomadCrew/tourist-travel-backend/store"
	"github.com/NomadCrew/tourist-travel-backend/types"
	"github.com/stretchr/testify/mock"
)

func init() {
	logger.IsTest = true
}

type MockBookingStore struct {
	mock.Mock
}

var _ store.BookingStore = (*MockBookingStore)(nil)

func (m *MockBookingStore) ListBookings(ctx context.Context) ([]types.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Booking), args.Error(1)
}

func (m *MockBookingStore) CreateBooking(ctx context.Context, booking types.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingStore) GetBooking(ctx context.Context, id string) (*types.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Booking), args.Error(1)
}

func (m *MockBookingStore) UpdateBookingStatus(ctx context.Context, id string, status types.BookingStatus, updatedAt time.Time) (*types.Booking, error) {
	args := m.Called(ctx, id, status, updatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Booking), args.Error(1)
}

func (m *MockBookingStore) DeleteBooking(ctx context.Context, id string) (*types.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Booking), args.Error(1)
}

func (m *MockBookingStore) CountBookings(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockNewsletterStore struct {
	mock.Mock
}

var _ store.NewsletterStore = (*MockNewsletterStore)(nil)

func (m *MockNewsletterStore) ListSubscriptions(ctx context.Context) ([]types.NewsletterSubscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.NewsletterSubscription), args.Error(1)
}

func (m *MockNewsletterStore) CreateSubscription(ctx context.Context, sub types.NewsletterSubscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockNewsletterStore) CountSubscriptions(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// fixedClock and sequentialIDs make created records deterministic.
func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func sequentialIDs(ids ...string) IDGenerator {
	i := 0
	return func() string {
		id := ids[i%len(ids)]
		i++
		return id
	}
}
