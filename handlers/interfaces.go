package handlers

import (
	"context"

	"github.com/NomadCrew/tourist-travel-backend/types"
)

// BookingServiceInterface is implemented by models.BookingModel.
type BookingServiceInterface interface {
	ListBookings(ctx context.Context) ([]types.Booking, error)
	CreateBooking(ctx context.Context, req types.BookingCreate) (*types.Booking, error)
	GetBooking(ctx context.Context, id string) (*types.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status string) (*types.Booking, error)
	DeleteBooking(ctx context.Context, id string) (*types.Booking, error)
}

// ContactServiceInterface is implemented by models.ContactModel.
type ContactServiceInterface interface {
	ListContactMessages(ctx context.Context) ([]types.ContactMessage, error)
	CreateContactMessage(ctx context.Context, req types.ContactMessageCreate) (*types.ContactMessage, error)
}

// NewsletterServiceInterface is implemented by models.NewsletterModel.
type NewsletterServiceInterface interface {
	ListSubscriptions(ctx context.Context) ([]types.NewsletterSubscription, error)
	Subscribe(ctx context.Context, req types.NewsletterSubscribe) (*types.NewsletterSubscription, error)
}

// PackageCatalogInterface is implemented by models.PackageCatalog.
type PackageCatalogInterface interface {
	ListPackages() []types.TravelPackage
	GetPackage(id string) (*types.TravelPackage, error)
}

// HealthCheckerInterface is implemented by services.HealthService.
type HealthCheckerInterface interface {
	CheckHealth(ctx context.Context) types.HealthCheck
}
