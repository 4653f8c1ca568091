package services

import (
	"context"
	"fmt"
	"time"

	"github.com/NomadCrew/tourist-travel-backend/logger"
	"github.com/NomadCrew/tourist-travel-backend/store"
	"github.com/NomadCrew/tourist-travel-backend/types"
	"go.uber.org/zap"
)

// PackageCounter is the part of the catalog the health check needs.
type PackageCounter interface {
	Len() int
}

// HealthService reports the health of the intake collections.
type HealthService struct {
	store     store.Store
	catalog   PackageCounter
	version   string
	startedAt time.Time
	log       *zap.SugaredLogger
}

// NewHealthService creates a HealthService; uptime is measured from this call.
func NewHealthService(s store.Store, catalog PackageCounter, version string) *HealthService {
	return &HealthService{
		store:     s,
		catalog:   catalog,
		version:   version,
		startedAt: time.Now(),
		log:       logger.GetLogger(),
	}
}

// CheckHealth reports the state of every collection and the catalog.
func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	components := map[string]types.HealthComponent{
		"bookings":         h.checkCollection(ctx, "bookings", h.store.Bookings().CountBookings),
		"contact_messages": h.checkCollection(ctx, "contact_messages", h.store.ContactMessages().CountContactMessages),
		"newsletters":      h.checkCollection(ctx, "newsletters", h.store.Newsletters().CountSubscriptions),
		"packages":         h.checkCatalog(),
	}

	overallStatus := types.HealthStatusUp
	for _, c := range components {
		if c.Status == types.HealthStatusDown {
			overallStatus = types.HealthStatusDown
		}
	}

	return types.HealthCheck{
		Status:     overallStatus,
		Components: components,
		Version:    h.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Uptime:     time.Since(h.startedAt).Round(time.Second).String(),
	}
}

func (h *HealthService) checkCollection(ctx context.Context, name string, count func(context.Context) (int, error)) types.HealthComponent {
	n, err := count(ctx)
	if err != nil {
		h.log.Errorw("Collection health check failed", "collection", name, "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Collection unavailable",
		}
	}
	return types.HealthComponent{
		Status:  types.HealthStatusUp,
		Details: fmt.Sprintf("%d records", n),
	}
}

func (h *HealthService) checkCatalog() types.HealthComponent {
	if h.catalog.Len() == 0 {
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Package catalog is empty",
		}
	}
	return types.HealthComponent{
		Status:  types.HealthStatusUp,
		Details: fmt.Sprintf("%d packages", h.catalog.Len()),
	}
}
