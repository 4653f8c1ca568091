package services

import (
	"context"

	"github.com/NomadCrew/tourist-travel-backend/logger"
	"github.com/NomadCrew/tourist-travel-backend/store"
	"github.com/prometheus/client_golang/prometheus"
)

// RegisterCollectionMetrics exposes the size of each record collection as a gauge
// that is read from the store on every scrape.
func RegisterCollectionMetrics(reg prometheus.Registerer, s store.Store) error {
	gauges := []prometheus.Collector{
		collectionGauge("tourist_bookings", "Number of bookings currently held", s.Bookings().CountBookings),
		collectionGauge("tourist_contact_messages", "Number of contact messages received", s.ContactMessages().CountContactMessages),
		collectionGauge("tourist_newsletter_subscriptions", "Number of newsletter subscriptions", s.Newsletters().CountSubscriptions),
	}
	for _, g := range gauges {
		if err := reg.Register(g); err != nil {
			return err
		}
	}
	return nil
}

func collectionGauge(name, help string, count func(context.Context) (int, error)) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: name,
		Help: help,
	}, func() float64 {
		n, err := count(context.Background())
		if err != nil {
			logger.GetLogger().Warnw("Failed to read collection size", "metric", name, "error", err)
			return 0
		}
		return float64(n)
	})
}
