package router

import (
	"github.com/NomadCrew/tourist-travel-backend/config"
	"github.com/NomadCrew/tourist-travel-backend/handlers"
	"github.com/NomadCrew/tourist-travel-backend/logger"
	"github.com/NomadCrew/tourist-travel-backend/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config            *config.Config
	BookingHandler    *handlers.BookingHandler
	ContactHandler    *handlers.ContactHandler
	NewsletterHandler *handlers.NewsletterHandler
	PackageHandler    *handlers.PackageHandler
	HealthHandler     *handlers.HealthHandler
	StaticHandler     *handlers.StaticHandler
	// HTTPMetrics is optional; request metrics are skipped when nil.
	HTTPMetrics *middleware.HTTPMetrics
	// Gatherer backs /metrics. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()

	// Global Middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RequestLogger(logger.GetLogger()))
	if deps.HTTPMetrics != nil {
		r.Use(deps.HTTPMetrics.Middleware())
	}
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config))
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))
	r.Use(middleware.ErrorHandler())

	// Health and Metrics Routes
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := r.Group("/api")
	{
		bookingRoutes := api.Group("/bookings")
		{
			bookingRoutes.GET("", deps.BookingHandler.ListBookingsHandler)
			bookingRoutes.POST("", deps.BookingHandler.CreateBookingHandler)
			bookingRoutes.GET("/:id", deps.BookingHandler.GetBookingHandler)
			bookingRoutes.PATCH("/:id", deps.BookingHandler.UpdateBookingStatusHandler)
			bookingRoutes.DELETE("/:id", deps.BookingHandler.DeleteBookingHandler)
		}

		contactRoutes := api.Group("/contact")
		{
			contactRoutes.POST("", deps.ContactHandler.SubmitContactHandler)
			contactRoutes.GET("", deps.ContactHandler.ListContactsHandler)
		}

		newsletterRoutes := api.Group("/newsletter")
		{
			newsletterRoutes.POST("", deps.NewsletterHandler.SubscribeHandler)
			newsletterRoutes.GET("", deps.NewsletterHandler.ListSubscriptionsHandler)
		}

		packageRoutes := api.Group("/packages")
		{
			packageRoutes.GET("", deps.PackageHandler.ListPackagesHandler)
			packageRoutes.GET("/:id", deps.PackageHandler.GetPackageHandler)
		}
	}

	// Landing page, its assets, and the 404 envelope for everything else
	r.NoRoute(deps.StaticHandler.ServeFiles(), deps.StaticHandler.NotFoundHandler)

	return r
}
