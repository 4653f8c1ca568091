package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NomadCrew/tourist-travel-backend/config"
	"github.com/NomadCrew/tourist-travel-backend/handlers"
	"github.com/NomadCrew/tourist-travel-backend/logger"
	"github.com/NomadCrew/tourist-travel-backend/middleware"
	"github.com/NomadCrew/tourist-travel-backend/models"
	"github.com/NomadCrew/tourist-travel-backend/router"
	"github.com/NomadCrew/tourist-travel-backend/services"
	"github.com/NomadCrew/tourist-travel-backend/store/memory"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer func() { _ = logger.Close() }()

	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := config.LoadEnvFile(envFile); err != nil {
		log.Fatalf("Failed to load env file: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Collections start empty and live for the whole process
	dataStore := memory.NewStore()
	catalog := models.NewPackageCatalog()

	bookingModel := models.NewBookingModel(dataStore.Bookings(), nil, nil)
	contactModel := models.NewContactModel(dataStore.ContactMessages(), nil, nil)
	newsletterModel := models.NewNewsletterModel(dataStore.Newsletters(), nil, nil)

	// Metrics
	if err := services.RegisterCollectionMetrics(prometheus.DefaultRegisterer, dataStore); err != nil {
		log.Fatalf("Failed to register collection metrics: %v", err)
	}
	httpMetrics, err := middleware.NewHTTPMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("Failed to register HTTP metrics: %v", err)
	}

	healthService := services.NewHealthService(dataStore, catalog, cfg.Server.Version)

	r := router.SetupRouter(router.Dependencies{
		Config:            cfg,
		BookingHandler:    handlers.NewBookingHandler(bookingModel),
		ContactHandler:    handlers.NewContactHandler(contactModel),
		NewsletterHandler: handlers.NewNewsletterHandler(newsletterModel),
		PackageHandler:    handlers.NewPackageHandler(catalog),
		HealthHandler:     handlers.NewHealthHandler(healthService),
		StaticHandler:     handlers.NewStaticHandler(cfg.Server.StaticDir),
		HTTPMetrics:       httpMetrics,
		Gatherer:          prometheus.DefaultGatherer,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infow("Starting server",
			"port", cfg.Server.Port,
			"environment", cfg.Server.Environment,
			"static_dir", cfg.Server.StaticDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	stop()
	log.Info("Shutdown signal received, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Server forced to shutdown", "error", err)
		return
	}
	log.Info("Server stopped")
}
