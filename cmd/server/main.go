package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/smart-commute/service-commute/internal/application"
	"github.com/smart-commute/service-commute/internal/config"
	"github.com/smart-commute/service-commute/internal/domain/analytics"
	"github.com/smart-commute/service-commute/internal/domain/geo"
	"github.com/smart-commute/service-commute/internal/domain/mapview"
	"github.com/smart-commute/service-commute/internal/domain/route"
	commuteEvents "github.com/smart-commute/service-commute/internal/events"
	"github.com/smart-commute/service-commute/internal/handler"
	"github.com/smart-commute/service-commute/internal/platform/database"
	"github.com/smart-commute/service-commute/internal/platform/health"
	"github.com/smart-commute/service-commute/internal/platform/kafka"
	"github.com/smart-commute/service-commute/internal/platform/logger"
	"github.com/smart-commute/service-commute/internal/platform/middleware"
	"github.com/smart-commute/service-commute/internal/platform/otel"
	"github.com/smart-commute/service-commute/internal/repository"
	"github.com/smart-commute/service-commute/internal/storage/sqlite"
)

const serviceName = "service-commute"

// storage bundles the repositories of whichever backend is configured.
type storage struct {
	savedRoutes route.SavedRouteRepository
	analytics   analytics.Repository
	pinger      health.Pinger
	close       func() error
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-commute",
		zap.String("port", cfg.Port),
		zap.String("storage", cfg.StorageDriver),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize tracing
	shutdownTracing, err := otel.Setup(ctx, otel.Options{
		ServiceName: serviceName,
		Environment: cfg.AppEnv,
		Endpoint:    cfg.OTelEndpoint,
		SampleRatio: cfg.OTelSampleRatio,
	})
	if err != nil {
		log.Fatal("failed to set up tracing", zap.Error(err))
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	// Open storage
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to open storage", zap.Error(err))
	}
	defer func() { _ = store.close() }()

	// Initialize event publisher
	var publisher application.EventPublisher = application.NoopPublisher{}
	if cfg.KafkaConfig.Enabled() {
		kafkaProducer := kafka.NewProducer(cfg.KafkaConfig.Brokers, log)
		defer func() { _ = kafkaProducer.Close() }()
		publisher = commuteEvents.NewKafkaPublisher(kafkaProducer)
	} else {
		log.Info("no kafka brokers configured, events are not published")
	}

	// Initialize application services
	workspaces, err := application.NewWorkspaceStore(cfg.WorkspaceCapacity, mapview.TileLayer{
		URL:         cfg.MapConfig.TileURL,
		Attribution: cfg.MapConfig.Attribution,
	})
	if err != nil {
		log.Fatal("failed to create workspace store", zap.Error(err))
	}

	plannerService := application.NewPlannerService(
		workspaces,
		geo.NewGazetteer(),
		route.NewDefaultEstimator(),
		store.analytics,
		publisher,
		cfg.PlanLatency,
		log,
	)
	savedRouteService := application.NewSavedRouteService(workspaces, store.savedRoutes, publisher, log)
	analyticsService := application.NewAnalyticsService(store.analytics)
	deviceService := application.NewDeviceService(workspaces, analyticsService, savedRouteService, cfg.MapConfig.LoadDelay, log)

	// Initialize and start telemetry consumer in a goroutine
	if cfg.KafkaConfig.Enabled() {
		groupID := cfg.KafkaConfig.GroupPrefix + "commute-service"
		telemetryConsumer := commuteEvents.NewTelemetryConsumer(
			cfg.KafkaConfig.Brokers,
			groupID,
			deviceService,
			log,
		)
		defer func() { _ = telemetryConsumer.Close() }()

		go func() {
			log.Info("starting telemetry consumer")
			if err := telemetryConsumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("telemetry consumer error", zap.Error(err))
			}
		}()
	}

	// Initialize HTTP handlers
	routeHandler := handler.NewRouteHandler(plannerService, savedRouteService, analyticsService)
	deviceHandler := handler.NewDeviceHandler(deviceService)
	adminHandler := handler.NewAdminHandler(plannerService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	healthHandler := health.NewHandler(store.pinger, serviceName)
	healthHandler.RegisterRoutes(router)

	// Register routes
	routeHandler.RegisterRoutes(&router.RouterGroup)
	deviceHandler.RegisterRoutes(&router.RouterGroup)
	adminHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-commute...")

	// Cancel the consumer context
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-commute stopped")
}

func openStorage(ctx context.Context, cfg *config.ServiceConfig, log *zap.Logger) (*storage, error) {
	if cfg.StorageDriver == config.StorageSQLite {
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info("opened sqlite store", zap.String("path", cfg.SQLitePath))
		return &storage{
			savedRoutes: store.SavedRoutes(),
			analytics:   store.Analytics(),
			pinger:      store,
			close:       store.Close,
		}, nil
	}

	db, err := database.Connect(cfg.DBConfig, log)
	if err != nil {
		return nil, err
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(&repository.SavedRouteModel{}, &repository.AnalyticsModel{}); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
		log.Info("database migration completed (dev auto-migrate)")
	} else if err := database.RunMigrations(cfg.DBConfig.DatabaseURL(), "migrations", log); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	return &storage{
		savedRoutes: repository.NewGormSavedRouteRepository(db),
		analytics:   repository.NewGormAnalyticsRepository(db),
		pinger:      sqlDB,
		close:       sqlDB.Close,
	}, nil
}
