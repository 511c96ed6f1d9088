package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/smartupsell/dashboard-service/internal/config"
	"github.com/smartupsell/dashboard-service/internal/handler"
	"github.com/smartupsell/dashboard-service/internal/logger"
	"github.com/smartupsell/dashboard-service/internal/repository"
	"github.com/smartupsell/dashboard-service/internal/repository/postgres"
	"github.com/smartupsell/dashboard-service/internal/service"
	"github.com/smartupsell/dashboard-service/internal/webhook"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.Service.Environment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting dashboard service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort))

	ctx := context.Background()

	// Establish the database connection once for the whole session. Any
	// failure here is permanent: the service serves demo data and never
	// retries mid-session.
	var repo repository.DashboardRepository
	if cfg.Database.Configured() {
		client, err := postgres.NewClient(ctx, &cfg.Database, log)
		if err != nil {
			log.Warn("Database unavailable, serving demo data for this session", zap.Error(err))
		} else {
			pgRepo := postgres.NewRepository(client, log)
			defer pgRepo.Close()
			repo = pgRepo
		}
	} else {
		log.Info("Database not configured, serving demo data for this session")
	}

	// Initialize services
	dataSource := service.NewDataSource(repo, log)
	metricsService := service.NewMetricsService(dataSource, log)
	analyticsService := service.NewAnalyticsService(dataSource, metricsService, log)

	// Initialize webhook dispatcher
	dispatcher := webhook.NewDispatcher(cfg.Webhooks, log)

	// Initialize handler
	h := handler.NewHandler(dataSource, metricsService, analyticsService, dispatcher, log)

	addr := fmt.Sprintf(":%s", cfg.Service.APIPort)
	log.Info("API server starting", zap.String("address", addr))

	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal("Failed to start API server", zap.Error(err))
	}
}
