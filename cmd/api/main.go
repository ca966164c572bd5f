package main

import (
	"context"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"analytics-service/internal/config"
	eventsHttp "analytics-service/internal/events/adapters/http/fiber"
	eventsRepoMem "analytics-service/internal/events/adapters/memory"
	eventsUsecase "analytics-service/internal/events/core/usecase"
	"analytics-service/internal/events/sample"
	metricsHttp "analytics-service/internal/metrics/adapters/http/fiber"
	metricsUsecase "analytics-service/internal/metrics/core/usecase"
	reportsHttp "analytics-service/internal/reports/adapters/http/fiber"
	reportsUsecase "analytics-service/internal/reports/core/usecase"
	"analytics-service/internal/server"

	log "github.com/sirupsen/logrus"

	_ "analytics-service/docs"
)

// @title Analytics Service API
// @version 1.0.0
// @description Ingests analytics events in memory and serves metrics, a dashboard and ad-hoc reports.
// @BasePath /
func main() {
	logger := log.New()
	logger.SetFormatter(&log.JSONFormatter{})

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}
	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	// Store
	eventRepository := eventsRepoMem.NewEventRepository()

	// Usecases
	getMetricsUC := metricsUsecase.NewGetMetricsUseCase(eventRepository)
	storeEventUC := eventsUsecase.NewStoreEventUseCase(eventRepository, getMetricsUC)
	listEventsUC := eventsUsecase.NewListEventsUseCase(eventRepository)
	generateReportUC := reportsUsecase.NewGenerateReportUseCase(eventRepository)

	if cfg.SeedSampleData {
		seed(logger, eventRepository, getMetricsUC, cfg.SampleEventCount)
	}

	// HTTP (Fiber) app + handlers
	app := server.New(server.Deps{
		AllowOrigins: cfg.AllowOrigins,
		Logger:       logger,
		Events:       eventsHttp.NewEventHandler(storeEventUC, listEventsUC, logger),
		Metrics:      metricsHttp.NewMetricsHandler(getMetricsUC, logger),
		Reports:      reportsHttp.NewReportHandler(generateReportUC, logger),
		Status:       server.NewStatusHandler(eventRepository, logger),
	})

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.ListenAddr()); err != nil {
			logger.WithError(err).Error("fiber stopped")
		}
	}()

	logger.WithFields(log.Fields{
		"addr":    cfg.ListenAddr(),
		"origins": cfg.AllowOrigins,
	}).Info("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.WithError(err).Error("fiber shutdown error")
	}

	logger.Info("server exiting")
}

func seed(logger *log.Logger, repo *eventsRepoMem.EventRepository, metrics *metricsUsecase.GetMetricsUseCase, n int) {
	ctx := context.Background()
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

	if err := repo.AppendBatch(ctx, sample.Generate(n, time.Now(), rng)); err != nil {
		logger.Fatalf("seed sample data: %v", err)
	}
	if err := metrics.Recompute(ctx); err != nil {
		logger.Fatalf("compute metrics: %v", err)
	}

	logger.WithField("events", n).Info("sample data generated")
}
