package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/fieldops/farm-admin/internal/api/http"
	"github.com/fieldops/farm-admin/internal/api/http/handlers"
	"github.com/fieldops/farm-admin/internal/broker"
	"github.com/fieldops/farm-admin/internal/config"
	"github.com/fieldops/farm-admin/internal/events"
	"github.com/fieldops/farm-admin/internal/observability"
	"github.com/fieldops/farm-admin/internal/seed"
	"github.com/fieldops/farm-admin/internal/service"
	"github.com/fieldops/farm-admin/internal/store"
	"github.com/fieldops/farm-admin/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics("farm_admin")

	var initial store.State
	if cfg.Store.SeedDummyData {
		initial = seed.State()
	}
	st, err := store.New(initial, store.WithLogger(logger), store.WithMetrics(metrics))
	if err != nil {
		logger.Fatal("failed to build store", zap.Error(err))
	}
	logger.Info("store ready",
		zap.Int("staff", len(initial.Staff)),
		zap.Int("vehicles", len(initial.Vehicle)),
		zap.Int("fields", len(initial.Field)))

	redis := broker.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	dispatcher := events.NewInMemoryDispatcher(logger)
	var sink events.EventHandler
	if redis != nil {
		sink = events.NewRedisSink(redis.Client, cfg.Events.RedisChannel, cfg.Events.PublishTimeout()).Handle
	}
	notificationService := service.NewNotificationService(dispatcher, logger, sink)
	stopWorker := worker.StartNotificationWorker(st, dispatcher, notificationService, cfg.Events.QueueSize, logger)
	defer stopWorker()

	staffService := service.NewStaffService(st)
	vehicleService := service.NewVehicleService(st)
	fieldService := service.NewFieldService(st, cfg.Store.FieldImageMaxBytes)

	app := httptransport.NewServer(httptransport.ServerConfig{
		AppName:        cfg.App.Name,
		BodyLimit:      cfg.App.BodyLimitBytes,
		RequestTimeout: cfg.App.RequestTimeout(),
		Logger:         logger,
		Metrics:        metrics,
	}, httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, redis),
		State:    handlers.NewStateHandler(st),
		Staff:    handlers.NewStaffHandler(staffService),
		Vehicles: handlers.NewVehicleHandler(vehicleService),
		Fields:   handlers.NewFieldHandler(fieldService),
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
