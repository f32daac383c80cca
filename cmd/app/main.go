package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dinner/api"
	"dinner/cmd"
	httpin "dinner/internal/adapters/in/http"
	"dinner/internal/adapters/out/postgres/customerrepo"
	"dinner/internal/adapters/out/postgres/orderrepo"
	"dinner/internal/pkg/metrics"

	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := newLogger("dinner-service")
	slog.SetDefault(logger)

	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB := mustOpenDatabase(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB, metrics.New(prometheus.DefaultRegisterer), logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("Failed to close event publisher", "error", closeErr)
		}
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func newLogger(service string) *slog.Logger {
	hostname, _ := os.Hostname()

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(
		slog.String("service", service),
		slog.String("hostname", hostname),
	)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	doc, err := api.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load OpenAPI document: %v", err)
	}

	e, err := httpin.NewRouter(app.CreateServer(), doc, app.Metrics())
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			e.Logger.Fatal(startErr)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
