package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/DeluxeGrabber_Go/internal/bootstrap"
	"github.com/osse101/DeluxeGrabber_Go/internal/config"
	"github.com/osse101/DeluxeGrabber_Go/internal/grabber"
	"github.com/osse101/DeluxeGrabber_Go/internal/metrics"
	"github.com/osse101/DeluxeGrabber_Go/internal/scheduler"
	"github.com/osse101/DeluxeGrabber_Go/internal/server"
	"github.com/osse101/DeluxeGrabber_Go/internal/worker"
)

const (
	shutdownTimeout = 15 * time.Second
	jobQueueSize    = 16
)

// @title Deluxe Grabber API
// @version 1.0
// @description Automated collection engine: day-boundary passes, collectors and operator commands.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, warning := range warnings {
		slog.Warn(warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	sim, err := bootstrap.LoadSimulation(ctx, cfg, events.Publisher)
	if err != nil {
		slog.Error("Failed to load simulation", "error", err)
		os.Exit(1)
	}

	if err := metrics.NewEventMetricsCollector().Register(events.Publisher); err != nil {
		slog.Error("Failed to register event metrics", "error", err)
		os.Exit(1)
	}

	svc := grabber.NewService(sim.World, sim.Actor, sim.Settings, sim.Catalog, events.Publisher)
	svc.Register(events.Publisher)

	// One worker: every simulation operation runs on the same goroutine
	pool := worker.NewPool(1, jobQueueSize)
	pool.Start()

	clock := scheduler.New(pool)
	clock.Schedule(cfg.DayInterval, worker.NewDayJob(func(ctx context.Context) error {
		_, err := svc.AdvanceDay(ctx)
		return err
	}))
	clock.Start(ctx)

	srv := server.NewServer(server.Options{
		Port:        cfg.Port,
		APIKey:      cfg.APIKey,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
	}, svc, pool)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: clock,
		Pool:      pool,
		Events:    events,
	})
}
