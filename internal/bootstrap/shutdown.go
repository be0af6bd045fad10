package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/DeluxeGrabber_Go/internal/scheduler"
	"github.com/osse101/DeluxeGrabber_Go/internal/server"
	"github.com/osse101/DeluxeGrabber_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Pool      *worker.Pool
	Events    *EventSystem
}

// GracefulShutdown stops components in order:
// 1. HTTP server (stop accepting new requests)
// 2. Day clock and simulation worker (finish the running job)
// 3. Event publisher (flush pending retries), then the dead-letter file
//
// Errors during shutdown are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		slog.Info(LogMsgStoppingScheduler)
		c.Scheduler.Stop()
	}
	if c.Pool != nil {
		slog.Info(LogMsgStoppingWorkerPool)
		c.Pool.Stop()
	}

	if c.Events != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.Events.Publisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
		if err := c.Events.DeadLetter.Close(); err != nil {
			slog.Error(LogMsgDeadLetterCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
