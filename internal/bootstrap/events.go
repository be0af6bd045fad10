package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/DeluxeGrabber_Go/internal/config"
	"github.com/osse101/DeluxeGrabber_Go/internal/event"
)

// EventSystem is the in-memory bus wrapped by the retrying publisher
type EventSystem struct {
	Bus        *event.MemoryBus
	Publisher  *event.ResilientPublisher
	DeadLetter *event.DeadLetterWriter
}

// InitializeEventSystem creates the bus, the dead-letter file and the
// resilient publisher. Zero retry settings fall back to the publisher defaults.
func InitializeEventSystem(cfg *config.Config) (*EventSystem, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.EventDeadLetterPath), DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateDeadLetterDir, err)
	}
	dlw, err := event.NewDeadLetterWriter(cfg.EventDeadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenDeadLetter, err)
	}

	bus := event.NewMemoryBus()
	publisher := event.NewResilientPublisher(bus, event.ResilientConfig{
		MaxRetries: cfg.EventMaxRetries,
		RetryDelay: cfg.EventRetryDelay,
		DeadLetter: dlw,
	})

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", cfg.EventMaxRetries,
		"retry_delay", cfg.EventRetryDelay,
		"deadletter_path", cfg.EventDeadLetterPath)

	return &EventSystem{Bus: bus, Publisher: publisher, DeadLetter: dlw}, nil
}
