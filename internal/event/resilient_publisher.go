package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/DeluxeGrabber_Go/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries int
	RetryDelay time.Duration
	DeadLetter *DeadLetterWriter // optional
}

// ResilientPublisher wraps a Bus, retrying failed publishes in the background
// and dead-lettering events whose retries are exhausted.
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig
	wg     sync.WaitGroup
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	if config.MaxRetries <= 0 {
		config.MaxRetries = DefaultMaxRetries
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = DefaultRetryDelay
	}
	return &ResilientPublisher{
		inner:  inner,
		config: config,
	}
}

// Publish delivers the event. A failed first attempt is retried asynchronously
// and the caller gets nil, so subscribers never fail the publisher.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgPublishFailed,
		"event_type", event.Type,
		"error", err,
		"retries", p.config.MaxRetries)

	p.wg.Add(1)
	go p.retryLoop(event, err)

	return nil
}

func (p *ResilientPublisher) retryLoop(event Event, lastErr error) {
	defer p.wg.Done()

	// Detached: the publishing context may already be gone
	ctx := context.Background()
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= p.config.MaxRetries; attempt++ {
		time.Sleep(CalculateRetryDelay(p.config.RetryDelay, attempt))

		lastErr = p.inner.Publish(ctx, event)
		if lastErr == nil {
			log.Info(LogMsgRetrySucceeded, "event_type", event.Type, "attempt", attempt)
			return
		}
		log.Warn(LogMsgRetryFailed, "event_type", event.Type, "attempt", attempt, "error", lastErr)
	}

	if p.config.DeadLetter == nil {
		log.Error(LogMsgNoDeadLetterWriter, "event_type", event.Type)
		return
	}
	if err := p.config.DeadLetter.Write(event, p.config.MaxRetries, lastErr); err != nil {
		log.Error(LogMsgDeadLetterFailed, "error", err)
		return
	}
	log.Info(LogMsgDeadLettered, "event_type", event.Type)
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown waits for in-flight retries or until ctx is done
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
