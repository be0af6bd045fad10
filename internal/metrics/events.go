package metrics

import (
	"context"
	"time"

	"github.com/osse101/DeluxeGrabber_Go/internal/event"
	"github.com/osse101/DeluxeGrabber_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.DayStarted,
		event.ObjectsAdded,
		event.CollectionCompleted,
		event.ExperienceAwarded,
		event.SkillLevelUp,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics.
// A payload that cannot be decoded is counted as a handler error, never returned.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.DayStarted:
		DaysAdvanced.Inc()

	case event.ObjectsAdded:
		var p event.ObjectsAddedPayloadV1
		if p, err = event.DecodePayload[event.ObjectsAddedPayloadV1](evt.Payload); err == nil {
			ObjectsAdded.WithLabelValues(p.Location).Add(float64(len(p.Objects)))
		}

	case event.CollectionCompleted:
		var p event.CollectionCompletedPayloadV1
		if p, err = event.DecodePayload[event.CollectionCompletedPayloadV1](evt.Payload); err == nil {
			recordPass(p)
		}

	case event.ExperienceAwarded:
		var p event.ExperienceAwardedPayloadV1
		if p, err = event.DecodePayload[event.ExperienceAwardedPayloadV1](evt.Payload); err == nil {
			ExperienceAwarded.WithLabelValues(string(p.Skill)).Add(float64(p.Amount))
		}

	case event.SkillLevelUp:
		var p event.SkillLevelUpPayloadV1
		if p, err = event.DecodePayload[event.SkillLevelUpPayloadV1](evt.Payload); err == nil {
			SkillLevelUps.WithLabelValues(string(p.Skill)).Add(float64(p.NewLevel - p.OldLevel))
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func recordPass(p event.CollectionCompletedPayloadV1) {
	for item, units := range p.Items {
		ItemsCollected.WithLabelValues(p.Pass, item).Add(float64(units))
	}
	if p.CollectorsFull > 0 {
		CollectorsFull.WithLabelValues(p.Pass).Add(float64(p.CollectorsFull))
	}
	if p.PlacementFailures > 0 {
		PlacementFailures.WithLabelValues(p.Pass).Add(float64(p.PlacementFailures))
	}
	if p.Aborted {
		PassesAborted.WithLabelValues(p.Pass, p.Reason).Inc()
	}
	PassDuration.WithLabelValues(p.Pass).Observe((time.Duration(p.DurationMs) * time.Millisecond).Seconds())
}
