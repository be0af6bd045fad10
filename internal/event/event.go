package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from map metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Event types
const (
	DayStarted          Type = domain.EventTypeDayStarted
	ObjectsAdded        Type = domain.EventTypeObjectsAdded
	CollectionCompleted Type = domain.EventTypeCollectionCompleted
	ExperienceAwarded   Type = domain.EventTypeExperienceAwarded
	SkillLevelUp        Type = domain.EventTypeSkillLevelUp
)

// AddedObject is one object in an objects-added notification
type AddedObject struct {
	Tile   domain.TileCoord `json:"tile"`
	ItemID int              `json:"item_id"`
	Name   string           `json:"name"`
	Stack  int              `json:"stack"`
}

// ObjectsAddedPayloadV1 is the world-mutation notification for one location
type ObjectsAddedPayloadV1 struct {
	Location string        `json:"location"`
	Objects  []AddedObject `json:"objects"`
}

// DayStartedPayloadV1 is published once the clock has advanced
type DayStartedPayloadV1 struct {
	DaysPlayed int           `json:"days_played"`
	Season     domain.Season `json:"season"`
	DayOfMonth int           `json:"day_of_month"`
	Timestamp  int64         `json:"timestamp"`
}

// CollectionCompletedPayloadV1 summarizes one finished collection pass
type CollectionCompletedPayloadV1 struct {
	Pass              string         `json:"pass"`
	RunID             string         `json:"run_id,omitempty"`
	Items             map[string]int `json:"items"` // item name -> units collected
	CollectorsFull    int            `json:"collectors_full"`
	PlacementFailures int            `json:"placement_failures"`
	Aborted           bool           `json:"aborted"`
	Reason            string         `json:"reason,omitempty"`
	DurationMs        int64          `json:"duration_ms"`
}

// ExperienceAwardedPayloadV1 is published for every experience award
type ExperienceAwardedPayloadV1 struct {
	Skill  domain.Skill `json:"skill"`
	Amount int          `json:"amount"`
	Total  int          `json:"total"`
}

// SkillLevelUpPayloadV1 is published when an award raises a level
type SkillLevelUpPayloadV1 struct {
	Skill    domain.Skill `json:"skill"`
	OldLevel int          `json:"old_level"`
	NewLevel int          `json:"new_level"`
}

// NewObjectsAddedEvent creates a world-mutation notification
func NewObjectsAddedEvent(location string, objects []AddedObject) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ObjectsAdded,
		Payload: ObjectsAddedPayloadV1{Location: location, Objects: objects},
	}
}

// NewDayStartedEvent creates a day-started event
func NewDayStartedEvent(daysPlayed int, season domain.Season, dayOfMonth int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DayStarted,
		Payload: DayStartedPayloadV1{
			DaysPlayed: daysPlayed,
			Season:     season,
			DayOfMonth: dayOfMonth,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewCollectionCompletedEvent creates a pass summary event
func NewCollectionCompletedEvent(payload CollectionCompletedPayloadV1) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     CollectionCompleted,
		Payload:  payload,
		Metadata: map[string]interface{}{"pass": payload.Pass},
	}
}

// NewExperienceAwardedEvent creates an experience event
func NewExperienceAwardedEvent(skill domain.Skill, amount, total int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ExperienceAwarded,
		Payload: ExperienceAwardedPayloadV1{Skill: skill, Amount: amount, Total: total},
	}
}

// NewSkillLevelUpEvent creates a level-up event
func NewSkillLevelUpEvent(skill domain.Skill, oldLevel, newLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SkillLevelUp,
		Payload: SkillLevelUpPayloadV1{Skill: skill, OldLevel: oldLevel, NewLevel: newLevel},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus.
// Handlers run synchronously on the publishing goroutine.
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
