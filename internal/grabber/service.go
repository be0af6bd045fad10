// Package grabber runs the collection passes against the world and exposes
// the operator commands. Every exported operation is serialized by one lock,
// so passes, notifications and commands never interleave.
package grabber

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/DeluxeGrabber_Go/internal/catalog"
	"github.com/osse101/DeluxeGrabber_Go/internal/config"
	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
	"github.com/osse101/DeluxeGrabber_Go/internal/event"
	"github.com/osse101/DeluxeGrabber_Go/internal/farmer"
	"github.com/osse101/DeluxeGrabber_Go/internal/harvest"
	"github.com/osse101/DeluxeGrabber_Go/internal/logger"
	"github.com/osse101/DeluxeGrabber_Go/internal/rng"
	"github.com/osse101/DeluxeGrabber_Go/internal/world"
)

// Actor is the actor the service collects for
type Actor interface {
	harvest.Actor
	Position() (string, domain.TileCoord)
	MoveTo(location string, tile domain.TileCoord)
	SetDailyLuck(luck float64)
	Snapshot() farmer.Snapshot
}

// Service defines the collection engine and its commands
type Service interface {
	// AdvanceDay moves the clock forward one day and runs the day-boundary passes
	AdvanceDay(ctx context.Context) (*DayReport, error)
	// RunDay runs the building, crop and world passes for the current day
	RunDay(ctx context.Context) *DayReport
	// HandleObjectsAdded is the world-mutation notification handler
	HandleObjectsAdded(ctx context.Context, evt event.Event) error
	// Register subscribes the notification handler on the bus
	Register(bus event.Bus)

	PrintLocation(ctx context.Context) PlayerLocation
	Player(ctx context.Context) farmer.Snapshot
	SetForagerLocation(ctx context.Context) (config.GrabberSettings, error)
	MovePlayer(ctx context.Context, location string, tile domain.TileCoord) (PlayerLocation, error)
	PlaceObjects(ctx context.Context, location string, objects []world.ObjectFixture) ([]event.AddedObject, error)
	Collectors(ctx context.Context) []CollectorView
	Settings() config.GrabberSettings
}

// Option customizes a service
type Option func(*service)

// WithStreamSource replaces the time-seeded stream used by the world pass and truffle handler
func WithStreamSource(next func() rng.Stream) Option {
	return func(s *service) {
		s.newStream = next
	}
}

type service struct {
	mu        sync.Mutex
	world     *world.World
	actor     Actor
	settings  *config.Store
	catalog   *catalog.Catalog
	bus       event.Bus
	resolver  *harvest.Resolver
	newStream func() rng.Stream
}

// NewService creates a new collection service. bus may be nil.
func NewService(w *world.World, actor Actor, settings *config.Store, cat *catalog.Catalog, bus event.Bus, opts ...Option) Service {
	s := &service{
		world:     w,
		actor:     actor,
		settings:  settings,
		catalog:   cat,
		bus:       bus,
		resolver:  harvest.NewResolver(w.Tuning(), cat, actor, harvest.Options{}),
		newStream: func() rng.Stream { return rng.NewEntropy() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register subscribes the notification handler on the bus
func (s *service) Register(bus event.Bus) {
	bus.Subscribe(event.ObjectsAdded, s.HandleObjectsAdded)
}

// Settings returns the current grabber settings
func (s *service) Settings() config.GrabberSettings {
	return s.settings.Get()
}

// AdvanceDay moves the clock forward, rolls the daily luck and runs the passes
func (s *service) AdvanceDay(ctx context.Context) (*DayReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.world.AdvanceDay()
	luck := rng.New(uint64(s.world.DaysPlayed) + s.world.WorldID)
	s.actor.SetDailyLuck(luck.Float64()*dailyLuckRange - dailyLuckRange/2)

	logger.FromContext(ctx).Info(LogMsgDayStarted,
		"days_played", s.world.DaysPlayed, "season", s.world.Season, "day", s.world.DayOfMonth)
	s.publish(ctx, event.NewDayStartedEvent(s.world.DaysPlayed, s.world.Season, s.world.DayOfMonth))

	return s.runDay(ctx), nil
}

// RunDay runs the three passes in order
func (s *service) RunDay(ctx context.Context) *DayReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runDay(ctx)
}

func (s *service) runDay(ctx context.Context) *DayReport {
	ctx, runID := logger.WithRunID(ctx)
	r := s.resolverFor(s.settings.Get())

	report := &DayReport{
		RunID:      runID,
		DaysPlayed: s.world.DaysPlayed,
		Season:     s.world.Season,
		DayOfMonth: s.world.DayOfMonth,
	}
	for _, pass := range []func(context.Context, *harvest.Resolver) *PassReport{
		s.buildingPass,
		s.cropPass,
		s.worldPass,
	} {
		start := time.Now()
		pr := pass(ctx, r)
		pr.finish(start)
		s.complete(ctx, runID, pr)
		report.Passes = append(report.Passes, pr)
	}
	return report
}

func (s *service) resolverFor(cfg config.GrabberSettings) *harvest.Resolver {
	return s.resolver.WithOptions(harvest.Options{
		HarvestFlowers:    cfg.DoHarvestFlowers,
		HarvestFruitTrees: cfg.DoHarvestFruitTrees,
		GainExperience:    cfg.DoGainExperience,
	})
}

// complete logs a finished pass and publishes its summary
func (s *service) complete(ctx context.Context, runID string, pr *PassReport) {
	logger.FromContext(ctx).Debug(LogMsgPassCompleted,
		"pass", pr.Pass,
		"units", pr.Total(),
		"collectors_full", pr.CollectorsFull,
		"placement_failures", pr.PlacementFailures,
		"aborted", pr.Aborted,
		"reason", pr.Reason,
		"duration", pr.Duration)
	s.publish(ctx, pr.Event(runID))
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
