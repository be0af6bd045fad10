package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/DeluxeGrabber_Go/internal/catalog"
	"github.com/osse101/DeluxeGrabber_Go/internal/config"
	"github.com/osse101/DeluxeGrabber_Go/internal/event"
	"github.com/osse101/DeluxeGrabber_Go/internal/farmer"
	"github.com/osse101/DeluxeGrabber_Go/internal/tuning"
	"github.com/osse101/DeluxeGrabber_Go/internal/world"
)

// Simulation is everything the collection engine runs against
type Simulation struct {
	World    *world.World
	Actor    *farmer.Farmer
	Catalog  *catalog.Catalog
	Settings *config.Store
}

// LoadSimulation reads tuning, catalog, world, actor and grabber settings
// from the configured paths. The actor publishes experience events on bus.
func LoadSimulation(ctx context.Context, cfg *config.Config, bus event.Bus) (*Simulation, error) {
	tun, err := tuning.Load(cfg.TuningPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadTuning, err)
	}

	loader, err := catalog.NewLoader()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadCatalog, err)
	}
	cat, err := loader.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadCatalog, err)
	}

	w, err := world.Load(cfg.WorldPath, tun)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadWorld, err)
	}
	profile, err := farmer.LoadProfile(cfg.WorldPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadActor, err)
	}

	store, err := config.LoadStore(ctx, cfg.GrabberConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadSettings, err)
	}
	slog.Info(LogMsgGrabberSettingsLoaded, "path", cfg.GrabberConfigPath)

	slog.Info(LogMsgSimulationLoaded,
		"locations", len(w.Locations),
		"items", cat.Len(),
		"days_played", w.DaysPlayed,
		"season", w.Season)

	return &Simulation{
		World:    w,
		Actor:    farmer.New(profile, bus),
		Catalog:  cat,
		Settings: store,
	}, nil
}
