package grabber

import (
	"context"
	"fmt"

	"github.com/osse101/DeluxeGrabber_Go/internal/config"
	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
	"github.com/osse101/DeluxeGrabber_Go/internal/event"
	"github.com/osse101/DeluxeGrabber_Go/internal/farmer"
	"github.com/osse101/DeluxeGrabber_Go/internal/logger"
	"github.com/osse101/DeluxeGrabber_Go/internal/naming"
	"github.com/osse101/DeluxeGrabber_Go/internal/world"
)

// PlayerLocation is the actor's current map and tile
type PlayerLocation struct {
	Location string           `json:"location"`
	Tile     domain.TileCoord `json:"tile"`
}

// CollectorView is a read-only view of one collector
type CollectorView struct {
	Location     string             `json:"location"`
	Tile         domain.TileCoord   `json:"tile"`
	Name         string             `json:"name"`
	Occupied     int                `json:"occupied"`
	Capacity     int                `json:"capacity"`
	ShowContents bool               `json:"show_contents"`
	Items        []domain.ItemStack `json:"items"`
}

// PrintLocation reports the actor's map and tile
func (s *service) PrintLocation(ctx context.Context) PlayerLocation {
	name, tile := s.actor.Position()
	logger.FromContext(ctx).Info(LogMsgPlayerLocation, "map", name, "tile", tile.String())
	return PlayerLocation{Location: name, Tile: tile}
}

// Player returns the actor's skills, traits and position
func (s *service) Player(ctx context.Context) farmer.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.actor.Snapshot()
}

// SetForagerLocation makes the actor's current tile the global collector target
func (s *service) SetForagerLocation(ctx context.Context) (config.GrabberSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, tile := s.actor.Position()
	updated, err := s.settings.SetForagerLocation(ctx, name, tile)
	if err != nil {
		return config.GrabberSettings{}, fmt.Errorf("failed to set forager location: %w", err)
	}
	logger.FromContext(ctx).Info(LogMsgForagerLocation, "map", name, "tile", tile.String())
	return updated, nil
}

// MovePlayer moves the actor to a known location
func (s *service) MovePlayer(ctx context.Context, location string, tile domain.TileCoord) (PlayerLocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loc, err := s.findLocation(location)
	if err != nil {
		return PlayerLocation{}, err
	}
	s.actor.MoveTo(loc.Name, tile)
	return PlayerLocation{Location: loc.Name, Tile: tile}, nil
}

// PlaceObjects puts objects into a location and then delivers the
// objects-added notification, outside the lock. A batch touching an occupied
// tile is rejected as a whole.
func (s *service) PlaceObjects(ctx context.Context, location string, objects []world.ObjectFixture) ([]event.AddedObject, error) {
	added, name, err := s.place(location, objects)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug(LogMsgObjectsPlaced, "location", name, "count", len(added))
	s.publish(ctx, event.NewObjectsAddedEvent(name, added))
	return added, nil
}

func (s *service) place(location string, objects []world.ObjectFixture) ([]event.AddedObject, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loc, err := s.findLocation(location)
	if err != nil {
		return nil, "", err
	}

	taken := make(map[domain.TileCoord]bool, len(objects))
	built := make([]*world.Object, len(objects))
	for i, of := range objects {
		tile := domain.Tile(of.X, of.Y)
		if existing := loc.ObjectAt(tile); existing != nil {
			return nil, "", fmt.Errorf("%w: %s %s is occupied by %s", domain.ErrInvalidInput, loc.Name, tile, existing.Name)
		}
		if taken[tile] {
			return nil, "", fmt.Errorf("%w: %s %s is listed twice", domain.ErrInvalidInput, loc.Name, tile)
		}
		taken[tile] = true

		if of.ItemID == 0 {
			item, err := s.catalog.ByName(of.Name)
			if err != nil {
				return nil, "", err
			}
			of.ItemID, of.Name = item.ID, item.Name
		}
		obj, err := s.world.BuildObject(of)
		if err != nil {
			return nil, "", err
		}
		built[i] = obj
	}

	added := make([]event.AddedObject, 0, len(objects))
	for i, of := range objects {
		tile := domain.Tile(of.X, of.Y)
		loc.SetObject(tile, built[i])
		added = append(added, event.AddedObject{
			Tile:   tile,
			ItemID: built[i].ItemID,
			Name:   built[i].Name,
			Stack:  built[i].Stack,
		})
	}
	return added, loc.Name, nil
}

// Collectors lists every collector in location order
func (s *service) Collectors(ctx context.Context) []CollectorView {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []CollectorView
	for _, loc := range s.allLocations() {
		for _, tile := range loc.CollectorTiles() {
			obj := loc.ObjectAt(tile)
			out = append(out, CollectorView{
				Location:     loc.Name,
				Tile:         tile,
				Name:         obj.Name,
				Occupied:     obj.Container.OccupiedCount(),
				Capacity:     obj.Container.Capacity(),
				ShowContents: obj.ShowContents,
				Items:        obj.Container.Items(),
			})
		}
	}
	return out
}

// findLocation resolves a location name, suggesting the closest match on failure
func (s *service) findLocation(name string) (*world.Location, error) {
	if loc, ok := s.world.LocationByName(name); ok {
		return loc, nil
	}
	if suggestion, ok := naming.Suggest(name, s.world.LocationNames()); ok {
		return nil, fmt.Errorf("%w: %s (did you mean %q?)", domain.ErrLocationNotFound, name, suggestion)
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrLocationNotFound, name)
}
