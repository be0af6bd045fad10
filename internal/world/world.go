// Package world is the in-memory world state the collection passes run against.
// It is not safe for concurrent use; callers serialize access.
package world

import (
	"golang.org/x/text/cases"

	"github.com/osse101/DeluxeGrabber_Go/internal/container"
	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
	"github.com/osse101/DeluxeGrabber_Go/internal/tuning"
)

// World is the set of enumerable locations plus the calendar
type World struct {
	Locations  []*Location
	DaysPlayed int
	WorldID    uint64
	Season     domain.Season
	DayOfMonth int

	tuning tuning.Tuning
}

// New creates an empty world on spring 1
func New(worldID uint64, t tuning.Tuning) *World {
	return &World{
		WorldID:    worldID,
		DaysPlayed: 1,
		Season:     domain.SeasonSpring,
		DayOfMonth: 1,
		tuning:     t,
	}
}

// AddLocation appends a location to the enumeration order
func (w *World) AddLocation(l *Location) {
	w.Locations = append(w.Locations, l)
}

// LocationByName finds a location, comparing names case-insensitively.
// Building interiors are searched after the top-level locations.
func (w *World) LocationByName(name string) (*Location, bool) {
	fold := cases.Fold()
	key := fold.String(name)
	for _, l := range w.Locations {
		if fold.String(l.Name) == key {
			return l, true
		}
	}
	for _, l := range w.Interiors() {
		if fold.String(l.Name) == key {
			return l, true
		}
	}
	return nil, false
}

// LocationNames lists every top-level and interior location name
func (w *World) LocationNames() []string {
	names := make([]string, 0, len(w.Locations))
	for _, l := range w.Locations {
		names = append(names, l.Name)
	}
	for _, l := range w.Interiors() {
		names = append(names, l.Name)
	}
	return names
}

// Buildings returns every building across all locations
func (w *World) Buildings() []*Building {
	var out []*Building
	for _, l := range w.Locations {
		out = append(out, l.Buildings...)
	}
	return out
}

// Interiors returns building interiors in building order
func (w *World) Interiors() []*Location {
	var out []*Location
	for _, b := range w.Buildings() {
		if b.Indoors != nil {
			out = append(out, b.Indoors)
		}
	}
	return out
}

// NewCollector creates a collector object with an empty container
func (w *World) NewCollector(itemID int, name string) *Object {
	return &Object{
		ItemID:       itemID,
		Name:         name,
		Stack:        1,
		Role:         RoleCollector,
		BigCraftable: true,
		Container:    container.New(w.tuning.Collection.ContainerCapacity, w.tuning.Collection.MaxStack),
	}
}

// Tuning returns the tunables the world was created with
func (w *World) Tuning() tuning.Tuning {
	return w.tuning
}
