package world

import (
	"sort"

	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
)

// Location is a named region. Maps are keyed by tile; removal is key deletion.
type Location struct {
	Name       string
	IsFarmCave bool
	Objects    map[domain.TileCoord]*Object
	Features   map[domain.TileCoord]*Feature
	Buildings  []*Building
}

// Building is a farm building with an interior location
type Building struct {
	Type    string
	Tile    domain.TileCoord
	Indoors *Location
}

// NewLocation creates an empty location
func NewLocation(name string) *Location {
	return &Location{
		Name:     name,
		Objects:  make(map[domain.TileCoord]*Object),
		Features: make(map[domain.TileCoord]*Feature),
	}
}

// ObjectAt returns the object on a tile, or nil
func (l *Location) ObjectAt(tile domain.TileCoord) *Object {
	return l.Objects[tile]
}

// FeatureAt returns the feature on a tile, or nil
func (l *Location) FeatureAt(tile domain.TileCoord) *Feature {
	return l.Features[tile]
}

// SetObject places an object, replacing any existing one
func (l *Location) SetObject(tile domain.TileCoord, obj *Object) {
	l.Objects[tile] = obj
}

// SetFeature places a terrain feature, replacing any existing one
func (l *Location) SetFeature(tile domain.TileCoord, f *Feature) {
	l.Features[tile] = f
}

// RemoveObject deletes the object on a tile
func (l *Location) RemoveObject(tile domain.TileCoord) {
	delete(l.Objects, tile)
}

// ObjectTiles returns the occupied object tiles in row-major order
func (l *Location) ObjectTiles() []domain.TileCoord {
	return sortedTiles(l.Objects)
}

// FeatureTiles returns the feature tiles in row-major order
func (l *Location) FeatureTiles() []domain.TileCoord {
	return sortedTiles(l.Features)
}

// CollectorTiles returns the tiles of every collector in row-major order
func (l *Location) CollectorTiles() []domain.TileCoord {
	var tiles []domain.TileCoord
	for _, tile := range l.ObjectTiles() {
		if l.Objects[tile].IsCollector() {
			tiles = append(tiles, tile)
		}
	}
	return tiles
}

// FirstCollector returns the first collector in row-major order
func (l *Location) FirstCollector() (domain.TileCoord, *Object, bool) {
	tiles := l.CollectorTiles()
	if len(tiles) == 0 {
		return domain.TileCoord{}, nil, false
	}
	return tiles[0], l.Objects[tiles[0]], true
}

func sortedTiles[V any](m map[domain.TileCoord]V) []domain.TileCoord {
	tiles := make([]domain.TileCoord, 0, len(m))
	for tile := range m {
		tiles = append(tiles, tile)
	}
	sort.Slice(tiles, func(i, j int) bool { return tiles[i].Less(tiles[j]) })
	return tiles
}
