package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
	"github.com/osse101/DeluxeGrabber_Go/internal/logger"
)

// GrabberSettings are the persisted collection toggles.
// Field names match the keys of the settings file.
type GrabberSettings struct {
	DoHarvestCrops      bool   `json:"DoHarvestCrops"`
	DoHarvestFlowers    bool   `json:"DoHarvestFlowers"`
	DoHarvestFruitTrees bool   `json:"DoHarvestFruitTrees"`
	DoHarvestTruffles   bool   `json:"DoHarvestTruffles"`
	DoHarvestFarmCave   bool   `json:"DoHarvestFarmCave"`
	DoGainExperience    bool   `json:"DoGainExperience"`
	DoGlobalForage      bool   `json:"DoGlobalForage"`
	GrabberRange        int    `json:"GrabberRange" validate:"gte=0,lte=64"`
	GlobalForageMap     string `json:"GlobalForageMap"`
	GlobalForageTileX   int    `json:"GlobalForageTileX"`
	GlobalForageTileY   int    `json:"GlobalForageTileY"`
}

// DefaultGrabberSettings returns the settings written when no file exists
func DefaultGrabberSettings() GrabberSettings {
	return GrabberSettings{
		DoHarvestCrops:      true,
		DoHarvestFlowers:    true,
		DoHarvestFruitTrees: true,
		DoHarvestTruffles:   true,
		DoHarvestFarmCave:   true,
		DoGainExperience:    true,
		DoGlobalForage:      false,
		GrabberRange:        DefaultGrabberRange,
		GlobalForageMap:     DefaultGlobalForageMap,
	}
}

// ForagerTile returns the configured global collector tile
func (s GrabberSettings) ForagerTile() domain.TileCoord {
	return domain.Tile(s.GlobalForageTileX, s.GlobalForageTileY)
}

// Validate checks the numeric ranges
func (s GrabberSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	return nil
}

// Store guards the current grabber settings and persists changes
type Store struct {
	mu       sync.RWMutex
	path     string
	settings GrabberSettings
}

// LoadStore reads the settings file at path. A missing file is created with defaults.
func LoadStore(ctx context.Context, path string) (*Store, error) {
	s := &Store{path: path, settings: DefaultGrabberSettings()}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.FromContext(ctx).Info(LogMsgGrabberConfigCreated, "path", path)
		if err := s.save(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read grabber settings: %w", err)
	}

	settings := DefaultGrabberSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse grabber settings %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	s.settings = settings
	return s, nil
}

// NewMemoryStore returns a store that is never written to disk
func NewMemoryStore(settings GrabberSettings) *Store {
	return &Store{settings: settings}
}

// Get returns a copy of the current settings
func (s *Store) Get() GrabberSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Update replaces the settings and persists them
func (s *Store) Update(ctx context.Context, settings GrabberSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.settings
	s.settings = settings
	if err := s.save(); err != nil {
		s.settings = prev
		return err
	}
	logger.FromContext(ctx).Info(LogMsgGrabberConfigSaved, "path", s.path)
	return nil
}

// SetForagerLocation points the global collector at a location tile and persists it
func (s *Store) SetForagerLocation(ctx context.Context, location string, tile domain.TileCoord) (GrabberSettings, error) {
	if location == "" {
		return GrabberSettings{}, fmt.Errorf("%w: location name is empty", domain.ErrInvalidInput)
	}
	next := s.Get()
	next.GlobalForageMap = location
	next.GlobalForageTileX = tile.X
	next.GlobalForageTileY = tile.Y
	if err := s.Update(ctx, next); err != nil {
		return GrabberSettings{}, err
	}
	return next, nil
}

// save writes the settings; the caller holds the lock or owns the store
func (s *Store) save() error {
	if s.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(s.settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode grabber settings: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write grabber settings: %w", err)
	}
	return nil
}
