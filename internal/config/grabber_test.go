package config

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
)

func TestLoadStore_WritesDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "grabber.json")

	store, err := LoadStore(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, DefaultGrabberSettings(), store.Get())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk GrabberSettings
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, DefaultGrabberSettings(), onDisk)
}

func TestLoadStore_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grabber.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"DoGlobalForage": true, "GlobalForageMap": "Forest", "GlobalForageTileX": 4}`), 0o644))

	store, err := LoadStore(context.Background(), path)

	require.NoError(t, err)
	got := store.Get()
	assert.True(t, got.DoGlobalForage)
	assert.True(t, got.DoHarvestCrops)
	assert.Equal(t, "Forest", got.GlobalForageMap)
	assert.Equal(t, domain.Tile(4, 0), got.ForagerTile())
	assert.Equal(t, DefaultGrabberRange, got.GrabberRange)
}

func TestLoadStore_Errors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{not json`), 0o644))
	_, err := LoadStore(context.Background(), bad)
	assert.Error(t, err)

	negative := filepath.Join(dir, "negative.json")
	require.NoError(t, os.WriteFile(negative, []byte(`{"GrabberRange": -1}`), 0o644))
	_, err = LoadStore(context.Background(), negative)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestStore_SetForagerLocation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grabber.json")
	store, err := LoadStore(context.Background(), path)
	require.NoError(t, err)

	updated, err := store.SetForagerLocation(context.Background(), "Forest", domain.Tile(12, 30))

	require.NoError(t, err)
	assert.Equal(t, "Forest", updated.GlobalForageMap)
	assert.Equal(t, domain.Tile(12, 30), store.Get().ForagerTile())

	reloaded, err := LoadStore(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, updated, reloaded.Get())
}

func TestStore_SetForagerLocation_EmptyName(t *testing.T) {
	store := NewMemoryStore(DefaultGrabberSettings())

	_, err := store.SetForagerLocation(context.Background(), "", domain.Tile(1, 1))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, DefaultGlobalForageMap, store.Get().GlobalForageMap)
}

func TestStore_UpdateRejectsInvalid(t *testing.T) {
	store := NewMemoryStore(DefaultGrabberSettings())
	next := store.Get()
	next.GrabberRange = 500

	err := store.Update(context.Background(), next)

	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Equal(t, DefaultGrabberRange, store.Get().GrabberRange)
}
