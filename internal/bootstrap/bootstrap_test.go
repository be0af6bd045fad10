package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DeluxeGrabber_Go/internal/config"
	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
)

const worldYAML = `
world_id: 12
days_played: 8
season: summer
day_of_month: 8
actor:
  foraging_xp: 380
  traits: [botanist]
  location: Farm
  x: 4
  y: 4
locations:
  - name: Farm
    objects:
      - {x: 0, y: 0, item_id: 165, name: Auto-Grabber, collector: true, big: true}
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	worldPath := filepath.Join(dir, "world.yaml")
	require.NoError(t, os.WriteFile(worldPath, []byte(worldYAML), 0o644))

	return &config.Config{
		WorldPath:           worldPath,
		GrabberConfigPath:   filepath.Join(dir, "settings", "grabber.json"),
		TuningPath:          filepath.Join(dir, "missing-tuning.yaml"),
		EventDeadLetterPath: filepath.Join(dir, "data", "deadletter.jsonl"),
		EventRetryDelay:     time.Millisecond,
	}
}

func TestLoadSimulation(t *testing.T) {
	cfg := testConfig(t)
	events, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = events.DeadLetter.Close() })

	sim, err := LoadSimulation(context.Background(), cfg, events.Publisher)

	require.NoError(t, err)
	assert.Equal(t, uint64(12), sim.World.WorldID)
	assert.Equal(t, domain.SeasonSummer, sim.World.Season)
	assert.True(t, sim.Actor.HasTrait(domain.TraitBotanist))
	assert.Equal(t, 380, sim.Actor.Experience(domain.SkillForaging))
	assert.Positive(t, sim.Catalog.Len())
	assert.Equal(t, config.DefaultGrabberSettings(), sim.Settings.Get())
	assert.FileExists(t, cfg.GrabberConfigPath)
}

func TestLoadSimulation_MissingWorld(t *testing.T) {
	cfg := testConfig(t)
	cfg.WorldPath = filepath.Join(t.TempDir(), "nope.yaml")

	_, err := LoadSimulation(context.Background(), cfg, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgLoadWorld)
}

func TestInitializeEventSystem(t *testing.T) {
	cfg := testConfig(t)

	events, err := InitializeEventSystem(cfg)

	require.NoError(t, err)
	assert.FileExists(t, cfg.EventDeadLetterPath)
	GracefulShutdown(context.Background(), ShutdownComponents{Events: events})
}
