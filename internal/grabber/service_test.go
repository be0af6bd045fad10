package grabber

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DeluxeGrabber_Go/internal/catalog"
	"github.com/osse101/DeluxeGrabber_Go/internal/config"
	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
	"github.com/osse101/DeluxeGrabber_Go/internal/event"
	"github.com/osse101/DeluxeGrabber_Go/internal/farmer"
	"github.com/osse101/DeluxeGrabber_Go/internal/logger"
	"github.com/osse101/DeluxeGrabber_Go/internal/rng"
	"github.com/osse101/DeluxeGrabber_Go/internal/tuning"
	"github.com/osse101/DeluxeGrabber_Go/internal/world"
)

const forageWorld = `
world_id: 77
days_played: 3
season: spring
day_of_month: 3
locations:
  - name: Farm
    objects:
      - {x: 0, y: 0, item_id: 165, name: Auto-Grabber, collector: true, big: true}
      - {x: 1, y: 1, item_id: 16, name: Wild Horseradish, forage: true}
      - {x: 2, y: 2, item_id: 18, name: Daffodil}
  - name: Forest
`

type harness struct {
	svc      Service
	world    *world.World
	actor    *farmer.Farmer
	bus      *event.MemoryBus
	settings *config.Store

	mu     sync.Mutex
	events []event.Event
}

func (h *harness) record(_ context.Context, evt event.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, evt)
	return nil
}

func (h *harness) count(t event.Type) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, evt := range h.events {
		if evt.Type == t {
			n++
		}
	}
	return n
}

func newHarness(t *testing.T, fixture string, settings config.GrabberSettings, tune func(*tuning.Tuning)) *harness {
	t.Helper()
	tun := tuning.Defaults()
	if tune != nil {
		tune(&tun)
	}
	w, err := world.Decode([]byte(fixture), tun)
	require.NoError(t, err)

	bus := event.NewMemoryBus()
	actor := farmer.New(farmer.Profile{Location: "Farm", X: 3, Y: 4}, bus)
	store := config.NewMemoryStore(settings)

	h := &harness{world: w, actor: actor, bus: bus, settings: store}
	h.svc = NewService(w, actor, store, catalog.Default(), bus,
		WithStreamSource(func() rng.Stream { return rng.NewScripted() }))
	h.svc.Register(bus)
	for _, typ := range []event.Type{event.DayStarted, event.CollectionCompleted, event.ObjectsAdded} {
		bus.Subscribe(typ, h.record)
	}
	return h
}

// captureLogs routes the default logger into a JSON buffer for the rest of the test
func captureLogs(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger.InitLoggerWithWriter(logger.Config{Level: level, Format: logger.LogFormatJSON}, &buf)
	return &buf
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}
	return lines
}

func globalForage(mapName string, x, y int) config.GrabberSettings {
	s := config.DefaultGrabberSettings()
	s.DoGlobalForage = true
	s.GlobalForageMap = mapName
	s.GlobalForageTileX = x
	s.GlobalForageTileY = y
	return s
}

func TestRunDay_PassOrder(t *testing.T) {
	h := newHarness(t, forageWorld, config.DefaultGrabberSettings(), nil)

	report := h.svc.RunDay(context.Background())

	require.Len(t, report.Passes, 3)
	assert.Equal(t, domain.PassBuildings, report.Passes[0].Pass)
	assert.Equal(t, domain.PassCrops, report.Passes[1].Pass)
	assert.Equal(t, domain.PassWorld, report.Passes[2].Pass)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 3, h.count(event.CollectionCompleted))
}

func TestWorldPass(t *testing.T) {
	ctx := context.Background()

	t.Run("forages every grabbable into the global collector", func(t *testing.T) {
		h := newHarness(t, forageWorld, globalForage("Farm", 0, 0), nil)

		pass := h.svc.RunDay(ctx).Pass(domain.PassWorld)

		require.NotNil(t, pass)
		assert.False(t, pass.Aborted)
		assert.Equal(t, map[string]int{"Wild Horseradish": 1, "Daffodil": 1}, pass.Items)

		farm := h.world.Locations[0]
		assert.Nil(t, farm.ObjectAt(domain.Tile(1, 1)))
		assert.Nil(t, farm.ObjectAt(domain.Tile(2, 2)))

		collector := farm.ObjectAt(domain.Tile(0, 0))
		assert.Equal(t, 2, collector.Container.OccupiedCount())
		assert.True(t, collector.ShowContents)
		assert.Equal(t, 14, h.actor.Experience(domain.SkillForaging))
	})

	t.Run("stops the whole pass when the collector fills", func(t *testing.T) {
		h := newHarness(t, forageWorld, globalForage("Farm", 0, 0), func(tun *tuning.Tuning) {
			tun.Collection.ContainerCapacity = 1
		})

		pass := h.svc.RunDay(ctx).Pass(domain.PassWorld)

		assert.True(t, pass.Aborted)
		assert.Equal(t, ReasonCollectorFull, pass.Reason)
		assert.Equal(t, 1, pass.CollectorsFull)
		assert.Equal(t, 1, pass.Total())
		assert.NotNil(t, h.world.Locations[0].ObjectAt(domain.Tile(2, 2)))
	})

	t.Run("unknown map aborts without touching the world", func(t *testing.T) {
		h := newHarness(t, forageWorld, globalForage("Frm", 0, 0), nil)
		buf := captureLogs(t, logger.LogLevelInfo)

		pass := h.svc.RunDay(ctx).Pass(domain.PassWorld)

		assert.True(t, pass.Aborted)
		assert.Equal(t, ReasonInvalidMap, pass.Reason)
		assert.Zero(t, pass.Total())
		assert.Len(t, h.world.Locations[0].Objects, 3)

		lines := logLines(t, buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "INFO", lines[0]["level"])
		assert.Equal(t, "Invalid GlobalForageMap 'Frm'", lines[0]["msg"])
		assert.Equal(t, "Farm", lines[0]["suggestion"])
	})

	t.Run("tile without a collector aborts", func(t *testing.T) {
		h := newHarness(t, forageWorld, globalForage("Farm", 9, 9), nil)

		pass := h.svc.RunDay(ctx).Pass(domain.PassWorld)

		assert.True(t, pass.Aborted)
		assert.Equal(t, ReasonNoCollector, pass.Reason)
		assert.Len(t, h.world.Locations[0].Objects, 3)
	})

	t.Run("disabled", func(t *testing.T) {
		h := newHarness(t, forageWorld, config.DefaultGrabberSettings(), nil)

		pass := h.svc.RunDay(ctx).Pass(domain.PassWorld)

		assert.False(t, pass.Aborted)
		assert.Equal(t, ReasonDisabled, pass.Reason)
		assert.Len(t, h.world.Locations[0].Objects, 3)
	})

	t.Run("mushroom boxes in the farm cave", func(t *testing.T) {
		const caveWorld = `
locations:
  - name: Farm
    objects:
      - {x: 0, y: 0, item_id: 165, name: Auto-Grabber, collector: true, big: true}
  - name: FarmCave
    farm_cave: true
    objects:
      - {x: 4, y: 4, item_id: 128, name: Mushroom Box, big: true, held: {item_id: 404, name: Common Mushroom}}
`
		h := newHarness(t, caveWorld, globalForage("Farm", 0, 0), nil)

		pass := h.svc.RunDay(ctx).Pass(domain.PassWorld)

		assert.Equal(t, map[string]int{"Common Mushroom": 1}, pass.Items)
		box := h.world.Locations[1].ObjectAt(domain.Tile(4, 4))
		require.NotNil(t, box)
		assert.Nil(t, box.Held)
		assert.Zero(t, h.actor.Experience(domain.SkillForaging))
	})
}

func TestCropPass(t *testing.T) {
	const cropWorld = `
locations:
  - name: Farm
    objects:
      - {x: 5, y: 5, item_id: 165, name: Auto-Grabber, collector: true, big: true}
    soil:
      - {x: 5, y: 5, crop: {phase: 1, phase_days: [1, 99999], harvest_id: 24, min_harvest: 1, max_harvest: 1, scythe: true}}
      - {x: 6, y: 6, crop: {phase: 1, phase_days: [1, 99999], harvest_id: 24, min_harvest: 1, max_harvest: 1, scythe: true}}
`
	ctx := context.Background()

	t.Run("harvests inside the radius only", func(t *testing.T) {
		settings := config.DefaultGrabberSettings()
		settings.GrabberRange = 0
		h := newHarness(t, cropWorld, settings, nil)

		pass := h.svc.RunDay(ctx).Pass(domain.PassCrops)

		assert.Equal(t, map[string]int{"Parsnip": 1}, pass.Items)
		farm := h.world.Locations[0]
		assert.Nil(t, farm.FeatureAt(domain.Tile(5, 5)).Soil.Crop)
		assert.NotNil(t, farm.FeatureAt(domain.Tile(6, 6)).Soil.Crop)
		assert.Positive(t, h.actor.Experience(domain.SkillFarming))
		assert.True(t, farm.ObjectAt(domain.Tile(5, 5)).ShowContents)
	})

	t.Run("radius one reaches the neighbour", func(t *testing.T) {
		settings := config.DefaultGrabberSettings()
		settings.GrabberRange = 1
		h := newHarness(t, cropWorld, settings, nil)

		pass := h.svc.RunDay(ctx).Pass(domain.PassCrops)

		assert.Equal(t, map[string]int{"Parsnip": 2}, pass.Items)
		require.Len(t, pass.Summaries, 1)
		assert.Equal(t, []string{"2 Parsnips"}, pass.Summaries[0].Lines())
	})

	t.Run("disabled", func(t *testing.T) {
		settings := config.DefaultGrabberSettings()
		settings.DoHarvestCrops = false
		h := newHarness(t, cropWorld, settings, nil)

		pass := h.svc.RunDay(ctx).Pass(domain.PassCrops)

		assert.Equal(t, ReasonDisabled, pass.Reason)
		assert.NotNil(t, h.world.Locations[0].FeatureAt(domain.Tile(5, 5)).Soil.Crop)
	})

	t.Run("experience disabled", func(t *testing.T) {
		settings := config.DefaultGrabberSettings()
		settings.DoGainExperience = false
		h := newHarness(t, cropWorld, settings, nil)

		h.svc.RunDay(ctx)

		assert.Zero(t, h.actor.Experience(domain.SkillFarming))
	})
}

func TestBuildingPass(t *testing.T) {
	const coopWorld = `
locations:
  - name: Farm
    buildings:
      - type: Deluxe Coop
        x: 10
        y: 3
        indoors:
          name: Coop1
          objects:
            - {x: 1, y: 1, item_id: 165, name: Auto-Grabber, collector: true, big: true}
            - {x: 2, y: 1, item_id: 176, name: Egg}
            - {x: 3, y: 1, item_id: 176, name: Egg}
            - {x: 4, y: 1, item_id: 99, name: Hay}
      - type: Barn
        x: 20
        y: 3
        indoors:
          name: Barn1
          objects:
            - {x: 1, y: 1, item_id: 165, name: Auto-Grabber, collector: true, big: true}
            - {x: 2, y: 1, item_id: 176, name: Egg}
`
	h := newHarness(t, coopWorld, config.DefaultGrabberSettings(), nil)

	pass := h.svc.RunDay(context.Background()).Pass(domain.PassBuildings)

	assert.Equal(t, map[string]int{"Egg": 2}, pass.Items)
	coop := h.world.Interiors()[0]
	assert.Nil(t, coop.ObjectAt(domain.Tile(2, 1)))
	assert.NotNil(t, coop.ObjectAt(domain.Tile(4, 1)))
	assert.NotNil(t, h.world.Interiors()[1].ObjectAt(domain.Tile(2, 1)))
	assert.Equal(t, 10, h.actor.Experience(domain.SkillFarming))
}

func TestAdvanceDay(t *testing.T) {
	h := newHarness(t, forageWorld, config.DefaultGrabberSettings(), nil)

	report, err := h.svc.AdvanceDay(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, report.DaysPlayed)
	assert.Equal(t, 4, report.DayOfMonth)
	assert.Equal(t, 1, h.count(event.DayStarted))
	assert.InDelta(t, 0, h.actor.DailyLuck(), dailyLuckRange/2)
}

func TestWorldPass_LogsStreamSeed(t *testing.T) {
	h := newHarness(t, forageWorld, globalForage("Farm", 0, 0), nil)
	svc := NewService(h.world, h.actor, h.settings, catalog.Default(), nil,
		WithStreamSource(func() rng.Stream { return rng.New(1234) }))
	buf := captureLogs(t, logger.LogLevelDebug)

	svc.RunDay(context.Background())

	var seeds []map[string]any
	for _, line := range logLines(t, buf) {
		if line["msg"] == LogMsgForageStream {
			seeds = append(seeds, line)
		}
	}
	require.Len(t, seeds, 1)
	assert.Equal(t, "DEBUG", seeds[0]["level"])
	assert.Equal(t, domain.PassWorld, seeds[0]["pass"])
	assert.EqualValues(t, 1234, seeds[0]["seed"])
}

func TestWorldPass_ScriptedStreamLogsNoSeed(t *testing.T) {
	h := newHarness(t, forageWorld, globalForage("Farm", 0, 0), nil)
	buf := captureLogs(t, logger.LogLevelDebug)

	h.svc.RunDay(context.Background())

	for _, line := range logLines(t, buf) {
		assert.NotEqual(t, LogMsgForageStream, line["msg"])
	}
}
