package grabber

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/DeluxeGrabber_Go/internal/container"
	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
	"github.com/osse101/DeluxeGrabber_Go/internal/harvest"
	"github.com/osse101/DeluxeGrabber_Go/internal/logger"
	"github.com/osse101/DeluxeGrabber_Go/internal/naming"
	"github.com/osse101/DeluxeGrabber_Go/internal/rng"
	"github.com/osse101/DeluxeGrabber_Go/internal/world"
)

// buildingPass empties animal products into the collector inside each coop-like building
func (s *service) buildingPass(ctx context.Context, r *harvest.Resolver) *PassReport {
	report := newPassReport(domain.PassBuildings)
	t := s.world.Tuning().Collection

	for _, b := range s.world.Buildings() {
		if b.Indoors == nil || !matchesAny(b.Type, t.BuildingTypes) {
			continue
		}
		logger.Trace(ctx, LogMsgSearchingBuilding, "type", b.Type, "tile", b.Tile.String())

		indoors := b.Indoors
		tile, collector, ok := indoors.FirstCollector()
		if !ok {
			logger.Trace(ctx, LogMsgNoGrabberFound, "building", b.Type)
			continue
		}
		logger.Trace(ctx, LogMsgGrabberFound, "tile", tile.String())

		c := collector.Container
		for _, objTile := range indoors.ObjectTiles() {
			if c.IsFull() {
				logger.Trace(ctx, LogMsgGrabberFull, "building", b.Type)
				report.CollectorsFull++
				break
			}
			report.record(indoors.Name, r.CoopProduct(ctx, indoors, objTile, s.world.DaysPlayed, s.world.WorldID, c))
		}

		s.logSummary(ctx, report, indoors.Name, false)
		collector.RefreshContentsFlag()
	}
	return report
}

// featureResolvers dispatches a terrain feature to its resolver by kind.
// Bushes are only picked by the world pass.
var featureResolvers = map[world.FeatureKind]func(s *service, ctx context.Context, r *harvest.Resolver, f *world.Feature, tile domain.TileCoord, c *container.Container) harvest.Outcome{
	world.FeatureSoil: func(s *service, ctx context.Context, r *harvest.Resolver, f *world.Feature, tile domain.TileCoord, c *container.Container) harvest.Outcome {
		return r.Crop(ctx, f.Soil, tile, s.world.DaysPlayed, s.world.WorldID, c)
	},
	world.FeatureFruitTree: func(s *service, ctx context.Context, r *harvest.Resolver, f *world.Feature, tile domain.TileCoord, c *container.Container) harvest.Outcome {
		return r.FruitTree(ctx, f.FruitTree, c)
	},
}

// cropPass harvests the square neighbourhood around every collector
func (s *service) cropPass(ctx context.Context, r *harvest.Resolver) *PassReport {
	report := newPassReport(domain.PassCrops)
	cfg := s.settings.Get()
	if !cfg.DoHarvestCrops {
		report.Reason = ReasonDisabled
		return report
	}
	radius := cfg.GrabberRange

	for _, loc := range s.allLocations() {
		for _, origin := range loc.CollectorTiles() {
			collector := loc.ObjectAt(origin)
			c := collector.Container
			if c.IsFull() {
				report.CollectorsFull++
				continue
			}

			full := false
			for x := origin.X - radius; x <= origin.X+radius && !full; x++ {
				for y := origin.Y - radius; y <= origin.Y+radius && !full; y++ {
					tile := domain.Tile(x, y)
					report.record(loc.Name, s.resolveTile(ctx, r, loc, tile, c))
					full = c.IsFull()
				}
			}
			if full {
				logger.Trace(ctx, LogMsgGrabberFull, "location", loc.Name, "tile", origin.String())
				report.CollectorsFull++
			}
			collector.RefreshContentsFlag()
		}
		s.logSummary(ctx, report, loc.Name, false)
	}
	return report
}

// resolveTile checks the terrain feature first and then an indoor pot
func (s *service) resolveTile(ctx context.Context, r *harvest.Resolver, loc *world.Location, tile domain.TileCoord, c *container.Container) harvest.Outcome {
	if f := loc.FeatureAt(tile); f != nil {
		if resolve, ok := featureResolvers[f.Kind]; ok {
			return resolve(s, ctx, r, f, tile, c)
		}
	}
	if obj := loc.ObjectAt(tile); obj != nil && obj.Pot != nil {
		return r.Crop(ctx, obj.Pot, tile, s.world.DaysPlayed, s.world.WorldID, c)
	}
	return harvest.Outcome{Status: harvest.StatusSkipped}
}

// worldPass forages every location into the single global collector.
// The whole pass stops the moment that collector is full.
func (s *service) worldPass(ctx context.Context, r *harvest.Resolver) *PassReport {
	report := newPassReport(domain.PassWorld)
	cfg := s.settings.Get()
	if !cfg.DoGlobalForage {
		report.Reason = ReasonDisabled
		return report
	}

	collector, reason := s.globalCollector(ctx, cfg.GlobalForageMap, cfg.ForagerTile(), true)
	if collector == nil {
		report.abort(reason)
		return report
	}

	c := collector.Container
	t := s.world.Tuning()
	stream := s.forageStream(ctx, domain.PassWorld)
	fold := cases.Fold()
	aborted := func() *PassReport {
		logger.FromContext(ctx).Info(LogMsgGlobalGrabberFull)
		report.CollectorsFull++
		report.abort(ReasonCollectorFull)
		collector.RefreshContentsFlag()
		return report
	}

	for _, loc := range s.world.Locations {
		var grabbables []domain.TileCoord
		for _, tile := range loc.ObjectTiles() {
			if r.IsForage(loc.ObjectAt(tile)) {
				grabbables = append(grabbables, tile)
			}
		}

		if fold.String(loc.Name) == fold.String(t.Collection.OnionLocation) {
			for _, tile := range loc.FeatureTiles() {
				if c.IsFull() {
					return aborted()
				}
				if f := loc.FeatureAt(tile); f.Kind == world.FeatureSoil {
					report.record(loc.Name, r.SpringOnion(ctx, f.Soil, stream, c))
				}
			}
		}

		if _, inSeason := t.Bush.Window(s.world.Season); inSeason {
			for _, tile := range loc.FeatureTiles() {
				f := loc.FeatureAt(tile)
				if f.Kind != world.FeatureBush {
					continue
				}
				if c.IsFull() {
					return aborted()
				}
				report.record(loc.Name, r.Bush(ctx, f.Bush, s.world.Season, s.world.DayOfMonth, stream, c))
			}
		}

		for _, tile := range grabbables {
			if c.IsFull() {
				return aborted()
			}
			report.record(loc.Name, r.Forage(ctx, loc, tile, stream, c))
		}

		if cfg.DoHarvestFarmCave && loc.IsFarmCave {
			for _, tile := range loc.ObjectTiles() {
				if c.IsFull() {
					return aborted()
				}
				report.record(loc.Name, r.CaveProduce(ctx, loc.ObjectAt(tile), c))
			}
		}

		s.logSummary(ctx, report, loc.Name, true)
		collector.RefreshContentsFlag()
	}
	return report
}

// globalCollector resolves the configured global collector. When logMisconfig
// is set, a missing location or collector is logged once with a suggestion.
func (s *service) globalCollector(ctx context.Context, mapName string, tile domain.TileCoord, logMisconfig bool) (*world.Object, string) {
	log := logger.FromContext(ctx)

	loc, ok := s.world.LocationByName(mapName)
	if !ok {
		if logMisconfig {
			args := []any{}
			if suggestion, found := naming.Suggest(mapName, s.world.LocationNames()); found {
				args = append(args, "suggestion", suggestion)
			}
			log.Info(fmt.Sprintf(LogMsgInvalidForageMap, mapName), args...)
		}
		return nil, ReasonInvalidMap
	}

	obj := loc.ObjectAt(tile)
	if !obj.IsCollector() {
		if logMisconfig {
			log.Info(fmt.Sprintf(LogMsgNoAutoGrabberAt, mapName, tile))
		}
		return nil, ReasonNoCollector
	}
	return obj, ""
}

// forageStream opens the time-seeded stream of a pass and logs its seed
func (s *service) forageStream(ctx context.Context, pass string) rng.Stream {
	stream := s.newStream()
	if seeded, ok := stream.(interface{ Seed() uint64 }); ok {
		logger.FromContext(ctx).Debug(LogMsgForageStream, "pass", pass, "seed", seeded.Seed())
	}
	return stream
}

// logSummary prints the per-location counts at trace level
func (s *service) logSummary(ctx context.Context, report *PassReport, location string, found bool) {
	for _, sum := range report.Summaries {
		if sum.Location != location {
			continue
		}
		for _, line := range sum.Lines() {
			if found {
				logger.Trace(ctx, fmt.Sprintf(LogMsgFound, location, line))
			} else {
				logger.Trace(ctx, fmt.Sprintf(LogMsgAdded, line))
			}
		}
	}
}

func (s *service) allLocations() []*world.Location {
	return append(append([]*world.Location(nil), s.world.Locations...), s.world.Interiors()...)
}

func matchesAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
