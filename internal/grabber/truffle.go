package grabber

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
	"github.com/osse101/DeluxeGrabber_Go/internal/event"
	"github.com/osse101/DeluxeGrabber_Go/internal/harvest"
	"github.com/osse101/DeluxeGrabber_Go/internal/logger"
	"github.com/osse101/DeluxeGrabber_Go/internal/world"
)

// HandleObjectsAdded picks up truffles the moment they appear on the farm.
// The global collector is preferred; otherwise the first collector in the
// same location is used.
func (s *service) HandleObjectsAdded(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.ObjectsAddedPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf("%w: objects added payload: %w", domain.ErrInvalidInput, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.settings.Get()
	if !cfg.DoHarvestTruffles {
		return nil
	}
	if !strings.EqualFold(payload.Location, s.world.Tuning().Collection.FarmLocation) {
		return nil
	}
	loc, ok := s.world.LocationByName(payload.Location)
	if !ok {
		return nil
	}

	var truffles []domain.TileCoord
	for _, added := range payload.Objects {
		if strings.EqualFold(added.Name, domain.NameTruffle) && harvest.IsTruffle(loc.ObjectAt(added.Tile)) {
			truffles = append(truffles, added.Tile)
		}
	}
	if len(truffles) == 0 {
		return nil
	}

	collector := s.truffleCollector(ctx, cfg.GlobalForageMap, cfg.ForagerTile(), loc)
	if collector == nil {
		logger.Trace(ctx, LogMsgNoGrabberFound, "location", loc.Name)
		return nil
	}

	start := time.Now()
	report := newPassReport(domain.PassTruffles)
	r := s.resolverFor(cfg)
	stream := s.forageStream(ctx, domain.PassTruffles)
	c := collector.Container

	logger.Trace(ctx, LogMsgTrufflesGrabbed, "count", len(truffles))
	for _, tile := range truffles {
		if c.IsFull() {
			report.CollectorsFull++
			report.abort(ReasonCollectorFull)
			break
		}
		report.record(loc.Name, r.Truffle(ctx, loc, tile, stream, c))
	}
	collector.RefreshContentsFlag()

	report.finish(start)
	s.complete(ctx, logger.GetRunID(ctx), report)
	return nil
}

func (s *service) truffleCollector(ctx context.Context, mapName string, tile domain.TileCoord, loc *world.Location) *world.Object {
	if global, _ := s.globalCollector(ctx, mapName, tile, false); global != nil {
		return global
	}
	_, local, ok := loc.FirstCollector()
	if !ok {
		return nil
	}
	return local
}
