package world

import "github.com/osse101/DeluxeGrabber_Go/internal/domain"

// AdvanceDay moves the calendar forward one day and grows every entity.
func (w *World) AdvanceDay() {
	w.DaysPlayed++
	w.DayOfMonth++
	if w.DayOfMonth > domain.DaysPerSeason {
		w.DayOfMonth = 1
		w.Season = w.Season.Next()
	}

	for _, l := range w.allLocations() {
		for _, tile := range l.FeatureTiles() {
			f := l.Features[tile]
			switch f.Kind {
			case FeatureSoil:
				growCrop(f.Soil)
			case FeatureFruitTree:
				w.growFruitTree(f.FruitTree)
			case FeatureBush:
				f.Bush.HasBerries = f.Bush.InBloom(w.Season, w.DayOfMonth, w.tuning.Bush)
			}
		}
		for _, tile := range l.ObjectTiles() {
			if pot := l.Objects[tile].Pot; pot != nil {
				growCrop(pot)
			}
		}
	}
}

func (w *World) allLocations() []*Location {
	return append(append([]*Location{}, w.Locations...), w.Interiors()...)
}

func growCrop(s *Soil) {
	if s == nil || s.Crop == nil || s.Crop.Dead {
		return
	}
	c := s.Crop
	last := len(c.PhaseDays) - 1
	switch {
	case c.FullyGrown:
		if c.DayOfCurrentPhase > 0 {
			c.DayOfCurrentPhase--
		}
	case c.CurrentPhase < last:
		c.DayOfCurrentPhase++
		if c.DayOfCurrentPhase >= c.PhaseDays[c.CurrentPhase] {
			c.CurrentPhase++
			c.DayOfCurrentPhase = 0
		}
	}
}

func (w *World) growFruitTree(t *FruitTree) {
	ft := w.tuning.FruitTree
	t.DaysUntilMature--
	if t.LightningCountdown > 0 {
		t.LightningCountdown--
	}
	if t.DaysUntilMature <= 0 && t.GrowthStage < ft.MatureStage {
		t.GrowthStage = ft.MatureStage
	}
	if t.GrowthStage >= ft.MatureStage && t.Fruits < ft.MaxFruit {
		t.Fruits++
	}
}
