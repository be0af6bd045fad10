// Package quality implements the yield and quality rolls.
// Every function is pure apart from the draws it takes from the given stream.
package quality

import (
	"math"

	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
	"github.com/osse101/DeluxeGrabber_Go/internal/rng"
	"github.com/osse101/DeluxeGrabber_Go/internal/tuning"
)

// Skills is the read-only actor snapshot the rolls depend on
type Skills struct {
	FarmingLevel  int
	ForagingLevel int
	Botanist      bool
	Gatherer      bool
	LuckLevel     int
	DailyLuck     float64
}

// CropYield holds the yield fields of a crop
type CropYield struct {
	MinHarvest       int
	MaxHarvest       int
	PerLevelIncrease int
	ExtraChance      float64
}

// Calculator provides the quality and quantity rules (no world dependencies)
type Calculator struct {
	t tuning.Tuning
}

// NewCalculator creates a calculator over the given tunables
func NewCalculator(t tuning.Tuning) *Calculator {
	return &Calculator{t: t}
}

// ForageQuality rolls the tier of a foraged item.
// Botanist short-circuits without drawing; otherwise the silver draw is taken only when gold fails.
func (c *Calculator) ForageQuality(sk Skills, s rng.Stream) domain.Quality {
	if sk.Botanist {
		return domain.QualityBest
	}
	level := float64(sk.ForagingLevel)
	if s.Float64() < level/c.t.Forage.GoldLevelDivisor {
		return domain.QualityHigh
	}
	if s.Float64() < level/c.t.Forage.SilverLevelDivisor {
		return domain.QualityMedium
	}
	return domain.QualityBase
}

// ForageStackBonus returns the gatherer bonus added to a foraged stack
func (c *Calculator) ForageStackBonus(sk Skills, s rng.Stream) int {
	if !sk.Gatherer {
		return 0
	}
	return rng.Geometric(s, c.t.Forage.GathererChance)
}

// CropGoldChance is the gold chance for a farming level and fertilizer boost
func (c *Calculator) CropGoldChance(farmingLevel, fertilizerBoost int) float64 {
	ct := c.t.Crop
	level := float64(farmingLevel)
	return ct.GoldLevelWeight*(level/ct.GoldLevelDivisor) +
		ct.FertilizerWeight*float64(fertilizerBoost)*((level+ct.FertilizerLevelOffset)/ct.FertilizerLevelDivisor) +
		ct.GoldBase
}

// CropSilverChance derives the silver chance from the gold chance, clamped to the cap
func (c *Calculator) CropSilverChance(goldChance float64) float64 {
	return math.Min(c.t.Crop.SilverCap, c.t.Crop.SilverMultiplier*goldChance)
}

// CropQuality rolls the tier of a harvested crop
func (c *Calculator) CropQuality(sk Skills, fertilizerBoost int, s rng.Stream) domain.Quality {
	gold := c.CropGoldChance(sk.FarmingLevel, fertilizerBoost)
	if s.Float64() < gold {
		return domain.QualityHigh
	}
	if s.Float64() < c.CropSilverChance(gold) {
		return domain.QualityMedium
	}
	return domain.QualityBase
}

// CropQuantity rolls the harvest count: a level-adjusted range draw for
// multi-yield crops followed by the extra-crop geometric bonus.
func (c *Calculator) CropQuantity(sk Skills, y CropYield, s rng.Stream) int {
	amount := 1
	if y.MinHarvest > 1 || y.MaxHarvest > 1 {
		perLevel := y.PerLevelIncrease
		if perLevel <= 0 {
			perLevel = 1
		}
		hi := max(y.MinHarvest+1, y.MaxHarvest+1+sk.FarmingLevel/perLevel)
		amount = s.IntRange(y.MinHarvest, hi)
	}
	if y.ExtraChance > 0 {
		amount += rng.Geometric(s, math.Min(c.t.Crop.ExtraChanceCap, y.ExtraChance))
	}
	return amount
}

// DoubleHarvest reports whether the luck roll doubles a hand-picked harvest
func (c *Calculator) DoubleHarvest(sk Skills, s rng.Stream) bool {
	ct := c.t.Crop
	chance := float64(sk.LuckLevel)/ct.LuckDivisor + sk.DailyLuck/ct.DailyLuckDivisor + ct.DoubleBase
	return s.Float64() < chance
}

// SunflowerSeedCount re-rolls the count once a sunflower converts into seeds
func (c *Calculator) SunflowerSeedCount(s rng.Stream) int {
	return s.IntRange(c.t.Crop.SunflowerSeedsMin, c.t.Crop.SunflowerSeedsMax)
}

// FruitQuality maps tree age to a tier. A lightning penalty forces base quality.
func (c *Calculator) FruitQuality(daysUntilMature, struckByLightning int) domain.Quality {
	if struckByLightning > 0 {
		return domain.QualityBase
	}
	ft := c.t.FruitTree
	switch {
	case daysUntilMature <= ft.BestThreshold:
		return domain.QualityBest
	case daysUntilMature <= ft.GoldThreshold:
		return domain.QualityHigh
	case daysUntilMature <= ft.SilverThreshold:
		return domain.QualityMedium
	}
	return domain.QualityBase
}

// BerryCount is the number of berries picked from one bush
func (c *Calculator) BerryCount(sk Skills) int {
	return 1 + sk.FarmingLevel/c.t.Bush.FarmingLevelDivisor
}

// SlimeCount rolls the slime stack taken from a slime ball
func (c *Calculator) SlimeCount(s rng.Stream) int {
	return s.IntRange(c.t.Slime.Min, c.t.Slime.Max)
}

// PetrifiedSlimeCount rolls the bonus petrified slime from a slime ball
func (c *Calculator) PetrifiedSlimeCount(s rng.Stream) int {
	return rng.Geometric(s, c.t.Slime.PetrifiedChance)
}

// CropExperience is the farming experience for harvesting an item of the given price
func (c *Calculator) CropExperience(price int) int {
	xp := c.t.Experience.CropBase * math.Log(c.t.Experience.CropPriceFactor*float64(price)+1)
	return int(math.Round(xp))
}
