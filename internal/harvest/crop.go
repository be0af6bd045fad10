package harvest

import (
	"context"

	"github.com/osse101/DeluxeGrabber_Go/internal/container"
	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
	"github.com/osse101/DeluxeGrabber_Go/internal/quality"
	"github.com/osse101/DeluxeGrabber_Go/internal/rng"
	"github.com/osse101/DeluxeGrabber_Go/internal/world"
)

// Crop resolves the crop in a soil tile using the tile's stream for the day
func (r *Resolver) Crop(ctx context.Context, soil *world.Soil, tile domain.TileCoord, daysPlayed int, worldID uint64, c *container.Container) Outcome {
	return r.CropWithStream(ctx, soil, rng.ForCrop(tile.X, tile.Y, daysPlayed, worldID), c)
}

// CropWithStream resolves a crop with an explicit stream.
// The stream is only consulted once the crop is known to be ready.
func (r *Resolver) CropWithStream(ctx context.Context, soil *world.Soil, s rng.Stream, c *container.Container) Outcome {
	if c.IsFull() {
		return full
	}
	if soil == nil || soil.Crop == nil {
		return skipped
	}
	crop := soil.Crop
	if crop.Dead || crop.ForageCrop || crop.HarvestItemID == 0 {
		return skipped
	}
	if !r.opts.HarvestFlowers && r.tuning.Crop.IsFlower(crop.HarvestItemID) {
		return skipped
	}
	if !crop.Ready() {
		return skipped
	}

	sk := r.Skills()
	q := r.calc.CropQuality(sk, r.tuning.Crop.FertilizerBoost(soil.Fertilizer), s)
	amount := r.calc.CropQuantity(sk, quality.CropYield{
		MinHarvest:       crop.MinHarvest,
		MaxHarvest:       crop.MaxHarvest,
		PerLevelIncrease: crop.PerLevelIncrease,
		ExtraChance:      crop.ExtraChance,
	}, s)

	var stacks []domain.ItemStack
	xpItem := crop.HarvestItemID
	if crop.HarvestMethod == domain.HarvestByScythe {
		stacks = append(stacks, r.catalog.Stack(crop.HarvestItemID, amount, q))
	} else {
		first := r.catalog.Stack(crop.HarvestItemID, 1, q)
		if crop.Colored {
			first.Color = crop.TintColor
		}
		stacks = append(stacks, first)

		if r.calc.DoubleHarvest(sk, s) {
			amount *= 2
		}
		if crop.HarvestItemID == domain.ItemSunflower {
			xpItem = domain.ItemSunflowerSeeds
			amount = r.calc.SunflowerSeedCount(s)
		}
		if amount > 1 {
			stacks = append(stacks, r.catalog.Stack(xpItem, amount-1, domain.QualityBase))
		}
	}

	award := &Award{Skill: domain.SkillFarming, Amount: r.calc.CropExperience(r.catalog.Price(xpItem))}
	return r.commit(ctx, c, r.catalog.Name(crop.HarvestItemID), stacks, award, func() {
		if crop.Regrows() {
			crop.DayOfCurrentPhase = crop.RegrowAfterHarvest
			crop.FullyGrown = true
			return
		}
		soil.Crop = nil
	})
}
