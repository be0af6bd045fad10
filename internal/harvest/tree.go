package harvest

import (
	"context"

	"github.com/osse101/DeluxeGrabber_Go/internal/container"
	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
	"github.com/osse101/DeluxeGrabber_Go/internal/rng"
	"github.com/osse101/DeluxeGrabber_Go/internal/world"
)

// FruitTree takes every fruit on a mature tree as one stack
func (r *Resolver) FruitTree(ctx context.Context, tree *world.FruitTree, c *container.Container) Outcome {
	if c.IsFull() {
		return full
	}
	if !r.opts.HarvestFruitTrees || tree == nil {
		return skipped
	}
	if tree.GrowthStage < r.tuning.FruitTree.MatureStage || tree.Fruits <= 0 {
		return skipped
	}

	q := r.calc.FruitQuality(tree.DaysUntilMature, tree.LightningCountdown)
	stack := r.catalog.Stack(tree.FruitItemID, tree.Fruits, q)
	award := &Award{Skill: domain.SkillForaging, Amount: r.tuning.Experience.FruitTree}

	return r.commit(ctx, c, stack.Name, []domain.ItemStack{stack}, award, func() {
		tree.Fruits = 0
	})
}

// Bush picks the berries of a blooming bush. Quality follows the forage rule.
func (r *Resolver) Bush(ctx context.Context, bush *world.Bush, season domain.Season, dayOfMonth int, s rng.Stream, c *container.Container) Outcome {
	if c.IsFull() {
		return full
	}
	if bush == nil || !bush.HasBerries {
		return skipped
	}
	window, ok := r.tuning.Bush.Window(season)
	if !ok || !bush.InBloom(season, dayOfMonth, r.tuning.Bush) {
		return skipped
	}

	sk := r.Skills()
	stack := r.catalog.Stack(window.ItemID, r.calc.BerryCount(sk), r.calc.ForageQuality(sk, s))

	return r.commit(ctx, c, stack.Name, []domain.ItemStack{stack}, nil, func() {
		bush.HasBerries = false
	})
}
