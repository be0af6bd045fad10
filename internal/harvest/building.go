package harvest

import (
	"context"
	"strings"

	"github.com/osse101/DeluxeGrabber_Go/internal/container"
	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
	"github.com/osse101/DeluxeGrabber_Go/internal/rng"
	"github.com/osse101/DeluxeGrabber_Go/internal/world"
)

// IsCoopProduct reports whether an object inside an animal building can be collected.
// Big objects qualify only as slime balls.
func (r *Resolver) IsCoopProduct(obj *world.Object) bool {
	if obj == nil || obj.IsCollector() {
		return false
	}
	if obj.BigCraftable {
		return strings.Contains(obj.Name, domain.NameSlimeBall)
	}
	for _, kw := range r.tuning.Collection.CoopKeywords {
		if strings.Contains(obj.Name, kw) {
			return true
		}
	}
	return false
}

// CoopProduct collects an animal product or cracks a slime ball
func (r *Resolver) CoopProduct(ctx context.Context, loc *world.Location, tile domain.TileCoord, daysPlayed int, worldID uint64, c *container.Container) Outcome {
	if c.IsFull() {
		return full
	}
	obj := loc.ObjectAt(tile)
	if !r.IsCoopProduct(obj) {
		return skipped
	}

	var stacks []domain.ItemStack
	if obj.BigCraftable {
		s := rng.ForSlime(tile.X, tile.Y, daysPlayed, worldID)
		stacks = append(stacks, r.catalog.Stack(domain.ItemSlime, r.calc.SlimeCount(s), domain.QualityBase))
		if n := r.calc.PetrifiedSlimeCount(s); n > 0 {
			stacks = append(stacks, r.catalog.Stack(domain.ItemPetrifiedSlime, n, domain.QualityBase))
		}
	} else {
		stacks = append(stacks, obj.AsStack())
	}

	award := &Award{Skill: domain.SkillFarming, Amount: r.tuning.Experience.Coop}
	return r.commit(ctx, c, obj.Name, stacks, award, func() {
		loc.RemoveObject(tile)
	})
}

// IsMushroomBox reports whether an object is the cave produce machine
func IsMushroomBox(obj *world.Object) bool {
	return obj != nil && obj.BigCraftable && obj.ItemID == domain.ItemMushroomBox
}

// CaveProduce moves the produce held by a mushroom box into the container
func (r *Resolver) CaveProduce(ctx context.Context, obj *world.Object, c *container.Container) Outcome {
	if c.IsFull() {
		return full
	}
	if !IsMushroomBox(obj) || obj.Held == nil {
		return skipped
	}

	stack := obj.Held.AsStack()
	return r.commit(ctx, c, stack.Name, []domain.ItemStack{stack}, nil, func() {
		obj.Held = nil
	})
}
