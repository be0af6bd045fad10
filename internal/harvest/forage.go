package harvest

import (
	"context"
	"strings"

	"github.com/osse101/DeluxeGrabber_Go/internal/container"
	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
	"github.com/osse101/DeluxeGrabber_Go/internal/rng"
	"github.com/osse101/DeluxeGrabber_Go/internal/world"
)

// IsForage reports whether a placed object can be collected by the world pass.
// Big objects are never forage.
func (r *Resolver) IsForage(obj *world.Object) bool {
	if obj == nil || obj.BigCraftable || obj.IsCollector() {
		return false
	}
	return obj.Forage || r.tuning.Forage.Allows(obj.ItemID) || r.catalog.IsForage(obj.ItemID)
}

// IsTruffle reports whether an object is a truffle, comparing names case-insensitively
func IsTruffle(obj *world.Object) bool {
	return obj != nil && strings.EqualFold(obj.Name, domain.NameTruffle)
}

// Forage collects a ground item and removes it from the location
func (r *Resolver) Forage(ctx context.Context, loc *world.Location, tile domain.TileCoord, s rng.Stream, c *container.Container) Outcome {
	if c.IsFull() {
		return full
	}
	obj := loc.ObjectAt(tile)
	if !r.IsForage(obj) {
		return skipped
	}
	return r.pickUp(ctx, loc, tile, obj, s, c, r.tuning.Experience.Forage)
}

// Truffle collects a truffle that just appeared on the ground
func (r *Resolver) Truffle(ctx context.Context, loc *world.Location, tile domain.TileCoord, s rng.Stream, c *container.Container) Outcome {
	if c.IsFull() {
		return full
	}
	obj := loc.ObjectAt(tile)
	if !IsTruffle(obj) {
		return skipped
	}
	return r.pickUp(ctx, loc, tile, obj, s, c, r.tuning.Experience.Truffle)
}

func (r *Resolver) pickUp(ctx context.Context, loc *world.Location, tile domain.TileCoord, obj *world.Object, s rng.Stream, c *container.Container, xp int) Outcome {
	sk := r.Skills()
	stack := obj.AsStack()
	stack.Quality = r.calc.ForageQuality(sk, s)
	stack.Quantity += r.calc.ForageStackBonus(sk, s)

	award := &Award{Skill: domain.SkillForaging, Amount: xp}
	return r.commit(ctx, c, obj.Name, []domain.ItemStack{stack}, award, func() {
		loc.RemoveObject(tile)
	})
}

// SpringOnion pulls a wild spring onion out of its soil
func (r *Resolver) SpringOnion(ctx context.Context, soil *world.Soil, s rng.Stream, c *container.Container) Outcome {
	if c.IsFull() {
		return full
	}
	if soil == nil || soil.Crop == nil {
		return skipped
	}
	if !soil.Crop.ForageCrop || soil.Crop.ForageKind != domain.ForageCropSpringOnion {
		return skipped
	}

	sk := r.Skills()
	q := r.calc.ForageQuality(sk, s)
	stack := r.catalog.Stack(domain.ItemSpringOnion, 1+r.calc.ForageStackBonus(sk, s), q)
	award := &Award{Skill: domain.SkillForaging, Amount: r.tuning.Experience.SpringOnion}

	return r.commit(ctx, c, stack.Name, []domain.ItemStack{stack}, award, func() {
		soil.Crop = nil
	})
}
