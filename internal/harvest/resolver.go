// Package harvest resolves one harvestable entity at a time into a container.
//
// Every resolver follows the same contract: it is a no-op when the container
// is already full, and it mutates or removes the source entity only after the
// container accepted every yielded stack.
package harvest

import (
	"context"

	"github.com/osse101/DeluxeGrabber_Go/internal/catalog"
	"github.com/osse101/DeluxeGrabber_Go/internal/container"
	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
	"github.com/osse101/DeluxeGrabber_Go/internal/logger"
	"github.com/osse101/DeluxeGrabber_Go/internal/quality"
	"github.com/osse101/DeluxeGrabber_Go/internal/tuning"
)

// Actor is the actor view the resolvers read from.
// GainExperience is the only effect they ever apply to it.
type Actor interface {
	SkillLevel(skill domain.Skill) int
	HasTrait(trait domain.Trait) bool
	LuckLevel() int
	DailyLuck() float64
	GainExperience(ctx context.Context, skill domain.Skill, amount int)
}

// Options are the settings toggles the resolvers consult
type Options struct {
	HarvestFlowers    bool
	HarvestFruitTrees bool
	GainExperience    bool
}

// Status is the result class of one resolution
type Status int

const (
	// StatusSkipped means nothing was eligible
	StatusSkipped Status = iota
	// StatusFull means the container was full before anything was attempted
	StatusFull
	// StatusHarvested means items were placed and the source was consumed
	StatusHarvested
	// StatusPlacementFailed means the container rejected the yield; the source is untouched
	StatusPlacementFailed
)

func (s Status) String() string {
	switch s {
	case StatusSkipped:
		return "skipped"
	case StatusFull:
		return "full"
	case StatusHarvested:
		return "harvested"
	case StatusPlacementFailed:
		return "placement_failed"
	}
	return "unknown"
}

// Award is an experience grant made by a resolution
type Award struct {
	Skill  domain.Skill
	Amount int
}

// Outcome describes one resolution
type Outcome struct {
	Status Status
	// Label is the name the per-location summary counts this harvest under
	Label string
	Items []domain.ItemStack
	Award *Award
}

// Harvested reports whether items were collected
func (o Outcome) Harvested() bool {
	return o.Status == StatusHarvested
}

var (
	skipped = Outcome{Status: StatusSkipped}
	full    = Outcome{Status: StatusFull}
)

// Resolver holds the rules shared by every harvest category
type Resolver struct {
	calc    *quality.Calculator
	tuning  tuning.Tuning
	catalog *catalog.Catalog
	actor   Actor
	opts    Options
}

// NewResolver creates a resolver
func NewResolver(t tuning.Tuning, cat *catalog.Catalog, actor Actor, opts Options) *Resolver {
	return &Resolver{
		calc:    quality.NewCalculator(t),
		tuning:  t,
		catalog: cat,
		actor:   actor,
		opts:    opts,
	}
}

// WithOptions returns a copy of the resolver using different toggles
func (r *Resolver) WithOptions(opts Options) *Resolver {
	cp := *r
	cp.opts = opts
	return &cp
}

// Skills snapshots the actor for one resolution
func (r *Resolver) Skills() quality.Skills {
	return quality.Skills{
		FarmingLevel:  r.actor.SkillLevel(domain.SkillFarming),
		ForagingLevel: r.actor.SkillLevel(domain.SkillForaging),
		Botanist:      r.actor.HasTrait(domain.TraitBotanist),
		Gatherer:      r.actor.HasTrait(domain.TraitGatherer),
		LuckLevel:     r.actor.LuckLevel(),
		DailyLuck:     r.actor.DailyLuck(),
	}
}

// commit places all stacks atomically and reports the outcome.
// onSuccess runs only when every stack was placed.
func (r *Resolver) commit(ctx context.Context, c *container.Container, label string, stacks []domain.ItemStack, award *Award, onSuccess func()) Outcome {
	if !c.AddAll(stacks) {
		logger.Trace(ctx, LogMsgPlacementFailed, "item", label)
		return Outcome{Status: StatusPlacementFailed, Label: label, Items: stacks}
	}
	onSuccess()
	for _, s := range stacks {
		logger.Trace(ctx, LogMsgGrabbed, "item", s.Name, "quantity", s.Quantity, "quality", s.Quality.String())
	}
	if award != nil && r.opts.GainExperience {
		r.actor.GainExperience(ctx, award.Skill, award.Amount)
	} else {
		award = nil
	}
	return Outcome{Status: StatusHarvested, Label: label, Items: stacks, Award: award}
}
