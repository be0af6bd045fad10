// Package farmer is the actor whose skills drive quality and yield rolls.
package farmer

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
	"github.com/osse101/DeluxeGrabber_Go/internal/event"
	"github.com/osse101/DeluxeGrabber_Go/internal/logger"
)

// Profile is the persisted actor state, read from the "actor" key of a world file
type Profile struct {
	FarmingXP  int            `yaml:"farming_xp" json:"farming_xp"`
	ForagingXP int            `yaml:"foraging_xp" json:"foraging_xp"`
	Traits     []domain.Trait `yaml:"traits" json:"traits"`
	LuckLevel  int            `yaml:"luck_level" json:"luck_level"`
	DailyLuck  float64        `yaml:"daily_luck" json:"daily_luck"`
	Location   string         `yaml:"location" json:"location"`
	X          int            `yaml:"x" json:"x"`
	Y          int            `yaml:"y" json:"y"`
}

// Snapshot is a read-only view of the actor
type Snapshot struct {
	Profile
	FarmingLevel  int `json:"farming_level"`
	ForagingLevel int `json:"foraging_level"`
}

// Farmer is the actor. Experience awards publish events on the bus.
type Farmer struct {
	mu         sync.RWMutex
	experience map[domain.Skill]int
	traits     map[domain.Trait]bool
	luckLevel  int
	dailyLuck  float64
	location   string
	tile       domain.TileCoord
	bus        event.Bus
}

// New creates an actor from a profile. bus may be nil.
func New(p Profile, bus event.Bus) *Farmer {
	f := &Farmer{
		experience: map[domain.Skill]int{
			domain.SkillFarming:  p.FarmingXP,
			domain.SkillForaging: p.ForagingXP,
		},
		traits:    make(map[domain.Trait]bool, len(p.Traits)),
		luckLevel: p.LuckLevel,
		dailyLuck: p.DailyLuck,
		location:  p.Location,
		tile:      domain.Tile(p.X, p.Y),
		bus:       bus,
	}
	for _, t := range p.Traits {
		f.traits[t] = true
	}
	return f
}

// LoadProfile reads the actor section of a world file. A file without one yields a zero profile.
func LoadProfile(path string) (Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read actor profile: %w", err)
	}
	var doc struct {
		Actor Profile `yaml:"actor"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Profile{}, fmt.Errorf("actor profile: %w", err)
	}
	return doc.Actor, nil
}

// SkillLevel returns the current level of a skill
func (f *Farmer) SkillLevel(skill domain.Skill) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return LevelForExperience(f.experience[skill])
}

// Experience returns the total experience of a skill
func (f *Farmer) Experience(skill domain.Skill) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.experience[skill]
}

// HasTrait reports whether a trait is unlocked
func (f *Farmer) HasTrait(t domain.Trait) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.traits[t]
}

// LuckLevel returns the luck buff level
func (f *Farmer) LuckLevel() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.luckLevel
}

// DailyLuck returns today's luck modifier
func (f *Farmer) DailyLuck() float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.dailyLuck
}

// SetDailyLuck replaces today's luck modifier
func (f *Farmer) SetDailyLuck(luck float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dailyLuck = luck
}

// GainExperience awards experience to a skill. It publishes an award event and,
// when the level changes, a level-up event.
func (f *Farmer) GainExperience(ctx context.Context, skill domain.Skill, amount int) {
	if amount <= 0 {
		return
	}

	f.mu.Lock()
	oldLevel := LevelForExperience(f.experience[skill])
	f.experience[skill] += amount
	total := f.experience[skill]
	newLevel := LevelForExperience(total)
	f.mu.Unlock()

	if f.bus == nil {
		return
	}
	if err := f.bus.Publish(ctx, event.NewExperienceAwardedEvent(skill, amount, total)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event", event.ExperienceAwarded, "error", err)
	}
	if newLevel > oldLevel {
		logger.FromContext(ctx).Info(LogMsgLevelUp, "skill", skill, "old_level", oldLevel, "new_level", newLevel)
		if err := f.bus.Publish(ctx, event.NewSkillLevelUpEvent(skill, oldLevel, newLevel)); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event", event.SkillLevelUp, "error", err)
		}
	}
}

// Position returns the actor's location name and tile
func (f *Farmer) Position() (string, domain.TileCoord) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.location, f.tile
}

// MoveTo sets the actor's location and tile
func (f *Farmer) MoveTo(location string, tile domain.TileCoord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.location = location
	f.tile = tile
}

// Snapshot returns a copy of the actor state
func (f *Farmer) Snapshot() Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()

	traits := make([]domain.Trait, 0, len(f.traits))
	for _, t := range []domain.Trait{domain.TraitBotanist, domain.TraitGatherer} {
		if f.traits[t] {
			traits = append(traits, t)
		}
	}
	return Snapshot{
		Profile: Profile{
			FarmingXP:  f.experience[domain.SkillFarming],
			ForagingXP: f.experience[domain.SkillForaging],
			Traits:     traits,
			LuckLevel:  f.luckLevel,
			DailyLuck:  f.dailyLuck,
			Location:   f.location,
			X:          f.tile.X,
			Y:          f.tile.Y,
		},
		FarmingLevel:  LevelForExperience(f.experience[domain.SkillFarming]),
		ForagingLevel: LevelForExperience(f.experience[domain.SkillForaging]),
	}
}
