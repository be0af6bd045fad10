package domain

import "strings"

// Item ids referenced directly by the collection rules
const (
	ItemSlime             = 766
	ItemPetrifiedSlime    = 557
	ItemSpringOnion       = 399
	ItemTruffle           = 430
	ItemSunflower         = 421
	ItemSunflowerSeeds    = 431
	ItemSalmonberry       = 296
	ItemBlackberry        = 410
	ItemMushroomBox       = 128 // big object
	ItemBasicFertilizer   = 368
	ItemQualityFertilizer = 369
)

// Item names used for name-based matching
const (
	NameTruffle   = "Truffle"
	NameSlimeBall = "Slime Ball"
)

// ForageCropSpringOnion is the forage-crop sub-kind of wild spring onions
const ForageCropSpringOnion = 1

// HarvestMethod distinguishes hand-picked crops from scythe crops
type HarvestMethod int

const (
	HarvestByHand   HarvestMethod = 0
	HarvestByScythe HarvestMethod = 1
)

// NoRegrowth marks a crop that is removed after harvest
const NoRegrowth = -1

// Skill identifies an actor skill
type Skill string

const (
	SkillFarming  Skill = "farming"
	SkillForaging Skill = "foraging"
)

// Trait is an unlocked actor trait (profession)
type Trait string

const (
	// TraitBotanist makes every foraged item best quality
	TraitBotanist Trait = "botanist"
	// TraitGatherer grants a geometric bonus to foraged stacks
	TraitGatherer Trait = "gatherer"
)

// Season of the world calendar
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// Seasons in calendar order
var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

// ParseSeason converts a season name, ignoring case
func ParseSeason(s string) (Season, bool) {
	for _, season := range Seasons {
		if strings.EqualFold(string(season), s) {
			return season, true
		}
	}
	return "", false
}

// Next returns the season that follows s
func (s Season) Next() Season {
	for i, season := range Seasons {
		if season == s {
			return Seasons[(i+1)%len(Seasons)]
		}
	}
	return SeasonSpring
}

// DaysPerSeason is the length of one season in days
const DaysPerSeason = 28
