// Package tuning holds the game-balance constants of the collection rules.
// Defaults reproduce the host's behavior; a YAML file may override any subset.
package tuning

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
)

type Tuning struct {
	Forage     Forage     `yaml:"forage"`
	Crop       Crop       `yaml:"crop"`
	FruitTree  FruitTree  `yaml:"fruit_tree"`
	Slime      Slime      `yaml:"slime"`
	Bush       Bush       `yaml:"bush"`
	Experience Experience `yaml:"experience"`
	Collection Collection `yaml:"collection"`
}

type Forage struct {
	GoldLevelDivisor   float64 `yaml:"gold_level_divisor"`
	SilverLevelDivisor float64 `yaml:"silver_level_divisor"`
	GathererChance     float64 `yaml:"gatherer_chance"`
	// Items collected by the world pass besides anything flagged as forage
	AllowList []int `yaml:"allow_list"`
}

type Crop struct {
	GoldLevelWeight        float64     `yaml:"gold_level_weight"`
	GoldLevelDivisor       float64     `yaml:"gold_level_divisor"`
	FertilizerWeight       float64     `yaml:"fertilizer_weight"`
	FertilizerLevelOffset  float64     `yaml:"fertilizer_level_offset"`
	FertilizerLevelDivisor float64     `yaml:"fertilizer_level_divisor"`
	GoldBase               float64     `yaml:"gold_base"`
	SilverMultiplier       float64     `yaml:"silver_multiplier"`
	SilverCap              float64     `yaml:"silver_cap"`
	ExtraChanceCap         float64     `yaml:"extra_chance_cap"`
	LuckDivisor            float64     `yaml:"luck_divisor"`
	DailyLuckDivisor       float64     `yaml:"daily_luck_divisor"`
	DoubleBase             float64     `yaml:"double_base"`
	SunflowerSeedsMin      int         `yaml:"sunflower_seeds_min"`
	SunflowerSeedsMax      int         `yaml:"sunflower_seeds_max"` // exclusive
	Fertilizers            map[int]int `yaml:"fertilizers"`         // item id -> boost
	Flowers                []int       `yaml:"flowers"`
}

type FruitTree struct {
	MatureStage     int `yaml:"mature_stage"`
	SilverThreshold int `yaml:"silver_threshold"`
	GoldThreshold   int `yaml:"gold_threshold"`
	BestThreshold   int `yaml:"best_threshold"`
	MaxFruit        int `yaml:"max_fruit"`
}

type Slime struct {
	Min             int     `yaml:"min"`
	Max             int     `yaml:"max"` // exclusive
	PetrifiedChance float64 `yaml:"petrified_chance"`
}

type Bush struct {
	FarmingLevelDivisor int           `yaml:"farming_level_divisor"`
	Windows             []BloomWindow `yaml:"windows"`
}

// BloomWindow is a season day range (inclusive) in which a berry bush produces ItemID
type BloomWindow struct {
	Season   domain.Season `yaml:"season"`
	FirstDay int           `yaml:"first_day"`
	LastDay  int           `yaml:"last_day"`
	ItemID   int           `yaml:"item_id"`
}

type Experience struct {
	CropBase        float64 `yaml:"crop_base"`
	CropPriceFactor float64 `yaml:"crop_price_factor"`
	FruitTree       int     `yaml:"fruit_tree"`
	SpringOnion     int     `yaml:"spring_onion"`
	Forage          int     `yaml:"forage"`
	Truffle         int     `yaml:"truffle"`
	Coop            int     `yaml:"coop"`
}

type Collection struct {
	ContainerCapacity int      `yaml:"container_capacity"`
	MaxStack          int      `yaml:"max_stack"`
	BuildingTypes     []string `yaml:"building_types"`
	CoopKeywords      []string `yaml:"coop_keywords"`
	OnionLocation     string   `yaml:"onion_location"`
	FarmLocation      string   `yaml:"farm_location"`
}

// Defaults returns the values that match the host game
func Defaults() Tuning {
	return Tuning{
		Forage: Forage{
			GoldLevelDivisor:   30,
			SilverLevelDivisor: 15,
			GathererChance:     0.2,
			AllowList: []int{
				16, 18, 20, 22, 430, 399, 257, 404, 296, 396, 398, 402, 420, 259, 406, 408,
				410, 281, 412, 414, 416, 418, 283, 392, 393, 397, 394, 372, 718, 719, 723,
				78, 90, 88,
			},
		},
		Crop: Crop{
			GoldLevelWeight:        0.2,
			GoldLevelDivisor:       10,
			FertilizerWeight:       0.2,
			FertilizerLevelOffset:  2,
			FertilizerLevelDivisor: 12,
			GoldBase:               0.01,
			SilverMultiplier:       2,
			SilverCap:              0.75,
			ExtraChanceCap:         0.9,
			LuckDivisor:            1500,
			DailyLuckDivisor:       1200,
			DoubleBase:             0.0001,
			SunflowerSeedsMin:      1,
			SunflowerSeedsMax:      4,
			Fertilizers: map[int]int{
				domain.ItemBasicFertilizer:   1,
				domain.ItemQualityFertilizer: 2,
			},
			Flowers: []int{421, 593, 595, 591, 597, 376},
		},
		FruitTree: FruitTree{
			MatureStage:     4,
			SilverThreshold: -112,
			GoldThreshold:   -224,
			BestThreshold:   -336,
			MaxFruit:        3,
		},
		Slime: Slime{
			Min:             10,
			Max:             21,
			PetrifiedChance: 0.33,
		},
		Bush: Bush{
			FarmingLevelDivisor: 4,
			Windows: []BloomWindow{
				{Season: domain.SeasonSpring, FirstDay: 15, LastDay: 18, ItemID: domain.ItemSalmonberry},
				{Season: domain.SeasonFall, FirstDay: 8, LastDay: 11, ItemID: domain.ItemBlackberry},
			},
		},
		Experience: Experience{
			CropBase:        16,
			CropPriceFactor: 0.018,
			FruitTree:       3,
			SpringOnion:     3,
			Forage:          7,
			Truffle:         7,
			Coop:            5,
		},
		Collection: Collection{
			ContainerCapacity: 36,
			MaxStack:          999,
			BuildingTypes:     []string{"Coop", "Slime"},
			CoopKeywords:      []string{"Egg", "Wool", "Foot", "Feather"},
			OnionLocation:     "Forest",
			FarmLocation:      "Farm",
		},
	}
}

// Load reads a YAML file over the defaults. A missing file yields the defaults.
func Load(path string) (Tuning, error) {
	t := Defaults()
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return t, nil
		}
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Validate rejects values that would break the collection rules.
// Geometric loops need a success chance strictly below 1.
func (t Tuning) Validate() error {
	switch {
	case t.Forage.GathererChance < 0 || t.Forage.GathererChance >= 1:
		return fmt.Errorf("%w: forage.gatherer_chance must be in [0,1)", domain.ErrInvalidConfig)
	case t.Slime.PetrifiedChance < 0 || t.Slime.PetrifiedChance >= 1:
		return fmt.Errorf("%w: slime.petrified_chance must be in [0,1)", domain.ErrInvalidConfig)
	case t.Crop.ExtraChanceCap < 0 || t.Crop.ExtraChanceCap >= 1:
		return fmt.Errorf("%w: crop.extra_chance_cap must be in [0,1)", domain.ErrInvalidConfig)
	case t.Forage.GoldLevelDivisor <= 0 || t.Forage.SilverLevelDivisor <= 0:
		return fmt.Errorf("%w: forage level divisors must be positive", domain.ErrInvalidConfig)
	case t.Crop.GoldLevelDivisor <= 0 || t.Crop.FertilizerLevelDivisor <= 0:
		return fmt.Errorf("%w: crop level divisors must be positive", domain.ErrInvalidConfig)
	case t.Bush.FarmingLevelDivisor <= 0:
		return fmt.Errorf("%w: bush.farming_level_divisor must be positive", domain.ErrInvalidConfig)
	case t.Collection.ContainerCapacity <= 0:
		return fmt.Errorf("%w: collection.container_capacity must be positive", domain.ErrInvalidConfig)
	case t.Collection.MaxStack <= 0:
		return fmt.Errorf("%w: collection.max_stack must be positive", domain.ErrInvalidConfig)
	case t.Slime.Max <= t.Slime.Min:
		return fmt.Errorf("%w: slime.max must exceed slime.min", domain.ErrInvalidConfig)
	}
	return nil
}

// IsFlower reports whether itemID is in the flower list
func (c Crop) IsFlower(itemID int) bool {
	for _, id := range c.Flowers {
		if id == itemID {
			return true
		}
	}
	return false
}

// FertilizerBoost maps a soil fertilizer item id to its boost (0 when unknown)
func (c Crop) FertilizerBoost(itemID int) int {
	return c.Fertilizers[itemID]
}

// Allows reports whether itemID is on the forage allow-list
func (f Forage) Allows(itemID int) bool {
	for _, id := range f.AllowList {
		if id == itemID {
			return true
		}
	}
	return false
}

// Window returns the bloom window for a season, if any
func (b Bush) Window(season domain.Season) (BloomWindow, bool) {
	for _, w := range b.Windows {
		if w.Season == season {
			return w, true
		}
	}
	return BloomWindow{}, false
}

// Contains reports whether day falls inside the window
func (w BloomWindow) Contains(day int) bool {
	return day >= w.FirstDay && day <= w.LastDay
}
