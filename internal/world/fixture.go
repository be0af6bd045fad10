package world

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
	"github.com/osse101/DeluxeGrabber_Go/internal/tuning"
)

// Fixture is the YAML layout of a world file
type Fixture struct {
	WorldID    uint64            `yaml:"world_id"`
	DaysPlayed int               `yaml:"days_played"`
	Season     string            `yaml:"season"`
	DayOfMonth int               `yaml:"day_of_month"`
	Locations  []LocationFixture `yaml:"locations"`
}

type LocationFixture struct {
	Name       string             `yaml:"name"`
	FarmCave   bool               `yaml:"farm_cave"`
	Objects    []ObjectFixture    `yaml:"objects"`
	Soil       []SoilFixture      `yaml:"soil"`
	FruitTrees []FruitTreeFixture `yaml:"fruit_trees"`
	Bushes     []BushFixture      `yaml:"bushes"`
	Buildings  []BuildingFixture  `yaml:"buildings"`
}

type ObjectFixture struct {
	X         int                `yaml:"x"`
	Y         int                `yaml:"y"`
	ItemID    int                `yaml:"item_id"`
	Name      string             `yaml:"name"`
	Stack     int                `yaml:"stack"`
	Quality   domain.Quality     `yaml:"quality"`
	Collector bool               `yaml:"collector"`
	Big       bool               `yaml:"big"`
	Forage    bool               `yaml:"forage"`
	Held      *ObjectFixture     `yaml:"held"`
	Pot       *SoilFixture       `yaml:"pot"`
	Contents  []domain.ItemStack `yaml:"contents"`
}

type SoilFixture struct {
	X          int          `yaml:"x"`
	Y          int          `yaml:"y"`
	Fertilizer int          `yaml:"fertilizer"`
	Crop       *CropFixture `yaml:"crop"`
}

type CropFixture struct {
	Phase       int     `yaml:"phase"`
	PhaseDays   []int   `yaml:"phase_days"`
	FullyGrown  bool    `yaml:"fully_grown"`
	DayOfPhase  int     `yaml:"day_of_phase"`
	HarvestID   int     `yaml:"harvest_id"`
	MinHarvest  int     `yaml:"min_harvest"`
	MaxHarvest  int     `yaml:"max_harvest"`
	PerLevel    int     `yaml:"per_level"`
	ExtraChance float64 `yaml:"extra_chance"`
	Regrow      *int    `yaml:"regrow"`
	Scythe      bool    `yaml:"scythe"`
	Color       string  `yaml:"color"`
	Dead        bool    `yaml:"dead"`
	ForageCrop  bool    `yaml:"forage_crop"`
	ForageKind  int     `yaml:"forage_kind"`
}

type FruitTreeFixture struct {
	X               int `yaml:"x"`
	Y               int `yaml:"y"`
	Stage           int `yaml:"stage"`
	Fruits          int `yaml:"fruits"`
	DaysUntilMature int `yaml:"days_until_mature"`
	Lightning       int `yaml:"lightning"`
	FruitID         int `yaml:"fruit_id"`
}

type BushFixture struct {
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	Size    string `yaml:"size"`
	Berries bool   `yaml:"berries"`
}

type BuildingFixture struct {
	Type    string          `yaml:"type"`
	X       int             `yaml:"x"`
	Y       int             `yaml:"y"`
	Indoors LocationFixture `yaml:"indoors"`
}

// Load reads a world fixture file
func Load(path string, t tuning.Tuning) (*World, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world file: %w", err)
	}
	return Decode(raw, t)
}

// Decode builds a world from fixture YAML
func Decode(raw []byte, t tuning.Tuning) (*World, error) {
	var f Fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("world.yaml: %w", err)
	}

	w := New(f.WorldID, t)
	if f.DaysPlayed > 0 {
		w.DaysPlayed = f.DaysPlayed
	}
	if f.Season != "" {
		season, ok := domain.ParseSeason(f.Season)
		if !ok {
			return nil, fmt.Errorf("%w: unknown season %q", domain.ErrInvalidInput, f.Season)
		}
		w.Season = season
	}
	if f.DayOfMonth > 0 {
		if f.DayOfMonth > domain.DaysPerSeason {
			return nil, fmt.Errorf("%w: day_of_month %d", domain.ErrInvalidInput, f.DayOfMonth)
		}
		w.DayOfMonth = f.DayOfMonth
	}

	for _, lf := range f.Locations {
		l, err := w.buildLocation(lf)
		if err != nil {
			return nil, err
		}
		w.AddLocation(l)
	}
	return w, nil
}

func (w *World) buildLocation(lf LocationFixture) (*Location, error) {
	l := NewLocation(lf.Name)
	l.IsFarmCave = lf.FarmCave

	for _, of := range lf.Objects {
		obj, err := w.BuildObject(of)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", lf.Name, domain.Tile(of.X, of.Y), err)
		}
		l.SetObject(domain.Tile(of.X, of.Y), obj)
	}
	for _, sf := range lf.Soil {
		l.SetFeature(domain.Tile(sf.X, sf.Y), NewSoilFeature(sf.build()))
	}
	for _, tf := range lf.FruitTrees {
		l.SetFeature(domain.Tile(tf.X, tf.Y), NewFruitTreeFeature(&FruitTree{
			GrowthStage:        tf.Stage,
			Fruits:             tf.Fruits,
			DaysUntilMature:    tf.DaysUntilMature,
			LightningCountdown: tf.Lightning,
			FruitItemID:        tf.FruitID,
		}))
	}
	for _, bf := range lf.Bushes {
		l.SetFeature(domain.Tile(bf.X, bf.Y), NewBushFeature(&Bush{
			Size:       parseBushSize(bf.Size),
			HasBerries: bf.Berries,
		}))
	}
	for _, bf := range lf.Buildings {
		indoors, err := w.buildLocation(bf.Indoors)
		if err != nil {
			return nil, err
		}
		if indoors.Name == "" {
			indoors.Name = fmt.Sprintf("%s%d%d", bf.Type, bf.X, bf.Y)
		}
		l.Buildings = append(l.Buildings, &Building{Type: bf.Type, Tile: domain.Tile(bf.X, bf.Y), Indoors: indoors})
	}
	return l, nil
}

// BuildObject converts a fixture object, creating the container of collectors
func (w *World) BuildObject(of ObjectFixture) (*Object, error) {
	var obj *Object
	if of.Collector {
		obj = w.NewCollector(of.ItemID, of.Name)
		if !obj.Container.Load(of.Contents) {
			return nil, fmt.Errorf("%w: collector contents exceed capacity", domain.ErrInvalidInput)
		}
		obj.RefreshContentsFlag()
	} else {
		obj = &Object{
			ItemID:       of.ItemID,
			Name:         of.Name,
			Stack:        max(of.Stack, 1),
			Quality:      of.Quality,
			BigCraftable: of.Big,
			Forage:       of.Forage,
		}
	}
	if of.Held != nil {
		held, err := w.BuildObject(*of.Held)
		if err != nil {
			return nil, err
		}
		obj.Held = held
	}
	if of.Pot != nil {
		obj.Pot = of.Pot.build()
	}
	return obj, nil
}

func (sf SoilFixture) build() *Soil {
	s := &Soil{Fertilizer: sf.Fertilizer}
	if c := sf.Crop; c != nil {
		regrow := domain.NoRegrowth
		if c.Regrow != nil {
			regrow = *c.Regrow
		}
		method := domain.HarvestByHand
		if c.Scythe {
			method = domain.HarvestByScythe
		}
		s.Crop = &Crop{
			CurrentPhase:       c.Phase,
			PhaseDays:          c.PhaseDays,
			FullyGrown:         c.FullyGrown,
			DayOfCurrentPhase:  c.DayOfPhase,
			HarvestItemID:      c.HarvestID,
			MinHarvest:         c.MinHarvest,
			MaxHarvest:         c.MaxHarvest,
			PerLevelIncrease:   c.PerLevel,
			ExtraChance:        c.ExtraChance,
			RegrowAfterHarvest: regrow,
			HarvestMethod:      method,
			Colored:            c.Color != "",
			TintColor:          c.Color,
			Dead:               c.Dead,
			ForageCrop:         c.ForageCrop,
			ForageKind:         c.ForageKind,
		}
	}
	return s
}

func parseBushSize(s string) BushSize {
	switch s {
	case "small":
		return BushSmall
	case "large":
		return BushLarge
	}
	return BushMedium
}
