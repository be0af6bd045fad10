package world

import (
	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
	"github.com/osse101/DeluxeGrabber_Go/internal/tuning"
)

// FeatureKind tags the variant held by a Feature
type FeatureKind int

const (
	FeatureSoil FeatureKind = iota
	FeatureFruitTree
	FeatureBush
)

func (k FeatureKind) String() string {
	switch k {
	case FeatureSoil:
		return "soil"
	case FeatureFruitTree:
		return "fruit_tree"
	case FeatureBush:
		return "bush"
	}
	return "unknown"
}

// Feature is a terrain feature. Exactly one pointer matching Kind is set.
type Feature struct {
	Kind      FeatureKind
	Soil      *Soil
	FruitTree *FruitTree
	Bush      *Bush
}

// NewSoilFeature wraps soil as a feature
func NewSoilFeature(s *Soil) *Feature {
	return &Feature{Kind: FeatureSoil, Soil: s}
}

// NewFruitTreeFeature wraps a fruit tree as a feature
func NewFruitTreeFeature(t *FruitTree) *Feature {
	return &Feature{Kind: FeatureFruitTree, FruitTree: t}
}

// NewBushFeature wraps a bush as a feature
func NewBushFeature(b *Bush) *Feature {
	return &Feature{Kind: FeatureBush, Bush: b}
}

// Soil is tilled ground that may hold a crop
type Soil struct {
	Fertilizer int   // fertilizer item id, 0 when none
	Crop       *Crop // nil when empty
}

// Crop is a growable entity planted in soil
type Crop struct {
	CurrentPhase       int
	PhaseDays          []int
	FullyGrown         bool
	DayOfCurrentPhase  int
	HarvestItemID      int
	MinHarvest         int
	MaxHarvest         int
	PerLevelIncrease   int
	ExtraChance        float64
	RegrowAfterHarvest int // domain.NoRegrowth when the crop is removed on harvest
	HarvestMethod      domain.HarvestMethod
	Colored            bool
	TintColor          string
	Dead               bool
	ForageCrop         bool
	ForageKind         int
}

// Ready reports whether the crop is harvestable this tick: it sits in its
// terminal phase and either has never been harvested or has finished regrowing.
func (c *Crop) Ready() bool {
	return c.CurrentPhase >= len(c.PhaseDays)-1 && (!c.FullyGrown || c.DayOfCurrentPhase <= 0)
}

// Regrows reports whether the crop survives harvest
func (c *Crop) Regrows() bool {
	return c.RegrowAfterHarvest != domain.NoRegrowth
}

// FruitTree holds fruit once mature
type FruitTree struct {
	GrowthStage        int
	Fruits             int
	DaysUntilMature    int // negative once mature, more negative is older
	LightningCountdown int
	FruitItemID        int
}

// BushSize distinguishes bush variants; only medium bushes bear berries
type BushSize int

const (
	BushSmall BushSize = iota
	BushMedium
	BushLarge
)

// Bush is a specialty berry bush
type Bush struct {
	Size       BushSize
	HasBerries bool
}

// InBloom reports whether the bush produces berries on the given day
func (b *Bush) InBloom(season domain.Season, dayOfMonth int, t tuning.Bush) bool {
	if b.Size != BushMedium {
		return false
	}
	w, ok := t.Window(season)
	return ok && w.Contains(dayOfMonth)
}
