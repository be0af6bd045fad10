package domain

import "fmt"

// Quality represents the quality tier of an item stack.
// Values match the host's ordinal tiers; tier 3 is unused.
type Quality int

const (
	QualityBase   Quality = 0 // basic
	QualityMedium Quality = 1 // silver
	QualityHigh   Quality = 2 // gold
	QualityBest   Quality = 4 // iridium
)

var qualityNames = map[Quality]string{
	QualityBase:   "basic",
	QualityMedium: "silver",
	QualityHigh:   "gold",
	QualityBest:   "iridium",
}

// String returns the display name of the tier ("basic", "silver", "gold", "iridium")
func (q Quality) String() string {
	if name, ok := qualityNames[q]; ok {
		return name
	}
	return fmt.Sprintf("quality(%d)", int(q))
}

// Valid reports whether q is one of the known tiers
func (q Quality) Valid() bool {
	_, ok := qualityNames[q]
	return ok
}

// ItemStack is a quantity of one item at one quality.
// Color is only set for tinted flowers; stacks with different colors never merge.
type ItemStack struct {
	ItemID   int     `json:"item_id" yaml:"item_id"`
	Name     string  `json:"name" yaml:"name"`
	Quantity int     `json:"quantity" yaml:"quantity"`
	Quality  Quality `json:"quality" yaml:"quality"`
	Color    string  `json:"color,omitempty" yaml:"color,omitempty"`
}

// CanStackWith reports whether two stacks may share a container slot
func (s ItemStack) CanStackWith(other ItemStack) bool {
	return s.ItemID == other.ItemID && s.Quality == other.Quality && s.Color == other.Color
}

// String formats the stack the way grab trace lines do: "3x gold Egg"
func (s ItemStack) String() string {
	return fmt.Sprintf("%dx %s %s", s.Quantity, s.Quality, s.Name)
}
