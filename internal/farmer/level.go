package farmer

// levelThresholds[i] is the total experience needed to reach level i+1
var levelThresholds = []int{100, 380, 770, 1300, 2150, 3300, 4800, 6900, 10000, 15000}

// MaxLevel is the highest skill level
const MaxLevel = 10

// LevelForExperience returns the skill level reached with xp total experience
func LevelForExperience(xp int) int {
	level := 0
	for _, threshold := range levelThresholds {
		if xp < threshold {
			break
		}
		level++
	}
	return level
}

// ExperienceForLevel returns the total experience needed for a level
func ExperienceForLevel(level int) int {
	if level <= 0 {
		return 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return levelThresholds[level-1]
}
