package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "objects.added")
const (
	// EventTypeDayStarted is published after the clock advances and before the passes run
	EventTypeDayStarted = "day.started"

	// EventTypeObjectsAdded is the world-mutation notification: objects appeared in a location
	EventTypeObjectsAdded = "objects.added"

	// EventTypeCollectionCompleted is published once per finished collection pass
	EventTypeCollectionCompleted = "collection.completed"

	// EventTypeExperienceAwarded is published when the actor gains skill experience
	EventTypeExperienceAwarded = "experience.awarded"

	// EventTypeSkillLevelUp is published when an experience award raises a skill level
	EventTypeSkillLevelUp = "skill.level_up"
)

// Pass names, used in reports, logs and metric labels
const (
	PassBuildings = "buildings"
	PassCrops     = "crops"
	PassWorld     = "world"
	PassTruffles  = "truffles"
)
