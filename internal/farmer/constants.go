package farmer

// Log messages
const (
	LogMsgLevelUp       = "Skill level up"
	LogMsgPublishFailed = "Failed to publish actor event"
)
