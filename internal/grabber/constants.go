package grabber

// Abort and skip reasons reported by collection passes
const (
	ReasonDisabled      = "disabled"
	ReasonInvalidMap    = "invalid_map"
	ReasonNoCollector   = "no_collector"
	ReasonCollectorFull = "collector_full"
)

// Log messages
const (
	LogMsgSearchingBuilding = "Searching building for auto-grabber"
	LogMsgNoGrabberFound    = "No grabber found"
	LogMsgGrabberFound      = "Grabber found"
	LogMsgGrabberFull       = "Grabber is full"
	LogMsgGlobalGrabberFull = "Global grabber full"
	LogMsgInvalidForageMap  = "Invalid GlobalForageMap '%s'"
	LogMsgNoAutoGrabberAt   = "No auto-grabber at %s: %s"
	LogMsgAdded             = "  Added %s"
	LogMsgFound             = "  %s - found %s"
	LogMsgPassCompleted     = "Collection pass completed"
	LogMsgDayStarted        = "Day started"
	LogMsgPublishFailed     = "Failed to publish event"
	LogMsgTrufflesGrabbed   = "Grabbing truffles"
	LogMsgPlayerLocation    = "Player location"
	LogMsgForagerLocation   = "Global forager location set"
	LogMsgObjectsPlaced     = "Objects placed"
	LogMsgForageStream      = "Forage stream opened"
)

// dailyLuckRange is the spread of the daily luck roll, centred on zero
const dailyLuckRange = 0.2
