package harvest

// Log messages
const (
	LogMsgGrabbed         = "Grabbed item"
	LogMsgPlacementFailed = "Item could not be placed, leaving it in the world"
)
