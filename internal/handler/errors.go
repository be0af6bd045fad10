package handler

// Client-facing error messages. Internal error details are not exposed.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgUnavailableError      = "Server is temporarily unavailable. Please try again later."
	ErrMsgMissingPathParam      = "Missing %s path parameter"
)

// Operation names used in logs
const (
	OpMovePlayer         = "Move player"
	OpSetForagerLocation = "Set forager location"
	OpAdvanceDay         = "Advance day"
	OpPlaceObjects       = "Place objects"
)

// Log messages
const (
	LogMsgEncodeFailed  = "Failed to encode JSON response"
	LogMsgWriteFailed   = "Failed to write response buffer"
	LogMsgDecodeFailed  = "Failed to decode %s request"
	LogMsgDecoded       = "%s request decoded"
	LogMsgRequestFields = "Request details"
)

// Success messages
const (
	MsgForagerLocationSet = "Global forager location saved"
	MsgDayAdvanced        = "Day advanced"
	MsgObjectsPlaced      = "Objects placed"
)
