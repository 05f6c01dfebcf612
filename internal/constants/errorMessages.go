package constants

// Service error codes surfaced through the API envelope.
const (
	ErrCodeRosterRejected    = "ROSTER_REJECTED"
	ErrCodeRosterEmpty       = "ROSTER_EMPTY"
	ErrCodePreferenceInvalid = "PREFERENCE_INVALID"
	ErrCodePreferenceMissing = "PREFERENCE_NOT_FOUND"
	ErrCodeAssistantDown     = "ASSISTANT_UNAVAILABLE"
	ErrCodeShareInvalid      = "SHARE_LINK_INVALID"
	ErrCodeNetworkError      = "NETWORK_ERROR"
	ErrCodeInvalidDataFormat = "INVALID_DATA_FORMAT"
)

var errorMessages = map[string]string{
	ErrCodeRosterRejected:    "The roster file could not be parsed. Please ensure it follows the bid package CSV format.",
	ErrCodeRosterEmpty:       "No valid pairings were found in the uploaded roster.",
	ErrCodePreferenceInvalid: "The preference type or value is not valid.",
	ErrCodePreferenceMissing: "No preference exists with that id.",
	ErrCodeAssistantDown:     "Something went wrong with the AI service.",
	ErrCodeShareInvalid:      "This schedule link is invalid or has already been used.",
	ErrCodeNetworkError:      "An upstream service could not be reached.",
	ErrCodeInvalidDataFormat: "The request payload is malformed.",
}

// GetErrorMessage resolves a code to its user-facing message.
func GetErrorMessage(code string) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An unexpected error occurred."
}
