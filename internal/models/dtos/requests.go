package dtos

// AddPreferenceRequest creates one bidding rule. ID is assigned server-side.
type AddPreferenceRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// AssistantAskRequest is a free-text question over the ranked pairings.
type AssistantAskRequest struct {
	Question string `json:"question"`
}

// ShareScheduleRequest mints a read-only link for one generated plan.
type ShareScheduleRequest struct {
	ScheduleID string `json:"schedule_id"`
}

// PairingFilter narrows the pairing pool before ranking. Zero values mean
// "no constraint"; these are the client-side hard filters of the UI.
type PairingFilter struct {
	AircraftTypes []string
	MaxDuration   int
	MinBlockHours float64
	SearchQuery   string
	StartDate     string
	EndDate       string
}
