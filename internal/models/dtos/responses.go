package dtos

import "pilotbid/bidboard/internal/bid"

// APIResponse is the standard envelope for every JSON endpoint.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
	Data         any    `json:"data,omitempty"`
}

// RosterImportResponse summarizes one accepted CSV upload.
type RosterImportResponse struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Aircraft []string `json:"aircraft"`
}

// RankedPairingsResponse carries one ranking pass over the filtered pool.
type RankedPairingsResponse struct {
	Total     int                 `json:"total"`
	Returned  int                 `json:"returned"`
	Pairings  []bid.ScoredPairing `json:"pairings"`
	Truncated bool                `json:"truncated"`
}

// SchedulesResponse carries the three generated plans.
type SchedulesResponse struct {
	Schedules []bid.GeneratedSchedule `json:"schedules"`
}

// AircraftStatsRow is one aggregate line of the statistics view.
type AircraftStatsRow struct {
	AircraftType    string  `json:"aircraft_type" db:"aircraft_type"`
	PairingCount    int     `json:"pairing_count" db:"pairing_count"`
	TotalBlockHours float64 `json:"total_block_hours" db:"total_block_hours"`
	AvgBlockHours   float64 `json:"avg_block_hours" db:"avg_block_hours"`
	AvgDuration     float64 `json:"avg_duration" db:"avg_duration"`
}

// AssistantResponse is the assistant's prose answer.
type AssistantResponse struct {
	Answer string `json:"answer"`
}

// ShareLinkResponse carries a freshly minted schedule share token.
type ShareLinkResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in_seconds"`
}
