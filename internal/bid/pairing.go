package bid

import "time"

// Pairing is a single multi-day trip from the monthly bid package.
// Instances are created once at ingestion and never mutated.
type Pairing struct {
	PairingNumber     string    `json:"pairingNumber"`
	PreAssigned       string    `json:"preAssigned"`
	Duration          int       `json:"duration"`
	AircraftType      string    `json:"aircraftType"`
	DepartureTime     time.Time `json:"departureTime"`
	ArrivalTime       time.Time `json:"arrivalTime"`
	Details           string    `json:"details"`
	BlockHours        string    `json:"blockHours"`
	BlockHoursDecimal float64   `json:"blockHoursDecimal"`
	Layovers          []string  `json:"layovers"`
}

// ScoredPairing is a Pairing annotated with its preference score and the
// human-readable reasons behind it. Recomputed on every ranking pass.
type ScoredPairing struct {
	Pairing
	Score   int      `json:"score"`
	Matches []string `json:"matches"`
}

// ScheduleStats aggregates the selected pairings of one generated plan.
type ScheduleStats struct {
	TotalBlockHours float64 `json:"totalBlockHours"`
	TotalDaysOff    int     `json:"totalDaysOff"`
	FlightCount     int     `json:"flightCount"`
}

// GeneratedSchedule is one candidate month built by the schedule builder.
type GeneratedSchedule struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Pairings    []ScoredPairing `json:"pairings"`
	Stats       ScheduleStats   `json:"stats"`
}

// flightDays returns every calendar day the trip touches, inclusive of
// both the departure and arrival day.
func flightDays(departure, arrival time.Time) []time.Time {
	start := time.Date(departure.Year(), departure.Month(), departure.Day(), 0, 0, 0, 0, departure.Location())
	end := time.Date(arrival.Year(), arrival.Month(), arrival.Day(), 0, 0, 0, 0, arrival.Location())

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
