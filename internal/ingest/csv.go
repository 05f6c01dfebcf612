package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"pilotbid/bidboard/internal/bid"
	"pilotbid/bidboard/internal/logging"
)

// rosterTimeLayout matches the bid package export, e.g. "Oct 12,2025 12:15".
const rosterTimeLayout = "Jan 02,2006 15:04"

// Expected roster CSV columns.
const (
	colPairing     = "Pairing"
	colPreAssigned = "Pre-assigned"
	colDuration    = "Duration"
	colAircraft    = "AC"
	colDeparture   = "Departure"
	colArrival     = "Arrival"
	colDetails     = "Pairing details"
	colBlockHours  = "Block hours"
)

// Result summarizes one roster import pass.
type Result struct {
	Pairings []bid.Pairing
	Skipped  int
}

// ParseRoster reads the monthly pairing CSV. Rows with missing or
// unparsable timestamps are skipped, not fatal; the count of skipped rows
// is reported back so the caller can surface it. A file whose header is
// missing the required columns is rejected outright.
func ParseRoster(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colPairing, colDuration, colDeparture, colArrival, colDetails, colBlockHours} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("roster CSV missing required column %q", required)
		}
	}

	result := &Result{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		departure, depErr := time.Parse(rosterTimeLayout, field(colDeparture))
		arrival, arrErr := time.Parse(rosterTimeLayout, field(colArrival))
		if depErr != nil || arrErr != nil || !arrival.After(departure) {
			result.Skipped++
			continue
		}

		duration, err := strconv.Atoi(field(colDuration))
		if err != nil || duration < 1 {
			result.Skipped++
			continue
		}

		details := field(colDetails)
		blockHours := field(colBlockHours)

		result.Pairings = append(result.Pairings, bid.Pairing{
			PairingNumber:     field(colPairing),
			PreAssigned:       field(colPreAssigned),
			Duration:          duration,
			AircraftType:      field(colAircraft),
			DepartureTime:     departure,
			ArrivalTime:       arrival,
			Details:           details,
			BlockHours:        blockHours,
			BlockHoursDecimal: ParseBlockHours(blockHours),
			Layovers:          ExtractLayovers(details),
		})
	}

	if result.Skipped > 0 {
		logging.Warn("Roster import skipped rows", "skipped", result.Skipped, "imported", len(result.Pairings))
	}
	return result, nil
}

// ParseBlockHours converts "HH:MM" into decimal hours ("12:30" -> 12.5).
// Unparsable input yields 0.
func ParseBlockHours(value string) float64 {
	if value == "" {
		return 0
	}
	parts := strings.SplitN(value, ":", 2)
	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0
	}
	minutes := 0
	if len(parts) == 2 {
		if m, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			minutes = m
		}
	}
	return float64(hours) + float64(minutes)/60
}

// ExtractLayovers returns the unique stations of a route string like
// "PTY - SMR -PTY -LIM -PTY", in first-appearance order.
func ExtractLayovers(details string) []string {
	var stations []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(details, "-") {
		station := strings.TrimSpace(part)
		if station == "" {
			continue
		}
		if _, dup := seen[station]; dup {
			continue
		}
		seen[station] = struct{}{}
		stations = append(stations, station)
	}
	return stations
}
