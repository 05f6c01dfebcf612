package ingest

import (
	"strings"
	"testing"
)

const sampleRoster = `Pairing,Pre-assigned,Duration,AC,Departure,Arrival,Pairing details,Block hours
P4501,,3,B738,"Oct 10,2025 08:15","Oct 12,2025 18:40",PTY - MIA - PTY,12:30
P4502,YES,1,B738,"Oct 14,2025 06:00","Oct 14,2025 19:10",PTY - SMR -PTY -LIM -PTY,08:45
P4503,,2,A320,not a date,"Oct 16,2025 10:00",PTY - SCL - PTY,10:00
P4504,,2,A320,"Oct 20,2025 07:00","Oct 21,2025 16:20",PTY - JFK - PTY,09:15
`

func TestParseRoster(t *testing.T) {
	result, err := ParseRoster(strings.NewReader(sampleRoster))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(result.Pairings) != 3 {
		t.Fatalf("Expected 3 pairings, got %d", len(result.Pairings))
	}
	if result.Skipped != 1 {
		t.Errorf("Expected 1 skipped row, got %d", result.Skipped)
	}

	first := result.Pairings[0]
	if first.PairingNumber != "P4501" {
		t.Errorf("Expected P4501, got %s", first.PairingNumber)
	}
	if first.BlockHoursDecimal != 12.5 {
		t.Errorf("Expected 12:30 -> 12.5, got %v", first.BlockHoursDecimal)
	}
	if first.DepartureTime.Day() != 10 || first.ArrivalTime.Day() != 12 {
		t.Errorf("Unexpected timestamps: %v -> %v", first.DepartureTime, first.ArrivalTime)
	}
	if first.Duration != 3 || first.AircraftType != "B738" {
		t.Errorf("Unexpected row fields: %+v", first)
	}

	second := result.Pairings[1]
	if second.PreAssigned != "YES" {
		t.Errorf("Expected pre-assigned flag, got %q", second.PreAssigned)
	}
	if len(second.Layovers) != 3 {
		t.Errorf("Expected 3 unique stations, got %v", second.Layovers)
	}
}

func TestParseRosterMissingColumn(t *testing.T) {
	_, err := ParseRoster(strings.NewReader("Pairing,Duration\nP1,2\n"))
	if err == nil {
		t.Error("Expected error for missing required columns")
	}
}

func TestParseRosterArrivalBeforeDepartureSkipped(t *testing.T) {
	csv := `Pairing,Pre-assigned,Duration,AC,Departure,Arrival,Pairing details,Block hours
P1,,2,B738,"Oct 12,2025 18:00","Oct 10,2025 08:00",PTY - MIA - PTY,10:00
`
	result, err := ParseRoster(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.Pairings) != 0 || result.Skipped != 1 {
		t.Errorf("Expected inverted interval to be skipped, got %d/%d", len(result.Pairings), result.Skipped)
	}
}

func TestParseBlockHours(t *testing.T) {
	cases := map[string]float64{
		"12:30": 12.5,
		"08:45": 8.75,
		"10:00": 10,
		"":      0,
		"junk":  0,
	}
	for input, want := range cases {
		if got := ParseBlockHours(input); got != want {
			t.Errorf("ParseBlockHours(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestExtractLayovers(t *testing.T) {
	stations := ExtractLayovers("PTY - SMR -PTY -LIM -PTY")
	if len(stations) != 3 {
		t.Fatalf("Expected 3 unique stations, got %v", stations)
	}
	if stations[0] != "PTY" || stations[1] != "SMR" || stations[2] != "LIM" {
		t.Errorf("Unexpected station order: %v", stations)
	}
}
