package bid

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Limits carries the operational constants the greedy builder enforces.
// It is passed by value so tests can tighten or relax individual limits
// without touching any process-wide state.
type Limits struct {
	// MaxMonthlyBlockHours is the legal-ish monthly flying ceiling.
	MaxMonthlyBlockHours float64
	// MinRestHours extends every pairing interval forward before the
	// pairwise overlap test.
	MinRestHours int
	// MonthDays approximates the month length for the days-off stat.
	MonthDays int
	// ScoreFloor excludes candidates scored below it even when they fit,
	// e.g. an avoided-airport violation.
	ScoreFloor int
}

// DefaultLimits returns the production limits: 88 block hours a month,
// 10 hours minimum rest, a 30-day month and a -100 score floor.
func DefaultLimits() Limits {
	return Limits{
		MaxMonthlyBlockHours: 88.0,
		MinRestHours:         10,
		MonthDays:            30,
		ScoreFloor:           -100,
	}
}

// strategy is one of the three fixed plan configurations. augment derives
// the effective preference list the plan is ranked with; the original list
// still drives the hard date-off blocks.
type strategy struct {
	name        string
	description string
	augment     func(prefs []Preference) []Preference
}

var strategies = []strategy{
	{
		name:        "Plan A: Max Earnings",
		description: "Prioritizes high block-hour trips to maximize pay, filling the schedule up to legal limits.",
		augment: func(prefs []Preference) []Preference {
			if HasPreferenceOfType(prefs, TypeStrategyMoney) {
				return prefs
			}
			return append(clonePrefs(prefs), Preference{
				ID: "plan-money", Type: TypeStrategyMoney, Value: "true", Label: "Max Earnings",
			})
		},
	},
	{
		name:        "Plan B: Lifestyle & Comfort",
		description: "Prioritizes shorter trips and user preferences like specific routes or time windows.",
		augment: func(prefs []Preference) []Preference {
			if HasPreferenceOfType(prefs, TypeMaxDuration) {
				return prefs
			}
			return append(clonePrefs(prefs), Preference{
				ID: "plan-short-trips", Type: TypeMaxDuration, Value: "3", Label: "Short Trips",
			})
		},
	},
	{
		name:        "Plan C: Weekends Free",
		description: "Attempts to keep Saturdays and Sundays free where possible.",
		augment: func(prefs []Preference) []Preference {
			return append(clonePrefs(prefs),
				Preference{ID: "plan-sunday", Type: TypeDayOfWeekOff, Value: "0", Label: "Sunday"},
				Preference{ID: "plan-saturday", Type: TypeDayOfWeekOff, Value: "6", Label: "Saturday"},
			)
		},
	},
}

// GenerateSchedules builds the three fixed candidate schedules from the
// pairing pool. An empty pool yields an empty slice, not three empty plans.
func GenerateSchedules(pairings []Pairing, preferences []Preference, limits Limits) []GeneratedSchedule {
	if len(pairings) == 0 {
		return nil
	}

	schedules := make([]GeneratedSchedule, 0, len(strategies))
	for _, strat := range strategies {
		effective := strat.augment(preferences)
		schedules = append(schedules, buildSchedule(pairings, effective, preferences, strat, limits))
	}
	return schedules
}

// buildSchedule runs the shared greedy pass for one strategy. Candidates
// are walked in score order; each is skipped (never aborting the pass)
// when it breaks a hard constraint. The builder intentionally stays a
// first-fit greedy selection, not an optimal packer.
func buildSchedule(pairings []Pairing, effective, original []Preference, strat strategy, limits Limits) GeneratedSchedule {
	candidates := Rank(pairings, effective)

	// Hard date blocks come from the caller's own preferences only, so a
	// plan's synthetic day-off rules influence score but never exclude.
	blockedDates := blockedDatesFrom(original)
	restBuffer := time.Duration(limits.MinRestHours) * time.Hour

	var selected []ScoredPairing
	blockHours := 0.0

	for _, candidate := range candidates {
		if blockHours+candidate.BlockHoursDecimal > limits.MaxMonthlyBlockHours {
			continue
		}
		if touchesBlockedDate(candidate.Pairing, blockedDates) {
			continue
		}
		if overlapsAny(candidate.Pairing, selected, restBuffer) {
			continue
		}
		if candidate.Score < limits.ScoreFloor {
			continue
		}

		selected = append(selected, candidate)
		blockHours += candidate.BlockHoursDecimal
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].DepartureTime.Before(selected[j].DepartureTime)
	})

	workDays := make(map[string]struct{})
	for _, p := range selected {
		for _, day := range flightDays(p.DepartureTime, p.ArrivalTime) {
			workDays[day.Format(dateOffLayout)] = struct{}{}
		}
	}
	daysOff := limits.MonthDays - len(workDays)
	if daysOff < 0 {
		daysOff = 0
	}

	return GeneratedSchedule{
		ID:          scheduleID(strat.name),
		Name:        strat.name,
		Description: strat.description,
		Pairings:    selected,
		Stats: ScheduleStats{
			TotalBlockHours: math.Round(blockHours*100) / 100,
			TotalDaysOff:    daysOff,
			FlightCount:     len(selected),
		},
	}
}

// overlapsAny reports whether the candidate interval, with both intervals
// extended forward by the rest buffer, collides with any selected pairing.
func overlapsAny(candidate Pairing, selected []ScoredPairing, rest time.Duration) bool {
	for _, s := range selected {
		if candidate.DepartureTime.Before(s.ArrivalTime.Add(rest)) &&
			candidate.ArrivalTime.Add(rest).After(s.DepartureTime) {
			return true
		}
	}
	return false
}

func blockedDatesFrom(preferences []Preference) []time.Time {
	var dates []time.Time
	for _, pref := range preferences {
		if pref.Type != TypeSpecificDateOff {
			continue
		}
		if date, err := time.Parse(dateOffLayout, strings.TrimSpace(pref.Value)); err == nil {
			dates = append(dates, date)
		}
	}
	return dates
}

func touchesBlockedDate(p Pairing, blocked []time.Time) bool {
	if len(blocked) == 0 {
		return false
	}
	for _, day := range flightDays(p.DepartureTime, p.ArrivalTime) {
		for _, b := range blocked {
			if sameDay(day, b) {
				return true
			}
		}
	}
	return false
}

func clonePrefs(prefs []Preference) []Preference {
	out := make([]Preference, len(prefs))
	copy(out, prefs)
	return out
}

// scheduleID derives a URL-safe identifier from the plan name, e.g.
// "Plan A: Max Earnings" becomes "plan-a-max-earnings".
func scheduleID(name string) string {
	id := strings.ToLower(name)
	id = strings.ReplaceAll(id, ":", "")
	id = strings.ReplaceAll(id, "&", "and")
	return strings.Join(strings.Fields(id), "-")
}
