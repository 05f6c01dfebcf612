package bid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Score weights per preference kind. STRATEGY_MONEY is a multiplier on
// block hours; everything else is a flat bonus or penalty.
const (
	WeightStrategyMoney = 2
	WeightRoute         = 30
	WeightTimeWindow    = 20
	WeightMaxDuration   = 15
	WeightMaxLegs       = 15
	WeightAvoidRedEye   = -50
	WeightAvoidAirport  = -100
	WeightDayOfWeekOff  = -40
	WeightWeekdayKept   = 10
	WeightDateOff       = -500
)

// highEarningsThreshold is the block-hour mark above which a trip gets the
// "High Earnings" tag under the money strategy.
const highEarningsThreshold = 15.0

// dateOffLayout is the expected encoding of a SPECIFIC_DATE_OFF value.
const dateOffLayout = "2006-01-02"

// rule is one compiled preference. apply returns the score delta for the
// pairing and an optional match tag (empty string = no tag).
type rule interface {
	apply(p Pairing, days []time.Time) (int, string)
}

// compileRules decodes each preference value into a typed rule exactly
// once. Preferences with unknown types or unparsable values compile to
// nothing: the rule is inapplicable, never an error.
func compileRules(preferences []Preference) []rule {
	rules := make([]rule, 0, len(preferences))
	for _, pref := range preferences {
		switch pref.Type {
		case TypeStrategyMoney:
			rules = append(rules, moneyRule{})
		case TypeRoute:
			if v := strings.TrimSpace(pref.Value); v != "" {
				rules = append(rules, routeRule{station: v})
			}
		case TypeTimeWindow:
			if start, end, ok := parseHourWindow(pref.Value); ok {
				rules = append(rules, timeWindowRule{start: start, end: end})
			}
		case TypeMaxDuration:
			if days, err := strconv.Atoi(strings.TrimSpace(pref.Value)); err == nil {
				rules = append(rules, maxDurationRule{maxDays: days})
			}
		case TypeMaxLegsPerDay:
			if legs, err := strconv.Atoi(strings.TrimSpace(pref.Value)); err == nil {
				rules = append(rules, maxLegsRule{maxLegs: legs})
			}
		case TypeAvoidRedEye:
			rules = append(rules, redEyeRule{})
		case TypeAvoidAirport:
			if v := strings.TrimSpace(pref.Value); v != "" {
				rules = append(rules, avoidAirportRule{airport: v})
			}
		case TypeDayOfWeekOff:
			if day, err := strconv.Atoi(strings.TrimSpace(pref.Value)); err == nil && day >= 0 && day <= 6 {
				rules = append(rules, weekdayOffRule{weekday: time.Weekday(day)})
			}
		case TypeSpecificDateOff:
			if date, err := time.Parse(dateOffLayout, strings.TrimSpace(pref.Value)); err == nil {
				rules = append(rules, dateOffRule{date: date})
			}
		}
	}
	return rules
}

// moneyRule scores proportionally to block hours: more flying, more pay.
type moneyRule struct{}

func (moneyRule) apply(p Pairing, _ []time.Time) (int, string) {
	points := int(math.Round(p.BlockHoursDecimal * WeightStrategyMoney))
	if p.BlockHoursDecimal > highEarningsThreshold {
		return points, "High Earnings ($$$)"
	}
	return points, ""
}

type routeRule struct {
	station string
}

func (r routeRule) apply(p Pairing, _ []time.Time) (int, string) {
	if strings.Contains(strings.ToUpper(p.Details), strings.ToUpper(r.station)) {
		return WeightRoute, fmt.Sprintf("Route includes %s", r.station)
	}
	return 0, ""
}

type timeWindowRule struct {
	start, end int
}

func (r timeWindowRule) apply(p Pairing, _ []time.Time) (int, string) {
	depHour := p.DepartureTime.Hour()
	if depHour >= r.start && depHour <= r.end {
		return WeightTimeWindow, fmt.Sprintf("Departure between %d:00-%d:00", r.start, r.end)
	}
	return 0, ""
}

type maxDurationRule struct {
	maxDays int
}

func (r maxDurationRule) apply(p Pairing, _ []time.Time) (int, string) {
	if p.Duration <= r.maxDays {
		return WeightMaxDuration, fmt.Sprintf("Duration under %d days", r.maxDays)
	}
	return 0, ""
}

// maxLegsRule estimates legs as layovers+1 and averages over the trip
// duration. Kept as a simple average, not a true per-calendar-day count.
type maxLegsRule struct {
	maxLegs int
}

func (r maxLegsRule) apply(p Pairing, _ []time.Time) (int, string) {
	if p.Duration < 1 {
		return 0, ""
	}
	totalLegs := len(p.Layovers) + 1
	legsPerDay := float64(totalLegs) / float64(p.Duration)
	if legsPerDay <= float64(r.maxLegs) {
		return WeightMaxLegs, fmt.Sprintf("Low workload (~%d legs/day)", int(math.Ceil(legsPerDay)))
	}
	return 0, ""
}

// redEyeRule penalizes arrivals between 00:00 and 07:00 inclusive.
type redEyeRule struct{}

func (redEyeRule) apply(p Pairing, _ []time.Time) (int, string) {
	arrHour := p.ArrivalTime.Hour()
	if arrHour >= 0 && arrHour <= 7 {
		return WeightAvoidRedEye, fmt.Sprintf("Red Eye Arrival (%d:00)", arrHour)
	}
	return 0, ""
}

type avoidAirportRule struct {
	airport string
}

func (r avoidAirportRule) apply(p Pairing, _ []time.Time) (int, string) {
	if strings.Contains(strings.ToUpper(p.Details), strings.ToUpper(r.airport)) {
		return WeightAvoidAirport, fmt.Sprintf("Avoids %s (Violated)", r.airport)
	}
	return 0, ""
}

// weekdayOffRule penalizes trips touching the protected weekday and gives
// a small bonus to trips that keep it free, so those bubble up.
type weekdayOffRule struct {
	weekday time.Weekday
}

func (r weekdayOffRule) apply(_ Pairing, days []time.Time) (int, string) {
	for _, day := range days {
		if day.Weekday() == r.weekday {
			return WeightDayOfWeekOff, "Works on a requested Day Off (Violated)"
		}
	}
	return WeightWeekdayKept, "Keeps preferred weekday free"
}

// dateOffRule is the dealbreaker: any overlap with the protected calendar
// date sinks the pairing.
type dateOffRule struct {
	date time.Time
}

func (r dateOffRule) apply(_ Pairing, days []time.Time) (int, string) {
	for _, day := range days {
		if sameDay(day, r.date) {
			return WeightDateOff, fmt.Sprintf("Conflicts with %s (Violated)", r.date.Format("Jan 02"))
		}
	}
	return 0, ""
}

// parseHourWindow decodes "startHour-endHour" (e.g. "6-14").
func parseHourWindow(value string) (int, int, bool) {
	parts := strings.SplitN(strings.TrimSpace(value), "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}
