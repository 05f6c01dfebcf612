package bid

// PreferenceType enumerates the closed set of preference kinds the ranking
// engine understands. Unknown values are ignored during scoring.
type PreferenceType string

const (
	TypeRoute           PreferenceType = "ROUTE"
	TypeTimeWindow      PreferenceType = "TIME_WINDOW"
	TypeMaxDuration     PreferenceType = "MAX_DURATION"
	TypeAvoidAirport    PreferenceType = "AVOID_AIRPORT"
	TypeSpecificDateOff PreferenceType = "SPECIFIC_DATE_OFF"
	TypeDayOfWeekOff    PreferenceType = "DAY_OF_WEEK_OFF"
	TypeStrategyMoney   PreferenceType = "STRATEGY_MONEY"
	TypeAvoidRedEye     PreferenceType = "AVOID_RED_EYE"
	TypeMaxLegsPerDay   PreferenceType = "MAX_LEGS_PER_DAY"
)

// KnownPreferenceTypes lists every accepted preference kind, in display order.
var KnownPreferenceTypes = []PreferenceType{
	TypeRoute,
	TypeTimeWindow,
	TypeMaxDuration,
	TypeAvoidAirport,
	TypeSpecificDateOff,
	TypeDayOfWeekOff,
	TypeStrategyMoney,
	TypeAvoidRedEye,
	TypeMaxLegsPerDay,
}

// IsKnownPreferenceType reports whether t is part of the closed enum.
func IsKnownPreferenceType(t PreferenceType) bool {
	for _, known := range KnownPreferenceTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Preference is one user-managed bidding rule. Value is a string whose
// encoding depends on Type: hour window "6-14" for TIME_WINDOW, weekday
// digit "0".."6" for DAY_OF_WEEK_OFF, ISO date "2025-10-11" for
// SPECIFIC_DATE_OFF, integer for MAX_DURATION / MAX_LEGS_PER_DAY, airport
// or station text for ROUTE / AVOID_AIRPORT. Label is display-only.
type Preference struct {
	ID    string         `json:"id"`
	Type  PreferenceType `json:"type"`
	Value string         `json:"value"`
	Label string         `json:"label"`
}

// HasPreferenceOfType reports whether prefs contains at least one entry of
// the given type. Used by the schedule strategies to avoid double-injecting
// synthetic preferences the user already supplied.
func HasPreferenceOfType(prefs []Preference, t PreferenceType) bool {
	for _, p := range prefs {
		if p.Type == t {
			return true
		}
	}
	return false
}
