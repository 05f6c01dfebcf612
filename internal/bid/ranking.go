package bid

import "sort"

// Rank scores every pairing against the preference list and returns the
// result sorted by score, highest first. The sort is stable: pairings with
// equal scores keep their input order. Rank is pure — it never mutates its
// inputs and has no side effects, so repeated calls with the same snapshot
// produce identical output.
func Rank(pairings []Pairing, preferences []Preference) []ScoredPairing {
	rules := compileRules(preferences)

	scored := make([]ScoredPairing, 0, len(pairings))
	for _, pairing := range pairings {
		days := flightDays(pairing.DepartureTime, pairing.ArrivalTime)

		score := 0
		var matches []string
		seen := make(map[string]struct{})

		// Every rule applies independently; rules are additive, never
		// mutually exclusive or short-circuiting.
		for _, r := range rules {
			delta, tag := r.apply(pairing, days)
			score += delta
			if tag == "" {
				continue
			}
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			matches = append(matches, tag)
		}

		scored = append(scored, ScoredPairing{
			Pairing: pairing,
			Score:   score,
			Matches: matches,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
