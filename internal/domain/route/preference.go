package route

import (
	"cmp"
	"slices"
)

// Preference selects how candidates are ordered for display.
type Preference string

const (
	PreferFastest      Preference = "fastest"
	PreferShortest     Preference = "shortest"
	PreferScenic       Preference = "scenic"
	PreferAvoidTraffic Preference = "avoid-traffic"
)

// IsValid returns true for a known preference. Unknown preferences keep generation order.
func (p Preference) IsValid() bool {
	switch p {
	case PreferFastest, PreferShortest, PreferScenic, PreferAvoidTraffic:
		return true
	}
	return false
}

// Sort orders candidates in place. All orderings are stable.
func Sort(candidates []Candidate, p Preference) {
	switch p {
	case PreferFastest:
		slices.SortStableFunc(candidates, func(a, b Candidate) int {
			return cmp.Compare(a.EstimatedMinutes, b.EstimatedMinutes)
		})
	case PreferShortest:
		slices.SortStableFunc(candidates, func(a, b Candidate) int {
			return cmp.Compare(a.DistanceKm, b.DistanceKm)
		})
	case PreferScenic:
		slices.SortStableFunc(candidates, func(a, b Candidate) int {
			return cmp.Compare(scenicRank(a), scenicRank(b))
		})
	case PreferAvoidTraffic:
		slices.SortStableFunc(candidates, func(a, b Candidate) int {
			return cmp.Compare(a.TrafficLevel.Rank(), b.TrafficLevel.Rank())
		})
	}
}

func scenicRank(c Candidate) int {
	if c.Name == StyleScenic {
		return 0
	}
	return 1
}
