package geo

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultCoordinate is returned for addresses the gazetteer does not know.
var DefaultCoordinate = Coordinate{Lat: 20.5937, Lng: 78.9629}

var metroCities = []string{"mumbai", "delhi", "bangalore", "hyderabad", "chennai", "kolkata", "pune"}

var pairPattern = regexp.MustCompile(`^\s*(-?\d+(?:\.\d+)?)\s*,\s*(-?\d+(?:\.\d+)?)\s*$`)

type city struct {
	name  string
	coord Coordinate
}

// MatchKind tells how an address was resolved.
type MatchKind string

const (
	MatchExact      MatchKind = "exact"
	MatchCoordinate MatchKind = "coordinate"
	MatchPartial    MatchKind = "partial"
	MatchFallback   MatchKind = "fallback"
)

// Resolution is the outcome of resolving a free-text address.
type Resolution struct {
	Coordinate Coordinate `json:"coordinate"`
	Match      MatchKind  `json:"match"`
	City       string     `json:"city,omitempty"`
}

// Fallback reports whether the address was not recognized.
func (r Resolution) Fallback() bool {
	return r.Match == MatchFallback
}

// Gazetteer resolves free-text addresses against an ordered city table.
type Gazetteer struct {
	entries  []city
	index    map[string]Coordinate
	fallback Coordinate
}

// NewGazetteer returns a gazetteer over the built-in city table.
func NewGazetteer() *Gazetteer {
	index := make(map[string]Coordinate, len(cities))
	for _, c := range cities {
		if _, exists := index[c.name]; !exists {
			index[c.name] = c.coord
		}
	}
	return &Gazetteer{entries: cities, index: index, fallback: DefaultCoordinate}
}

// Resolve never fails: unknown addresses resolve to DefaultCoordinate with MatchFallback.
func (g *Gazetteer) Resolve(address string) Resolution {
	needle := strings.ToLower(strings.TrimSpace(address))

	if coord, ok := g.index[needle]; ok {
		return Resolution{Coordinate: coord, Match: MatchExact, City: needle}
	}
	if coord, ok := ParsePair(needle); ok {
		return Resolution{Coordinate: coord, Match: MatchCoordinate}
	}
	if needle != "" {
		for _, c := range g.entries {
			if strings.Contains(needle, c.name) || strings.Contains(c.name, needle) {
				return Resolution{Coordinate: c.coord, Match: MatchPartial, City: c.name}
			}
		}
	}
	return Resolution{Coordinate: g.fallback, Match: MatchFallback}
}

// Len returns the number of known cities.
func (g *Gazetteer) Len() int {
	return len(g.entries)
}

// ParsePair parses a "lat, lng" literal.
func ParsePair(s string) (Coordinate, bool) {
	m := pairPattern.FindStringSubmatch(s)
	if m == nil {
		return Coordinate{}, false
	}
	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Coordinate{}, false
	}
	lng, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Coordinate{}, false
	}
	c := Coordinate{Lat: lat, Lng: lng}
	if !c.Valid() {
		return Coordinate{}, false
	}
	return c, true
}

// IsMetro reports whether label mentions one of the congested metro cities.
func IsMetro(label string) bool {
	lower := strings.ToLower(label)
	for _, m := range metroCities {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
