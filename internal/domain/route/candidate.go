package route

import (
	"math"
	"time"
)

// Candidate is a synthesized route option. It is not a navigable path.
type Candidate struct {
	ID               int          `json:"id"`
	Name             Style        `json:"name"`
	DistanceKm       int          `json:"distance"`
	TrafficLevel     TrafficLevel `json:"traffic_level"`
	Description      string       `json:"description"`
	EstimatedMinutes int          `json:"estimated_time"`
	CreatedAt        time.Time    `json:"timestamp"`
}

type template struct {
	style       Style
	factor      float64
	traffic     TrafficLevel
	description string
}

// Distance bands, in km of straight-line distance.
const (
	shortHaulKm  = 50
	mediumHaulKm = 200
)

var (
	shortHaul = []template{
		{StyleCity, 0.9, TrafficHigh, "Through city center"},
		{StyleHighway, 1.1, TrafficMedium, "Via ring road"},
		{StyleScenic, 1.3, TrafficLow, "Scenic route"},
	}
	mediumHaul = []template{
		{StyleHighway, 0.95, TrafficMedium, "Via national highway"},
		{StyleCity, 1.05, TrafficHigh, "Through cities"},
		{StyleScenic, 1.2, TrafficLow, "Scenic countryside route"},
	}
	longHaul = []template{
		{StyleHighway, 0.98, TrafficLow, "Via expressway"},
		{StyleScenic, 1.15, TrafficLow, "Scenic route"},
		{StyleCity, 1.1, TrafficMedium, "Mixed route"},
	}
)

// Synthesize builds the three candidates for a straight-line distance. Estimated
// times are left at zero for the Estimator to fill in.
func Synthesize(straightLineKm float64, now time.Time) []Candidate {
	templates := longHaul
	switch {
	case straightLineKm < shortHaulKm:
		templates = shortHaul
	case straightLineKm < mediumHaulKm:
		templates = mediumHaul
	}

	candidates := make([]Candidate, len(templates))
	for i, t := range templates {
		candidates[i] = Candidate{
			ID:           i + 1,
			Name:         t.style,
			DistanceKm:   int(math.Round(straightLineKm * t.factor)),
			TrafficLevel: t.traffic,
			Description:  t.description,
			CreatedAt:    now,
		}
	}
	return candidates
}

// FindCandidate returns the candidate with the given ID.
func FindCandidate(candidates []Candidate, id int) (Candidate, bool) {
	for _, c := range candidates {
		if c.ID == id {
			return c, true
		}
	}
	return Candidate{}, false
}
