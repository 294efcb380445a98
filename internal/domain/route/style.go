package route

import "fmt"

// Style is the flavour of a synthesized route.
type Style string

const (
	StyleHighway Style = "Highway"
	StyleCity    Style = "City"
	StyleScenic  Style = "Scenic"
)

// baseSpeedsKmh are free-flow speeds per style; unknown styles use defaultSpeedKmh.
var baseSpeedsKmh = map[Style]float64{
	StyleHighway: 60,
	StyleCity:    25,
	StyleScenic:  40,
}

const defaultSpeedKmh = 35.0

// BaseSpeedKmh returns the free-flow speed for the style.
func (s Style) BaseSpeedKmh() float64 {
	if v, ok := baseSpeedsKmh[s]; ok {
		return v
	}
	return defaultSpeedKmh
}

// TrafficLevel is a three-point ordinal congestion scale.
type TrafficLevel string

const (
	TrafficLow    TrafficLevel = "low"
	TrafficMedium TrafficLevel = "medium"
	TrafficHigh   TrafficLevel = "high"
)

var trafficMultipliers = map[TrafficLevel]float64{
	TrafficLow:    0.8,
	TrafficMedium: 1.2,
	TrafficHigh:   1.8,
}

var trafficRanks = map[TrafficLevel]int{
	TrafficLow:    1,
	TrafficMedium: 2,
	TrafficHigh:   3,
}

// IsValid returns true if the level is recognized.
func (t TrafficLevel) IsValid() bool {
	_, ok := trafficRanks[t]
	return ok
}

// Multiplier scales travel time; unknown levels do not scale.
func (t TrafficLevel) Multiplier() float64 {
	if v, ok := trafficMultipliers[t]; ok {
		return v
	}
	return 1
}

// Rank orders levels low < medium < high. Unknown levels sort last.
func (t TrafficLevel) Rank() int {
	if v, ok := trafficRanks[t]; ok {
		return v
	}
	return len(trafficRanks) + 1
}

// ParseTrafficLevel converts a string to a TrafficLevel.
func ParseTrafficLevel(s string) (TrafficLevel, error) {
	level := TrafficLevel(s)
	if !level.IsValid() {
		return "", fmt.Errorf("invalid traffic level: %s", s)
	}
	return level, nil
}
