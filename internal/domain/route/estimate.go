package route

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/smart-commute/service-commute/internal/domain/geo"
)

const (
	rushHourMultiplier = 1.3
	metroMultiplier    = 1.2
	jitterLow          = 0.9
	jitterSpan         = 0.2
)

// IsRushHour reports whether t falls in the 07:00-10:59 or 17:00-20:59 windows, in t's location.
func IsRushHour(t time.Time) bool {
	h := t.Hour()
	return (h >= 7 && h <= 10) || (h >= 17 && h <= 20)
}

// Breakdown exposes every factor that went into one estimate.
type Breakdown struct {
	SpeedKmh          float64 `json:"speed_kmh"`
	BaseMinutes       float64 `json:"base_minutes"`
	TrafficMultiplier float64 `json:"traffic_multiplier"`
	RushHour          bool    `json:"rush_hour"`
	Metro             bool    `json:"metro"`
	Jitter            float64 `json:"jitter"`
	Minutes           int     `json:"minutes"`
}

// Estimator synthesizes plausible travel times. It is not a traffic model.
type Estimator struct {
	now    func() time.Time
	random func() float64
}

// NewEstimator creates an Estimator. random must return values in [0, 1).
func NewEstimator(now func() time.Time, random func() float64) *Estimator {
	return &Estimator{now: now, random: random}
}

// NewDefaultEstimator uses the wall clock and the global random source.
func NewDefaultEstimator() *Estimator {
	return NewEstimator(time.Now, rand.Float64)
}

// Estimate returns the estimated minutes for c between the two endpoint labels,
// judging rush hour on the estimator clock's own location.
func (e *Estimator) Estimate(c Candidate, startLabel, endLabel string) Breakdown {
	return e.EstimateIn(c, startLabel, endLabel, nil)
}

// EstimateIn is Estimate with rush hour judged on the wall clock of zone.
// A nil zone keeps the clock's location.
func (e *Estimator) EstimateIn(c Candidate, startLabel, endLabel string, zone *time.Location) Breakdown {
	now := e.now()
	if zone != nil {
		now = now.In(zone)
	}
	speed := c.Name.BaseSpeedKmh()
	b := Breakdown{
		SpeedKmh:          speed,
		BaseMinutes:       float64(c.DistanceKm) / speed * 60,
		TrafficMultiplier: c.TrafficLevel.Multiplier(),
		RushHour:          IsRushHour(now),
		Metro:             geo.IsMetro(startLabel) || geo.IsMetro(endLabel),
		Jitter:            jitterLow + e.random()*jitterSpan,
	}

	minutes := b.BaseMinutes * b.TrafficMultiplier
	if b.RushHour {
		minutes *= rushHourMultiplier
	}
	if b.Metro {
		minutes *= metroMultiplier
	}
	b.Minutes = int(math.Round(minutes * b.Jitter))
	if c.DistanceKm > 0 && b.Minutes < 1 {
		b.Minutes = 1
	}
	return b
}

// EstimateAll fills EstimatedMinutes on every candidate in place.
func (e *Estimator) EstimateAll(candidates []Candidate, startLabel, endLabel string) {
	for i := range candidates {
		candidates[i].EstimatedMinutes = e.Estimate(candidates[i], startLabel, endLabel).Minutes
	}
}
