// Package analytics keeps the per-commuter usage counters.
package analytics

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/smart-commute/service-commute/internal/domain/route"
)

const (
	// BaselineCommuteMinutes is the reference trip length "time saved" is measured against.
	BaselineCommuteMinutes = 45
	// CarbonKgPerKm is the estimated saving credited per selected kilometre.
	CarbonKgPerKm = 0.12
)

// Counters are the running usage figures. They are persisted after every mutation.
type Counters struct {
	AvgTime         float64 `json:"avgTime"`
	TimeSaved       float64 `json:"timeSaved"`
	RoutesOptimized int64   `json:"routesOptimized"`
	CarbonSaved     float64 `json:"carbonSaved"`
}

// RecordPlan counts one routing operation.
func (c *Counters) RecordPlan() {
	c.RoutesOptimized++
}

// RecordSelection folds a chosen candidate into the counters.
// AvgTime is a two-term blend with the latest sample, not a true running mean.
func (c *Counters) RecordSelection(candidate route.Candidate) {
	eta := float64(candidate.EstimatedMinutes)
	c.AvgTime = (c.AvgTime + eta) / 2
	c.TimeSaved += math.Max(0, BaselineCommuteMinutes-eta)
	c.CarbonSaved += float64(candidate.DistanceKm) * CarbonKgPerKm
}

// Display is the rounded projection shown to the commuter.
type Display struct {
	AvgTime         int64   `json:"avg_time"`
	TimeSaved       int64   `json:"time_saved"`
	RoutesOptimized int64   `json:"routes_optimized"`
	CarbonSaved     float64 `json:"carbon_saved"`
}

// Display rounds minutes to integers and carbon to two decimals.
func (c Counters) Display() Display {
	return Display{
		AvgTime:         int64(math.Round(c.AvgTime)),
		TimeSaved:       int64(math.Round(c.TimeSaved)),
		RoutesOptimized: c.RoutesOptimized,
		CarbonSaved:     math.Round(c.CarbonSaved*100) / 100,
	}
}

// Repository loads and overwrites a commuter's counters wholesale.
type Repository interface {
	// Load returns zero counters when nothing was stored yet.
	Load(ctx context.Context, commuterID uuid.UUID) (Counters, error)

	// Update applies fn to the stored counters and writes the result back.
	// Concurrent updates for one commuter never lose each other's changes.
	Update(ctx context.Context, commuterID uuid.UUID, fn func(*Counters)) (Counters, error)
}
