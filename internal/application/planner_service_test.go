package application

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smart-commute/service-commute/internal/domain/geo"
	"github.com/smart-commute/service-commute/internal/domain/route"
	"github.com/smart-commute/service-commute/internal/platform/apperror"
	"github.com/smart-commute/service-commute/internal/storage/sqlite"
)

func TestPlanRoute_RequiresAllFields(t *testing.T) {
	env := newTestEnv(t)
	cases := []PlanRouteRequest{
		{EndLocation: "pune", DepartureTime: "2025-03-04T13:30"},
		{StartLocation: "mumbai", DepartureTime: "2025-03-04T13:30"},
		{StartLocation: "mumbai", EndLocation: "   ", DepartureTime: "2025-03-04T13:30"},
		{StartLocation: "mumbai", EndLocation: "pune"},
	}
	for _, req := range cases {
		_, err := env.planner.PlanRoute(context.Background(), uuid.New(), req)
		require.Error(t, err)
		assert.True(t, apperror.Is(err, apperror.KindValidation))
		assert.Equal(t, MsgFillAllFields, err.Error())
	}
	assert.Empty(t, env.publisher.types())
}

func TestPlanRoute_MumbaiToPune(t *testing.T) {
	env := newTestEnv(t)
	commuter := uuid.New()

	plan, err := env.planner.PlanRoute(context.Background(), commuter, PlanRouteRequest{
		StartLocation: "Mumbai",
		EndLocation:   "Pune",
		DepartureTime: "2025-03-04T13:30",
	})
	require.NoError(t, err)

	assert.Equal(t, geo.MatchExact, plan.Start.Match)
	assert.False(t, plan.End.Fallback)
	assert.InDelta(t, 120, plan.StraightLineKm, 5)
	require.Len(t, plan.Routes, 3)

	// Medium-haul band, generation order kept without a preference.
	assert.Equal(t, route.StyleHighway, plan.Routes[0].Name)
	assert.Equal(t, route.StyleCity, plan.Routes[1].Name)
	assert.Equal(t, route.StyleScenic, plan.Routes[2].Name)
	for _, r := range plan.Routes {
		assert.Positive(t, r.EstimatedMinutes)
		assert.True(t, r.Breakdown.Metro)
		assert.False(t, r.Breakdown.RushHour)
		assert.Equal(t, r.EstimatedMinutes, r.Breakdown.Minutes)
	}
	assert.False(t, plan.MapPlotted, "map not loaded yet")

	counters, _ := env.analytics.Load(context.Background(), commuter)
	assert.EqualValues(t, 1, counters.RoutesOptimized)
	assert.Equal(t, []string{EventRoutePlanned}, env.publisher.types())

	routes, err := env.planner.CurrentRoutes(context.Background(), commuter)
	require.NoError(t, err)
	assert.Len(t, routes, 3)
}

func TestPlanRoute_SortsByPreference(t *testing.T) {
	env := newTestEnv(t)

	plan, err := env.planner.PlanRoute(context.Background(), uuid.New(), PlanRouteRequest{
		StartLocation: "delhi",
		EndLocation:   "noida",
		DepartureTime: "2025-03-04T13:30",
		RouteType:     string(route.PreferFastest),
	})
	require.NoError(t, err)

	for i := 1; i < len(plan.Routes); i++ {
		assert.LessOrEqual(t, plan.Routes[i-1].EstimatedMinutes, plan.Routes[i].EstimatedMinutes)
	}
}

func TestPlanRoute_UnknownAddressFallsBack(t *testing.T) {
	env := newTestEnv(t)

	plan, err := env.planner.PlanRoute(context.Background(), uuid.New(), PlanRouteRequest{
		StartLocation: "xyzzy",
		EndLocation:   "xyzzy",
		DepartureTime: "2025-03-04T13:30",
	})
	require.NoError(t, err)

	assert.True(t, plan.Start.Fallback)
	assert.Equal(t, geo.DefaultCoordinate, plan.End.Coordinate)
	assert.Zero(t, plan.StraightLineKm)
	for _, r := range plan.Routes {
		assert.Zero(t, r.DistanceKm)
		assert.Zero(t, r.EstimatedMinutes)
	}
}

func TestPlanRoute_CurrentLocationSubstitution(t *testing.T) {
	env := newTestEnv(t)
	commuter := uuid.New()
	ctx := context.Background()

	_, err := env.planner.PlanRoute(ctx, commuter, PlanRouteRequest{
		StartLocation: "Current Location",
		EndLocation:   "pune",
		DepartureTime: "2025-03-04T13:30",
	})
	require.Error(t, err)
	assert.Equal(t, MsgLocationNotAvailable, err.Error())

	_, err = env.devices.ReportPosition(ctx, commuter, PositionReport{Lat: 19.0760, Lng: 72.8777, Accuracy: 15})
	require.NoError(t, err)

	plan, err := env.planner.PlanRoute(ctx, commuter, PlanRouteRequest{
		StartLocation: "current location",
		EndLocation:   "pune",
		DepartureTime: "2025-03-04T13:30",
	})
	require.NoError(t, err)
	assert.Equal(t, "19.0760, 72.8777", plan.Start.Label)
	assert.Equal(t, geo.MatchCoordinate, plan.Start.Match)
}

func TestPlanRoute_PlotsWhenMapLoaded(t *testing.T) {
	env := newTestEnv(t)
	commuter := uuid.New()
	ctx := context.Background()

	_, err := env.devices.MapVisible(ctx, commuter)
	require.NoError(t, err)

	plan, err := env.planner.PlanRoute(ctx, commuter, PlanRouteRequest{
		StartLocation: "mumbai",
		EndLocation:   "pune",
		DepartureTime: "2025-03-04T13:30",
	})
	require.NoError(t, err)
	assert.True(t, plan.MapPlotted)

	overlay, err := env.devices.Overlay(ctx, commuter)
	require.NoError(t, err)
	require.Len(t, overlay.Markers, 2)
	assert.Equal(t, "Start: mumbai", overlay.Markers[0].Popup)
	assert.Len(t, overlay.Polylines, 1)
}

func TestPlanRoute_RushHourInCommuterZone(t *testing.T) {
	env := newTestEnv(t)
	commuter := uuid.New()
	ist := 330

	// The test clock reads 13:00 UTC, which is 18:30 in India.
	plan, err := env.planner.PlanRoute(context.Background(), commuter, PlanRouteRequest{
		StartLocation: "Mumbai", EndLocation: "Pune", DepartureTime: "2025-03-04T18:30",
		UTCOffsetMinutes: &ist,
	})
	require.NoError(t, err)
	for _, r := range plan.Routes {
		assert.True(t, r.Breakdown.RushHour, string(r.Name))
	}

	utc := 0
	plan, err = env.planner.PlanRoute(context.Background(), commuter, PlanRouteRequest{
		StartLocation: "Mumbai", EndLocation: "Pune", DepartureTime: "2025-03-04T13:30",
		UTCOffsetMinutes: &utc,
	})
	require.NoError(t, err)
	for _, r := range plan.Routes {
		assert.False(t, r.Breakdown.RushHour, string(r.Name))
	}
}

func TestPlanRoute_RejectsOutOfRangeOffset(t *testing.T) {
	env := newTestEnv(t)
	offset := 15 * 60

	_, err := env.planner.PlanRoute(context.Background(), uuid.New(), PlanRouteRequest{
		StartLocation: "Mumbai", EndLocation: "Pune", DepartureTime: "2025-03-04T13:30",
		UTCOffsetMinutes: &offset,
	})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.Empty(t, env.publisher.types())
}

func TestPlanRoute_ConcurrentPlansCountEveryRun(t *testing.T) {
	ctx := context.Background()
	store, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "commute.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	workspaces, err := NewWorkspaceStore(4, testTiles)
	require.NoError(t, err)
	estimator := route.NewEstimator(func() time.Time { return offPeak }, func() float64 { return 0.5 })
	planner := NewPlannerService(workspaces, geo.NewGazetteer(), estimator, store.Analytics(), NoopPublisher{}, 0, zap.NewNop())
	commuter := uuid.New()

	const plans = 100
	var wg sync.WaitGroup
	errs := make(chan error, plans)
	for i := 0; i < plans; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := planner.PlanRoute(ctx, commuter, PlanRouteRequest{
				StartLocation: "delhi", EndLocation: "noida", DepartureTime: "2025-03-04T13:30",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	counters, err := store.Analytics().Load(ctx, commuter)
	require.NoError(t, err)
	assert.EqualValues(t, plans, counters.RoutesOptimized)
}

func TestPlanRoute_LatencyHonoursContext(t *testing.T) {
	workspaces, err := NewWorkspaceStore(4, testTiles)
	require.NoError(t, err)
	planner := NewPlannerService(workspaces, geo.NewGazetteer(), route.NewDefaultEstimator(),
		newMemoryAnalytics(), NoopPublisher{}, time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = planner.PlanRoute(ctx, uuid.New(), PlanRouteRequest{
		StartLocation: "mumbai", EndLocation: "pune", DepartureTime: "2025-03-04T13:30",
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSelectRoute(t *testing.T) {
	env := newTestEnv(t)
	commuter := uuid.New()
	ctx := context.Background()

	_, err := env.planner.SelectRoute(ctx, commuter, 1)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	plan, err := env.planner.PlanRoute(ctx, commuter, PlanRouteRequest{
		StartLocation: "delhi", EndLocation: "noida", DepartureTime: "2025-03-04T13:30",
	})
	require.NoError(t, err)
	chosen := plan.Routes[0]

	sel, err := env.planner.SelectRoute(ctx, commuter, chosen.ID)
	require.NoError(t, err)

	assert.Equal(t, "Selected "+string(chosen.Name), sel.Message)
	assert.EqualValues(t, 1, sel.Analytics.RoutesOptimized)
	assert.InDelta(t, float64(chosen.DistanceKm)*0.12, sel.Analytics.CarbonSaved, 0.01)
	assert.Equal(t, []string{EventRoutePlanned, EventRouteSelected}, env.publisher.types())
}

func TestDefaultDepartureTime(t *testing.T) {
	now := time.Date(2025, 12, 31, 23, 45, 0, 0, time.UTC)
	assert.Equal(t, "2026-01-01T00:15", DefaultDepartureTime(now))
}
