//go:build integration

package main_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-commute/service-commute/internal/application"
	"github.com/smart-commute/service-commute/internal/domain/analytics"
	"github.com/smart-commute/service-commute/internal/domain/device"
	commuteEvents "github.com/smart-commute/service-commute/internal/events"
	"github.com/smart-commute/service-commute/internal/platform/apperror"
	"github.com/smart-commute/service-commute/internal/repository"
)

// TestPositionTelemetry_UpdatesWorkspace verifies that a position reading published
// to commute.telemetry lands in the commuter's workspace.
func TestPositionTelemetry_UpdatesWorkspace(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupCommuteStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()
	defer func() { _ = stack.Consumer.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = stack.Consumer.Start(ctx) }()
	time.Sleep(3 * time.Second) // Wait for consumer group join.

	commuterID := uuid.New()
	publishTestEvent(t, infra.KafkaBrokers, commuteEvents.TopicTelemetry,
		"edge-gateway", commuteEvents.DevicePositionReported, commuterID.String(),
		commuteEvents.PositionReportedEvent{Lat: 19.076, Lng: 72.8777, Accuracy: 25, OccurredAt: time.Now().UTC()})

	require.Eventually(t, func() bool {
		st, err := stack.Devices.Status(ctx, commuterID)
		return err == nil && st.Statuses.Location == device.LabelLocated
	}, 15*time.Second, 200*time.Millisecond, "position reading was not applied")

	plan, err := stack.Planner.PlanRoute(ctx, commuterID, application.PlanRouteRequest{
		StartLocation: "current location",
		EndLocation:   "pune",
		DepartureTime: "2025-03-04T09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "19.0760, 72.8777", plan.Start.Label)
}

// TestSaveRoute_PersistsAndPublishes verifies the Postgres repositories and the
// commute.route.saved event.
func TestSaveRoute_PersistsAndPublishes(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupCommuteStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()

	ctx := context.Background()
	commuterID := uuid.New()

	plan, err := stack.Planner.PlanRoute(ctx, commuterID, application.PlanRouteRequest{
		StartLocation: "mumbai",
		EndLocation:   "pune",
		DepartureTime: "2025-03-04T09:00",
	})
	require.NoError(t, err)

	for _, r := range plan.Routes {
		_, err := stack.SavedRoutes.SaveRoute(ctx, commuterID, r.ID)
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, infra.DB.Model(&repository.SavedRouteModel{}).Where("commuter_id = ?", commuterID).Count(&count).Error)
	assert.EqualValues(t, 3, count)

	remaining, err := stack.SavedRoutes.DeleteSavedRoute(ctx, commuterID, 1)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, plan.Routes[0].ID, remaining[0].RouteID)
	assert.Equal(t, plan.Routes[2].ID, remaining[1].RouteID)

	_, err = stack.SavedRoutes.DeleteSavedRoute(ctx, commuterID, 2)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	var analytics repository.AnalyticsModel
	require.NoError(t, infra.DB.Where("commuter_id = ?", commuterID).First(&analytics).Error)
	assert.EqualValues(t, 1, analytics.RoutesOptimized)

	ce := consumeOneEvent(t, infra.KafkaBrokers, application.TopicCommuteEvents,
		application.EventRouteSaved, 15*time.Second)

	var saved application.SavedRouteEvent
	require.NoError(t, ce.ParseData(&saved))
	assert.Equal(t, commuterID, saved.CommuterID)
	assert.Equal(t, commuterID.String(), ce.Subject)
	assert.Equal(t, "mumbai", saved.StartLocation)
}

// TestAnalyticsUpdate_ConcurrentWritersOnPostgres verifies that row locking keeps
// every concurrent counter update.
func TestAnalyticsUpdate_ConcurrentWritersOnPostgres(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	repo := repository.NewGormAnalyticsRepository(infra.DB)
	commuterID := uuid.New()
	ctx := context.Background()

	const writers = 50
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, commuterID, func(c *analytics.Counters) { c.RecordPlan() })
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	counters, err := repo.Load(ctx, commuterID)
	require.NoError(t, err)
	assert.EqualValues(t, writers, counters.RoutesOptimized)
}
