package application

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smart-commute/service-commute/internal/domain/analytics"
	"github.com/smart-commute/service-commute/internal/domain/geo"
	"github.com/smart-commute/service-commute/internal/domain/mapview"
	"github.com/smart-commute/service-commute/internal/domain/route"
	"github.com/smart-commute/service-commute/internal/platform/apperror"
)

type memoryAnalytics struct {
	mu   sync.Mutex
	data map[uuid.UUID]analytics.Counters
}

func newMemoryAnalytics() *memoryAnalytics {
	return &memoryAnalytics{data: make(map[uuid.UUID]analytics.Counters)}
}

func (m *memoryAnalytics) Load(_ context.Context, commuterID uuid.UUID) (analytics.Counters, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[commuterID], nil
}

func (m *memoryAnalytics) Update(_ context.Context, commuterID uuid.UUID, fn func(*analytics.Counters)) (analytics.Counters, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.data[commuterID]
	fn(&c)
	m.data[commuterID] = c
	return c, nil
}

type memorySavedRoutes struct {
	mu   sync.Mutex
	data map[uuid.UUID][]*route.SavedRoute
}

func newMemorySavedRoutes() *memorySavedRoutes {
	return &memorySavedRoutes{data: make(map[uuid.UUID][]*route.SavedRoute)}
}

func (m *memorySavedRoutes) List(_ context.Context, commuterID uuid.UUID) ([]*route.SavedRoute, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*route.SavedRoute{}, m.data[commuterID]...), nil
}

func (m *memorySavedRoutes) Append(_ context.Context, sr *route.SavedRoute) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[sr.CommuterID()] = append(m.data[sr.CommuterID()], sr)
	return nil
}

func (m *memorySavedRoutes) DeleteAt(_ context.Context, commuterID uuid.UUID, index int) (*route.SavedRoute, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.data[commuterID]
	if index < 0 || index >= len(list) {
		return nil, apperror.NewNotFoundError("saved route", fmt.Sprint(index))
	}
	removed := list[index]
	m.data[commuterID] = append(list[:index:index], list[index+1:]...)
	return removed, nil
}

type publishedEvent struct {
	Topic   string
	Type    string
	Subject string
	Data    any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(_ context.Context, topic, eventType, subject string, data any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Topic: topic, Type: eventType, Subject: subject, Data: data})
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

var testTiles = mapview.TileLayer{URL: "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png", Attribution: "© OpenStreetMap contributors"}

// offPeak is 13:00 UTC, outside both rush windows.
var offPeak = time.Date(2025, 3, 4, 13, 0, 0, 0, time.UTC)

type testEnv struct {
	workspaces *WorkspaceStore
	analytics  *memoryAnalytics
	saved      *memorySavedRoutes
	publisher  *recordingPublisher
	planner    *PlannerService
	savedSvc   *SavedRouteService
	stats      *AnalyticsService
	devices    *DeviceService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	workspaces, err := NewWorkspaceStore(16, testTiles)
	require.NoError(t, err)

	env := &testEnv{
		workspaces: workspaces,
		analytics:  newMemoryAnalytics(),
		saved:      newMemorySavedRoutes(),
		publisher:  &recordingPublisher{},
	}
	logger := zap.NewNop()
	clock := func() time.Time { return offPeak }
	estimator := route.NewEstimator(clock, func() float64 { return 0.5 })

	env.planner = NewPlannerService(workspaces, geo.NewGazetteer(), estimator, env.analytics, env.publisher, 0, logger)
	env.planner.now = clock
	env.savedSvc = NewSavedRouteService(workspaces, env.saved, env.publisher, logger)
	env.savedSvc.now = clock
	env.stats = NewAnalyticsService(env.analytics)
	env.devices = NewDeviceService(workspaces, env.stats, env.savedSvc, 0, logger)
	env.devices.now = clock
	return env
}
