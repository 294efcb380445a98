package application

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/smart-commute/service-commute/internal/domain/device"
	"github.com/smart-commute/service-commute/internal/domain/geo"
	"github.com/smart-commute/service-commute/internal/domain/mapview"
	"github.com/smart-commute/service-commute/internal/domain/route"
)

// PlannedRoute is a candidate together with the factors behind its estimate.
type PlannedRoute struct {
	route.Candidate
	Breakdown route.Breakdown `json:"breakdown"`
}

// PlanContext is what the last successful plan was computed from.
type PlanContext struct {
	ID             uuid.UUID
	StartLocation  string
	EndLocation    string
	Start          geo.Resolution
	End            geo.Resolution
	DepartureTime  string
	Preference     route.Preference
	StraightLineKm float64
	PlannedAt      time.Time
}

// Workspace is one commuter's ephemeral session state. Only durable data
// (saved routes, analytics) lives in the repositories.
type Workspace struct {
	mu sync.Mutex

	Plan    *PlanContext
	Routes  []PlannedRoute
	Device  device.State
	Overlay *mapview.Overlay
}

// Candidates returns the current route list without breakdowns.
func (w *Workspace) Candidates() []route.Candidate {
	out := make([]route.Candidate, len(w.Routes))
	for i, r := range w.Routes {
		out[i] = r.Candidate
	}
	return out
}

// WorkspaceStore keeps the most recently active workspaces in memory.
type WorkspaceStore struct {
	mu    sync.Mutex
	cache *lru.Cache[uuid.UUID, *Workspace]
	tiles mapview.TileLayer
}

// NewWorkspaceStore creates a store holding at most capacity workspaces.
func NewWorkspaceStore(capacity int, tiles mapview.TileLayer) (*WorkspaceStore, error) {
	cache, err := lru.New[uuid.UUID, *Workspace](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace cache: %w", err)
	}
	return &WorkspaceStore{cache: cache, tiles: tiles}, nil
}

// With runs fn with exclusive access to the commuter's workspace, creating it on first use.
func (s *WorkspaceStore) With(commuterID uuid.UUID, fn func(ws *Workspace) error) error {
	ws := s.get(commuterID)
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return fn(ws)
}

// WithExisting is With for a workspace that must already be live. It reports
// false without calling fn when the commuter's workspace was never created or
// has been evicted.
func (s *WorkspaceStore) WithExisting(commuterID uuid.UUID, fn func(ws *Workspace) error) (bool, error) {
	s.mu.Lock()
	ws, ok := s.cache.Peek(commuterID)
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return true, fn(ws)
}

// Len returns the number of live workspaces.
func (s *WorkspaceStore) Len() int {
	return s.cache.Len()
}

func (s *WorkspaceStore) get(commuterID uuid.UUID) *Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ws, ok := s.cache.Get(commuterID); ok {
		return ws
	}
	ws := &Workspace{Overlay: mapview.New(s.tiles)}
	s.cache.Add(commuterID, ws)
	return ws
}
