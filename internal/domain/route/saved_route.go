package route

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smart-commute/service-commute/internal/platform/apperror"
)

// SavedRoute is a candidate snapshot kept until the commuter deletes it.
// Duplicates are allowed.
type SavedRoute struct {
	id            uuid.UUID
	commuterID    uuid.UUID
	candidate     Candidate
	startLocation string
	endLocation   string
	savedAt       time.Time
}

// NewSavedRoute snapshots a candidate together with the endpoint labels it was planned for.
func NewSavedRoute(commuterID uuid.UUID, candidate Candidate, startLocation, endLocation string, savedAt time.Time) (*SavedRoute, error) {
	if commuterID == uuid.Nil {
		return nil, apperror.NewValidationError("commuter ID is required")
	}
	if strings.TrimSpace(startLocation) == "" || strings.TrimSpace(endLocation) == "" {
		return nil, apperror.NewValidationError("start and end locations are required")
	}
	return &SavedRoute{
		id:            uuid.New(),
		commuterID:    commuterID,
		candidate:     candidate,
		startLocation: startLocation,
		endLocation:   endLocation,
		savedAt:       savedAt.UTC(),
	}, nil
}

// ReconstructSavedRoute rebuilds a SavedRoute from persistence data (no validation).
func ReconstructSavedRoute(
	id, commuterID uuid.UUID,
	candidate Candidate,
	startLocation, endLocation string,
	savedAt time.Time,
) *SavedRoute {
	return &SavedRoute{
		id:            id,
		commuterID:    commuterID,
		candidate:     candidate,
		startLocation: startLocation,
		endLocation:   endLocation,
		savedAt:       savedAt,
	}
}

// ID returns the saved route's unique identifier.
func (s *SavedRoute) ID() uuid.UUID { return s.id }

// CommuterID returns the owning commuter.
func (s *SavedRoute) CommuterID() uuid.UUID { return s.commuterID }

// Candidate returns the snapshot.
func (s *SavedRoute) Candidate() Candidate { return s.candidate }

// StartLocation returns the start label as typed by the commuter.
func (s *SavedRoute) StartLocation() string { return s.startLocation }

// EndLocation returns the end label as typed by the commuter.
func (s *SavedRoute) EndLocation() string { return s.endLocation }

// SavedAt returns when the route was saved.
func (s *SavedRoute) SavedAt() time.Time { return s.savedAt }
