package route

import (
	"context"

	"github.com/google/uuid"
)

// SavedRouteRepository defines the persistence contract for saved routes.
// Implementations keep insertion order.
type SavedRouteRepository interface {
	// List returns the commuter's saved routes, oldest first.
	List(ctx context.Context, commuterID uuid.UUID) ([]*SavedRoute, error)

	// Append adds one saved route at the end of the list.
	Append(ctx context.Context, saved *SavedRoute) error

	// DeleteAt removes the entry at the zero-based index and returns it.
	DeleteAt(ctx context.Context, commuterID uuid.UUID, index int) (*SavedRoute, error)
}
