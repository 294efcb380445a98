package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TopicCommuteEvents carries every domain event this service emits.
const TopicCommuteEvents = "commute.events"

// Event types.
const (
	EventRoutePlanned  = "commute.route.planned"
	EventRouteSelected = "commute.route.selected"
	EventRouteSaved    = "commute.route.saved"
	EventRouteDeleted  = "commute.route.deleted"
)

// EventPublisher delivers domain events. Subject is the commuter ID.
type EventPublisher interface {
	Publish(ctx context.Context, topic, eventType, subject string, data any) error
}

// NoopPublisher discards every event. Used when no brokers are configured.
type NoopPublisher struct{}

// Publish does nothing.
func (NoopPublisher) Publish(context.Context, string, string, string, any) error { return nil }

// RoutePlannedEvent is published after a successful plan.
type RoutePlannedEvent struct {
	PlanID         uuid.UUID `json:"plan_id"`
	CommuterID     uuid.UUID `json:"commuter_id"`
	StartLocation  string    `json:"start_location"`
	EndLocation    string    `json:"end_location"`
	StraightLineKm float64   `json:"straight_line_km"`
	Preference     string    `json:"preference"`
	RouteCount     int       `json:"route_count"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// RouteSelectedEvent is published when a commuter picks a candidate.
type RouteSelectedEvent struct {
	CommuterID       uuid.UUID `json:"commuter_id"`
	RouteID          int       `json:"route_id"`
	RouteName        string    `json:"route_name"`
	DistanceKm       int       `json:"distance_km"`
	EstimatedMinutes int       `json:"estimated_minutes"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// SavedRouteEvent is published when a saved route is added or removed.
type SavedRouteEvent struct {
	SavedRouteID  uuid.UUID `json:"saved_route_id"`
	CommuterID    uuid.UUID `json:"commuter_id"`
	RouteName     string    `json:"route_name"`
	StartLocation string    `json:"start_location"`
	EndLocation   string    `json:"end_location"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func publishEvent(ctx context.Context, publisher EventPublisher, logger *zap.Logger, eventType string, commuterID uuid.UUID, data any) {
	if err := publisher.Publish(ctx, TopicCommuteEvents, eventType, commuterID.String(), data); err != nil {
		logger.Error("failed to publish event",
			zap.String("topic", TopicCommuteEvents),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
