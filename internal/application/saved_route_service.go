package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/smart-commute/service-commute/internal/domain/route"
	"github.com/smart-commute/service-commute/internal/platform/apperror"
)

// Notices returned with saved route mutations.
const (
	MsgRouteSaved   = "Route saved!"
	MsgRouteDeleted = "Route deleted"
)

// SavedRouteDTO is the response representation of a saved route.
type SavedRouteDTO struct {
	ID               uuid.UUID          `json:"id"`
	Index            int                `json:"index"`
	RouteID          int                `json:"route_id"`
	Name             route.Style        `json:"name"`
	DistanceKm       int                `json:"distance"`
	TrafficLevel     route.TrafficLevel `json:"traffic_level"`
	Description      string             `json:"description"`
	EstimatedMinutes int                `json:"estimated_time"`
	StartLocation    string             `json:"start_location"`
	EndLocation      string             `json:"end_location"`
	CreatedAt        time.Time          `json:"timestamp"`
	SavedAt          time.Time          `json:"saved_at"`
}

// SavedRouteService manages the commuter's saved route list.
type SavedRouteService struct {
	workspaces *WorkspaceStore
	repo       route.SavedRouteRepository
	publisher  EventPublisher
	now        func() time.Time
	logger     *zap.Logger
}

// NewSavedRouteService creates a new SavedRouteService.
func NewSavedRouteService(
	workspaces *WorkspaceStore,
	repo route.SavedRouteRepository,
	publisher EventPublisher,
	logger *zap.Logger,
) *SavedRouteService {
	return &SavedRouteService{
		workspaces: workspaces,
		repo:       repo,
		publisher:  publisher,
		now:        time.Now,
		logger:     logger,
	}
}

// SaveRoute snapshots a candidate from the current route list, with the endpoints it was planned for.
func (s *SavedRouteService) SaveRoute(ctx context.Context, commuterID uuid.UUID, routeID int) (_ *SavedRouteDTO, err error) {
	ctx, span := tracer.Start(ctx, "SavedRouteService.SaveRoute",
		trace.WithAttributes(
			attribute.String("commuter.id", commuterID.String()),
			attribute.Int("route.id", routeID),
		))
	defer func() { endSpan(span, err) }()

	var (
		candidate  route.Candidate
		start, end string
	)
	if err := s.workspaces.With(commuterID, func(ws *Workspace) error {
		if ws.Plan == nil {
			return apperror.NewInvalidStateError("no route has been planned yet")
		}
		c, ok := route.FindCandidate(ws.Candidates(), routeID)
		if !ok {
			return apperror.NewNotFoundError("route", fmt.Sprint(routeID))
		}
		candidate, start, end = c, ws.Plan.StartLocation, ws.Plan.EndLocation
		return nil
	}); err != nil {
		return nil, err
	}

	saved, err := route.NewSavedRoute(commuterID, candidate, start, end, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Append(ctx, saved); err != nil {
		return nil, fmt.Errorf("failed to save route: %w", err)
	}

	list, err := s.repo.List(ctx, commuterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved routes: %w", err)
	}

	s.logger.Info("route saved",
		zap.String("commuter_id", commuterID.String()),
		zap.String("saved_route_id", saved.ID().String()),
		zap.Int("saved_count", len(list)),
	)
	publishEvent(ctx, s.publisher, s.logger, EventRouteSaved, commuterID, toSavedRouteEvent(saved, s.now()))

	dto := toSavedRouteDTO(saved, len(list)-1)
	return &dto, nil
}

// ListSavedRoutes returns saved routes in insertion order.
func (s *SavedRouteService) ListSavedRoutes(ctx context.Context, commuterID uuid.UUID) ([]SavedRouteDTO, error) {
	list, err := s.repo.List(ctx, commuterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved routes: %w", err)
	}
	dtos := make([]SavedRouteDTO, len(list))
	for i, sr := range list {
		dtos[i] = toSavedRouteDTO(sr, i)
	}
	return dtos, nil
}

// DeleteSavedRoute removes the entry at index; later entries shift down by one.
func (s *SavedRouteService) DeleteSavedRoute(ctx context.Context, commuterID uuid.UUID, index int) (_ []SavedRouteDTO, err error) {
	ctx, span := tracer.Start(ctx, "SavedRouteService.DeleteSavedRoute",
		trace.WithAttributes(
			attribute.String("commuter.id", commuterID.String()),
			attribute.Int("saved_route.index", index),
		))
	defer func() { endSpan(span, err) }()

	removed, err := s.repo.DeleteAt(ctx, commuterID, index)
	if err != nil {
		return nil, err
	}

	s.logger.Info("saved route deleted",
		zap.String("commuter_id", commuterID.String()),
		zap.Int("index", index),
	)
	publishEvent(ctx, s.publisher, s.logger, EventRouteDeleted, commuterID, toSavedRouteEvent(removed, s.now()))

	return s.ListSavedRoutes(ctx, commuterID)
}

func toSavedRouteDTO(sr *route.SavedRoute, index int) SavedRouteDTO {
	c := sr.Candidate()
	return SavedRouteDTO{
		ID:               sr.ID(),
		Index:            index,
		RouteID:          c.ID,
		Name:             c.Name,
		DistanceKm:       c.DistanceKm,
		TrafficLevel:     c.TrafficLevel,
		Description:      c.Description,
		EstimatedMinutes: c.EstimatedMinutes,
		StartLocation:    sr.StartLocation(),
		EndLocation:      sr.EndLocation(),
		CreatedAt:        c.CreatedAt,
		SavedAt:          sr.SavedAt(),
	}
}

func toSavedRouteEvent(sr *route.SavedRoute, occurredAt time.Time) SavedRouteEvent {
	return SavedRouteEvent{
		SavedRouteID:  sr.ID(),
		CommuterID:    sr.CommuterID(),
		RouteName:     string(sr.Candidate().Name),
		StartLocation: sr.StartLocation(),
		EndLocation:   sr.EndLocation(),
		OccurredAt:    occurredAt.UTC(),
	}
}
