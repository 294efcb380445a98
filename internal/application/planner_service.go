package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/smart-commute/service-commute/internal/domain/analytics"
	"github.com/smart-commute/service-commute/internal/domain/geo"
	"github.com/smart-commute/service-commute/internal/domain/route"
	"github.com/smart-commute/service-commute/internal/platform/apperror"
)

// CurrentLocationKeyword is replaced by the commuter's latest coordinates.
const CurrentLocationKeyword = "current location"

// DepartureTimeLayout is the datetime-local format the client form uses.
const DepartureTimeLayout = "2006-01-02T15:04"

// maxUTCOffsetMinutes bounds the client's reported zone offset (UTC-14:00 to UTC+14:00).
const maxUTCOffsetMinutes = 14 * 60

// User-facing notices.
const (
	MsgFillAllFields        = "Please fill in all fields"
	MsgLocationNotAvailable = "Location not available"
	MsgRoutePlanned         = "Route planned successfully!"
	MsgInvalidUTCOffset     = "utc_offset_minutes must be within [-840, 840]"
)

// PlanRouteRequest is the planning form.
type PlanRouteRequest struct {
	StartLocation string `json:"start_location"`
	EndLocation   string `json:"end_location"`
	DepartureTime string `json:"departure_time"`
	RouteType     string `json:"route_type"`
	// UTCOffsetMinutes is the commuter's zone offset east of UTC (IST is 330).
	// Rush hour is judged on the server's local clock when it is absent.
	UTCOffsetMinutes *int `json:"utc_offset_minutes,omitempty"`
}

// EndpointDTO shows how one address was resolved.
type EndpointDTO struct {
	Label      string         `json:"label"`
	Coordinate geo.Coordinate `json:"coordinate"`
	Match      geo.MatchKind  `json:"match"`
	City       string         `json:"city,omitempty"`
	Fallback   bool           `json:"fallback"`
}

// PlanDTO is the result of a planning run.
type PlanDTO struct {
	ID             uuid.UUID      `json:"id"`
	Start          EndpointDTO    `json:"start"`
	End            EndpointDTO    `json:"end"`
	DepartureTime  string         `json:"departure_time"`
	Preference     string         `json:"preference"`
	StraightLineKm float64        `json:"straight_line_km"`
	Routes         []PlannedRoute `json:"routes"`
	MapPlotted     bool           `json:"map_plotted"`
	PlannedAt      time.Time      `json:"planned_at"`
}

// SelectionDTO is returned after choosing a candidate.
type SelectionDTO struct {
	Route     route.Candidate   `json:"route"`
	Analytics analytics.Display `json:"analytics"`
	Message   string            `json:"message"`
}

// PlannerService orchestrates route planning and selection.
type PlannerService struct {
	workspaces *WorkspaceStore
	gazetteer  *geo.Gazetteer
	estimator  *route.Estimator
	analytics  analytics.Repository
	publisher  EventPublisher
	latency    time.Duration
	now        func() time.Time
	logger     *zap.Logger
}

// NewPlannerService creates a new PlannerService. latency is the artificial
// delay applied before each planning run.
func NewPlannerService(
	workspaces *WorkspaceStore,
	gazetteer *geo.Gazetteer,
	estimator *route.Estimator,
	analyticsRepo analytics.Repository,
	publisher EventPublisher,
	latency time.Duration,
	logger *zap.Logger,
) *PlannerService {
	return &PlannerService{
		workspaces: workspaces,
		gazetteer:  gazetteer,
		estimator:  estimator,
		analytics:  analyticsRepo,
		publisher:  publisher,
		latency:    latency,
		now:        time.Now,
		logger:     logger,
	}
}

// PlanRoute resolves both endpoints, synthesizes candidates and replaces the commuter's route list.
func (s *PlannerService) PlanRoute(ctx context.Context, commuterID uuid.UUID, req PlanRouteRequest) (_ *PlanDTO, err error) {
	ctx, span := tracer.Start(ctx, "PlannerService.PlanRoute",
		trace.WithAttributes(attribute.String("commuter.id", commuterID.String())))
	defer func() { endSpan(span, err) }()

	start := strings.TrimSpace(req.StartLocation)
	end := strings.TrimSpace(req.EndLocation)
	departure := strings.TrimSpace(req.DepartureTime)
	if start == "" || end == "" || departure == "" {
		return nil, apperror.NewValidationError(MsgFillAllFields)
	}
	zone, err := commuterZone(req.UTCOffsetMinutes)
	if err != nil {
		return nil, err
	}

	if err := s.workspaces.With(commuterID, func(ws *Workspace) error {
		var subErr error
		if start, subErr = substituteCurrentLocation(start, ws); subErr != nil {
			return subErr
		}
		end, subErr = substituteCurrentLocation(end, ws)
		return subErr
	}); err != nil {
		return nil, err
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	startRes := s.gazetteer.Resolve(start)
	endRes := s.gazetteer.Resolve(end)
	straightLine := geo.Haversine(startRes.Coordinate, endRes.Coordinate)
	preference := route.Preference(strings.TrimSpace(req.RouteType))
	now := s.now()

	candidates := route.Synthesize(straightLine, now)
	breakdowns := make(map[int]route.Breakdown, len(candidates))
	for i := range candidates {
		b := s.estimator.EstimateIn(candidates[i], start, end, zone)
		candidates[i].EstimatedMinutes = b.Minutes
		breakdowns[candidates[i].ID] = b
	}
	route.Sort(candidates, preference)

	planned := make([]PlannedRoute, len(candidates))
	for i, c := range candidates {
		planned[i] = PlannedRoute{Candidate: c, Breakdown: breakdowns[c.ID]}
	}

	plan := &PlanContext{
		ID:             uuid.New(),
		StartLocation:  start,
		EndLocation:    end,
		Start:          startRes,
		End:            endRes,
		DepartureTime:  departure,
		Preference:     preference,
		StraightLineKm: straightLine,
		PlannedAt:      now,
	}

	var plotted bool
	if err := s.workspaces.With(commuterID, func(ws *Workspace) error {
		ws.Plan = plan
		ws.Routes = planned
		plotted = ws.Overlay.PlotRoute(start, startRes.Coordinate, end, endRes.Coordinate)
		return nil
	}); err != nil {
		return nil, err
	}

	if _, err := s.analytics.Update(ctx, commuterID, func(c *analytics.Counters) {
		c.RecordPlan()
	}); err != nil {
		return nil, fmt.Errorf("failed to record plan: %w", err)
	}

	span.SetAttributes(
		attribute.Float64("route.straight_line_km", straightLine),
		attribute.Bool("route.start_fallback", startRes.Fallback()),
		attribute.Bool("route.end_fallback", endRes.Fallback()),
	)
	s.logger.Info("route planned",
		zap.String("commuter_id", commuterID.String()),
		zap.String("plan_id", plan.ID.String()),
		zap.Float64("straight_line_km", straightLine),
		zap.String("preference", string(preference)),
	)

	publishEvent(ctx, s.publisher, s.logger, EventRoutePlanned, commuterID, RoutePlannedEvent{
		PlanID:         plan.ID,
		CommuterID:     commuterID,
		StartLocation:  start,
		EndLocation:    end,
		StraightLineKm: straightLine,
		Preference:     string(preference),
		RouteCount:     len(planned),
		OccurredAt:     now.UTC(),
	})

	return toPlanDTO(plan, planned, plotted), nil
}

// SelectRoute folds the chosen candidate into the commuter's analytics.
func (s *PlannerService) SelectRoute(ctx context.Context, commuterID uuid.UUID, routeID int) (_ *SelectionDTO, err error) {
	ctx, span := tracer.Start(ctx, "PlannerService.SelectRoute",
		trace.WithAttributes(
			attribute.String("commuter.id", commuterID.String()),
			attribute.Int("route.id", routeID),
		))
	defer func() { endSpan(span, err) }()

	var selected route.Candidate
	if err := s.workspaces.With(commuterID, func(ws *Workspace) error {
		c, ok := route.FindCandidate(ws.Candidates(), routeID)
		if !ok {
			return apperror.NewNotFoundError("route", fmt.Sprint(routeID))
		}
		selected = c
		return nil
	}); err != nil {
		return nil, err
	}

	counters, err := s.analytics.Update(ctx, commuterID, func(c *analytics.Counters) {
		c.RecordSelection(selected)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record selection: %w", err)
	}

	s.logger.Info("route selected",
		zap.String("commuter_id", commuterID.String()),
		zap.Int("route_id", routeID),
		zap.String("route_name", string(selected.Name)),
	)

	publishEvent(ctx, s.publisher, s.logger, EventRouteSelected, commuterID, RouteSelectedEvent{
		CommuterID:       commuterID,
		RouteID:          selected.ID,
		RouteName:        string(selected.Name),
		DistanceKm:       selected.DistanceKm,
		EstimatedMinutes: selected.EstimatedMinutes,
		OccurredAt:       s.now().UTC(),
	})

	return &SelectionDTO{
		Route:     selected,
		Analytics: counters.Display(),
		Message:   fmt.Sprintf("Selected %s", selected.Name),
	}, nil
}

// CurrentRoutes returns the commuter's latest route list, possibly empty.
func (s *PlannerService) CurrentRoutes(_ context.Context, commuterID uuid.UUID) ([]PlannedRoute, error) {
	var routes []PlannedRoute
	err := s.workspaces.With(commuterID, func(ws *Workspace) error {
		routes = append([]PlannedRoute{}, ws.Routes...)
		return nil
	})
	return routes, err
}

// DefaultDepartureTime is thirty minutes from now, in the client form's layout.
func DefaultDepartureTime(now time.Time) string {
	return now.Add(30 * time.Minute).UTC().Format(DepartureTimeLayout)
}

func (s *PlannerService) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// commuterZone turns the reported offset into a fixed zone. A nil offset yields a nil zone.
func commuterZone(offsetMinutes *int) (*time.Location, error) {
	if offsetMinutes == nil {
		return nil, nil
	}
	off := *offsetMinutes
	if off < -maxUTCOffsetMinutes || off > maxUTCOffsetMinutes {
		return nil, apperror.NewValidationError(MsgInvalidUTCOffset)
	}
	return time.FixedZone("", off*60), nil
}

func substituteCurrentLocation(field string, ws *Workspace) (string, error) {
	if !strings.EqualFold(field, CurrentLocationKeyword) {
		return field, nil
	}
	current := ws.Device.CurrentLocation()
	if current == nil {
		return "", apperror.NewValidationError(MsgLocationNotAvailable)
	}
	return current.Pair(), nil
}

func toPlanDTO(plan *PlanContext, routes []PlannedRoute, plotted bool) *PlanDTO {
	return &PlanDTO{
		ID:             plan.ID,
		Start:          toEndpointDTO(plan.StartLocation, plan.Start),
		End:            toEndpointDTO(plan.EndLocation, plan.End),
		DepartureTime:  plan.DepartureTime,
		Preference:     string(plan.Preference),
		StraightLineKm: plan.StraightLineKm,
		Routes:         routes,
		MapPlotted:     plotted,
		PlannedAt:      plan.PlannedAt,
	}
}

func toEndpointDTO(label string, res geo.Resolution) EndpointDTO {
	return EndpointDTO{
		Label:      label,
		Coordinate: res.Coordinate,
		Match:      res.Match,
		City:       res.City,
		Fallback:   res.Fallback(),
	}
}

// StatsDTO holds operational figures for the admin endpoint.
type StatsDTO struct {
	ActiveWorkspaces int `json:"active_workspaces"`
	KnownCities      int `json:"known_cities"`
}

// Stats reports how many commuter workspaces are live and how many cities the gazetteer knows.
func (s *PlannerService) Stats() StatsDTO {
	return StatsDTO{
		ActiveWorkspaces: s.workspaces.Len(),
		KnownCities:      s.gazetteer.Len(),
	}
}
