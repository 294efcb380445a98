package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smart-commute/service-commute/internal/domain/analytics"
	"github.com/smart-commute/service-commute/internal/domain/device"
	"github.com/smart-commute/service-commute/internal/domain/geo"
	"github.com/smart-commute/service-commute/internal/domain/mapview"
	"github.com/smart-commute/service-commute/internal/platform/apperror"
)

// PositionReport is one geolocation reading. Watch marks readings from the
// continuous stream, which move the marker without recentering the map.
type PositionReport struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Accuracy float64 `json:"accuracy"`
	Watch    bool    `json:"watch"`
}

// DeviceStatusDTO is the status panel plus the current location, if any.
type DeviceStatusDTO struct {
	Statuses        device.Statuses     `json:"statuses"`
	CurrentLocation *geo.Position       `json:"current_location,omitempty"`
	Capabilities    device.Capabilities `json:"capabilities"`
	MapLoaded       bool                `json:"map_loaded"`
}

// MapVisibilityDTO tells the client whether a lazy map load was scheduled.
type MapVisibilityDTO struct {
	Scheduled   bool  `json:"scheduled"`
	LoadAfterMs int64 `json:"load_after_ms"`
	MapLoaded   bool  `json:"map_loaded"`
}

// SessionDTO is everything the client needs on page load.
type SessionDTO struct {
	CommuterID           uuid.UUID         `json:"commuter_id"`
	Status               DeviceStatusDTO   `json:"status"`
	Analytics            analytics.Display `json:"analytics"`
	SavedRoutes          []SavedRouteDTO   `json:"saved_routes"`
	Routes               []PlannedRoute    `json:"routes"`
	DefaultDepartureTime string            `json:"default_departure_time"`
	Map                  mapview.Overlay   `json:"map"`
}

// DeviceService records client capability readings and drives the map overlay.
type DeviceService struct {
	workspaces   *WorkspaceStore
	analytics    *AnalyticsService
	savedRoutes  *SavedRouteService
	mapLoadDelay time.Duration
	now          func() time.Time
	logger       *zap.Logger
}

// NewDeviceService creates a new DeviceService. mapLoadDelay is how long after
// the map becomes visible it is considered loaded.
func NewDeviceService(
	workspaces *WorkspaceStore,
	analyticsService *AnalyticsService,
	savedRouteService *SavedRouteService,
	mapLoadDelay time.Duration,
	logger *zap.Logger,
) *DeviceService {
	return &DeviceService{
		workspaces:   workspaces,
		analytics:    analyticsService,
		savedRoutes:  savedRouteService,
		mapLoadDelay: mapLoadDelay,
		now:          time.Now,
		logger:       logger,
	}
}

// Bootstrap assembles the initial page state.
func (s *DeviceService) Bootstrap(ctx context.Context, commuterID uuid.UUID) (*SessionDTO, error) {
	display, err := s.analytics.GetAnalytics(ctx, commuterID)
	if err != nil {
		return nil, err
	}
	saved, err := s.savedRoutes.ListSavedRoutes(ctx, commuterID)
	if err != nil {
		return nil, err
	}

	session := &SessionDTO{
		CommuterID:           commuterID,
		Analytics:            display,
		SavedRoutes:          saved,
		DefaultDepartureTime: DefaultDepartureTime(s.now()),
	}
	err = s.workspaces.With(commuterID, func(ws *Workspace) error {
		session.Status = toDeviceStatusDTO(&ws.Device)
		session.Routes = append([]PlannedRoute{}, ws.Routes...)
		session.Map = ws.Overlay.Snapshot()
		return nil
	})
	return session, err
}

// AnnounceCapabilities records which optional platform features the client has.
func (s *DeviceService) AnnounceCapabilities(_ context.Context, commuterID uuid.UUID, caps device.Capabilities) (*DeviceStatusDTO, error) {
	var dto DeviceStatusDTO
	err := s.workspaces.With(commuterID, func(ws *Workspace) error {
		ws.Device.Announce(caps)
		dto = toDeviceStatusDTO(&ws.Device)
		return nil
	})
	return &dto, err
}

// ReportPosition overwrites the current location and moves the map marker.
func (s *DeviceService) ReportPosition(_ context.Context, commuterID uuid.UUID, report PositionReport) (*DeviceStatusDTO, error) {
	pos := geo.Position{Coordinate: geo.Coordinate{Lat: report.Lat, Lng: report.Lng}, AccuracyM: report.Accuracy}
	if !pos.Valid() {
		return nil, apperror.NewValidationError("latitude must be within [-90, 90] and longitude within [-180, 180]")
	}

	var dto DeviceStatusDTO
	err := s.workspaces.With(commuterID, func(ws *Workspace) error {
		ws.Device.ReportPosition(pos)
		ws.Overlay.SetCurrentLocation(pos.Coordinate, !report.Watch)
		dto = toDeviceStatusDTO(&ws.Device)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("position reported",
		zap.String("commuter_id", commuterID.String()),
		zap.Bool("watch", report.Watch),
		zap.Float64("accuracy_m", report.Accuracy),
	)
	return &dto, nil
}

// DenyLocation records that location access was refused.
func (s *DeviceService) DenyLocation(_ context.Context, commuterID uuid.UUID) (*DeviceStatusDTO, error) {
	var dto DeviceStatusDTO
	err := s.workspaces.With(commuterID, func(ws *Workspace) error {
		ws.Device.DenyLocation()
		dto = toDeviceStatusDTO(&ws.Device)
		return nil
	})
	return &dto, err
}

// ReportNetwork records the latest connection descriptor.
func (s *DeviceService) ReportNetwork(_ context.Context, commuterID uuid.UUID, network device.Network) (*DeviceStatusDTO, error) {
	if network.EffectiveType == "" {
		return nil, apperror.NewValidationError("effective_type is required")
	}
	if network.DownlinkMbps < 0 {
		return nil, apperror.NewValidationError("downlink must not be negative")
	}

	var dto DeviceStatusDTO
	err := s.workspaces.With(commuterID, func(ws *Workspace) error {
		ws.Device.ReportNetwork(network)
		dto = toDeviceStatusDTO(&ws.Device)
		return nil
	})
	return &dto, err
}

// Status returns the status panel.
func (s *DeviceService) Status(_ context.Context, commuterID uuid.UUID) (*DeviceStatusDTO, error) {
	var dto DeviceStatusDTO
	err := s.workspaces.With(commuterID, func(ws *Workspace) error {
		dto = toDeviceStatusDTO(&ws.Device)
		return nil
	})
	return &dto, err
}

// MapVisible schedules the lazy map load the first time the map scrolls into view.
func (s *DeviceService) MapVisible(_ context.Context, commuterID uuid.UUID) (*MapVisibilityDTO, error) {
	var dto MapVisibilityDTO
	err := s.workspaces.With(commuterID, func(ws *Workspace) error {
		dto.Scheduled = ws.Device.MarkMapVisible()
		dto.MapLoaded = ws.Device.MapLoaded()
		return nil
	})
	if err != nil || !dto.Scheduled {
		return &dto, err
	}

	dto.LoadAfterMs = s.mapLoadDelay.Milliseconds()
	if s.mapLoadDelay <= 0 {
		s.loadMap(commuterID)
		dto.MapLoaded = true
		return &dto, nil
	}
	time.AfterFunc(s.mapLoadDelay, func() { s.loadMap(commuterID) })
	return &dto, nil
}

// AddMapClick drops a marker where the commuter clicked.
func (s *DeviceService) AddMapClick(_ context.Context, commuterID uuid.UUID, c geo.Coordinate) (*mapview.Marker, error) {
	if !c.Valid() {
		return nil, apperror.NewValidationError("latitude must be within [-90, 90] and longitude within [-180, 180]")
	}

	var marker mapview.Marker
	err := s.workspaces.With(commuterID, func(ws *Workspace) error {
		if !ws.Overlay.Loaded {
			return apperror.NewInvalidStateError("map is not loaded yet")
		}
		marker = ws.Overlay.AddClickMarker(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &marker, nil
}

// Overlay returns a snapshot of the commuter's map.
func (s *DeviceService) Overlay(_ context.Context, commuterID uuid.UUID) (*mapview.Overlay, error) {
	var snap mapview.Overlay
	err := s.workspaces.With(commuterID, func(ws *Workspace) error {
		snap = ws.Overlay.Snapshot()
		return nil
	})
	return &snap, err
}

func (s *DeviceService) loadMap(commuterID uuid.UUID) {
	live, err := s.workspaces.WithExisting(commuterID, func(ws *Workspace) error {
		var current *geo.Coordinate
		if pos := ws.Device.CurrentLocation(); pos != nil {
			current = &pos.Coordinate
		}
		ws.Overlay.Load(current)
		ws.Device.MarkMapLoaded()
		return nil
	})
	if err != nil {
		s.logger.Error("failed to load interactive map",
			zap.String("commuter_id", commuterID.String()),
			zap.Error(err),
		)
		return
	}
	if !live {
		s.logger.Info("workspace evicted before map load", zap.String("commuter_id", commuterID.String()))
		return
	}
	s.logger.Info("interactive map loaded", zap.String("commuter_id", commuterID.String()))
}

func toDeviceStatusDTO(st *device.State) DeviceStatusDTO {
	return DeviceStatusDTO{
		Statuses:        st.Statuses(),
		CurrentLocation: st.CurrentLocation(),
		Capabilities:    st.Capabilities(),
		MapLoaded:       st.MapLoaded(),
	}
}
