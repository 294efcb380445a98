// Package mapview projects commuter state into the marker/line primitives the client map draws.
package mapview

import (
	"fmt"
	"math"

	"github.com/smart-commute/service-commute/internal/domain/geo"
)

// Zoom levels.
const (
	DefaultZoom  = 5
	LocatedZoom  = 13
	FitPaddingPx = 20
)

// Route line styling.
const (
	RouteColor   = "#667eea"
	RouteWeight  = 4
	RouteOpacity = 0.8
)

// MarkerKind distinguishes the current-location marker from everything else.
type MarkerKind string

const (
	MarkerCurrent MarkerKind = "current"
	MarkerStart   MarkerKind = "start"
	MarkerEnd     MarkerKind = "end"
	MarkerClick   MarkerKind = "click"
)

// Marker is a pin with a popup.
type Marker struct {
	Kind      MarkerKind     `json:"kind"`
	Position  geo.Coordinate `json:"position"`
	Popup     string         `json:"popup"`
	OpenPopup bool           `json:"open_popup,omitempty"`
}

// Polyline is a styled line through points.
type Polyline struct {
	Points  []geo.Coordinate `json:"points"`
	Color   string           `json:"color"`
	Weight  int              `json:"weight"`
	Opacity float64          `json:"opacity"`
}

// Bounds is a lat/lng bounding box with a pixel padding hint.
type Bounds struct {
	SouthWest geo.Coordinate `json:"south_west"`
	NorthEast geo.Coordinate `json:"north_east"`
	PaddingPx int            `json:"padding_px"`
}

// TileLayer names the raster tile source.
type TileLayer struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
}

// Overlay is everything the client map needs to render.
type Overlay struct {
	Loaded    bool           `json:"loaded"`
	Center    geo.Coordinate `json:"center"`
	Zoom      int            `json:"zoom"`
	Tiles     TileLayer      `json:"tiles"`
	Markers   []Marker       `json:"markers"`
	Polylines []Polyline     `json:"polylines"`
	FitBounds *Bounds        `json:"fit_bounds,omitempty"`
}

// New returns an unloaded overlay using the given tile layer.
func New(tiles TileLayer) *Overlay {
	return &Overlay{Tiles: tiles, Center: geo.DefaultCoordinate, Zoom: DefaultZoom}
}

// Load initializes the map, centering on current when known.
func (o *Overlay) Load(current *geo.Coordinate) {
	o.Loaded = true
	o.Center = geo.DefaultCoordinate
	o.Zoom = DefaultZoom
	if current != nil {
		o.Center = *current
		o.Zoom = LocatedZoom
		o.setCurrentMarker(*current)
	}
}

// SetCurrentLocation replaces the current-location marker. Ignored until loaded.
func (o *Overlay) SetCurrentLocation(c geo.Coordinate, recenter bool) {
	if !o.Loaded {
		return
	}
	if recenter {
		o.Center = c
		o.Zoom = LocatedZoom
	}
	o.setCurrentMarker(c)
}

func (o *Overlay) setCurrentMarker(c geo.Coordinate) {
	kept := o.Markers[:0]
	for _, m := range o.Markers {
		if m.Kind != MarkerCurrent {
			kept = append(kept, m)
		}
	}
	o.Markers = append(kept, Marker{
		Kind:      MarkerCurrent,
		Position:  c,
		Popup:     "Your current location",
		OpenPopup: true,
	})
}

// AddClickMarker drops a pin where the commuter clicked.
func (o *Overlay) AddClickMarker(c geo.Coordinate) Marker {
	m := Marker{
		Kind:     MarkerClick,
		Position: c,
		Popup:    fmt.Sprintf("Location: %.4f, %.4f", c.Lat, c.Lng),
	}
	o.Markers = append(o.Markers, m)
	return m
}

// PlotRoute clears previous route drawings and draws start, end and a straight line between them.
// It returns false when the map is not loaded yet.
func (o *Overlay) PlotRoute(startLabel string, start geo.Coordinate, endLabel string, end geo.Coordinate) bool {
	if !o.Loaded {
		return false
	}
	o.Clear()
	o.Markers = append(o.Markers,
		Marker{Kind: MarkerStart, Position: start, Popup: "Start: " + startLabel},
		Marker{Kind: MarkerEnd, Position: end, Popup: "End: " + endLabel},
	)
	o.Polylines = append(o.Polylines, Polyline{
		Points:  []geo.Coordinate{start, end},
		Color:   RouteColor,
		Weight:  RouteWeight,
		Opacity: RouteOpacity,
	})
	o.FitBounds = &Bounds{
		SouthWest: geo.Coordinate{Lat: math.Min(start.Lat, end.Lat), Lng: math.Min(start.Lng, end.Lng)},
		NorthEast: geo.Coordinate{Lat: math.Max(start.Lat, end.Lat), Lng: math.Max(start.Lng, end.Lng)},
		PaddingPx: FitPaddingPx,
	}
	return true
}

// Clear removes every polyline and every marker except the current-location one.
func (o *Overlay) Clear() {
	o.Polylines = nil
	o.FitBounds = nil
	kept := o.Markers[:0]
	for _, m := range o.Markers {
		if m.Kind == MarkerCurrent {
			kept = append(kept, m)
		}
	}
	o.Markers = kept
}

// Snapshot returns a deep copy safe to hand to other goroutines.
func (o *Overlay) Snapshot() Overlay {
	cp := *o
	cp.Markers = append([]Marker(nil), o.Markers...)
	cp.Polylines = make([]Polyline, len(o.Polylines))
	for i, p := range o.Polylines {
		p.Points = append([]geo.Coordinate(nil), p.Points...)
		cp.Polylines[i] = p
	}
	if o.FitBounds != nil {
		b := *o.FitBounds
		cp.FitBounds = &b
	}
	return cp
}
