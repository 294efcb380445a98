package mapview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-commute/service-commute/internal/domain/geo"
)

var tiles = TileLayer{URL: "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png", Attribution: "© OpenStreetMap contributors"}

func TestLoad_DefaultCenter(t *testing.T) {
	o := New(tiles)
	o.Load(nil)

	assert.True(t, o.Loaded)
	assert.Equal(t, geo.DefaultCoordinate, o.Center)
	assert.Equal(t, DefaultZoom, o.Zoom)
	assert.Empty(t, o.Markers)
}

func TestLoad_CentersOnCurrentLocation(t *testing.T) {
	o := New(tiles)
	here := geo.Coordinate{Lat: 12.97, Lng: 77.59}
	o.Load(&here)

	assert.Equal(t, here, o.Center)
	assert.Equal(t, LocatedZoom, o.Zoom)
	require.Len(t, o.Markers, 1)
	assert.Equal(t, "Your current location", o.Markers[0].Popup)
}

func TestSetCurrentLocation_ReplacesMarker(t *testing.T) {
	o := New(tiles)
	o.SetCurrentLocation(geo.Coordinate{Lat: 1, Lng: 1}, true)
	assert.Empty(t, o.Markers, "ignored before load")

	o.Load(nil)
	o.SetCurrentLocation(geo.Coordinate{Lat: 1, Lng: 1}, false)
	o.SetCurrentLocation(geo.Coordinate{Lat: 2, Lng: 2}, false)

	require.Len(t, o.Markers, 1)
	assert.Equal(t, 2.0, o.Markers[0].Position.Lat)
	assert.Equal(t, DefaultZoom, o.Zoom)
}

func TestPlotRoute_KeepsCurrentMarkerOnly(t *testing.T) {
	o := New(tiles)
	start := geo.Coordinate{Lat: 19.0760, Lng: 72.8777}
	end := geo.Coordinate{Lat: 18.5204, Lng: 73.8567}

	assert.False(t, o.PlotRoute("Mumbai", start, "Pune", end))

	here := geo.Coordinate{Lat: 19.1, Lng: 72.9}
	o.Load(&here)
	o.AddClickMarker(geo.Coordinate{Lat: 10, Lng: 10})
	require.True(t, o.PlotRoute("Mumbai", start, "Pune", end))
	require.True(t, o.PlotRoute("Mumbai", start, "Pune", end))

	require.Len(t, o.Markers, 3)
	assert.Equal(t, MarkerCurrent, o.Markers[0].Kind)
	assert.Equal(t, "Start: Mumbai", o.Markers[1].Popup)
	assert.Equal(t, "End: Pune", o.Markers[2].Popup)
	require.Len(t, o.Polylines, 1)
	assert.Equal(t, RouteColor, o.Polylines[0].Color)
	require.NotNil(t, o.FitBounds)
	assert.Equal(t, geo.Coordinate{Lat: 18.5204, Lng: 72.8777}, o.FitBounds.SouthWest)
	assert.Equal(t, geo.Coordinate{Lat: 19.0760, Lng: 73.8567}, o.FitBounds.NorthEast)
}

func TestAddClickMarker_Popup(t *testing.T) {
	o := New(tiles)
	m := o.AddClickMarker(geo.Coordinate{Lat: 28.613939, Lng: 77.209023})
	assert.Equal(t, "Location: 28.6139, 77.2090", m.Popup)
}

func TestSnapshot_IsIndependent(t *testing.T) {
	o := New(tiles)
	o.Load(nil)
	o.PlotRoute("a", geo.Coordinate{Lat: 1, Lng: 1}, "b", geo.Coordinate{Lat: 2, Lng: 2})

	snap := o.Snapshot()
	o.Clear()

	assert.Len(t, snap.Markers, 2)
	assert.Len(t, snap.Polylines, 1)
	assert.NotNil(t, snap.FitBounds)
}
