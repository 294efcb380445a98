// Package device tracks which client capabilities are present and derives the status labels.
package device

import (
	"fmt"
	"strconv"

	"github.com/smart-commute/service-commute/internal/domain/geo"
)

// Status labels shown by the client.
const (
	LabelNotSupported      = "Not supported"
	LabelRequesting        = "Requesting permission..."
	LabelLocated           = "Located ✓"
	LabelDenied            = "Denied"
	LabelUnknown           = "Unknown"
	LabelWatching          = "Watching"
	LabelMapLoaded         = "Map loaded ✓"
	LabelBackgroundEnabled = "Available"
)

// Capabilities are the optional platform features the client announces.
type Capabilities struct {
	Geolocation          bool `json:"geolocation"`
	NetworkInformation   bool `json:"network_information"`
	IntersectionObserver bool `json:"intersection_observer"`
	IdleCallback         bool `json:"idle_callback"`
}

// Network describes the client's connection quality.
type Network struct {
	EffectiveType string  `json:"effective_type"`
	DownlinkMbps  float64 `json:"downlink"`
}

// Label renders the network as "<type> (<downlink>Mbps)".
func (n Network) Label() string {
	return fmt.Sprintf("%s (%sMbps)", n.EffectiveType, strconv.FormatFloat(n.DownlinkMbps, 'f', -1, 64))
}

// Statuses are the four indicator labels.
type Statuses struct {
	Location   string `json:"location"`
	Network    string `json:"network"`
	Observer   string `json:"observer"`
	Background string `json:"background"`
}

// State is one commuter's capability state. The zero value means nothing was announced.
type State struct {
	announced  bool
	caps       Capabilities
	current    *geo.Position
	denied     bool
	network    *Network
	mapVisible bool
	mapLoaded  bool
}

// Announce records the client's capabilities.
func (s *State) Announce(caps Capabilities) {
	s.announced = true
	s.caps = caps
}

// Capabilities returns the announced capabilities.
func (s *State) Capabilities() Capabilities { return s.caps }

// ReportPosition overwrites the current location. A reading implies geolocation support.
func (s *State) ReportPosition(pos geo.Position) {
	p := pos
	s.current = &p
	s.denied = false
	s.caps.Geolocation = true
}

// DenyLocation records that the commuter refused location access.
func (s *State) DenyLocation() {
	s.denied = true
}

// CurrentLocation returns the latest reading, or nil.
func (s *State) CurrentLocation() *geo.Position {
	if s.current == nil {
		return nil
	}
	p := *s.current
	return &p
}

// ReportNetwork overwrites the network descriptor.
func (s *State) ReportNetwork(n Network) {
	s.network = &n
	s.caps.NetworkInformation = true
}

// MarkMapVisible records that the map container scrolled into view.
// It returns true the first time, when the lazy load should be scheduled.
func (s *State) MarkMapVisible() bool {
	if s.mapVisible {
		return false
	}
	s.mapVisible = true
	return true
}

// MarkMapLoaded records that the map finished loading.
func (s *State) MarkMapLoaded() {
	s.mapLoaded = true
}

// MapLoaded reports whether the map has been loaded.
func (s *State) MapLoaded() bool { return s.mapLoaded }

// Statuses derives the indicator labels from the current state.
func (s *State) Statuses() Statuses {
	st := Statuses{
		Location:   LabelNotSupported,
		Network:    LabelNotSupported,
		Observer:   LabelWatching,
		Background: LabelNotSupported,
	}

	switch {
	case s.current != nil:
		st.Location = LabelLocated
	case s.denied:
		st.Location = LabelDenied
	case s.caps.Geolocation:
		st.Location = LabelRequesting
	case !s.announced:
		st.Location = LabelUnknown
	}

	if s.network != nil {
		st.Network = s.network.Label()
	}

	if s.mapLoaded {
		st.Observer = LabelMapLoaded
	} else if s.announced && !s.caps.IntersectionObserver {
		st.Observer = LabelNotSupported
	}

	if s.caps.IdleCallback {
		st.Background = LabelBackgroundEnabled
	}
	return st
}
