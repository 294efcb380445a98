package kafka

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloudEvent_EnvelopeDecodes(t *testing.T) {
	type payload struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}

	ce, err := NewCloudEvent("commute-client", "device.position_reported", payload{Lat: 19.076, Lng: 72.8777})
	require.NoError(t, err)
	assert.Equal(t, "1.0", ce.SpecVersion)
	assert.NotEmpty(t, ce.ID)

	raw, err := json.Marshal(ce)
	require.NoError(t, err)

	parsed, err := ParseCloudEvent(raw)
	require.NoError(t, err)
	assert.Equal(t, "device.position_reported", parsed.Type)

	var got payload
	require.NoError(t, parsed.ParseData(&got))
	assert.InDelta(t, 19.076, got.Lat, 1e-9)
}

func TestParseCloudEvent_RejectsGarbage(t *testing.T) {
	_, err := ParseCloudEvent([]byte("{not json"))
	assert.Error(t, err)

	_, err = ParseCloudEvent([]byte(`{"id":"x"}`))
	assert.Error(t, err)
}
