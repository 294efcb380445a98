package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smart-commute/service-commute/internal/application"
	"github.com/smart-commute/service-commute/internal/domain/device"
	"github.com/smart-commute/service-commute/internal/platform/apperror"
	"github.com/smart-commute/service-commute/internal/platform/kafka"
)

type recordedCall struct {
	commuterID uuid.UUID
	position   *application.PositionReport
	network    *device.Network
}

type fakeRecorder struct {
	calls []recordedCall
	err   error
}

func (f *fakeRecorder) ReportPosition(_ context.Context, id uuid.UUID, r application.PositionReport) (*application.DeviceStatusDTO, error) {
	f.calls = append(f.calls, recordedCall{commuterID: id, position: &r})
	return &application.DeviceStatusDTO{}, f.err
}

func (f *fakeRecorder) ReportNetwork(_ context.Context, id uuid.UUID, n device.Network) (*application.DeviceStatusDTO, error) {
	f.calls = append(f.calls, recordedCall{commuterID: id, network: &n})
	return &application.DeviceStatusDTO{}, f.err
}

func message(t *testing.T, eventType, subject string, data any) kafkago.Message {
	t.Helper()
	ce, err := kafka.NewCloudEvent("edge-gateway", eventType, data)
	require.NoError(t, err)
	ce.Subject = subject
	raw, err := json.Marshal(ce)
	require.NoError(t, err)
	return kafkago.Message{Topic: TopicTelemetry, Value: raw}
}

func newTestConsumer(rec DeviceRecorder) *TelemetryConsumer {
	return &TelemetryConsumer{recorder: rec, logger: zap.NewNop()}
}

func TestHandleMessage_PositionIsWatchReading(t *testing.T) {
	rec := &fakeRecorder{}
	c := newTestConsumer(rec)
	commuter := uuid.New()

	err := c.handleMessage(context.Background(), message(t, DevicePositionReported, "", PositionReportedEvent{
		CommuterID: commuter, Lat: 19.07, Lng: 72.87, Accuracy: 12,
	}))
	require.NoError(t, err)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, commuter, rec.calls[0].commuterID)
	require.NotNil(t, rec.calls[0].position)
	assert.True(t, rec.calls[0].position.Watch)
	assert.Equal(t, 72.87, rec.calls[0].position.Lng)
}

func TestHandleMessage_NetworkUsesSubjectFallback(t *testing.T) {
	rec := &fakeRecorder{}
	c := newTestConsumer(rec)
	commuter := uuid.New()

	err := c.handleMessage(context.Background(), message(t, DeviceNetworkChanged, commuter.String(), NetworkChangedEvent{
		EffectiveType: "3g", Downlink: 1.5,
	}))
	require.NoError(t, err)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, commuter, rec.calls[0].commuterID)
	assert.Equal(t, "3g", rec.calls[0].network.EffectiveType)
}

func TestHandleMessage_SkipsWhatCannotBeApplied(t *testing.T) {
	rec := &fakeRecorder{}
	c := newTestConsumer(rec)
	ctx := context.Background()

	assert.NoError(t, c.handleMessage(ctx, kafkago.Message{Value: []byte("not json")}))
	assert.NoError(t, c.handleMessage(ctx, message(t, "device.battery_low", uuid.NewString(), struct{}{})))
	assert.NoError(t, c.handleMessage(ctx, message(t, DeviceNetworkChanged, "", NetworkChangedEvent{EffectiveType: "4g"})))
	assert.Empty(t, rec.calls)
}

func TestHandleMessage_ValidationErrorsAreDropped(t *testing.T) {
	rec := &fakeRecorder{err: apperror.NewValidationError("latitude out of range")}
	c := newTestConsumer(rec)

	err := c.handleMessage(context.Background(), message(t, DevicePositionReported, uuid.NewString(), PositionReportedEvent{Lat: 200}))
	assert.NoError(t, err)
}

func TestHandleMessage_OtherErrorsAreReturnedForRetry(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("boom")}
	c := newTestConsumer(rec)

	err := c.handleMessage(context.Background(), message(t, DevicePositionReported, uuid.NewString(), PositionReportedEvent{Lat: 1}))
	assert.Error(t, err)
}

type captureWriter struct {
	topic string
	event kafka.CloudEvent
}

func (w *captureWriter) PublishEvent(_ context.Context, topic string, event kafka.CloudEvent) error {
	w.topic, w.event = topic, event
	return nil
}

func TestKafkaPublisher_SetsSubjectAndSource(t *testing.T) {
	w := &captureWriter{}
	p := NewKafkaPublisher(w)
	commuter := uuid.NewString()

	require.NoError(t, p.Publish(context.Background(), application.TopicCommuteEvents,
		application.EventRouteSaved, commuter, application.SavedRouteEvent{RouteName: "Highway"}))

	assert.Equal(t, application.TopicCommuteEvents, w.topic)
	assert.Equal(t, commuter, w.event.Subject)
	assert.Equal(t, ServiceSource, w.event.Source)
	assert.Equal(t, application.EventRouteSaved, w.event.Type)

	var data application.SavedRouteEvent
	require.NoError(t, w.event.ParseData(&data))
	assert.Equal(t, "Highway", data.RouteName)
}
