package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/smart-commute/service-commute/internal/application"
	"github.com/smart-commute/service-commute/internal/domain/device"
	"github.com/smart-commute/service-commute/internal/platform/apperror"
	"github.com/smart-commute/service-commute/internal/platform/kafka"
)

// TopicTelemetry carries device readings pushed by clients or edge gateways.
const TopicTelemetry = "commute.telemetry"

// Telemetry event types.
const (
	DevicePositionReported = "device.position_reported"
	DeviceNetworkChanged   = "device.network_changed"
)

// PositionReportedEvent is one reading from a continuous position watch.
type PositionReportedEvent struct {
	CommuterID uuid.UUID `json:"commuter_id"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	Accuracy   float64   `json:"accuracy"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NetworkChangedEvent is a connection quality change.
type NetworkChangedEvent struct {
	CommuterID    uuid.UUID `json:"commuter_id"`
	EffectiveType string    `json:"effective_type"`
	Downlink      float64   `json:"downlink"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// DeviceRecorder receives telemetry readings.
type DeviceRecorder interface {
	ReportPosition(ctx context.Context, commuterID uuid.UUID, report application.PositionReport) (*application.DeviceStatusDTO, error)
	ReportNetwork(ctx context.Context, commuterID uuid.UUID, network device.Network) (*application.DeviceStatusDTO, error)
}

// TelemetryConsumer feeds device telemetry into the commuter workspaces.
type TelemetryConsumer struct {
	consumer *kafka.Consumer
	recorder DeviceRecorder
	logger   *zap.Logger
}

// NewTelemetryConsumer creates a new TelemetryConsumer.
func NewTelemetryConsumer(
	brokers []string,
	groupID string,
	recorder DeviceRecorder,
	logger *zap.Logger,
) *TelemetryConsumer {
	return &TelemetryConsumer{
		consumer: kafka.NewConsumer(brokers, groupID, TopicTelemetry, logger),
		recorder: recorder,
		logger:   logger,
	}
}

// Start begins consuming telemetry. This blocks until the context is cancelled.
func (c *TelemetryConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *TelemetryConsumer) Close() error {
	return c.consumer.Close()
}

func (c *TelemetryConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	cloudEvent, err := kafka.ParseCloudEvent(msg.Value)
	if err != nil {
		c.logger.Error("failed to parse cloud event from telemetry topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return nil // Don't retry malformed messages
	}

	switch cloudEvent.Type {
	case DevicePositionReported:
		return c.handlePositionReported(ctx, cloudEvent)
	case DeviceNetworkChanged:
		return c.handleNetworkChanged(ctx, cloudEvent)
	default:
		c.logger.Debug("ignoring unhandled telemetry event type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}
}

func (c *TelemetryConsumer) handlePositionReported(ctx context.Context, cloudEvent kafka.CloudEvent) error {
	var evt PositionReportedEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse PositionReportedEvent data", zap.Error(err))
		return nil
	}
	commuterID, ok := c.commuterOf(evt.CommuterID, cloudEvent)
	if !ok {
		return nil
	}

	_, err := c.recorder.ReportPosition(ctx, commuterID, application.PositionReport{
		Lat:      evt.Lat,
		Lng:      evt.Lng,
		Accuracy: evt.Accuracy,
		Watch:    true,
	})
	return c.settle(err, cloudEvent, commuterID)
}

func (c *TelemetryConsumer) handleNetworkChanged(ctx context.Context, cloudEvent kafka.CloudEvent) error {
	var evt NetworkChangedEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse NetworkChangedEvent data", zap.Error(err))
		return nil
	}
	commuterID, ok := c.commuterOf(evt.CommuterID, cloudEvent)
	if !ok {
		return nil
	}

	_, err := c.recorder.ReportNetwork(ctx, commuterID, device.Network{
		EffectiveType: evt.EffectiveType,
		DownlinkMbps:  evt.Downlink,
	})
	return c.settle(err, cloudEvent, commuterID)
}

// commuterOf falls back to the envelope subject when the payload has no commuter.
func (c *TelemetryConsumer) commuterOf(fromData uuid.UUID, cloudEvent kafka.CloudEvent) (uuid.UUID, bool) {
	if fromData != uuid.Nil {
		return fromData, true
	}
	id, err := uuid.Parse(cloudEvent.Subject)
	if err != nil || id == uuid.Nil {
		c.logger.Warn("telemetry event without commuter id",
			zap.String("type", cloudEvent.Type),
			zap.String("event_id", cloudEvent.ID),
		)
		return uuid.Nil, false
	}
	return id, true
}

// settle drops readings the domain rejects. Other errors go back to the consumer, which retries the message.
func (c *TelemetryConsumer) settle(err error, cloudEvent kafka.CloudEvent, commuterID uuid.UUID) error {
	if err == nil {
		return nil
	}
	if apperror.Is(err, apperror.KindValidation) {
		c.logger.Warn("rejected telemetry reading",
			zap.String("type", cloudEvent.Type),
			zap.String("commuter_id", commuterID.String()),
			zap.Error(err),
		)
		return nil
	}
	c.logger.Error("failed to record telemetry",
		zap.String("type", cloudEvent.Type),
		zap.String("commuter_id", commuterID.String()),
		zap.Error(err),
	)
	return err
}
