package publish

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"

	configv1 "github.com/joshp123/govee-collector/proto/gen/config/v1"
	goveev1 "github.com/joshp123/govee-collector/proto/gen/govee/v1"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes readings keyed by device name so each sensor stays on
// one partition.
type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(cfg *configv1.KafkaConfig) (*KafkaPublisher, error) {
	if cfg == nil || len(cfg.Brokers) == 0 || cfg.Topic == "" {
		return nil, fmt.Errorf("kafka.brokers and kafka.topic are required")
	}
	return &KafkaPublisher{writer: &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}}, nil
}

func (p *KafkaPublisher) Name() string { return "kafka" }

func (p *KafkaPublisher) Publish(ctx context.Context, device *goveev1.DeviceData, payload []byte) error {
	msg := kafka.Message{
		Key:   []byte(device.GetUniqueId()),
		Value: payload,
	}
	if ts := device.GetLastUpdated(); ts != nil {
		msg.Time = ts.AsTime()
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
