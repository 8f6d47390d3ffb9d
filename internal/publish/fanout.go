// Package publish forwards every decoded reading to external sinks (MQTT,
// Kafka) without ever blocking the collector.
package publish

import (
	"context"
	"log/slog"

	"google.golang.org/protobuf/encoding/protojson"

	"github.com/joshp123/govee-collector/internal/h5075"
	"github.com/joshp123/govee-collector/internal/service"
	goveev1 "github.com/joshp123/govee-collector/proto/gen/govee/v1"
)

// Publisher delivers one encoded DeviceData message.
type Publisher interface {
	Name() string
	Publish(ctx context.Context, device *goveev1.DeviceData, payload []byte) error
	Close() error
}

// Names resolves friendly names for payloads.
type Names interface {
	FriendlyName(name string) (string, bool)
}

type update struct {
	name    string
	reading h5075.Reading
}

// Fanout queues readings and delivers them to every publisher from a single
// goroutine. When the queue is full new readings are dropped.
type Fanout struct {
	names      Names
	publishers []Publisher
	queue      chan update
	logger     *slog.Logger
}

var payloadOptions = protojson.MarshalOptions{UseProtoNames: true}

func NewFanout(names Names, size int, logger *slog.Logger, publishers ...Publisher) *Fanout {
	if size <= 0 {
		size = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fanout{
		names:      names,
		publishers: publishers,
		queue:      make(chan update, size),
		logger:     logger.With("component", "publish"),
	}
}

// Publish enqueues a reading. It never blocks.
func (f *Fanout) Publish(name string, reading h5075.Reading) {
	select {
	case f.queue <- update{name: name, reading: reading}:
	default:
		droppedTotal.Inc()
	}
}

// Run delivers queued readings until ctx is done, then closes the publishers.
func (f *Fanout) Run(ctx context.Context) error {
	defer f.close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case u := <-f.queue:
			f.deliver(ctx, u)
		}
	}
}

func (f *Fanout) deliver(ctx context.Context, u update) {
	friendly, ok := f.names.FriendlyName(u.name)
	if !ok {
		friendly = u.name
	}
	device := service.DeviceData(u.name, friendly, u.reading, true)
	payload, err := payloadOptions.Marshal(device)
	if err != nil {
		f.logger.Error("encode reading", "device", u.name, "error", err)
		return
	}

	for _, publisher := range f.publishers {
		if err := publisher.Publish(ctx, device, payload); err != nil {
			publishedTotal.WithLabelValues(publisher.Name(), "error").Inc()
			f.logger.Warn("publish reading", "publisher", publisher.Name(), "device", u.name, "error", err)
			continue
		}
		publishedTotal.WithLabelValues(publisher.Name(), "ok").Inc()
	}
}

func (f *Fanout) close() {
	for _, publisher := range f.publishers {
		if err := publisher.Close(); err != nil {
			f.logger.Warn("close publisher", "publisher", publisher.Name(), "error", err)
		}
	}
}
