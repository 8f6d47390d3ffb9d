package publish

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/joshp123/govee-collector/internal/h5075"
	goveev1 "github.com/joshp123/govee-collector/proto/gen/govee/v1"
)

type stubNames map[string]string

func (n stubNames) FriendlyName(name string) (string, bool) {
	friendly, ok := n[name]
	return friendly, ok
}

type stubPublisher struct {
	mu       sync.Mutex
	devices  []*goveev1.DeviceData
	payloads [][]byte
	err      error
	closed   bool
	received chan struct{}
}

func newStubPublisher() *stubPublisher {
	return &stubPublisher{received: make(chan struct{}, 16)}
}

func (p *stubPublisher) Name() string { return "stub" }

func (p *stubPublisher) Publish(_ context.Context, device *goveev1.DeviceData, payload []byte) error {
	p.mu.Lock()
	p.devices = append(p.devices, device)
	p.payloads = append(p.payloads, payload)
	p.mu.Unlock()
	p.received <- struct{}{}
	return p.err
}

func (p *stubPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

func TestFanoutDeliversToEveryPublisher(t *testing.T) {
	first, second := newStubPublisher(), newStubPublisher()
	second.err = errors.New("broker down")
	fanout := NewFanout(stubNames{"GVH5075_AAAA": "Living room"}, 4, nil, first, second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- fanout.Run(ctx) }()

	fanout.Publish("GVH5075_AAAA", h5075.NewReading(230, 522, 57, time.Unix(1700000000, 0)))
	for _, p := range []*stubPublisher{first, second} {
		select {
		case <-p.received:
		case <-time.After(2 * time.Second):
			t.Fatalf("publisher did not receive reading")
		}
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("run: %v", err)
	}

	var decoded goveev1.DeviceData
	if err := protojson.Unmarshal(first.payloads[0], &decoded); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if decoded.GetFriendlyName() != "Living room" || decoded.GetTemperatureInC() != 23.0 {
		t.Fatalf("unexpected payload: %v", &decoded)
	}
	if !first.closed || !second.closed {
		t.Fatalf("publishers not closed on shutdown")
	}
}

func TestFanoutDropsWhenFull(t *testing.T) {
	publisher := newStubPublisher()
	fanout := NewFanout(stubNames{}, 1, nil, publisher)

	reading := h5075.NewReading(1, 1, 1, time.Now())
	fanout.Publish("GVH5075_AAAA", reading)
	fanout.Publish("GVH5075_AAAA", reading)

	if len(fanout.queue) != 1 {
		t.Fatalf("queue len = %d", len(fanout.queue))
	}
}

func TestStateTopic(t *testing.T) {
	cases := map[string]string{
		"govee":  "govee/GVH5075_AAAA/state",
		"/home/": "home/GVH5075_AAAA/state",
		"":       "GVH5075_AAAA/state",
		"a/b":    "a/b/GVH5075_AAAA/state",
	}
	for prefix, want := range cases {
		if got := StateTopic(prefix, "GVH5075_AAAA"); got != want {
			t.Fatalf("StateTopic(%q) = %q, want %q", prefix, got, want)
		}
	}
}

type stubWriter struct {
	messages []kafka.Message
	closed   bool
}

func (w *stubWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *stubWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisherKeysByDevice(t *testing.T) {
	writer := &stubWriter{}
	publisher := &KafkaPublisher{writer: writer}
	at := time.Unix(1700000000, 0)
	device := &goveev1.DeviceData{UniqueId: "GVH5075_AAAA"}
	device.LastUpdated = timestamppb.New(at)

	if err := publisher.Publish(context.Background(), device, []byte(`{}`)); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(writer.messages) != 1 {
		t.Fatalf("messages = %d", len(writer.messages))
	}
	msg := writer.messages[0]
	if string(msg.Key) != "GVH5075_AAAA" || string(msg.Value) != `{}` || !msg.Time.Equal(at) {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if err := publisher.Close(); err != nil || !writer.closed {
		t.Fatalf("close: %v", err)
	}
}
