package collector

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/joshp123/govee-collector/internal/h5075"
	"github.com/joshp123/govee-collector/internal/radio"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type stubRegistry map[string]bool

func (r stubRegistry) Contains(name string) bool { return r[name] }

type recordingSink struct {
	mu    sync.Mutex
	names []string
}

func (s *recordingSink) Publish(name string, _ h5075.Reading) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names = append(s.names, name)
}

func govee(payload ...byte) map[uint16][]byte {
	return map[uint16][]byte{h5075.CompanyID: payload}
}

func runEvents(t *testing.T, c *Collector, events ...radio.Event) {
	t.Helper()
	ch := make(chan radio.Event, len(events))
	for _, ev := range events {
		ch <- ev
	}
	close(ch)
	if err := c.Run(context.Background(), ch); !errors.Is(err, ErrFeedClosed) {
		t.Fatalf("expected ErrFeedClosed, got %v", err)
	}
}

func TestCachePutGet(t *testing.T) {
	cache := NewCache()
	reading := h5075.NewReading(215, 480, 88, time.Unix(10, 0))
	cache.put("GVH5075_AAAA", reading)

	got, ok := cache.Get("GVH5075_AAAA")
	if !ok {
		t.Fatalf("expected reading")
	}
	if got != reading {
		t.Fatalf("got %+v, want %+v", got, reading)
	}
	if _, ok := cache.Get("missing"); ok {
		t.Fatalf("unexpected reading for missing")
	}
	if cache.Len() != 1 || len(cache.Snapshot()) != 1 {
		t.Fatalf("unexpected size")
	}
}

func TestCacheConcurrentReaders(t *testing.T) {
	cache := NewCache()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				cache.Get("GVH5075_AAAA")
			}
		}()
	}
	for j := 0; j < 1000; j++ {
		cache.put("GVH5075_AAAA", h5075.NewReading(int32(j), 0, 0, time.Time{}))
	}
	wg.Wait()
	got, _ := cache.Get("GVH5075_AAAA")
	if got.TemperatureTenths() != 999 {
		t.Fatalf("last write lost: %d", got.TemperatureTenths())
	}
}

func TestDeviceSeenThenUpdate(t *testing.T) {
	cache := NewCache()
	sink := &recordingSink{}
	metrics := NewMetrics()
	c := New(stubRegistry{"GVH5075_AAAA": true}, cache, Options{Metrics: metrics, Sink: sink})

	runEvents(t, c,
		radio.DeviceSeen{ID: "id-1", Name: "GVH5075_AAAA", ManufacturerData: govee(0x00, 0x03, 0x84, 0x7A, 0x39, 0x00)},
		radio.AdvertisementUpdate{ID: "id-1", ManufacturerData: govee(0x00, 0x80, 0xBD, 0x9A, 0x64, 0x00)},
	)

	got, ok := cache.Get("GVH5075_AAAA")
	if !ok {
		t.Fatalf("expected cached reading")
	}
	if got.TemperatureC() != -4.8 || got.Battery() != 100 {
		t.Fatalf("expected latest reading, got %v C battery %d", got.TemperatureC(), got.Battery())
	}
	if len(sink.names) != 2 {
		t.Fatalf("sink got %d readings, want 2", len(sink.names))
	}
	if v := testutil.ToFloat64(metrics.knownDevices); v != 1 {
		t.Fatalf("known devices = %v", v)
	}
}

func TestDeviceSeenWithoutPayloadRegisters(t *testing.T) {
	cache := NewCache()
	c := New(stubRegistry{"GVH5075_AAAA": true}, cache, Options{})

	runEvents(t, c,
		radio.DeviceSeen{ID: "id-1", Name: "GVH5075_AAAA"},
		radio.AdvertisementUpdate{ID: "id-1", ManufacturerData: govee(0x00, 0x02, 0xB1, 0xFE, 0x34, 0x00)},
	)

	got, ok := cache.Get("GVH5075_AAAA")
	if !ok || got.Battery() != 52 {
		t.Fatalf("expected reading from update, got %+v ok=%v", got, ok)
	}
}

func TestUnknownUpdateDropped(t *testing.T) {
	cache := NewCache()
	metrics := NewMetrics()
	c := New(stubRegistry{"GVH5075_AAAA": true}, cache, Options{Metrics: metrics})

	runEvents(t, c,
		radio.AdvertisementUpdate{ID: "id-1", ManufacturerData: govee(0x00, 0x03, 0x84, 0x7A, 0x39, 0x00)},
		radio.DeviceSeen{ID: "id-1", Name: "GVH5075_AAAA"},
	)

	if cache.Len() != 0 {
		t.Fatalf("update before DeviceSeen must not be buffered")
	}
	if v := testutil.ToFloat64(metrics.dropped); v != 1 {
		t.Fatalf("dropped = %v", v)
	}
}

func TestUnconfiguredNameIgnored(t *testing.T) {
	cache := NewCache()
	c := New(stubRegistry{}, cache, Options{})

	runEvents(t, c,
		radio.DeviceSeen{ID: "id-2", Name: "GVH5075_BBBB", ManufacturerData: govee(0x00, 0x03, 0x84, 0x7A, 0x39, 0x00)},
		radio.AdvertisementUpdate{ID: "id-2", ManufacturerData: govee(0x00, 0x03, 0x84, 0x7A, 0x39, 0x00)},
	)

	if cache.Len() != 0 {
		t.Fatalf("unconfigured sensor cached")
	}
	if len(c.known) != 0 {
		t.Fatalf("unconfigured sensor registered")
	}
}

func TestDecodeErrorKeepsCache(t *testing.T) {
	cache := NewCache()
	metrics := NewMetrics()
	c := New(stubRegistry{"GVH5075_AAAA": true}, cache, Options{Metrics: metrics})

	runEvents(t, c,
		radio.DeviceSeen{ID: "id-1", Name: "GVH5075_AAAA", ManufacturerData: govee(0x00, 0x03, 0x84, 0x7A, 0x39, 0x00)},
		radio.AdvertisementUpdate{ID: "id-1", ManufacturerData: govee(0x00, 0x03)},
		radio.AdvertisementUpdate{ID: "id-1", ManufacturerData: map[uint16][]byte{0x004C: {0x02}}},
	)

	got, ok := cache.Get("GVH5075_AAAA")
	if !ok || got.TemperatureC() != 23.0 {
		t.Fatalf("cache changed by failed decode: %+v", got)
	}
	if v := testutil.ToFloat64(metrics.decodeErrors.WithLabelValues("invalid_data")); v != 1 {
		t.Fatalf("invalid_data = %v", v)
	}
	if v := testutil.ToFloat64(metrics.decodeErrors.WithLabelValues("unsupported_device")); v != 1 {
		t.Fatalf("unsupported_device = %v", v)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := New(stubRegistry{}, NewCache(), Options{})
	events := make(chan radio.Event)

	done := make(chan error, 1)
	go func() { done <- c.Run(ctx, events) }()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}
