// Package collector consumes the radio event feed, decodes H5075
// advertisements and keeps the freshest reading per sensor.
package collector

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/joshp123/govee-collector/internal/h5075"
	"github.com/joshp123/govee-collector/internal/radio"
)

// ErrFeedClosed is returned by Run when the event channel closes while the
// context is still live. The process cannot recover from it.
var ErrFeedClosed = errors.New("radio event feed closed")

// Registry answers whether a broadcast name is a configured sensor.
type Registry interface {
	Contains(name string) bool
}

// Sink receives every reading written to the cache. Publish must not block.
type Sink interface {
	Publish(name string, reading h5075.Reading)
}

type Options struct {
	Logger  *slog.Logger
	Metrics *Metrics
	Sink    Sink
}

// Collector is the single writer of a Cache.
type Collector struct {
	devices Registry
	cache   *Cache
	logger  *slog.Logger
	metrics *Metrics
	sink    Sink

	// adapter id -> broadcast name. Grow-only, touched only by Run.
	known map[string]string
}

func New(devices Registry, cache *Cache, opts Options) *Collector {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		devices: devices,
		cache:   cache,
		logger:  logger.With("component", "collector"),
		metrics: opts.Metrics,
		sink:    opts.Sink,
		known:   make(map[string]string),
	}
}

// Run processes events one at a time until ctx is done or the feed closes.
func (c *Collector) Run(ctx context.Context, events <-chan radio.Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return ErrFeedClosed
			}
			c.handle(ev)
		}
	}
}

func (c *Collector) handle(ev radio.Event) {
	c.metrics.observeEvent(radio.Kind(ev))

	switch ev := ev.(type) {
	case radio.DeviceSeen:
		if !c.devices.Contains(ev.Name) {
			return
		}
		if _, ok := c.known[ev.ID]; !ok {
			c.logger.Info("sensor discovered", "id", ev.ID, "name", ev.Name)
		}
		c.known[ev.ID] = ev.Name
		c.metrics.setKnown(len(c.known))
		if ev.ManufacturerData != nil {
			c.ingest(ev.Name, ev.ManufacturerData, ev.At)
		}
	case radio.AdvertisementUpdate:
		name, ok := c.known[ev.ID]
		if !ok {
			c.metrics.observeDropped()
			return
		}
		c.ingest(name, ev.ManufacturerData, ev.At)
	}
}

func (c *Collector) ingest(name string, data map[uint16][]byte, at time.Time) {
	if at.IsZero() {
		at = time.Now()
	}
	reading, err := h5075.DecodeAt(data, at)
	if err != nil {
		c.logger.Debug("decode advertisement", "name", name, "error", err)
		c.metrics.observeDecodeError(decodeReason(err))
		return
	}

	c.cache.put(name, reading)
	c.metrics.observeReading(name, reading)
	if c.sink != nil {
		c.sink.Publish(name, reading)
	}
}

func decodeReason(err error) string {
	switch {
	case errors.Is(err, h5075.ErrUnsupportedDevice):
		return "unsupported_device"
	case errors.Is(err, h5075.ErrInvalidData):
		return "invalid_data"
	default:
		return "other"
	}
}
