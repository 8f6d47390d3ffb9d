package devicedb

import (
	"context"
	"fmt"

	"github.com/joshp123/govee-collector/internal/config"
	configv1 "github.com/joshp123/govee-collector/proto/gen/config/v1"
)

// Load merges inline devices, devices_file and devices_blob, in that order.
func Load(ctx context.Context, cfg *configv1.Config) (*Database, error) {
	entries := append([]*configv1.Device(nil), cfg.GetDevices()...)

	if path := cfg.GetDevicesFile(); path != "" {
		fromFile, err := config.LoadDevicesFile(path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, fromFile...)
	}

	if cfg.GetDevicesBlob() != nil {
		source, err := NewBlobSource(cfg.GetDevicesBlob())
		if err != nil {
			return nil, err
		}
		data, err := source.Fetch(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch device blob: %w", err)
		}
		fromBlob, err := config.ParseDevices(source.Key(), data)
		if err != nil {
			return nil, err
		}
		entries = append(entries, fromBlob...)
	}

	devices := make([]Device, 0, len(entries))
	for _, entry := range entries {
		devices = append(devices, Device{Name: entry.GetName(), FriendlyName: entry.GetFriendlyName()})
	}
	return New(devices)
}
