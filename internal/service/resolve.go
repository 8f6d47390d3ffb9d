package service

import (
	"fmt"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/joshp123/govee-collector/internal/h5075"
	goveev1 "github.com/joshp123/govee-collector/proto/gen/govee/v1"
)

// Readings is the read side of the collector cache.
type Readings interface {
	Get(name string) (h5075.Reading, bool)
}

// Devices is the read side of the device database.
type Devices interface {
	Names() []string
	FriendlyName(name string) (string, bool)
}

// Resolver joins configured devices with cached readings.
type Resolver struct {
	devices  Devices
	readings Readings
}

func NewResolver(devices Devices, readings Readings) *Resolver {
	return &Resolver{devices: devices, readings: readings}
}

// ResolveIDs expands an empty request to every configured device.
func (r *Resolver) ResolveIDs(ids []string) []string {
	if len(ids) == 0 {
		return r.devices.Names()
	}
	return ids
}

// Snapshot returns one entry per requested id that is configured, in request
// order. Configured devices without a reading yet have unset measurements.
func (r *Resolver) Snapshot(ids []string) []*goveev1.DeviceData {
	out := make([]*goveev1.DeviceData, 0, len(ids))
	for _, id := range ids {
		reading, cached := r.readings.Get(id)
		friendly, configured := r.devices.FriendlyName(id)
		if !configured {
			if cached {
				// The collector only caches configured names.
				panic(fmt.Sprintf("device %q is cached but not in the device database", id))
			}
			continue
		}
		out = append(out, DeviceData(id, friendly, reading, cached))
	}
	return out
}

// DeviceData converts a reading to its wire form. When ok is false the
// measurements and timestamp stay unset.
func DeviceData(id, friendly string, reading h5075.Reading, ok bool) *goveev1.DeviceData {
	data := &goveev1.DeviceData{UniqueId: id, FriendlyName: friendly}
	if !ok {
		return data
	}
	celsius := reading.TemperatureC()
	fahrenheit := reading.TemperatureF()
	humidity := reading.Humidity()
	battery := float32(reading.Battery())
	data.TemperatureInC = &celsius
	data.TemperatureInF = &fahrenheit
	data.Humidity = &humidity
	data.Battery = &battery
	data.LastUpdated = timestamppb.New(reading.Time())
	return data
}
