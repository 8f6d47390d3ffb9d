// Package radio turns BLE scan results into the event feed the collector
// consumes.
package radio

import "time"

// Event is one item of the scanner feed. It is either DeviceSeen or
// AdvertisementUpdate.
type Event interface {
	isEvent()
}

// DeviceSeen is emitted when an advertisement carries a local name. ID is the
// adapter's identifier for the peer (a MAC address on Linux, a UUID on macOS).
type DeviceSeen struct {
	ID               string
	Name             string
	ManufacturerData map[uint16][]byte
	At               time.Time
}

// AdvertisementUpdate is emitted for advertisements without a local name.
// Only the ID ties it back to a previously named device.
type AdvertisementUpdate struct {
	ID               string
	ManufacturerData map[uint16][]byte
	At               time.Time
}

func (DeviceSeen) isEvent()          {}
func (AdvertisementUpdate) isEvent() {}

// Kind names the event for logs and metric labels.
func Kind(ev Event) string {
	switch ev.(type) {
	case DeviceSeen:
		return "device_seen"
	case AdvertisementUpdate:
		return "advertisement_update"
	default:
		return "unknown"
	}
}
