package radio

import (
	"bytes"
	"testing"
	"time"

	"tinygo.org/x/bluetooth"
)

func TestToEventNamed(t *testing.T) {
	at := time.Unix(1700000000, 0)
	raw := []byte{0x00, 0x03, 0x84, 0x7A, 0x39, 0x00}
	ev := toEvent("A4:C1:38:00:11:22", "GVH5075_1122", []bluetooth.ManufacturerDataElement{
		{CompanyID: 0xEC88, Data: raw},
	}, at)

	seen, ok := ev.(DeviceSeen)
	if !ok {
		t.Fatalf("expected DeviceSeen, got %T", ev)
	}
	if seen.Name != "GVH5075_1122" || seen.ID != "A4:C1:38:00:11:22" {
		t.Fatalf("unexpected event: %+v", seen)
	}
	if !bytes.Equal(seen.ManufacturerData[0xEC88], raw) {
		t.Fatalf("payload = % X", seen.ManufacturerData[0xEC88])
	}

	raw[0] = 0xFF
	if seen.ManufacturerData[0xEC88][0] != 0x00 {
		t.Fatalf("payload aliases scan buffer")
	}
	if Kind(ev) != "device_seen" {
		t.Fatalf("kind = %s", Kind(ev))
	}
}

func TestToEventUnnamed(t *testing.T) {
	ev := toEvent("A4:C1:38:00:11:22", "", nil, time.Now())
	update, ok := ev.(AdvertisementUpdate)
	if !ok {
		t.Fatalf("expected AdvertisementUpdate, got %T", ev)
	}
	if update.ManufacturerData != nil {
		t.Fatalf("expected nil manufacturer data, got %v", update.ManufacturerData)
	}
	if Kind(ev) != "advertisement_update" {
		t.Fatalf("kind = %s", Kind(ev))
	}
}
