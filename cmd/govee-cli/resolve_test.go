package main

import (
	"reflect"
	"testing"

	goveev1 "github.com/joshp123/govee-collector/proto/gen/govee/v1"
	"google.golang.org/protobuf/proto"
)

func TestResolveNamedID(t *testing.T) {
	options := deviceOptions([]*goveev1.DeviceData{
		{UniqueId: "GVH5075_AAAA", FriendlyName: "Living Room"},
		{UniqueId: "GVH5075_BBBB", FriendlyName: "Kids - Bedroom"},
	})

	cases := map[string]string{
		"GVH5075_AAAA": "GVH5075_AAAA",
		"gvh5075_bbbb": "GVH5075_BBBB",
		"living room":  "GVH5075_AAAA",
		"living-room":  "GVH5075_AAAA",
		"kids_bedroom": "GVH5075_BBBB",
	}
	for input, want := range cases {
		got, err := resolveNamedID("device", input, options)
		if err != nil {
			t.Fatalf("%q: %v", input, err)
		}
		if got != want {
			t.Fatalf("%q resolved to %q, want %q", input, got, want)
		}
	}

	if _, err := resolveNamedID("device", "garage", options); err == nil {
		t.Fatalf("expected not found error")
	}
}

func TestDeviceRows(t *testing.T) {
	rows := deviceRows([]*goveev1.DeviceData{
		{UniqueId: "GVH5075_AAAA", FriendlyName: "Living room", TemperatureInC: proto.Float32(-4.8), TemperatureInF: proto.Float32(23.36), Humidity: proto.Float32(53.8), Battery: proto.Float32(100)},
		{UniqueId: "GVH5075_BBBB", FriendlyName: "Bedroom"},
	})
	want := [][]string{
		{"DEVICE", "NAME", "TEMP_C", "TEMP_F", "HUMIDITY", "BATTERY", "UPDATED"},
		{"GVH5075_AAAA", "Living room", "-4.8", "23.36", "53.8", "100", "-"},
		{"GVH5075_BBBB", "Bedroom", "-", "-", "-", "-", "-"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("rows = %v", rows)
	}
}
