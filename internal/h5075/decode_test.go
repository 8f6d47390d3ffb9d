package h5075

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

func TestDecodeKnownPayloads(t *testing.T) {
	cases := []struct {
		name     string
		payload  []byte
		celsius  float32
		fahr     float32
		humidity float32
		battery  uint8
	}{
		{"positive", []byte{0x00, 0x03, 0x84, 0x7A, 0x39, 0x00}, 23.0, 73.4, 52.2, 57},
		{"negative", []byte{0x00, 0x80, 0xBD, 0x9A, 0x64, 0x00}, -4.8, 23.36, 53.8, 100},
		{"warm", []byte{0x00, 0x02, 0xB1, 0xFE, 0x34, 0x00}, 17.6, 63.68, 63.8, 52},
		{"freezing", []byte{0x00, 0x00, 0x01, 0x9C, 0x64, 0x00}, 0.0, 32.0, 41.2, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
			reading, err := DecodeAt(map[uint16][]byte{CompanyID: tc.payload}, at)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got := reading.TemperatureC(); got != tc.celsius {
				t.Fatalf("celsius = %v, want %v", got, tc.celsius)
			}
			if got := reading.TemperatureF(); got != tc.fahr {
				t.Fatalf("fahrenheit = %v, want %v", got, tc.fahr)
			}
			if got := reading.Humidity(); got != tc.humidity {
				t.Fatalf("humidity = %v, want %v", got, tc.humidity)
			}
			if got := reading.Battery(); got != tc.battery {
				t.Fatalf("battery = %d, want %d", got, tc.battery)
			}
			if !reading.Time().Equal(at) {
				t.Fatalf("time = %v, want %v", reading.Time(), at)
			}
		})
	}
}

func TestDecodeMissingCompany(t *testing.T) {
	_, err := Decode(map[uint16][]byte{0x004C: {0x00, 0x03, 0x84, 0x7A, 0x39, 0x00}})
	if !errors.Is(err, ErrUnsupportedDevice) {
		t.Fatalf("expected ErrUnsupportedDevice, got %v", err)
	}

	_, err = Decode(nil)
	if !errors.Is(err, ErrUnsupportedDevice) {
		t.Fatalf("nil map: expected ErrUnsupportedDevice, got %v", err)
	}
}

func TestDecodeShortPayload(t *testing.T) {
	_, err := Decode(map[uint16][]byte{CompanyID: {0x00, 0x03, 0x84}})
	if !errors.Is(err, ErrInvalidData) {
		t.Fatalf("expected ErrInvalidData, got %v", err)
	}
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
	if decodeErr.Length != 3 {
		t.Fatalf("length = %d, want 3", decodeErr.Length)
	}
}

func TestDecodeRandomPayloads(t *testing.T) {
	rng := rand.New(rand.NewSource(5075))
	for i := 0; i < 5000; i++ {
		payload := make([]byte, rng.Intn(12))
		rng.Read(payload)

		reading, err := Decode(map[uint16][]byte{CompanyID: payload})
		if len(payload) != payloadLen {
			if !errors.Is(err, ErrInvalidData) {
				t.Fatalf("len %d: expected ErrInvalidData, got %v", len(payload), err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("payload % X: %v", payload, err)
		}

		if reading.Battery() != payload[4] {
			t.Fatalf("battery = %d, want %d", reading.Battery(), payload[4])
		}
		if payload[1]&0x80 != 0 && reading.TemperatureC() > 0 {
			t.Fatalf("sign bit set but celsius = %v", reading.TemperatureC())
		}
		combined := uint32(payload[1]&0x7F)<<16 | uint32(payload[2])<<8 | uint32(payload[3])
		if uint32(reading.HumidityTenths()) != combined%1000 {
			t.Fatalf("humidity tenths = %d, want %d", reading.HumidityTenths(), combined%1000)
		}
	}
}

func TestBatteryVerbatim(t *testing.T) {
	for b := 0; b <= 255; b++ {
		payload := []byte{0x00, 0x03, 0x84, 0x7A, byte(b), 0x00}
		reading, err := Decode(map[uint16][]byte{CompanyID: payload})
		if err != nil {
			t.Fatalf("battery %d: %v", b, err)
		}
		if int(reading.Battery()) != b {
			t.Fatalf("battery = %d, want %d", reading.Battery(), b)
		}
	}
}

func FuzzDecode(f *testing.F) {
	f.Add([]byte{0x00, 0x03, 0x84, 0x7A, 0x39, 0x00})
	f.Add([]byte{0x00, 0x80, 0xBD, 0x9A, 0x64, 0x00})
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, payload []byte) {
		_, err := Decode(map[uint16][]byte{CompanyID: payload})
		if len(payload) == payloadLen && err != nil {
			t.Fatalf("valid length rejected: %v", err)
		}
		if len(payload) != payloadLen && !errors.Is(err, ErrInvalidData) {
			t.Fatalf("len %d: expected ErrInvalidData, got %v", len(payload), err)
		}
	})
}
