// Package h5075 decodes the manufacturer data that Govee H5075
// thermo-hygrometers put in their BLE advertisements.
package h5075

import (
	"errors"
	"fmt"
	"time"
)

// CompanyID is the manufacturer data key the H5075 advertises under.
const CompanyID uint16 = 0xEC88

const payloadLen = 6

var (
	ErrUnsupportedDevice = errors.New("unsupported device")
	ErrInvalidData       = errors.New("invalid data")
)

// DecodeError carries the payload length that was rejected. It unwraps to
// ErrUnsupportedDevice or ErrInvalidData.
type DecodeError struct {
	Reason error
	Length int
}

func (e *DecodeError) Error() string {
	if errors.Is(e.Reason, ErrUnsupportedDevice) {
		return fmt.Sprintf("h5075: %v: no manufacturer data for company 0x%04X", e.Reason, CompanyID)
	}
	return fmt.Sprintf("h5075: %v: want %d bytes, got %d", e.Reason, payloadLen, e.Length)
}

func (e *DecodeError) Unwrap() error { return e.Reason }

// Reading is a single decoded advertisement. Values are kept in the tenths
// the sensor transmits; the accessors convert them.
type Reading struct {
	temperature int32
	humidity    uint16
	battery     uint8
	at          time.Time
}

// NewReading builds a Reading from raw tenths. Used by tests and replay tools.
func NewReading(temperatureTenths int32, humidityTenths uint16, battery uint8, at time.Time) Reading {
	return Reading{temperature: temperatureTenths, humidity: humidityTenths, battery: battery, at: at}
}

// Decode parses the manufacturer data map of one advertisement and stamps the
// result with the current time.
func Decode(data map[uint16][]byte) (Reading, error) {
	return DecodeAt(data, time.Now())
}

// DecodeAt is Decode with an explicit capture time.
//
// Payload layout (6 bytes): b0 unused, b1..b3 big-endian packed value with the
// sign in the top bit of b1, b4 battery, b5 unused. The packed value holds
// temperature*1000 + humidity, both in tenths.
func DecodeAt(data map[uint16][]byte, at time.Time) (Reading, error) {
	payload, ok := data[CompanyID]
	if !ok {
		return Reading{}, &DecodeError{Reason: ErrUnsupportedDevice}
	}
	if len(payload) != payloadLen {
		return Reading{}, &DecodeError{Reason: ErrInvalidData, Length: len(payload)}
	}

	value := uint32(payload[1]&0x7F)<<16 | uint32(payload[2])<<8 | uint32(payload[3])
	sign := int32(1)
	if payload[1]&0x80 != 0 {
		sign = -1
	}

	return Reading{
		temperature: sign * int32(value/1000),
		humidity:    uint16(value % 1000),
		battery:     payload[4],
		at:          at,
	}, nil
}

// The float conversions below round to float32 after every operation. Go may
// otherwise fuse the multiply-add, which changes the last digit compared to
// what a float32 client computes.

// TemperatureC returns the temperature in degrees Celsius.
func (r Reading) TemperatureC() float32 {
	return float32(r.temperature) / 10
}

// TemperatureF returns the temperature in degrees Fahrenheit, derived from the
// tenths value rather than from TemperatureC.
func (r Reading) TemperatureF() float32 {
	return float32(float32(r.temperature)*0.18) + 32
}

// Humidity returns relative humidity in percent.
func (r Reading) Humidity() float32 {
	return float32(r.humidity) / 10
}

// Battery is the byte the sensor reports, nominally 0-100.
func (r Reading) Battery() uint8 { return r.battery }

func (r Reading) TemperatureTenths() int32 { return r.temperature }

func (r Reading) HumidityTenths() uint16 { return r.humidity }

// Time is when the advertisement was captured.
func (r Reading) Time() time.Time { return r.at }
