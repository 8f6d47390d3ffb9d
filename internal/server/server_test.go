package server

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/joshp123/govee-collector/internal/h5075"
	"github.com/joshp123/govee-collector/internal/service"
	goveev1 "github.com/joshp123/govee-collector/proto/gen/govee/v1"
)

type devices map[string]string

func (d devices) Names() []string {
	return []string{"GVH5075_AAAA"}
}

func (d devices) FriendlyName(name string) (string, bool) {
	friendly, ok := d[name]
	return friendly, ok
}

type readings map[string]h5075.Reading

func (r readings) Get(name string) (h5075.Reading, bool) {
	reading, ok := r[name]
	return reading, ok
}

func testResolver() *service.Resolver {
	return service.NewResolver(
		devices{"GVH5075_AAAA": "Living room"},
		readings{"GVH5075_AAAA": h5075.NewReading(-48, 538, 100, time.Unix(1700000000, 0))},
	)
}

func TestHealthHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthHandler(nil)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("unexpected response %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	HealthHandler(func() error { return errors.New("no readings yet") })(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestDevicesHandler(t *testing.T) {
	srv := httptest.NewServer(DevicesHandler(testResolver()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/devices")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	var out goveev1.GetDeviceDataResponse
	if err := protojson.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
	if len(out.GetDevices()) != 1 || out.GetDevices()[0].GetTemperatureInC() != -4.8 {
		t.Fatalf("unexpected devices: %v", out.GetDevices())
	}
	if !strings.Contains(string(body), "temperature_in_f") {
		t.Fatalf("expected proto field names, got %s", body)
	}

	resp, err = http.Post(srv.URL+"/api/devices", "application/json", nil)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.StatusCode)
	}
}

func TestWebSocketFirstFrame(t *testing.T) {
	srv := httptest.NewServer(NewWebSocketHandler(testResolver(), time.Hour, nil))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/devices?id=GVH5075_AAAA&interval=3600"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var frame goveev1.StreamDeviceDataResponse
	if err := protojson.Unmarshal(payload, &frame); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(frame.GetDevices()) != 1 || frame.GetDevices()[0].GetFriendlyName() != "Living room" {
		t.Fatalf("unexpected frame: %v", frame.GetDevices())
	}
}

func TestWebSocketRejectsBadInterval(t *testing.T) {
	handler := NewWebSocketHandler(testResolver(), time.Hour, nil)
	for _, query := range []string{"interval=0", "interval=soon"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws/devices?"+query, nil))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", query, rec.Code)
		}
	}
}
