package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeFile(t, "config.pbtxt", `
schema_version: 1
devices { name: "GVH5075_AAAA" friendly_name: "Living room" }
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Core.GrpcAddr != DefaultGRPCAddr || cfg.Core.HttpAddr != DefaultHTTPAddr {
		t.Fatalf("unexpected addrs %q %q", cfg.Core.GrpcAddr, cfg.Core.HttpAddr)
	}
	if cfg.Core.DefaultRefreshIntervalSeconds != DefaultRefreshIntervalSeconds {
		t.Fatalf("refresh interval = %d", cfg.Core.DefaultRefreshIntervalSeconds)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging defaults: %v", cfg.Logging)
	}
	if cfg.Collector.PublishQueueSize != DefaultPublishQueueSize {
		t.Fatalf("queue size = %d", cfg.Collector.PublishQueueSize)
	}
	if len(cfg.Devices) != 1 || cfg.Devices[0].FriendlyName != "Living room" {
		t.Fatalf("devices = %v", cfg.Devices)
	}
	if len(Publishers(cfg)) != 0 {
		t.Fatalf("no publishers expected")
	}
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"schema", `schema_version: 2`, "schema_version"},
		{"level", "schema_version: 1\nlogging { level: \"loud\" }", "logging.level"},
		{"mqtt", "schema_version: 1\nmqtt { topic_prefix: \"x\" }", "mqtt.broker"},
		{"qos", "schema_version: 1\nmqtt { broker: \"tcp://b:1883\" qos: 3 }", "mqtt.qos"},
		{"kafka", "schema_version: 1\nkafka { brokers: \"k:9092\" }", "kafka.topic"},
		{"blob", "schema_version: 1\ndevices_blob { endpoint: \"s3\" }", "devices_blob.bucket"},
		{"device", "schema_version: 1\ndevices { friendly_name: \"x\" }", "devices[0].name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.body))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestPublishersFromConfig(t *testing.T) {
	cfg, err := Parse([]byte(`
schema_version: 1
mqtt { broker: "tcp://broker:1883" }
kafka { brokers: "kafka:9092" topic: "govee.readings" }
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	enabled := Publishers(cfg)
	if !enabled["mqtt"] || !enabled["kafka"] {
		t.Fatalf("publishers = %v", enabled)
	}
	if cfg.Mqtt.TopicPrefix != DefaultMQTTTopicPrefix || cfg.Mqtt.ClientId != DefaultMQTTClientID {
		t.Fatalf("mqtt defaults not applied: %v", cfg.Mqtt)
	}
}

func TestParseDevicesFormats(t *testing.T) {
	yamlPath := writeFile(t, "devices.yml", `
devices:
  - name: GVH5075_AAAA
    friendly_name: Living room
  - name: GVH5075_BBBB
`)
	devices, err := LoadDevicesFile(yamlPath)
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if len(devices) != 2 || devices[0].FriendlyName != "Living room" || devices[1].Name != "GVH5075_BBBB" {
		t.Fatalf("yaml devices = %v", devices)
	}

	textPath := writeFile(t, "devices.pbtxt", `devices { name: "GVH5075_CCCC" friendly_name: "Garage" }`)
	devices, err = LoadDevicesFile(textPath)
	if err != nil {
		t.Fatalf("textproto: %v", err)
	}
	if len(devices) != 1 || devices[0].Name != "GVH5075_CCCC" {
		t.Fatalf("textproto devices = %v", devices)
	}

	if _, err := ParseDevices("bad.pbtxt", []byte("devices {")); err == nil {
		t.Fatalf("expected parse error")
	}
}
