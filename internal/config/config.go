package config

import (
	"fmt"
	"os"
	"strings"

	"google.golang.org/protobuf/encoding/prototext"

	configv1 "github.com/joshp123/govee-collector/proto/gen/config/v1"
)

const (
	SchemaVersion                 = 1
	DefaultPath                   = "/etc/govee-collector/config.pbtxt"
	DefaultGRPCAddr               = "127.0.0.1:50051"
	DefaultHTTPAddr               = "127.0.0.1:9120"
	DefaultRefreshIntervalSeconds = 60
	DefaultLogLevel               = "info"
	DefaultLogFormat              = "json"
	DefaultLogMaxSizeMB           = 10
	DefaultLogMaxBackups          = 3
	DefaultLogMaxAgeDays          = 28
	DefaultPublishQueueSize       = 256
	DefaultMQTTTopicPrefix        = "govee"
	DefaultMQTTClientID           = "govee-collector"
)

// Load parses the textproto config file, applies defaults, and validates.
func Load(path string) (*configv1.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse is Load without the file read.
func Parse(data []byte) (*configv1.Config, error) {
	cfg := &configv1.Config{}
	if err := prototext.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *configv1.Config) {
	if cfg.Core == nil {
		cfg.Core = &configv1.CoreConfig{}
	}
	if cfg.Core.GrpcAddr == "" {
		cfg.Core.GrpcAddr = DefaultGRPCAddr
	}
	if cfg.Core.HttpAddr == "" {
		cfg.Core.HttpAddr = DefaultHTTPAddr
	}
	if cfg.Core.DefaultRefreshIntervalSeconds == 0 {
		cfg.Core.DefaultRefreshIntervalSeconds = DefaultRefreshIntervalSeconds
	}

	if cfg.Logging == nil {
		cfg.Logging = &configv1.LoggingConfig{}
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
	if cfg.Logging.MaxSizeMb == 0 {
		cfg.Logging.MaxSizeMb = DefaultLogMaxSizeMB
	}
	if cfg.Logging.MaxBackups == 0 {
		cfg.Logging.MaxBackups = DefaultLogMaxBackups
	}
	if cfg.Logging.MaxAgeDays == 0 {
		cfg.Logging.MaxAgeDays = DefaultLogMaxAgeDays
	}

	if cfg.Collector == nil {
		cfg.Collector = &configv1.CollectorConfig{}
	}
	if cfg.Collector.PublishQueueSize == 0 {
		cfg.Collector.PublishQueueSize = DefaultPublishQueueSize
	}

	if cfg.Mqtt != nil {
		if cfg.Mqtt.TopicPrefix == "" {
			cfg.Mqtt.TopicPrefix = DefaultMQTTTopicPrefix
		}
		if cfg.Mqtt.ClientId == "" {
			cfg.Mqtt.ClientId = DefaultMQTTClientID
		}
	}
}

// Validate enforces required invariants beyond proto typing.
func Validate(cfg *configv1.Config) error {
	if cfg == nil {
		return fmt.Errorf("config is required")
	}
	if cfg.SchemaVersion != SchemaVersion {
		return fmt.Errorf("schema_version must be %d", SchemaVersion)
	}

	if cfg.Core == nil {
		return fmt.Errorf("core config is required")
	}
	if cfg.Core.GrpcAddr == "" {
		return fmt.Errorf("core.grpc_addr is required")
	}
	if cfg.Core.HttpAddr == "" {
		return fmt.Errorf("core.http_addr is required")
	}

	if cfg.Logging != nil {
		switch strings.ToLower(cfg.Logging.Level) {
		case "debug", "info", "warn", "warning", "error":
		default:
			return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", cfg.Logging.Level)
		}
		switch strings.ToLower(cfg.Logging.Format) {
		case "json", "text":
		default:
			return fmt.Errorf("logging.format must be json or text")
		}
	}

	for i, device := range cfg.Devices {
		if strings.TrimSpace(device.GetName()) == "" {
			return fmt.Errorf("devices[%d].name is required", i)
		}
	}

	if blob := cfg.DevicesBlob; blob != nil {
		if blob.Endpoint == "" {
			return fmt.Errorf("devices_blob.endpoint is required")
		}
		if blob.Bucket == "" {
			return fmt.Errorf("devices_blob.bucket is required")
		}
		if blob.Key == "" {
			return fmt.Errorf("devices_blob.key is required")
		}
		if blob.AccessKeyFile == "" {
			return fmt.Errorf("devices_blob.access_key_file is required")
		}
		if blob.SecretKeyFile == "" {
			return fmt.Errorf("devices_blob.secret_key_file is required")
		}
	}

	if cfg.Mqtt != nil {
		if cfg.Mqtt.Broker == "" {
			return fmt.Errorf("mqtt.broker is required")
		}
		if cfg.Mqtt.Qos > 2 {
			return fmt.Errorf("mqtt.qos must be 0, 1 or 2")
		}
	}

	if cfg.Kafka != nil {
		if len(cfg.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers is required")
		}
		if cfg.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic is required")
		}
	}

	return nil
}

// Publishers lists the enabled reading publishers based on config presence.
func Publishers(cfg *configv1.Config) map[string]bool {
	enabled := make(map[string]bool)
	if cfg == nil {
		return enabled
	}
	if cfg.Mqtt != nil {
		enabled["mqtt"] = true
	}
	if cfg.Kafka != nil {
		enabled["kafka"] = true
	}
	return enabled
}
