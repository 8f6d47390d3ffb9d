package publish

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	configv1 "github.com/joshp123/govee-collector/proto/gen/config/v1"
	goveev1 "github.com/joshp123/govee-collector/proto/gen/govee/v1"
)

const mqttTimeout = 5 * time.Second

// MQTTPublisher writes each reading to <prefix>/<name>/state and keeps
// <prefix>/status at online/offline through the will message.
type MQTTPublisher struct {
	client mqtt.Client
	prefix string
	qos    byte
	retain bool
}

func NewMQTTPublisher(cfg *configv1.MQTTConfig) (*MQTTPublisher, error) {
	if cfg == nil || strings.TrimSpace(cfg.Broker) == "" {
		return nil, fmt.Errorf("mqtt.broker is required")
	}

	prefix := strings.Trim(cfg.TopicPrefix, "/")
	statusTopic := prefix + "/status"

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientId)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.PasswordFile != "" {
		data, err := os.ReadFile(cfg.PasswordFile)
		if err != nil {
			return nil, fmt.Errorf("read mqtt password: %w", err)
		}
		opts.SetPassword(strings.TrimSpace(string(data)))
	}
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectTimeout(10 * time.Second)
	opts.SetWill(statusTopic, "offline", 1, true)
	opts.OnConnect = func(c mqtt.Client) {
		c.Publish(statusTopic, 1, true, "online")
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connect mqtt: %w", token.Error())
	}

	return &MQTTPublisher{
		client: client,
		prefix: prefix,
		qos:    byte(cfg.Qos),
		retain: cfg.Retain,
	}, nil
}

func (p *MQTTPublisher) Name() string { return "mqtt" }

func (p *MQTTPublisher) Publish(_ context.Context, device *goveev1.DeviceData, payload []byte) error {
	token := p.client.Publish(StateTopic(p.prefix, device.GetUniqueId()), p.qos, p.retain, payload)
	if !token.WaitTimeout(mqttTimeout) {
		return fmt.Errorf("mqtt publish timed out")
	}
	return token.Error()
}

func (p *MQTTPublisher) Close() error {
	token := p.client.Publish(p.prefix+"/status", 1, true, "offline")
	token.WaitTimeout(mqttTimeout)
	p.client.Disconnect(250)
	return nil
}

// StateTopic is where readings for name are published.
func StateTopic(prefix, name string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name + "/state"
	}
	return prefix + "/" + name + "/state"
}
