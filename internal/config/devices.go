package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/protobuf/encoding/prototext"
	"gopkg.in/yaml.v3"

	configv1 "github.com/joshp123/govee-collector/proto/gen/config/v1"
)

type yamlDeviceList struct {
	Devices []yamlDevice `yaml:"devices"`
}

type yamlDevice struct {
	Name         string `yaml:"name"`
	FriendlyName string `yaml:"friendly_name"`
}

// LoadDevicesFile reads a .pbtxt DeviceList or a .yaml/.yml device list.
func LoadDevicesFile(path string) ([]*configv1.Device, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read devices file: %w", err)
	}
	return ParseDevices(path, data)
}

// ParseDevices picks the format from name's extension. Anything that is not
// YAML is treated as textproto.
func ParseDevices(name string, data []byte) ([]*configv1.Device, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		var list yamlDeviceList
		if err := yaml.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("parse devices yaml %s: %w", name, err)
		}
		devices := make([]*configv1.Device, 0, len(list.Devices))
		for _, device := range list.Devices {
			devices = append(devices, &configv1.Device{Name: device.Name, FriendlyName: device.FriendlyName})
		}
		return devices, nil
	default:
		list := &configv1.DeviceList{}
		if err := prototext.Unmarshal(data, list); err != nil {
			return nil, fmt.Errorf("parse devices textproto %s: %w", name, err)
		}
		return list.Devices, nil
	}
}
