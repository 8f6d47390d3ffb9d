package main

import (
	"fmt"
	"sort"
	"strings"

	goveev1 "github.com/joshp123/govee-collector/proto/gen/govee/v1"
)

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	replacer := strings.NewReplacer(" ", "_", "-", "_")
	name = replacer.Replace(name)
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	return name
}

// deviceOptions indexes devices by both broadcast and friendly name.
func deviceOptions(devices []*goveev1.DeviceData) map[string]string {
	options := make(map[string]string, 2*len(devices))
	for _, device := range devices {
		options[device.UniqueId] = device.UniqueId
		if device.FriendlyName != "" {
			options[device.FriendlyName] = device.UniqueId
		}
	}
	return options
}

func resolveNamedID(kind, input string, options map[string]string) (string, error) {
	if id, ok := options[input]; ok {
		return id, nil
	}
	needle := normalizeName(input)
	for label, id := range options {
		if normalizeName(label) == needle {
			return id, nil
		}
	}
	available := make([]string, 0, len(options))
	for label := range options {
		available = append(available, label)
	}
	sort.Strings(available)
	return "", fmt.Errorf("%s %q not found. Available: %s", kind, input, strings.Join(available, ", "))
}
