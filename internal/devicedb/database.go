// Package devicedb holds the set of sensors the collector is allowed to
// track, keyed by the name each sensor broadcasts.
package devicedb

import (
	"fmt"
	"sort"
	"strings"
)

type Device struct {
	Name         string
	FriendlyName string
}

// Database is immutable after New and safe for concurrent use.
type Database struct {
	byName map[string]Device
	names  []string
}

// New validates devices and builds the lookup. Names must be unique; an empty
// friendly name falls back to the broadcast name.
func New(devices []Device) (*Database, error) {
	db := &Database{byName: make(map[string]Device, len(devices))}
	for i, device := range devices {
		name := strings.TrimSpace(device.Name)
		if name == "" {
			return nil, fmt.Errorf("devices[%d].name is required", i)
		}
		if _, exists := db.byName[name]; exists {
			return nil, fmt.Errorf("duplicate device %q", name)
		}
		friendly := strings.TrimSpace(device.FriendlyName)
		if friendly == "" {
			friendly = name
		}
		db.byName[name] = Device{Name: name, FriendlyName: friendly}
		db.names = append(db.names, name)
	}
	sort.Strings(db.names)
	return db, nil
}

func (d *Database) Contains(name string) bool {
	_, ok := d.byName[name]
	return ok
}

func (d *Database) FriendlyName(name string) (string, bool) {
	device, ok := d.byName[name]
	return device.FriendlyName, ok
}

// Names returns every configured broadcast name, sorted.
func (d *Database) Names() []string {
	return append([]string(nil), d.names...)
}

func (d *Database) Len() int { return len(d.names) }
