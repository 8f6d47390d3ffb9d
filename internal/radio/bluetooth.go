package radio

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tinygo.org/x/bluetooth"
)

// Scanner adapts a tinygo bluetooth adapter into an Event channel.
type Scanner struct {
	adapter *bluetooth.Adapter
	logger  *slog.Logger
	now     func() time.Time
}

func NewScanner(adapter *bluetooth.Adapter, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{adapter: adapter, logger: logger, now: time.Now}
}

// Enable powers the adapter. It fails when the host has no usable adapter.
func (s *Scanner) Enable() error {
	if err := s.adapter.Enable(); err != nil {
		return fmt.Errorf("enable bluetooth adapter: %w", err)
	}
	return nil
}

// Events starts a scan and returns the feed. The channel is closed when the
// scan stops, either because ctx was cancelled or the adapter gave up.
func (s *Scanner) Events(ctx context.Context) (<-chan Event, error) {
	events := make(chan Event, 64)

	go func() {
		<-ctx.Done()
		if err := s.adapter.StopScan(); err != nil {
			s.logger.Debug("stop scan", "error", err)
		}
	}()

	go func() {
		defer close(events)
		err := s.adapter.Scan(func(_ *bluetooth.Adapter, result bluetooth.ScanResult) {
			ev := toEvent(result.Address.String(), result.LocalName(), result.ManufacturerData(), s.now())
			select {
			case events <- ev:
			case <-ctx.Done():
			}
		})
		if err != nil && ctx.Err() == nil {
			s.logger.Error("bluetooth scan stopped", "error", err)
		}
	}()

	return events, nil
}

// toEvent maps one scan result. BlueZ caches the local name per peer, so
// named sensors usually arrive as DeviceSeen every time; platforms that only
// deliver the name in scan responses produce AdvertisementUpdate in between.
func toEvent(id, name string, elements []bluetooth.ManufacturerDataElement, at time.Time) Event {
	data := manufacturerData(elements)
	if name != "" {
		return DeviceSeen{ID: id, Name: name, ManufacturerData: data, At: at}
	}
	return AdvertisementUpdate{ID: id, ManufacturerData: data, At: at}
}

func manufacturerData(elements []bluetooth.ManufacturerDataElement) map[uint16][]byte {
	if len(elements) == 0 {
		return nil
	}
	data := make(map[uint16][]byte, len(elements))
	for _, element := range elements {
		data[element.CompanyID] = append([]byte(nil), element.Data...)
	}
	return data
}
