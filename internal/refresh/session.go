// Package refresh turns a polled consumer into a rate-limited push feed.
//
// A Session owns one result slot and at most one in-flight refresh. Poll
// records how to wake the consumer, starts a refresh if none is running and
// hands over the slot if it holds a result. The first refresh runs
// immediately; every later one sleeps the interval first, so results reach
// the consumer at most once per interval no matter how often it polls.
package refresh

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	goveev1 "github.com/joshp123/govee-collector/proto/gen/govee/v1"
)

// Source builds the device list for a refresh.
type Source interface {
	Snapshot(ids []string) []*goveev1.DeviceData
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ids []string) []*goveev1.DeviceData

func (f SourceFunc) Snapshot(ids []string) []*goveev1.DeviceData { return f(ids) }

// Result is what one refresh cycle produced.
type Result struct {
	Devices []*goveev1.DeviceData
	Cycle   uint64
	At      time.Time
}

type state int

const (
	idle state = iota
	refreshing
)

type Session struct {
	id       string
	ids      []string
	interval time.Duration
	source   Source

	mu     sync.Mutex
	state  state
	primed bool
	slot   *Result
	wake   func()
	cycle  uint64
	closed bool
	done   chan struct{}
}

func NewSession(ids []string, interval time.Duration, source Source) *Session {
	activeSessions.Inc()
	return &Session{
		id:       uuid.NewString(),
		ids:      append([]string(nil), ids...),
		interval: interval,
		source:   source,
		done:     make(chan struct{}),
	}
}

func (s *Session) ID() string { return s.id }

// Poll replaces the parked wake function, starts a refresh when idle and
// takes the pending result if there is one. wake is called at most once, from
// the refresh goroutine, after a new result lands in the slot.
func (s *Session) Poll(wake func()) (*Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, false
	}
	s.wake = wake
	if s.state == idle {
		s.state = refreshing
		go s.refresh(s.primed)
	}
	if s.slot == nil {
		return nil, false
	}
	result := s.slot
	s.slot = nil
	return result, true
}

// Next blocks until a result is available or ctx is done.
func (s *Session) Next(ctx context.Context) (*Result, error) {
	for {
		woken := make(chan struct{}, 1)
		result, ok := s.Poll(func() {
			select {
			case woken <- struct{}{}:
			default:
			}
		})
		if ok {
			return result, nil
		}
		select {
		case <-woken:
		case <-s.done:
			return nil, context.Canceled
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Close drops the parked wake function and any pending result. A refresh
// that is sleeping returns early; one that is already computing finishes and
// its result is discarded.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.wake = nil
	s.slot = nil
	close(s.done)
	activeSessions.Dec()
}

func (s *Session) refresh(primed bool) {
	if primed {
		timer := time.NewTimer(s.interval)
		select {
		case <-timer.C:
		case <-s.done:
			timer.Stop()
			s.finish(nil)
			return
		}
	}

	select {
	case <-s.done:
		s.finish(nil)
		return
	default:
	}

	start := time.Now()
	devices := s.source.Snapshot(s.ids)
	refreshDuration.Observe(time.Since(start).Seconds())
	refreshCycles.Inc()
	s.finish(devices)
}

func (s *Session) finish(devices []*goveev1.DeviceData) {
	s.mu.Lock()
	s.state = idle
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.cycle++
	s.slot = &Result{Devices: devices, Cycle: s.cycle, At: time.Now()}
	s.primed = true
	wake := s.wake
	s.wake = nil
	s.mu.Unlock()

	// Called outside the lock so a wake that polls straight away sees Idle.
	if wake != nil {
		wake()
	}
}
