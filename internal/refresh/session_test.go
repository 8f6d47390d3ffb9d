package refresh

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	goveev1 "github.com/joshp123/govee-collector/proto/gen/govee/v1"
)

type countingSource struct {
	calls   atomic.Int32
	release chan struct{}
}

func (s *countingSource) Snapshot(ids []string) []*goveev1.DeviceData {
	s.calls.Add(1)
	if s.release != nil {
		<-s.release
	}
	out := make([]*goveev1.DeviceData, 0, len(ids))
	for _, id := range ids {
		out = append(out, &goveev1.DeviceData{UniqueId: id})
	}
	return out
}

func TestFirstResultIsImmediate(t *testing.T) {
	source := &countingSource{}
	session := NewSession([]string{"GVH5075_AAAA"}, time.Hour, source)
	defer session.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	result, err := session.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Fatalf("first result took %v", elapsed)
	}
	if len(result.Devices) != 1 || result.Devices[0].GetUniqueId() != "GVH5075_AAAA" {
		t.Fatalf("unexpected devices: %v", result.Devices)
	}
	if result.Cycle != 1 {
		t.Fatalf("cycle = %d", result.Cycle)
	}
}

func TestSecondResultWaitsInterval(t *testing.T) {
	const interval = 150 * time.Millisecond
	source := &countingSource{}
	session := NewSession(nil, interval, source)
	defer session.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	first, err := session.Next(ctx)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	start := time.Now()
	second, err := session.Next(ctx)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if elapsed := time.Since(start); elapsed < interval-10*time.Millisecond {
		t.Fatalf("second result after %v, want >= %v", elapsed, interval)
	}
	if second.Cycle != first.Cycle+1 {
		t.Fatalf("cycles %d then %d", first.Cycle, second.Cycle)
	}
}

func TestConcurrentPollsShareOneRefresh(t *testing.T) {
	source := &countingSource{release: make(chan struct{})}
	session := NewSession(nil, time.Hour, source)
	defer session.Close()

	if _, ok := session.Poll(func() {}); ok {
		t.Fatalf("unexpected result before refresh")
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			session.Poll(func() {})
		}()
	}
	wg.Wait()
	close(source.release)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := session.Next(ctx); err != nil {
		t.Fatalf("next: %v", err)
	}
	if calls := source.calls.Load(); calls != 1 {
		t.Fatalf("refresh ran %d times, want 1", calls)
	}
}

func TestWakeCalledOncePerCycle(t *testing.T) {
	source := &countingSource{release: make(chan struct{})}
	session := NewSession(nil, time.Hour, source)
	defer session.Close()

	var stale, current atomic.Int32
	session.Poll(func() { stale.Add(1) })
	woken := make(chan struct{})
	session.Poll(func() {
		current.Add(1)
		close(woken)
	})
	close(source.release)

	select {
	case <-woken:
	case <-time.After(2 * time.Second):
		t.Fatalf("wake not called")
	}
	if stale.Load() != 0 {
		t.Fatalf("replaced wake function was called")
	}
	if current.Load() != 1 {
		t.Fatalf("wake called %d times", current.Load())
	}

	result, ok := session.Poll(func() {})
	if !ok || result == nil {
		t.Fatalf("expected pending result")
	}
	if _, ok := session.Poll(func() {}); ok {
		t.Fatalf("result delivered twice")
	}
}

func TestCloseDiscardsInFlightResult(t *testing.T) {
	source := &countingSource{release: make(chan struct{})}
	session := NewSession(nil, time.Hour, source)

	var woken atomic.Int32
	session.Poll(func() { woken.Add(1) })
	for source.calls.Load() == 0 {
		time.Sleep(time.Millisecond)
	}
	session.Close()
	close(source.release)

	time.Sleep(50 * time.Millisecond)
	if woken.Load() != 0 {
		t.Fatalf("wake called after close")
	}
	if _, ok := session.Poll(func() {}); ok {
		t.Fatalf("closed session returned a result")
	}
	if _, err := session.Next(context.Background()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNextHonoursContext(t *testing.T) {
	source := &countingSource{}
	session := NewSession(nil, time.Hour, source)
	defer session.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	if _, err := session.Next(ctx); err != nil {
		t.Fatalf("first: %v", err)
	}
	cancel()

	ctx, cancel = context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := session.Next(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
