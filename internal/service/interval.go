package service

import (
	"errors"
	"time"
)

var ErrZeroInterval = errors.New("refresh_interval_in_secs must be greater than zero")

// StreamInterval picks the refresh interval for a push session. A nil
// request value means the default; zero is rejected since it would turn the
// session into a busy loop.
func StreamInterval(requested *uint32, fallback time.Duration) (time.Duration, error) {
	if requested == nil {
		return fallback, nil
	}
	if *requested == 0 {
		return 0, ErrZeroInterval
	}
	return time.Duration(*requested) * time.Second, nil
}
