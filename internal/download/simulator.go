package download

import (
	"context"
	"time"
)

// Simulator is a Fetcher that waits a fixed delay and then succeeds.
type Simulator struct {
	delay time.Duration
}

// NewSimulator creates a simulator with the given delay
func NewSimulator(delay time.Duration) *Simulator {
	return &Simulator{delay: delay}
}

// Delay returns the simulated latency
func (s *Simulator) Delay() time.Duration {
	return s.delay
}

// Fetch waits for the configured delay. It only returns an error if ctx is
// done first.
func (s *Simulator) Fetch(ctx context.Context, url string) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
