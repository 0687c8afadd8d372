package session

import (
	"context"
	"sync"
	"time"
)

// Sleeper suspends the play loop between frames
type Sleeper interface {
	// Sleep returns early with ctx.Err() when ctx is done
	Sleep(ctx context.Context, d time.Duration) error
}

// TimerSleeper sleeps on a real timer
type TimerSleeper struct{}

// Sleep waits for d or ctx cancellation
func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// MockSleeper records requested durations without waiting
type MockSleeper struct {
	mu    sync.Mutex
	slept []time.Duration

	// OnSleep, if set, runs on every call; a non-nil return aborts the sleep
	OnSleep func(call int, d time.Duration) error
}

// Sleep records d and returns immediately
func (m *MockSleeper) Sleep(ctx context.Context, d time.Duration) error {
	m.mu.Lock()
	m.slept = append(m.slept, d)
	call := len(m.slept)
	hook := m.OnSleep
	m.mu.Unlock()

	if hook != nil {
		if err := hook(call, d); err != nil {
			return err
		}
	}
	return ctx.Err()
}

// Slept returns a copy of the recorded durations
func (m *MockSleeper) Slept() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, len(m.slept))
	copy(out, m.slept)
	return out
}
