package workers

import (
	"context"
	"sync"
	"time"
)

// ManualScheduler is a Scheduler driven by Advance instead of the wall
// clock. Callbacks run synchronously on the goroutine calling Advance.
type ManualScheduler struct {
	mu      sync.Mutex
	elapsed time.Duration
	timers  []*manualTimer
}

type manualTimer struct {
	s        *ManualScheduler
	due      time.Duration
	interval time.Duration
	tick     func(ctx context.Context) bool
	fire     func(ctx context.Context)
	ctx      context.Context
	cancel   context.CancelFunc
	stopped  bool
}

// NewManualScheduler returns a ManualScheduler at elapsed time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Every implements Scheduler.
func (s *ManualScheduler) Every(interval time.Duration, tick func(ctx context.Context) bool) Handle {
	if interval <= 0 {
		interval = time.Second
	}
	return s.add(&manualTimer{interval: interval, tick: tick}, interval)
}

// After implements Scheduler.
func (s *ManualScheduler) After(delay time.Duration, fire func(ctx context.Context)) Handle {
	return s.add(&manualTimer{fire: fire}, delay)
}

// Active implements Scheduler.
func (s *ManualScheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Elapsed returns the total time advanced so far.
func (s *ManualScheduler) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

// Advance moves the clock forward by d, running every callback that becomes
// due, in due order.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.elapsed + d

	for {
		t := s.nextDueLocked(target)
		if t == nil {
			break
		}
		s.elapsed = t.due
		s.mu.Unlock()

		keep := false
		if t.tick != nil {
			keep = t.tick(t.ctx)
		} else {
			t.fire(t.ctx)
		}

		s.mu.Lock()
		if keep && !t.stopped {
			t.due += t.interval
			continue
		}
		s.removeLocked(t)
	}

	s.elapsed = target
	s.mu.Unlock()
}

func (s *ManualScheduler) add(t *manualTimer, after time.Duration) Handle {
	t.s = s
	t.ctx, t.cancel = context.WithCancel(context.Background())

	s.mu.Lock()
	t.due = s.elapsed + after
	s.timers = append(s.timers, t)
	s.mu.Unlock()

	return t
}

func (s *ManualScheduler) nextDueLocked(target time.Duration) *manualTimer {
	var next *manualTimer
	for _, t := range s.timers {
		if t.stopped || t.due > target {
			continue
		}
		if next == nil || t.due < next.due {
			next = t
		}
	}
	return next
}

func (s *ManualScheduler) removeLocked(t *manualTimer) {
	t.stopped = true
	t.cancel()
	for i, other := range s.timers {
		if other == t {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

// Stop implements Handle.
func (t *manualTimer) Stop() {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	t.s.removeLocked(t)
}
