// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"
)

type timerScheduler struct {
	ctx context.Context

	mu     sync.Mutex
	active map[*timerHandle]struct{}
}

type timerHandle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// NewScheduler creates a Scheduler backed by goroutines and time.Timer.
// Cancelling ctx stops every timer it started.
func NewScheduler(ctx context.Context) Scheduler {
	return &timerScheduler{
		ctx:    ctx,
		active: make(map[*timerHandle]struct{}),
	}
}

// Every implements Scheduler. A non-positive interval defaults to one second.
func (s *timerScheduler) Every(interval time.Duration, tick func(ctx context.Context) bool) Handle {
	if interval <= 0 {
		interval = time.Second
	}

	return s.start(func(ctx context.Context) {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if ctx.Err() != nil || !tick(ctx) {
					return
				}
			}
		}
	})
}

// After implements Scheduler.
func (s *timerScheduler) After(delay time.Duration, fire func(ctx context.Context)) Handle {
	return s.start(func(ctx context.Context) {
		t := time.NewTimer(delay)
		defer t.Stop()

		select {
		case <-ctx.Done():
		case <-t.C:
			if ctx.Err() == nil {
				fire(ctx)
			}
		}
	})
}

// Active implements Scheduler.
func (s *timerScheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

func (s *timerScheduler) start(run func(ctx context.Context)) Handle {
	ctx, cancel := context.WithCancel(s.ctx)
	h := &timerHandle{cancel: cancel, done: make(chan struct{})}

	s.mu.Lock()
	s.active[h] = struct{}{}
	s.mu.Unlock()

	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.active, h)
			s.mu.Unlock()
			cancel()
			close(h.done)
		}()
		run(ctx)
	}()

	return h
}

// Stop implements Handle.
func (h *timerHandle) Stop() {
	h.cancel()
	<-h.done
}
