// Package workers runs the client's background timers: the popup refresh
// tick and the clipboard clear timer.
//
// Every timer is owned by a [Handle]. Stop cancels the timer and blocks until
// its goroutine has exited, so after Stop returns the callback never runs
// again. Stop is idempotent.
package workers

import (
	"context"
	"time"
)

// Handle controls a running timer.
type Handle interface {
	// Stop cancels the timer and waits for an in-flight callback to return.
	// It must not be called from inside the timer's own callback; interval
	// callbacks stop themselves by returning false.
	Stop()
}

// Scheduler starts timers.
//
// Example:
//
//	h := s.Every(time.Second, func(ctx context.Context) bool {
//	    return refresh(ctx) == nil
//	})
//	defer h.Stop()
type Scheduler interface {
	// Every calls tick every interval until it returns false or the handle
	// is stopped.
	Every(interval time.Duration, tick func(ctx context.Context) bool) Handle
	// After calls fire once after delay unless the handle is stopped first.
	After(delay time.Duration, fire func(ctx context.Context)) Handle
	// Active reports the number of timers that have not finished.
	Active() int
}
