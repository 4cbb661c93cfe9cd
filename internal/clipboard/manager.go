package clipboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/accbox/internal/logger"
	"github.com/MKhiriev/accbox/internal/workers"
	"github.com/MKhiriev/accbox/models"
)

// DefaultClearAfter is how long a secret stays on the clipboard.
const DefaultClearAfter = 60 * time.Second

// ErrUnavailable is returned when neither the primary nor the fallback
// clipboard accepted the text.
var ErrUnavailable = errors.New("clipboard unavailable")

// Manager owns the process-wide clipboard and its single clear timer.
type Manager struct {
	primary    Writer
	fallback   Writer
	scheduler  workers.Scheduler
	clearAfter time.Duration
	notify     models.Notify
	log        *logger.Logger

	mu      sync.Mutex
	gen     uint64
	pending workers.Handle
}

// NewManager creates a Manager. fallback may be nil. A non-positive
// clearAfter uses [DefaultClearAfter]; notify may be nil.
func NewManager(primary, fallback Writer, scheduler workers.Scheduler, clearAfter time.Duration, notify models.Notify, log *logger.Logger) *Manager {
	if clearAfter <= 0 {
		clearAfter = DefaultClearAfter
	}
	if notify == nil {
		notify = func(models.Notice) {}
	}
	return &Manager{
		primary:    primary,
		fallback:   fallback,
		scheduler:  scheduler,
		clearAfter: clearAfter,
		notify:     notify,
		log:        log,
	}
}

// Copy puts plain text such as an email on the clipboard. On success any
// pending clear timer is disarmed since the secret is no longer there.
func (m *Manager) Copy(text string) error {
	m.mu.Lock()
	if err := m.writeLocked(text); err != nil {
		m.mu.Unlock()
		return err
	}
	old := m.disarmLocked()
	m.mu.Unlock()

	stop(old)
	return nil
}

// CopySecret puts a secret on the clipboard and arms the clear timer,
// replacing a pending one. A failed copy leaves the pending timer alone.
func (m *Manager) CopySecret(text string) error {
	m.mu.Lock()
	if err := m.writeLocked(text); err != nil {
		m.mu.Unlock()
		return err
	}
	old := m.disarmLocked()
	gen := m.gen
	m.pending = m.scheduler.After(m.clearAfter, func(context.Context) {
		m.expire(gen)
	})
	m.mu.Unlock()

	stop(old)
	return nil
}

// Clear overwrites the clipboard with an empty string now. Failures are
// ignored.
func (m *Manager) Clear() {
	m.mu.Lock()
	old := m.disarmLocked()
	m.wipeLocked()
	m.mu.Unlock()

	stop(old)
}

// Pending reports whether a clear timer is armed.
func (m *Manager) Pending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending != nil
}

// Close stops the clear timer. A secret still on the clipboard is wiped.
func (m *Manager) Close() {
	m.mu.Lock()
	old := m.disarmLocked()
	if old != nil {
		m.wipeLocked()
	}
	m.mu.Unlock()

	stop(old)
}

func (m *Manager) expire(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.gen {
		return
	}
	m.pending = nil
	m.wipeLocked()
	m.log.Debug().Msg("clipboard cleared")
}

// disarmLocked detaches the pending timer. The caller stops it after
// releasing the mutex, since the timer callback takes the same mutex.
func (m *Manager) disarmLocked() workers.Handle {
	m.gen++
	old := m.pending
	m.pending = nil
	return old
}

func (m *Manager) writeLocked(text string) error {
	primaryErr := m.primary.WriteText(text)
	if primaryErr == nil {
		return nil
	}
	m.log.Warn().Err(primaryErr).Msg("primary clipboard failed, trying terminal fallback")

	if m.fallback == nil {
		m.notify(models.Notice{Level: models.NoticeWarning, Message: "Clipboard is unavailable"})
		return fmt.Errorf("%w: %w", ErrUnavailable, primaryErr)
	}

	fallbackErr := m.fallback.WriteText(text)
	if fallbackErr == nil {
		return nil
	}
	m.log.Error().Err(fallbackErr).Msg("terminal clipboard failed")
	m.notify(models.Notice{Level: models.NoticeWarning, Message: "Clipboard is unavailable"})

	return fmt.Errorf("%w: %w", ErrUnavailable, errors.Join(primaryErr, fallbackErr))
}

// wipeLocked writes an empty string the same way a copy would, best effort.
func (m *Manager) wipeLocked() {
	err := m.primary.WriteText("")
	if err == nil {
		return
	}
	m.log.Debug().Err(err).Msg("primary clipboard clear failed")

	if m.fallback != nil {
		if err := m.fallback.WriteText(""); err != nil {
			m.log.Debug().Err(err).Msg("terminal clipboard clear failed")
		}
	}
}

func stop(h workers.Handle) {
	if h != nil {
		h.Stop()
	}
}
