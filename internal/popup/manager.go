// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package popup

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/accbox/internal/logger"
	"github.com/MKhiriev/accbox/internal/otp"
	"github.com/MKhiriev/accbox/internal/workers"
	"github.com/MKhiriev/accbox/models"
)

// DefaultInterval is the refresh period of a displayed popup.
const DefaultInterval = time.Second

// State is the lifecycle state of the popup.
type State int

const (
	StateClosed State = iota
	StateLoading
	StateDisplaying
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateDisplaying:
		return "displaying"
	default:
		return "closed"
	}
}

// Frame is what the popup shows at one instant.
type Frame struct {
	State     State
	AccountID int64
	Title     string

	Code    string
	Display string
	Type    models.OTPType

	Remaining int
	Period    int
	Progress  float64
	Urgency   otp.Urgency
	Expiring  bool

	// Failed marks a popup whose code could not be computed. It has no
	// tick and only waits to be closed.
	Failed bool
}

// SecretCopier copies codes and schedules their removal.
type SecretCopier interface {
	CopySecret(text string) error
}

// Manager owns the single popup.
type Manager struct {
	source    Source
	clip      SecretCopier
	scheduler workers.Scheduler
	interval  time.Duration
	now       func() time.Time
	notify    models.Notify
	listener  func(Frame)
	log       *logger.Logger

	mu      sync.Mutex
	gen     uint64
	frame   Frame
	session Session
	tick    workers.Handle
}

// Option configures a Manager.
type Option func(*Manager)

// WithInterval overrides [DefaultInterval].
func WithInterval(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// WithListener registers fn to be called after every frame change. fn is
// called without locks held, possibly from the tick goroutine, and must not
// block or call back into the Manager synchronously.
func WithListener(fn func(Frame)) Option {
	return func(m *Manager) {
		m.listener = fn
	}
}

// NewManager creates a closed popup Manager.
func NewManager(source Source, clip SecretCopier, scheduler workers.Scheduler, notify models.Notify, log *logger.Logger, opts ...Option) *Manager {
	m := &Manager{
		source:    source,
		clip:      clip,
		scheduler: scheduler,
		interval:  DefaultInterval,
		now:       time.Now,
		notify:    notify,
		listener:  func(Frame) {},
		log:       log,
	}
	if m.notify == nil {
		m.notify = func(models.Notice) {}
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Current returns the latest frame.
func (m *Manager) Current() Frame {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frame
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	return m.Current().State
}

// Open shows the popup for account. It blocks while the code source is
// queried, so callers in an event loop run it in the background.
//
// Accounts without 2FA are refused with a notice. A failed fetch closes the
// popup with an error notice. The first code is copied to the clipboard
// once. A result that arrives after the popup was closed or reopened is
// discarded.
func (m *Manager) Open(ctx context.Context, account models.Account) error {
	title := account.DisplayName()
	if !account.Has2FA {
		m.notify(models.Notice{Level: models.NoticeWarning, Message: fmt.Sprintf("2FA is not configured for %s", title)})
		return ErrNo2FA
	}

	m.mu.Lock()
	m.gen++
	gen := m.gen
	old := m.detachLocked()
	m.frame = Frame{State: StateLoading, AccountID: account.ID, Title: title}
	loading := m.frame
	m.mu.Unlock()

	stopHandle(old)
	m.listener(loading)

	log := m.log.With().Int64("account_id", account.ID).Logger()

	session, err := m.source.Open(ctx, account.ID)
	if err != nil {
		if !m.closeIfCurrent(gen) {
			return nil
		}
		log.Error().Err(err).Msg("failed to open 2fa popup")
		m.notify(models.Notice{Level: models.NoticeError, Message: fmt.Sprintf("Failed to load 2FA code: %v", err)})
		return err
	}

	reading, readErr := session.Read(ctx, m.now())

	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		log.Debug().Msg("discarding stale 2fa result")
		return nil
	}

	m.session = session
	if readErr != nil {
		m.frame = failedFrame(account.ID, title)
		frame := m.frame
		m.mu.Unlock()

		log.Error().Err(readErr).Msg("failed to compute 2fa code")
		m.notify(models.Notice{Level: models.NoticeError, Message: "Failed to generate 2FA code"})
		m.listener(frame)
		return nil
	}

	m.frame = displayFrame(account.ID, title, reading)
	frame := m.frame
	m.tick = m.scheduler.Every(m.interval, func(ctx context.Context) bool {
		return m.refresh(ctx, gen)
	})
	m.mu.Unlock()

	m.listener(frame)

	if err := m.clip.CopySecret(reading.Code); err == nil {
		m.notify(models.Notice{Level: models.NoticeSuccess, Message: "2FA code copied"})
	} else {
		log.Warn().Err(err).Msg("failed to copy 2fa code")
	}

	return nil
}

// Close tears the popup down. The tick is stopped before Close returns.
// Closing a closed popup does nothing.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.frame.State == StateClosed && m.tick == nil {
		m.mu.Unlock()
		return
	}
	m.gen++
	old := m.detachLocked()
	m.frame = Frame{State: StateClosed}
	m.mu.Unlock()

	stopHandle(old)
	m.listener(Frame{State: StateClosed})
}

// refresh runs on every tick. It returns false to stop the tick once the
// popup it belongs to is gone.
func (m *Manager) refresh(ctx context.Context, gen uint64) bool {
	m.mu.Lock()
	if gen != m.gen || m.frame.State != StateDisplaying || m.session == nil {
		m.mu.Unlock()
		return false
	}
	session := m.session
	id, title := m.frame.AccountID, m.frame.Title
	m.mu.Unlock()

	reading, err := session.Read(ctx, m.now())

	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		return false
	}

	if err != nil {
		m.frame = failedFrame(id, title)
		m.tick = nil
		frame := m.frame
		m.mu.Unlock()

		m.log.Error().Err(err).Int64("account_id", id).Msg("failed to refresh 2fa code")
		m.listener(frame)
		return false
	}

	m.frame = displayFrame(id, title, reading)
	frame := m.frame
	m.mu.Unlock()

	m.listener(frame)
	return true
}

func (m *Manager) closeIfCurrent(gen uint64) bool {
	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		return false
	}
	m.gen++
	m.frame = Frame{State: StateClosed}
	m.mu.Unlock()

	m.listener(Frame{State: StateClosed})
	return true
}

func (m *Manager) detachLocked() workers.Handle {
	old := m.tick
	m.tick = nil
	m.session = nil
	return old
}

func displayFrame(id int64, title string, r Reading) Frame {
	urgency := otp.UrgencyFor(r.Remaining)
	return Frame{
		State:     StateDisplaying,
		AccountID: id,
		Title:     title,
		Code:      r.Code,
		Display:   otp.FormatCode(r.Code, r.Type),
		Type:      r.Type,
		Remaining: r.Remaining,
		Period:    r.Period,
		Progress:  otp.Progress(r.Remaining, r.Period),
		Urgency:   urgency,
		Expiring:  urgency.Expiring(),
	}
}

func failedFrame(id int64, title string) Frame {
	return Frame{State: StateDisplaying, AccountID: id, Title: title, Failed: true}
}

func stopHandle(h workers.Handle) {
	if h != nil {
		h.Stop()
	}
}
