package popup

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/accbox/internal/otp"
	"github.com/MKhiriev/accbox/models"
)

// Reading is one code together with the window it belongs to. Code and
// remaining time always come from the same computation or round trip.
type Reading struct {
	Code      string
	Type      models.OTPType
	Remaining int
	Period    int
}

// Session produces readings for one open popup.
type Session interface {
	Read(ctx context.Context, now time.Time) (Reading, error)
}

// Source opens sessions for accounts.
type Source interface {
	Open(ctx context.Context, accountID int64) (Session, error)
}

// ConfigFetcher loads an account's 2FA configuration.
type ConfigFetcher interface {
	GetTOTPConfig(ctx context.Context, accountID int64) (models.TOTPConfig, error)
}

// CodeFetcher asks the server for the current code.
type CodeFetcher interface {
	GenerateTOTPCode(ctx context.Context, accountID int64) (models.TOTPCode, error)
}

// LocalSource fetches the configuration once per popup and computes every
// code on the client.
type LocalSource struct {
	fetcher   ConfigFetcher
	generator *otp.Generator
}

// NewLocalSource creates a LocalSource.
func NewLocalSource(fetcher ConfigFetcher, generator *otp.Generator) *LocalSource {
	return &LocalSource{fetcher: fetcher, generator: generator}
}

// Open implements Source.
func (s *LocalSource) Open(ctx context.Context, accountID int64) (Session, error) {
	cfg, err := s.fetcher.GetTOTPConfig(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("error fetching 2fa configuration: %w", err)
	}
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}
	return &localSession{cfg: cfg, generator: s.generator}, nil
}

type localSession struct {
	cfg       models.TOTPConfig
	generator *otp.Generator
}

func (s *localSession) Read(_ context.Context, now time.Time) (Reading, error) {
	code := s.generator.CodeAt(s.cfg, now)
	if code == "" {
		return Reading{}, ErrCodeUnavailable
	}

	remaining, period, _ := otp.Window(s.cfg, now)
	return Reading{
		Code:      code,
		Type:      s.cfg.EffectiveType(),
		Remaining: remaining,
		Period:    period,
	}, nil
}

// RemoteSource asks the server for codes. Between round trips the remaining
// time counts down locally; a new code is fetched when the window ends.
type RemoteSource struct {
	fetcher CodeFetcher
	now     func() time.Time
}

// NewRemoteSource creates a RemoteSource. now defaults to time.Now.
func NewRemoteSource(fetcher CodeFetcher, now func() time.Time) *RemoteSource {
	if now == nil {
		now = time.Now
	}
	return &RemoteSource{fetcher: fetcher, now: now}
}

// Open implements Source.
func (s *RemoteSource) Open(ctx context.Context, accountID int64) (Session, error) {
	sess := &remoteSession{fetcher: s.fetcher, accountID: accountID}
	if err := sess.fetch(ctx, s.now()); err != nil {
		return nil, err
	}
	return sess, nil
}

type remoteSession struct {
	fetcher   CodeFetcher
	accountID int64

	last      models.TOTPCode
	fetchedAt time.Time
}

func (s *remoteSession) fetch(ctx context.Context, now time.Time) error {
	code, err := s.fetcher.GenerateTOTPCode(ctx, s.accountID)
	if err != nil {
		return fmt.Errorf("error fetching 2fa code: %w", err)
	}
	if code.Code == "" {
		return ErrCodeUnavailable
	}
	if code.Period <= 0 {
		code.Period = models.DefaultPeriod
	}
	if code.Remaining <= 0 || code.Remaining > code.Period {
		code.Remaining = code.Period
	}

	s.last = code
	s.fetchedAt = now
	return nil
}

func (s *remoteSession) Read(ctx context.Context, now time.Time) (Reading, error) {
	elapsed := int(now.Sub(s.fetchedAt) / time.Second)
	if s.last.Remaining-elapsed <= 0 {
		if err := s.fetch(ctx, now); err != nil {
			return Reading{}, err
		}
		elapsed = 0
	}

	typ := s.last.Type
	if typ == "" {
		typ = models.OTPTypeTOTP
	}
	return Reading{
		Code:      s.last.Code,
		Type:      typ,
		Remaining: s.last.Remaining - elapsed,
		Period:    s.last.Period,
	}, nil
}
