package popup

import "errors"

var (
	// ErrNo2FA is returned when opening an account without two-factor
	// authentication.
	ErrNo2FA = errors.New("popup: account has no 2fa configured")
	// ErrNotConfigured is returned by sources when the account's
	// configuration carries no secret.
	ErrNotConfigured = errors.New("popup: 2fa configuration has no secret")
	// ErrCodeUnavailable is returned when a code cannot be computed.
	ErrCodeUnavailable = errors.New("popup: code unavailable")
)
