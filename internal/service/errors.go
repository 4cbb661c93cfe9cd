package service

import "errors"

var (
	ErrWrongPassword    = errors.New("wrong username or password")
	ErrAccountLocked    = errors.New("account is locked")
	ErrSessionExpired   = errors.New("session expired, log in again")
	ErrEmptyCredentials = errors.New("username and password are required")

	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidRequest  = errors.New("request rejected by server")
	ErrServer          = errors.New("server error")

	ErrNothingSelected = errors.New("no accounts or values selected")

	ErrInvalidTOTPConfig = errors.New("invalid 2fa configuration")
	ErrInvalidURI        = errors.New("invalid otpauth uri")
	ErrNotConfigured     = errors.New("2fa is not configured")
)
